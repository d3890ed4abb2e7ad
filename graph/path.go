package graph

import "strings"

// RawPath is the flat form of a path: parallel node and edge lists where Edges[i] connects Nodes[i] and Nodes[i+1].
type RawPath struct {
	Nodes []Node
	Edges []Edge
}

// Len returns the number of edges in the path.
func (s RawPath) Len() int {
	return len(s.Edges)
}

// Root returns the first node of the path. The path must hold at least one node.
func (s RawPath) Root() Node {
	return s.Nodes[0]
}

// Terminal returns the last node of the path. The path must hold at least one node.
func (s RawPath) Terminal() Node {
	return s.Nodes[len(s.Nodes)-1]
}

func (s RawPath) Walk(delegate func(start, end Node, edge Edge) bool) {
	for idx := 1; idx < len(s.Nodes) && idx <= len(s.Edges); idx++ {
		if shouldContinue := delegate(s.Nodes[idx-1], s.Nodes[idx], s.Edges[idx-1]); !shouldContinue {
			break
		}
	}
}

func (s RawPath) WalkReverse(delegate func(start, end Node, edge Edge) bool) {
	for idx := min(len(s.Nodes)-2, len(s.Edges)-1); idx >= 0; idx-- {
		if shouldContinue := delegate(s.Nodes[idx], s.Nodes[idx+1], s.Edges[idx]); !shouldContinue {
			break
		}
	}
}

// Path is the linked form of a non-empty path. Each segment holds its leading node and the edge leaving it. A segment
// either continues into Next or, for the final segment, terminates at End. Exactly one of Next and End is set.
type Path struct {
	Start Node
	Edge  Edge
	Next  *Path
	End   *Node
}

// NewPath links the given flat path. A path requires at least one edge and exactly one more node than edges.
func NewPath(raw RawPath) (*Path, error) {
	if len(raw.Edges) == 0 {
		return nil, NewClientTypeError("failed to link path: a path requires at least one edge")
	}

	if len(raw.Nodes) != len(raw.Edges)+1 {
		return nil, NewClientTypeError("failed to link path: expected %d nodes for %d edges but found %d", len(raw.Edges)+1, len(raw.Edges), len(raw.Nodes))
	}

	var (
		lastIdx  = len(raw.Edges) - 1
		terminal = raw.Nodes[lastIdx+1]
		path     = &Path{
			Start: raw.Nodes[lastIdx],
			Edge:  raw.Edges[lastIdx],
			End:   &terminal,
		}
	)

	for idx := lastIdx - 1; idx >= 0; idx-- {
		path = &Path{
			Start: raw.Nodes[idx],
			Edge:  raw.Edges[idx],
			Next:  path,
		}
	}

	return path, nil
}

// IsEnd returns true if the receiver is the final segment of the path.
func (s *Path) IsEnd() bool {
	return s.Next == nil
}

// Len returns the number of edges in the path.
func (s *Path) Len() int {
	length := 0

	for cursor := s; cursor != nil; cursor = cursor.Next {
		length++
	}

	return length
}

// Walk calls the delegate once per edge from the start of the path until the delegate returns false.
func (s *Path) Walk(delegate func(start, end Node, edge Edge) bool) {
	for cursor := s; cursor != nil; cursor = cursor.Next {
		var end Node

		if cursor.Next != nil {
			end = cursor.Next.Start
		} else if cursor.End != nil {
			end = *cursor.End
		}

		if !delegate(cursor.Start, end, cursor.Edge) {
			break
		}
	}
}

// RawPath flattens the receiver back into parallel node and edge lists.
func (s *Path) RawPath() RawPath {
	var (
		length = s.Len()
		raw    = RawPath{
			Nodes: make([]Node, 0, length+1),
			Edges: make([]Edge, 0, length),
		}
	)

	for cursor := s; cursor != nil; cursor = cursor.Next {
		raw.Nodes = append(raw.Nodes, cursor.Start)
		raw.Edges = append(raw.Edges, cursor.Edge)

		if cursor.Next == nil && cursor.End != nil {
			raw.Nodes = append(raw.Nodes, *cursor.End)
		}
	}

	return raw
}

// FormatPath outputs a cypher-formatted rendition of the given flat path.
func FormatPath(path RawPath) string {
	formatted := strings.Builder{}

	for idx, node := range path.Nodes {
		formatted.WriteString(FormatNode(node))

		if idx < len(path.Edges) {
			formatted.WriteString("-")
			formatted.WriteString(FormatEdge(path.Edges[idx]))
			formatted.WriteString("->")
		}
	}

	return formatted.String()
}
