package graph_test

import (
	"testing"

	"github.com/specterops/redisgraph/graph"
	"github.com/stretchr/testify/require"
)

func testRawPath() graph.RawPath {
	return graph.RawPath{
		Nodes: []graph.Node{
			graph.NewNode(graph.Properties{"name": graph.RedisString("a")}, "Domain"),
			graph.NewNode(graph.Properties{"name": graph.RedisString("b")}, "Group"),
			graph.NewNode(graph.Properties{"name": graph.RedisString("c")}, "User"),
		},
		Edges: []graph.Edge{
			graph.NewEdge("Contains", nil),
			graph.NewEdge("MemberOf", graph.Properties{"since": graph.Integer(2020)}),
		},
	}
}

func TestRawPath_RootTerminal(t *testing.T) {
	path := testRawPath()

	require.Equal(t, 2, path.Len())
	require.Equal(t, path.Nodes[0], path.Root())
	require.Equal(t, path.Nodes[2], path.Terminal())
}

func TestRawPath_Walk(t *testing.T) {
	path := testRawPath()

	var forwardStarts, reverseStarts, forwardEdges []graph.RedisString

	path.Walk(func(start, end graph.Node, edge graph.Edge) bool {
		forwardStarts = append(forwardStarts, start.Labels[0])
		forwardEdges = append(forwardEdges, edge.TypeName)
		return true
	})

	path.WalkReverse(func(start, end graph.Node, edge graph.Edge) bool {
		reverseStarts = append(reverseStarts, start.Labels[0])
		return true
	})

	require.Equal(t, []graph.RedisString{"Domain", "Group"}, forwardStarts)
	require.Equal(t, []graph.RedisString{"Contains", "MemberOf"}, forwardEdges)
	require.Equal(t, []graph.RedisString{"Group", "Domain"}, reverseStarts)

	calls := 0
	path.Walk(func(start, end graph.Node, edge graph.Edge) bool {
		calls++
		return false
	})

	require.Equal(t, 1, calls)
}

func TestNewPath(t *testing.T) {
	raw := testRawPath()

	path, err := graph.NewPath(raw)
	require.NoError(t, err)

	require.Equal(t, raw.Nodes[0], path.Start)
	require.Equal(t, raw.Edges[0], path.Edge)
	require.False(t, path.IsEnd())
	require.Nil(t, path.End)

	next := path.Next
	require.NotNil(t, next)
	require.True(t, next.IsEnd())
	require.Equal(t, raw.Nodes[1], next.Start)
	require.Equal(t, raw.Edges[1], next.Edge)
	require.NotNil(t, next.End)
	require.Equal(t, raw.Nodes[2], *next.End)

	require.Equal(t, 2, path.Len())
	require.Equal(t, raw, path.RawPath())
}

func TestNewPath_SingleEdge(t *testing.T) {
	raw := graph.RawPath{
		Nodes: []graph.Node{graph.NewNode(nil, "A"), graph.NewNode(nil, "B")},
		Edges: []graph.Edge{graph.NewEdge("R", nil)},
	}

	path, err := graph.NewPath(raw)
	require.NoError(t, err)
	require.True(t, path.IsEnd())
	require.Equal(t, 1, path.Len())
	require.Equal(t, raw, path.RawPath())

	var ends []graph.Node
	path.Walk(func(start, end graph.Node, edge graph.Edge) bool {
		ends = append(ends, end)
		return true
	})

	require.Equal(t, []graph.Node{raw.Nodes[1]}, ends)
}

func TestNewPath_Invalid(t *testing.T) {
	var clientErr *graph.ClientTypeError

	_, err := graph.NewPath(graph.RawPath{
		Nodes: []graph.Node{graph.NewNode(nil, "A")},
	})

	require.ErrorAs(t, err, &clientErr)

	_, err = graph.NewPath(graph.RawPath{
		Nodes: []graph.Node{graph.NewNode(nil, "A"), graph.NewNode(nil, "B"), graph.NewNode(nil, "C")},
		Edges: []graph.Edge{graph.NewEdge("R", nil)},
	})

	require.ErrorAs(t, err, &clientErr)
}

func TestFormatPath(t *testing.T) {
	require.Equal(t,
		`(:Domain {name: "a"})-[:Contains]->(:Group {name: "b"})-[:MemberOf {since: 2020}]->(:User {name: "c"})`,
		graph.FormatPath(testRawPath()),
	)
}
