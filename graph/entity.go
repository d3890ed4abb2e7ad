package graph

import (
	"maps"
	"slices"
)

// Properties maps property keys to their decoded values. Keys are unique by construction.
type Properties map[RedisString]Scalar

// Get returns the value stored under the given key.
func (s Properties) Get(key string) (Scalar, bool) {
	value, found := s[RedisString(key)]
	return value, found
}

// Keys returns the property keys sorted by byte content.
func (s Properties) Keys() []RedisString {
	keys := slices.Collect(maps.Keys(s))
	slices.Sort(keys)

	return keys
}

// Node is a graph node as returned by a query. The labels list may be empty for an unlabeled node.
type Node struct {
	Labels     []RedisString
	Properties Properties
}

func NewNode(properties Properties, labels ...RedisString) Node {
	if properties == nil {
		properties = Properties{}
	}

	return Node{
		Labels:     labels,
		Properties: properties,
	}
}

// HasLabel returns true if the node carries the given label.
func (s Node) HasLabel(label RedisString) bool {
	return slices.Contains(s.Labels, label)
}

// Edge is a graph relationship as returned by a query. Every edge has exactly one type. The source and target node
// identifiers present in the reply are not part of this model.
type Edge struct {
	TypeName   RedisString
	Properties Properties
}

func NewEdge(typeName RedisString, properties Properties) Edge {
	if properties == nil {
		properties = Properties{}
	}

	return Edge{
		TypeName:   typeName,
		Properties: properties,
	}
}
