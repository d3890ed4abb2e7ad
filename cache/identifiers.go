package cache

import (
	"slices"

	"github.com/specterops/redisgraph/graph"
)

// Names is an ordered list of identifier names where the position of a name is the integer id the server assigned
// to it. The list is only ever replaced as a whole.
type Names struct {
	names []graph.RedisString
	stats Stats
}

func NewNames() *Names {
	return &Names{
		stats: NewStats(),
	}
}

// Lookup returns the name stored at the given id. Negative ids and ids past the end of the list are misses.
func (s *Names) Lookup(id int64) (graph.RedisString, bool) {
	if id < 0 || id >= int64(len(s.names)) {
		s.stats.Miss()
		return "", false
	}

	s.stats.Hit()
	return s.names[id], true
}

// Replace discards the current contents of the list in favor of the given names.
func (s *Names) Replace(names []graph.RedisString) {
	s.names = slices.Clone(names)
	s.stats.Refresh(len(s.names))
}

func (s *Names) Len() int {
	return len(s.names)
}

// Slice returns a copy of the names in id order.
func (s *Names) Slice() []graph.RedisString {
	return slices.Clone(s.names)
}

func (s *Names) Stats() Stats {
	return s.stats
}

// Identifiers is the per-session identifier cache: one Names list each for labels, relationship types and property
// keys. It is not safe for concurrent use; it belongs to exactly one session.
type Identifiers struct {
	labels            *Names
	relationshipTypes *Names
	propertyKeys      *Names
}

func NewIdentifiers() *Identifiers {
	return &Identifiers{
		labels:            NewNames(),
		relationshipTypes: NewNames(),
		propertyKeys:      NewNames(),
	}
}

// Names returns the list backing the given identifier kind.
func (s *Identifiers) Names(kind graph.IdentifierKind) *Names {
	switch kind {
	case graph.IdentifierLabel:
		return s.labels
	case graph.IdentifierRelationshipType:
		return s.relationshipTypes
	case graph.IdentifierPropertyKey:
		return s.propertyKeys
	default:
		return nil
	}
}

// Resolve maps an id of the given kind to its name, returning a *graph.IdentifierNotFoundError on a miss.
func (s *Identifiers) Resolve(kind graph.IdentifierKind, id int64) (graph.RedisString, error) {
	if names := s.Names(kind); names == nil {
		return "", graph.NewIdentifierNotFoundError(kind, id)
	} else if name, found := names.Lookup(id); !found {
		return "", graph.NewIdentifierNotFoundError(kind, id)
	} else {
		return name, nil
	}
}

// Replace fully replaces the list of the given kind.
func (s *Identifiers) Replace(kind graph.IdentifierKind, names []graph.RedisString) {
	if target := s.Names(kind); target != nil {
		target.Replace(names)
	}
}

// Stats returns the combined statistics of all three lists.
func (s *Identifiers) Stats() Stats {
	return s.labels.Stats().Combined(s.relationshipTypes.Stats()).Combined(s.propertyKeys.Stats())
}
