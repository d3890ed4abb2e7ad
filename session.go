package redisgraph

import (
	"context"
	"log/slog"

	"github.com/specterops/redisgraph/cache"
	"github.com/specterops/redisgraph/decode"
	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/util"
	"github.com/specterops/redisgraph/wire"
)

// Name returns the name of the graph this session is bound to.
func (s *Graph) Name() string {
	return s.name
}

// Labels returns a copy of the cached label names in id order.
func (s *Graph) Labels() []graph.RedisString {
	return s.identifiers.Names(graph.IdentifierLabel).Slice()
}

// RelationshipTypes returns a copy of the cached relationship type names in id order.
func (s *Graph) RelationshipTypes() []graph.RedisString {
	return s.identifiers.Names(graph.IdentifierRelationshipType).Slice()
}

// PropertyKeys returns a copy of the cached property key names in id order.
func (s *Graph) PropertyKeys() []graph.RedisString {
	return s.identifiers.Names(graph.IdentifierPropertyKey).Slice()
}

// IdentifierStats returns the combined lookup statistics of the session's identifier cache.
func (s *Graph) IdentifierStats() cache.Stats {
	return s.identifiers.Stats()
}

// Query executes the given query and returns its fully decoded result set.
func (s *Graph) Query(ctx context.Context, query string) (*graph.ResultSet, error) {
	if reply, err := s.request(ctx, query); err != nil {
		return nil, err
	} else {
		return s.resultSet(ctx, reply)
	}
}

// QueryWithStatistics is the same as Query but also returns the statistics reported for the query.
func (s *Graph) QueryWithStatistics(ctx context.Context, query string) (*graph.ResultSet, graph.Statistics, error) {
	if resultSet, err := s.Query(ctx, query); err != nil {
		return nil, nil, err
	} else {
		return resultSet, resultSet.Statistics, nil
	}
}

// Mutate executes the given query and discards any values it returns.
func (s *Graph) Mutate(ctx context.Context, query string) error {
	_, err := s.MutateWithStatistics(ctx, query)
	return err
}

// MutateWithStatistics is the same as Mutate but returns the statistics reported for the query.
func (s *Graph) MutateWithStatistics(ctx context.Context, query string) (graph.Statistics, error) {
	if resultSet, err := s.Query(ctx, query); err != nil {
		return nil, err
	} else {
		return resultSet.Statistics, nil
	}
}

// Delete removes the entire graph from the server. This action is not easily reversible.
func (s *Graph) Delete(ctx context.Context) error {
	if _, err := s.conn.Do(ctx, commandDelete, s.name); err != nil {
		return graph.NewTransportError(err)
	}

	slog.DebugContext(ctx, "graph deleted", slog.String("graph", s.name))
	return nil
}

// Close releases the connection backing the session.
func (s *Graph) Close() error {
	return s.conn.Close()
}

// UpdateLabels replaces the cached label names with the ones currently known to the server. Sessions refresh their
// caches automatically when a reply refers to an unknown id; there is no need to call this manually.
func (s *Graph) UpdateLabels(ctx context.Context) error {
	return s.refresh(ctx, graph.IdentifierLabel)
}

// UpdateRelationshipTypes replaces the cached relationship type names with the ones currently known to the server.
func (s *Graph) UpdateRelationshipTypes(ctx context.Context) error {
	return s.refresh(ctx, graph.IdentifierRelationshipType)
}

// UpdatePropertyKeys replaces the cached property key names with the ones currently known to the server.
func (s *Graph) UpdatePropertyKeys(ctx context.Context) error {
	return s.refresh(ctx, graph.IdentifierPropertyKey)
}

func (s *Graph) request(ctx context.Context, query string) (wire.Value, error) {
	measure := util.SLogMeasureFunction(ctx, "Graph.request", slog.String("graph", s.name))

	reply, err := s.conn.Do(ctx, commandQuery, s.name, query, flagCompact)
	if err != nil {
		measure(slog.String("err", err.Error()))
		return wire.Value{}, graph.NewTransportError(err)
	}

	measure()
	return reply, nil
}

func identifierProcedure(kind graph.IdentifierKind) string {
	switch kind {
	case graph.IdentifierLabel:
		return procedureLabels
	case graph.IdentifierRelationshipType:
		return procedureRelationshipTypes
	default:
		return procedurePropertyKeys
	}
}

func (s *Graph) refresh(ctx context.Context, kind graph.IdentifierKind) error {
	if reply, err := s.request(ctx, identifierProcedure(kind)); err != nil {
		return err
	} else if names, err := decode.Names(reply, s.identifiers); err != nil {
		return err
	} else {
		s.identifiers.Replace(kind, names)

		slog.DebugContext(ctx, "identifier cache refreshed",
			slog.String("graph", s.name),
			slog.String("kind", kind.String()),
			slog.Int("size", len(names)),
		)
	}

	return nil
}

// resultSet decodes the reply, refreshing the identifier cache when an id can not be resolved. Every identifier kind
// is refreshed at most once per reply; a miss that persists after its refresh is returned to the caller. The reply is
// never modified by decoding, so each attempt starts from the same tree.
func (s *Graph) resultSet(ctx context.Context, reply wire.Value) (*graph.ResultSet, error) {
	var refreshed [3]bool

	for {
		resultSet, err := decode.ResultSet(reply, s.identifiers)
		if err == nil {
			return resultSet, nil
		}

		kind, isMiss := graph.IsIdentifierMiss(err)
		if !isMiss || kind < 0 || int(kind) >= len(refreshed) || refreshed[kind] {
			return nil, err
		}

		refreshed[kind] = true

		slog.DebugContext(ctx, "identifier cache miss", slog.String("graph", s.name), slog.String("err", err.Error()))

		if err := s.refresh(ctx, kind); err != nil {
			return nil, err
		}
	}
}
