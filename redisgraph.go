// Package redisgraph is a client for graphs stored in a RedisGraph compatible server. A Graph session sends queries
// using the compact reply encoding, decodes each reply into a graph.ResultSet and keeps the identifier cache that the
// compact encoding depends on up to date.
package redisgraph

import (
	"context"
	"errors"
	"log/slog"

	"github.com/specterops/redisgraph/cache"
	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/transport"
)

const (
	commandQuery  = "GRAPH.QUERY"
	commandDelete = "GRAPH.DELETE"
	flagCompact   = "--compact"

	bootstrapCreateQuery = "CREATE (dummy:__DUMMY_LABEL__)"
	bootstrapDeleteQuery = "MATCH (dummy:__DUMMY_LABEL__) DELETE dummy"

	procedureLabels            = "CALL db.labels()"
	procedureRelationshipTypes = "CALL db.relationshipTypes()"
	procedurePropertyKeys      = "CALL db.propertyKeys()"
)

var (
	ErrGraphNameMissing = errors.New("graph name missing")
)

// Config is the basic configuration struct for a graph session.
type Config struct {
	Transport transport.Config `json:"transport" yaml:"transport"`
	Graph     string           `json:"graph" yaml:"graph"`

	// Bootstrap creates the graph on open if it does not exist yet, at the cost of two extra round trips.
	Bootstrap bool `json:"bootstrap" yaml:"bootstrap"`
}

// Graph is a session bound to one named graph. It owns its identifier cache and is not safe for concurrent use; use
// one Graph per goroutine or serialize access externally.
type Graph struct {
	conn        transport.Conn
	name        string
	identifiers *cache.Identifiers
}

// Attach creates a session for the named graph without any round trip. The identifier cache starts out empty.
func Attach(conn transport.Conn, name string) (*Graph, error) {
	if name == "" {
		return nil, ErrGraphNameMissing
	}

	return &Graph{
		conn:        conn,
		name:        name,
		identifiers: cache.NewIdentifiers(),
	}, nil
}

// Open creates a session for the named graph and makes sure the graph exists by creating and deleting a dummy node.
// This also guarantees that a later Delete succeeds for a graph that did not exist before.
func Open(ctx context.Context, conn transport.Conn, name string) (*Graph, error) {
	graphSession, err := Attach(conn, name)
	if err != nil {
		return nil, err
	}

	if err := graphSession.Mutate(ctx, bootstrapCreateQuery); err != nil {
		return nil, err
	}

	if err := graphSession.Mutate(ctx, bootstrapDeleteQuery); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "graph bootstrapped", slog.String("graph", name))
	return graphSession, nil
}

// OpenConfig dials the server described by the configuration and opens a session on the configured graph. The
// returned session owns the connection; release it with Close.
func OpenConfig(ctx context.Context, cfg Config) (*Graph, error) {
	if cfg.Graph == "" {
		return nil, ErrGraphNameMissing
	}

	conn, err := transport.Dial(ctx, cfg.Transport)
	if err != nil {
		return nil, graph.NewTransportError(err)
	}

	var graphSession *Graph

	if cfg.Bootstrap {
		graphSession, err = Open(ctx, conn, cfg.Graph)
	} else {
		graphSession, err = Attach(conn, cfg.Graph)
	}

	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.DebugContext(ctx, "failed to close connection", slog.String("err", closeErr.Error()))
		}

		return nil, err
	}

	return graphSession, nil
}
