package redisgraph_test

import (
	"context"
	"os"
	"testing"

	"github.com/specterops/redisgraph"
	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/scan"
	"github.com/specterops/redisgraph/transport"
	"github.com/stretchr/testify/require"
)

func TestLive_RoundTrip(t *testing.T) {
	connection := os.Getenv("REDIS_URL")
	if connection == "" {
		t.Skip("REDIS_URL is not set")
	}

	ctx := context.Background()

	graphSession, err := redisgraph.OpenConfig(ctx, redisgraph.Config{
		Transport: transport.Config{
			Connection: connection,
		},
		Graph:     "redisgraph_live_test",
		Bootstrap: true,
	})
	require.NoError(t, err)

	defer func() {
		require.NoError(t, graphSession.Delete(ctx))
		require.NoError(t, graphSession.Close())
	}()

	statistics, err := graphSession.MutateWithStatistics(ctx, "CREATE (:Person {name: 'alice'})-[:Knows {since: 2020}]->(:Person {name: 'bob'})")
	require.NoError(t, err)

	created, found := statistics.Int(graph.StatNodesCreated)
	require.True(t, found)
	require.Equal(t, int64(2), created)

	rows, err := redisgraph.QueryAll[scan.Tuple3[graph.Node, graph.Edge, graph.Node]](ctx, graphSession, "MATCH (a)-[r:Knows]->(b) RETURN a, r, b")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, rows[0].V1.HasLabel("Person"))
	require.Equal(t, graph.RedisString("Knows"), rows[0].V2.TypeName)

	path, err := redisgraph.QueryOne[graph.Path](ctx, graphSession, "MATCH p = (:Person)-[:Knows]->(:Person) RETURN p")
	require.NoError(t, err)
	require.Equal(t, 1, path.Len())
}
