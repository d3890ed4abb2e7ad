package graph_test

import (
	"testing"

	"github.com/specterops/redisgraph/graph"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Get(t *testing.T) {
	statistics := graph.Statistics{
		"Labels added: 1",
		"Nodes created: 2",
		"Cached execution: 0",
		"Query internal execution time: 0.532100 milliseconds",
	}

	value, found := statistics.Get(graph.StatNodesCreated)
	require.True(t, found)
	require.Equal(t, 2.0, value)

	value, found = statistics.Get(graph.StatInternalExecutionTime)
	require.True(t, found)
	require.InDelta(t, 0.5321, value, 1e-9)

	count, found := statistics.Int(graph.StatLabelsAdded)
	require.True(t, found)
	require.Equal(t, int64(1), count)

	_, found = statistics.Get(graph.StatRelationshipsDeleted)
	require.False(t, found)

	_, found = graph.Statistics{"Nodes created: many"}.Get(graph.StatNodesCreated)
	require.False(t, found)
}
