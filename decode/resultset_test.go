package decode_test

import (
	"testing"

	"github.com/specterops/redisgraph/cache"
	"github.com/specterops/redisgraph/decode"
	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/util/test"
	"github.com/specterops/redisgraph/wire"
	"github.com/stretchr/testify/require"
)

func TestResultSet_SingleInteger(t *testing.T) {
	// [[[1]], [[[3, 42]]], ["stats"]]
	value := wire.Array(
		wire.Array(wire.Array(wire.Int(1))),
		wire.Array(wire.Array(wire.Array(wire.Int(3), wire.Int(42)))),
		wire.Array(wire.String("stats")),
	)

	resultSet, err := decode.ResultSet(value, cache.NewIdentifiers())
	require.NoError(t, err)

	require.Equal(t, 1, resultSet.NumColumns())
	require.Equal(t, 1, resultSet.NumRows())
	require.Equal(t, graph.ScalarColumn{graph.Integer(42)}, resultSet.Columns[0])
	require.Equal(t, graph.Statistics{"stats"}, resultSet.Statistics)
}

func TestResultSet_MixedColumns(t *testing.T) {
	var (
		identifiers = newIdentifiers([]graph.RedisString{"Person"}, []graph.RedisString{"Knows"}, []graph.RedisString{"name"})
		value       = test.Envelope(
			test.Header(
				test.Column(graph.ColumnTypeScalar, "n.name"),
				test.Column(graph.ColumnTypeNode, "n"),
				test.Column(graph.ColumnTypeRelation, "r"),
			),
			[]wire.Value{
				test.Row(test.String("alice"), test.NodeValue(0, []int64{0}), test.EdgeValue(0, 0, 0, 1)),
				test.Row(test.String("bob"), test.NodeValue(1, []int64{0}), test.EdgeValue(1, 0, 1, 0)),
			},
			"Cached execution: 1",
		)
	)

	resultSet, err := decode.ResultSet(value, identifiers)
	require.NoError(t, err)

	require.Equal(t, 3, resultSet.NumColumns())
	require.Equal(t, 2, resultSet.NumRows())

	for _, column := range resultSet.Columns {
		require.Equal(t, resultSet.NumRows(), column.Len())
	}

	require.Equal(t, graph.ColumnTypeScalar, resultSet.Columns[0].ColumnType())
	require.Equal(t, graph.ColumnTypeNode, resultSet.Columns[1].ColumnType())
	require.Equal(t, graph.ColumnTypeRelation, resultSet.Columns[2].ColumnType())

	node, err := resultSet.Node(1, 1)
	require.NoError(t, err)
	require.True(t, node.HasLabel("Person"))

	edge, err := resultSet.Relation(0, 2)
	require.NoError(t, err)
	require.Equal(t, graph.RedisString("Knows"), edge.TypeName)
}

func TestResultSet_NoRows(t *testing.T) {
	value := test.Envelope(test.Header(test.Column(graph.ColumnTypeScalar, "x"), test.Column(graph.ColumnTypeNode, "n")), nil)

	resultSet, err := decode.ResultSet(value, cache.NewIdentifiers())
	require.NoError(t, err)
	require.Equal(t, 2, resultSet.NumColumns())
	require.Equal(t, 0, resultSet.NumRows())
}

func TestResultSet_StatisticsOnly(t *testing.T) {
	resultSet, err := decode.ResultSet(test.StatisticsEnvelope("Nodes created: 1", "Properties set: 2"), cache.NewIdentifiers())
	require.NoError(t, err)

	require.NotNil(t, resultSet.Columns)
	require.Equal(t, 0, resultSet.NumColumns())
	require.Equal(t, 0, resultSet.NumRows())

	created, found := resultSet.Statistics.Int(graph.StatNodesCreated)
	require.True(t, found)
	require.Equal(t, int64(1), created)
}

func TestResultSet_LabelMiss(t *testing.T) {
	var (
		identifiers = newIdentifiers([]graph.RedisString{"a", "b", "c"}, nil, nil)
		value       = test.Envelope(
			test.Header(test.Column(graph.ColumnTypeNode, "n")),
			[]wire.Value{test.Row(test.NodeValue(0, []int64{5}))},
		)
	)

	_, err := decode.ResultSet(value, identifiers)
	require.ErrorIs(t, err, graph.ErrLabelNotFound)

	identifiers.Replace(graph.IdentifierLabel, []graph.RedisString{"a", "b", "c", "d", "e", "Person"})

	resultSet, err := decode.ResultSet(value, identifiers)
	require.NoError(t, err)

	node, err := resultSet.Node(0, 0)
	require.NoError(t, err)
	require.Equal(t, []graph.RedisString{"Person"}, node.Labels)
}

func TestResultSet_Malformed(t *testing.T) {
	var (
		identifiers = cache.NewIdentifiers()
		header      = test.Header(test.Column(graph.ColumnTypeScalar, "x"))
		serverErr   *graph.ServerTypeError
	)

	testCases := []struct {
		name  string
		value wire.Value
	}{
		{name: "not an array", value: wire.String("OK")},
		{name: "two elements", value: wire.Array(header, wire.Array())},
		{name: "four elements", value: wire.Array(header, wire.Array(), test.Statistics(), wire.Array())},
		{name: "header not an array", value: wire.Array(wire.Int(1), wire.Array(), test.Statistics())},
		{name: "rows not an array", value: wire.Array(header, wire.Int(1), test.Statistics())},
		{name: "row not an array", value: wire.Array(header, wire.Array(wire.Int(1)), test.Statistics())},
		{name: "short row", value: test.Envelope(header, []wire.Value{test.Row()})},
		{name: "long row", value: test.Envelope(header, []wire.Value{test.Row(test.Integer(1), test.Integer(2))})},
		{name: "empty header cell", value: test.Envelope(test.Header(wire.Array()), nil)},
		{name: "header type not integer", value: test.Envelope(test.Header(wire.Array(wire.String("1"))), nil)},
		{name: "unknown column type", value: test.Envelope(test.Header(test.Column(graph.ColumnTypeUnknown, "x")), nil)},
		{name: "column type out of range", value: test.Envelope(test.Header(test.Column(graph.ColumnType(4), "x")), nil)},
		{name: "statistics not an array", value: wire.Array(wire.Int(1))},
		{name: "statistics entry not data", value: wire.Array(wire.Array(wire.Int(1)))},
		{name: "bad cell", value: test.Envelope(header, []wire.Value{test.Row(wire.Int(1))})},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resultSet, err := decode.ResultSet(testCase.value, identifiers)

			require.ErrorAs(t, err, &serverErr)
			require.Nil(t, resultSet)
		})
	}
}

func TestStatistics_InvalidUTF8(t *testing.T) {
	_, err := decode.Statistics(wire.Array(wire.String("ok"), wire.Data([]byte{0xc3, 0x28})))
	require.ErrorIs(t, err, graph.ErrInvalidUTF8)
}

func TestNames(t *testing.T) {
	names, err := decode.Names(test.Names("label", "Person", "Company"), cache.NewIdentifiers())
	require.NoError(t, err)
	require.Equal(t, []graph.RedisString{"Person", "Company"}, names)

	var serverErr *graph.ServerTypeError

	_, err = decode.Names(test.StatisticsEnvelope(), cache.NewIdentifiers())
	require.ErrorAs(t, err, &serverErr)

	_, err = decode.Names(test.Envelope(
		test.Header(test.Column(graph.ColumnTypeScalar, "label")),
		[]wire.Value{test.Row(test.Integer(1))},
	), cache.NewIdentifiers())
	require.ErrorAs(t, err, &serverErr)
}
