package scan_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/scan"
	"github.com/stretchr/testify/require"
)

func newResultSet(columns ...graph.Column) *graph.ResultSet {
	return &graph.ResultSet{
		Columns: columns,
	}
}

func TestOne_Scalar(t *testing.T) {
	resultSet := newResultSet(graph.ScalarColumn{graph.Integer(42)})

	value, err := scan.One[int64](resultSet)
	require.NoError(t, err)
	require.Equal(t, int64(42), value)

	intValue, err := scan.One[int](resultSet)
	require.NoError(t, err)
	require.Equal(t, 42, intValue)

	scalar, err := scan.One[graph.Scalar](resultSet)
	require.NoError(t, err)
	require.Equal(t, graph.Integer(42), scalar)
}

func TestOne_ResultSetIdentity(t *testing.T) {
	resultSet := newResultSet(graph.ScalarColumn{graph.Integer(1)})

	pointer, err := scan.One[*graph.ResultSet](resultSet)
	require.NoError(t, err)
	require.Same(t, resultSet, pointer)

	value, err := scan.One[graph.ResultSet](resultSet)
	require.NoError(t, err)
	require.Equal(t, *resultSet, value)
}

func TestOne_Tuple(t *testing.T) {
	resultSet := newResultSet(
		graph.ScalarColumn{graph.RedisString("hi")},
		graph.ScalarColumn{graph.Integer(7)},
		graph.ScalarColumn{graph.Boolean(true)},
	)

	tuple, err := scan.One[scan.Tuple3[string, int64, bool]](resultSet)
	require.NoError(t, err)
	require.Equal(t, scan.Tuple3[string, int64, bool]{V1: "hi", V2: 7, V3: true}, tuple)
}

func TestOne_TupleArityMismatch(t *testing.T) {
	var (
		resultSet = newResultSet(graph.ScalarColumn{graph.Integer(1)}, graph.ScalarColumn{graph.Integer(2)})
		clientErr *graph.ClientTypeError
	)

	_, err := scan.One[scan.Tuple3[int64, int64, int64]](resultSet)
	require.ErrorAs(t, err, &clientErr)
	require.Contains(t, err.Error(), "tuple has 3 entries but result table has 2 columns")

	var first, second, third int64

	err = scan.Row(resultSet, 0, &first, &second, &third)
	require.ErrorAs(t, err, &clientErr)
}

func TestOne_Empty(t *testing.T) {
	var clientErr *graph.ClientTypeError

	_, err := scan.One[int64](newResultSet(graph.ScalarColumn{}))
	require.ErrorAs(t, err, &clientErr)

	_, err = scan.One[int64](newResultSet())
	require.ErrorAs(t, err, &clientErr)
}

func TestAll(t *testing.T) {
	var (
		person    = graph.NewNode(graph.Properties{"name": graph.RedisString("alice")}, "Person")
		company   = graph.NewNode(nil, "Company")
		worksAt   = graph.NewEdge("WorksAt", nil)
		resultSet = newResultSet(
			graph.NodeColumn{person, person},
			graph.RelationColumn{worksAt, worksAt},
			graph.NodeColumn{company, company},
		)
	)

	rows, err := scan.All[scan.Tuple3[graph.Node, graph.Edge, graph.Node]](resultSet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		require.Equal(t, person, row.V1)
		require.Equal(t, worksAt, row.V2)
		require.Equal(t, company, row.V3)
	}

	nodes, err := scan.All[graph.Node](resultSet)
	require.NoError(t, err)
	require.Equal(t, []graph.Node{person, person}, nodes)
}

func TestAll_ArityCheckedWithoutRows(t *testing.T) {
	var clientErr *graph.ClientTypeError

	_, err := scan.All[scan.Tuple2[int64, int64]](newResultSet(graph.ScalarColumn{}))
	require.ErrorAs(t, err, &clientErr)

	rows, err := scan.All[scan.Tuple2[int64, int64]](newResultSet(graph.ScalarColumn{}, graph.ScalarColumn{}))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestMap_TypeMismatch(t *testing.T) {
	var (
		clientErr *graph.ClientTypeError
		integer   int64
		double    float64
		text      string
	)

	require.ErrorAs(t, scan.Map(graph.RedisString("42"), &integer), &clientErr)
	require.ErrorAs(t, scan.Map(graph.Integer(1), &double), &clientErr)
	require.ErrorAs(t, scan.Map(graph.Nil{}, &text), &clientErr)
	require.ErrorAs(t, scan.Map(graph.Integer(1), integer), &clientErr)
}

func TestMap_Strings(t *testing.T) {
	var (
		text     string
		raw      graph.RedisString
		rawBytes []byte
	)

	require.NoError(t, scan.Map(graph.RedisString("hi"), &text))
	require.Equal(t, "hi", text)

	invalid := graph.RedisString([]byte{0xff})

	require.ErrorIs(t, scan.Map(invalid, &text), graph.ErrInvalidUTF8)
	require.NoError(t, scan.Map(invalid, &raw))
	require.Equal(t, invalid, raw)
	require.NoError(t, scan.Map(invalid, &rawBytes))
	require.Equal(t, []byte{0xff}, rawBytes)
}

func TestMap_Nil(t *testing.T) {
	var (
		nothing   graph.Nil
		optional  = new(int64)
		node      *graph.Node
		clientErr *graph.ClientTypeError
	)

	require.NoError(t, scan.Map(graph.Nil{}, &nothing))
	require.NoError(t, scan.Map(nil, &nothing))
	require.ErrorAs(t, scan.Map(graph.Integer(0), &nothing), &clientErr)

	require.NoError(t, scan.Map(graph.Nil{}, &optional))
	require.Nil(t, optional)

	require.NoError(t, scan.Map(graph.Integer(3), &optional))
	require.NotNil(t, optional)
	require.Equal(t, int64(3), *optional)

	require.NoError(t, scan.Map(graph.NewNode(nil, "A"), &node))
	require.NotNil(t, node)
	require.True(t, node.HasLabel("A"))

	require.ErrorAs(t, scan.Map(graph.Integer(3), &node), &clientErr)
}

func TestMap_Arrays(t *testing.T) {
	var (
		array   graph.Array
		scalars []graph.Scalar
		value   = graph.Array{graph.Integer(1), graph.RedisString("a")}
	)

	require.NoError(t, scan.Map(value, &array))
	require.Equal(t, value, array)

	require.NoError(t, scan.Map(value, &scalars))
	require.Equal(t, []graph.Scalar{graph.Integer(1), graph.RedisString("a")}, scalars)
}

func TestMap_Paths(t *testing.T) {
	var (
		raw = graph.RawPath{
			Nodes: []graph.Node{graph.NewNode(nil, "A"), graph.NewNode(nil, "B")},
			Edges: []graph.Edge{graph.NewEdge("R", nil)},
		}
		rawTarget graph.RawPath
		linked    graph.Path
		optional  *graph.Path
		clientErr *graph.ClientTypeError
	)

	require.NoError(t, scan.Map(raw, &rawTarget))
	require.Equal(t, raw, rawTarget)

	require.NoError(t, scan.Map(raw, &linked))
	require.Equal(t, raw, linked.RawPath())

	require.NoError(t, scan.Map(raw, &optional))
	require.NotNil(t, optional)

	empty := graph.RawPath{Nodes: []graph.Node{graph.NewNode(nil, "A")}}
	require.ErrorAs(t, scan.Map(empty, &linked), &clientErr)
}

type upperName string

func (s *upperName) UnmarshalScalar(scalar graph.Scalar) error {
	if name, typeOK := scalar.(graph.RedisString); !typeOK {
		return errors.New("expected a string")
	} else {
		*s = upperName("NAME:" + name.String())
		return nil
	}
}

func TestMap_Unmarshaler(t *testing.T) {
	var name upperName

	require.NoError(t, scan.Map(graph.RedisString("x"), &name))
	require.Equal(t, upperName("NAME:x"), name)
	require.Error(t, scan.Map(graph.Integer(1), &name))
}

func TestCell_ErrorPosition(t *testing.T) {
	var (
		resultSet = newResultSet(graph.ScalarColumn{graph.Integer(1), graph.RedisString("x")})
		value     int64
	)

	err := scan.Cell(resultSet, 1, 0, &value)
	require.ErrorContains(t, err, "row 1 column 0")
}

func TestMap_IntRange(t *testing.T) {
	var (
		value     int
		optional  *int
		clientErr *graph.ClientTypeError
	)

	require.NoError(t, scan.Map(graph.Integer(math.MinInt32), &value))
	require.Equal(t, math.MinInt32, value)

	if strconv.IntSize == 32 {
		require.ErrorAs(t, scan.Map(graph.Integer(math.MaxInt64), &value), &clientErr)
		require.ErrorAs(t, scan.Map(graph.Integer(math.MinInt64), &optional), &clientErr)
		require.Nil(t, optional)
	} else {
		require.NoError(t, scan.Map(graph.Integer(math.MaxInt64), &value))
		require.Equal(t, int64(math.MaxInt64), int64(value))

		require.NoError(t, scan.Map(graph.Integer(math.MinInt64), &optional))
		require.Equal(t, int64(math.MinInt64), int64(*optional))
	}
}
