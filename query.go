package redisgraph

import (
	"context"

	"github.com/specterops/redisgraph/scan"
)

// QueryOne executes the query and projects the first row of its result into a value of type T. T may be
// graph.ResultSet, a single supported scan target type or one of the scan.Tuple types.
func QueryOne[T any](ctx context.Context, graphSession *Graph, query string) (T, error) {
	if resultSet, err := graphSession.Query(ctx, query); err != nil {
		var empty T
		return empty, err
	} else {
		return scan.One[T](resultSet)
	}
}

// QueryAll executes the query and projects every row of its result into a value of type T.
func QueryAll[T any](ctx context.Context, graphSession *Graph, query string) ([]T, error) {
	if resultSet, err := graphSession.Query(ctx, query); err != nil {
		return nil, err
	} else {
		return scan.All[T](resultSet)
	}
}
