package decode

import (
	"fmt"
	"unicode/utf8"

	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/wire"
)

// ResultSet decodes a full reply envelope. Two shapes are accepted: [header, rows, statistics] for queries that return
// columns and [statistics] for queries that do not. Cells are decoded column-major.
func ResultSet(value wire.Value, resolver Resolver) (*graph.ResultSet, error) {
	envelope, isArray := value.Array()
	if !isArray {
		return nil, graph.NewServerTypeError("expected array as result set representation, found %s", value.Kind())
	}

	switch len(envelope) {
	case 3:
		if columns, err := Columns(envelope[0], envelope[1], resolver); err != nil {
			return nil, err
		} else if statistics, err := Statistics(envelope[2]); err != nil {
			return nil, err
		} else {
			return &graph.ResultSet{
				Columns:    columns,
				Statistics: statistics,
			}, nil
		}

	case 1:
		if statistics, err := Statistics(envelope[0]); err != nil {
			return nil, err
		} else {
			return &graph.ResultSet{
				Columns:    []graph.Column{},
				Statistics: statistics,
			}, nil
		}

	default:
		return nil, graph.NewServerTypeError("expected array of size 3 or 1 as result set representation, found size %d", len(envelope))
	}
}

// Columns decodes the header row and the row-major result table into one column per header cell.
func Columns(header, rows wire.Value, resolver Resolver) ([]graph.Column, error) {
	headerCells, isArray := header.Array()
	if !isArray {
		return nil, graph.NewServerTypeError("expected array as header row representation, found %s", header.Kind())
	}

	rowValues, isArray := rows.Array()
	if !isArray {
		return nil, graph.NewServerTypeError("expected array as result table representation, found %s", rows.Kind())
	}

	// resultTable[0][1] is row 0, column 1
	resultTable := make([][]wire.Value, len(rowValues))

	for rowIdx, rowValue := range rowValues {
		if row, isArray := rowValue.Array(); !isArray {
			return nil, graph.NewServerTypeError("expected array as result row representation, found %s", rowValue.Kind())
		} else if len(row) != len(headerCells) {
			return nil, graph.NewServerTypeError("result row %d has %d cells but the header declares %d columns", rowIdx, len(row), len(headerCells))
		} else {
			resultTable[rowIdx] = row
		}
	}

	columns := make([]graph.Column, len(headerCells))

	for columnIdx, headerCell := range headerCells {
		if columnType, err := headerColumnType(headerCell); err != nil {
			return nil, err
		} else if column, err := decodeColumn(columnType, resultTable, columnIdx, resolver); err != nil {
			return nil, err
		} else {
			columns[columnIdx] = column
		}
	}

	for _, column := range columns {
		if column.Len() != columns[0].Len() {
			return nil, graph.NewServerTypeError("result columns have unequal lengths")
		}
	}

	return columns, nil
}

func headerColumnType(headerCell wire.Value) (graph.ColumnType, error) {
	if elements, isArray := headerCell.Array(); !isArray || len(elements) == 0 {
		return 0, graph.NewServerTypeError("expected non-empty array as header cell representation")
	} else if columnType, isInt := elements[0].Int(); !isInt {
		return 0, graph.NewServerTypeError("expected integer as column type, found %s", elements[0].Kind())
	} else {
		return graph.ColumnType(columnType), nil
	}
}

func decodeColumn(columnType graph.ColumnType, resultTable [][]wire.Value, columnIdx int, resolver Resolver) (graph.Column, error) {
	switch columnType {
	case graph.ColumnTypeUnknown:
		return nil, graph.NewServerTypeError("column type is unknown")

	case graph.ColumnTypeScalar:
		if cells, err := decodeCells(resultTable, columnIdx, resolver, Scalar); err != nil {
			return nil, err
		} else {
			return graph.ScalarColumn(cells), nil
		}

	case graph.ColumnTypeNode:
		if cells, err := decodeCells(resultTable, columnIdx, resolver, Node); err != nil {
			return nil, err
		} else {
			return graph.NodeColumn(cells), nil
		}

	case graph.ColumnTypeRelation:
		if cells, err := decodeCells(resultTable, columnIdx, resolver, Edge); err != nil {
			return nil, err
		} else {
			return graph.RelationColumn(cells), nil
		}

	default:
		return nil, graph.NewServerTypeError("expected integer between 0 and 3 as column type, found %d", int64(columnType))
	}
}

func decodeCells[T any](resultTable [][]wire.Value, columnIdx int, resolver Resolver, decoder func(wire.Value, Resolver) (T, error)) ([]T, error) {
	cells := make([]T, len(resultTable))

	for rowIdx, row := range resultTable {
		if cell, err := decoder(row[columnIdx], resolver); err != nil {
			return nil, err
		} else {
			cells[rowIdx] = cell
		}
	}

	return cells, nil
}

// Statistics decodes the list of statistics messages. Every message must be valid UTF-8.
func Statistics(value wire.Value) (graph.Statistics, error) {
	entries, isArray := value.Array()
	if !isArray {
		return nil, graph.NewServerTypeError("expected array as statistics list, found %s", value.Kind())
	}

	statistics := make(graph.Statistics, len(entries))

	for idx, entry := range entries {
		if data, isData := entry.Data(); !isData {
			return nil, graph.NewServerTypeError("expected string as statistics entry, found %s", entry.Kind())
		} else if !utf8.Valid(data) {
			return nil, fmt.Errorf("statistics entry %d: %w", idx, graph.ErrInvalidUTF8)
		} else {
			statistics[idx] = string(data)
		}
	}

	return statistics, nil
}

// Names decodes the reply of an identifier listing procedure such as db.labels(). The first column must be a scalar
// column holding only strings.
func Names(value wire.Value, resolver Resolver) ([]graph.RedisString, error) {
	resultSet, err := ResultSet(value, resolver)
	if err != nil {
		return nil, err
	}

	if resultSet.NumColumns() == 0 {
		return nil, graph.NewServerTypeError("expected at least one column in identifier listing")
	}

	scalars, isScalarColumn := resultSet.Columns[0].(graph.ScalarColumn)
	if !isScalarColumn {
		return nil, graph.NewServerTypeError("expected scalars as first column in result set")
	}

	names := make([]graph.RedisString, len(scalars))

	for idx, scalar := range scalars {
		if name, isString := scalar.(graph.RedisString); !isString {
			return nil, graph.NewServerTypeError("expected strings in first column of result set")
		} else {
			names[idx] = name
		}
	}

	return names, nil
}
