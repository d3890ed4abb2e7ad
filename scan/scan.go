// Package scan projects a decoded graph.ResultSet into the shape a caller asks for: the result set itself, a single
// cell, a fixed-arity tuple of cells from one row or a slice holding one such value per row.
package scan

import (
	"fmt"
	"unicode/utf8"

	"github.com/specterops/redisgraph/graph"
)

// ScalarUnmarshaler is implemented by types that can populate themselves from a single decoded cell.
type ScalarUnmarshaler interface {
	UnmarshalScalar(scalar graph.Scalar) error
}

// RowTarget is implemented by tuple types. Targets returns one scan target per result column, in column order.
type RowTarget interface {
	Targets() []any
}

// One projects the first row of the result set into a value of type T. When T is graph.ResultSet or
// *graph.ResultSet the result set itself is returned.
func One[T any](resultSet *graph.ResultSet) (T, error) {
	var value T

	switch typedTarget := any(&value).(type) {
	case *graph.ResultSet:
		*typedTarget = *resultSet
		return value, nil

	case **graph.ResultSet:
		*typedTarget = resultSet
		return value, nil
	}

	return value, Row(resultSet, 0, &value)
}

// All projects every row of the result set into a value of type T. Tuple arity is checked once against the column
// count, even when the result set holds no rows.
func All[T any](resultSet *graph.ResultSet) ([]T, error) {
	var probe T

	if rowTarget, isRowTarget := any(&probe).(RowTarget); isRowTarget {
		if err := checkArity(resultSet, len(rowTarget.Targets())); err != nil {
			return nil, err
		}
	}

	var (
		numRows = resultSet.NumRows()
		rows    = make([]T, numRows)
	)

	for rowIdx := 0; rowIdx < numRows; rowIdx++ {
		if err := Row(resultSet, rowIdx, &rows[rowIdx]); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// Row maps the row at rowIdx into the given targets. A single target that is not a RowTarget receives the cell of the
// first column. Otherwise the number of targets must equal the number of result columns and target k receives the
// cell of column k.
func Row(resultSet *graph.ResultSet, rowIdx int, targets ...any) error {
	if len(targets) == 1 {
		if rowTarget, isRowTarget := targets[0].(RowTarget); isRowTarget {
			targets = rowTarget.Targets()
		} else {
			return Cell(resultSet, rowIdx, 0, targets[0])
		}
	}

	if err := checkArity(resultSet, len(targets)); err != nil {
		return err
	}

	for columnIdx, target := range targets {
		if err := Cell(resultSet, rowIdx, columnIdx, target); err != nil {
			return err
		}
	}

	return nil
}

func checkArity(resultSet *graph.ResultSet, arity int) error {
	if numColumns := resultSet.NumColumns(); arity != numColumns {
		return graph.NewClientTypeError("failed to construct tuple: tuple has %d entries but result table has %d columns", arity, numColumns)
	}

	return nil
}

// Cell maps the cell at the given position into target, which must be a pointer to a supported type.
func Cell(resultSet *graph.ResultSet, rowIdx, columnIdx int, target any) error {
	if cell, err := resultSet.Cell(rowIdx, columnIdx); err != nil {
		return err
	} else if err := Map(cell, target); err != nil {
		return fmt.Errorf("row %d column %d: %w", rowIdx, columnIdx, err)
	}

	return nil
}

// Map converts a single scalar into target. Supported targets are pointers to graph.Scalar, graph.Nil, bool, int64,
// int, float64, string, []byte, graph.RedisString, graph.Array, []graph.Scalar, graph.Node, graph.Edge,
// graph.RawPath and graph.Path, pointer-to-pointer forms of these that accept graph.Nil as nil, and any
// ScalarUnmarshaler.
func Map(scalar graph.Scalar, target any) error {
	if scalar == nil {
		scalar = graph.Nil{}
	}

	if mapped, err := mapScalar(scalar, target); err != nil {
		return err
	} else if !mapped {
		return graph.NewClientTypeError("unable to map %s scalar into target type %T", scalar.ScalarType(), target)
	}

	return nil
}

func mapScalar(scalar graph.Scalar, target any) (bool, error) {
	switch typedTarget := target.(type) {
	case ScalarUnmarshaler:
		return true, typedTarget.UnmarshalScalar(scalar)

	case *graph.Scalar:
		*typedTarget = scalar
		return true, nil

	case *graph.Nil:
		_, isNil := scalar.(graph.Nil)
		return isNil, nil

	case *bool:
		if value, typeOK := scalar.(graph.Boolean); typeOK {
			*typedTarget = bool(value)
			return true, nil
		}

	case *int64:
		if value, typeOK := scalar.(graph.Integer); typeOK {
			*typedTarget = int64(value)
			return true, nil
		}

	case *int:
		if value, typeOK := scalar.(graph.Integer); !typeOK {
			return false, nil
		} else if int64(int(value)) != int64(value) {
			return true, graph.NewClientTypeError("integer %d overflows int target", int64(value))
		} else {
			*typedTarget = int(value)
			return true, nil
		}

	case *float64:
		if value, typeOK := scalar.(graph.Double); typeOK {
			*typedTarget = float64(value)
			return true, nil
		}

	case *string:
		if value, typeOK := scalar.(graph.RedisString); !typeOK {
			return false, nil
		} else if !utf8.ValidString(string(value)) {
			return true, fmt.Errorf("string scalar: %w", graph.ErrInvalidUTF8)
		} else {
			*typedTarget = string(value)
			return true, nil
		}

	case *graph.RedisString:
		if value, typeOK := scalar.(graph.RedisString); typeOK {
			*typedTarget = value
			return true, nil
		}

	case *[]byte:
		if value, typeOK := scalar.(graph.RedisString); typeOK {
			*typedTarget = value.Bytes()
			return true, nil
		}

	case *graph.Array:
		if value, typeOK := scalar.(graph.Array); typeOK {
			*typedTarget = value
			return true, nil
		}

	case *[]graph.Scalar:
		if value, typeOK := scalar.(graph.Array); typeOK {
			*typedTarget = value
			return true, nil
		}

	case *graph.Node:
		if value, typeOK := scalar.(graph.Node); typeOK {
			*typedTarget = value
			return true, nil
		}

	case *graph.Edge:
		if value, typeOK := scalar.(graph.Edge); typeOK {
			*typedTarget = value
			return true, nil
		}

	case *graph.RawPath:
		if value, typeOK := scalar.(graph.RawPath); typeOK {
			*typedTarget = value
			return true, nil
		}

	case *graph.Path:
		if value, typeOK := scalar.(graph.RawPath); !typeOK {
			return false, nil
		} else if path, err := graph.NewPath(value); err != nil {
			return true, err
		} else {
			*typedTarget = *path
			return true, nil
		}

	case **bool:
		return mapOptional(scalar, typedTarget)

	case **int64:
		return mapOptional(scalar, typedTarget)

	case **int:
		return mapOptional(scalar, typedTarget)

	case **float64:
		return mapOptional(scalar, typedTarget)

	case **string:
		return mapOptional(scalar, typedTarget)

	case **graph.RedisString:
		return mapOptional(scalar, typedTarget)

	case **graph.Node:
		return mapOptional(scalar, typedTarget)

	case **graph.Edge:
		return mapOptional(scalar, typedTarget)

	case **graph.RawPath:
		return mapOptional(scalar, typedTarget)

	case **graph.Path:
		return mapOptional(scalar, typedTarget)
	}

	return false, nil
}

func mapOptional[T any](scalar graph.Scalar, target **T) (bool, error) {
	if graph.IsNil(scalar) {
		*target = nil
		return true, nil
	}

	value := new(T)

	if mapped, err := mapScalar(scalar, value); !mapped || err != nil {
		return mapped, err
	}

	*target = value
	return true, nil
}
