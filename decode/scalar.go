// Package decode turns compact query replies, delivered as generic wire.Value trees, into graph values. Identifier ids
// embedded in the reply are resolved through a Resolver; a miss surfaces as a *graph.IdentifierNotFoundError so that
// the caller may refresh its identifier cache and decode the same reply again. Decoding never modifies the reply.
package decode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/wire"
)

// Resolver maps integer identifier ids found in compact replies to their names.
type Resolver interface {
	Resolve(kind graph.IdentifierKind, id int64) (graph.RedisString, error)
}

// Scalar decodes a [type tag, payload] pair into a graph.Scalar.
func Scalar(value wire.Value, resolver Resolver) (graph.Scalar, error) {
	elements, isArray := value.Array()
	if !isArray {
		return nil, graph.NewServerTypeError("expected array as scalar representation, found %s", value.Kind())
	}

	if len(elements) != 2 {
		return nil, graph.NewServerTypeError("expected array of size 2 as scalar representation, found size %d", len(elements))
	}

	if scalarType, isInt := elements[0].Int(); !isInt {
		return nil, graph.NewServerTypeError("expected integer representing scalar type as first element of scalar array, found %s", elements[0].Kind())
	} else {
		return scalarPayload(graph.ScalarType(scalarType), elements[1], resolver)
	}
}

func scalarPayload(scalarType graph.ScalarType, payload wire.Value, resolver Resolver) (graph.Scalar, error) {
	if !scalarType.Valid() {
		return nil, graph.NewServerTypeError("expected integer between 0 and 9 (scalar type) as first element of scalar array, got %d", int64(scalarType))
	}

	switch scalarType {
	case graph.ScalarTypeNil:
		return graph.Nil{}, nil

	case graph.ScalarTypeString:
		if data, isData := payload.Data(); isData {
			return graph.RedisString(data), nil
		}

		return nil, graph.NewServerTypeError("expected binary data as scalar value (scalar type is string)")

	case graph.ScalarTypeInteger:
		if integer, isInt := payload.Int(); isInt {
			return graph.Integer(integer), nil
		}

		return nil, graph.NewServerTypeError("expected integer as scalar value (scalar type is integer)")

	case graph.ScalarTypeBoolean:
		if data, isData := payload.Data(); !isData {
			return nil, graph.NewServerTypeError("expected binary data as scalar value (scalar type is boolean)")
		} else {
			switch string(data) {
			case "true":
				return graph.Boolean(true), nil
			case "false":
				return graph.Boolean(false), nil
			default:
				return nil, graph.NewServerTypeError("expected either \"true\" or \"false\" as scalar value (scalar type is boolean)")
			}
		}

	case graph.ScalarTypeDouble:
		if data, isData := payload.Data(); !isData {
			return nil, graph.NewServerTypeError("expected string representing a double as scalar value (scalar type is double)")
		} else if !utf8.Valid(data) {
			return nil, fmt.Errorf("double scalar value: %w", graph.ErrInvalidUTF8)
		} else if double, err := parseDouble(string(data)); err != nil {
			return nil, graph.NewServerTypeError("expected string representation of double as scalar value (scalar type is double), found %q", data)
		} else {
			return graph.Double(double), nil
		}

	case graph.ScalarTypeArray:
		if elements, isArray := payload.Array(); !isArray {
			return nil, graph.NewServerTypeError("expected array as scalar value (scalar type is array)")
		} else {
			array := make(graph.Array, len(elements))

			for idx, element := range elements {
				if scalar, err := Scalar(element, resolver); err != nil {
					return nil, err
				} else {
					array[idx] = scalar
				}
			}

			return array, nil
		}

	case graph.ScalarTypeEdge:
		if edge, err := Edge(payload, resolver); err != nil {
			return nil, err
		} else {
			return edge, nil
		}

	case graph.ScalarTypeNode:
		if node, err := Node(payload, resolver); err != nil {
			return nil, err
		} else {
			return node, nil
		}

	case graph.ScalarTypePath:
		if path, err := Path(payload, resolver); err != nil {
			return nil, err
		} else {
			return path, nil
		}

	default:
		return nil, graph.NewServerTypeError("scalar type is unknown")
	}
}

// parseDouble accepts the decimal and inf/nan renditions the server writes. Values beyond the float64 range become
// signed infinity or zero. Hexadecimal mantissas and digit separators are not part of the reply format.
func parseDouble(text string) (float64, error) {
	if strings.ContainsAny(text, "_xX") {
		return 0, strconv.ErrSyntax
	}

	double, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}

	return double, nil
}
