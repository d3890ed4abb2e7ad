package graph

import (
	"strconv"
	"strings"
)

// FormatScalar renders a scalar in a cypher-like literal form. Property maps are rendered in key order so that the
// output is stable.
func FormatScalar(scalar Scalar) string {
	switch typedScalar := scalar.(type) {
	case nil, Nil:
		return "null"

	case Boolean:
		return strconv.FormatBool(bool(typedScalar))

	case Integer:
		return strconv.FormatInt(int64(typedScalar), 10)

	case Double:
		return strconv.FormatFloat(float64(typedScalar), 'g', -1, 64)

	case RedisString:
		return strconv.Quote(string(typedScalar))

	case Array:
		elements := make([]string, len(typedScalar))

		for idx, element := range typedScalar {
			elements[idx] = FormatScalar(element)
		}

		return "[" + strings.Join(elements, ", ") + "]"

	case Node:
		return FormatNode(typedScalar)

	case Edge:
		return FormatEdge(typedScalar)

	case RawPath:
		return FormatPath(typedScalar)

	default:
		return "<" + scalar.ScalarType().String() + ">"
	}
}

func FormatNode(node Node) string {
	formatted := strings.Builder{}
	formatted.WriteString("(")

	for _, label := range node.Labels {
		formatted.WriteString(":")
		formatted.WriteString(string(label))
	}

	writeProperties(&formatted, node.Properties, len(node.Labels) > 0)
	formatted.WriteString(")")

	return formatted.String()
}

func FormatEdge(edge Edge) string {
	formatted := strings.Builder{}

	formatted.WriteString("[:")
	formatted.WriteString(string(edge.TypeName))
	writeProperties(&formatted, edge.Properties, true)
	formatted.WriteString("]")

	return formatted.String()
}

func writeProperties(builder *strings.Builder, properties Properties, leadingSpace bool) {
	if len(properties) == 0 {
		return
	}

	if leadingSpace {
		builder.WriteString(" ")
	}

	builder.WriteString("{")

	for idx, key := range properties.Keys() {
		if idx > 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(string(key))
		builder.WriteString(": ")
		builder.WriteString(FormatScalar(properties[key]))
	}

	builder.WriteString("}")
}
