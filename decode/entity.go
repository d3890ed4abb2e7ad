package decode

import (
	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/wire"
)

// Node decodes a [id, label ids, properties] node representation.
func Node(value wire.Value, resolver Resolver) (graph.Node, error) {
	elements, isArray := value.Array()
	if !isArray {
		return graph.Node{}, graph.NewServerTypeError("expected array as node representation, found %s", value.Kind())
	}

	if len(elements) != 3 {
		return graph.Node{}, graph.NewServerTypeError("expected array of size 3 as node representation, found size %d", len(elements))
	}

	labelIDs, isArray := elements[1].Array()
	if !isArray {
		return graph.Node{}, graph.NewServerTypeError("expected array as label IDs")
	}

	labels := make([]graph.RedisString, len(labelIDs))

	for idx, labelIDValue := range labelIDs {
		if labelID, isInt := labelIDValue.Int(); !isInt {
			return graph.Node{}, graph.NewServerTypeError("expected integer as label ID, found %s", labelIDValue.Kind())
		} else if label, err := resolver.Resolve(graph.IdentifierLabel, labelID); err != nil {
			return graph.Node{}, err
		} else {
			labels[idx] = label
		}
	}

	if properties, err := Properties(elements[2], resolver); err != nil {
		return graph.Node{}, err
	} else {
		return graph.Node{
			Labels:     labels,
			Properties: properties,
		}, nil
	}
}

// Edge decodes an [id, type id, source id, target id, properties] relationship representation. The node ids are
// ignored.
func Edge(value wire.Value, resolver Resolver) (graph.Edge, error) {
	elements, isArray := value.Array()
	if !isArray {
		return graph.Edge{}, graph.NewServerTypeError("expected array as relationship representation, found %s", value.Kind())
	}

	if len(elements) != 5 {
		return graph.Edge{}, graph.NewServerTypeError("expected array of size 5 as relationship representation, found size %d", len(elements))
	}

	if typeID, isInt := elements[1].Int(); !isInt {
		return graph.Edge{}, graph.NewServerTypeError("expected integer as relationship type ID, found %s", elements[1].Kind())
	} else if typeName, err := resolver.Resolve(graph.IdentifierRelationshipType, typeID); err != nil {
		return graph.Edge{}, err
	} else if properties, err := Properties(elements[4], resolver); err != nil {
		return graph.Edge{}, err
	} else {
		return graph.Edge{
			TypeName:   typeName,
			Properties: properties,
		}, nil
	}
}

// Path decodes a [nodes, edges] path representation where both sides are array scalars. The nodes side must not be
// empty.
func Path(value wire.Value, resolver Resolver) (graph.RawPath, error) {
	elements, isArray := value.Array()
	if !isArray {
		return graph.RawPath{}, graph.NewServerTypeError("expected array as path representation, found %s", value.Kind())
	}

	if len(elements) != 2 {
		return graph.RawPath{}, graph.NewServerTypeError("expected array of size 2 as path representation, found size %d", len(elements))
	}

	if nodes, err := pathElements[graph.Node](elements[0], resolver, "node"); err != nil {
		return graph.RawPath{}, err
	} else if len(nodes) == 0 {
		return graph.RawPath{}, graph.NewServerTypeError("expected at least one node in path representation")
	} else if edges, err := pathElements[graph.Edge](elements[1], resolver, "edge"); err != nil {
		return graph.RawPath{}, err
	} else {
		return graph.RawPath{
			Nodes: nodes,
			Edges: edges,
		}, nil
	}
}

func pathElements[T graph.Scalar](value wire.Value, resolver Resolver, elementName string) ([]T, error) {
	decoded, err := Scalar(value, resolver)
	if err != nil {
		return nil, err
	}

	array, isArray := decoded.(graph.Array)
	if !isArray {
		return nil, graph.NewServerTypeError("expected path %ss to be an array, not %s", elementName, decoded.ScalarType())
	}

	typedElements := make([]T, len(array))

	for idx, element := range array {
		if typedElement, typeOK := element.(T); !typeOK {
			return nil, graph.NewServerTypeError("unexpected non-%s in path %ss array: %s", elementName, elementName, element.ScalarType())
		} else {
			typedElements[idx] = typedElement
		}
	}

	return typedElements, nil
}

// Properties decodes a list of [key id, value type, value] property entries.
func Properties(value wire.Value, resolver Resolver) (graph.Properties, error) {
	entries, isArray := value.Array()
	if !isArray {
		return nil, graph.NewServerTypeError("expected array as properties representation, found %s", value.Kind())
	}

	properties := make(graph.Properties, len(entries))

	for _, entry := range entries {
		propertyElements, isArray := entry.Array()
		if !isArray {
			return nil, graph.NewServerTypeError("expected array as property representation, found %s", entry.Kind())
		}

		if len(propertyElements) != 3 {
			return nil, graph.NewServerTypeError("expected array of size 3 as property representation, found size %d", len(propertyElements))
		}

		if keyID, isInt := propertyElements[0].Int(); !isInt {
			return nil, graph.NewServerTypeError("expected integer as property key ID, found %s", propertyElements[0].Kind())
		} else if key, err := resolver.Resolve(graph.IdentifierPropertyKey, keyID); err != nil {
			return nil, err
		} else if valueType, isInt := propertyElements[1].Int(); !isInt {
			return nil, graph.NewServerTypeError("expected integer as property value type, found %s", propertyElements[1].Kind())
		} else if propertyValue, err := scalarPayload(graph.ScalarType(valueType), propertyElements[2], resolver); err != nil {
			return nil, err
		} else {
			properties[key] = propertyValue
		}
	}

	return properties, nil
}
