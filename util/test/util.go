// Package test contains builders for compact reply trees and a scripted connection used by tests across the module.
package test

import (
	"strconv"

	"github.com/specterops/redisgraph/graph"
	"github.com/specterops/redisgraph/wire"
)

// Scalar builds a [type tag, payload] scalar representation.
func Scalar(scalarType graph.ScalarType, payload wire.Value) wire.Value {
	return wire.Array(wire.Int(int64(scalarType)), payload)
}

func Nil() wire.Value {
	return Scalar(graph.ScalarTypeNil, wire.Nil())
}

func String(value string) wire.Value {
	return Scalar(graph.ScalarTypeString, wire.String(value))
}

func Integer(value int64) wire.Value {
	return Scalar(graph.ScalarTypeInteger, wire.Int(value))
}

func Boolean(value bool) wire.Value {
	return Scalar(graph.ScalarTypeBoolean, wire.String(strconv.FormatBool(value)))
}

func Double(value float64) wire.Value {
	return Scalar(graph.ScalarTypeDouble, wire.String(strconv.FormatFloat(value, 'g', -1, 64)))
}

func Array(elements ...wire.Value) wire.Value {
	return Scalar(graph.ScalarTypeArray, wire.Array(elements...))
}

// Property builds a [key id, value type, payload] property entry.
func Property(keyID int64, scalarType graph.ScalarType, payload wire.Value) wire.Value {
	return wire.Array(wire.Int(keyID), wire.Int(int64(scalarType)), payload)
}

func ints(values []int64) []wire.Value {
	elements := make([]wire.Value, len(values))

	for idx, value := range values {
		elements[idx] = wire.Int(value)
	}

	return elements
}

// NodeValue builds a bare [id, label ids, properties] node representation as found in node columns.
func NodeValue(id int64, labelIDs []int64, properties ...wire.Value) wire.Value {
	return wire.Array(wire.Int(id), wire.Array(ints(labelIDs)...), wire.Array(properties...))
}

// EdgeValue builds a bare [id, type id, source id, target id, properties] relationship representation.
func EdgeValue(id, typeID, sourceID, targetID int64, properties ...wire.Value) wire.Value {
	return wire.Array(wire.Int(id), wire.Int(typeID), wire.Int(sourceID), wire.Int(targetID), wire.Array(properties...))
}

func Node(id int64, labelIDs []int64, properties ...wire.Value) wire.Value {
	return Scalar(graph.ScalarTypeNode, NodeValue(id, labelIDs, properties...))
}

func Edge(id, typeID, sourceID, targetID int64, properties ...wire.Value) wire.Value {
	return Scalar(graph.ScalarTypeEdge, EdgeValue(id, typeID, sourceID, targetID, properties...))
}

// PathValue builds a bare path representation from bare node and edge representations.
func PathValue(nodes, edges []wire.Value) wire.Value {
	var (
		nodeScalars = make([]wire.Value, len(nodes))
		edgeScalars = make([]wire.Value, len(edges))
	)

	for idx, node := range nodes {
		nodeScalars[idx] = Scalar(graph.ScalarTypeNode, node)
	}

	for idx, edge := range edges {
		edgeScalars[idx] = Scalar(graph.ScalarTypeEdge, edge)
	}

	return wire.Array(Array(nodeScalars...), Array(edgeScalars...))
}

func Path(nodes, edges []wire.Value) wire.Value {
	return Scalar(graph.ScalarTypePath, PathValue(nodes, edges))
}

// Column builds a [column type, name] header cell.
func Column(columnType graph.ColumnType, name string) wire.Value {
	return wire.Array(wire.Int(int64(columnType)), wire.String(name))
}

func Header(columns ...wire.Value) wire.Value {
	return wire.Array(columns...)
}

func Row(cells ...wire.Value) wire.Value {
	return wire.Array(cells...)
}

func Statistics(entries ...string) wire.Value {
	elements := make([]wire.Value, len(entries))

	for idx, entry := range entries {
		elements[idx] = wire.String(entry)
	}

	return wire.Array(elements...)
}

// Envelope builds a full [header, rows, statistics] reply.
func Envelope(header wire.Value, rows []wire.Value, statistics ...string) wire.Value {
	return wire.Array(header, wire.Array(rows...), Statistics(statistics...))
}

// StatisticsEnvelope builds a [statistics] reply as sent for queries that return no columns.
func StatisticsEnvelope(statistics ...string) wire.Value {
	return wire.Array(Statistics(statistics...))
}

// Names builds the reply of an identifier listing procedure returning the given names in id order.
func Names(column string, names ...string) wire.Value {
	rows := make([]wire.Value, len(names))

	for idx, name := range names {
		rows[idx] = Row(String(name))
	}

	return Envelope(Header(Column(graph.ColumnTypeScalar, column)), rows, "Cached execution: 0", "Query internal execution time: 0.1 milliseconds")
}
