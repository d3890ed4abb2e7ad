package graph

import "strconv"

// ScalarType is the closed enumeration of scalar type tags found in the compact reply encoding.
type ScalarType int64

const (
	ScalarTypeUnknown ScalarType = 0
	ScalarTypeNil     ScalarType = 1
	ScalarTypeString  ScalarType = 2
	ScalarTypeInteger ScalarType = 3
	ScalarTypeBoolean ScalarType = 4
	ScalarTypeDouble  ScalarType = 5
	ScalarTypeArray   ScalarType = 6
	ScalarTypeEdge    ScalarType = 7
	ScalarTypeNode    ScalarType = 8
	ScalarTypePath    ScalarType = 9
)

// Valid returns true if the receiver is one of the known scalar type tags, including ScalarTypeUnknown.
func (s ScalarType) Valid() bool {
	return s >= ScalarTypeUnknown && s <= ScalarTypePath
}

func (s ScalarType) String() string {
	switch s {
	case ScalarTypeUnknown:
		return "unknown"
	case ScalarTypeNil:
		return "nil"
	case ScalarTypeString:
		return "string"
	case ScalarTypeInteger:
		return "integer"
	case ScalarTypeBoolean:
		return "boolean"
	case ScalarTypeDouble:
		return "double"
	case ScalarTypeArray:
		return "array"
	case ScalarTypeEdge:
		return "edge"
	case ScalarTypeNode:
		return "node"
	case ScalarTypePath:
		return "path"
	default:
		return "invalid(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}

// Scalar is a decoded query value. The set of implementations is closed: Nil, Boolean, Integer, Double, RedisString,
// Array, Edge, Node and RawPath. Consumers are expected to type switch over these variants.
type Scalar interface {
	// ScalarType returns the wire tag of the variant.
	ScalarType() ScalarType
}

// RedisString is an opaque byte sequence returned by the server. Go strings may carry arbitrary bytes, so a RedisString
// is hashable and compares by byte content without assuming valid UTF-8. It is both the String scalar variant and the
// type of every label, relationship type and property key.
type RedisString string

// Bytes returns a copy of the raw bytes of the string.
func (s RedisString) Bytes() []byte {
	return []byte(s)
}

func (s RedisString) String() string {
	return string(s)
}

func (s RedisString) ScalarType() ScalarType {
	return ScalarTypeString
}

// Nil is the scalar variant for a null value.
type Nil struct{}

func (s Nil) ScalarType() ScalarType {
	return ScalarTypeNil
}

type Boolean bool

func (s Boolean) ScalarType() ScalarType {
	return ScalarTypeBoolean
}

type Integer int64

func (s Integer) ScalarType() ScalarType {
	return ScalarTypeInteger
}

type Double float64

func (s Double) ScalarType() ScalarType {
	return ScalarTypeDouble
}

// Array is an ordered list of scalars. Elements may be of mixed variants.
type Array []Scalar

func (s Array) ScalarType() ScalarType {
	return ScalarTypeArray
}

func (s Node) ScalarType() ScalarType {
	return ScalarTypeNode
}

func (s Edge) ScalarType() ScalarType {
	return ScalarTypeEdge
}

func (s RawPath) ScalarType() ScalarType {
	return ScalarTypePath
}

// IsNil returns true if the scalar is nil or the Nil variant.
func IsNil(scalar Scalar) bool {
	if scalar == nil {
		return true
	}

	_, isNil := scalar.(Nil)
	return isNil
}
