// Package wire holds the generic value tree that the transport produces from raw protocol replies. A Value has one of
// four shapes: nil, integer, byte string or array of values.
package wire

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindNil Kind = iota
	KindInt
	KindData
	KindArray
)

func (s Kind) String() string {
	switch s {
	case KindNil:
		return "nil"
	case KindInt:
		return "integer"
	case KindData:
		return "byte string"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is an immutable node of a reply tree. The zero Value is nil.
type Value struct {
	kind    Kind
	integer int64
	data    []byte
	array   []Value
}

func Nil() Value {
	return Value{}
}

func Int(value int64) Value {
	return Value{
		kind:    KindInt,
		integer: value,
	}
}

func Data(value []byte) Value {
	return Value{
		kind: KindData,
		data: value,
	}
}

func String(value string) Value {
	return Data([]byte(value))
}

func Array(values ...Value) Value {
	if values == nil {
		values = []Value{}
	}

	return Value{
		kind:  KindArray,
		array: values,
	}
}

func (s Value) Kind() Kind {
	return s.kind
}

func (s Value) IsNil() bool {
	return s.kind == KindNil
}

func (s Value) Int() (int64, bool) {
	return s.integer, s.kind == KindInt
}

// Data returns the byte string held by the value. The returned slice must not be modified.
func (s Value) Data() ([]byte, bool) {
	return s.data, s.kind == KindData
}

// Array returns the elements held by the value. The returned slice must not be modified.
func (s Value) Array() ([]Value, bool) {
	return s.array, s.kind == KindArray
}

// Len returns the number of elements of an array value and zero for every other kind.
func (s Value) Len() int {
	return len(s.array)
}

// Clone returns a deep copy of the value tree.
func (s Value) Clone() Value {
	switch s.kind {
	case KindData:
		return Data(append([]byte(nil), s.data...))

	case KindArray:
		elements := make([]Value, len(s.array))

		for idx, element := range s.array {
			elements[idx] = element.Clone()
		}

		return Array(elements...)

	default:
		return s
	}
}

func (s Value) String() string {
	switch s.kind {
	case KindNil:
		return "nil"

	case KindInt:
		return fmt.Sprintf("%d", s.integer)

	case KindData:
		return fmt.Sprintf("%q", s.data)

	case KindArray:
		elements := make([]string, len(s.array))

		for idx, element := range s.array {
			elements[idx] = element.String()
		}

		return "[" + strings.Join(elements, ", ") + "]"

	default:
		return "invalid"
	}
}
