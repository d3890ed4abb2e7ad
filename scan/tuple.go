package scan

// Tuple types project one row of a result set into a fixed number of typed cells. Element Vk receives the cell of
// column k-1 and the result set must have exactly as many columns as the tuple has elements.

type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func (s *Tuple2[T1, T2]) Targets() []any {
	return []any{&s.V1, &s.V2}
}

type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func (s *Tuple3[T1, T2, T3]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3}
}

type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

func (s *Tuple4[T1, T2, T3, T4]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4}
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

func (s *Tuple5[T1, T2, T3, T4, T5]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5}
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

func (s *Tuple6[T1, T2, T3, T4, T5, T6]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6}
}

type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

func (s *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6, &s.V7}
}

type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

func (s *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6, &s.V7, &s.V8}
}

type Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

func (s *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6, &s.V7, &s.V8, &s.V9}
}

type Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
}

func (s *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6, &s.V7, &s.V8, &s.V9, &s.V10}
}

type Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
}

func (s *Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6, &s.V7, &s.V8, &s.V9, &s.V10, &s.V11}
}

type Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
	V12 T12
}

func (s *Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) Targets() []any {
	return []any{&s.V1, &s.V2, &s.V3, &s.V4, &s.V5, &s.V6, &s.V7, &s.V8, &s.V9, &s.V10, &s.V11, &s.V12}
}
