package arith

import (
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func integerOps[N constraints.Integer](op Operator) func(a, b N) N {
	switch op {
	case Add:
		return func(a, b N) N { return a + b }
	case Subtract:
		return func(a, b N) N { return a - b }
	case Multiply:
		return func(a, b N) N { return a * b }
	case Divide:
		return func(a, b N) N { return a / b }
	case Modulo:
		return func(a, b N) N { return a % b }
	}
	return nil
}

func floatOps[N constraints.Float](op Operator) func(a, b N) N {
	switch op {
	case Add:
		return func(a, b N) N { return a + b }
	case Subtract:
		return func(a, b N) N { return a - b }
	case Multiply:
		return func(a, b N) N { return a * b }
	case Divide:
		return func(a, b N) N { return a / b }
	case Modulo:
		return func(a, b N) N { return N(math.Mod(float64(a), float64(b))) }
	}
	return nil
}

// scaleOps implements multiplication and division by a float64 scalar. This is
// what interpolation needs from a value type.
func scaleOps[N number](op Operator) func(a N, f float64) N {
	switch op {
	case Multiply:
		return func(a N, f float64) N { return N(float64(a) * f) }
	case Divide:
		return func(a N, f float64) N { return N(float64(a) / f) }
	}
	return nil
}

// pick selects between the same-typed and the scalar implementation, depending
// on the right-hand side type U. It returns an untyped nil if neither applies.
func pick[N, U any](same func(N, N) N, scaled func(N, float64) N) any {
	switch any(*new(U)).(type) {
	case N:
		if same != nil {
			return same
		}
	case float64:
		if scaled != nil {
			return scaled
		}
	}
	return nil
}

func numericBinary[T, U any](op Operator) func(T, U) T {
	var fn any
	switch any(*new(T)).(type) {
	case int:
		fn = pick[int, U](integerOps[int](op), scaleOps[int](op))
	case int8:
		fn = pick[int8, U](integerOps[int8](op), scaleOps[int8](op))
	case int16:
		fn = pick[int16, U](integerOps[int16](op), scaleOps[int16](op))
	case int32:
		fn = pick[int32, U](integerOps[int32](op), scaleOps[int32](op))
	case int64:
		fn = pick[int64, U](integerOps[int64](op), scaleOps[int64](op))
	case uint:
		fn = pick[uint, U](integerOps[uint](op), scaleOps[uint](op))
	case uint8:
		fn = pick[uint8, U](integerOps[uint8](op), scaleOps[uint8](op))
	case uint16:
		fn = pick[uint16, U](integerOps[uint16](op), scaleOps[uint16](op))
	case uint32:
		fn = pick[uint32, U](integerOps[uint32](op), scaleOps[uint32](op))
	case uint64:
		fn = pick[uint64, U](integerOps[uint64](op), scaleOps[uint64](op))
	case float32:
		fn = pick[float32, U](floatOps[float32](op), scaleOps[float32](op))
	case float64:
		fn = pick[float64, U](floatOps[float64](op), scaleOps[float64](op))
	}
	f, _ := fn.(func(T, U) T)
	return f
}

func orderedOps[N constraints.Ordered](op Operator) func(a, b N) bool {
	switch op {
	case Equality:
		return func(a, b N) bool { return a == b }
	case Inequality:
		return func(a, b N) bool { return a != b }
	case GreaterThan:
		return func(a, b N) bool { return a > b }
	case LessThan:
		return func(a, b N) bool { return a < b }
	case GreaterOrEqual:
		return func(a, b N) bool { return a >= b }
	case LessOrEqual:
		return func(a, b N) bool { return a <= b }
	}
	return nil
}

func numericCompare[T any](op Operator) func(T, T) bool {
	var fn any
	switch any(*new(T)).(type) {
	case int:
		fn = orderedOps[int](op)
	case int8:
		fn = orderedOps[int8](op)
	case int16:
		fn = orderedOps[int16](op)
	case int32:
		fn = orderedOps[int32](op)
	case int64:
		fn = orderedOps[int64](op)
	case uint:
		fn = orderedOps[uint](op)
	case uint8:
		fn = orderedOps[uint8](op)
	case uint16:
		fn = orderedOps[uint16](op)
	case uint32:
		fn = orderedOps[uint32](op)
	case uint64:
		fn = orderedOps[uint64](op)
	case float32:
		fn = orderedOps[float32](op)
	case float64:
		fn = orderedOps[float64](op)
	case string:
		fn = orderedOps[string](op)
	}
	f, _ := fn.(func(T, T) bool)
	return f
}

func negate[N number](a N) N { return -a }

func numericUnary[T any](op Operator) func(T) T {
	if op != Negation {
		return nil
	}
	var fn any
	switch any(*new(T)).(type) {
	case int:
		fn = negate[int]
	case int8:
		fn = negate[int8]
	case int16:
		fn = negate[int16]
	case int32:
		fn = negate[int32]
	case int64:
		fn = negate[int64]
	case float32:
		fn = negate[float32]
	case float64:
		fn = negate[float64]
	}
	f, _ := fn.(func(T) T)
	return f
}
