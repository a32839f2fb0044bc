package arith

import "reflect"

type (
	adder[T, U any]      interface{ Add(U) T }
	subtracter[T, U any] interface{ Sub(U) T }
	multiplier[T, U any] interface{ Mul(U) T }
	divider[T, U any]    interface{ Div(U) T }
	modder[T, U any]     interface{ Mod(U) T }
	negater[T any]       interface{ Negate() T }
	equaler[T any]       interface{ Equal(T) bool }
	lesser[T any]        interface{ Less(T) bool }
)

// implements reports whether values of type T have the method set of I. Only
// value receivers count, as operators are applied to values.
func implements[T, I any]() bool {
	_, ok := any(*new(T)).(I)
	return ok
}

func methodBinary[T, U any](op Operator) func(T, U) T {
	switch op {
	case Add:
		if implements[T, adder[T, U]]() {
			return func(a T, b U) T { return any(a).(adder[T, U]).Add(b) }
		}
	case Subtract:
		if implements[T, subtracter[T, U]]() {
			return func(a T, b U) T { return any(a).(subtracter[T, U]).Sub(b) }
		}
	case Multiply:
		if implements[T, multiplier[T, U]]() {
			return func(a T, b U) T { return any(a).(multiplier[T, U]).Mul(b) }
		}
	case Divide:
		if implements[T, divider[T, U]]() {
			return func(a T, b U) T { return any(a).(divider[T, U]).Div(b) }
		}
	case Modulo:
		if implements[T, modder[T, U]]() {
			return func(a T, b U) T { return any(a).(modder[T, U]).Mod(b) }
		}
	}
	return nil
}

func methodUnary[T any](op Operator) func(T) T {
	if op == Negation && implements[T, negater[T]]() {
		return func(a T) T { return any(a).(negater[T]).Negate() }
	}
	return nil
}

func methodCompare[T any](op Operator) func(T, T) bool {
	if implements[T, lesser[T]]() {
		less := func(a, b T) bool { return any(a).(lesser[T]).Less(b) }
		switch op {
		case LessThan:
			return less
		case GreaterThan:
			return func(a, b T) bool { return less(b, a) }
		case LessOrEqual:
			return func(a, b T) bool { return !less(b, a) }
		case GreaterOrEqual:
			return func(a, b T) bool { return !less(a, b) }
		}
	}
	if implements[T, equaler[T]]() {
		switch op {
		case Equality:
			return func(a, b T) bool { return any(a).(equaler[T]).Equal(b) }
		case Inequality:
			return func(a, b T) bool { return !any(a).(equaler[T]).Equal(b) }
		}
	}
	return nil
}

// equalityCompare falls back to == for comparable types.
func equalityCompare[T any](op Operator) func(T, T) bool {
	typ := reflect.TypeFor[T]()
	if typ.Kind() == reflect.Interface || !typ.Comparable() {
		return nil
	}
	switch op {
	case Equality:
		return func(a, b T) bool { return any(a) == any(b) }
	case Inequality:
		return func(a, b T) bool { return any(a) != any(b) }
	}
	return nil
}
