// Package arith binds arithmetic and comparison operators for arbitrary value
// types at run time.
//
// The curve engine in honnef.co/go/spline is generic over its value type and
// doesn't constrain that type to an arithmetic interface. Instead, it asks this
// package for the operators it needs, once per type. Operators are resolved in
// the following order:
//
//   - adapters registered with [RegisterBinary], [RegisterCompare] or
//     [RegisterUnary]
//   - methods defined by the type itself (Add, Sub, Mul, Div, Mod, Negate,
//     Equal, Less)
//   - the built-in numeric kinds (signed and unsigned integers, float32 and
//     float64), with the right-hand side being either the same type or a
//     float64 scalar
//
// Resolved operators are memoized per (operator, left type, right type). After
// the first lookup, resolving an operator is a lock-free map read.
//
// The two-dimensional and three-dimensional vectors of
// gonum.org/v1/gonum/spatial/r2 and r3 are registered by default.
package arith

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Operator identifies one of the supported operators.
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
	Modulo
	Equality
	Inequality
	GreaterThan
	LessThan
	GreaterOrEqual
	LessOrEqual
	Negation
)

var operatorNames = [...]string{
	Add:            "Add",
	Subtract:       "Subtract",
	Multiply:       "Multiply",
	Divide:         "Divide",
	Modulo:         "Modulo",
	Equality:       "Equality",
	Inequality:     "Inequality",
	GreaterThan:    "GreaterThan",
	LessThan:       "LessThan",
	GreaterOrEqual: "GreaterOrEqual",
	LessOrEqual:    "LessOrEqual",
	Negation:       "Negation",
}

func (op Operator) String() string {
	if op > 0 && int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// IsBinary reports whether op combines two values into a new value.
func (op Operator) IsBinary() bool {
	return op >= Add && op <= Modulo
}

// IsComparison reports whether op compares two values.
func (op Operator) IsComparison() bool {
	return op >= Equality && op <= LessOrEqual
}

// IsUnary reports whether op transforms a single value.
func (op Operator) IsUnary() bool {
	return op == Negation
}

// ErrUnsupported is wrapped by all errors reporting an operator that cannot be
// bound for a type.
var ErrUnsupported = errors.New("operator not supported")

// UnsupportedError reports that an operator could not be bound for a pair of
// types. It is a usage error: the value type in question needs to implement
// the operator or have an adapter registered.
type UnsupportedError struct {
	Op    Operator
	Left  reflect.Type
	Right reflect.Type // nil for unary operators
}

func (e *UnsupportedError) Error() string {
	if e.Right == nil {
		return fmt.Sprintf("arith: %s is not supported for %s", e.Op, e.Left)
	}
	return fmt.Sprintf("arith: %s is not supported for (%s, %s)", e.Op, e.Left, e.Right)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

type key struct {
	op          Operator
	left, right reflect.Type
}

type entry struct {
	fn  any
	err error
}

var (
	// resolved memoizes lookups. Reads don't lock; resolution and
	// registration happen under mu.
	resolved sync.Map
	mu       sync.Mutex
	// registered holds explicit adapters. It is only accessed under mu.
	registered = map[key]any{}
)

func resolve(k key, bind func() any) (any, error) {
	if e, ok := resolved.Load(k); ok {
		e := e.(entry)
		return e.fn, e.err
	}

	mu.Lock()
	defer mu.Unlock()
	if e, ok := resolved.Load(k); ok {
		e := e.(entry)
		return e.fn, e.err
	}

	var e entry
	if fn, ok := registered[k]; ok {
		e.fn = fn
	} else if fn := bind(); fn != nil {
		e.fn = fn
	} else {
		e.err = &UnsupportedError{Op: k.op, Left: k.left, Right: k.right}
	}
	resolved.Store(k, e)
	return e.fn, e.err
}

func register(k key, fn any) {
	mu.Lock()
	defer mu.Unlock()
	registered[k] = fn
	resolved.Delete(k)
}

// Binary returns the binary operator op for a left-hand side of type T and a
// right-hand side of type U. op must be one of Add, Subtract, Multiply, Divide
// and Modulo.
//
// The returned error wraps [ErrUnsupported] if the operator cannot be bound.
// Callers probing for optional capabilities should use Binary; callers that
// require the operator should use [MustBinary].
func Binary[T, U any](op Operator) (func(T, U) T, error) {
	if !op.IsBinary() {
		panic(fmt.Sprintf("arith: %s is not a binary operator", op))
	}
	k := key{op, reflect.TypeFor[T](), reflect.TypeFor[U]()}
	fn, err := resolve(k, func() any {
		if fn := methodBinary[T, U](op); fn != nil {
			return fn
		}
		if fn := numericBinary[T, U](op); fn != nil {
			return fn
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fn.(func(T, U) T), nil
}

// MustBinary is like [Binary] but panics if the operator cannot be bound.
func MustBinary[T, U any](op Operator) func(T, U) T {
	fn, err := Binary[T, U](op)
	if err != nil {
		panic(err)
	}
	return fn
}

// Compare returns the comparison operator op for values of type T. op must be
// one of Equality, Inequality, GreaterThan, LessThan, GreaterOrEqual and
// LessOrEqual.
//
// Types with a Less method get all ordering comparisons derived from it. Types
// that are comparable with == support Equality and Inequality even without an
// Equal method.
func Compare[T any](op Operator) (func(T, T) bool, error) {
	if !op.IsComparison() {
		panic(fmt.Sprintf("arith: %s is not a comparison operator", op))
	}
	typ := reflect.TypeFor[T]()
	k := key{op, typ, typ}
	fn, err := resolve(k, func() any {
		if fn := methodCompare[T](op); fn != nil {
			return fn
		}
		if fn := numericCompare[T](op); fn != nil {
			return fn
		}
		if fn := equalityCompare[T](op); fn != nil {
			return fn
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fn.(func(T, T) bool), nil
}

// MustCompare is like [Compare] but panics if the operator cannot be bound.
func MustCompare[T any](op Operator) func(T, T) bool {
	fn, err := Compare[T](op)
	if err != nil {
		panic(err)
	}
	return fn
}

// Unary returns the unary operator op for values of type T. The only unary
// operator is Negation.
func Unary[T any](op Operator) (func(T) T, error) {
	if !op.IsUnary() {
		panic(fmt.Sprintf("arith: %s is not a unary operator", op))
	}
	k := key{op, reflect.TypeFor[T](), nil}
	fn, err := resolve(k, func() any {
		if fn := methodUnary[T](op); fn != nil {
			return fn
		}
		if fn := numericUnary[T](op); fn != nil {
			return fn
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fn.(func(T) T), nil
}

// MustUnary is like [Unary] but panics if the operator cannot be bound.
func MustUnary[T any](op Operator) func(T) T {
	fn, err := Unary[T](op)
	if err != nil {
		panic(err)
	}
	return fn
}

// RegisterBinary registers fn as the implementation of op for (T, U). It takes
// precedence over methods and built-in implementations and replaces any
// earlier registration.
func RegisterBinary[T, U any](op Operator, fn func(T, U) T) {
	if !op.IsBinary() {
		panic(fmt.Sprintf("arith: %s is not a binary operator", op))
	}
	if fn == nil {
		panic("arith: nil operator function")
	}
	register(key{op, reflect.TypeFor[T](), reflect.TypeFor[U]()}, fn)
}

// RegisterCompare registers fn as the implementation of the comparison op for T.
func RegisterCompare[T any](op Operator, fn func(T, T) bool) {
	if !op.IsComparison() {
		panic(fmt.Sprintf("arith: %s is not a comparison operator", op))
	}
	if fn == nil {
		panic("arith: nil operator function")
	}
	typ := reflect.TypeFor[T]()
	register(key{op, typ, typ}, fn)
}

// RegisterUnary registers fn as the implementation of the unary op for T.
func RegisterUnary[T any](op Operator, fn func(T) T) {
	if !op.IsUnary() {
		panic(fmt.Sprintf("arith: %s is not a unary operator", op))
	}
	if fn == nil {
		panic("arith: nil operator function")
	}
	register(key{op, reflect.TypeFor[T](), nil}, fn)
}
