package spline

import (
	"math"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"

	"honnef.co/go/spline/arith"
)

// Source returns the sample with the given index. Interpolators call it with
// indices relative to the base index they were given, which may be negative or
// past the last sample; it is up to the source to clamp or wrap them.
type Source[T any] func(index int) T

// Interpolator computes a value from the samples provided by src, around the
// sample with index base. t is the position between samples base and base+1,
// usually in [0, 1].
type Interpolator[T any] func(src Source[T], base int, t float64) T

// Interpolators holds the interpolators for values of type T. Use
// [InterpolatorsFor] to obtain it.
//
// The methods Null, Linear, Cosine, Cubic and Hermite all have the signature of
// [Interpolator] and are meant to be used as method values.
type Interpolators[T any] struct {
	lerp  func(a, b T, t float64) T
	add   func(a, b T) T
	sub   func(a, b T) T
	scale func(a T, f float64) T

	// Set for the built-in integer types, which are interpolated in float64
	// and rounded back.
	toFloat   func(T) float64
	fromFloat func(float64) T
	unsigned  bool
}

type lerper[T any] interface {
	Lerp(o T, t float64) T
}

var (
	interpMu    sync.Mutex
	interpCache sync.Map // reflect.Type -> *Interpolators[T]
)

// InterpolatorsFor returns the interpolators for T. The first call for a type
// builds the table; later calls return the same table.
//
// Linear interpolation uses a Lerp(T, float64) T method if T has one, and is
// otherwise built from the Add, Subtract and Multiply-by-float64 operators
// resolved by the arith package. Cubic and Hermite interpolation always need
// those operators. Adapters registered with arith after the first call for a
// type are not picked up.
func InterpolatorsFor[T any]() *Interpolators[T] {
	typ := reflect.TypeFor[T]()
	if v, ok := interpCache.Load(typ); ok {
		return v.(*Interpolators[T])
	}

	interpMu.Lock()
	defer interpMu.Unlock()
	if v, ok := interpCache.Load(typ); ok {
		return v.(*Interpolators[T])
	}
	ip := buildInterpolators[T]()
	interpCache.Store(typ, ip)
	return ip
}

func buildInterpolators[T any]() *Interpolators[T] {
	ip := &Interpolators[T]{}
	add, errAdd := arith.Binary[T, T](arith.Add)
	sub, errSub := arith.Binary[T, T](arith.Subtract)
	scale, errScale := arith.Binary[T, float64](arith.Multiply)
	if errAdd == nil && errSub == nil && errScale == nil {
		ip.add, ip.sub, ip.scale = add, sub, scale
		ip.lerp = func(a, b T, t float64) T {
			return add(a, scale(sub(b, a), t))
		}
	}

	var zero T
	if _, ok := any(zero).(lerper[T]); ok {
		ip.lerp = func(a, b T, t float64) T {
			return any(a).(lerper[T]).Lerp(b, t)
		}
	}

	switch any(zero).(type) {
	case int:
		useInteger[int](ip)
	case int8:
		useInteger[int8](ip)
	case int16:
		useInteger[int16](ip)
	case int32:
		useInteger[int32](ip)
	case int64:
		useInteger[int64](ip)
	case uint:
		useInteger[uint](ip)
	case uint8:
		useInteger[uint8](ip)
	case uint16:
		useInteger[uint16](ip)
	case uint32:
		useInteger[uint32](ip)
	case uint64:
		useInteger[uint64](ip)
	case uintptr:
		useInteger[uintptr](ip)
	}
	return ip
}

// useInteger replaces the arithmetic of ip, which must be for the integer type
// N, with arithmetic in float64. Results are rounded and saturate at the
// limits of N instead of wrapping around.
func useInteger[N constraints.Integer, T any](ip *Interpolators[T]) {
	bits := reflect.TypeFor[N]().Bits()
	var lo, hi float64
	var minN, maxN N
	ip.unsigned = ^N(0) > 0
	if ip.unsigned {
		lo, hi = 0, math.Ldexp(1, bits)
		maxN = ^N(0)
	} else {
		lo, hi = -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
		maxN = N(uint64(1)<<(bits-1) - 1)
		minN = -maxN - 1
	}
	from := func(f float64) N {
		f = math.Round(f)
		switch {
		case math.IsNaN(f):
			return 0
		case f >= hi:
			return maxN
		case f < lo:
			return minN
		}
		return N(f)
	}
	to := func(v N) float64 { return float64(v) }

	toT := any(to).(func(T) float64)
	fromT := any(from).(func(float64) T)
	ip.toFloat, ip.fromFloat = toT, fromT
	ip.lerp = func(a, b T, t float64) T {
		fa, fb := toT(a), toT(b)
		return fromT(fa + (fb-fa)*t)
	}
	ip.add = func(a, b T) T { return fromT(toT(a) + toT(b)) }
	ip.sub = func(a, b T) T { return fromT(toT(a) - toT(b)) }
	ip.scale = func(a T, f float64) T { return fromT(toT(a) * f) }
}

// SupportsLinear reports whether T can be interpolated linearly. This is a
// requirement of [Curve].
func (ip *Interpolators[T]) SupportsLinear() bool { return ip.lerp != nil }

// SupportsCubic reports whether the Cubic and Hermite interpolators are
// available for T.
func (ip *Interpolators[T]) SupportsCubic() bool { return ip.add != nil }

func (ip *Interpolators[T]) linearErr() error {
	return &arith.UnsupportedError{Op: arith.Add, Left: reflect.TypeFor[T](), Right: reflect.TypeFor[T]()}
}

func (ip *Interpolators[T]) cubicErr() error {
	return &arith.UnsupportedError{Op: arith.Multiply, Left: reflect.TypeFor[T](), Right: reflect.TypeFor[float64]()}
}

func (ip *Interpolators[T]) mustLinear() {
	if ip.lerp == nil {
		panic(ip.linearErr())
	}
}

func (ip *Interpolators[T]) mustCubic() {
	if ip.add == nil {
		panic(ip.cubicErr())
	}
}

// Lerp returns a + (b-a)*t.
func (ip *Interpolators[T]) Lerp(a, b T, t float64) T {
	ip.mustLinear()
	return ip.lerp(a, b, t)
}

// Null returns sample base, without interpolating. Curves using it look like
// steps.
func (ip *Interpolators[T]) Null(src Source[T], base int, t float64) T {
	return src(base)
}

// Linear interpolates linearly between samples base and base+1. t is not
// clamped.
func (ip *Interpolators[T]) Linear(src Source[T], base int, t float64) T {
	ip.mustLinear()
	return ip.lerp(src(base), src(base+1), t)
}

// Cosine interpolates between samples base and base+1, easing in and out with
// a half cosine wave.
func (ip *Interpolators[T]) Cosine(src Source[T], base int, t float64) T {
	ip.mustLinear()
	return ip.lerp(src(base), src(base+1), (1-math.Cos(t*math.Pi))*0.5)
}

// rebase moves a negative t into [0, 1) by stepping back whole windows of
// stride samples.
func rebase(base int, t float64, stride int) (int, float64) {
	if t < 0 {
		n := math.Ceil(math.Abs(t))
		t += n
		base -= int(n) * stride
	}
	return base, t
}

// Cubic interpolates between samples base and base+1 using a cubic polynomial
// through the samples base-1 to base+2.
func (ip *Interpolators[T]) Cubic(src Source[T], base int, t float64) T {
	ip.mustCubic()
	base, t = rebase(base, t, 1)

	a := src(base - 1)
	b := src(base)
	c := src(base + 1)
	d := src(base + 2)
	if f := ip.toFloat; f != nil {
		return ip.fromFloat(cubic(f(a), f(b), f(c), f(d), t, fadd, fsub, fscale))
	}
	return cubic(a, b, c, d, t, ip.add, ip.sub, ip.scale)
}

func cubic[V any](a, b, c, d V, t float64, add, sub func(V, V) V, scale func(V, float64) V) V {
	p := sub(sub(d, c), sub(a, b))
	t2 := t * t
	t3 := t2 * t
	return add(
		add(scale(p, t3), scale(sub(sub(a, b), p), t2)),
		add(scale(sub(c, a), t), b),
	)
}

func fadd(a, b float64) float64   { return a + b }
func fsub(a, b float64) float64   { return a - b }
func fscale(a, f float64) float64 { return a * f }

// Hermite evaluates a cubic Hermite segment. The samples base to base+3 are
// the start value, start velocity, end value and end velocity of the segment.
// Negative values of t step back two samples per whole unit.
func (ip *Interpolators[T]) Hermite(src Source[T], base int, t float64) T {
	ip.mustCubic()
	base, t = rebase(base, t, 2)

	a := src(base)
	u := src(base + 1)
	d := src(base + 2)
	v := src(base + 3)
	if f := ip.toFloat; f != nil {
		return ip.fromFloat(hermite(f(a), f(u), f(d), f(v), t, fadd, fsub, fscale))
	}
	return hermite(a, u, d, v, t, ip.add, ip.sub, ip.scale)
}

func hermite[V any](a, u, d, v V, t float64, add, sub func(V, V) V, scale func(V, float64) V) V {
	s := 1 - t
	s2 := s * s
	t2 := t * t
	return sub(
		add(
			add(scale(a, s2*(1+2*t)), scale(d, t2*(1+2*s))),
			scale(u, s2*t),
		),
		scale(v, s*t2),
	)
}

// Default returns the interpolator used by curves that don't specify one,
// which is Linear.
func (ip *Interpolators[T]) Default() Interpolator[T] {
	return ip.Linear
}
