package spline

import "math"

// Easing functions map t in [0, 1] to [0, 1], with f(0) = 0 and f(1) = 1.
// See https://easings.net/ for visualizations.

func EaseInSine(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func EaseOutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func EaseSine(t float64) float64    { return (1 - math.Cos(t*math.Pi)) / 2 }

// EaseInExponential returns a function computing t raised to exp.
func EaseInExponential(exp float64) func(float64) float64 {
	return func(t float64) float64 {
		return math.Pow(t, exp)
	}
}

// EaseOutExponential is the mirror image of [EaseInExponential].
func EaseOutExponential(exp float64) func(float64) float64 {
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, exp)
	}
}

// EaseExponential eases in during the first half and out during the second.
func EaseExponential(exp float64) func(float64) float64 {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, exp) / 2
		}
		return 1 - math.Pow(2-2*t, exp)/2
	}
}

// Eased returns an interpolator that applies shape to t and interpolates
// linearly between samples base and base+1.
func (ip *Interpolators[T]) Eased(shape func(t float64) float64) Interpolator[T] {
	ip.mustLinear()
	return func(src Source[T], base int, t float64) T {
		return ip.lerp(src(base), src(base+1), shape(t))
	}
}

func (ip *Interpolators[T]) InSine() Interpolator[T]  { return ip.Eased(EaseInSine) }
func (ip *Interpolators[T]) OutSine() Interpolator[T] { return ip.Eased(EaseOutSine) }
func (ip *Interpolators[T]) Sine() Interpolator[T]    { return ip.Eased(EaseSine) }

func (ip *Interpolators[T]) InExponential(exp float64) Interpolator[T] {
	return ip.Eased(EaseInExponential(exp))
}

func (ip *Interpolators[T]) OutExponential(exp float64) Interpolator[T] {
	return ip.Eased(EaseOutExponential(exp))
}

func (ip *Interpolators[T]) Exponential(exp float64) Interpolator[T] {
	return ip.Eased(EaseExponential(exp))
}
