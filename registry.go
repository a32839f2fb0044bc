package spline

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownInterpolator is returned by [Interpolators.ByName] for names that
// don't refer to an interpolator.
var ErrUnknownInterpolator = errors.New("unknown interpolator")

// DefaultExponent is the exponent used by the exponential interpolators when
// looked up by name.
const DefaultExponent = 2

func namedInterpolators[T any](ip *Interpolators[T]) map[string]func() Interpolator[T] {
	return map[string]func() Interpolator[T]{
		"null":           func() Interpolator[T] { return ip.Null },
		"linear":         func() Interpolator[T] { return ip.Linear },
		"cosine":         func() Interpolator[T] { return ip.Cosine },
		"cubic":          func() Interpolator[T] { return ip.Cubic },
		"hermite":        func() Interpolator[T] { return ip.Hermite },
		"insine":         ip.InSine,
		"outsine":        ip.OutSine,
		"sine":           ip.Sine,
		"inexponential":  func() Interpolator[T] { return ip.InExponential(DefaultExponent) },
		"outexponential": func() Interpolator[T] { return ip.OutExponential(DefaultExponent) },
		"exponential":    func() Interpolator[T] { return ip.Exponential(DefaultExponent) },
	}
}

// ByName returns the interpolator with the given name. Names are matched
// case-insensitively; see [InterpolatorNames] for the list of names.
//
// ByName fails if T lacks the arithmetic the interpolator needs.
func (ip *Interpolators[T]) ByName(name string) (Interpolator[T], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	fn, ok := namedInterpolators(ip)[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownInterpolator, name)
	}
	switch key {
	case "null":
	case "cubic", "hermite":
		if !ip.SupportsCubic() {
			return nil, fmt.Errorf("interpolator %q: %w", name, ip.cubicErr())
		}
	default:
		if !ip.SupportsLinear() {
			return nil, fmt.Errorf("interpolator %q: %w", name, ip.linearErr())
		}
	}
	return fn(), nil
}

// InterpolatorNames returns the names understood by [Interpolators.ByName], in
// sorted order.
func InterpolatorNames() []string {
	return slices.Sorted(maps.Keys(namedInterpolators(&Interpolators[float64]{})))
}
