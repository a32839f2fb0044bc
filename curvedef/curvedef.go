// Package curvedef loads curves from YAML definitions.
//
// A definition looks like this:
//
//	name: fade
//	kind: curve          # or hermite
//	interpolator: cosine # default interpolator of a curve
//	points:
//	  - {position: 0, value: 0}
//	  - {position: 0.5, value: 1, interpolator: "null"}
//	  - {position: 2, value: "0.25"}
//
// Hermite splines specify a velocity per point, or a cardinal section that
// computes the velocities:
//
//	kind: hermite
//	cardinal: {tension: 0, looping: false}
//	points:
//	  - {position: 0, value: 0, velocity: 1}
//
// Numbers may be written as strings. Values are float64.
package curvedef

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
)

// ErrInvalidDefinition is wrapped by all errors reporting a malformed
// definition.
var ErrInvalidDefinition = errors.New("invalid curve definition")

type Kind string

const (
	KindCurve   Kind = "curve"
	KindHermite Kind = "hermite"
)

type Point struct {
	Position     any    `yaml:"position"`
	Value        any    `yaml:"value"`
	Velocity     any    `yaml:"velocity,omitempty"`
	Interpolator string `yaml:"interpolator,omitempty"`
}

type Cardinal struct {
	Tension any  `yaml:"tension,omitempty"`
	Looping bool `yaml:"looping,omitempty"`
}

type Definition struct {
	Name         string    `yaml:"name,omitempty"`
	Kind         Kind      `yaml:"kind,omitempty"`
	Interpolator string    `yaml:"interpolator,omitempty"`
	Cardinal     *Cardinal `yaml:"cardinal,omitempty"`
	Points       []Point   `yaml:"points"`
}

// Sampler is the part of the curve API shared by [spline.Curve] and
// [spline.HermiteSpline].
type Sampler interface {
	At(pos float64) float64
	Start() float64
	End() float64
	Count() int
	Search(heuristic func(pos, v float64) float64, low, high float64, opts spline.SearchOptions) (float64, bool)
}

var (
	_ Sampler = (*spline.Curve[float64])(nil)
	_ Sampler = (*spline.HermiteSpline[float64])(nil)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// Load decodes a single definition from r. Unknown fields are rejected.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("empty document")
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile is like [Load] but reads from the named file.
func LoadFile(name string) (*Definition, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	def, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

func (def *Definition) kind() Kind {
	if def.Kind == "" {
		return KindCurve
	}
	return Kind(strings.ToLower(string(def.Kind)))
}

// Validate checks the definition without building a curve from it.
func (def *Definition) Validate() error {
	kind := def.kind()
	if kind != KindCurve && kind != KindHermite {
		return invalid("unknown kind %q", def.Kind)
	}
	if len(def.Points) == 0 {
		return invalid("no points")
	}
	if kind == KindHermite && def.Interpolator != "" {
		return invalid("hermite splines don't take an interpolator")
	}
	if kind == KindCurve && def.Cardinal != nil {
		return invalid("cardinal velocities require kind hermite")
	}

	ip := spline.InterpolatorsFor[float64]()
	if def.Interpolator != "" {
		if _, err := ip.ByName(def.Interpolator); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
	}
	if def.Cardinal != nil {
		if _, err := cast.ToFloat64E(orZero(def.Cardinal.Tension)); err != nil {
			return invalid("cardinal tension: %s", err)
		}
	}
	for i, p := range def.Points {
		if _, _, err := p.numbers(); err != nil {
			return invalid("point %d: %s", i, err)
		}
		switch kind {
		case KindCurve:
			if p.Velocity != nil {
				return invalid("point %d: velocity requires kind hermite", i)
			}
			if p.Interpolator != "" {
				if _, err := ip.ByName(p.Interpolator); err != nil {
					return fmt.Errorf("%w: point %d: %w", ErrInvalidDefinition, i, err)
				}
			}
		case KindHermite:
			if p.Interpolator != "" {
				return invalid("point %d: hermite points don't take an interpolator", i)
			}
			if _, err := cast.ToFloat64E(orZero(p.Velocity)); err != nil {
				return invalid("point %d: velocity: %s", i, err)
			}
		}
	}
	return nil
}

func orZero(v any) any {
	if v == nil {
		return 0
	}
	return v
}

func (p Point) numbers() (pos, value float64, err error) {
	if p.Position == nil {
		return 0, 0, errors.New("missing position")
	}
	if p.Value == nil {
		return 0, 0, errors.New("missing value")
	}
	if pos, err = cast.ToFloat64E(p.Position); err != nil {
		return 0, 0, fmt.Errorf("position: %w", err)
	}
	if value, err = cast.ToFloat64E(p.Value); err != nil {
		return 0, 0, fmt.Errorf("value: %w", err)
	}
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return 0, 0, fmt.Errorf("position %v isn't finite", pos)
	}
	return pos, value, nil
}

func checkDuplicates(def *Definition, count int) error {
	if count != len(def.Points) {
		return invalid("%d points share a position with another point", len(def.Points)-count)
	}
	return nil
}

// Curve builds a curve from a definition of kind curve.
func (def *Definition) Curve() (*spline.Curve[float64], error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if def.kind() != KindCurve {
		return nil, invalid("kind is %s, not %s", def.kind(), KindCurve)
	}

	ip := spline.InterpolatorsFor[float64]()
	c := spline.NewCurve[float64]()
	if def.Interpolator != "" {
		c.DefaultInterpolator, _ = ip.ByName(def.Interpolator)
	}
	for _, p := range def.Points {
		pos, v, _ := p.numbers()
		var fn spline.Interpolator[float64]
		if p.Interpolator != "" {
			fn, _ = ip.ByName(p.Interpolator)
		}
		c.AddWithInterpolator(pos, v, fn)
	}
	if err := checkDuplicates(def, c.Count()); err != nil {
		return nil, err
	}
	return c, nil
}

// Hermite builds a Hermite spline from a definition of kind hermite.
func (def *Definition) Hermite() (*spline.HermiteSpline[float64], error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if def.kind() != KindHermite {
		return nil, invalid("kind is %s, not %s", def.kind(), KindHermite)
	}

	s := spline.NewHermiteSpline[float64]()
	for _, p := range def.Points {
		pos, v, _ := p.numbers()
		s.Add(pos, v, cast.ToFloat64(orZero(p.Velocity)))
	}
	if err := checkDuplicates(def, s.Count()); err != nil {
		return nil, err
	}
	if def.Cardinal != nil {
		s.ConvertToCardinal(cast.ToFloat64(orZero(def.Cardinal.Tension)), def.Cardinal.Looping)
	}
	return s, nil
}

// Build builds a curve or Hermite spline, depending on the definition's kind.
func (def *Definition) Build() (Sampler, error) {
	if def.kind() == KindHermite {
		s, err := def.Hermite()
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	c, err := def.Curve()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FromHermite returns a definition that reproduces s exactly.
func FromHermite(name string, s *spline.HermiteSpline[float64]) *Definition {
	def := &Definition{Name: name, Kind: KindHermite}
	for p := range s.ControlPoints() {
		def.Points = append(def.Points, Point{
			Position: p.Position,
			Value:    p.Value,
			Velocity: p.Data.Velocity,
		})
	}
	return def
}

// Encode writes definitions to w as a stream of YAML documents.
func Encode(w io.Writer, defs ...*Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, def := range defs {
		if err := enc.Encode(def); err != nil {
			return err
		}
	}
	return enc.Close()
}
