package arith

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func init() {
	RegisterBinary(Add, r2.Add)
	RegisterBinary(Subtract, r2.Sub)
	RegisterBinary(Multiply, func(v r2.Vec, f float64) r2.Vec { return r2.Scale(f, v) })
	RegisterBinary(Divide, func(v r2.Vec, f float64) r2.Vec { return r2.Scale(1/f, v) })
	RegisterUnary(Negation, func(v r2.Vec) r2.Vec { return r2.Scale(-1, v) })

	RegisterBinary(Add, r3.Add)
	RegisterBinary(Subtract, r3.Sub)
	RegisterBinary(Multiply, func(v r3.Vec, f float64) r3.Vec { return r3.Scale(f, v) })
	RegisterBinary(Divide, func(v r3.Vec, f float64) r3.Vec { return r3.Scale(1/f, v) })
	RegisterUnary(Negation, func(v r3.Vec) r3.Vec { return r3.Scale(-1, v) })
}
