// Package planar provides generic 2D linear-algebra primitives: a
// 2-component column vector and a 2x2 matrix over any built-in numeric
// element type, plus (in the transform subpackage) a catalogue of named
// 2D linear transforms.
//
// All types are small immutable value types. Operations return new values
// and never fail; overflow and rounding behave however the element type's
// own arithmetic behaves.
package planar

import "golang.org/x/exp/constraints"

// Scalar is the element-type constraint for Vector and Matrix: any
// built-in numeric type whose addition and multiplication are closed
// over the type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed covers the element types that can represent -1. The right-angle
// rotations and axis flips in the transform package require it.
type Signed interface {
	constraints.Signed | constraints.Float
}

// VectorAs converts the elements of v to element type U with Go
// conversion semantics (truncation toward zero for float-to-int).
func VectorAs[U, T Scalar](v Vector[T]) Vector[U] {
	return Vector[U]{X: U(v.X), Y: U(v.Y)}
}

// MatrixAs converts the elements of m to element type U with Go
// conversion semantics.
func MatrixAs[U, T Scalar](m Matrix[T]) Matrix[U] {
	return Matrix[U]{A: U(m.A), B: U(m.B), C: U(m.C), D: U(m.D)}
}
