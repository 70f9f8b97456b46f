package planar

import "fmt"

// A 2x2 matrix with elements of type T.
//
// Stored as:
//
//	[ A B ]
//	[ C D ]
//
// The left column is (A, C) and the right column is (B, D).
type Matrix[T Scalar] struct {
	A T
	B T
	C T
	D T
}

// NewMatrix builds a matrix from its four entries in row-major reading
// order (a b / c d).
func NewMatrix[T Scalar](a, b, c, d T) Matrix[T] {
	return Matrix[T]{A: a, B: b, C: c, D: d}
}

// FromVectors builds the matrix whose left column is left and whose right
// column is right. It is the exact inverse of Left/Right.
func FromVectors[T Scalar](left, right Vector[T]) Matrix[T] {
	return NewMatrix(
		left.X,
		right.X,
		left.Y,
		right.Y,
	)
}

// Left extracts the left column (A, C).
func (m Matrix[T]) Left() Vector[T] {
	return Vector[T]{X: m.A, Y: m.C}
}

// Right extracts the right column (B, D).
func (m Matrix[T]) Right() Vector[T] {
	return Vector[T]{X: m.B, Y: m.D}
}

// Scale multiplies every entry by factor. The scalar is on the left of
// each product.
func (m Matrix[T]) Scale(factor T) Matrix[T] {
	return Matrix[T]{
		A: factor * m.A,
		B: factor * m.B,
		C: factor * m.C,
		D: factor * m.D,
	}
}

// Transpose swaps the off-diagonal entries.
func (m Matrix[T]) Transpose() Matrix[T] {
	return Matrix[T]{
		A: m.A,
		B: m.C,
		C: m.B,
		D: m.D,
	}
}

// Add returns the componentwise sum of m and n.
func (m Matrix[T]) Add(n Matrix[T]) Matrix[T] {
	return Matrix[T]{
		A: m.A + n.A,
		B: m.B + n.B,
		C: m.C + n.C,
		D: m.D + n.D,
	}
}

// Mul is Scale under the name the operator form would have, with the same
// scalar-on-the-left product order.
func (m Matrix[T]) Mul(rhs T) Matrix[T] {
	return Matrix[T]{
		A: rhs * m.A,
		B: rhs * m.B,
		C: rhs * m.C,
		D: rhs * m.D,
	}
}

// MulVector applies m to the column vector v.
func (m Matrix[T]) MulVector(v Vector[T]) Vector[T] {
	return Vector[T]{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// MulMatrix returns the matrix product m * n. Each entry is evaluated
// left to right, so the order of the element-type products matches the
// order written here.
func (m Matrix[T]) MulMatrix(n Matrix[T]) Matrix[T] {
	return Matrix[T]{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

func (m Matrix[T]) String() string {
	return fmt.Sprintf("[[%v %v], [%v %v]]", m.A, m.B, m.C, m.D)
}
