package planar

import "fmt"

// A 2-component column vector with elements of type T.
//
// Stored as transpose([x, y]).
type Vector[T Scalar] struct {
	X T
	Y T
}

func NewVector[T Scalar](x, y T) Vector[T] {
	return Vector[T]{X: x, Y: y}
}

// Scale multiplies both components by factor. The scalar is on the left
// of each product.
func (v Vector[T]) Scale(factor T) Vector[T] {
	return Vector[T]{
		X: factor * v.X,
		Y: factor * v.Y,
	}
}

// Add returns the componentwise sum of v and w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{
		X: v.X + w.X,
		Y: v.Y + w.Y,
	}
}

// Sub returns the componentwise difference of v and w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{
		X: v.X - w.X,
		Y: v.Y - w.Y,
	}
}

// Neg returns the componentwise negation of v.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Mul is Scale under the name the operator form would have, with the same
// scalar-on-the-left product order.
func (v Vector[T]) Mul(rhs T) Vector[T] {
	return Vector[T]{
		X: rhs * v.X,
		Y: rhs * v.Y,
	}
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("[%v %v]^t", v.X, v.Y)
}
