// Package transform provides a catalogue of named 2D linear transforms
// built on the planar matrix type, and a pool for sharing transforms by
// small integer handle.
//
// The right-angle rotations and the flips need an element type that can
// represent -1, so they are constrained to planar.Signed. The catalogue
// entries are functions rather than package variables so that one
// catalogue serves every element type.
package transform

import (
	"math"

	"github.com/hnimtadd/planar"
)

// Identity returns the transform that maps every vector to itself.
func Identity[T planar.Scalar]() planar.Matrix[T] {
	return planar.NewMatrix[T](1, 0, 0, 1)
}

// Rotate90 returns the counter-clockwise rotation by 90 degrees.
func Rotate90[T planar.Signed]() planar.Matrix[T] {
	return planar.NewMatrix[T](0, -1, 1, 0)
}

// Rotate180 returns the rotation by 180 degrees.
func Rotate180[T planar.Signed]() planar.Matrix[T] {
	return planar.NewMatrix[T](-1, 0, 0, -1)
}

// Rotate270 returns the counter-clockwise rotation by 270 degrees.
func Rotate270[T planar.Signed]() planar.Matrix[T] {
	return planar.NewMatrix[T](0, 1, -1, 0)
}

// FlipX returns the reflection across the y axis (x components change
// sign).
func FlipX[T planar.Signed]() planar.Matrix[T] {
	return planar.NewMatrix[T](-1, 0, 0, 1)
}

// FlipY returns the reflection across the x axis (y components change
// sign).
func FlipY[T planar.Signed]() planar.Matrix[T] {
	return planar.NewMatrix[T](1, 0, 0, -1)
}

// Rotation returns the counter-clockwise rotation by the given angle in
// radians.
func Rotation(radians float64) planar.Matrix[float64] {
	sin, cos := math.Sincos(radians)
	return planar.NewMatrix(
		cos,
		-sin,
		sin,
		cos,
	)
}
