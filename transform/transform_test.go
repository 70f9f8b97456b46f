package transform

import (
	"math"
	"testing"

	"github.com/hnimtadd/planar"
	tassert "github.com/stretchr/testify/assert"
)

const delta = 1e-12

func TestTransform_Rotating(t *testing.T) {
	v := planar.NewVector(1, 2)

	tassert.Equal(t, v, Identity[int]().MulVector(v))
	tassert.Equal(t, planar.NewVector(-2, 1), Rotate90[int]().MulVector(v))
	tassert.Equal(t, planar.NewVector(-1, -2), Rotate180[int]().MulVector(v))
	tassert.Equal(t, planar.NewVector(2, -1), Rotate270[int]().MulVector(v))

	tassert.Equal(t, Identity[int](), Rotate90[int]().MulMatrix(Rotate270[int]()))
}

func TestTransform_Flipping(t *testing.T) {
	v := planar.NewVector(1, 2)

	tassert.Equal(t, planar.NewVector(-1, 2), FlipX[int]().MulVector(v))
	tassert.Equal(t, planar.NewVector(1, -2), FlipY[int]().MulVector(v))

	tassert.Equal(t, Identity[int](), FlipX[int]().MulMatrix(FlipX[int]()))
	tassert.Equal(t, Identity[int](), FlipY[int]().MulMatrix(FlipY[int]()))
}

func TestTransform_RightAngleComposition(t *testing.T) {
	r90 := Rotate90[int]()
	tassert.Equal(t, Rotate180[int](), r90.MulMatrix(r90))
	tassert.Equal(t, Rotate270[int](), r90.MulMatrix(r90).MulMatrix(r90))
	tassert.Equal(t, Identity[int](), Rotate180[int]().MulMatrix(Rotate180[int]()))
}

func TestTransform_CatalogueEntries(t *testing.T) {
	tassert.Equal(t, planar.NewMatrix(1, 0, 0, 1), Identity[int]())
	tassert.Equal(t, planar.NewMatrix(0, -1, 1, 0), Rotate90[int]())
	tassert.Equal(t, planar.NewMatrix(-1, 0, 0, -1), Rotate180[int]())
	tassert.Equal(t, planar.NewMatrix(0, 1, -1, 0), Rotate270[int]())
	tassert.Equal(t, planar.NewMatrix(-1, 0, 0, 1), FlipX[int]())
	tassert.Equal(t, planar.NewMatrix(1, 0, 0, -1), FlipY[int]())
}

func TestTransform_RotationZeroIsIdentity(t *testing.T) {
	assertMatrixInDelta(t, Identity[float64](), Rotation(0))
}

func TestTransform_RotationQuarterTurns(t *testing.T) {
	assertMatrixInDelta(t, Rotate90[float64](), Rotation(math.Pi/2))
	assertMatrixInDelta(t, Rotate180[float64](), Rotation(math.Pi))
	assertMatrixInDelta(t, Rotate270[float64](), Rotation(3*math.Pi/2))
}

func TestTransform_RotationComposes(t *testing.T) {
	a := Rotation(0.3)
	b := Rotation(0.9)
	assertMatrixInDelta(t, Rotation(1.2), a.MulMatrix(b),
		"composing rotations should add their angles")
}

func assertMatrixInDelta(
	t *testing.T,
	expected, actual planar.Matrix[float64],
	msgAndArgs ...any,
) {
	t.Helper()
	tassert.InDelta(t, expected.A, actual.A, delta, msgAndArgs...)
	tassert.InDelta(t, expected.B, actual.B, delta, msgAndArgs...)
	tassert.InDelta(t, expected.C, actual.C, delta, msgAndArgs...)
	tassert.InDelta(t, expected.D, actual.D, delta, msgAndArgs...)
}
