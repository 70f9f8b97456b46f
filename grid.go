package planar

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Grid renders the matrix in its two-row bracketed layout with the
// columns aligned by display width:
//
//	[  1 10 ]
//	[ -3  4 ]
func (m Matrix[T]) Grid() string {
	a := fmt.Sprintf("%v", m.A)
	b := fmt.Sprintf("%v", m.B)
	c := fmt.Sprintf("%v", m.C)
	d := fmt.Sprintf("%v", m.D)

	left := max(runewidth.StringWidth(a), runewidth.StringWidth(c))
	right := max(runewidth.StringWidth(b), runewidth.StringWidth(d))

	return fmt.Sprintf("[ %s %s ]\n[ %s %s ]",
		runewidth.FillLeft(a, left),
		runewidth.FillLeft(b, right),
		runewidth.FillLeft(c, left),
		runewidth.FillLeft(d, right),
	)
}

// Column renders the vector as a bracketed column, one component per row,
// aligned by display width.
func (v Vector[T]) Column() string {
	x := fmt.Sprintf("%v", v.X)
	y := fmt.Sprintf("%v", v.Y)

	width := max(runewidth.StringWidth(x), runewidth.StringWidth(y))

	return fmt.Sprintf("[ %s ]\n[ %s ]",
		runewidth.FillLeft(x, width),
		runewidth.FillLeft(y, width),
	)
}
