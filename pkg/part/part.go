// Package part builds the solids of the cooling block assembly by
// composing geometry kernel primitives according to the derived design.
// Each builder is a fixed sequence of kernel calls; all the solid
// modeling itself happens inside the kernel.
package part

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jmball/cooling-block/pkg/kernel"
)

// cutMargin extends cutting tools past the faces they pierce so boolean
// differences never leave a zero-thickness skin.
const cutMargin = 2

// slot is a milled slot footprint: a box whose vertical edges are rounded
// to half the narrow dimension (a stadium profile, as left by an end mill).
func slot(k kernel.Kernel, l, w, h float64) kernel.Solid {
	return k.RoundedBox(l, w, h, math.Min(l, w)/2)
}

// drill cuts a cylindrical hole of the given radius at every (x, y) in
// holes. The cylinder is centered at zCenter and extends height/2 above
// and below it.
func drill(k kernel.Kernel, s kernel.Solid, holes []r2.Vec, radius, height, zCenter float64) kernel.Solid {
	for _, p := range holes {
		hole := k.Translate(k.Cylinder(height, radius), p.X, p.Y, zCenter)
		s = k.Difference(s, hole)
	}
	return s
}
