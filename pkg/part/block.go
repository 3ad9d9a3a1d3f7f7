package part

import (
	"fmt"
	"math"

	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
)

// Block builds the cooling block: the base plate with lid screw tap
// holes, extrusion screw clearance holes, LED array and standoff tap
// holes underneath, wire pass-throughs with underside routing ways, and
// the four serpentine cavities with their o-ring grooves cut into the
// top face.
func Block(k kernel.Kernel, d *design.Derived) (kernel.Solid, error) {
	blockH := d.BlockHeight
	block := k.Box(d.BlockLength, d.BlockWidth, blockH)

	// Lid fastener tap holes, drilled from the top face.
	block = drill(k, block, d.CsHoles, d.CsScrewTapRadius,
		d.CsScrewThreadDepth+cutMargin,
		blockH/2-d.CsScrewThreadDepth/2+cutMargin/2)

	// Extrusion screw clearance holes, straight through.
	block = drill(k, block, d.ExtrusionHoles, d.ExtrusionScrewClearR,
		blockH+cutMargin, 0)

	// LED array tap holes, drilled from the underside.
	block = drill(k, block, d.LedScrewHoles, d.LedScrewTapRadius,
		d.LedScrewTapDepth+cutMargin,
		-blockH/2+d.LedScrewTapDepth/2-cutMargin/2)

	// Window standoff tap holes, also from the underside.
	block = drill(k, block, d.StandoffHoles, d.StandoffScrewTapRadius,
		d.StandoffScrewTapDepth+cutMargin,
		-blockH/2+d.StandoffScrewTapDepth/2-cutMargin/2)

	// Wire pass-through bores, straight through the plate.
	block = drill(k, block, d.WireHoles, d.WireHoleRadius,
		blockH+cutMargin, 0)

	// Underside wire ways: a slot from each pass-through out to the
	// nearest block edge so the wiring can lie flush under the plate.
	for _, p := range d.WireHoles {
		block = k.Difference(block, wireWay(k, d, p.X, p.Y))
	}

	// Serpentine cavity and o-ring groove, cut into each quadrant.
	cutout, err := SerpentineCutout(k, d)
	if err != nil {
		return nil, fmt.Errorf("building serpentine cutout: %w", err)
	}
	groove := OringGroove(k, d)
	groove = k.Translate(groove, 0, 0, (d.FinHeight-d.OringGrooveDepth)/2)
	cavity := k.Union(groove, cutout)

	for _, q := range d.QuadrantCenters {
		placed := k.Translate(cavity, q.X, q.Y, (blockH-d.FinHeight)/2)
		block = k.Difference(block, placed)
	}

	return block, nil
}

// wireWay is the underside routing slot for the wire pass-through at
// (x, y), running outward along its web axis to the block edge.
func wireWay(k kernel.Kernel, d *design.Derived, x, y float64) kernel.Solid {
	w := d.WireWayWidth
	depth := d.WireWayDepth
	zc := -d.BlockHeight/2 + depth/2 - cutMargin/2

	if math.Abs(y) > math.Abs(x) {
		// Way runs along Y from the hole to the near edge.
		edge := math.Copysign(d.BlockWidth/2, y)
		length := math.Abs(edge-y) + cutMargin
		s := slot(k, w, length+w, depth+cutMargin)
		return k.Translate(s, x, (y+edge)/2+math.Copysign(cutMargin, y)/2, zc)
	}
	edge := math.Copysign(d.BlockLength/2, x)
	length := math.Abs(edge-x) + cutMargin
	s := slot(k, length+w, w, depth+cutMargin)
	return k.Translate(s, (x+edge)/2+math.Copysign(cutMargin, x)/2, y, zc)
}
