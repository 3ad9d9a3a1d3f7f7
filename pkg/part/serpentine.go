package part

import (
	"fmt"

	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
)

// SerpentineCutout builds the shape that, cut from the block, leaves the
// heat sink fins standing and a single serpentine coolant channel winding
// between them. The channel enters and leaves on the same side, which
// requires an odd fin count.
//
// The channel is assembled from an L-shaped repeat unit: a horizontal slot
// across the fins plus a short connector at its end, alternating sides so
// the flow snakes row by row, then a closing path along the far edge joins
// the first and last rows to the ports.
func SerpentineCutout(k kernel.Kernel, d *design.Derived) (kernel.Solid, error) {
	if d.FinCount%2 == 0 {
		return nil, fmt.Errorf("fin count %d must be odd", d.FinCount)
	}

	finL := d.FinLength
	finT := d.FinThickness
	finH := d.FinHeight
	gap := d.FinGap

	// Straight slot between two fins.
	gapV := slot(k, finL+gap, gap, finH)

	// Short connector joining a slot to the next row.
	gapH := slot(k, gap, 2*gap+finT, finH)
	gapH = k.Translate(gapH,
		(finL+gap)/2-gap/2,
		(2*gap+finT)/2-gap/2,
		0,
	)

	// L-shaped repeat units.
	gapUpRight := k.Union(gapV, gapH)
	gapUpLeft := k.Rotate(gapUpRight, 180, 0, 0)
	gapDownRight := k.Rotate(gapUpLeft, 0, 0, 180)

	width := float64(d.FinCount)*(gap+finT) + gap

	channel := k.Translate(gapV, 0, width/2-gap/2, 0)
	for i := 0; i < d.FinCount; i++ {
		unit := gapUpRight
		if i%2 == 0 {
			unit = gapDownRight
		}
		unit = k.Translate(unit, 0, width/2-gap/2-float64(i+1)*(gap+finT), 0)
		channel = k.Union(channel, unit)
	}

	// Closing path along the far edge: a full-width slot plus the two
	// stubs that connect it to the first and last rows.
	closeH := slot(k, gap, width, finH)
	closeH = k.Translate(closeH, finL/2+finT+gap, 0, 0)
	closeV1 := k.Translate(gapV, finT+gap, width/2-gap/2, 0)
	closeV2 := k.Translate(gapV, finT+gap, -width/2+gap/2, 0)
	closing := k.Union(k.Union(closeH, closeV1), closeV2)

	channel = k.Union(channel, closing)

	// Re-center on the cavity.
	channel = k.Translate(channel, -(gap+finT)/2, 0, 0)

	return channel, nil
}
