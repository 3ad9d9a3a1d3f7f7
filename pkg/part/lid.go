package part

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
)

// Lid builds the sealing lid: a plate with countersunk lid screws,
// extrusion screw clearance holes, water port bores over the serpentine
// ends, an underside recess over each cavity, a chamfered top rim and a
// ground-wire notch in one edge. The lid is returned sitting on top of
// the block, sharing the block's coordinate frame.
func Lid(k kernel.Kernel, d *design.Derived) kernel.Solid {
	lidH := d.LidHeight
	lid := k.Box(d.BlockLength, d.BlockWidth, lidH)

	// Countersunk holes for the lid fasteners.
	for _, p := range d.CsHoles {
		lid = k.Difference(lid, countersink(k, d, p.X, p.Y, lidH))
	}

	// Extrusion screw clearance holes, straight through.
	lid = drill(k, lid, d.ExtrusionHoles, d.ExtrusionScrewClearR,
		lidH+cutMargin, 0)

	// Water ports: an inlet and an outlet bore over the first and last
	// serpentine rows of each cavity.
	lid = drill(k, lid, waterPorts(d), d.WaterPortTapRadius,
		lidH+cutMargin, 0)

	// Underside recess over each cavity, inside the o-ring line.
	recess := k.RoundedBox(d.HeatsinkCutLength, d.HeatsinkCutWidth,
		d.LidRecessDepth+cutMargin, d.CutRadius)
	for _, q := range d.QuadrantCenters {
		placed := k.Translate(recess, q.X, q.Y,
			-lidH/2+d.LidRecessDepth/2-cutMargin/2)
		lid = k.Difference(lid, placed)
	}

	// Chamfer the top rim.
	lid = chamferTopRim(k, lid, d.BlockLength, d.BlockWidth, lidH, d.LidChamfer)

	// Ground-wire notch at the +X edge midspan.
	notch := k.Box(d.GroundWireWidth, d.GroundWireWidth, lidH+cutMargin)
	lid = k.Difference(lid, k.Translate(notch, d.BlockLength/2, 0, 0))

	// Seat the lid on top of the block.
	return k.Translate(lid, 0, 0, (d.BlockHeight+lidH)/2)
}

// countersink is the cutting tool for one countersunk lid screw at
// (x, y): a through shaft plus a cone flaring to the cap radius at the
// top face.
func countersink(k kernel.Kernel, d *design.Derived, x, y, lidH float64) kernel.Solid {
	shaft := k.Cylinder(lidH+cutMargin, d.CsScrewClearR)

	// Cone height follows from the countersink angle.
	halfAngle := d.CsScrewAngleDeg / 2 * math.Pi / 180
	coneH := (d.CsScrewCapRadius - d.CsScrewClearR) / math.Tan(halfAngle)
	cone := k.Cone(coneH, d.CsScrewClearR, d.CsScrewCapRadius)
	cone = k.Translate(cone, 0, 0, lidH/2-coneH/2)

	// Clear the cap above the top face so the cut is clean.
	capClear := k.Cylinder(cutMargin, d.CsScrewCapRadius)
	capClear = k.Translate(capClear, 0, 0, lidH/2+cutMargin/2)

	tool := k.Union(k.Union(shaft, cone), capClear)
	return k.Translate(tool, x, y, 0)
}

// waterPorts returns the bore centers: one pair per cavity, over the
// first and last serpentine rows.
func waterPorts(d *design.Derived) []r2.Vec {
	rowOffset := d.HeatsinkCutWidth/2 - d.FinGap/2
	ports := make([]r2.Vec, 0, 2*len(d.QuadrantCenters))
	for _, q := range d.QuadrantCenters {
		ports = append(ports,
			r2.Vec{X: q.X, Y: q.Y + rowOffset},
			r2.Vec{X: q.X, Y: q.Y - rowOffset},
		)
	}
	return ports
}

// chamferTopRim cuts a 45 degree chamfer of the given size along the
// four top edges by subtracting diamond prisms centered on the edges.
func chamferTopRim(k kernel.Kernel, s kernel.Solid, l, w, h, chamfer float64) kernel.Solid {
	if chamfer <= 0 {
		return s
	}
	side := chamfer * math.Sqrt2

	// Edges along X at y = +-w/2.
	barX := k.Rotate(k.Box(l+cutMargin, side, side), 45, 0, 0)
	s = k.Difference(s, k.Translate(barX, 0, w/2, h/2))
	s = k.Difference(s, k.Translate(barX, 0, -w/2, h/2))

	// Edges along Y at x = +-l/2.
	barY := k.Rotate(k.Box(side, w+cutMargin, side), 0, 45, 0)
	s = k.Difference(s, k.Translate(barY, l/2, 0, h/2))
	s = k.Difference(s, k.Translate(barY, -l/2, 0, h/2))

	return s
}
