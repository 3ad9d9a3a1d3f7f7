package design

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Derived holds every quantity computed from Params: screw-hole layouts,
// fin geometry, o-ring groove dimensions and the quadrant placement of
// the four coolant cavities.
type Derived struct {
	Params

	// Countersunk lid screws. One line of CsScrewCount screws along the
	// center and both edges of each axis; the six lines share their
	// intersections, so CsHoles is deduplicated.
	CsScrewClearR float64
	CsScrewMinGap float64
	CsDelta       float64
	CsCenters     []float64
	CsHoles       []r2.Vec

	// Extrusion mounting screws, interleaved between the lid screws on
	// the two outer rows.
	ExtrusionScrewCount   int
	ExtrusionScrewDelta   float64
	ExtrusionScrewCenters []float64
	ExtrusionHoles        []r2.Vec

	// Heat sink cavity.
	HeatsinkCutLength float64
	HeatsinkCutWidth  float64
	FinCount          int
	FinThickness      float64
	FinLength         float64
	CutRadius         float64

	// O-ring groove around each cavity.
	OringInnerLength float64
	OringInnerWidth  float64
	OringInnerRadius float64

	// Center offset of each cavity from its block corner, and the four
	// resulting quadrant centers.
	HeatsinkOffset  float64
	QuadrantCenters []r2.Vec

	BlockHeight float64

	// LED array fixing screws (underside grid).
	LedPitch      float64
	LedCenters    []float64
	LedScrewHoles []r2.Vec

	// Window standoff screws (underside corners).
	StandoffHoles []r2.Vec

	// Wire pass-through bores, one in each web between a cavity pair.
	WireHoles []r2.Vec
}

// Derive runs the layout arithmetic and the machinability guards.
func (p Params) Derive() (*Derived, error) {
	if errs := p.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid parameters: %w", errs[0])
	}

	d := &Derived{Params: p}

	// The same clearance and edge gap rules apply to lid screws as to
	// extrusion screws.
	d.CsScrewClearR = p.ExtrusionScrewClearR
	d.CsScrewMinGap = p.ExtrusionScrewMinGap

	// Lid screw lines: screws are centered on the extrusion rails, so the
	// usable span is the block length minus one extrusion width.
	span := p.BlockLength - p.ExtrusionWidth
	d.CsDelta = span / float64(p.CsScrewCount-1)
	d.CsCenters = spaced(span, p.CsScrewCount)

	edge := span / 2
	var cs []r2.Vec
	for _, c := range d.CsCenters {
		cs = append(cs,
			r2.Vec{X: 0, Y: c},
			r2.Vec{X: edge, Y: c},
			r2.Vec{X: -edge, Y: c},
			r2.Vec{X: c, Y: 0},
			r2.Vec{X: c, Y: edge},
			r2.Vec{X: c, Y: -edge},
		)
	}
	d.CsHoles = dedupe(cs)

	// Extrusion screws sit halfway between neighbouring lid screws on the
	// two outer rows, so there is one fewer per line.
	d.ExtrusionScrewCount = p.CsScrewCount - 1
	exSpan := span - d.CsDelta
	if d.ExtrusionScrewCount > 1 {
		d.ExtrusionScrewDelta = exSpan / float64(d.ExtrusionScrewCount-1)
	}
	d.ExtrusionScrewCenters = spaced(exSpan, d.ExtrusionScrewCount)

	var ex []r2.Vec
	for _, c := range d.ExtrusionScrewCenters {
		ex = append(ex,
			r2.Vec{X: c, Y: edge},
			r2.Vec{X: c, Y: -edge},
		)
	}
	d.ExtrusionHoles = dedupe(ex)

	// Heat sink cavity size: half the block minus the extrusion rail,
	// screw keep-outs, o-ring groove and edge gaps.
	keepOut := p.ExtrusionScrewClearR + p.ExtrusionScrewMinGap +
		d.CsScrewClearR + d.CsScrewMinGap + 2*p.OringEdgeGap
	d.HeatsinkCutLength = (p.BlockLength-p.ExtrusionWidth-2*keepOut)/2 -
		2*p.OringGrooveWidth - 2*p.OringEdgeGap
	d.HeatsinkCutWidth = d.HeatsinkCutLength
	if d.HeatsinkCutLength <= 0 {
		return nil, fmt.Errorf("heat sink cavity size is %.2f mm: parameters leave no room for a cavity", d.HeatsinkCutLength)
	}

	// Fin count must be odd so the serpentine channel exits on the side
	// it entered.
	d.FinCount = int((d.HeatsinkCutWidth - p.FinGap) / (p.ApproxFinThick + p.FinGap))
	if d.FinCount%2 == 0 {
		d.FinCount++
	}
	d.FinThickness = (d.HeatsinkCutWidth - float64(d.FinCount+1)*p.FinGap) / float64(d.FinCount)
	if d.FinThickness < p.MinFinThick {
		return nil, fmt.Errorf("fin thickness %.3f mm is below the %.1f mm machinable minimum", d.FinThickness, p.MinFinThick)
	}
	d.FinLength = d.HeatsinkCutLength - 2*p.FinGap - d.FinThickness
	d.CutRadius = p.FinGap - 1

	// O-ring groove hugs the cavity with an edge gap all round.
	d.OringInnerLength = d.HeatsinkCutLength + 2*p.OringEdgeGap
	d.OringInnerWidth = d.HeatsinkCutWidth + 2*p.OringEdgeGap
	d.OringInnerRadius = d.CutRadius + p.OringEdgeGap

	d.HeatsinkOffset = (d.OringInnerLength+2*p.OringGrooveWidth)/2 +
		p.ExtrusionWidth/2 + p.ExtrusionScrewClearR +
		p.ExtrusionScrewMinGap + p.OringEdgeGap

	qx := p.BlockLength/2 - d.HeatsinkOffset
	qy := p.BlockWidth/2 - d.HeatsinkOffset
	d.QuadrantCenters = []r2.Vec{
		{X: qx, Y: qy},
		{X: -qx, Y: qy},
		{X: qx, Y: -qy},
		{X: -qx, Y: -qy},
	}

	d.BlockHeight = p.BaseHeight + p.FinHeight

	// LED array grid: the repeat footprint spans the block between the
	// extrusion rails, with a screw at every footprint corner.
	d.LedPitch = (p.BlockLength - 2*p.ExtrusionWidth) / float64(p.LedArrayRowsCols)
	d.LedCenters = make([]float64, p.LedArrayRowsCols+1)
	for i := range d.LedCenters {
		d.LedCenters[i] = -p.BlockLength/2 + p.ExtrusionWidth + float64(i)*d.LedPitch
	}
	var led []r2.Vec
	for _, x := range d.LedCenters {
		for _, y := range d.LedCenters {
			led = append(led, r2.Vec{X: y, Y: x})
		}
	}
	d.LedScrewHoles = dedupe(led)

	so := p.StandoffScrewOffset
	d.StandoffHoles = []r2.Vec{
		{X: p.BlockLength/2 - so, Y: p.BlockWidth/2 - so},
		{X: -(p.BlockLength/2 - so), Y: p.BlockWidth/2 - so},
		{X: p.BlockLength/2 - so, Y: -(p.BlockWidth/2 - so)},
		{X: -(p.BlockLength/2 - so), Y: -(p.BlockWidth/2 - so)},
	}

	// Wire pass-throughs: one bore in each web between a cavity pair,
	// level with the cavity centers.
	d.WireHoles = []r2.Vec{
		{X: 0, Y: qy},
		{X: 0, Y: -qy},
		{X: qx, Y: 0},
		{X: -qx, Y: 0},
	}

	return d, nil
}

// Warnings reports advisory problems with the derived design.
func (d *Derived) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if d.FinThickness < 1.5*d.MinFinThick {
		warnings = append(warnings, ValidationWarning{
			Field: "fin_thickness",
			Message: fmt.Sprintf("fin thickness %.3f mm is close to the %.1f mm machinable minimum; expect fragile fins",
				d.FinThickness, d.MinFinThick),
		})
	}
	if d.CsScrewThreadDepth > d.BlockHeight-d.FinHeight {
		warnings = append(warnings, ValidationWarning{
			Field: "cs_screw_thread_depth",
			Message: fmt.Sprintf("lid screw thread depth %.1f mm reaches below the base plate (%.1f mm of stock under the cavities)",
				d.CsScrewThreadDepth, d.BlockHeight-d.FinHeight),
		})
	}
	if 2*d.WaterPortTapRadius > d.HeatsinkCutWidth/4 {
		warnings = append(warnings, ValidationWarning{
			Field: "water_port_tap_radius",
			Message: fmt.Sprintf("water port bore diameter %.1f mm is large for a %.1f mm cavity",
				2*d.WaterPortTapRadius, d.HeatsinkCutWidth),
		})
	}

	return warnings
}

// spaced returns n points spread evenly over a span centered on zero:
// -span/2, ..., +span/2. A single point sits at the span center.
func spaced(span float64, n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	delta := span / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = -span/2 + float64(i)*delta
	}
	return out
}

// dedupe removes duplicate points (to micrometer precision) and returns
// them in a deterministic order, sorted by Y then X.
func dedupe(points []r2.Vec) []r2.Vec {
	type key struct{ x, y int64 }
	seen := make(map[key]struct{}, len(points))
	out := make([]r2.Vec, 0, len(points))
	for _, p := range points {
		k := key{x: int64(math.Round(p.X * 1e3)), y: int64(math.Round(p.Y * 1e3))}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
