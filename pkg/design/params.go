// Package design holds the numeric design parameters of the cooling block
// and the closed-form arithmetic that derives hole layouts, fin geometry
// and o-ring groove dimensions from them. All dimensions are in mm.
package design

import "fmt"

// Params are the input design parameters. Every field is optional in a
// parameter file; zero values are replaced by the defaults from Default.
type Params struct {
	// Block plate.
	BlockLength float64 `hcl:"block_length,optional"`
	BlockWidth  float64 `hcl:"block_width,optional"`

	// O-ring. Groove depth and width follow the seal manufacturer's
	// gland tables for the chosen cross section.
	OringEdgeGap     float64 `hcl:"oring_edge_gap,optional"`
	OringCrossSect   float64 `hcl:"oring_cross_section,optional"`
	OringGrooveDepth float64 `hcl:"oring_groove_depth,optional"`
	OringGrooveWidth float64 `hcl:"oring_groove_width,optional"`

	// Support extrusion rail the block mounts onto.
	ExtrusionWidth       float64 `hcl:"extrusion_width,optional"`
	ExtrusionScrewClearR float64 `hcl:"extrusion_screw_clearance_radius,optional"`
	ExtrusionScrewMinGap float64 `hcl:"extrusion_screw_min_gap,optional"`

	// Countersunk screws fixing the lid to the block.
	CsScrewTapRadius   float64 `hcl:"cs_screw_tap_radius,optional"`
	CsScrewThreadDepth float64 `hcl:"cs_screw_thread_depth,optional"`
	CsScrewCapRadius   float64 `hcl:"cs_screw_cap_radius,optional"`
	CsScrewAngleDeg    float64 `hcl:"cs_screw_angle,optional"`
	CsScrewCount       int     `hcl:"cs_screw_count,optional"`

	// Heat sink.
	BaseHeight     float64 `hcl:"base_height,optional"`
	FinHeight      float64 `hcl:"fin_height,optional"`
	FinGap         float64 `hcl:"fin_gap,optional"`
	ApproxFinThick float64 `hcl:"approx_fin_thickness,optional"`
	MinFinThick    float64 `hcl:"min_fin_thickness,optional"`

	// Lid.
	LidHeight      float64 `hcl:"lid_height,optional"`
	LidRecessDepth float64 `hcl:"lid_recess_depth,optional"`
	LidChamfer     float64 `hcl:"lid_chamfer,optional"`

	// Water ports through the lid, one inlet and one outlet per cavity.
	WaterPortTapRadius float64 `hcl:"water_port_tap_radius,optional"`

	// LED array fixing screws, tapped from the underside.
	LedScrewTapRadius float64 `hcl:"led_screw_tap_radius,optional"`
	LedScrewTapDepth  float64 `hcl:"led_screw_tap_depth,optional"`
	LedArrayRowsCols  int     `hcl:"led_array_rows_cols,optional"`

	// Window standoff screws and spacers.
	StandoffScrewTapRadius float64 `hcl:"standoff_screw_tap_radius,optional"`
	StandoffScrewTapDepth  float64 `hcl:"standoff_screw_tap_depth,optional"`
	StandoffScrewOffset    float64 `hcl:"standoff_screw_offset,optional"`
	SpacerHeight           float64 `hcl:"spacer_height,optional"`
	SpacerRadius           float64 `hcl:"spacer_radius,optional"`

	// Wire pass-throughs near the LED array, with routing ways on the
	// underside, and the ground wire cutout in the lid edge.
	WireHoleRadius  float64 `hcl:"wire_hole_radius,optional"`
	WireWayWidth    float64 `hcl:"wire_way_width,optional"`
	WireWayDepth    float64 `hcl:"wire_way_depth,optional"`
	GroundWireWidth float64 `hcl:"ground_wire_width,optional"`
}

const inch = 25.4

// Default returns the reference design: a 350x350 mm block carrying a
// 12x12 LED array on 20 mm extrusion rails, sealed with a 2.62 mm
// cross-section o-ring.
func Default() Params {
	return Params{
		BlockLength: 350,
		BlockWidth:  350,

		OringEdgeGap:     2,
		OringCrossSect:   2.62,
		OringGrooveDepth: 0.077 * inch,
		OringGrooveWidth: 0.1225 * inch,

		ExtrusionWidth:       20,
		ExtrusionScrewClearR: 5.5 / 2,
		ExtrusionScrewMinGap: 2,

		CsScrewTapRadius:   4.2 / 2,
		CsScrewThreadDepth: 10,
		CsScrewCapRadius:   9.2 / 2,
		CsScrewAngleDeg:    90,
		CsScrewCount:       7,

		BaseHeight:     10,
		FinHeight:      15,
		FinGap:         6,
		ApproxFinThick: 2,
		MinFinThick:    1,

		LidHeight:      10,
		LidRecessDepth: 2,
		LidChamfer:     2,

		WaterPortTapRadius: 11.8 / 2, // G1/4 tapping drill

		LedScrewTapRadius: 2.5 / 2,
		LedScrewTapDepth:  5,
		LedArrayRowsCols:  12,

		StandoffScrewTapRadius: 2.5 / 2,
		StandoffScrewTapDepth:  5,
		StandoffScrewOffset:    5,
		SpacerHeight:           10,
		SpacerRadius:           4,

		WireHoleRadius:  3,
		WireWayWidth:    8,
		WireWayDepth:    4,
		GroundWireWidth: 10,
	}
}

// ValidationError is a blocking parameter problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning is an advisory problem: the design is buildable but
// probably not what the designer wants.
type ValidationWarning struct {
	Field   string
	Message string
}

// Validate runs blocking checks on the raw parameters.
func (p Params) Validate() []ValidationError {
	var errs []ValidationError

	positive := []struct {
		field string
		v     float64
	}{
		{"block_length", p.BlockLength},
		{"block_width", p.BlockWidth},
		{"oring_groove_depth", p.OringGrooveDepth},
		{"oring_groove_width", p.OringGrooveWidth},
		{"extrusion_width", p.ExtrusionWidth},
		{"base_height", p.BaseHeight},
		{"fin_height", p.FinHeight},
		{"fin_gap", p.FinGap},
		{"approx_fin_thickness", p.ApproxFinThick},
		{"lid_height", p.LidHeight},
	}
	for _, c := range positive {
		if c.v <= 0 {
			errs = append(errs, ValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("is %.4f, must be positive", c.v),
			})
		}
	}

	if p.CsScrewCount < 2 {
		errs = append(errs, ValidationError{
			Field:   "cs_screw_count",
			Message: fmt.Sprintf("is %d, need at least 2 lid screws per line", p.CsScrewCount),
		})
	}
	if p.LedArrayRowsCols < 1 {
		errs = append(errs, ValidationError{
			Field:   "led_array_rows_cols",
			Message: fmt.Sprintf("is %d, must be at least 1", p.LedArrayRowsCols),
		})
	}
	if p.BlockLength != p.BlockWidth {
		// The four-quadrant cavity layout assumes a square plate.
		errs = append(errs, ValidationError{
			Field:   "block_width",
			Message: fmt.Sprintf("is %.1f but block_length is %.1f; the quadrant layout requires a square block", p.BlockWidth, p.BlockLength),
		})
	}
	if p.OringGrooveDepth >= p.FinHeight {
		errs = append(errs, ValidationError{
			Field:   "oring_groove_depth",
			Message: fmt.Sprintf("is %.2f, must be shallower than fin_height %.2f", p.OringGrooveDepth, p.FinHeight),
		})
	}

	return errs
}
