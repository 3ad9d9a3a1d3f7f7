package part

import (
	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
)

// spacerBoreClearance widens the spacer bore over the screw tap radius
// so the standoff screw slides through freely.
const spacerBoreClearance = 0.25

// WindowSpacer builds one standoff spacer for the protective window: a
// cylinder with a clearance bore for the standoff screw. Four of these
// are printed and slipped over the standoff screws.
func WindowSpacer(k kernel.Kernel, d *design.Derived) kernel.Solid {
	body := k.Cylinder(d.SpacerHeight, d.SpacerRadius)
	bore := k.Cylinder(d.SpacerHeight+cutMargin,
		d.StandoffScrewTapRadius+spacerBoreClearance)
	return k.Difference(body, bore)
}
