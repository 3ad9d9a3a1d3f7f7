package part

import (
	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
)

// OringGroove builds the groove ring that seats the o-ring around one
// coolant cavity: a rounded-rectangle ring, groove width wide and groove
// depth tall, centered at the origin. The caller cuts it from the block
// at the right height.
func OringGroove(k kernel.Kernel, d *design.Derived) kernel.Solid {
	outer := k.RoundedBox(
		d.OringInnerLength+2*d.OringGrooveWidth,
		d.OringInnerWidth+2*d.OringGrooveWidth,
		d.OringGrooveDepth,
		d.OringInnerRadius+d.OringGrooveWidth,
	)
	inner := k.RoundedBox(
		d.OringInnerLength,
		d.OringInnerWidth,
		d.OringGrooveDepth,
		d.OringInnerRadius,
	)
	return k.Difference(outer, inner)
}
