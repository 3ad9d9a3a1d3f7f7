package part

import (
	"math"
	"testing"

	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
	"github.com/jmball/cooling-block/pkg/kernel/sdfx"
)

func testDerived(t *testing.T) *design.Derived {
	t.Helper()
	d, err := design.Default().Derive()
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	return d
}

func extents(s kernel.Solid) (x, y, z float64) {
	min, max := s.BoundingBox()
	return max[0] - min[0], max[1] - min[1], max[2] - min[2]
}

// roundRecorder captures the corner radius passed to RoundedBox. Only
// RoundedBox is implemented; slot must not call anything else.
type roundRecorder struct {
	kernel.Kernel
	round float64
}

func (r *roundRecorder) RoundedBox(x, y, z, round float64) kernel.Solid {
	r.round = round
	return nil
}

func TestSlotRoundsNarrowDimension(t *testing.T) {
	tests := []struct {
		name string
		l, w float64
		want float64
	}{
		{"long first", 40, 6, 3},
		{"narrow first", 6, 40, 3},
		{"square", 8, 8, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &roundRecorder{}
			slot(rec, tt.l, tt.w, 10)
			if rec.round != tt.want {
				t.Errorf("slot(%g, %g) round = %g, want %g", tt.l, tt.w, rec.round, tt.want)
			}
		})
	}
}

func TestOringGroove(t *testing.T) {
	k := sdfx.New()
	d := testDerived(t)

	groove := OringGroove(k, d)
	x, y, z := extents(groove)

	wantXY := d.OringInnerLength + 2*d.OringGrooveWidth
	// sdfx pads bounding boxes; the groove must cover its outer
	// perimeter and must not be much bigger.
	if x < wantXY || x > wantXY+2 {
		t.Errorf("groove X extent = %f, want ~%f", x, wantXY)
	}
	if y < wantXY || y > wantXY+2 {
		t.Errorf("groove Y extent = %f, want ~%f", y, wantXY)
	}
	if z < d.OringGrooveDepth || z > d.OringGrooveDepth+1 {
		t.Errorf("groove Z extent = %f, want ~%f", z, d.OringGrooveDepth)
	}
}

func TestSerpentineCutout(t *testing.T) {
	k := sdfx.New()
	d := testDerived(t)

	t.Run("even fin count rejected", func(t *testing.T) {
		bad := *d
		bad.FinCount = 16
		if _, err := SerpentineCutout(k, &bad); err == nil {
			t.Fatal("SerpentineCutout accepted an even fin count")
		}
	})

	t.Run("channel covers the cavity", func(t *testing.T) {
		channel, err := SerpentineCutout(k, d)
		if err != nil {
			t.Fatalf("SerpentineCutout error = %v", err)
		}
		x, y, z := extents(channel)

		// The channel must span the full fin field in Y and reach the
		// closing path in X, and be exactly fin height tall.
		if y < d.HeatsinkCutWidth-1 {
			t.Errorf("channel Y extent = %f, want >= %f", y, d.HeatsinkCutWidth-1)
		}
		if x < d.FinLength {
			t.Errorf("channel X extent = %f, want >= %f", x, d.FinLength)
		}
		if math.Abs(z-d.FinHeight) > 1 {
			t.Errorf("channel Z extent = %f, want ~%f", z, d.FinHeight)
		}
	})

	t.Run("channel tessellates", func(t *testing.T) {
		k := sdfx.NewWithResolution(64)
		channel, err := SerpentineCutout(k, d)
		if err != nil {
			t.Fatalf("SerpentineCutout error = %v", err)
		}
		mesh, err := k.ToMesh(channel)
		if err != nil {
			t.Fatalf("ToMesh error = %v", err)
		}
		if mesh.IsEmpty() {
			t.Fatal("channel mesh is empty")
		}
	})
}

func TestBlock(t *testing.T) {
	k := sdfx.New()
	d := testDerived(t)

	block, err := Block(k, d)
	if err != nil {
		t.Fatalf("Block error = %v", err)
	}

	x, y, z := extents(block)
	if x < d.BlockLength || x > d.BlockLength+5 {
		t.Errorf("block X extent = %f, want ~%f", x, d.BlockLength)
	}
	if y < d.BlockWidth || y > d.BlockWidth+5 {
		t.Errorf("block Y extent = %f, want ~%f", y, d.BlockWidth)
	}
	if z < d.BlockHeight || z > d.BlockHeight+5 {
		t.Errorf("block Z extent = %f, want ~%f", z, d.BlockHeight)
	}

	// Centered on the origin.
	min, max := block.BoundingBox()
	if c := (min[2] + max[2]) / 2; math.Abs(c) > 0.5 {
		t.Errorf("block Z center = %f, want 0", c)
	}
}

func TestLid(t *testing.T) {
	k := sdfx.New()
	d := testDerived(t)

	lid := Lid(k, d)
	min, max := lid.BoundingBox()

	// The lid sits on top of the block: bottom at blockH/2, top at
	// blockH/2 + lidH.
	wantBottom := d.BlockHeight / 2
	wantTop := d.BlockHeight/2 + d.LidHeight
	if min[2] > wantBottom+0.5 || min[2] < wantBottom-2 {
		t.Errorf("lid bottom = %f, want ~%f", min[2], wantBottom)
	}
	if max[2] < wantTop-0.5 || max[2] > wantTop+2 {
		t.Errorf("lid top = %f, want ~%f", max[2], wantTop)
	}

	x, y, _ := extents(lid)
	if x < d.BlockLength || y < d.BlockWidth {
		t.Errorf("lid footprint %fx%f smaller than block %fx%f",
			x, y, d.BlockLength, d.BlockWidth)
	}
}

func TestWindowSpacer(t *testing.T) {
	k := sdfx.NewWithResolution(64)
	d := testDerived(t)

	spacer := WindowSpacer(k, d)
	x, y, z := extents(spacer)
	if math.Abs(x-2*d.SpacerRadius) > 0.5 || math.Abs(y-2*d.SpacerRadius) > 0.5 {
		t.Errorf("spacer footprint %fx%f, want ~%f", x, y, 2*d.SpacerRadius)
	}
	if math.Abs(z-d.SpacerHeight) > 0.5 {
		t.Errorf("spacer height = %f, want ~%f", z, d.SpacerHeight)
	}

	mesh, err := k.ToMesh(spacer)
	if err != nil {
		t.Fatalf("ToMesh error = %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("spacer mesh is empty")
	}
}
