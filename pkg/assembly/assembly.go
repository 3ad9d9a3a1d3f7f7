// Package assembly composes the cooling block parts into a named part
// set and produces one triangle mesh per part using a geometry kernel.
// Purchased reference hardware is merged in when its models are
// available.
package assembly

import (
	"fmt"
	"log/slog"

	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
	"github.com/jmball/cooling-block/pkg/part"
)

// Part names used across export and logging.
const (
	PartBlock  = "block"
	PartLid    = "lid"
	PartSpacer = "spacer"
)

// Part is one named solid of the assembly.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Parts builds the manufactured parts in the block's coordinate frame:
// the block centered at the origin, the lid seated on top, and one
// window spacer (at the origin, for standalone export).
func Parts(k kernel.Kernel, d *design.Derived) ([]Part, error) {
	block, err := part.Block(k, d)
	if err != nil {
		return nil, fmt.Errorf("building block: %w", err)
	}
	return []Part{
		{Name: PartBlock, Solid: block},
		{Name: PartLid, Solid: part.Lid(k, d)},
		{Name: PartSpacer, Solid: part.WindowSpacer(k, d)},
	}, nil
}

// Mesh tessellates a single part.
func Mesh(k kernel.Kernel, p Part) (*kernel.Mesh, error) {
	m, err := k.ToMesh(p.Solid)
	if err != nil {
		return nil, fmt.Errorf("tessellating %s: %w", p.Name, err)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("tessellating %s: empty mesh", p.Name)
	}
	m.PartName = p.Name
	return m, nil
}

// Meshes tessellates the assembly: block and lid in place, and the four
// window spacers seated under their standoff screws. Reference hardware
// from refDir is appended when present; missing models are logged and
// skipped.
func Meshes(k kernel.Kernel, d *design.Derived, parts []Part, refDir string, log *slog.Logger) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh

	for _, p := range parts {
		if p.Name == PartSpacer {
			continue // placed separately below
		}
		m, err := Mesh(k, p)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}

	// Window spacers hang under the block at the standoff screws.
	spacer := part.WindowSpacer(k, d)
	for i, p := range d.StandoffHoles {
		placed := k.Translate(spacer, p.X, p.Y, -d.BlockHeight/2-d.SpacerHeight/2)
		m, err := Mesh(k, Part{Name: fmt.Sprintf("%s_%d", PartSpacer, i+1), Solid: placed})
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}

	meshes = append(meshes, referenceMeshes(d, refDir, log)...)
	return meshes, nil
}
