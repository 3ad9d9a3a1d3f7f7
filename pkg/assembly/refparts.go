package assembly

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/kernel"
)

// refPlacement is one copy of a reference hardware model in the
// assembly frame.
type refPlacement struct {
	name      string
	file      string
	positions []r3.Vec
}

// refPlacements lists the purchased hardware and where each copy sits:
// extrusion rails under the two outer screw rows, corner brackets,
// extrusion screws, and water ports over the lid bores.
func refPlacements(d *design.Derived) []refPlacement {
	rowY := (d.BlockWidth - d.ExtrusionWidth) / 2
	railZ := -d.BlockHeight/2 - d.ExtrusionWidth/2
	topZ := d.BlockHeight/2 + d.LidHeight

	rails := refPlacement{name: "extrusion", file: "extrusion.stl", positions: []r3.Vec{
		{X: 0, Y: rowY, Z: railZ},
		{X: 0, Y: -rowY, Z: railZ},
	}}

	brackets := refPlacement{name: "bracket", file: "bracket.stl"}
	for _, sx := range []float64{1, -1} {
		for _, sy := range []float64{1, -1} {
			brackets.positions = append(brackets.positions, r3.Vec{
				X: sx * (d.BlockLength/2 - d.ExtrusionWidth),
				Y: sy * rowY,
				Z: railZ,
			})
		}
	}

	screws := refPlacement{name: "screw", file: "screw.stl"}
	for _, p := range d.ExtrusionHoles {
		screws.positions = append(screws.positions, r3.Vec{X: p.X, Y: p.Y, Z: topZ})
	}

	ports := refPlacement{name: "water_port", file: "water_port.stl"}
	rowOffset := d.HeatsinkCutWidth/2 - d.FinGap/2
	for _, q := range d.QuadrantCenters {
		ports.positions = append(ports.positions,
			r3.Vec{X: q.X, Y: q.Y + rowOffset, Z: topZ},
			r3.Vec{X: q.X, Y: q.Y - rowOffset, Z: topZ},
		)
	}

	return []refPlacement{rails, brackets, screws, ports}
}

// referenceMeshes loads the purchased hardware models from refDir and
// places them. A missing directory or model is not an error: the part
// is skipped with a warning and the assembly is exported without it.
func referenceMeshes(d *design.Derived, refDir string, log *slog.Logger) []*kernel.Mesh {
	if log == nil {
		log = slog.Default()
	}
	if refDir == "" {
		return nil
	}
	if _, err := os.Stat(refDir); err != nil {
		log.Warn("reference hardware directory not found, omitting hardware from assembly",
			"dir", refDir)
		return nil
	}

	var meshes []*kernel.Mesh
	for _, rp := range refPlacements(d) {
		path := filepath.Join(refDir, rp.file)
		solid, err := stl.ReadFile(path)
		if err != nil {
			log.Warn("reference model not loadable, omitting part from assembly",
				"part", rp.name, "path", path, "err", err)
			continue
		}
		for i, pos := range rp.positions {
			m := meshFromSTL(solid, pos)
			m.PartName = rp.name
			if len(rp.positions) > 1 {
				m.PartName = fmt.Sprintf("%s_%d", rp.name, i+1)
			}
			meshes = append(meshes, m)
		}
		log.Debug("placed reference hardware", "part", rp.name, "copies", len(rp.positions))
	}
	return meshes
}

// meshFromSTL converts an STL solid to the kernel mesh layout,
// translated to pos.
func meshFromSTL(s *stl.Solid, pos r3.Vec) *kernel.Mesh {
	m := &kernel.Mesh{
		Vertices: make([]float32, 0, len(s.Triangles)*9),
		Normals:  make([]float32, 0, len(s.Triangles)*9),
		Indices:  make([]uint32, 0, len(s.Triangles)*3),
	}
	for i, tri := range s.Triangles {
		for j := 0; j < 3; j++ {
			v := tri.Vertices[j]
			m.Vertices = append(m.Vertices,
				v[0]+float32(pos.X), v[1]+float32(pos.Y), v[2]+float32(pos.Z))
			m.Normals = append(m.Normals, tri.Normal[0], tri.Normal[1], tri.Normal[2])
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}
