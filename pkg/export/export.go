// Package export writes tessellated parts to the build directory as
// binary STL (one file per part) and as a single 3MF assembly whose
// objects carry the part names.
package export

import (
	"fmt"
	"os"

	"github.com/hschendel/stl"
	"github.com/hpinc/go3mf"

	"github.com/jmball/cooling-block/pkg/kernel"
)

// EnsureBuildDir creates the build directory if it does not exist.
func EnsureBuildDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating build directory %s: %w", dir, err)
	}
	return nil
}

// WriteSTL writes a mesh as a binary STL file.
func WriteSTL(path string, m *kernel.Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("writing %s: mesh is empty", path)
	}

	solid := stl.Solid{
		Name:      m.PartName,
		Triangles: make([]stl.Triangle, 0, m.TriangleCount()),
	}
	for t := 0; t < m.TriangleCount(); t++ {
		var tri stl.Triangle
		for j := 0; j < 3; j++ {
			vi := m.Indices[t*3+j]
			tri.Vertices[j] = stl.Vec3{
				m.Vertices[vi*3+0],
				m.Vertices[vi*3+1],
				m.Vertices[vi*3+2],
			}
		}
		// Per-face normal from the first vertex of the face.
		ni := m.Indices[t*3]
		tri.Normal = stl.Vec3{
			m.Normals[ni*3+0],
			m.Normals[ni*3+1],
			m.Normals[ni*3+2],
		}
		solid.Triangles = append(solid.Triangles, tri)
	}

	if err := solid.WriteFile(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Write3MF writes all meshes into one 3MF model, one object per part,
// all placed in the build section.
func Write3MF(path string, meshes []*kernel.Mesh) error {
	if len(meshes) == 0 {
		return fmt.Errorf("writing %s: no meshes", path)
	}

	model := new(go3mf.Model)
	model.Units = go3mf.UnitMillimeter

	for i, m := range meshes {
		if m.IsEmpty() {
			return fmt.Errorf("writing %s: part %q has an empty mesh", path, m.PartName)
		}
		obj := &go3mf.Object{
			ID:   uint32(i + 1),
			Name: m.PartName,
			Mesh: new(go3mf.Mesh),
		}
		for v := 0; v < m.VertexCount(); v++ {
			obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex, go3mf.Point3D{
				m.Vertices[v*3+0],
				m.Vertices[v*3+1],
				m.Vertices[v*3+2],
			})
		}
		for t := 0; t < m.TriangleCount(); t++ {
			obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle,
				go3mf.Triangle{
					V1: m.Indices[t*3+0],
					V2: m.Indices[t*3+1],
					V3: m.Indices[t*3+2],
				})
		}
		model.Resources.Objects = append(model.Resources.Objects, obj)
		model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})
	}

	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Encode(model); err != nil {
		w.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
