package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"
	"github.com/hpinc/go3mf"
	"github.com/stretchr/testify/require"

	"github.com/jmball/cooling-block/pkg/kernel"
)

// tetrahedron returns a small closed mesh for round-trip tests.
func tetrahedron(name string) *kernel.Mesh {
	return &kernel.Mesh{
		PartName: name,
		Vertices: []float32{
			0, 0, 0,
			10, 0, 0,
			0, 10, 0,
			0, 0, 10,
		},
		Normals: []float32{
			0, 0, -1,
			0, 0, -1,
			0, 0, -1,
			0, 0, 1,
		},
		Indices: []uint32{
			0, 2, 1,
			0, 1, 3,
			0, 3, 2,
			1, 2, 3,
		},
	}
}

func TestEnsureBuildDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	require.NoError(t, EnsureBuildDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, EnsureBuildDir(dir))
}

func TestWriteSTLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.stl")
	m := tetrahedron("block")

	require.NoError(t, WriteSTL(path, m))

	solid, err := stl.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, len(solid.Triangles))

	// STL is non-indexed; the first triangle must carry the first
	// face's vertices.
	require.Equal(t, stl.Vec3{0, 0, 0}, solid.Triangles[0].Vertices[0])
	require.Equal(t, stl.Vec3{0, 10, 0}, solid.Triangles[0].Vertices[1])
}

func TestWriteSTLEmptyMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	err := WriteSTL(path, &kernel.Mesh{PartName: "empty"})
	require.Error(t, err)
}

func TestWrite3MFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assembly.3mf")
	meshes := []*kernel.Mesh{
		tetrahedron("block"),
		tetrahedron("lid"),
	}

	require.NoError(t, Write3MF(path, meshes))

	r, err := go3mf.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	model := new(go3mf.Model)
	require.NoError(t, r.Decode(model))

	require.Len(t, model.Resources.Objects, 2)
	require.Equal(t, "block", model.Resources.Objects[0].Name)
	require.Equal(t, "lid", model.Resources.Objects[1].Name)
	require.Len(t, model.Build.Items, 2)

	for _, obj := range model.Resources.Objects {
		require.NotNil(t, obj.Mesh)
		require.Len(t, obj.Mesh.Vertices.Vertex, 4)
		require.Len(t, obj.Mesh.Triangles.Triangle, 4)
	}
}

func TestWrite3MFNoMeshes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assembly.3mf")
	require.Error(t, Write3MF(path, nil))
}

func TestWrite3MFEmptyPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assembly.3mf")
	err := Write3MF(path, []*kernel.Mesh{{PartName: "hollow"}})
	require.Error(t, err)
}
