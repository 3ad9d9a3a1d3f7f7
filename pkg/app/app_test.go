package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmball/cooling-block/pkg/kernel"
)

// fakeSolid and fakeKernel stand in for the geometry kernel so pipeline
// tests stay fast.
type fakeSolid struct{}

func (s *fakeSolid) BoundingBox() (min, max [3]float64) {
	return [3]float64{0, 0, 0}, [3]float64{1, 1, 1}
}

type fakeKernel struct{}

func (k *fakeKernel) Box(_, _, _ float64) kernel.Solid                    { return &fakeSolid{} }
func (k *fakeKernel) RoundedBox(_, _, _, _ float64) kernel.Solid          { return &fakeSolid{} }
func (k *fakeKernel) Cylinder(_, _ float64) kernel.Solid                  { return &fakeSolid{} }
func (k *fakeKernel) Cone(_, _, _ float64) kernel.Solid                   { return &fakeSolid{} }
func (k *fakeKernel) Union(a, _ kernel.Solid) kernel.Solid                { return a }
func (k *fakeKernel) Difference(a, _ kernel.Solid) kernel.Solid           { return a }
func (k *fakeKernel) Intersection(a, _ kernel.Solid) kernel.Solid         { return a }
func (k *fakeKernel) Translate(s kernel.Solid, _, _, _ float64) kernel.Solid { return s }
func (k *fakeKernel) Rotate(s kernel.Solid, _, _, _ float64) kernel.Solid    { return s }

func (k *fakeKernel) ToMesh(_ kernel.Solid) (*kernel.Mesh, error) {
	return &kernel.Mesh{
		Vertices: []float32{0, 0, 0, 10, 0, 0, 0, 10, 0, 0, 0, 10},
		Normals:  []float32{0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, 1},
		Indices:  []uint32{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3},
	}, nil
}

var _ kernel.Kernel = (*fakeKernel)(nil)

func testApp(cfg Config) *App {
	return &App{
		cfg:    cfg,
		kernel: &fakeKernel{},
		log:    slog.Default(),
	}
}

func TestRunExportsAllFiles(t *testing.T) {
	buildDir := filepath.Join(t.TempDir(), "build")
	a := testApp(Config{BuildDir: buildDir})

	require.NoError(t, a.Run(context.Background()))

	for _, name := range []string{"block.stl", "lid.stl", "spacer.stl", "assembly.3mf"} {
		info, err := os.Stat(filepath.Join(buildDir, name))
		require.NoError(t, err, "missing %s", name)
		require.Greater(t, info.Size(), int64(0), "%s is empty", name)
	}
}

func TestRunWithParamsFile(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "params.hcl")
	require.NoError(t, os.WriteFile(paramsPath, []byte("block_length = 400\nblock_width = 400\n"), 0o644))

	a := testApp(Config{
		BuildDir:   filepath.Join(dir, "build"),
		ParamsPath: paramsPath,
	})
	require.NoError(t, a.Run(context.Background()))
}

func TestRunRejectsBadParams(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "params.hcl")
	// Non-square block fails layout derivation.
	require.NoError(t, os.WriteFile(paramsPath, []byte("block_length = 400\nblock_width = 300\n"), 0o644))

	a := testApp(Config{
		BuildDir:   filepath.Join(dir, "build"),
		ParamsPath: paramsPath,
	})
	require.Error(t, a.Run(context.Background()))
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := testApp(Config{BuildDir: filepath.Join(t.TempDir(), "build")})
	require.ErrorIs(t, a.Run(ctx), context.Canceled)
}

func TestNewDefaultsLogger(t *testing.T) {
	a := New(Config{MeshCells: 100}, nil)
	require.NotNil(t, a.log)
	require.NotNil(t, a.kernel)
}
