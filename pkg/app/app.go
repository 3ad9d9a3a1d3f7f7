// Package app wires the full generation pipeline: load parameters,
// derive the layout, build the solids, tessellate and export.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jmball/cooling-block/pkg/assembly"
	"github.com/jmball/cooling-block/pkg/design"
	"github.com/jmball/cooling-block/pkg/export"
	"github.com/jmball/cooling-block/pkg/kernel"
	"github.com/jmball/cooling-block/pkg/kernel/sdfx"
)

// Config controls one generation run.
type Config struct {
	// ParamsPath is an optional HCL parameter file; empty means the
	// reference design.
	ParamsPath string
	// BuildDir receives the exported files. Created on demand.
	BuildDir string
	// RefDir holds purchased hardware models. Missing models are
	// skipped with a warning.
	RefDir string
	// MeshCells is the tessellation resolution.
	MeshCells int
}

// App runs the generation pipeline with a fixed kernel and logger.
type App struct {
	cfg    Config
	kernel kernel.Kernel
	log    *slog.Logger
}

// New creates an App backed by the sdfx kernel.
func New(cfg Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		cfg:    cfg,
		kernel: sdfx.NewWithResolution(cfg.MeshCells),
		log:    log,
	}
}

// Run executes the pipeline: parameters -> layout -> solids -> meshes
// -> build/block.stl, build/lid.stl, build/spacer.stl and
// build/assembly.3mf.
func (a *App) Run(ctx context.Context) error {
	params, err := design.Load(a.cfg.ParamsPath)
	if err != nil {
		return fmt.Errorf("loading parameters: %w", err)
	}

	derived, err := params.Derive()
	if err != nil {
		return fmt.Errorf("deriving layout: %w", err)
	}
	for _, w := range derived.Warnings() {
		a.log.Warn("design warning", "field", w.Field, "message", w.Message)
	}
	a.log.Info("layout derived",
		"block", fmt.Sprintf("%.0fx%.0fx%.0f", derived.BlockLength, derived.BlockWidth, derived.BlockHeight),
		"fins", derived.FinCount,
		"fin_thickness", fmt.Sprintf("%.2f", derived.FinThickness),
		"lid_screws", len(derived.CsHoles),
		"led_screws", len(derived.LedScrewHoles),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	parts, err := assembly.Parts(a.kernel, derived)
	if err != nil {
		return fmt.Errorf("building parts: %w", err)
	}

	if err := export.EnsureBuildDir(a.cfg.BuildDir); err != nil {
		return err
	}

	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return err
		}
		mesh, err := assembly.Mesh(a.kernel, p)
		if err != nil {
			return err
		}
		path := filepath.Join(a.cfg.BuildDir, p.Name+".stl")
		if err := export.WriteSTL(path, mesh); err != nil {
			return err
		}
		a.log.Info("part exported", "part", p.Name, "path", path,
			"triangles", mesh.TriangleCount())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	meshes, err := assembly.Meshes(a.kernel, derived, parts, a.cfg.RefDir, a.log)
	if err != nil {
		return fmt.Errorf("assembling: %w", err)
	}
	asmPath := filepath.Join(a.cfg.BuildDir, "assembly.3mf")
	if err := export.Write3MF(asmPath, meshes); err != nil {
		return err
	}
	a.log.Info("assembly exported", "path", asmPath, "parts", len(meshes))

	return nil
}
