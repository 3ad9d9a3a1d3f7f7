package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeParamsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), p)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeParamsFile(t, `
block_length = 300
block_width  = 300
fin_gap      = 5
`)
	p, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 300.0, p.BlockLength)
	require.Equal(t, 300.0, p.BlockWidth)
	require.Equal(t, 5.0, p.FinGap)

	// Untouched attributes keep their defaults.
	def := Default()
	require.Equal(t, def.ExtrusionWidth, p.ExtrusionWidth)
	require.Equal(t, def.CsScrewCount, p.CsScrewCount)
	require.Equal(t, def.OringGrooveWidth, p.OringGrooveWidth)
}

func TestLoadedParamsDerive(t *testing.T) {
	path := writeParamsFile(t, `
block_length = 400
block_width  = 400
`)
	p, err := Load(path)
	require.NoError(t, err)

	d, err := p.Derive()
	require.NoError(t, err)
	require.True(t, d.FinCount%2 == 1, "fin count must stay odd")
	require.Greater(t, d.FinThickness, d.MinFinThick)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeParamsFile(t, `block_length = `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadUnknownAttribute(t *testing.T) {
	path := writeParamsFile(t, `no_such_parameter = 1`)
	_, err := Load(path)
	require.Error(t, err)
}
