package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 36100.0, cfg.Lumi)
	assert.Len(t, cfg.Regions, 7)
	assert.Len(t, cfg.Backgrounds, 9)
	assert.Len(t, cfg.Plots, 11)
	assert.Empty(t, cfg.Signals)

	assert.Equal(t, "QCD", cfg.Backgrounds[0].Label)
	assert.Equal(t, "ttbar", cfg.Regions[0].Name)
	assert.Equal(t, "met", cfg.Regions[0].Data)
	for _, p := range cfg.Plots {
		assert.Equal(t, "Events", p.YLabel)
	}
}

func TestLoadFile(t *testing.T) {
	yaml := `
lumi: 1000
outdir: plots
log:
  level: debug
data:
  met: data.root
backgrounds:
  - label: bg
    file: bg.root
    color: "#336699"
regions:
  - name: sr
    data: met
plots:
  - hist: HT
    xlabel: "H_T [GeV]"
    logy: true
    xmin: 0
    xmax: 2000
    rebin: 5
`
	path := filepath.Join(t.TempDir(), "histcmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, cfg.Lumi)
	assert.Equal(t, "plots", cfg.OutDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format) // defaulted

	require.Len(t, cfg.Regions, 1)
	require.Len(t, cfg.Plots, 1)
	p := cfg.Plots[0]
	assert.True(t, p.LogY)
	assert.True(t, p.HasXRange())
	assert.Equal(t, 5, p.Rebin)
	assert.Equal(t, "Events", p.YLabel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	yaml := `
regions:
  - name: sr
    data: unknown
`
	path := filepath.Join(t.TempDir(), "histcmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
