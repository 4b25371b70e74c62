package histcmp

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/hbook"
	"go.uber.org/zap"

	"github.com/hepplot/histcmp/hist"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "ttbar_HT.png", OutputName("ttbar/HT"))
	assert.Equal(t, "a_b_c.png", OutputName("a/b/c"))
	assert.Equal(t, "nVertices.png", OutputName("nVertices"))
}

// renderTestEntry builds an entry with a 10-bin histogram scaled by f.
func renderTestEntry(t *testing.T, label string, col color.NRGBA, f float64) entry {
	t.Helper()
	h := hbook.NewH1D(10, 0, 1000)
	for i := 0; i < 10; i++ {
		h.Fill(float64(i)*100+50, f*float64(10-i))
	}
	return entry{
		src: hist.Source{Label: label, Color: col},
		h:   h,
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	data := renderTestEntry(t, "Data", color.NRGBA{A: 0xff}, 3)
	bgs := []entry{
		renderTestEntry(t, "bg1", color.NRGBA{R: 0xff, A: 0xff}, 2),
		renderTestEntry(t, "bg2", color.NRGBA{B: 0xff, A: 0xff}, 1),
	}
	sigs := []entry{
		renderTestEntry(t, "sig", color.NRGBA{G: 0x99, A: 0xff}, 0.5),
	}
	bgSum, err := hist.Sum(bgs[0].h, bgs[1].h)
	require.NoError(t, err)

	p := &Plotter{
		Lumi:   36100,
		OutDir: dir,
		Style:  DefaultStyle(),
		Log:    zap.NewNop(),
	}

	for _, tc := range []struct {
		name string
		opts PlotOptions
	}{
		{"linear", PlotOptions{Hist: "sr/HT", XLabel: "H_T [GeV]", YLabel: "Events", XRange: UnsetInterval()}},
		{"log", PlotOptions{Hist: "sr/MET", XLabel: "MET [GeV]", YLabel: "Events", LogY: true, XRange: Interval{0, 800}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, p.render(tc.opts, data, bgs, sigs, bgSum))

			name := filepath.Join(dir, OutputName(tc.opts.Hist))
			raw, err := os.ReadFile(name)
			require.NoError(t, err)
			require.Greater(t, len(raw), 8)
			// PNG signature.
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
		})
	}
}

func TestPlotMissingInput(t *testing.T) {
	p := NewPlotter(hist.Source{Label: "Data", File: filepath.Join(t.TempDir(), "nope.root")}, nil, nil)
	err := p.Plot(PlotOptions{Hist: "sr/HT", XRange: UnsetInterval()})
	assert.Error(t, err)
}
