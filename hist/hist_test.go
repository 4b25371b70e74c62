package hist

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"
)

func value(h *hbook.H1D, i int) float64 {
	return h.Binning.Bins[i].Dist.Dist.SumW
}

func variance(h *hbook.H1D, i int) float64 {
	return h.Binning.Bins[i].Dist.Dist.SumW2
}

func TestRebin(t *testing.T) {
	h := hbook.NewH1D(10, 0, 10)
	for i := 0; i < 10; i++ {
		h.Fill(float64(i)+0.5, float64(i+1))
	}

	r := Rebin(h, 3)
	bins := r.Binning.Bins
	require.Len(t, bins, 4)

	// Edges: 0, 3, 6, 9 and a short trailing bin to 10.
	assert.Equal(t, 0.0, bins[0].Range.Min)
	assert.Equal(t, 3.0, bins[0].Range.Max)
	assert.Equal(t, 9.0, bins[3].Range.Min)
	assert.Equal(t, 10.0, bins[3].Range.Max)

	assert.Equal(t, 1.0+2+3, value(r, 0))
	assert.Equal(t, 4.0+5+6, value(r, 1))
	assert.Equal(t, 7.0+8+9, value(r, 2))
	assert.Equal(t, 10.0, value(r, 3))

	// Squared weights merge as well.
	assert.Equal(t, 1.0+4+9, variance(r, 0))

	// The input histogram is untouched.
	assert.Len(t, h.Binning.Bins, 10)
	assert.Equal(t, 1.0, value(h, 0))
}

func TestRebinIdentity(t *testing.T) {
	h := hbook.NewH1D(5, 0, 5)
	h.Fill(2.5, 3)

	r := Rebin(h, 1)
	require.Len(t, r.Binning.Bins, 5)
	assert.Equal(t, 3.0, value(r, 2))

	// A copy, not the same histogram.
	r.Fill(2.5, 1)
	assert.Equal(t, 3.0, value(h, 2))
}

func TestSum(t *testing.T) {
	a := hbook.NewH1D(4, 0, 4)
	b := hbook.NewH1D(4, 0, 4)
	a.Fill(0.5, 2)
	a.Fill(1.5, 1)
	b.Fill(0.5, 3)
	b.Fill(3.5, 4)

	s, err := Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, value(s, 0))
	assert.Equal(t, 1.0, value(s, 1))
	assert.Equal(t, 0.0, value(s, 2))
	assert.Equal(t, 4.0, value(s, 3))
	assert.Equal(t, 4.0+9, variance(s, 0))

	// Inputs stay as they were.
	assert.Equal(t, 2.0, value(a, 0))
	assert.Equal(t, 3.0, value(b, 0))
}

func TestSumBinningMismatch(t *testing.T) {
	a := hbook.NewH1D(4, 0, 4)
	b := hbook.NewH1D(5, 0, 5)
	_, err := Sum(a, b)
	assert.Error(t, err)
}

func TestIntegral(t *testing.T) {
	h := hbook.NewH1D(4, 0, 4)
	h.Fill(0.5, 1)
	h.Fill(3.5, 2)
	h.Fill(-1, 5) // underflow
	h.Fill(10, 7) // overflow

	assert.InDelta(t, 15.0, Integral(h), 1e-12)
}

func TestPoints(t *testing.T) {
	h := hbook.NewH1D(4, 0, 4)
	for i := 0; i < 9; i++ {
		h.Fill(1.5, 1)
	}
	h.Fill(3.5, 2)

	pts := Points(h)
	require.Equal(t, 2, pts.Len())

	x, y := pts.XY(0)
	assert.Equal(t, 1.5, x)
	assert.Equal(t, 9.0, y)
	down, up := pts.YError(0)
	assert.InDelta(t, 3.0, down, 1e-12)
	assert.InDelta(t, 3.0, up, 1e-12)

	x, y = pts.XY(1)
	assert.Equal(t, 3.5, x)
	assert.Equal(t, 2.0, y)
}

func TestRatio(t *testing.T) {
	num := hbook.NewH1D(3, 0, 3)
	den := hbook.NewH1D(3, 0, 3)
	for i := 0; i < 4; i++ {
		num.Fill(0.5, 1)
	}
	for i := 0; i < 16; i++ {
		den.Fill(0.5, 1)
	}
	den.Fill(1.5, 1) // num empty here: skipped
	num.Fill(2.5, 1) // den empty here: skipped

	r, err := Ratio(num, den)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	x, y := r.XY(0)
	assert.Equal(t, 0.5, x)
	assert.InDelta(t, 0.25, y, 1e-12)

	// err = r * sqrt((2/4)^2 + (4/16)^2)
	want := 0.25 * math.Sqrt(0.25+0.0625)
	down, _ := r.YError(0)
	assert.InDelta(t, want, down, 1e-12)
}

func TestRatioBinningMismatch(t *testing.T) {
	num := hbook.NewH1D(3, 0, 3)
	den := hbook.NewH1D(3, 0, 6)
	_, err := Ratio(num, den)
	assert.Error(t, err)
}

func TestReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hists.root")

	h := hbook.NewH1D(5, 0, 5)
	h.Fill(0.5, 2)
	h.Fill(2.5, 3)
	h.Fill(2.5, 1)

	f, err := riofs.Create(path)
	require.NoError(t, err)
	dir, err := riofs.Dir(f).Mkdir("ttbar")
	require.NoError(t, err)
	require.NoError(t, dir.Put("HT", rhist.NewH1DFrom(h)))
	require.NoError(t, f.Close())

	got, err := Read(path, "ttbar/HT")
	require.NoError(t, err)
	require.Len(t, got.Binning.Bins, 5)
	assert.InDelta(t, 2.0, value(got, 0), 1e-12)
	assert.InDelta(t, 4.0, value(got, 2), 1e-12)
	assert.InDelta(t, 0.0, value(got, 1), 1e-12)
}

func TestReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hists.root")

	f, err := riofs.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Read(path, "nope")
	assert.Error(t, err)

	_, err = Read(filepath.Join(t.TempDir(), "does-not-exist.root"), "h")
	assert.Error(t, err)
}

func TestSourceRetrieve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hists.root")

	h := hbook.NewH1D(10, 0, 10)
	for i := 0; i < 10; i++ {
		h.Fill(float64(i)+0.5, 1)
	}

	f, err := riofs.Create(path)
	require.NoError(t, err)
	require.NoError(t, riofs.Dir(f).Put("nJets", rhist.NewH1DFrom(h)))
	require.NoError(t, f.Close())

	src := Source{Label: "Data", File: path, Name: "nJets", Rebin: 5}
	got, err := src.Retrieve()
	require.NoError(t, err)
	require.Len(t, got.Binning.Bins, 2)
	assert.InDelta(t, 5.0, value(got, 0), 1e-12)
}
