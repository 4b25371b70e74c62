// Package hist retrieves pre-filled histograms from ROOT files and provides
// the small amount of bin arithmetic the comparison plots need: rebinning,
// background summing, integrals and the data/background ratio.
package hist

import (
	"fmt"
	"image/color"
	"math"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// A Source describes where one histogram comes from and how it is drawn.
// The in-file name is set per plot, the rest is per sample.
type Source struct {
	Label string      // legend entry
	File  string      // ROOT file path
	Name  string      // in-file histogram path, e.g. "ttbar/HT"
	Color color.NRGBA // line and fill color
	Rebin int         // rebin factor, <= 1 means none
}

// Retrieve reads the histogram named s.Name from s.File and applies the
// configured rebinning.
func (s Source) Retrieve() (*hbook.H1D, error) {
	h, err := Read(s.File, s.Name)
	if err != nil {
		return nil, err
	}
	if s.Rebin > 1 {
		h = Rebin(h, s.Rebin)
	}
	return h, nil
}

// Read opens the ROOT file at path and returns the 1-dim histogram stored
// under name. Name may contain "/" to address histograms inside
// subdirectories.
func Read(path, name string) (*hbook.H1D, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hist: could not open %q: %w", path, err)
	}
	defer f.Close()

	obj, err := riofs.Dir(f).Get(name)
	if err != nil {
		return nil, fmt.Errorf("hist: could not find %q in %q: %w", name, path, err)
	}
	th, ok := obj.(rhist.H1)
	if !ok {
		return nil, fmt.Errorf("hist: object %q in %q is a %T, not a TH1", name, path, obj)
	}
	h := rootcnv.H1D(th)
	return h, nil
}

// edges returns the n+1 bin edges of h.
func edges(h *hbook.H1D) []float64 {
	bins := h.Binning.Bins
	es := make([]float64, len(bins)+1)
	for i, b := range bins {
		es[i] = b.Range.Min
	}
	es[len(bins)] = bins[len(bins)-1].Range.Max
	return es
}

func sameBinning(a, b *hbook.H1D) bool {
	if len(a.Binning.Bins) != len(b.Binning.Bins) {
		return false
	}
	for i := range a.Binning.Bins {
		if a.Binning.Bins[i].Range != b.Binning.Bins[i].Range {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of h.
func Clone(h *hbook.H1D) *hbook.H1D {
	o := hbook.NewH1DFromEdges(edges(h))
	for i := range h.Binning.Bins {
		o.Binning.Bins[i].Dist = h.Binning.Bins[i].Dist
	}
	o.Binning.Outflows = h.Binning.Outflows
	o.Binning.Dist = h.Binning.Dist
	return o
}

// Rebin merges groups of n adjacent bins of h into single bins, summing
// weights and squared weights. A trailing group with fewer than n bins is
// merged as well. Rebin returns a new histogram; for n <= 1 it returns a
// copy of h.
func Rebin(h *hbook.H1D, n int) *hbook.H1D {
	if n <= 1 {
		return Clone(h)
	}
	bins := h.Binning.Bins
	var es []float64
	for i := 0; i < len(bins); i += n {
		es = append(es, bins[i].Range.Min)
	}
	es = append(es, bins[len(bins)-1].Range.Max)

	o := hbook.NewH1DFromEdges(es)
	for i, b := range bins {
		d := &o.Binning.Bins[i/n].Dist
		d.Dist.N += b.Dist.Dist.N
		d.Dist.SumW += b.Dist.Dist.SumW
		d.Dist.SumW2 += b.Dist.Dist.SumW2
		d.Stats.SumWX += b.Dist.Stats.SumWX
		d.Stats.SumWX2 += b.Dist.Stats.SumWX2
	}
	o.Binning.Outflows = h.Binning.Outflows
	o.Binning.Dist = h.Binning.Dist
	return o
}

// Sum returns the bin-by-bin sum of hs. All histograms must share the same
// binning.
func Sum(hs ...*hbook.H1D) (*hbook.H1D, error) {
	if len(hs) == 0 {
		return nil, fmt.Errorf("hist: no histograms to sum")
	}
	o := Clone(hs[0])
	for _, h := range hs[1:] {
		if !sameBinning(o, h) {
			return nil, fmt.Errorf("hist: binning mismatch in sum")
		}
		for i, b := range h.Binning.Bins {
			d := &o.Binning.Bins[i].Dist
			d.Dist.N += b.Dist.Dist.N
			d.Dist.SumW += b.Dist.Dist.SumW
			d.Dist.SumW2 += b.Dist.Dist.SumW2
			d.Stats.SumWX += b.Dist.Stats.SumWX
			d.Stats.SumWX2 += b.Dist.Stats.SumWX2
		}
		for i := range h.Binning.Outflows {
			d := &o.Binning.Outflows[i].Dist
			d.N += h.Binning.Outflows[i].Dist.N
			d.SumW += h.Binning.Outflows[i].Dist.SumW
			d.SumW2 += h.Binning.Outflows[i].Dist.SumW2
		}
	}
	return o, nil
}

// Integral returns the sum of all bin weights of h including the under- and
// overflow bins.
func Integral(h *hbook.H1D) float64 {
	sum := h.Binning.Outflows[0].Dist.SumW + h.Binning.Outflows[1].Dist.SumW
	for _, b := range h.Binning.Bins {
		sum += b.Dist.Dist.SumW
	}
	return sum
}

// Points converts h into a 2-dim scatter of (bin center, content) points
// with the bin error as the y error. Empty bins are skipped so that no
// marker is drawn for them.
func Points(h *hbook.H1D) *hbook.S2D {
	var pts []hbook.Point2D
	for _, b := range h.Binning.Bins {
		w := b.Dist.Dist.SumW
		if w == 0 {
			continue
		}
		e := math.Sqrt(b.Dist.Dist.SumW2)
		pts = append(pts, hbook.Point2D{
			X:    0.5 * (b.Range.Min + b.Range.Max),
			Y:    w,
			ErrY: hbook.Range{Min: e, Max: e},
		})
	}
	return hbook.NewS2D(pts...)
}

// Ratio returns the bin-wise quotient num/den as scatter points with
// uncorrelated error propagation:
//
//	err = r * sqrt((en/n)^2 + (ed/d)^2)
//
// Bins where either histogram is empty are skipped.
func Ratio(num, den *hbook.H1D) (*hbook.S2D, error) {
	if !sameBinning(num, den) {
		return nil, fmt.Errorf("hist: binning mismatch in ratio")
	}
	var pts []hbook.Point2D
	for i, nb := range num.Binning.Bins {
		db := den.Binning.Bins[i]
		n, d := nb.Dist.Dist.SumW, db.Dist.Dist.SumW
		if n == 0 || d == 0 {
			continue
		}
		r := n / d
		en := math.Sqrt(nb.Dist.Dist.SumW2) / n
		ed := math.Sqrt(db.Dist.Dist.SumW2) / d
		e := r * math.Sqrt(en*en+ed*ed)
		pts = append(pts, hbook.Point2D{
			X:    0.5 * (nb.Range.Min + nb.Range.Max),
			Y:    r,
			ErrY: hbook.Range{Min: e, Max: e},
		})
	}
	return hbook.NewS2D(pts...), nil
}
