package histcmp

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not set.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns an interval with both edges unset.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// IsSet reports whether both edges of i are set.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i *Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Smart maximum

// A Scan accumulates the quantities needed to pick a y-range which keeps the
// drawn histograms clear of the legend box: the overall maximum, the smallest
// positive bin content and the maximum over the bins which lie under the
// legend.
type Scan struct {
	Min       float64 // smallest positive bin content
	Max       float64 // largest bin content
	ThreshMax float64 // largest bin content at or past the legend threshold
}

// NewScan returns an empty Scan.
func NewScan() Scan {
	return Scan{Min: math.Inf(1), Max: math.Inf(-1), ThreshMax: math.Inf(-1)}
}

// Add scans the bins of h and folds them into s. With withErr the bin error
// is added to the bin content, which is appropriate for data histograms
// drawn with error bars. The legend threshold is the index of the first bin
// whose x position falls under the left edge of the legend box described by
// geom.
func (s *Scan) Add(h *hbook.H1D, geom Geometry, withErr bool) {
	bins := h.Binning.Bins
	threshold := int(float64(len(bins)) * (geom.Legend.X1 - geom.Left) /
		((1 - geom.Right) - geom.Left))

	min, max := math.Inf(1), math.Inf(-1)
	pThreshMax := math.Inf(-1)
	for i, b := range bins {
		bin := b.Dist.Dist.SumW
		if withErr {
			bin += math.Sqrt(b.Dist.Dist.SumW2)
		}
		if bin > max {
			max = bin
		} else if bin > 1e-10 && bin < min {
			min = bin
		}
		if i >= threshold && bin > pThreshMax {
			pThreshMax = bin
		}
	}

	s.ThreshMax = math.Max(s.ThreshMax, pThreshMax)
	s.Max = math.Max(s.Max, max)
	s.Min = math.Min(s.Min, min)
}

// Range turns a completed scan into the y-range to draw. For log scales the
// lower edge is fixed at 0.2 and the upper edge at 10 times the maximum; for
// linear scales the range is [0, 1.3*max]. In both cases the maximum is
// inflated further if the bins under the legend would reach into the legend
// box described by geom.
func (s Scan) Range(geom Geometry, logY bool) Interval {
	max := s.Max
	if logY {
		locMin := math.Min(0.2, math.Max(0.2, 0.05*s.Min))
		legSpan := (math.Log10(3*max) - math.Log10(locMin)) *
			(geom.Legend.Y1 - geom.Bottom) / ((1 - geom.Top) - geom.Bottom)
		legMin := legSpan + math.Log10(locMin)
		if math.Log10(s.ThreshMax) > legMin {
			scale := (math.Log10(s.ThreshMax) - math.Log10(locMin)) / (legMin - math.Log10(locMin))
			max = math.Pow(max/locMin, scale) * locMin
		}
		return Interval{locMin, 10 * max}
	}

	legMin := 1.2 * max * (geom.Legend.Y1 - geom.Bottom) / ((1 - geom.Top) - geom.Bottom)
	if s.ThreshMax > legMin {
		max *= s.ThreshMax / legMin
	}
	return Interval{0, 1.3 * max}
}
