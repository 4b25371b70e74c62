// Package histcmp produces data vs. background comparison plots for a set
// of physics control regions.
//
// Each plot shows the pre-filled background histograms stacked bin-by-bin,
// optional signal histograms as outlines and the data as points with error
// bars, together with a legend carrying the per-sample integrals. Below the
// main panel a ratio panel shows the bin-wise data / background quotient.
//
// The y-axis range is chosen by a "smart maximum" heuristic: the bins which
// lie under the legend box are scanned separately and the maximum is
// inflated until the drawn histograms stay clear of the legend, on both
// linear and logarithmic axes.
//
// Histograms are read from ROOT files via go-hep.org/x/hep/groot and
// rendered with go-hep.org/x/hep/hplot on top of gonum.org/v1/plot.
package histcmp
