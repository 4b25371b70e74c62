package histcmp

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Geometry describes the pad margins and the legend box in normalised pad
// coordinates (0 = left/bottom edge, 1 = right/top edge). The axis heuristic
// needs these to know which bins lie under the legend.
type Geometry struct {
	Left, Right float64
	Top, Bottom float64
	Legend      LegendBox
}

// LegendBox is the legend rectangle in normalised pad coordinates.
type LegendBox struct {
	X1, Y1, X2, Y2 float64
}

// A Style controls how a comparison plot is drawn.
type Style struct {
	// Width and Height of the full canvas.
	Width, Height vg.Length

	// Split is the fraction of the canvas height given to the ratio panel.
	Split float64

	// Main is the geometry of the upper pad, including the legend box.
	Main Geometry

	// RatioYLabel is the y-axis title of the ratio panel.
	RatioYLabel string

	// RatioRange is the fixed y-range of the ratio panel.
	RatioRange Interval

	// DataGlyph is the marker used for data and ratio points.
	DataGlyph draw.GlyphStyle

	// LineWidth of signal histogram outlines.
	LineWidth vg.Length

	// FontSize of axis titles and the stamp text.
	FontSize vg.Length
}

// DefaultStyle returns the house style: a square 800x800 canvas with a 70/30
// split between main and ratio pad, and the legend in the upper right.
func DefaultStyle() Style {
	s := Style{
		Width:       800,
		Height:      800,
		Split:       0.3,
		RatioYLabel: "Data / BG",
		Main: Geometry{
			Left:   0.12,
			Right:  0.06,
			Top:    0.08,
			Bottom: 0.0,
			Legend: LegendBox{X1: 0.50, Y1: 0.56, X2: 0.89, Y2: 0.88},
		},
		RatioRange: Interval{0.5, 1.5},
		LineWidth:  vg.Points(2),
		FontSize:   vg.Points(14),
	}
	s.DataGlyph = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}
	return s
}
