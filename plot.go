package histcmp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hepplot/histcmp/hist"
)

// PlotOptions selects one variable to plot and how to display it.
type PlotOptions struct {
	// Hist is the in-file histogram path, e.g. "ttbar/HT". It doubles as
	// the output file name with "/" replaced by "_".
	Hist string

	// XLabel and YLabel are the axis titles. YLabel defaults to "Events".
	XLabel string
	YLabel string

	// LogY selects a logarithmic y-axis.
	LogY bool

	// XRange restricts the x-axis. An unset interval means the full
	// histogram range.
	XRange Interval

	// Rebin is the rebinning factor applied to all inputs, <= 1 for none.
	Rebin int
}

// A Plotter renders comparison plots for one control region: a data source,
// a list of stacked backgrounds and an optional list of signal overlays.
type Plotter struct {
	Data hist.Source
	Bgs  []hist.Source
	Sigs []hist.Source

	// Lumi is the integrated luminosity in 1/pb, shown in the stamp.
	Lumi float64

	// OutDir is where the PNG files go.
	OutDir string

	Style Style
	Log   *zap.Logger
}

// NewPlotter returns a Plotter with the default style and a no-op logger.
func NewPlotter(data hist.Source, bgs, sigs []hist.Source) *Plotter {
	return &Plotter{
		Data:  data,
		Bgs:   bgs,
		Sigs:  sigs,
		Lumi:  36100,
		Style: DefaultStyle(),
		Log:   zap.NewNop(),
	}
}

// entry pairs a retrieved histogram with its source description.
type entry struct {
	src hist.Source
	h   *hbook.H1D
}

// Plot retrieves all inputs for opts.Hist and renders the comparison plot.
func (p *Plotter) Plot(opts PlotOptions) error {
	if opts.YLabel == "" {
		opts.YLabel = "Events"
	}
	p.Log.Debug("plotting", zap.String("hist", opts.Hist))

	retrieve := func(src hist.Source) (entry, error) {
		src.Name = opts.Hist
		src.Rebin = opts.Rebin
		h, err := src.Retrieve()
		return entry{src, h}, err
	}

	data, err := retrieve(p.Data)
	if err != nil {
		return err
	}
	bgs := make([]entry, len(p.Bgs))
	for i, src := range p.Bgs {
		if bgs[i], err = retrieve(src); err != nil {
			return err
		}
	}
	sigs := make([]entry, len(p.Sigs))
	for i, src := range p.Sigs {
		if sigs[i], err = retrieve(src); err != nil {
			return err
		}
	}

	hbgs := make([]*hbook.H1D, len(bgs))
	for i, bg := range bgs {
		hbgs[i] = bg.h
	}
	bgSum, err := hist.Sum(hbgs...)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Hist, err)
	}

	return p.render(opts, data, bgs, sigs, bgSum)
}

// OutputName returns the PNG file name for a histogram path.
func OutputName(histName string) string {
	return strings.ReplaceAll(histName, "/", "_") + ".png"
}

func (p *Plotter) render(opts PlotOptions, data entry, bgs, sigs []entry, bgSum *hbook.H1D) error {
	style := p.Style
	geom := style.Main

	// Find the y-range which keeps everything clear of the legend.
	scan := NewScan()
	scan.Add(data.h, geom, true)
	scan.Add(bgSum, geom, false)
	for _, sig := range sigs {
		scan.Add(sig.h, geom, false)
	}
	yr := scan.Range(geom, opts.LogY)

	xr := opts.XRange
	if !xr.IsSet() {
		bins := data.h.Binning.Bins
		xr = Interval{bins[0].Range.Min, bins[len(bins)-1].Range.Max}
	}

	// Main panel.
	upper := hplot.New()
	upper.Title.Text = fmt.Sprintf("CMS Preliminary                %.1f fb⁻¹ (13 TeV)", p.Lumi/1000)
	upper.Title.TextStyle.Font.Size = style.FontSize
	upper.Y.Label.Text = opts.YLabel
	upper.Y.Label.TextStyle.Font.Size = style.FontSize
	upper.X.Min, upper.X.Max = xr.Min, xr.Max
	upper.Y.Min, upper.Y.Max = yr.Min, yr.Max
	if opts.LogY {
		upper.Y.Scale = plot.LogScale{}
		upper.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	upper.Add(horizontalGrid())

	// The stack is built in reverse so that the first configured
	// background ends up on top, matching the legend order.
	stacked := make([]*hplot.H1D, 0, len(bgs))
	for i := len(bgs) - 1; i >= 0; i-- {
		hb := hplot.NewH1D(bgs[i].h, hplot.WithLogY(opts.LogY))
		hb.FillColor = bgs[i].src.Color
		hb.LineStyle.Color = bgs[i].src.Color
		stacked = append(stacked, hb)
	}
	stack := hplot.NewHStack(stacked, hplot.WithLogY(opts.LogY))
	upper.Add(stack)

	sigPlots := make([]*hplot.H1D, len(sigs))
	for i, sig := range sigs {
		hs := hplot.NewH1D(sig.h, hplot.WithLogY(opts.LogY))
		hs.FillColor = nil
		hs.LineStyle.Color = sig.src.Color
		hs.LineStyle.Width = style.LineWidth
		sigPlots[i] = hs
		upper.Add(hs)
	}

	pts := hplot.NewS2D(hist.Points(data.h), hplot.WithYErrBars(true))
	pts.GlyphStyle = style.DataGlyph
	upper.Add(pts)

	// Legend: data first, then the backgrounds in configured order, then
	// the signals. Data and background entries carry the integral
	// including under- and overflow.
	upper.Legend.Add(fmt.Sprintf("%s (%.1e)", data.src.Label, hist.Integral(data.h)), glyphThumb{style.DataGlyph})
	for i, bg := range bgs {
		upper.Legend.Add(fmt.Sprintf("%s (%.1e)", bg.src.Label, hist.Integral(bg.h)), stacked[len(stacked)-1-i])
	}
	for i, sig := range sigs {
		upper.Legend.Add(sig.src.Label, sigPlots[i])
	}
	upper.Legend.Top = true
	upper.Legend.XOffs = -vg.Points(10)
	upper.Legend.YOffs = -vg.Points(10)
	upper.Legend.TextStyle.Font.Size = style.FontSize

	// Ratio panel.
	ratio, err := hist.Ratio(data.h, bgSum)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Hist, err)
	}
	lower := hplot.New()
	lower.X.Label.Text = opts.XLabel
	lower.X.Label.TextStyle.Font.Size = style.FontSize
	lower.Y.Label.Text = style.RatioYLabel
	lower.Y.Label.TextStyle.Font.Size = style.FontSize
	lower.X.Min, lower.X.Max = xr.Min, xr.Max
	lower.Y.Min, lower.Y.Max = style.RatioRange.Min, style.RatioRange.Max
	lower.Add(horizontalGrid())

	rpts := hplot.NewS2D(ratio, hplot.WithYErrBars(true))
	rpts.GlyphStyle = style.DataGlyph
	lower.Add(rpts)

	// Render both panels onto one canvas, split vertically.
	img := vgimg.New(style.Width, style.Height)
	dc := draw.New(img)
	split := vg.Length(style.Split) * style.Height
	top := draw.Crop(dc, 0, 0, split, 0)
	bottom := draw.Crop(dc, 0, 0, 0, split-style.Height)

	upper.Draw(top)
	lower.Draw(bottom)

	name := filepath.Join(p.OutDir, OutputName(opts.Hist))
	w, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	p.Log.Info("wrote plot", zap.String("file", name))
	return nil
}

// glyphThumb draws a single marker as a legend thumbnail.
type glyphThumb struct {
	sty draw.GlyphStyle
}

func (g glyphThumb) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(g.sty, c.Center())
}

// horizontalGrid returns a grid with only horizontal lines, as on the
// original pads.
func horizontalGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = nil
	g.Vertical.Width = 0
	return g
}
