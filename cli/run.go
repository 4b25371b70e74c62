package cli

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hepplot/histcmp"
	"github.com/hepplot/histcmp/config"
	"github.com/hepplot/histcmp/hist"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var (
		workers int
		regions []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render all configured comparison plots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runPlots(cmd.Context(), cfg, log, workers, regions)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "n", 4, "number of plots rendered in parallel")
	cmd.Flags().StringSliceVarP(&regions, "regions", "r", nil, "restrict to these control regions")

	return cmd
}

// runPlots renders every (region, plot) combination through a bounded
// worker pool. A failed plot is logged and counted but does not stop the
// remaining plots.
func runPlots(ctx context.Context, cfg *config.Config, log *zap.Logger, workers int, only []string) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	bgs, err := sources(cfg.Backgrounds)
	if err != nil {
		return err
	}
	sigs, err := sources(cfg.Signals)
	if err != nil {
		return err
	}

	selected := make(map[string]bool, len(only))
	for _, r := range only {
		selected[r] = true
	}

	var failed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, region := range cfg.Regions {
		if len(selected) > 0 && !selected[region.Name] {
			continue
		}
		p := histcmp.NewPlotter(hist.Source{Label: "Data", File: cfg.Data[region.Data]}, bgs, sigs)
		p.Lumi = cfg.Lumi
		p.OutDir = cfg.OutDir
		p.Log = log.With(zap.String("region", region.Name))

		for _, pl := range cfg.Plots {
			opts := plotOptions(region, pl)
			g.Go(func() error {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if err := p.Plot(opts); err != nil {
					p.Log.Error("plot failed", zap.String("hist", opts.Hist), zap.Error(err))
					failed.Add(1)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d plots failed", n)
	}
	return nil
}

func sources(samples []config.Sample) ([]hist.Source, error) {
	srcs := make([]hist.Source, len(samples))
	for i, s := range samples {
		col, err := s.RGBA()
		if err != nil {
			return nil, err
		}
		srcs[i] = hist.Source{Label: s.Label, File: s.File, Color: col}
	}
	return srcs, nil
}

func plotOptions(region config.Region, pl config.Plot) histcmp.PlotOptions {
	opts := histcmp.PlotOptions{
		Hist:   region.Name + "/" + pl.Hist,
		XLabel: pl.XLabel,
		YLabel: pl.YLabel,
		LogY:   pl.LogY,
		XRange: histcmp.UnsetInterval(),
		Rebin:  pl.Rebin,
	}
	if pl.HasXRange() {
		opts.XRange = histcmp.Interval{Min: pl.XMin, Max: pl.XMax}
	}
	return opts
}
