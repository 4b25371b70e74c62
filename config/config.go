// Package config provides configuration loading, defaults and validation
// for the histcmp tool. The default configuration reproduces the control
// regions, samples and variables the tool was originally written for; a
// YAML file or HISTCMP_* environment variables override it.
package config

import (
	"fmt"
	"image/color"
)

// Config is the full tool configuration.
type Config struct {
	// Lumi is the integrated luminosity in 1/pb.
	Lumi float64 `mapstructure:"lumi"`

	// OutDir is the directory receiving the PNG files.
	OutDir string `mapstructure:"outdir"`

	Log Log `mapstructure:"log"`

	// Data maps a data stream name (e.g. "met") to its histogram file.
	Data map[string]string `mapstructure:"data"`

	// Backgrounds are stacked in this order; the first entry is drawn on
	// top of the stack and listed first in the legend.
	Backgrounds []Sample `mapstructure:"backgrounds"`

	// Signals are drawn as outlines on top of the stack.
	Signals []Sample `mapstructure:"signals"`

	// Regions are the control regions to plot. Each region selects the
	// data stream recorded for it.
	Regions []Region `mapstructure:"regions"`

	// Plots are the variables plotted for every region.
	Plots []Plot `mapstructure:"plots"`
}

// Log holds the logging settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format"`
}

// Sample describes one background or signal contribution.
type Sample struct {
	Label string `mapstructure:"label"`
	File  string `mapstructure:"file"`
	// Color is a hex RGB string like "#ff0000".
	Color string `mapstructure:"color"`
}

// Region names one control region and the data stream it is compared to.
type Region struct {
	Name string `mapstructure:"name"`
	Data string `mapstructure:"data"`
}

// Plot describes one variable. The histogram path inside the files is
// "<region>/<hist>".
type Plot struct {
	Hist   string  `mapstructure:"hist"`
	XLabel string  `mapstructure:"xlabel"`
	YLabel string  `mapstructure:"ylabel"`
	LogY   bool    `mapstructure:"logy"`
	XMin   float64 `mapstructure:"xmin"`
	XMax   float64 `mapstructure:"xmax"`
	Rebin  int     `mapstructure:"rebin"`
}

// HasXRange reports whether the plot restricts the x-axis. Following the
// original convention, the range only applies when xmin < xmax.
func (p Plot) HasXRange() bool {
	return p.XMin < p.XMax
}

// RGBA parses the sample's hex color string.
func (s Sample) RGBA() (color.NRGBA, error) {
	return ParseColor(s.Color)
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("config: invalid color %q", s)
	}
	_, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return c, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	c.A = 0xff
	return c, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Lumi <= 0 {
		return fmt.Errorf("config: lumi must be positive, got %v", c.Lumi)
	}
	if len(c.Data) == 0 {
		return fmt.Errorf("config: no data streams defined")
	}
	if len(c.Backgrounds) == 0 {
		return fmt.Errorf("config: no backgrounds defined")
	}
	if len(c.Regions) == 0 {
		return fmt.Errorf("config: no regions defined")
	}
	if len(c.Plots) == 0 {
		return fmt.Errorf("config: no plots defined")
	}
	for _, r := range c.Regions {
		if _, ok := c.Data[r.Data]; !ok {
			return fmt.Errorf("config: region %q references unknown data stream %q", r.Name, r.Data)
		}
	}
	for _, s := range append(append([]Sample{}, c.Backgrounds...), c.Signals...) {
		if s.File == "" {
			return fmt.Errorf("config: sample %q has no file", s.Label)
		}
		if _, err := s.RGBA(); err != nil {
			return fmt.Errorf("config: sample %q: %w", s.Label, err)
		}
	}
	for _, p := range c.Plots {
		if p.Hist == "" {
			return fmt.Errorf("config: plot with empty hist name")
		}
		if p.Rebin < 0 {
			return fmt.Errorf("config: plot %q has negative rebin", p.Hist)
		}
	}
	return nil
}
