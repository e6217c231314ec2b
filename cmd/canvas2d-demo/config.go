package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Bar is one bar of the chart.
type Bar struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
	Color string  `toml:"color"`
}

// Chart describes the image the demo renders.
type Chart struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	PPI        float64   `toml:"ppi"`
	Title      string    `toml:"title"`
	Font       string    `toml:"font"`
	Background [2]string `toml:"background"`
	Bars       []Bar     `toml:"bars"`

	// FontConfig is an optional text/fontdir config file.
	FontConfig string `toml:"font_config"`
}

func defaultChart() Chart {
	return Chart{
		Width:      800,
		Height:     600,
		PPI:        96,
		Title:      "Quarterly revenue",
		Font:       "bold 28px sans-serif",
		Background: [2]string{"#1d2b53", "#7e2553"},
		Bars: []Bar{
			{Label: "Q1", Value: 42, Color: "#29adff"},
			{Label: "Q2", Value: 58, Color: "#00e436"},
			{Label: "Q3", Value: 35, Color: "#ffa300"},
			{Label: "Q4", Value: 71, Color: "#ff004d"},
		},
	}
}

// loadChart reads a chart file over the defaults. An empty path returns
// the defaults.
func loadChart(path string) (Chart, error) {
	c := defaultChart()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return c, fmt.Errorf("read chart: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse chart %s: %w", path, err)
	}
	if c.FontConfig != "" && !filepath.IsAbs(c.FontConfig) {
		c.FontConfig = filepath.Join(filepath.Dir(path), c.FontConfig)
	}
	return c, nil
}
