package main

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadChartOverridesDefaults keeps defaults for keys the file omits.
func TestLoadChartOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	src := `
width = 320
title = "Sales"
font_config = "fonts.toml"

[[bars]]
label = "A"
value = 3
color = "red"
`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := loadChart(path)
	if err != nil {
		t.Fatalf("loadChart() error = %v", err)
	}
	if c.Width != 320 || c.Height != 600 {
		t.Errorf("size = %dx%d, want 320x600", c.Width, c.Height)
	}
	if c.Title != "Sales" || len(c.Bars) != 1 {
		t.Errorf("title = %q, bars = %d; want Sales, 1", c.Title, len(c.Bars))
	}
	if want := filepath.Join(filepath.Dir(path), "fonts.toml"); c.FontConfig != want {
		t.Errorf("FontConfig = %q, want %q", c.FontConfig, want)
	}
}

// TestRunWritesPNG renders the default chart.
func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run("", out, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("bounds = %v, want 800x600", b)
	}
}
