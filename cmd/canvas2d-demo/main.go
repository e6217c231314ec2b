// Command canvas2d-demo renders a bar chart described by a TOML file to
// PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/text"
	"github.com/gogpu/canvas2d/text/fontdir"
)

func main() {
	var (
		config  = flag.String("config", "", "chart TOML file (optional)")
		output  = flag.String("output", "chart.png", "output file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canvas2d.SetLogger(logger)

	if err := run(*config, *output, logger); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, output string, logger *slog.Logger) error {
	chart, err := loadChart(configPath)
	if err != nil {
		return err
	}

	var opts []canvas2d.ContextOption
	if chart.FontConfig != "" {
		cfg, err := fontdir.LoadConfig(chart.FontConfig)
		if err != nil {
			return err
		}
		opts = append(opts, canvas2d.WithSharedFontConfig(text.NewSharedFontConfig(fontdir.Load(cfg))))
	}

	ctx, err := canvas2d.NewContext(chart.Width, chart.Height, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()

	if err := render(ctx, chart); err != nil {
		return err
	}

	data, err := ctx.PNGWithPPI(chart.PPI)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil { //nolint:gosec // output images are world-readable
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("chart saved", "path", output, "width", chart.Width, "height", chart.Height, "bytes", len(data))
	return nil
}

func render(ctx *canvas2d.Context, chart Chart) error {
	w, h := float64(chart.Width), float64(chart.Height)

	bg := canvas2d.NewLinearGradient(0, 0, 0, h)
	if err := bg.AddColorStop(0, chart.Background[0]); err != nil {
		return err
	}
	if err := bg.AddColorStop(1, chart.Background[1]); err != nil {
		return err
	}
	ctx.SetFillGradient(bg)
	if err := ctx.FillRect(0, 0, w, h); err != nil {
		return err
	}

	if err := drawTitle(ctx, chart, w); err != nil {
		return err
	}

	left, top, right, bottom := 80.0, 90.0, w-40, h-70
	drawGrid(ctx, left, top, right, bottom)
	if err := drawBars(ctx, chart.Bars, left, top, right, bottom); err != nil {
		return err
	}
	return drawBadge(ctx, w-70, 50)
}

func drawTitle(ctx *canvas2d.Context, chart Chart, w float64) error {
	ctx.Save()
	defer ctx.Restore()

	if err := ctx.SetFont(chart.Font); err != nil {
		return err
	}
	_ = ctx.SetFillStyle("white")
	ctx.SetTextAlign(text.AlignCenter)
	ctx.SetTextBaseline(text.BaselineMiddle)
	return ctx.FillTextMaxWidth(chart.Title, w/2, 45, w-160)
}

func drawGrid(ctx *canvas2d.Context, left, top, right, bottom float64) {
	ctx.Save()
	defer ctx.Restore()

	_ = ctx.SetStrokeStyle("rgba(255, 255, 255, 0.35)")
	ctx.SetLineWidth(1)
	ctx.SetLineDash([]float64{6, 4})
	for i := 0; i <= 4; i++ {
		y := bottom - (bottom-top)*float64(i)/4
		ctx.BeginPath()
		ctx.MoveTo(left, y)
		ctx.LineTo(right, y)
		_ = ctx.Stroke()
	}

	ctx.SetLineDash(nil)
	_ = ctx.SetStrokeStyle("white")
	ctx.SetLineWidth(2)
	ctx.BeginPath()
	ctx.MoveTo(left, top)
	ctx.LineTo(left, bottom)
	ctx.LineTo(right, bottom)
	_ = ctx.Stroke()
}

func drawBars(ctx *canvas2d.Context, bars []Bar, left, top, right, bottom float64) error {
	if len(bars) == 0 {
		return nil
	}
	peak := 0.0
	for _, b := range bars {
		peak = math.Max(peak, b.Value)
	}
	if peak <= 0 {
		peak = 1
	}

	ctx.Save()
	defer ctx.Restore()
	_ = ctx.SetFont("14px sans-serif")
	ctx.SetTextAlign(text.AlignCenter)
	ctx.SetTextBaseline(text.BaselineTop)

	slot := (right - left) / float64(len(bars))
	for i, b := range bars {
		x := left + slot*float64(i) + slot*0.2
		bw := slot * 0.6
		bh := (bottom - top) * math.Max(b.Value, 0) / peak

		if err := ctx.SetFillStyle(b.Color); err != nil {
			slog.Warn("bar color ignored", "label", b.Label, "err", err)
			_ = ctx.SetFillStyle("gray")
		}
		ctx.BeginPath()
		if err := ctx.RoundRect(x, bottom-bh, bw, bh, 6, 6, 0, 0); err != nil {
			return err
		}
		if err := ctx.Fill(canvas2d.FillRuleNonZero); err != nil {
			return err
		}

		_ = ctx.SetFillStyle("white")
		if err := ctx.FillTextMaxWidth(b.Label, x+bw/2, bottom+8, slot); err != nil {
			return err
		}
	}
	return nil
}

// drawBadge draws a rotated star filled with a striped pattern.
func drawBadge(ctx *canvas2d.Context, cx, cy float64) error {
	tile, err := canvas2d.NewContext(8, 8)
	if err != nil {
		return err
	}
	defer func() { _ = tile.Close() }()
	_ = tile.SetFillStyle("#ffec27")
	_ = tile.FillRect(0, 0, 8, 8)
	_ = tile.SetFillStyle("#ffa300")
	_ = tile.FillRect(0, 0, 4, 8)

	stripes, err := ctx.CreatePatternFromCanvas(tile, "repeat")
	if err != nil {
		return err
	}

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(cx, cy)
	ctx.Rotate(math.Pi / 10)

	star := canvas2d.NewPath2D()
	const points = 5
	for i := 0; i < points*2; i++ {
		r := 30.0
		if i%2 == 1 {
			r = 14
		}
		a := float64(i)*math.Pi/points - math.Pi/2
		star.LineTo(r*math.Cos(a), r*math.Sin(a))
	}
	star.ClosePath()

	ctx.SetFillPattern(stripes)
	if err := ctx.FillPath2D(star, canvas2d.FillRuleNonZero); err != nil {
		return err
	}
	_ = ctx.SetStrokeStyle("white")
	ctx.SetLineWidth(2)
	ctx.SetLineJoin(canvas2d.LineJoinRound)
	return ctx.StrokePath2D(star)
}
