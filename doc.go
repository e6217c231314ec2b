// Package canvas2d implements the HTML Canvas 2D drawing model without a
// browser.
//
// # Overview
//
// A Context owns a premultiplied RGBA pixel buffer, a stack of
// DrawingState snapshots and the current path. Operations mutate that
// state or rasterize through it, following the Web Canvas rules for
// transform order, clip persistence, gradient and pattern coordinate
// spaces, image smoothing and text placement.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas2d"
//
//	ctx, err := canvas2d.NewContext(200, 100)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	_ = ctx.SetFillStyle("steelblue")
//	_ = ctx.FillRect(10, 10, 80, 80)
//
//	_ = ctx.SetFont("bold 16px sans-serif")
//	_ = ctx.FillText("hello", 100, 50)
//
//	data, err := ctx.PNG()
//
// # Coordinate System
//
// The origin is the top-left corner, x grows right and y grows down.
// Angles are in radians and grow clockwise on screen. Transforms compose
// on the right: after Translate then Scale, points are scaled first.
//
// Points of the current path are mapped through the transform current
// when they are added. Path2D objects stay in user space and are mapped
// when drawn.
//
// # Resources
//
// Gradients and patterns are plain values shared by pointer; a style slot
// keeps one alive for as long as it is set. Synthesized pattern backings
// live in a PatternCache with a byte budget and least-recently-used
// eviction.
//
// Hosts that address resources by number use a Registry, which maps
// numeric handles to contexts, gradients, patterns and paths and reports
// unknown handles with ErrResourceNotFound.
//
// # Text
//
// Fonts are resolved by the text package from a FontConfig, optionally
// shared between contexts through a SharedFontConfig whose version lets
// every context notice changes. The text/fontdir package loads font
// directories and can watch them.
//
// # Concurrency
//
// Contexts, registries and pattern caches are not synchronized. Use one
// per goroutine, or serialize access.
//
// # Logging
//
// The package logs through log/slog and is silent by default. Install a
// logger with SetLogger.
package canvas2d
