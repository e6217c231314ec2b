// Package text provides font handling and text layout for canvas2d.
//
// The package is split into three layers:
//
//   - ParseFont turns a CSS font shorthand ("bold 14px Arial, sans-serif")
//     into a FontSpec.
//   - FontDB holds parsed font faces and resolves a FontSpec to a face.
//     A FontDB is built from a FontConfig; SharedFontConfig lets several
//     canvases observe config updates through a version counter.
//   - FontSystem shapes text with the go-text HarfBuzz shaper and extracts
//     glyph outlines with golang.org/x/image/font/sfnt.
//
// Alignment, baseline and maxWidth math live in measure.go and are pure
// functions of the measured width and font size.
//
// # Example
//
//	spec, err := text.ParseFont("italic 16px serif")
//	if err != nil {
//	    return err
//	}
//	fs := text.NewFontSystem(text.NewSharedFontConfig(text.DefaultFontConfig()))
//	m, err := fs.Measure("Hello", spec, text.LayoutOptions{})
//
// FontSystem is not safe for concurrent use. Each canvas owns one.
// FontDB and SharedFontConfig are safe to share.
package text
