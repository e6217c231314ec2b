package canvas2d

// Style is what a fill or stroke paints with.
// This is a sealed interface: only StyleSolid, StyleGradient and
// StylePattern implement it, and exactly one is active per slot.
//
// Example:
//
//	ctx.SetFillStyleValue(canvas2d.StyleSolid{Color: canvas2d.White})
//
//	g := canvas2d.NewLinearGradient(0, 0, 100, 0)
//	_ = g.AddColorStop(0, "red")
//	_ = g.AddColorStop(1, "blue")
//	ctx.SetFillGradient(g)
type Style interface {
	// String reports the style the way a canvas reports fillStyle.
	String() string
	// styleMarker seals the interface.
	styleMarker()
}

// StyleSolid paints a single color.
type StyleSolid struct {
	Color RGBA
}

// StyleGradient paints a gradient evaluated in the user space current at
// the time of the draw call.
type StyleGradient struct {
	Gradient *Gradient
}

// StylePattern paints a repeated image.
type StylePattern struct {
	Pattern *Pattern
}

func (StyleSolid) styleMarker()    {}
func (StyleGradient) styleMarker() {}
func (StylePattern) styleMarker()  {}

// String reports the style the way a canvas reports fillStyle: the
// serialized color for solids and a type name otherwise.
func (s StyleSolid) String() string { return s.Color.String() }

// String returns "CanvasGradient".
func (StyleGradient) String() string { return "CanvasGradient" }

// String returns "CanvasPattern".
func (StylePattern) String() string { return "CanvasPattern" }

// defaultStyle is the initial fill and stroke style.
func defaultStyle() Style {
	return StyleSolid{Color: Black}
}

// validStyle reports whether s can be painted with.
func validStyle(s Style) bool {
	switch v := s.(type) {
	case StyleSolid:
		return true
	case StyleGradient:
		return v.Gradient != nil
	case StylePattern:
		return v.Pattern != nil
	}
	return false
}
