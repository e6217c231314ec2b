package canvas2d

import (
	"fmt"
	"io"

	"github.com/gogpu/canvas2d/text"
)

// MaxDimension is the largest canvas width or height.
const MaxDimension = 32767

// Context is a Canvas 2D rendering context: a premultiplied RGBA pixel
// buffer, the current DrawingState with its save stack, and the current
// path.
//
// A Context is not safe for concurrent use. Render different canvases
// on different goroutines instead.
type Context struct {
	width  int
	height int
	pixmap *Pixmap

	state DrawingState
	stack []DrawingState
	path  pathBuilder

	fonts     *text.FontSystem
	shared    *text.SharedFontConfig
	ownFonts  bool
	patterns  *PatternCache
	painted   map[uint64]struct{} // ids of patterns with backings in patterns
	smoothing ImageSmoothingQuality

	clipCache clipMaskCache
	dirty     dirtyRect

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a transparent canvas. Both dimensions must be in
// [1, MaxDimension]; otherwise ErrInvalidDimensions is returned.
//
//	ctx, err := canvas2d.NewContext(400, 300)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	patterns := options.patterns
	if patterns == nil {
		patterns = NewPatternCache(DefaultPatternCacheBudget)
	}

	c := &Context{
		width:     width,
		height:    height,
		pixmap:    NewPixmap(width, height),
		fonts:     options.fonts,
		shared:    options.shared,
		ownFonts:  options.fonts == nil,
		patterns:  patterns,
		painted:   make(map[uint64]struct{}),
		smoothing: options.quality,
		dirty:     dirtyRect{enabled: options.dirty},
	}
	c.state = c.initialState()
	return c, nil
}

func (c *Context) initialState() DrawingState {
	s := DefaultDrawingState()
	s.ImageSmoothingQuality = c.smoothing
	return s
}

// Width returns the canvas width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Context) Height() int { return c.height }

// State returns a copy of the current drawing state.
func (c *Context) State() DrawingState { return c.state.Clone() }

// StackDepth returns the number of saved states.
func (c *Context) StackDepth() int { return len(c.stack) }

// Save pushes a copy of the current drawing state.
func (c *Context) Save() {
	if c.closed {
		return
	}
	c.stack = append(c.stack, c.state.Clone())
}

// Restore pops the most recently saved state. It does nothing when the
// stack is empty.
func (c *Context) Restore() {
	n := len(c.stack)
	if c.closed || n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack[n-1] = DrawingState{}
	c.stack = c.stack[:n-1]
}

// Reset returns the context to its initial state: default drawing state,
// empty stack and path, transparent pixels, no dirty region and no cached
// pattern backings from this canvas. The dimensions are kept.
func (c *Context) Reset() {
	if c.closed {
		return
	}
	c.state = c.initialState()
	c.stack = nil
	c.path.reset()
	c.pixmap.Clear()
	c.clipCache = clipMaskCache{}
	c.dirty.reset()
	for id := range c.painted {
		c.patterns.dropPattern(id)
	}
	clear(c.painted)
}

// Close releases the pixel buffer and state. Further drawing does
// nothing and readouts fail with ErrContextClosed. Close is idempotent.
// Implements io.Closer.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.pixmap = NewPixmap(0, 0)
	c.stack = nil
	c.path.reset()
	c.clipCache = clipMaskCache{}
	for id := range c.painted {
		c.patterns.dropPattern(id)
	}
	c.painted = nil
	if c.ownFonts {
		c.fonts = nil
	}
	return nil
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool { return c.closed }

// Pixmap returns the backing pixel buffer. Drawing mutates it in place.
func (c *Context) Pixmap() *Pixmap { return c.pixmap }
