package canvas2d

import "image"

// dirtyRect accumulates the device-space bounds touched by painting, so
// a host can re-encode only the changed region.
type dirtyRect struct {
	enabled bool
	r       image.Rectangle
}

// add unions r, clipped to bounds, into the tracked region.
func (d *dirtyRect) add(r, bounds image.Rectangle) {
	if !d.enabled {
		return
	}
	r = r.Intersect(bounds)
	if r.Empty() {
		return
	}
	d.r = d.r.Union(r)
}

func (d *dirtyRect) reset() { d.r = image.Rectangle{} }

// DirtyRect returns the union of the pixel rectangles painted since the
// context was created or ResetDirtyRect was last called. ok is false
// when nothing was painted or tracking is disabled.
func (c *Context) DirtyRect() (r image.Rectangle, ok bool) {
	if !c.dirty.enabled || c.dirty.r.Empty() {
		return image.Rectangle{}, false
	}
	return c.dirty.r, true
}

// ResetDirtyRect forgets the tracked region.
func (c *Context) ResetDirtyRect() { c.dirty.reset() }

func (c *Context) markDirty(r image.Rectangle) {
	c.dirty.add(r, c.pixmap.Bounds())
}
