// Package cache provides a byte-budgeted LRU cache used for expensive
// derived pixmaps.
//
// Recency is tracked with a logical tick rather than wall-clock time, so
// eviction order is a pure function of the access sequence:
//
//	c := cache.New[key, *image.RGBA](64 << 20)
//	img := c.GetOrInsert(k, func() (*image.RGBA, int64) {
//	    img := render()
//	    return img, int64(len(img.Pix))
//	})
//
// # Ownership
//
// Cache is not safe for concurrent use. It is meant to be owned by a
// single rendering pipeline; hosts sharing one across goroutines must
// serialize access themselves.
package cache
