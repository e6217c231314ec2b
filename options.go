package canvas2d

import "github.com/gogpu/canvas2d/text"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Defaults: private font system and pattern cache
//	ctx, err := canvas2d.NewContext(800, 600)
//
//	// Share fonts and cached pattern backings between canvases
//	shared := text.NewSharedFontConfig(cfg)
//	patterns := canvas2d.NewPatternCache(canvas2d.DefaultPatternCacheBudget)
//	ctx, err := canvas2d.NewContext(800, 600,
//	    canvas2d.WithSharedFontConfig(shared),
//	    canvas2d.WithPatternCache(patterns))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	fonts    *text.FontSystem
	shared   *text.SharedFontConfig
	patterns *PatternCache
	quality  ImageSmoothingQuality
	dirty    bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		quality: ImageSmoothingMedium,
		dirty:   true,
	}
}

// WithFontSystem makes the context shape text with fs. The font system
// is not safe for concurrent use; share it only between contexts driven
// from one goroutine.
func WithFontSystem(fs *text.FontSystem) ContextOption {
	return func(o *contextOptions) {
		o.fonts = fs
	}
}

// WithSharedFontConfig builds the context's font system from shared.
// Updates to shared are picked up before the next text operation.
// Ignored when WithFontSystem is also given.
func WithSharedFontConfig(shared *text.SharedFontConfig) ContextOption {
	return func(o *contextOptions) {
		o.shared = shared
	}
}

// WithPatternCache makes the context store pattern backings in pc
// instead of a private cache.
func WithPatternCache(pc *PatternCache) ContextOption {
	return func(o *contextOptions) {
		o.patterns = pc
	}
}

// WithImageSmoothingQuality sets the initial imageSmoothingQuality.
// Reset restores this value, not the Canvas default.
func WithImageSmoothingQuality(q ImageSmoothingQuality) ContextOption {
	return func(o *contextOptions) {
		if q >= ImageSmoothingLow && q <= ImageSmoothingHigh {
			o.quality = q
		}
	}
}

// WithDirtyTracking enables or disables dirty rectangle tracking.
// Tracking is on by default.
func WithDirtyTracking(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.dirty = enabled
	}
}
