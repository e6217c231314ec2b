package canvas2d

import (
	"errors"
	"fmt"
)

// Sentinel errors. Detailed failures wrap one of these, so callers can
// classify them with errors.Is.
var (
	// ErrInvalidDimensions is returned for a zero or over-limit canvas size.
	ErrInvalidDimensions = errors.New("canvas2d: invalid dimensions")

	// ErrFontParse is returned for a malformed CSS font string.
	ErrFontParse = errors.New("canvas2d: font parse error")

	// ErrColorParse is returned for a malformed CSS color string.
	ErrColorParse = errors.New("canvas2d: color parse error")

	// ErrPNGEncoding is returned when PNG encoding fails.
	ErrPNGEncoding = errors.New("canvas2d: png encoding error")

	// ErrInvalidGradientStop is returned for a color stop offset outside [0, 1].
	ErrInvalidGradientStop = errors.New("canvas2d: invalid gradient stop")

	// ErrPath is returned for invalid path geometry such as a negative radius.
	ErrPath = errors.New("canvas2d: path error")

	// ErrText is returned when text cannot be shaped or rendered.
	ErrText = errors.New("canvas2d: text error")

	// ErrResourceNotFound is returned for an unknown canvas, gradient,
	// pattern or path handle.
	ErrResourceNotFound = errors.New("canvas2d: resource not found")

	// ErrInvalidImageData is returned when pixel data does not match the
	// declared image size.
	ErrInvalidImageData = errors.New("canvas2d: invalid image data")

	// ErrInvalidRepetition is returned for an unknown pattern repetition.
	ErrInvalidRepetition = errors.New("canvas2d: invalid pattern repetition")

	// ErrContextClosed is returned by operations on a closed Context.
	ErrContextClosed = errors.New("canvas2d: context closed")
)

// ResourceKind names the kind of a handle-addressed resource.
type ResourceKind string

// Resource kinds.
const (
	ResourceCanvas   ResourceKind = "canvas"
	ResourceGradient ResourceKind = "gradient"
	ResourcePattern  ResourceKind = "pattern"
	ResourcePath     ResourceKind = "path"
)

// ResourceError reports a lookup of a handle that does not exist.
// It matches ErrResourceNotFound with errors.Is.
type ResourceError struct {
	Kind ResourceKind
	ID   uint32
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("canvas2d: %s %d not found", e.Kind, e.ID)
}

// Unwrap returns ErrResourceNotFound.
func (e *ResourceError) Unwrap() error { return ErrResourceNotFound }

func notFound(kind ResourceKind, id uint32) error {
	return &ResourceError{Kind: kind, ID: id}
}
