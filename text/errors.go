package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrFontParse is returned for a malformed CSS font shorthand.
	ErrFontParse = errors.New("text: font parse error")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFace is returned when no face in the database can render text.
	ErrNoFace = errors.New("text: no font face available")
)

// FontParseError describes why a font shorthand was rejected.
// It matches ErrFontParse with errors.Is.
type FontParseError struct {
	Input  string
	Reason string
}

func (e *FontParseError) Error() string {
	return fmt.Sprintf("text: invalid font %q: %s", e.Input, e.Reason)
}

// Unwrap returns ErrFontParse.
func (e *FontParseError) Unwrap() error { return ErrFontParse }
