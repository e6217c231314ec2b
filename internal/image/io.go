// Package image decodes source images and encodes canvas output.
//
// Importing it registers decoders for PNG, JPEG, GIF, BMP, TIFF and WebP
// with the standard image package.
package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrMalformedPNG is returned when encoded PNG bytes lack an IHDR chunk.
	ErrMalformedPNG = errors.New("image: malformed png")
)

// DefaultPPI is the resolution written when none is requested.
const DefaultPPI = 72

// Decode decodes an image from r, detecting the format. It returns the
// format name reported by the registered decoder.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the image stored at path.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG encodes img as PNG with a pHYs chunk declaring ppi pixels per
// inch in both directions. Non-positive ppi is written as zero.
func EncodePNG(w io.Writer, img image.Image, ppi float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	out, err := InsertPHYs(buf.Bytes(), ppi)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("image: write PNG: %w", err)
	}
	return nil
}

// pngHeaderLen is the signature plus the IHDR chunk, which the PNG
// format fixes at 8 + (4 + 4 + 13 + 4) bytes.
const pngHeaderLen = 33

// InsertPHYs returns a copy of the PNG stream data with a pHYs chunk
// placed right after IHDR. The unit is the meter.
func InsertPHYs(data []byte, ppi float64) ([]byte, error) {
	if len(data) < pngHeaderLen || string(data[12:16]) != "IHDR" {
		return nil, ErrMalformedPNG
	}
	ppm := uint32(math.Round(math.Max(ppi, 0) / 0.0254))

	chunk := make([]byte, 0, 21)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: meter
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:pngHeaderLen]...)
	out = append(out, chunk...)
	out = append(out, data[pngHeaderLen:]...)
	return out, nil
}

// PHYs returns the horizontal pixels per meter declared by the pHYs chunk
// of a PNG stream, and whether one was found.
func PHYs(data []byte) (ppm uint32, ok bool) {
	if len(data) < 8 {
		return 0, false
	}
	for i := 8; i+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[i:]))
		typ := string(data[i+4 : i+8])
		if typ == "pHYs" && n == 9 && i+8+n <= len(data) {
			return binary.BigEndian.Uint32(data[i+8:]), true
		}
		if typ == "IDAT" || n < 0 || i+12+n > len(data) {
			return 0, false
		}
		i += 12 + n
	}
	return 0, false
}
