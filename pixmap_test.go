package canvas2d

import (
	"image"
	"image/color"
	"testing"
)

// TestPremultiplyRoundTrip keeps opaque and transparent pixels exact and
// partial alpha within one step.
func TestPremultiplyRoundTrip(t *testing.T) {
	tests := []color.NRGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 255, G: 128, B: 0, A: 128},
		{R: 200, G: 100, B: 50, A: 64},
		{},
	}
	for _, in := range tests {
		var pm, out [4]uint8
		premultiply(pm[:], in.R, in.G, in.B, in.A)
		unpremultiply(out[:], pm[0], pm[1], pm[2], pm[3])
		got := color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}
		if got.A != in.A || diff(got.R, in.R) > 2 || diff(got.G, in.G) > 2 || diff(got.B, in.B) > 2 {
			t.Errorf("round trip of %v = %v", in, got)
		}
	}
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// TestFromImage converts the supported source types.
func TestFromImage(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	nrgba.SetNRGBA(6, 6, color.NRGBA{R: 255, A: 128})

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.SetRGBA(1, 1, color.RGBA{R: 128, A: 128})

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})

	tests := []struct {
		name string
		img  image.Image
		want color.RGBA
	}{
		{"nrgba offset bounds", nrgba, color.RGBA{R: 128, A: 128}},
		{"rgba", rgba, color.RGBA{R: 128, A: 128}},
		{"gray", gray, color.RGBA{R: 200, G: 200, B: 200, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromImage(tt.img)
			if p.Width() != 2 || p.Height() != 2 {
				t.Fatalf("size = %dx%d, want 2x2", p.Width(), p.Height())
			}
			if got := p.At(1, 1); got != tt.want {
				t.Errorf("At(1, 1) = %v, want %v", got, tt.want)
			}
			if got := p.At(0, 0).(color.RGBA); got.A != 0 && tt.name != "gray" {
				t.Errorf("At(0, 0) = %v, want transparent", got)
			}
		})
	}
}

// TestPixmapOutOfBounds reads transparent outside the buffer.
func TestPixmapOutOfBounds(t *testing.T) {
	p := NewPixmap(2, 2)
	if got := p.At(-1, 0); got != (color.RGBA{}) {
		t.Errorf("At(-1, 0) = %v, want transparent", got)
	}
	if got := p.pixel(2, 2); got.A != 0 {
		t.Errorf("pixel(2, 2) = %v, want transparent", got)
	}
	if p.ByteSize() != 16 {
		t.Errorf("ByteSize() = %d, want 16", p.ByteSize())
	}
}
