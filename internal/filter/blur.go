package filter

import (
	"image"
	"sync"
)

// BlurAlpha returns src blurred with a Gaussian of standard deviation
// sigma. The result bounds grow by the kernel radius on every side. A
// sigma that is not positive returns a copy of src.
func BlurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	r := KernelRadius(sigma)
	dst := image.NewAlpha(src.Rect.Inset(-r))
	if r == 0 {
		copyAlpha(dst, src)
		return dst
	}
	if src.Rect.Empty() {
		return dst
	}
	kernel := CachedGaussianKernel(sigma)

	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	temp := getTempBuffer(w * src.Rect.Dy())
	defer putTempBuffer(temp)

	blurRows(src, temp, w, r, kernel)
	blurColumns(temp, dst, w, h, r, kernel)
	return dst
}

// blurRows convolves each row of src into temp, which holds rows of the
// widened width w.
func blurRows(src *image.Alpha, temp []float32, w, r int, kernel []float32) {
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < sh; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+sw]
		out := temp[y*w : (y+1)*w]
		for x, a := range row {
			if a == 0 {
				continue
			}
			v := float32(a)
			// Source column x lands at column x+r of the widened row and
			// spreads over x .. x+2r.
			for k, kv := range kernel {
				out[x+k] += v * kv
			}
		}
	}
}

// blurColumns convolves the columns of temp into dst. temp rows start r
// rows below the top of dst.
func blurColumns(temp []float32, dst *image.Alpha, w, h, r int, kernel []float32) {
	sh := h - 2*r
	acc := make([]float32, h)
	for x := 0; x < w; x++ {
		clear(acc)
		for y := 0; y < sh; y++ {
			v := temp[y*w+x]
			if v == 0 {
				continue
			}
			for k, kv := range kernel {
				acc[y+k] += v * kv
			}
		}
		for y, v := range acc {
			dst.Pix[y*dst.Stride+x] = clampUint8(v)
		}
	}
}

func copyAlpha(dst, src *image.Alpha) {
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		copy(dst.Pix[dst.PixOffset(src.Rect.Min.X, y):], src.Pix[src.PixOffset(src.Rect.Min.X, y):src.PixOffset(src.Rect.Max.X, y)])
	}
}

// floatBuffer wraps a slice so sync.Pool stores a pointer.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// maxPooledBuffer is the largest buffer, in elements, returned to the
// pool.
const maxPooledBuffer = 16 << 20

// getTempBuffer returns a zeroed buffer of n elements.
func getTempBuffer(n int) []float32 {
	b := tempBufferPool.Get().(*floatBuffer)
	if cap(b.data) < n {
		tempBufferPool.Put(b)
		return make([]float32, n)
	}
	buf := b.data[:n]
	clear(buf)
	return buf
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= maxPooledBuffer {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 rounds v to the nearest value in [0, 255].
func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
