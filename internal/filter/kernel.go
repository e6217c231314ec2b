package filter

import (
	"math"
	"sync"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with standard
// deviation sigma, covering three standard deviations on each side.
// A sigma that is not positive yields the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return []float32{1}
	}
	half := KernelRadius(sigma)
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelRadius returns how many pixels a blur with standard deviation
// sigma spreads coverage on each side.
func KernelRadius(sigma float64) int {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// maxCachedKernels bounds the kernel cache; it is emptied when full.
const maxCachedKernels = 64

var kernels = struct {
	mu sync.RWMutex
	m  map[int][]float32
}{m: make(map[int][]float32)}

// CachedGaussianKernel is GaussianKernel memoized on sigma quantized to
// hundredths. The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return []float32{1}
	}
	key := int(math.Round(sigma * 100))

	kernels.mu.RLock()
	k, ok := kernels.m[key]
	kernels.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)
	kernels.mu.Lock()
	if len(kernels.m) >= maxCachedKernels {
		clear(kernels.m)
	}
	kernels.m[key] = k
	kernels.mu.Unlock()
	return k
}
