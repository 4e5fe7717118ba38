package filter

import (
	"fmt"
	"math"
)

// Kernel is a square grid of supersample offsets and their weights.
type Kernel struct {
	// Size is the number of samples per axis.
	Size int
	// Radius is the largest offset from the pixel center, in pixels.
	Radius float64
	// Offsets holds the Size per-axis offsets in ascending order.
	Offsets []float64
	// Weights holds Size*Size weights, row-major: the weight of the sample
	// at (Offsets[i], Offsets[j]) is Weights[j*Size+i].
	Weights []float64
}

// GaussianKernel generates a 1D Gaussian of size samples spread across
// [-radius, radius], with the given standard deviation. The kernel is
// normalized so all values sum to 1.0.
//
// For size <= 1 or sigma <= 0, returns a single-element kernel [1.0].
func GaussianKernel(size int, radius, sigma float64) []float64 {
	if size <= 1 || sigma <= 0 {
		return []float64{1.0}
	}

	kernel := make([]float64, size)
	offsets := Offsets(size, radius)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels on normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i, x := range offsets {
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = val
		sum += val
	}

	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// Offsets returns size evenly spaced values from -radius to radius.
func Offsets(size int, radius float64) []float64 {
	if size <= 1 {
		return []float64{0}
	}
	out := make([]float64, size)
	step := 2 * radius / float64(size-1)
	for i := range out {
		out[i] = -radius + float64(i)*step
	}
	return out
}

// Supersample builds a size×size kernel spanning [-radius, radius]. The
// Gaussian's standard deviation is half the radius.
func Supersample(size int, radius float64) (Kernel, error) {
	if size < 1 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("filter: kernel size %d must be odd and positive", size)
	}
	if radius <= 0 {
		return Kernel{}, fmt.Errorf("filter: kernel radius %g must be positive", radius)
	}

	g := GaussianKernel(size, radius, radius/2)
	w := make([]float64, size*size)
	sum := 0.0
	for j := range size {
		for i := range size {
			w[j*size+i] = g[i] * g[j]
			sum += w[j*size+i]
		}
	}
	for i := range w {
		w[i] /= sum
	}

	return Kernel{
		Size:    size,
		Radius:  radius,
		Offsets: Offsets(size, radius),
		Weights: w,
	}, nil
}

// Sum returns the total of all weights.
func (k Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.Weights {
		sum += w
	}
	return sum
}
