package pattern

import (
	"fmt"
	"strings"

	"github.com/gogpu/pattern/internal/filter"
)

// Quality selects a renderer. QualityFast samples each pixel once; the
// other levels supersample with a kernel.
type Quality int

const (
	QualityFast      Quality = iota // one sample at the pixel center
	QualitySimple                   // 3×3 kernel, radius 1.0
	QualityGood                     // 5×5 kernel, radius 1.0
	QualityBeautiful                // 7×7 kernel, radius 1.5
	QualityInsane                   // declared, no kernel table
)

var qualityNames = map[Quality]string{
	QualityFast:      "fast",
	QualitySimple:    "simple",
	QualityGood:      "good",
	QualityBeautiful: "beautiful",
	QualityInsane:    "insane",
}

// String returns the lower-case quality name.
func (q Quality) String() string {
	if s, ok := qualityNames[q]; ok {
		return s
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// ParseQuality parses a quality name as returned by String.
func ParseQuality(s string) (Quality, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for q, name := range qualityNames {
		if name == s {
			return q, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown quality %q", ErrUnsupportedConfiguration, s)
}

// kernelSpec is an entry of the kernel table.
type kernelSpec struct {
	size   int
	radius float64
}

var kernelSpecs = map[Quality]kernelSpec{
	QualitySimple:    {size: 3, radius: 1.0},
	QualityGood:      {size: 5, radius: 1.0},
	QualityBeautiful: {size: 7, radius: 1.5},
}

// kernels is built once at init from kernelSpecs.
var kernels = make(map[Quality]filter.Kernel, len(kernelSpecs))

func init() {
	for q, s := range kernelSpecs {
		k, err := filter.Supersample(s.size, s.radius)
		if err != nil {
			panic(fmt.Sprintf("pattern: kernel table for %v: %v", q, err))
		}
		kernels[q] = k
	}
}

// lookupKernel returns the kernel for q, or ErrUnsupportedConfiguration
// when none is registered.
func lookupKernel(q Quality) (filter.Kernel, error) {
	k, ok := kernels[q]
	if !ok {
		return filter.Kernel{}, fmt.Errorf("%w: no anti-aliasing kernel for quality %v", ErrUnsupportedConfiguration, q)
	}
	return k, nil
}

// KernelWeights returns a copy of the weights used for q, row-major.
func KernelWeights(q Quality) ([]float64, error) {
	k, err := lookupKernel(q)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), k.Weights...), nil
}
