package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		sigma float64
	}{
		{"size 1", 1, 0.5},
		{"size 0", 0, 0.5},
		{"zero sigma", 5, 0},
		{"negative sigma", 5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.size, 1, tt.sigma)
			if len(k) != 1 || k[0] != 1.0 {
				t.Errorf("GaussianKernel(%d, 1, %v) = %v, want [1]", tt.size, tt.sigma, k)
			}
		})
	}
}

func TestGaussianKernelNormalizedAndSymmetric(t *testing.T) {
	for _, size := range []int{3, 5, 7, 9} {
		k := GaussianKernel(size, 1.5, 0.75)

		sum := 0.0
		for _, v := range k {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("GaussianKernel(%d) sum = %v, want 1", size, sum)
		}

		for i := 0; i < size/2; i++ {
			j := size - 1 - i
			if math.Abs(k[i]-k[j]) > 1e-12 {
				t.Errorf("kernel[%d] = %v != kernel[%d] = %v (asymmetric)", i, k[i], j, k[j])
			}
		}
		if k[size/2] <= k[0] {
			t.Errorf("GaussianKernel(%d) center %v not above edge %v", size, k[size/2], k[0])
		}
	}
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		size   int
		radius float64
		want   []float64
	}{
		{1, 1, []float64{0}},
		{3, 1, []float64{-1, 0, 1}},
		{5, 1, []float64{-1, -0.5, 0, 0.5, 1}},
		{7, 1.5, []float64{-1.5, -1, -0.5, 0, 0.5, 1, 1.5}},
	}
	for _, tt := range tests {
		got := Offsets(tt.size, tt.radius)
		if len(got) != len(tt.want) {
			t.Fatalf("Offsets(%d, %v) len = %d, want %d", tt.size, tt.radius, len(got), len(tt.want))
		}
		for i := range got {
			if math.Abs(got[i]-tt.want[i]) > 1e-12 {
				t.Errorf("Offsets(%d, %v)[%d] = %v, want %v", tt.size, tt.radius, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSupersample(t *testing.T) {
	tests := []struct {
		size   int
		radius float64
	}{
		{3, 1.0},
		{5, 1.0},
		{7, 1.5},
	}
	for _, tt := range tests {
		k, err := Supersample(tt.size, tt.radius)
		if err != nil {
			t.Fatalf("Supersample(%d, %v): %v", tt.size, tt.radius, err)
		}
		if len(k.Weights) != tt.size*tt.size {
			t.Errorf("len(Weights) = %d, want %d", len(k.Weights), tt.size*tt.size)
		}
		if math.Abs(k.Sum()-1.0) > 1e-3 {
			t.Errorf("Supersample(%d, %v) sum = %v, want 1", tt.size, tt.radius, k.Sum())
		}
		c := tt.size / 2
		if center, corner := k.Weights[c*tt.size+c], k.Weights[0]; center <= corner {
			t.Errorf("center weight %v not above corner weight %v", center, corner)
		}
	}
}

func TestSupersampleInvalid(t *testing.T) {
	if _, err := Supersample(4, 1); err == nil {
		t.Error("Supersample(4, 1) succeeded, want error for even size")
	}
	if _, err := Supersample(3, 0); err == nil {
		t.Error("Supersample(3, 0) succeeded, want error for zero radius")
	}
}
