package tracks

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultSigma    = 10.0
	DefaultTruncate = 4.0
)

// GaussianSmoother applies 1-D Gaussian filter to each geometry channel independently.
// Samples outside of the tracklet are mirrored about its edges (d c b a | a b c d | d c b a).
type GaussianSmoother struct {
	// Standard deviation of the kernel in frames
	Sigma float64
	// Kernel radius in sigmas. Radius is int(Truncate*Sigma + 0.5)
	Truncate float64
}

// NewGaussianSmoother creates smoother with sigma 10 and truncate 4 (kernel radius 40)
func NewGaussianSmoother() *GaussianSmoother {
	return &GaussianSmoother{
		Sigma:    DefaultSigma,
		Truncate: DefaultTruncate,
	}
}

// Radius returns kernel half-width in samples
func (smoother *GaussianSmoother) Radius() int {
	return int(smoother.Truncate*smoother.Sigma + 0.5)
}

// Kernel returns normalized kernel weights of length 2*Radius()+1
func (smoother *GaussianSmoother) Kernel() []float64 {
	radius := smoother.Radius()
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-0.5 * float64(i*i) / (smoother.Sigma * smoother.Sigma))
		weights[i+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// SmoothTracklet filters every column of rows in place
func (smoother *GaussianSmoother) SmoothTracklet(rows *mat.Dense) error {
	if smoother.Sigma <= 0 || smoother.Truncate <= 0 {
		return errors.Wrapf(ErrInvalidSigma, "sigma=%g truncate=%g", smoother.Sigma, smoother.Truncate)
	}
	n, cols := rows.Dims()
	if n < 2 {
		return nil
	}
	weights := smoother.Kernel()
	column := make([]float64, n)
	filtered := make([]float64, n)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, rows)
		convolveReflect(column, weights, filtered)
		rows.SetCol(j, filtered)
	}
	return nil
}

// convolveReflect correlates signal with symmetric weights writing result to dst
func convolveReflect(signal, weights, dst []float64) {
	n := len(signal)
	radius := len(weights) / 2
	for i := 0; i < n; i++ {
		acc := 0.0
		for k := -radius; k <= radius; k++ {
			acc += weights[k+radius] * signal[reflectIndex(i+k, n)]
		}
		dst[i] = acc
	}
}
