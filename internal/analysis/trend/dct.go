// Package trend implements the discrete-cosine low-pass smoother that
// turns a noisy per-comment series into a fixed-length trend curve.
package trend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/seenimoa/moodgraph/pkg/models"
)

// SmoothFunc is the injectable smoothing capability.
type SmoothFunc func(series []float64, lowPass, points int) (models.TrendCurve, error)

// Smooth applies a DCT-II to the input, keeps only the lowest lowPass
// coefficients, reconstructs via a DCT-III over a points-length
// coefficient vector, and rescales the result into [-1, 1]. The output
// length is always points, regardless of the input length: this is a
// resampling, not a truncation. Values are not normalized before the
// transform; only the final curve's range is rescaled.
func Smooth(series []float64, lowPass, points int) (models.TrendCurve, error) {
	if len(series) == 0 {
		return nil, &models.EmptyInputError{Stage: "smoother"}
	}
	if lowPass < 1 {
		return nil, fmt.Errorf("low-pass size must be >= 1, got %d", lowPass)
	}
	if points < lowPass {
		return nil, fmt.Errorf("curve length %d must be >= low-pass size %d", points, lowPass)
	}

	coeffs := forwardDCT(series, lowPass)
	curve := inverseDCT(coeffs, points)
	scaleRange(curve)
	return models.TrendCurve(curve), nil
}

// forwardDCT computes the first keep coefficients of the DCT-II of x.
func forwardDCT(x []float64, keep int) []float64 {
	n := len(x)
	if keep > n {
		keep = n
	}
	coeffs := make([]float64, keep)
	for k := 0; k < keep; k++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += x[i] * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
		coeffs[k] = sum
	}
	return coeffs
}

// inverseDCT evaluates the DCT-III of the coefficient vector zero-padded
// to length points, yielding points output samples. Absolute scale is
// irrelevant since the curve range is rescaled afterwards.
func inverseDCT(coeffs []float64, points int) []float64 {
	out := make([]float64, points)
	for j := 0; j < points; j++ {
		sum := coeffs[0] / 2
		for k := 1; k < len(coeffs); k++ {
			sum += coeffs[k] * math.Cos(math.Pi/float64(points)*(float64(j)+0.5)*float64(k))
		}
		out[j] = sum
	}
	return out
}

// scaleRange linearly maps the curve onto [-1, 1] in place. A flat
// curve maps to all zeros.
func scaleRange(curve []float64) {
	lo := floats.Min(curve)
	hi := floats.Max(curve)
	span := hi - lo
	if span < 1e-12 {
		for i := range curve {
			curve[i] = 0
		}
		return
	}
	floats.AddConst(-lo, curve)
	floats.Scale(2/span, curve)
	floats.AddConst(-1, curve)
}
