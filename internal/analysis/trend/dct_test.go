package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/seenimoa/moodgraph/pkg/models"
)

func TestSmoothFixedLength(t *testing.T) {
	for _, n := range []int{1, 2, 5, 100, 600} {
		series := make([]float64, n)
		for i := range series {
			series[i] = math.Sin(float64(i) / 7)
		}
		curve, err := Smooth(series, 5, 100)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(curve) != 100 {
			t.Errorf("n=%d: curve length %d, want 100", n, len(curve))
		}
	}
}

func TestSmoothRange(t *testing.T) {
	series := []float64{3, -8, 12, 0.5, -2, 7, 7, -7, 1, 4}
	curve, err := Smooth(series, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range curve {
		if v < -1 || v > 1 {
			t.Fatalf("curve[%d] = %f outside [-1, 1]", i, v)
		}
	}
	// The rescale is to the full range, so both ends are attained.
	lo, hi := curve[0], curve[0]
	for _, v := range curve {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.Abs(lo+1) > 1e-9 || math.Abs(hi-1) > 1e-9 {
		t.Errorf("range [%.3f, %.3f], want [-1, 1]", lo, hi)
	}
}

func TestSmoothEmptyInput(t *testing.T) {
	_, err := Smooth(nil, 5, 100)
	var eie *models.EmptyInputError
	if !errors.As(err, &eie) {
		t.Fatalf("expected EmptyInputError, got %v", err)
	}
}

func TestSmoothBadParameters(t *testing.T) {
	if _, err := Smooth([]float64{1}, 0, 100); err == nil {
		t.Error("expected error for zero low-pass size")
	}
	if _, err := Smooth([]float64{1}, 5, 3); err == nil {
		t.Error("expected error for points < low-pass size")
	}
}

func TestSmoothFlatInputIsZero(t *testing.T) {
	series := []float64{2, 2, 2, 2, 2, 2}
	curve, err := Smooth(series, 5, 50)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range curve {
		if v != 0 {
			t.Fatalf("flat input: curve[%d] = %f, want 0", i, v)
		}
	}
}

func TestSmoothSingleValue(t *testing.T) {
	curve, err := Smooth([]float64{0.7}, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(curve) != 100 {
		t.Errorf("length %d, want 100", len(curve))
	}
	for i, v := range curve {
		if v < -1 || v > 1 {
			t.Fatalf("curve[%d] = %f outside [-1, 1]", i, v)
		}
	}
}

// A rising input must produce a curve whose last sample sits above its
// first: low-pass smoothing keeps the broad direction of the series.
func TestSmoothPreservesTrendDirection(t *testing.T) {
	rising := make([]float64, 200)
	for i := range rising {
		rising[i] = float64(i)/40 + 0.3*math.Sin(float64(i))
	}
	curve, err := Smooth(rising, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if curve[len(curve)-1] <= curve[0] {
		t.Errorf("rising series smoothed to non-rising curve: first %.3f, last %.3f",
			curve[0], curve[len(curve)-1])
	}
}

func TestSmoothLowPassActuallySmooths(t *testing.T) {
	// High-frequency alternation flattens under a small low-pass size:
	// the retained coefficients cannot represent the oscillation, so
	// successive output samples stay close.
	noisy := make([]float64, 300)
	for i := range noisy {
		if i%2 == 0 {
			noisy[i] = 1
		} else {
			noisy[i] = -1
		}
	}
	curve, err := Smooth(noisy, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	maxStep := 0.0
	for i := 1; i < len(curve); i++ {
		maxStep = math.Max(maxStep, math.Abs(curve[i]-curve[i-1]))
	}
	if maxStep > 0.5 {
		t.Errorf("smoothed curve still jumps by %.3f between samples", maxStep)
	}
}
