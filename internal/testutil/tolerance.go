// Package testutil holds assertions shared by the package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

var coefficientNames = [5]string{"b0", "b1", "b2", "a1", "a2"}

// RequireCoefficientsNear fails t if any coefficient of got differs from
// the matching coefficient of want by more than eps (absolute tolerance).
func RequireCoefficientsNear(t *testing.T, got, want biquad.Coefficients, eps float64) {
	t.Helper()
	g, w := got.Array(), want.Array()
	for i := range g {
		diff := math.Abs(g[i] - w[i])
		if !(diff <= eps) {
			t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", coefficientNames[i], g[i], w[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
