package testutil

import (
	"math"

	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// AssertSliceInDelta checks got against want element by element with an
// absolute tolerance and stops at the first mismatch.
func AssertSliceInDelta(t assert.TestingT, want, got []float64, eps float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			return assert.Fail(t, "slice mismatch",
				"index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
	return true
}

// AssertFinite checks that no element is NaN or Inf.
func AssertFinite(t assert.TestingT, data []float64) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, "non-finite value", "index %d: %v", i, v)
		}
	}
	return true
}
