package interpolate

import (
	"fmt"
)

// BSearch returns the index i in [lo, hi-1] such that xs[i] <= x < xs[i+1].
// Values below xs[lo] map to lo and values at or above xs[hi] map to hi-1.
//
// xs must be strictly increasing.
func BSearch(xs []float64, x float64, lo, hi int) int {
	for hi > lo+1 {
		mid := (lo + hi) / 2
		if xs[mid] > x {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// Accel caches the last interval found along one axis so that lookups for
// slowly varying sequences of points are O(1). An Accel must only be used
// with one coordinate array at a time and is not safe for concurrent use.
type Accel struct {
	cache        int
	hits, misses int
}

// NewAccel returns an accelerator with an empty cache.
func NewAccel() *Accel { return &Accel{} }

// Find returns the index i in [0, len(xs)-2] such that xs[i] <= x < xs[i+1],
// clamping to the first or last interval when x is outside the grid.
func (a *Accel) Find(xs []float64, x float64) int {
	n := len(xs)
	if a.cache > n-2 {
		a.cache = 0
	}

	c := a.cache
	if x < xs[c] {
		a.misses++
		a.cache = BSearch(xs, x, 0, c)
	} else if x >= xs[c+1] {
		a.misses++
		a.cache = BSearch(xs, x, c, n-1)
	} else {
		a.hits++
	}

	return a.cache
}

// Reset clears the cache and the hit/miss counters.
func (a *Accel) Reset() {
	a.cache, a.hits, a.misses = 0, 0, 0
}

// Hits returns the number of lookups answered from the cache.
func (a *Accel) Hits() int { return a.hits }

// Misses returns the number of lookups which needed a bisection.
func (a *Accel) Misses() int { return a.misses }

func (a *Accel) String() string {
	return fmt.Sprintf(
		"Accel{cache: %d, hits: %d, misses: %d}", a.cache, a.hits, a.misses,
	)
}

// find looks up x with a when it is non-nil and falls back to a full
// bisection otherwise.
func find(a *Accel, xs []float64, x float64) int {
	if a != nil {
		return a.Find(xs, x)
	}
	return BSearch(xs, x, 0, len(xs)-1)
}
