package vmath

// BoxesOverlap reports whether two axis-aligned rectangles overlap.
// The test is strict: rectangles that only touch along an edge or at a
// corner do not count as overlapping. Callers guarantee valid geometry;
// there are no NaN or negative-size guards.
func BoxesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// WithinRadius reports whether the point (px, py) lies strictly inside the
// circle centered at (cx, cy) with radius r. Compares squared distances to
// avoid the sqrt.
func WithinRadius(px, py, cx, cy, r float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy < r*r
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
