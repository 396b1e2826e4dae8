package vmath

import "testing"

func TestBoxesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		ax, ay, aw, ah, bx, by, bw, bh float64
		want                           bool
	}{
		{"identical boxes", 10, 10, 20, 20, 10, 10, 20, 20, true},
		{"partial overlap", 0, 0, 20, 20, 10, 10, 20, 20, true},
		{"contained box", 0, 0, 100, 100, 40, 40, 10, 10, true},
		{"disjoint horizontal", 0, 0, 10, 10, 50, 0, 10, 10, false},
		{"disjoint vertical", 0, 0, 10, 10, 0, 50, 10, 10, false},
		{"edge touch right is not overlap", 0, 0, 10, 10, 10, 0, 10, 10, false},
		{"edge touch bottom is not overlap", 0, 0, 10, 10, 0, 10, 10, 10, false},
		{"corner touch is not overlap", 0, 0, 10, 10, 10, 10, 10, 10, false},
		{"one pixel past the edge", 0, 0, 10, 10, 9.9, 9.9, 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoxesOverlap(tt.ax, tt.ay, tt.aw, tt.ah, tt.bx, tt.by, tt.bw, tt.bh)
			if got != tt.want {
				t.Errorf("BoxesOverlap = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric
			rev := BoxesOverlap(tt.bx, tt.by, tt.bw, tt.bh, tt.ax, tt.ay, tt.aw, tt.ah)
			if rev != tt.want {
				t.Errorf("BoxesOverlap reversed = %v, want %v", rev, tt.want)
			}
		})
	}
}

func TestWithinRadius(t *testing.T) {
	tests := []struct {
		name              string
		px, py, cx, cy, r float64
		want              bool
	}{
		{"point at center", 5, 5, 5, 5, 1, true},
		{"inside", 3, 4, 0, 0, 6, true},
		{"exactly on the circle is outside", 3, 4, 0, 0, 5, false},
		{"just outside", 3, 4, 0, 0, 4.9, false},
		{"negative coordinates", -3, -4, 0, 0, 5.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinRadius(tt.px, tt.py, tt.cx, tt.cy, tt.r)
			if got != tt.want {
				t.Errorf("WithinRadius = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp below = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp above = %v, want 10", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("Clamp inside = %v, want 7", got)
	}
}
