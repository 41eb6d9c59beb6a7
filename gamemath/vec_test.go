package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRotateByUnitVector(t *testing.T) {
	tests := []struct {
		name  string
		by    Vec2
		v     Vec2
		wantX float64
		wantY float64
	}{
		{"identity", V(1, 0), V(4, 0), 4, 0},
		{"quarter turn", V(0, 1), V(4, 0), 0, 4},
		{"down", V(0, -1), V(5, 0), 0, -5},
		{"left", V(-1, 0), V(5, 0), -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.by, tt.v)
			if !near(got.X, tt.wantX) || !near(got.Y, tt.wantY) {
				t.Errorf("Rotate(%v, %v) = %v, want (%v, %v)", tt.by, tt.v, got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRotateTowardsPreservesLength(t *testing.T) {
	v := V(3, 4)
	target := V(-1, 0.2)
	for i := 0; i < 100; i++ {
		v = RotateTowards(v, target, 0.05)
		if !near(v.Magnitude(), 5) {
			t.Fatalf("step %d: length = %v, want 5", i, v.Magnitude())
		}
	}
	if a := math.Abs(AngleTo(v, target)); a > 1e-6 {
		t.Errorf("expected to converge on target, angle left %v", a)
	}
}

func TestRotateTowardsDoesNotOvershoot(t *testing.T) {
	v := V(1, 0)
	got := RotateTowards(v, V(1, 0.1), math.Pi)
	if !near(AngleTo(got, V(1, 0.1)), 0) {
		t.Errorf("overshot target: %v", got)
	}
}

func TestClamp(t *testing.T) {
	min, max := V(-1, -2), V(1, 2)
	tests := []struct {
		in, want Vec2
	}{
		{V(0, 0), V(0, 0)},
		{V(5, 0), V(1, 0)},
		{V(-5, -5), V(-1, -2)},
		{V(0.5, 3), V(0.5, 2)},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in, min, max); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
