package growth

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	diff(t, Vec(4, 6), Vec(1, 2).Add(Vec(3, 4)))
	diff(t, Vec(-2, -2), Vec(1, 2).Sub(Vec(3, 4)))
	diff(t, Vec(2, 4), Vec(1, 2).Mul(2))
	diff(t, Vec(0.5, 1), Vec(1, 2).Div(2))
	diff(t, Vec(-1, 2), Vec(1, -2).Negate())
}

func TestVec2Hypot(t *testing.T) {
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	if h := Vec(3, 4).Hypot2(); h != 25 {
		t.Errorf("got squared magnitude %v, want 25", h)
	}
}

func TestVec2Normalize(t *testing.T) {
	diff(t, Vec(0.6, 0.8), Vec(3, 4).Normalize(), approx())
	if !Vec(0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
}

func TestVec2WithHypot(t *testing.T) {
	v := Vec(3, 4).WithHypot(10)
	diff(t, Vec(6, 8), v, approx())
	if h := v.Hypot(); math.Abs(h-10) > 1e-12 {
		t.Errorf("got magnitude %v, want 10", h)
	}
}

func TestVec2Clamp(t *testing.T) {
	// Under the limit: unchanged, bit for bit.
	diff(t, Vec(3, 4), Vec(3, 4).Clamp(5))
	diff(t, Vec(3, 4), Vec(3, 4).Clamp(6))
	// Over the limit: direction preserved, magnitude reduced to the limit.
	clamped := Vec(30, 40).Clamp(5)
	diff(t, Vec(3, 4), clamped, approx())
	if h := clamped.Hypot(); math.Abs(h-5) > 1e-12 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	// The zero vector stays zero for any limit.
	diff(t, Vec2{}, Vec2{}.Clamp(0))
	diff(t, Vec2{}, Vec2{}.Clamp(5))
}
