package engine

import (
	"math"
	"testing"
)

func TestNamedEasingCurves(t *testing.T) {
	tests := []struct {
		name     NamedEasing
		in       float64
		expected float64
	}{
		{Linear, 0.0, 0.0},
		{Linear, 0.25, 0.25},
		{Linear, 1.0, 1.0},
		{EaseInQuad, 0.5, 0.25},
		{EaseOutQuad, 0.5, 0.75},
		{EaseInCubic, 0.5, 0.125},
		{EaseOutCubic, 0.5, 0.875},
		{EaseInOutQuad, 0.5, 0.5},
		{EaseInOutCubic, 0.5, 0.5},
		{EaseIn, 0.0, 0.0},
		{EaseIn, 1.0, 1.0},
		{EaseInOut, 0.5, 0.5},
	}

	for _, tt := range tests {
		got := tt.name.Ease(tt.in)
		if math.Abs(got-tt.expected) > 1e-6 {
			t.Errorf("%s(%g): expected %g, got %g", tt.name, tt.in, tt.expected, got)
		}
	}
}

func TestNamedEasingClampsInput(t *testing.T) {
	if got := EaseInQuad.Ease(-0.5); got != 0 {
		t.Errorf("expected 0 below range, got %g", got)
	}
	if got := EaseInQuad.Ease(1.5); got != 1 {
		t.Errorf("expected 1 above range, got %g", got)
	}
}

func TestUnknownEasingFallsBackToLinear(t *testing.T) {
	unknown := NamedEasing("wobble")
	for _, in := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := unknown.Ease(in); got != in {
			t.Errorf("unknown name at %g: expected linear %g, got %g", in, in, got)
		}
	}
}

func TestCubicBezierLinearDiagonal(t *testing.T) {
	// Control points on the diagonal make the curve the identity.
	b := CubicBezier{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75}
	for _, in := range []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1} {
		got := b.Ease(in)
		if math.Abs(got-in) > 1e-3 {
			t.Errorf("diagonal bezier at %g: expected %g, got %g", in, in, got)
		}
	}
}

func TestCubicBezierEndpointsAndSymmetry(t *testing.T) {
	// The CSS "ease-in-out" bezier is symmetric around 0.5.
	b := CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}

	if got := b.Ease(0); math.Abs(got) > 1e-3 {
		t.Errorf("expected 0 at start, got %g", got)
	}
	if got := b.Ease(1); math.Abs(got-1) > 1e-3 {
		t.Errorf("expected 1 at end, got %g", got)
	}
	if got := b.Ease(0.5); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("expected 0.5 at midpoint, got %g", got)
	}

	// Eased progress accelerates then decelerates.
	if b.Ease(0.25) >= 0.25 {
		t.Errorf("expected slow start, got %g at 0.25", b.Ease(0.25))
	}
	if b.Ease(0.75) <= 0.75 {
		t.Errorf("expected fast finish, got %g at 0.75", b.Ease(0.75))
	}
}

func TestCubicBezierMonotonicAndDeterministic(t *testing.T) {
	b := CubicBezier{X1: 0.17, Y1: 0.67, X2: 0.83, Y2: 0.67}
	prev := b.Ease(0)
	for i := 1; i <= 100; i++ {
		in := float64(i) / 100
		got := b.Ease(in)
		if got < prev-1e-3 {
			t.Fatalf("output decreased at %g: %g -> %g", in, prev, got)
		}
		if again := b.Ease(in); again != got {
			t.Fatalf("non-deterministic at %g: %g vs %g", in, got, again)
		}
		prev = got
	}
}

func TestIsCubicBezier(t *testing.T) {
	if !IsCubicBezier(CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}) {
		t.Error("expected true for CubicBezier")
	}
	if IsCubicBezier(EaseInOut) {
		t.Error("expected false for a named curve")
	}
	if IsCubicBezier(nil) {
		t.Error("expected false for nil")
	}
}
