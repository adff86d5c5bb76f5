package headfollow

import (
	"math"
	"testing"
)

func TestSmoothStep(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.15625},
		{0.5, 0.5},
		{0.75, 0.84375},
		{1, 1},
		{2, 1},
	}
	for _, c := range cases {
		if got := EvaluateCurve(SmoothStep, c.t); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("SmoothStep(%v): expected %v, got %v", c.t, c.want, got)
		}
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range CurveNames() {
		fn, err := CurveByName(name)
		if err != nil {
			t.Fatalf("CurveByName(%q): %v", name, err)
		}
		if got := EvaluateCurve(fn, 0); math.Abs(got) > 1e-6 {
			t.Errorf("%s: expected 0 at t=0, got %v", name, got)
		}
		if got := EvaluateCurve(fn, 1); math.Abs(got-1) > 1e-5 {
			t.Errorf("%s: expected 1 at t=1, got %v", name, got)
		}
	}

	if fn, err := CurveByName(""); err != nil || fn == nil {
		t.Fatalf("expected the empty name to select the default curve")
	}
	if _, err := CurveByName("wobble"); err == nil {
		t.Fatalf("expected an error for an unknown curve")
	}
}
