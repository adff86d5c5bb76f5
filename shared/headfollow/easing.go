package headfollow

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// SmoothStep is the classic ease-in-ease-out curve 3t²-2t³ with zero tangents at both
// ends, in the gween signature (t elapsed, b begin, c change, d duration).
func SmoothStep(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	t /= d
	if t <= 0 {
		return b
	}
	if t >= 1 {
		return b + c
	}
	return b + c*t*t*(3-2*t)
}

var curves = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"smoothstep": SmoothStep,
	"inOutQuad":  ease.InOutQuad,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outQuad":    ease.OutQuad,
	"outCubic":   ease.OutCubic,
	"outBack":    ease.OutBack,
	"outElastic": ease.OutElastic,
	"outBounce":  ease.OutBounce,
}

// CurveByName looks up a reveal curve. The empty name selects SmoothStep.
func CurveByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return SmoothStep, nil
	}
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("headfollow: unknown curve %q (known: %v)", name, CurveNames())
	}
	return fn, nil
}

// CurveNames lists the registered curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvaluateCurve maps a normalized time in [0, 1] through curve.
func EvaluateCurve(curve ease.TweenFunc, t float64) float64 {
	if curve == nil {
		curve = SmoothStep
	}
	return float64(curve(float32(t), 0, 1, 1))
}
