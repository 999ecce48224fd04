package engine

import (
	"math"

	"github.com/fogleman/ease"

	"github.com/vectorstudio/animtx/util"
)

// An Easing maps normalised segment progress in [0,1] to eased progress.
type Easing interface {
	Ease(t float64) float64
}

// NamedEasing is a built-in easing curve identified by name.
type NamedEasing string

const (
	Linear         NamedEasing = "linear"
	EaseIn         NamedEasing = "ease-in"
	EaseOut        NamedEasing = "ease-out"
	EaseInOut      NamedEasing = "ease-in-out"
	EaseInQuad     NamedEasing = "ease-in-quad"
	EaseOutQuad    NamedEasing = "ease-out-quad"
	EaseInOutQuad  NamedEasing = "ease-in-out-quad"
	EaseInCubic    NamedEasing = "ease-in-cubic"
	EaseOutCubic   NamedEasing = "ease-out-cubic"
	EaseInOutCubic NamedEasing = "ease-in-out-cubic"
)

var curves = map[NamedEasing]func(float64) float64{
	EaseIn:         ease.InSine,
	EaseOut:        ease.OutSine,
	EaseInOut:      ease.InOutSine,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
}

// Ease evaluates the named curve. Inputs are clamped to [0,1] so callers on
// floating-point edges never feed the curve out-of-range values. Unknown names
// degrade to linear rather than failing.
func (n NamedEasing) Ease(t float64) float64 {
	t = util.Clamp01(t)
	if fn, ok := curves[n]; ok {
		return fn(t)
	}
	return t
}

// A CubicBezier is a custom timing curve with control points (X1,Y1) and
// (X2,Y2) and implicit endpoints (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

const bezierEpsilon = 1e-4

// Ease solves the bezier parameter whose x-component equals t, then returns
// the y-component there. Newton-Raphson with a bisection fallback, bounded
// iterations, no allocations; safe to call once per track per frame.
func (b CubicBezier) Ease(t float64) float64 {
	return bezierAxis(b.Y1, b.Y2, b.solve(t))
}

func (b CubicBezier) solve(x float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		diff := bezierAxis(b.X1, b.X2, u) - x
		if math.Abs(diff) < bezierEpsilon {
			return u
		}
		d := bezierSlope(b.X1, b.X2, u)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= diff / d
	}

	lo, hi := 0.0, 1.0
	u = util.Clamp01(x)
	for hi-lo > bezierEpsilon {
		if bezierAxis(b.X1, b.X2, u) < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// bezierAxis evaluates one axis of the curve at parameter u, with the fixed
// endpoints 0 and 1.
func bezierAxis(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// IsCubicBezier reports whether e is a custom cubic-bezier curve rather than a
// named one.
func IsCubicBezier(e Easing) bool {
	_, ok := e.(CubicBezier)
	return ok
}
