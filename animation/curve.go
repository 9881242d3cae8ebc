package animation

// curveKind selects the stepping model for an animation.
type curveKind int

const (
	curveSpring curveKind = iota
	curveBezier
)

// Curve describes how an animation approaches its target: a damped spring
// parameterized by a damping ratio, or a duration-normalized cubic bezier
// easing. The zero value is a spring with the default damping.
type Curve struct {
	kind     curveKind
	damping  float64
	p1x, p1y float64
	p2x, p2y float64
}

// DefaultSpringDamping is used when a spring curve is built with a
// non-positive damping ratio.
const DefaultSpringDamping = 0.8

// Spring returns a damped-spring curve. damping is the damping ratio:
// values below 1 overshoot slightly, 1 is critically damped.
func Spring(damping float64) Curve {
	if damping <= 0 {
		damping = DefaultSpringDamping
	}
	return Curve{kind: curveSpring, damping: damping}
}

// Bezier returns a cubic-bezier easing curve with the given control points,
// in the same form as CSS timing functions.
func Bezier(p1x, p1y, p2x, p2y float64) Curve {
	return Curve{kind: curveBezier, p1x: p1x, p1y: p1y, p2x: p2x, p2y: p2y}
}

// ease evaluates the bezier easing at time fraction u in [0,1] by solving
// the parameter for u on the x axis, then sampling the y axis.
func (c Curve) ease(u float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	t := c.solveT(u)
	return bezierAxis(t, c.p1y, c.p2y)
}

// solveT finds t such that bezierAxis(t, p1x, p2x) == u, Newton first with a
// bisection fallback.
func (c Curve) solveT(u float64) float64 {
	t := u
	for i := 0; i < 8; i++ {
		x := bezierAxis(t, c.p1x, c.p2x) - u
		if x < 1e-6 && x > -1e-6 {
			return t
		}
		d := bezierAxisDeriv(t, c.p1x, c.p2x)
		if d < 1e-6 && d > -1e-6 {
			break
		}
		t -= x / d
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	lo, hi := 0.0, 1.0
	t = u
	for i := 0; i < 32; i++ {
		x := bezierAxis(t, c.p1x, c.p2x)
		if x < u {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// bezierAxis evaluates one axis of a cubic bezier with endpoints 0 and 1.
func bezierAxis(t, p1, p2 float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t
}

func bezierAxisDeriv(t, p1, p2 float64) float64 {
	inv := 1 - t
	return 3*inv*inv*p1 + 6*inv*t*(p2-p1) + 3*t*t*(1-p2)
}
