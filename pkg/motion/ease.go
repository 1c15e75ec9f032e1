package motion

// Easing helpers for renderers that sample transition progress. The engine
// itself never animates; these exist so storyboard-style consumers can place
// intermediate camera states along a template's ease curve.

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CubicBezier evaluates a CSS-style cubic bezier timing curve with control
// points (p[0], p[1]) and (p[2], p[3]) at time x in [0, 1]. The endpoints
// are implicitly (0,0) and (1,1). Input outside [0, 1] is clamped.
//
// The curve is parametric in t; the x coordinate is inverted by bisection,
// which is plenty accurate for layout sampling.
func CubicBezier(p [4]float64, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Invert x(t) by bisection. x(t) is monotonic for valid CSS control
	// points (x1, x2 in [0, 1]).
	lo, hi := 0.0, 1.0
	var t float64
	for range 32 {
		t = (lo + hi) / 2
		if bezierAxis(p[0], p[2], t) < x {
			lo = t
		} else {
			hi = t
		}
	}
	return bezierAxis(p[1], p[3], t)
}

// bezierAxis evaluates one axis of the cubic bezier with endpoint
// coordinates 0 and 1 and control coordinates c1, c2 at parameter t.
func bezierAxis(c1, c2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*c1 + 3*u*t*t*c2 + t*t*t
}
