package genie

// Vec2 is a 2D point or offset in surface coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Bounds is the size of the rectangle being distorted, supplied by the
// host. A zero-area Bounds disables the effect (Warp becomes identity).
type Bounds struct {
	Width, Height float64
}

// Empty reports whether the bounds enclose no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Params are the four scalar control values that drive the distortion.
// All fields are normalized to [0, 1]; out-of-range values are clamped at
// the point of use, never rejected. Params are immutable per evaluation
// and have no identity beyond value equality.
type Params struct {
	// CenterX is the normalized x-coordinate the squeeze converges toward.
	CenterX float64
	// ProgressX is the horizontal squeeze progress.
	ProgressX float64
	// ProgressY is the vertical stretch progress; it also gates how far up
	// the surface the squeeze reaches.
	ProgressY float64
	// TranslationY is the vertical slide progress.
	TranslationY float64
}

// IsRest reports whether the params produce no distortion. CenterX is
// ignored: with zero squeeze progress the squeeze center is unobservable.
func (p Params) IsRest() bool {
	return p.ProgressX == 0 && p.ProgressY == 0 && p.TranslationY == 0
}

// clamped returns a copy with every field clamped to [0, 1].
func (p Params) clamped() Params {
	return Params{
		CenterX:      clamp(p.CenterX, 0, 1),
		ProgressX:    clamp(p.ProgressX, 0, 1),
		ProgressY:    clamp(p.ProgressY, 0, 1),
		TranslationY: clamp(p.TranslationY, 0, 1),
	}
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapRange linearly remaps v from [inLo, inHi] to [outLo, outHi] without
// clamping. A degenerate input range maps everything to outLo rather than
// dividing by zero.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// smootherstep evaluates the quintic S-curve t³(t(6t-15)+10) over
// [edge0, edge1] at x. Returns 0 below edge0, 1 above edge1. When the edge
// interval is degenerate (edge0 >= edge1) it decays to a step at edge1.
func smootherstep(edge0, edge1, x float64) float64 {
	if edge0 >= edge1 {
		if x >= edge1 {
			return 1
		}
		return 0
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}
