package genie

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Distortion tuning constants. These shape the warp itself and are shared
// verbatim by Warp and ShaderSource; the animation timings live on Config.
const (
	// maxSqueeze is the horizontal compression multiplier at full progress.
	maxSqueeze = 5.0
	// centerOverscan widens the squeeze center's range to [-0.125, 1.125]
	// to compensate for alignment drift caused by the squeeze.
	centerOverscan = 0.125
	// stretchAnchor is the normalized y of the fixed vertical scaling line.
	stretchAnchor = 0.75
	// maxStretch is the vertical scale reduction at full progress.
	maxStretch = 0.5
	// translateMin / translateMax bound the vertical slide in surface heights.
	translateMin = -0.1
	translateMax = 0.75
)

// Warp maps a screen position to the source position to sample, given the
// surface bounds and the current control values. It is an inverse-warp
// lookup: callers sample the undistorted image at the returned position,
// they do not displace geometry by it.
//
// Warp is pure and stateless, so per-frame evaluation may be parallelized
// freely across pixels. [Effect] runs identical math on the GPU.
//
// Degenerate inputs never produce NaN or infinities: zero-area bounds and
// the rest tuple both return pos unchanged, and params are clamped to
// [0, 1] before use.
func Warp(pos Vec2, b Bounds, p Params) Vec2 {
	p = p.clamped()
	if b.Empty() || p.IsRest() {
		return pos
	}

	// Horizontal squeeze toward the center, gated per row by a smooth
	// S-curve so the compression is strongest near the bottom. The curve's
	// upper edge rises from the bottom of the surface (progressY=0, no
	// squeeze anywhere) to twice the height above the top (progressY=1).
	squeeze := mapRange(p.ProgressX, 0, 1, 1, maxSqueeze)
	center := mapRange(p.CenterX, 0, 1, -centerOverscan, 1+centerOverscan) * b.Width
	dx := pos.X - center
	edge0 := mapRange(p.ProgressY, 0, 1, 1, -2) * b.Height
	s := smootherstep(edge0, b.Height, pos.Y)
	rowSqueeze := 1 + (squeeze-1)*s
	x := center + dx*rowSqueeze

	// Vertical stretch around the fixed anchor line, then the slide.
	anchor := stretchAnchor * b.Height
	scaleY := 1 - mapRange(p.ProgressY, 0, 1, 0, maxStretch)
	y := anchor + (pos.Y-anchor)*scaleY
	y += mapRange(p.TranslationY, 0, 1, translateMin, translateMax) * b.Height

	return Vec2{X: x, Y: y}
}

// ShaderSource is the Kage source for the GPU path. It mirrors Warp
// exactly: each destination pixel computes the warped source coordinate
// and samples the source image there (transparent outside the source).
// Uses //kage:unit pixels as required by Ebitengine.
const ShaderSource = `//kage:unit pixels
package main

var CenterX float
var ProgressX float
var ProgressY float
var TranslationY float

func mapRange(v, inLo, inHi, outLo, outHi float) float {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	if ProgressX == 0 && ProgressY == 0 && TranslationY == 0 {
		return imageSrc0At(src)
	}

	origin := imageSrc0Origin()
	size := imageSrc0Size()
	pos := src - origin

	squeeze := mapRange(ProgressX, 0, 1, 1, 5)
	center := mapRange(CenterX, 0, 1, -0.125, 1.125) * size.x
	dx := pos.x - center

	edge0 := mapRange(ProgressY, 0, 1, 1, -2) * size.y
	s := 0.0
	if edge0 >= size.y {
		// Degenerate interval: step at the bottom edge.
		if pos.y >= size.y {
			s = 1.0
		}
	} else {
		t := clamp((pos.y-edge0)/(size.y-edge0), 0, 1)
		s = t * t * t * (t*(t*6-15) + 10)
	}
	row := 1 + (squeeze-1)*s
	x := center + dx*row

	anchor := 0.75 * size.y
	y := anchor + (pos.y-anchor)*(1-0.5*ProgressY)
	y += mapRange(TranslationY, 0, 1, -0.1, 0.75) * size.y

	return imageSrc0At(vec2(x, y) + origin)
}
`

// Lazy shader compilation (no sync.Once — the effect is single-threaded).
var warpShader *ebiten.Shader

func ensureWarpShader() *ebiten.Shader {
	if warpShader == nil {
		s, err := ebiten.NewShader([]byte(ShaderSource))
		if err != nil {
			panic("genie: failed to compile warp shader: " + err.Error())
		}
		warpShader = s
	}
	return warpShader
}

// Effect renders a source image through the warp shader. Uniform storage
// is persistent so Apply performs no per-frame map allocation; scalar
// float32 boxing is unavoidable with Ebitengine's uniform API.
//
// An Effect is not safe for concurrent use; create one per render target.
type Effect struct {
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewEffect creates a warp effect. The shader is compiled lazily on the
// first Apply and shared between all Effect instances.
func NewEffect() *Effect {
	return &Effect{uniforms: make(map[string]any, 4)}
}

// Apply draws src into dst warped by p. The destination rect matches the
// source size; content squeezed beyond it is clipped, content pulled in
// from outside the source samples transparent.
func (e *Effect) Apply(dst, src *ebiten.Image, p Params) {
	shader := ensureWarpShader()
	p = p.clamped()
	e.uniforms["CenterX"] = float32(p.CenterX)
	e.uniforms["ProgressX"] = float32(p.ProgressX)
	e.uniforms["ProgressY"] = float32(p.ProgressY)
	e.uniforms["TranslationY"] = float32(p.TranslationY)
	bounds := src.Bounds()
	e.shaderOp.Images[0] = src
	e.shaderOp.Uniforms = e.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &e.shaderOp)
}
