package genie

import (
	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween/ease"
)

// Default animation timings, in seconds. Each is overridable via Config.
const (
	defaultFPS               = 60
	defaultSqueezeDuration   = 0.6
	defaultTranslateDuration = 0.5
	defaultTranslateDelay    = 0.17
	defaultEngageDelay       = 0.26
	defaultSettleDelay       = 0.275

	defaultIndicatorResponse = 0.4
	defaultIndicatorDamping  = 0.8
	defaultActivateResponse  = 0.5
	defaultActivateDamping   = 0.6
	defaultReleaseResponse   = 0.7
	defaultReleaseDamping    = 1.1

	// indicatorMinScale is the floating indicator's scale at zero activation.
	indicatorMinScale = 0.5
)

// Config configures a Driver. The zero value of every field except Bounds
// means "use the default". Spring parameters are SwiftUI-style
// (response, damping fraction) pairs.
type Config struct {
	// Bounds is the surface being distorted. Required for pointer
	// normalization; update later with SetBounds if the surface resizes.
	Bounds Bounds

	// FPS is the fixed internal timestep rate. Update accumulates elapsed
	// time and advances the state in 1/FPS steps, which keeps spring
	// integration stable regardless of the host's frame cadence.
	FPS int

	// Easing shapes the press-phase tweens. Defaults to ease.InOutQuad.
	Easing ease.TweenFunc

	// SqueezeDuration is the press tween duration for ProgressX/ProgressY.
	SqueezeDuration float64
	// TranslateDuration is the press tween duration for TranslationY.
	TranslateDuration float64
	// TranslateDelay holds TranslationY at rest for this long after press,
	// so the vertical slide visibly lags the squeeze.
	TranslateDelay float64
	// EngageDelay is how long after press the gesture activates.
	EngageDelay float64
	// SettleDelay is how long after activation the settle pulse fires.
	SettleDelay float64

	// IndicatorResponse/IndicatorDamping drive the pointer-following spring.
	IndicatorResponse float64
	IndicatorDamping  float64
	// ActivateResponse/ActivateDamping drive the activation value spring.
	ActivateResponse float64
	ActivateDamping  float64
	// ReleaseResponse/ReleaseDamping drive the release springs; the default
	// is overdamped so parameters return to rest without overshoot.
	ReleaseResponse float64
	ReleaseDamping  float64

	// Haptics receives tactile pulses. Nil disables them.
	Haptics Haptics
}

// withDefaults fills zero-valued fields with package defaults.
func (c Config) withDefaults() Config {
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}
	if c.Easing == nil {
		c.Easing = ease.InOutQuad
	}
	if c.SqueezeDuration <= 0 {
		c.SqueezeDuration = defaultSqueezeDuration
	}
	if c.TranslateDuration <= 0 {
		c.TranslateDuration = defaultTranslateDuration
	}
	if c.TranslateDelay < 0 {
		c.TranslateDelay = 0
	} else if c.TranslateDelay == 0 {
		c.TranslateDelay = defaultTranslateDelay
	}
	if c.EngageDelay <= 0 {
		c.EngageDelay = defaultEngageDelay
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = defaultSettleDelay
	}
	if c.IndicatorResponse <= 0 {
		c.IndicatorResponse = defaultIndicatorResponse
	}
	if c.IndicatorDamping <= 0 {
		c.IndicatorDamping = defaultIndicatorDamping
	}
	if c.ActivateResponse <= 0 {
		c.ActivateResponse = defaultActivateResponse
	}
	if c.ActivateDamping <= 0 {
		c.ActivateDamping = defaultActivateDamping
	}
	if c.ReleaseResponse <= 0 {
		c.ReleaseResponse = defaultReleaseResponse
	}
	if c.ReleaseDamping <= 0 {
		c.ReleaseDamping = defaultReleaseDamping
	}
	return c
}

// IndicatorState describes the floating thumbnail that follows the finger.
type IndicatorState struct {
	// Position is the indicator's center in surface coordinates.
	Position Vec2
	// Scale grows from indicatorMinScale to 1 as the gesture engages.
	Scale float64
	// Opacity follows the activation value, clamped to [0, 1].
	Opacity float64
	// Visible reports whether the indicator should be drawn at all.
	Visible bool
}

// Driver is the animation state machine behind the effect. It owns the
// four control values, the floating indicator, and the deferred tactile
// pulse, advancing all of them on its own timeline in response to Press,
// Move, Release, and Update.
//
// A Driver is single-threaded by design: pointer events and Update must
// arrive on one goroutine, in order. There are no error states; bad input
// clamps and degenerate bounds disable pointer normalization.
type Driver struct {
	cfg  Config
	step float64 // fixed timestep, 1/FPS
	acc  float64 // unconsumed elapsed time

	pointerDown bool
	active      bool

	centerX      float64
	progressX    transition
	progressY    transition
	translationY transition

	activation transition
	indicatorX transition
	indicatorY transition

	engageTimer timer // flips active true after EngageDelay
	settleTimer timer // fires the settle pulse after SettleDelay

	indicatorSpring harmonica.Spring
	activateSpring  harmonica.Spring
	releaseSpring   harmonica.Spring
}

// NewDriver creates a driver at rest. Zero-valued Config fields take
// package defaults.
func NewDriver(cfg Config) *Driver {
	cfg = cfg.withDefaults()
	return &Driver{
		cfg:             cfg,
		step:            1 / float64(cfg.FPS),
		indicatorSpring: springFor(cfg.FPS, cfg.IndicatorResponse, cfg.IndicatorDamping),
		activateSpring:  springFor(cfg.FPS, cfg.ActivateResponse, cfg.ActivateDamping),
		releaseSpring:   springFor(cfg.FPS, cfg.ReleaseResponse, cfg.ReleaseDamping),
	}
}

// SetBounds updates the surface size used for pointer normalization.
func (d *Driver) SetBounds(b Bounds) {
	d.cfg.Bounds = b
}

// Press begins a gesture at p, or retargets the pointer if one is already
// in progress. CenterX updates immediately — interpolating it visibly
// breaks the effect — while the progress values start their timed
// transitions toward full distortion.
func (d *Driver) Press(p Vec2) {
	fresh := !d.pointerDown
	d.pointerDown = true
	d.setPointer(p, fresh)

	if !fresh {
		return
	}
	d.progressX.tweenTo(1, d.cfg.SqueezeDuration, 0, d.cfg.Easing)
	d.progressY.tweenTo(1, d.cfg.SqueezeDuration, 0, d.cfg.Easing)
	d.translationY.tweenTo(1, d.cfg.TranslateDuration, d.cfg.TranslateDelay, d.cfg.Easing)
	d.engageTimer.schedule(d.cfg.EngageDelay)
	d.settleTimer.cancel()
}

// Move updates the pointer position for a gesture in progress. Moves with
// no pointer down are ignored.
func (d *Driver) Move(p Vec2) {
	if !d.pointerDown {
		return
	}
	d.setPointer(p, false)
}

// Release ends the gesture: the control values spring back to rest, the
// activation flips off, and any pending deferred pulse is cancelled.
// Release without a pointer down is a no-op.
func (d *Driver) Release() {
	if !d.pointerDown {
		return
	}
	d.pointerDown = false
	d.engageTimer.cancel()
	d.settleTimer.cancel()

	if d.active {
		d.active = false
		d.pulseEngage()
	}
	d.activation.springTo(0, d.activateSpring)
	d.progressX.springTo(0, d.releaseSpring)
	d.progressY.springTo(0, d.releaseSpring)
	d.translationY.springTo(0, d.releaseSpring)
}

// Update advances the driver by dt seconds of host time. Internally the
// state moves on the fixed 1/FPS grid; leftover time carries to the next
// call. Non-positive dt is ignored.
func (d *Driver) Update(dt float64) {
	if dt <= 0 {
		return
	}
	d.acc += dt
	for d.acc >= d.step {
		d.acc -= d.step
		d.stepOnce()
	}
}

// stepOnce advances one fixed timestep.
func (d *Driver) stepOnce() {
	d.progressX.update(d.step)
	d.progressY.update(d.step)
	d.translationY.update(d.step)
	d.activation.update(d.step)
	d.indicatorX.update(d.step)
	d.indicatorY.update(d.step)

	// The settle timer ticks before the engage timer so a pulse scheduled
	// by this step's engagement starts counting on the next step.
	if d.settleTimer.tick(d.step) {
		d.pulseSettle()
	}
	if d.engageTimer.tick(d.step) {
		d.engage()
	}
}

// engage flips the gesture active once the engage delay elapses.
func (d *Driver) engage() {
	d.active = true
	d.pulseEngage()
	d.activation.springTo(1, d.activateSpring)
	d.settleTimer.schedule(d.cfg.SettleDelay)
}

// Params returns the current control values, clamped to [0, 1].
func (d *Driver) Params() Params {
	return Params{
		CenterX:      d.centerX,
		ProgressX:    d.progressX.value,
		ProgressY:    d.progressY.value,
		TranslationY: d.translationY.value,
	}.clamped()
}

// Indicator returns the floating thumbnail's current state.
func (d *Driver) Indicator() IndicatorState {
	act := clamp(d.activation.value, 0, 1)
	return IndicatorState{
		Position: Vec2{X: d.indicatorX.value, Y: d.indicatorY.value},
		Scale:    mapRange(act, 0, 1, indicatorMinScale, 1),
		Opacity:  act,
		Visible:  act > settleEpsilon,
	}
}

// Active reports whether the gesture is engaged (pointer down and the
// engage delay has elapsed).
func (d *Driver) Active() bool {
	return d.active
}

// AtRest reports whether no pointer is active and every value has settled
// back to its rest state.
func (d *Driver) AtRest() bool {
	return !d.pointerDown && !d.active &&
		d.progressX.done() && d.progressX.value == 0 &&
		d.progressY.done() && d.progressY.value == 0 &&
		d.translationY.done() && d.translationY.value == 0 &&
		d.activation.done() && d.activation.value == 0
}

// Reset returns the driver to rest immediately, cancelling transitions,
// timers, and any pending pulse. Safe to call repeatedly, including on
// interrupted gestures.
func (d *Driver) Reset() {
	d.pointerDown = false
	d.active = false
	d.acc = 0
	d.centerX = 0
	d.progressX.set(0)
	d.progressY.set(0)
	d.translationY.set(0)
	d.activation.set(0)
	d.indicatorX.set(0)
	d.indicatorY.set(0)
	d.engageTimer.cancel()
	d.settleTimer.cancel()
}

// setPointer applies a new pointer position: CenterX immediately, the
// indicator via its spring. On a fresh press the indicator snaps to the
// finger instead — it is still invisible, and springing in from a stale
// position would have it sail across the surface as it fades in.
func (d *Driver) setPointer(p Vec2, fresh bool) {
	b := d.cfg.Bounds
	if b.Width > 0 {
		d.centerX = clamp(mapRange(p.X, 0, b.Width, 0, 1), 0, 1)
	}
	x := clamp(p.X, 0, b.Width)
	y := clamp(p.Y, 0, b.Height)
	if fresh {
		d.indicatorX.set(x)
		d.indicatorY.set(y)
		return
	}
	d.indicatorX.springTo(x, d.indicatorSpring)
	d.indicatorY.springTo(y, d.indicatorSpring)
}

func (d *Driver) pulseEngage() {
	if d.cfg.Haptics != nil {
		d.cfg.Haptics.Engage()
	}
}

func (d *Driver) pulseSettle() {
	if d.cfg.Haptics != nil {
		d.cfg.Haptics.Settle()
	}
}
