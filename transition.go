package genie

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleEpsilon is the position/velocity threshold below which a spring
// snaps to its target and stops. Snapping keeps the rest state exact.
const settleEpsilon = 1e-4

// springFor builds a harmonica spring from a (response, damping) pair.
// Response is the period of one undamped oscillation in seconds, damping
// the damping ratio (1 = critical), so ω = 2π/response.
func springFor(fps int, response, damping float64) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), 2*math.Pi/response, damping)
}

type transitionMode uint8

const (
	transitionIdle   transitionMode = iota // holding a value
	transitionTween                        // timed easing curve, optional start delay
	transitionSpring                       // damped spring toward target
)

// transition drives a single scalar toward a target, either on a timed
// easing curve or on a damped spring. The driver steps every transition on
// a fixed timestep, so spring integration stays stable and tween and
// spring phases share one clock.
//
// Retargeting replaces the in-flight motion: a tween restarts from the
// current value, while retargeting a spring that is already springing
// keeps its velocity so a moving target tracks smoothly.
type transition struct {
	value  float64
	target float64
	mode   transitionMode

	delay float64 // remaining tween start delay
	tween *gween.Tween

	spring harmonica.Spring
	vel    float64
}

// set snaps the value immediately and stops any in-flight motion.
func (tr *transition) set(v float64) {
	tr.value = v
	tr.target = v
	tr.mode = transitionIdle
	tr.vel = 0
}

// tweenTo starts a timed transition toward target. The tween begins after
// delay seconds; the current value holds until then.
func (tr *transition) tweenTo(target, duration, delay float64, fn ease.TweenFunc) {
	tr.target = target
	tr.mode = transitionTween
	tr.delay = delay
	tr.tween = gween.New(float32(tr.value), float32(target), float32(duration), fn)
	tr.vel = 0
}

// springTo starts a spring transition toward target from the current value.
func (tr *transition) springTo(target float64, spring harmonica.Spring) {
	tr.target = target
	if tr.mode != transitionSpring {
		tr.vel = 0
	}
	tr.mode = transitionSpring
	tr.spring = spring
}

// done reports whether the transition is holding its target.
func (tr *transition) done() bool {
	return tr.mode == transitionIdle
}

// update advances the transition by one fixed step of dt seconds.
func (tr *transition) update(dt float64) {
	switch tr.mode {
	case transitionTween:
		if tr.delay > 0 {
			tr.delay -= dt
			if tr.delay > 0 {
				return
			}
			// Spend the spillover inside the tween.
			dt = -tr.delay
			tr.delay = 0
			if dt == 0 {
				return
			}
		}
		v, finished := tr.tween.Update(float32(dt))
		tr.value = float64(v)
		if finished {
			tr.set(tr.target)
		}
	case transitionSpring:
		tr.value, tr.vel = tr.spring.Update(tr.value, tr.vel, tr.target)
		if math.Abs(tr.value-tr.target) < settleEpsilon && math.Abs(tr.vel) < settleEpsilon {
			tr.set(tr.target)
		}
	}
}
