package genie

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionTweenReachesTarget(t *testing.T) {
	var tr transition
	tr.set(0)
	tr.tweenTo(1, 0.6, 0, ease.Linear)

	// Run for full duration using exact halves to avoid float32
	// accumulation drift.
	tr.update(0.3)
	if tr.done() {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(tr.value-0.5) > 0.01 {
		t.Errorf("value at halfway = %f, want ~0.5", tr.value)
	}
	tr.update(0.3)
	if !tr.done() {
		t.Fatal("expected done after full duration")
	}
	if tr.value != 1 {
		t.Errorf("value = %f, want exactly 1 after snap", tr.value)
	}
}

func TestTransitionTweenDelayHoldsValue(t *testing.T) {
	var tr transition
	tr.set(0.2)
	tr.tweenTo(1, 0.5, 0.2, ease.Linear)

	tr.update(0.1)
	if tr.value != 0.2 {
		t.Errorf("value during delay = %f, want 0.2", tr.value)
	}
	tr.update(0.1)
	if tr.value != 0.2 {
		t.Errorf("value at delay boundary = %f, want 0.2", tr.value)
	}

	// Now the tween runs: halfway then done.
	tr.update(0.25)
	if math.Abs(tr.value-0.6) > 0.01 {
		t.Errorf("value at tween halfway = %f, want ~0.6", tr.value)
	}
	tr.update(0.25)
	if !tr.done() || tr.value != 1 {
		t.Errorf("value = %f done=%v, want 1 and done", tr.value, tr.done())
	}
}

func TestTransitionTweenDelaySpillover(t *testing.T) {
	// A step that straddles the delay boundary spends the remainder
	// inside the tween rather than losing it.
	var tr transition
	tr.set(0)
	tr.tweenTo(1, 0.4, 0.1, ease.Linear)

	tr.update(0.3) // 0.1 delay + 0.2 tween = halfway
	if math.Abs(tr.value-0.5) > 0.01 {
		t.Errorf("value = %f, want ~0.5 after spillover", tr.value)
	}
}

func TestTransitionSpringConvergesAndSnaps(t *testing.T) {
	var tr transition
	tr.set(1)
	tr.springTo(0, springFor(60, 0.7, 1.1))

	for i := 0; i < 600; i++ {
		tr.update(1.0 / 60)
	}
	if !tr.done() {
		t.Fatal("spring should have settled within 10 seconds")
	}
	if tr.value != 0 {
		t.Errorf("value = %f, want exactly 0 after snap", tr.value)
	}
}

func TestTransitionSpringRetargetKeepsVelocity(t *testing.T) {
	var tr transition
	tr.set(0)
	tr.springTo(1, springFor(60, 0.4, 0.8))

	// Build up velocity, then retarget mid-flight.
	for i := 0; i < 5; i++ {
		tr.update(1.0 / 60)
	}
	if tr.vel == 0 {
		t.Fatal("expected nonzero velocity mid-flight")
	}
	vel := tr.vel
	tr.springTo(2, springFor(60, 0.4, 0.8))
	if tr.vel != vel {
		t.Errorf("retarget reset velocity: %f, want %f", tr.vel, vel)
	}

	// Starting a spring from idle begins with zero velocity.
	var fresh transition
	fresh.set(0)
	fresh.springTo(1, springFor(60, 0.4, 0.8))
	if fresh.vel != 0 {
		t.Errorf("fresh spring velocity = %f, want 0", fresh.vel)
	}
}

func TestTransitionTweenToSpringHandoff(t *testing.T) {
	var tr transition
	tr.set(0)
	tr.tweenTo(1, 0.6, 0, ease.Linear)
	tr.update(0.3)

	mid := tr.value
	tr.springTo(0, springFor(60, 0.7, 1.1))
	if tr.value != mid {
		t.Errorf("springTo changed the current value: %f, want %f", tr.value, mid)
	}
	for i := 0; i < 600; i++ {
		tr.update(1.0 / 60)
	}
	if tr.value != 0 {
		t.Errorf("value = %f, want 0 after release spring", tr.value)
	}
}

func TestTransitionSetStopsMotion(t *testing.T) {
	var tr transition
	tr.tweenTo(1, 1.0, 0, ease.Linear)
	tr.update(0.25)
	tr.set(0.9)
	tr.update(0.5)
	if tr.value != 0.9 {
		t.Errorf("value after set = %f, want 0.9 (motion stopped)", tr.value)
	}
	if !tr.done() {
		t.Fatal("set should leave the transition idle")
	}
}

func TestTransitionUpdateZeroAlloc(t *testing.T) {
	var tr transition
	tr.tweenTo(1, 10, 0, ease.InOutQuad)
	tr.update(0.01)
	result := testing.AllocsPerRun(100, func() {
		tr.update(0.001)
	})
	if result > 0 {
		t.Errorf("transition.update allocated %f times per run, want 0", result)
	}

	var sp transition
	sp.springTo(1, springFor(60, 0.4, 0.8))
	sp.update(1.0 / 60)
	result = testing.AllocsPerRun(100, func() {
		sp.update(1.0 / 60)
	})
	if result > 0 {
		t.Errorf("spring update allocated %f times per run, want 0", result)
	}
}
