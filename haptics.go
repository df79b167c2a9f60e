package genie

// Haptics receives the two tactile pulse signals a Driver emits.
//
// Engage fires immediately on every activation flip, both when the gesture
// engages and when it releases. Settle fires once per gesture, a short
// delay after engagement completes, and is suppressed if the pointer is
// released before the delay elapses.
type Haptics interface {
	Engage()
	Settle()
}

// HapticsFunc adapts plain callbacks to the Haptics interface. Nil fields
// are ignored.
type HapticsFunc struct {
	OnEngage func()
	OnSettle func()
}

// Engage calls OnEngage if set.
func (h HapticsFunc) Engage() {
	if h.OnEngage != nil {
		h.OnEngage()
	}
}

// Settle calls OnSettle if set.
func (h HapticsFunc) Settle() {
	if h.OnSettle != nil {
		h.OnSettle()
	}
}
