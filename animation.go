package motion

import (
	"github.com/tanema/gween"
)

// TransitionState is the declarative variant a production entrance is in.
type TransitionState uint8

const (
	TransitionHidden   TransitionState = iota // pre-trigger pose
	TransitionEntering                        // tween running
	TransitionVisible                         // settled at identity
)

// Transition is the production-mode entrance. It moves exactly once from the
// hidden variant to the visible one when started, using the entrance type's
// native delay, duration and easing, and never re-evaluates unless it is
// hidden and started again. Call Update(dt) each frame.
//
// There is no global animation manager; the Scheduler owns one Transition
// per binding.
type Transition struct {
	typ    EntranceType
	tween  *gween.Tween
	delay  float64
	waited float64
	eased  float64
	state  TransitionState
}

// NewTransition creates a hidden transition for e. A nil entrance yields a
// transition whose every variant is identity.
func NewTransition(e *Entrance) *Transition {
	tr := &Transition{}
	if e == nil || e.Type == EntranceNone {
		tr.state = TransitionVisible
		return tr
	}
	tr.typ = e.Type
	tr.delay = EntranceDelay(e)
	if dur := EntranceDuration(e); dur > 0 {
		tr.tween = gween.New(0, 1, float32(dur), EntranceEasing(e.Type))
	}
	return tr
}

// State returns the current variant.
func (tr *Transition) State() TransitionState {
	return tr.state
}

// Done reports whether the transition has settled at the visible variant.
func (tr *Transition) Done() bool {
	return tr.state == TransitionVisible
}

// Start begins the hidden -> visible transition. It is a no-op unless the
// transition is hidden.
func (tr *Transition) Start() {
	if tr.state != TransitionHidden {
		return
	}
	if tr.tween == nil {
		tr.state = TransitionVisible
		return
	}
	tr.tween.Reset()
	tr.waited = 0
	tr.eased = 0
	tr.state = TransitionEntering
}

// Show jumps straight to the visible variant without playing the entrance.
func (tr *Transition) Show() {
	tr.state = TransitionVisible
	tr.eased = 1
}

// Hide returns to the hidden variant so the entrance can replay.
func (tr *Transition) Hide() {
	if tr.typ == "" {
		return
	}
	tr.state = TransitionHidden
	tr.eased = 0
	tr.waited = 0
}

// Update advances a running transition by dt ms. The delay is consumed
// first; any remainder of the frame feeds the tween.
func (tr *Transition) Update(dt float64) {
	if tr.state != TransitionEntering || dt <= 0 {
		return
	}
	if tr.waited < tr.delay {
		tr.waited += dt
		if tr.waited < tr.delay {
			return
		}
		dt = tr.waited - tr.delay
		tr.waited = tr.delay
	}
	val, finished := tr.tween.Update(float32(dt))
	tr.eased = float64(val)
	if finished {
		tr.state = TransitionVisible
		tr.eased = 1
	}
}

// Delta returns the entrance contribution of the current variant.
func (tr *Transition) Delta() Delta {
	switch tr.state {
	case TransitionHidden:
		return EntranceDelta(tr.typ, 0)
	case TransitionEntering:
		return EntranceDelta(tr.typ, tr.eased)
	default:
		return identityDelta
	}
}
