package motion

import "math"

// LoopType names a continuous periodic animation.
type LoopType string

const (
	LoopFloat       LoopType = "float"
	LoopSway        LoopType = "sway"
	LoopPulse       LoopType = "pulse"
	LoopSpin        LoopType = "spin"
	LoopGlow        LoopType = "glow"
	LoopHeartbeat   LoopType = "heartbeat"
	LoopTwirl       LoopType = "twirl"
	LoopFlapBob     LoopType = "flap-bob"
	LoopFlyLeft     LoopType = "fly-left"
	LoopFlyRight    LoopType = "fly-right"
	LoopFlyUp       LoopType = "fly-up"
	LoopFlyDown     LoopType = "fly-down"
	LoopElegantSpin LoopType = "elegant-spin"
)

// Direction is the sense of rotation: 1 clockwise, -1 counter-clockwise.
// The zero value means clockwise.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Sign returns the rotation multiplier for d.
func (d Direction) Sign() float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// LoopClass decides whether a loop runs regardless of trigger state.
type LoopClass uint8

const (
	LoopDecorative LoopClass = iota // runs continuously from mount
	LoopGated                       // runs only once the layer is triggered
)

type loopSpec struct {
	class    LoopClass
	duration float64 // native period, ms
}

var loopTable = map[LoopType]loopSpec{
	LoopFloat:       {LoopDecorative, 3000},
	LoopSway:        {LoopDecorative, 3000},
	LoopPulse:       {LoopDecorative, 2000},
	LoopSpin:        {LoopDecorative, 4000},
	LoopGlow:        {LoopDecorative, 2000},
	LoopHeartbeat:   {LoopDecorative, 1500},
	LoopTwirl:       {LoopDecorative, 2500},
	LoopFlapBob:     {LoopDecorative, 1200},
	LoopFlyLeft:     {LoopDecorative, 4000},
	LoopFlyRight:    {LoopDecorative, 4000},
	LoopFlyUp:       {LoopDecorative, 4000},
	LoopFlyDown:     {LoopDecorative, 4000},
	LoopElegantSpin: {LoopGated, 6000},
}

// ClassifyLoop returns whether lp runs decoratively or only after its layer
// triggers. An explicit trigger binding always gates the loop.
func ClassifyLoop(lp *Loop) LoopClass {
	if lp == nil {
		return LoopDecorative
	}
	if lp.Trigger != "" {
		return LoopGated
	}
	return loopTable[lp.Type].class
}

// LoopDuration returns the effective loop period in ms.
func LoopDuration(lp *Loop) float64 {
	if lp.Duration > 0 {
		return lp.Duration
	}
	return loopTable[lp.Type].duration
}

// LoopPhase returns sin(2π·(t mod period)/period).
func LoopPhase(t, period float64) float64 {
	return math.Sin(2 * math.Pi * loopFrac(t, period))
}

// mirrorPhase repeats the wave every half period so a heartbeat beats twice
// per loop.
func mirrorPhase(t, period float64) float64 {
	return math.Sin(4 * math.Pi * loopFrac(t, period))
}

func loopFrac(t, period float64) float64 {
	f := math.Mod(t, period) / period
	if f < 0 {
		f++
	}
	return f
}

// LoopDelta returns the periodic contribution of lp at loop-local time t
// (ms since the loop started, after its delay). Negative t contributes
// nothing. LoopElegantSpin derives its spin and growth periods from the loop
// duration; layers carrying an ElegantSpin block use that instead.
func LoopDelta(lp *Loop, t float64) Delta {
	if lp == nil || t < 0 || invalid(t) {
		return identityDelta
	}
	period := LoopDuration(lp)
	if period <= 0 {
		return identityDelta
	}
	phase := LoopPhase(t, period)
	d := identityDelta

	switch lp.Type {
	case LoopFloat:
		d.Y = phase * -15
	case LoopSway:
		d.Rotation = phase * 5
	case LoopPulse:
		d.Scale = phase * 0.05
	case LoopSpin:
		d.Rotation = t / period * 360 * lp.Direction.Sign()
	case LoopGlow:
		a := math.Abs(phase)
		d.Filter = Filter{GlowRadius: 4 + 12*a, GlowAlpha: 0.3 + 0.5*a}
	case LoopHeartbeat:
		d.Scale = max(0, mirrorPhase(t, period)) * 0.15
	case LoopTwirl:
		d.Rotation = phase * 12
		d.Scale = math.Abs(phase) * 0.03
	case LoopFlapBob:
		d.Y = -math.Abs(phase) * 10
		d.Rotation = mirrorPhase(t, period) * 6
	case LoopFlyLeft:
		d.X = phase * -25
		d.Y = mirrorPhase(t, period) * 5
	case LoopFlyRight:
		d.X = phase * 25
		d.Y = mirrorPhase(t, period) * 5
	case LoopFlyUp:
		d.Y = phase * -25
		d.X = mirrorPhase(t, period) * 5
	case LoopFlyDown:
		d.Y = phase * 25
		d.X = mirrorPhase(t, period) * 5
	case LoopElegantSpin:
		spin := ElegantSpin{
			SpinDuration:   period,
			GrowthDuration: period,
			Direction:      lp.Direction,
			MinScale:       lp.MinScale,
			MaxScale:       lp.MaxScale,
		}
		rot, scale := ElegantSpinAt(&spin, t)
		d.Rotation = rot
		d.Scale = scale - 1
	}
	return d
}

// ElegantSpinAt returns the rotation (degrees) and absolute scale of an
// elegant spin at spin-local time t. The scale oscillates between MinScale
// and MaxScale with a phase shift chosen so that scale(0) == 1:
//
//	C = (min+max)/2, A = (max-min)/2, φ = asin(clamp((1-C)/A, -1, 1))
//	scale(t) = A·sin(2π·t/growth + φ) + C
//
// A degenerate range (A == 0) or missing growth period holds scale at 1.
func ElegantSpinAt(s *ElegantSpin, t float64) (rotation, scale float64) {
	if s == nil || t < 0 || invalid(t) {
		return 0, 1
	}
	if s.SpinDuration > 0 {
		rotation = t / s.SpinDuration * 360 * s.Direction.Sign()
	}

	lo, hi := s.MinScale, s.MaxScale
	if lo > hi {
		lo, hi = hi, lo
	}
	c := (lo + hi) / 2
	a := (hi - lo) / 2
	if a <= 1e-12 || s.GrowthDuration <= 0 || invalid(a) {
		return rotation, 1
	}
	phi := math.Asin(math.Max(-1, math.Min(1, (1-c)/a)))
	scale = a*math.Sin(2*math.Pi*t/s.GrowthDuration+phi) + c
	return rotation, scale
}

// elegantSpinDelta is the contribution of a layer-level elegant spin at
// time t since its owner started; the spin's own delay is applied here.
func elegantSpinDelta(s *ElegantSpin, t float64) Delta {
	if s == nil {
		return identityDelta
	}
	rot, scale := ElegantSpinAt(s, t-s.Delay)
	d := identityDelta
	d.Rotation = rot
	d.Scale = scale - 1
	return d
}
