package motion

import (
	"github.com/tanema/gween/ease"
)

// EntranceType names a one-shot entrance transition.
type EntranceType string

const (
	EntranceNone       EntranceType = "none"
	EntranceFadeIn     EntranceType = "fade-in"
	EntranceSlideUp    EntranceType = "slide-up"
	EntranceSlideDown  EntranceType = "slide-down"
	EntranceSlideLeft  EntranceType = "slide-left"
	EntranceSlideRight EntranceType = "slide-right"
	EntranceZoomIn     EntranceType = "zoom-in"
	EntranceZoomOut    EntranceType = "zoom-out"
	EntranceBounce     EntranceType = "bounce"
	EntrancePopIn      EntranceType = "pop-in"
	EntranceTwirlIn    EntranceType = "twirl-in"
	EntranceBlurIn     EntranceType = "blur-in"
	EntranceDropIn     EntranceType = "drop-in"
)

// Delta is an additive transform contribution. Scale is added to a base
// factor of 1; Opacity multiplies the layer's opacity.
type Delta struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Opacity  float64
	Filter   Filter
}

// identityDelta contributes nothing.
var identityDelta = Delta{Opacity: 1}

// entranceSpec is one row of the entrance table: the fully hidden offset at
// progress 0, which decays to identity as eased progress reaches 1.
type entranceSpec struct {
	from     Delta
	fade     bool           // opacity follows eased progress
	easing   ease.TweenFunc // progress curve; spring types overshoot
	duration float64        // native duration, ms
	delay    float64        // native delay, ms
}

var entranceTable = map[EntranceType]entranceSpec{
	EntranceFadeIn:     {fade: true, easing: ease.OutQuad, duration: 600},
	EntranceSlideUp:    {from: Delta{Y: 30}, fade: true, easing: ease.OutCubic, duration: 800},
	EntranceSlideDown:  {from: Delta{Y: -30}, fade: true, easing: ease.OutCubic, duration: 800},
	EntranceSlideLeft:  {from: Delta{X: 50}, fade: true, easing: ease.OutCubic, duration: 800},
	EntranceSlideRight: {from: Delta{X: -50}, fade: true, easing: ease.OutCubic, duration: 800},
	EntranceZoomIn:     {from: Delta{Scale: -0.2}, fade: true, easing: ease.OutCubic, duration: 700},
	EntranceZoomOut:    {from: Delta{Scale: 0.4}, fade: true, easing: ease.OutCubic, duration: 700},
	EntranceBounce:     {from: Delta{Y: -40}, fade: true, easing: ease.OutBounce, duration: 1000},
	EntrancePopIn:      {from: Delta{Scale: -1}, easing: ease.OutBack, duration: 500},
	EntranceTwirlIn:    {from: Delta{Rotation: -180, Scale: -0.5}, fade: true, easing: ease.OutBack, duration: 900},
	EntranceBlurIn:     {from: Delta{Filter: Filter{Blur: 10}}, fade: true, easing: ease.OutQuad, duration: 800},
	EntranceDropIn:     {from: Delta{Y: -50}, fade: true, easing: ease.OutElastic, duration: 1200},
}

// EntranceDuration returns the effective duration in ms: the configured value
// when positive, otherwise the type's native duration.
func EntranceDuration(e *Entrance) float64 {
	if e == nil {
		return 0
	}
	if e.Duration > 0 {
		return e.Duration
	}
	return entranceTable[e.Type].duration
}

// EntranceDelay returns the effective delay in ms.
func EntranceDelay(e *Entrance) float64 {
	if e == nil {
		return 0
	}
	if e.Delay > 0 {
		return e.Delay
	}
	return entranceTable[e.Type].delay
}

// EntranceEasing returns the progress curve of typ. Unknown types ease
// linearly.
func EntranceEasing(typ EntranceType) ease.TweenFunc {
	if spec, ok := entranceTable[typ]; ok {
		return spec.easing
	}
	return ease.Linear
}

// Ease evaluates fn over unit progress p, pinning the endpoints exactly the
// way gween.Tween.Set does.
func Ease(fn ease.TweenFunc, p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return float64(fn(float32(p), 0, 1, 1))
}

// EntranceDelta maps eased progress e (0 hidden, 1 settled) to the transform
// contribution of typ. Spring easings may push e past 1 mid-transition.
// Unknown or empty types yield identity.
func EntranceDelta(typ EntranceType, e float64) Delta {
	spec, ok := entranceTable[typ]
	if !ok {
		return identityDelta
	}
	rest := 1 - e
	d := Delta{
		X:        spec.from.X * rest,
		Y:        spec.from.Y * rest,
		Rotation: spec.from.Rotation * rest,
		Scale:    spec.from.Scale * rest,
		Opacity:  1,
		Filter:   Filter{Blur: max(0, spec.from.Filter.Blur*rest)},
	}
	if spec.fade {
		d.Opacity = clamp01(e)
	}
	return d
}

// EntranceProgress returns the editor-mode linear progress of l's entrance at
// playhead: clamp((playhead - sequenceStart - delay) / duration, 0, 1).
func EntranceProgress(l *Layer, playhead float64) float64 {
	e := l.Entrance
	if e == nil {
		return 1
	}
	start := EntranceDelay(e)
	if l.Sequence != nil {
		start += l.Sequence.StartTime
	}
	dur := EntranceDuration(e)
	if dur <= 0 {
		if playhead >= start {
			return 1
		}
		return 0
	}
	return clamp01((playhead - start) / dur)
}

// entranceAt is the editor-mode entrance contribution of l at playhead.
func entranceAt(l *Layer, playhead float64) Delta {
	if l.Entrance == nil {
		return identityDelta
	}
	p := EntranceProgress(l, playhead)
	return EntranceDelta(l.Entrance.Type, Ease(EntranceEasing(l.Entrance.Type), p))
}
