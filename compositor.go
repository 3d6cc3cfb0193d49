package motion

// strategy is the per-mode half of the compositor: it decides which clock
// each primitive reads and how entrances and the sequence window apply. Both
// implementations share the keyframe, path and loop resolvers.
type strategy interface {
	mode() Mode
	// localTime is the time keyframes and motion paths are sampled at.
	localTime(l *Layer, now float64) float64
	// loopTime is the time a loop has been running, and whether it runs.
	loopTime(l *Layer, gated bool, now float64) (float64, bool)
	// entrance is the entrance contribution summed by the compositor.
	entrance(l *Layer, now float64) Delta
	// hidden reports whether opacity is forced to 0.
	hidden(l *Layer, now float64) bool
}

// editorStrategy evaluates everything from the playhead so any instant can
// be scrubbed to.
type editorStrategy struct{}

func (editorStrategy) mode() Mode { return ModeEditor }

func (editorStrategy) localTime(l *Layer, now float64) float64 {
	if l.Sequence != nil {
		return now - l.Sequence.StartTime
	}
	return now
}

func (s editorStrategy) loopTime(l *Layer, _ bool, now float64) (float64, bool) {
	return s.localTime(l, now), true
}

func (editorStrategy) entrance(l *Layer, now float64) Delta {
	return entranceAt(l, now)
}

func (editorStrategy) hidden(l *Layer, now float64) bool {
	return l.Sequence != nil && !l.Sequence.Contains(now)
}

// productionStrategy evaluates from the wall clock. Timelines start when the
// layer triggers; entrances are left to the declarative Transition.
type productionStrategy struct {
	registry *Registry
}

func (productionStrategy) mode() Mode { return ModeProduction }

func (s productionStrategy) localTime(l *Layer, now float64) float64 {
	if at, ok := s.registry.TriggeredAt(l.ID); ok {
		return now - at
	}
	return 0
}

func (s productionStrategy) loopTime(l *Layer, gated bool, now float64) (float64, bool) {
	if !gated {
		return now, true
	}
	at, ok := s.registry.TriggeredAt(l.ID)
	if !ok {
		return 0, false
	}
	return now - at, true
}

func (productionStrategy) entrance(*Layer, float64) Delta { return identityDelta }

func (productionStrategy) hidden(*Layer, float64) bool { return false }

// Compositor merges the keyframe, path, loop, entrance and anchoring
// contributions of a layer into its final Transform. Evaluation is a pure
// function of (layer, time) and the two shared stores, and never fails:
// malformed configuration degrades to identity.
type Compositor struct {
	strategy strategy
	clock    Clock
	anchors  *Anchors
}

// NewCompositor creates a compositor for mode. clock supplies Evaluate's
// time; registry is consulted in production mode only and anchors may be nil.
func NewCompositor(mode Mode, clock Clock, registry *Registry, anchors *Anchors) *Compositor {
	var s strategy = editorStrategy{}
	if mode == ModeProduction {
		if registry == nil {
			registry = NewRegistry()
		}
		s = productionStrategy{registry: registry}
	}
	if anchors == nil {
		anchors = NewAnchors(nil)
	}
	return &Compositor{strategy: s, clock: clock, anchors: anchors}
}

// Mode returns the compositor's evaluation regime.
func (c *Compositor) Mode() Mode {
	return c.strategy.mode()
}

// Anchors returns the anchoring resolver.
func (c *Compositor) Anchors() *Anchors {
	return c.anchors
}

// Evaluate computes l's transform at the clock's current time.
func (c *Compositor) Evaluate(l *Layer) Transform {
	var now float64
	if c.clock != nil {
		now = c.clock.Time()
	}
	return c.EvaluateAt(l, now)
}

// IdentityTransform is the neutral output for a missing layer.
var IdentityTransform = Transform{Scale: 1, ScaleX: 1, ScaleY: 1, Opacity: 1}

// EvaluateAt computes l's transform at time now.
func (c *Compositor) EvaluateAt(l *Layer, now float64) Transform {
	if l == nil {
		return IdentityTransform
	}
	if invalid(now) {
		now = 0
	}
	s := c.strategy

	local := s.localTime(l, now)

	// 1. keyframes over the static base
	base := baseValues(l)
	kv := sanitizeValues(resolveKeyframes(l, base, local), base)

	// 2. motion path as a relative translation
	pdx, pdy, prot, pscale := pathOffset(l, local)

	// 3. loops; an ElegantSpin block replaces an elegant-spin loop's
	// derived parameters and is always trigger-gated
	loop := identityDelta
	if l.Loop != nil && !(l.Loop.Type == LoopElegantSpin && l.ElegantSpin != nil) {
		if t, ok := s.loopTime(l, ClassifyLoop(l.Loop) == LoopGated, now); ok {
			loop = LoopDelta(l.Loop, t-l.Loop.Delay)
		}
	}
	spin := identityDelta
	if l.ElegantSpin != nil {
		if t, ok := s.loopTime(l, true, now); ok {
			spin = elegantSpinDelta(l.ElegantSpin, t)
		}
	}

	// 4. sum; flips multiply beneath the motion scale
	scale := kv.scale * pscale * (1 + loop.Scale + spin.Scale)
	out := Transform{
		X:        kv.x + pdx + loop.X + spin.X,
		Y:        kv.y + pdy + loop.Y + spin.Y,
		Rotation: kv.rotation + prot + loop.Rotation + spin.Rotation,
		Scale:    max(0, scale),
		Opacity:  kv.opacity,
		Filter: Filter{
			Blur:       loop.Filter.Blur,
			GlowRadius: loop.Filter.GlowRadius,
			GlowAlpha:  loop.Filter.GlowAlpha,
		},
	}
	out.ScaleX, out.ScaleY = out.Scale, out.Scale
	if l.FlipHorizontal {
		out.ScaleX = -out.ScaleX
	}
	if l.FlipVertical {
		out.ScaleY = -out.ScaleY
	}

	// 5. entrance (identity in production mode)
	out = ApplyDelta(out, s.entrance(l, now))

	// 6. sequence window
	if s.hidden(l, now) {
		out.Opacity = 0
	}

	// 7. anchoring
	out.Y += c.anchors.YShift(l)
	return out
}

// ApplyDelta layers an entrance contribution onto t: translation and
// rotation add, scale and opacity multiply, blur adds.
func ApplyDelta(t Transform, d Delta) Transform {
	f := 1 + d.Scale
	if f < 0 {
		f = 0
	}
	t.X += d.X
	t.Y += d.Y
	t.Rotation += d.Rotation
	t.Scale *= f
	t.ScaleX *= f
	t.ScaleY *= f
	t.Opacity = clamp01(t.Opacity * d.Opacity)
	t.Filter.Blur += d.Filter.Blur
	return t
}

// baseValues returns l's static configuration with invalid fields replaced
// by their neutral values.
func baseValues(l *Layer) keyframeValues {
	v := keyframeValues{x: l.X, y: l.Y, scale: l.Scale, rotation: l.Rotation, opacity: l.Opacity}
	if v.scale <= 0 {
		v.scale = 1
	}
	return sanitizeValues(v, keyframeValues{scale: 1, opacity: 1})
}

func sanitizeValues(v, fallback keyframeValues) keyframeValues {
	if invalid(v.x) {
		v.x = fallback.x
	}
	if invalid(v.y) {
		v.y = fallback.y
	}
	if invalid(v.scale) || v.scale < 0 {
		v.scale = fallback.scale
	}
	if invalid(v.rotation) {
		v.rotation = fallback.rotation
	}
	if invalid(v.opacity) {
		v.opacity = fallback.opacity
	}
	v.opacity = clamp01(v.opacity)
	return v
}
