package motion

import (
	"math"
	"testing"
)

func TestSequenceWindowForcesOpacity(t *testing.T) {
	l := NewLayer("late", 0, 0, 50, 50)
	l.Sequence = &Sequence{StartTime: 1000, Duration: 500}
	l.Keyframes = []Keyframe{{Time: 0, Property: PropOpacity, Value: 1}}

	ed := NewEditor(nil)
	for _, playhead := range []float64{0, 300, 999, 1501, 4000} {
		ed.Seek(playhead)
		if got := ed.Evaluate(l).Opacity; got != 0 {
			t.Errorf("opacity at %v = %v, want 0", playhead, got)
		}
	}
	ed.Seek(1200)
	assertNear(t, "inside", ed.Evaluate(l).Opacity, 1)
}

func TestCompositorPure(t *testing.T) {
	l := NewLayer("busy", 10, 20, 100, 50)
	l.Entrance = &Entrance{Type: EntranceTwirlIn}
	l.Loop = &Loop{Type: LoopTwirl}
	l.Keyframes = []Keyframe{
		{Time: 0, Property: PropX, Value: 10},
		{Time: 900, Property: PropX, Value: 70},
	}
	l.MotionPath = &MotionPath{Points: []PathPoint{{X: 10, Y: 20}, {X: 90, Y: 40, Rotation: 30}}, Duration: 1500}

	for _, mode := range []Mode{ModeEditor, ModeProduction} {
		reg := NewRegistry()
		reg.Set("busy", 100)
		c := NewCompositor(mode, nil, reg, nil)
		for _, now := range []float64{0, 333.3, 777, 2500} {
			a := c.EvaluateAt(l, now)
			b := c.EvaluateAt(l, now)
			if a != b {
				t.Errorf("%s at %v: %+v != %+v", mode, now, a, b)
			}
		}
	}
}

func TestCompositorNilLayer(t *testing.T) {
	c := NewCompositor(ModeEditor, nil, nil, nil)
	if got := c.EvaluateAt(nil, 100); got != IdentityTransform {
		t.Errorf("nil layer = %+v, want identity", got)
	}
}

func TestCompositorDegradesInvalidConfig(t *testing.T) {
	l := NewLayer("bad", math.NaN(), 5, 10, 10)
	l.Scale = -3
	l.Opacity = math.Inf(1)
	l.MotionPath = &MotionPath{Points: []PathPoint{{X: 1}}, Duration: 100}
	l.Loop = &Loop{Type: "wiggle"}

	c := NewCompositor(ModeEditor, nil, nil, nil)
	got := c.EvaluateAt(l, 500)
	assertNear(t, "x", got.X, 0)
	assertNear(t, "y", got.Y, 5)
	assertNear(t, "scale", got.Scale, 1)
	assertNear(t, "opacity", got.Opacity, 1)
	assertNear(t, "rotation", got.Rotation, 0)
}

func TestCompositorFlipBeneathMotion(t *testing.T) {
	l := NewLayer("mirror", 100, 0, 10, 10)
	l.FlipHorizontal = true
	l.Scale = 2
	l.MotionPath = &MotionPath{Points: []PathPoint{{X: 100}, {X: 200}}, Duration: 1000}

	c := NewCompositor(ModeEditor, nil, nil, nil)
	got := c.EvaluateAt(l, 500)
	assertNear(t, "x", got.X, 150)
	assertNear(t, "scaleX", got.ScaleX, -2)
	assertNear(t, "scaleY", got.ScaleY, 2)
	assertNear(t, "scale", got.Scale, 2)
}

func TestProductionTimelineStartsAtTrigger(t *testing.T) {
	l := NewLayer("kf", 0, 0, 10, 10)
	l.Keyframes = []Keyframe{
		{Time: 0, Property: PropX, Value: 0},
		{Time: 1000, Property: PropX, Value: 100},
	}
	reg := NewRegistry()
	c := NewCompositor(ModeProduction, nil, reg, nil)

	assertNear(t, "untriggered", c.EvaluateAt(l, 5000).X, 0)
	reg.Set("kf", 5000)
	assertNear(t, "half", c.EvaluateAt(l, 5500).X, 50)
}

func TestProductionLoopGating(t *testing.T) {
	deco := NewLayer("deco", 0, 0, 10, 10)
	deco.Loop = &Loop{Type: LoopFloat, Duration: 1000}
	gated := NewLayer("gated", 0, 0, 10, 10)
	gated.Loop = &Loop{Type: LoopFloat, Duration: 1000, Trigger: TriggerScroll}

	reg := NewRegistry()
	c := NewCompositor(ModeProduction, nil, reg, nil)

	assertNear(t, "decorative runs", c.EvaluateAt(deco, 250).Y, -15)
	assertNear(t, "gated idle", c.EvaluateAt(gated, 250).Y, 0)

	reg.Set("gated", 1000)
	assertNear(t, "gated from trigger", c.EvaluateAt(gated, 1250).Y, -15)
}

func TestElegantSpinBlockContinuousAtTrigger(t *testing.T) {
	l := NewLayer("flower", 0, 0, 40, 40)
	l.ElegantSpin = &ElegantSpin{SpinDuration: 4000, GrowthDuration: 2000, MinScale: 0.7, MaxScale: 1.3}

	reg := NewRegistry()
	c := NewCompositor(ModeProduction, nil, reg, nil)
	before := c.EvaluateAt(l, 999)
	reg.Set("flower", 1000)
	at := c.EvaluateAt(l, 1000)

	assertNear(t, "scale before", before.Scale, 1)
	assertNear(t, "scale at trigger", at.Scale, 1)
	assertNear(t, "rotation at trigger", at.Rotation, 0)
}

func TestProductionIgnoresSequenceAndEntrance(t *testing.T) {
	l := NewLayer("p", 0, 50, 10, 10)
	l.Sequence = &Sequence{StartTime: 1000, Duration: 10}
	l.Entrance = &Entrance{Type: EntranceSlideUp}

	c := NewCompositor(ModeProduction, nil, nil, nil)
	got := c.EvaluateAt(l, 0)
	assertNear(t, "opacity", got.Opacity, 1)
	assertNear(t, "y", got.Y, 50)
}

func TestApplyDelta(t *testing.T) {
	base := Transform{X: 10, Y: 20, Rotation: 5, Scale: 2, ScaleX: -2, ScaleY: 2, Opacity: 0.8}
	got := ApplyDelta(base, Delta{X: 1, Y: -2, Rotation: 10, Scale: -0.5, Opacity: 0.5, Filter: Filter{Blur: 3}})
	assertNear(t, "x", got.X, 11)
	assertNear(t, "y", got.Y, 18)
	assertNear(t, "rotation", got.Rotation, 15)
	assertNear(t, "scale", got.Scale, 1)
	assertNear(t, "scaleX", got.ScaleX, -1)
	assertNear(t, "opacity", got.Opacity, 0.4)
	assertNear(t, "blur", got.Filter.Blur, 3)

	got = ApplyDelta(base, Delta{Scale: -3, Opacity: 1})
	assertNear(t, "clamped scale", got.Scale, 0)
}

func TestCompositorEvaluateUsesClock(t *testing.T) {
	l := NewLayer("c", 0, 0, 10, 10)
	l.Keyframes = []Keyframe{{Time: 0, Property: PropY, Value: 0}, {Time: 100, Property: PropY, Value: 100}}
	clock := NewScrubberClock(40)
	c := NewCompositor(ModeEditor, clock, nil, nil)
	assertNear(t, "y", c.Evaluate(l).Y, 40)
	clock.Seek(-50)
	assertNear(t, "clamped seek", c.Evaluate(l).Y, 0)
}
