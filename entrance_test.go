package motion

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSlideUpScenario(t *testing.T) {
	l := NewLayer("title", 0, 100, 200, 40)
	l.Entrance = &Entrance{Type: EntranceSlideUp, Delay: 200, Duration: 800}
	l.Sequence = &Sequence{StartTime: 0, Duration: 5000}

	ed := NewEditor(nil)
	ed.Seek(200)
	got := ed.Evaluate(l)
	assertNear(t, "y at 200", got.Y, 130)
	assertNear(t, "opacity at 200", got.Opacity, 0)

	ed.Seek(1000)
	got = ed.Evaluate(l)
	assertNear(t, "y at 1000", got.Y, 100)
	assertNear(t, "opacity at 1000", got.Opacity, 1)
}

func TestEntranceProgress(t *testing.T) {
	l := NewLayer("a", 0, 0, 10, 10)
	l.Entrance = &Entrance{Type: EntranceFadeIn, Delay: 100, Duration: 400}
	l.Sequence = &Sequence{StartTime: 1000, Duration: 2000}

	tests := []struct {
		playhead float64
		want     float64
	}{
		{0, 0},
		{1100, 0},
		{1300, 0.5},
		{1500, 1},
		{9000, 1},
	}
	for _, tt := range tests {
		assertNear(t, "progress", EntranceProgress(l, tt.playhead), tt.want)
	}
}

func TestEntranceNativeTiming(t *testing.T) {
	e := &Entrance{Type: EntrancePopIn}
	assertNear(t, "duration", EntranceDuration(e), 500)
	assertNear(t, "delay", EntranceDelay(e), 0)

	e.Duration = 250
	e.Delay = 50
	assertNear(t, "configured duration", EntranceDuration(e), 250)
	assertNear(t, "configured delay", EntranceDelay(e), 50)

	assertNear(t, "nil duration", EntranceDuration(nil), 0)
}

func TestEntranceDeltaEndpoints(t *testing.T) {
	for typ := range entranceTable {
		t.Run(string(typ), func(t *testing.T) {
			d := EntranceDelta(typ, 1)
			if d != identityDelta {
				t.Errorf("delta at 1 = %+v, want identity", d)
			}
		})
	}

	d := EntranceDelta(EntranceSlideLeft, 0)
	assertNear(t, "slide-left x", d.X, 50)
	assertNear(t, "slide-left opacity", d.Opacity, 0)

	d = EntranceDelta(EntrancePopIn, 0)
	assertNear(t, "pop-in scale", d.Scale, -1)
	assertNear(t, "pop-in opacity", d.Opacity, 1)

	d = EntranceDelta(EntranceBlurIn, 0.5)
	assertNear(t, "blur-in blur", d.Filter.Blur, 5)
}

func TestEntranceDeltaUnknownIsIdentity(t *testing.T) {
	if d := EntranceDelta("wobble", 0); d != identityDelta {
		t.Errorf("unknown type = %+v, want identity", d)
	}
	if d := EntranceDelta(EntranceNone, 0); d != identityDelta {
		t.Errorf("none = %+v, want identity", d)
	}
}

func TestEaseEndpointsPinned(t *testing.T) {
	for _, fn := range []ease.TweenFunc{ease.Linear, ease.OutBack, ease.OutBounce, ease.OutElastic} {
		if Ease(fn, -0.5) != 0 || Ease(fn, 0) != 0 {
			t.Error("ease below 0 should be 0")
		}
		if Ease(fn, 1) != 1 || Ease(fn, 2) != 1 {
			t.Error("ease at 1 should be 1")
		}
	}
	if got := Ease(ease.OutBack, 0.7); got <= 1 {
		t.Errorf("OutBack(0.7) = %v, want overshoot past 1", got)
	}
}

func TestEntranceEasingUnknownIsLinear(t *testing.T) {
	assertNear(t, "linear", Ease(EntranceEasing("wobble"), 0.25), 0.25)
}
