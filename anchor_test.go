package motion

import (
	"errors"
	"testing"
)

func anchoredPair() (*Layer, *Layer) {
	title := NewLayer("title", 20, 100, 200, 50)
	body := NewLayer("body", 20, 0, 200, 30)
	body.Anchoring = &Anchoring{IsRelative: true, TargetID: "title", Edge: EdgeBottom, Offset: 10}
	return title, body
}

func TestYShiftConfiguredHeight(t *testing.T) {
	title, body := anchoredPair()
	a := NewAnchors(nil)
	a.Index(title, body)
	assertNear(t, "shift", a.YShift(body), 160)
	assertNear(t, "target shift", a.YShift(title), 0)
}

func TestYShiftFollowsMeasuredHeight(t *testing.T) {
	title, body := anchoredPair()
	a := NewAnchors(nil)
	a.Index(title, body)
	c := NewCompositor(ModeEditor, nil, nil, a)

	const h1, h2 = 64.0, 131.5
	a.Dimensions().Set("title", 200, h1)
	y1 := c.EvaluateAt(body, 0).Y
	a.Dimensions().Set("title", 200, h2)
	y2 := c.EvaluateAt(body, 0).Y
	assertNear(t, "y2-y1", y2-y1, h2-h1)
}

func TestYShiftUnresolvable(t *testing.T) {
	a := NewAnchors(nil)

	orphan := NewLayer("orphan", 0, 40, 10, 10)
	orphan.Anchoring = &Anchoring{IsRelative: true, TargetID: "missing"}
	self := NewLayer("self", 0, 40, 10, 10)
	self.Anchoring = &Anchoring{IsRelative: true, TargetID: "self"}
	notRelative := NewLayer("flat", 0, 40, 10, 10)
	notRelative.Anchoring = &Anchoring{TargetID: "self"}
	a.Index(orphan, self, notRelative)

	for _, l := range []*Layer{orphan, self, notRelative} {
		if got := a.YShift(l); got != 0 {
			t.Errorf("%s shift = %v, want 0", l.ID, got)
		}
	}
}

func TestAnchorsValidate(t *testing.T) {
	a := NewAnchors(nil)
	x := NewLayer("x", 0, 0, 10, 10)
	x.Anchoring = &Anchoring{IsRelative: true, TargetID: "y"}
	y := NewLayer("y", 0, 0, 10, 10)
	y.Anchoring = &Anchoring{IsRelative: true, TargetID: "x"}
	z := NewLayer("z", 0, 0, 10, 10)
	z.Anchoring = &Anchoring{IsRelative: true, TargetID: "nowhere"}
	a.Index(x, y, z)

	err := a.Validate()
	if !errors.Is(err, ErrAnchorCycle) {
		t.Errorf("expected ErrAnchorCycle, got %v", err)
	}
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
	if a.YShift(x) != 0 || a.YShift(y) != 0 {
		t.Error("cyclic layers should not shift")
	}
}

func TestAnchorsAcrossStages(t *testing.T) {
	scene := &Scene{
		Sections: []Section{{ID: "s", Layers: []*Layer{NewLayer("banner", 0, 300, 100, 40)}}},
		Stages:   []Stage{{ID: "deco", Layers: []*Layer{NewLayer("ribbon", 0, 0, 100, 10)}}},
	}
	scene.Stages[0].Layers[0].Anchoring = &Anchoring{IsRelative: true, TargetID: "banner"}
	a := NewAnchors(nil)
	scene.Index(a)
	assertNear(t, "shift", a.YShift(scene.Stages[0].Layers[0]), 340)
}
