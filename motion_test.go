package motion

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) || !r.Contains(30, 30) {
		t.Error("edges should be inside")
	}
	if r.Contains(31, 15) {
		t.Error("(31,15) should be outside")
	}
}

func TestRectIntersectionRatio(t *testing.T) {
	vp := Rect{X: 0, Y: 0, Width: 400, Height: 800}
	tests := []struct {
		name string
		r    Rect
		want float64
	}{
		{"inside", Rect{X: 0, Y: 100, Width: 100, Height: 100}, 1},
		{"below", Rect{X: 0, Y: 900, Width: 100, Height: 100}, 0},
		{"touching", Rect{X: 0, Y: 800, Width: 100, Height: 100}, 0},
		{"tenth", Rect{X: 0, Y: 790, Width: 100, Height: 100}, 0.1},
		{"half", Rect{X: 0, Y: 750, Width: 100, Height: 100}, 0.5},
		{"empty", Rect{X: 0, Y: 100, Width: 0, Height: 100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "ratio", tt.r.IntersectionRatio(vp), tt.want)
		})
	}
}

func TestRectBottom(t *testing.T) {
	assertNear(t, "bottom", Rect{Y: 40, Height: 25}.Bottom(), 65)
}

func TestModeString(t *testing.T) {
	if ModeEditor.String() != "editor" || ModeProduction.String() != "production" {
		t.Errorf("mode names: %s, %s", ModeEditor, ModeProduction)
	}
	if Mode(9).String() != "unknown" {
		t.Error("out-of-range mode should be unknown")
	}
}

func TestFilterIsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Error("zero filter should report IsZero")
	}
	if (Filter{Blur: 1}).IsZero() {
		t.Error("blurred filter should not report IsZero")
	}
}
