package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the visible window of the scroll container that primary
// sections are laid out in. Scroll-triggered entrances test their layer's
// bounds against Visible.
type Viewport struct {
	// Y is the scroll offset of the window's top edge in content coordinates.
	Y float64
	// Width and Height are the window size.
	Width, Height float64
	// ContentHeight clamps scrolling to [0, ContentHeight-Height] when
	// positive.
	ContentHeight float64

	scroll *gween.Tween
}

// NewViewport creates a viewport of the given size scrolled to the top.
func NewViewport(w, h float64) *Viewport {
	return &Viewport{Width: w, Height: h}
}

// Visible returns the window rectangle in content coordinates.
func (v *Viewport) Visible() Rect {
	return Rect{X: 0, Y: v.Y, Width: v.Width, Height: v.Height}
}

// ScrollTo animates the scroll offset to y over duration ms. A non-positive
// duration jumps immediately.
func (v *Viewport) ScrollTo(y, duration float64, easeFn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 {
		v.scroll = nil
		v.Y = y
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutQuad
	}
	v.scroll = gween.New(float32(v.Y), float32(y), float32(duration), easeFn)
}

// ScrollBy moves the scroll offset by dy immediately, cancelling any running
// ScrollTo.
func (v *Viewport) ScrollBy(dy float64) {
	v.scroll = nil
	v.Y = v.clamp(v.Y + dy)
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scroll != nil
}

// update advances a running ScrollTo by dt ms. Called once per frame.
func (v *Viewport) update(dt float64) {
	if v.scroll == nil {
		return
	}
	y, done := v.scroll.Update(float32(dt))
	v.Y = v.clamp(float64(y))
	if done {
		v.scroll = nil
	}
}

func (v *Viewport) clamp(y float64) float64 {
	if v.ContentHeight > 0 {
		y = min(y, v.ContentHeight-v.Height)
	}
	return max(0, y)
}
