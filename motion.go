package motion

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Size is a measured or configured width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IntersectionRatio returns the fraction of r's area that lies inside other,
// in [0, 1]. A rectangle with no area reports 0.
func (r Rect) IntersectionRatio(other Rect) float64 {
	area := r.Width * r.Height
	if area <= 0 {
		return 0
	}
	w := min(r.X+r.Width, other.X+other.Width) - max(r.X, other.X)
	h := min(r.Y+r.Height, other.Y+other.Height) - max(r.Y, other.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h / area
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Mode selects the evaluation regime of a Compositor.
type Mode uint8

const (
	ModeEditor     Mode = iota // scrubbable playhead, entrance math summed per tick
	ModeProduction             // wall clock, trigger-driven declarative entrances
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeEditor:
		return "editor"
	case ModeProduction:
		return "production"
	default:
		return "unknown"
	}
}

// Filter carries the non-geometric visual effects of a transform.
// The zero value means no filter.
type Filter struct {
	Blur       float64 // gaussian blur radius in px
	GlowRadius float64 // drop-shadow glow radius in px
	GlowAlpha  float64 // glow opacity in [0, 1]
}

// IsZero reports whether the filter has no effect.
func (f Filter) IsZero() bool {
	return f.Blur == 0 && f.GlowRadius == 0 && f.GlowAlpha == 0
}

// Transform is the final per-layer output for one instant, consumed by the
// rendering surface. X and Y are absolute canvas positions of the layer's
// top-left corner; ScaleX and ScaleY already carry the mirror flips.
type Transform struct {
	X, Y     float64
	Rotation float64 // degrees, clockwise
	Scale    float64 // uniform motion scale without flips
	ScaleX   float64
	ScaleY   float64
	Opacity  float64
	Filter   Filter
}
