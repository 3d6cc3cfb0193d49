package motion

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// LayerType is the visual content kind of a layer. Types backed by
// asynchronously loaded media defer their entrance until the content is
// ready (see Layer.NeedsAsset).
type LayerType string

const (
	LayerText    LayerType = "text"
	LayerShape   LayerType = "shape"
	LayerImage   LayerType = "image"
	LayerGIF     LayerType = "gif"
	LayerSticker LayerType = "sticker"
	LayerLottie  LayerType = "lottie"
	LayerVideo   LayerType = "video"
	LayerIcon    LayerType = "icon"
)

// Property names a keyframeable layer property.
type Property string

const (
	PropX        Property = "x"
	PropY        Property = "y"
	PropScale    Property = "scale"
	PropRotation Property = "rotation"
	PropOpacity  Property = "opacity"
)

// Keyframe is a time-stamped value for one property. Time is in ms relative
// to the layer's sequence start.
type Keyframe struct {
	Time     float64  `yaml:"time" json:"time"`
	Property Property `yaml:"property" json:"property"`
	Value    float64  `yaml:"value" json:"value"`
}

// Entrance configures the one-shot transition played when the layer's
// trigger fires. Zero Duration selects the entrance type's native duration.
type Entrance struct {
	Type     EntranceType `yaml:"type" json:"type"`
	Trigger  TriggerKind  `yaml:"trigger,omitempty" json:"trigger,omitempty"`
	Delay    float64      `yaml:"delay,omitempty" json:"delay,omitempty"`
	Duration float64      `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// Loop configures continuous periodic motion. A non-empty Trigger binds the
// loop to the layer's trigger state regardless of its type classification.
type Loop struct {
	Type      LoopType    `yaml:"type" json:"type"`
	Trigger   TriggerKind `yaml:"trigger,omitempty" json:"trigger,omitempty"`
	Delay     float64     `yaml:"delay,omitempty" json:"delay,omitempty"`
	Duration  float64     `yaml:"duration,omitempty" json:"duration,omitempty"`
	Direction Direction   `yaml:"direction,omitempty" json:"direction,omitempty"`
	MinScale  float64     `yaml:"minScale,omitempty" json:"minScale,omitempty"`
	MaxScale  float64     `yaml:"maxScale,omitempty" json:"maxScale,omitempty"`
}

// PathPoint is one authored point of a motion path in absolute canvas
// coordinates.
type PathPoint struct {
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Rotation float64 `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Scale    float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
}

// MotionPath is an authored route the layer travels along over Duration ms.
type MotionPath struct {
	Points   []PathPoint `yaml:"points" json:"points"`
	Duration float64     `yaml:"duration" json:"duration"`
	Loop     bool        `yaml:"loop,omitempty" json:"loop,omitempty"`
}

// ElegantSpin composes a continuous spin with a scale oscillation that
// starts at exactly 1.0.
type ElegantSpin struct {
	SpinDuration   float64   `yaml:"spinDuration" json:"spinDuration"`
	GrowthDuration float64   `yaml:"growthDuration" json:"growthDuration"`
	Direction      Direction `yaml:"direction,omitempty" json:"direction,omitempty"`
	MinScale       float64   `yaml:"minScale" json:"minScale"`
	MaxScale       float64   `yaml:"maxScale" json:"maxScale"`
	Delay          float64   `yaml:"delay,omitempty" json:"delay,omitempty"`
}

// Sequence is the editor timeline window in which the layer is visible.
type Sequence struct {
	StartTime float64 `yaml:"startTime" json:"startTime"`
	Duration  float64 `yaml:"duration" json:"duration"`
}

// Contains reports whether t lies inside [StartTime, StartTime+Duration].
func (s Sequence) Contains(t float64) bool {
	return t >= s.StartTime && t <= s.StartTime+s.Duration
}

// Edge selects which edge of the anchor target a layer is placed against.
type Edge string

const EdgeBottom Edge = "bottom"

// Anchoring places a layer vertically below another layer's live-measured
// bottom edge.
type Anchoring struct {
	IsRelative bool    `yaml:"isRelative" json:"isRelative"`
	TargetID   string  `yaml:"targetId" json:"targetId"`
	Edge       Edge    `yaml:"edge,omitempty" json:"edge,omitempty"`
	Offset     float64 `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// Layer is the configuration of one visual element. Layers are authored
// externally; the engine only reads them.
type Layer struct {
	ID   string    `yaml:"id" json:"id"`
	Type LayerType `yaml:"type,omitempty" json:"type,omitempty"`

	// Geometry
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`

	// Base transform
	Scale          float64 `yaml:"scale" json:"scale"`
	Rotation       float64 `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Opacity        float64 `yaml:"opacity" json:"opacity"`
	FlipHorizontal bool    `yaml:"flipHorizontal,omitempty" json:"flipHorizontal,omitempty"`
	FlipVertical   bool    `yaml:"flipVertical,omitempty" json:"flipVertical,omitempty"`
	ZIndex         int     `yaml:"zIndex,omitempty" json:"zIndex,omitempty"`

	// Animation
	Entrance    *Entrance    `yaml:"entrance,omitempty" json:"entrance,omitempty"`
	Loop        *Loop        `yaml:"loop,omitempty" json:"loop,omitempty"`
	Keyframes   []Keyframe   `yaml:"keyframes,omitempty" json:"keyframes,omitempty"`
	MotionPath  *MotionPath  `yaml:"motionPath,omitempty" json:"motionPath,omitempty"`
	ElegantSpin *ElegantSpin `yaml:"elegantSpin,omitempty" json:"elegantSpin,omitempty"`
	Sequence    *Sequence    `yaml:"sequence,omitempty" json:"sequence,omitempty"`
	Anchoring   *Anchoring   `yaml:"anchoring,omitempty" json:"anchoring,omitempty"`
}

// NewLayer returns a layer with identity base transform.
func NewLayer(id string, x, y, w, h float64) *Layer {
	return &Layer{ID: id, X: x, Y: y, Width: w, Height: h, Scale: 1, Opacity: 1}
}

// UnmarshalYAML decodes a layer, defaulting omitted scale and opacity to 1.
func (l *Layer) UnmarshalYAML(value *yaml.Node) error {
	type plain Layer
	p := plain{Scale: 1, Opacity: 1}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*l = Layer(p)
	return nil
}

// Bounds returns the layer's configured static rectangle.
func (l *Layer) Bounds() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// NeedsAsset reports whether the layer's content loads asynchronously.
func (l *Layer) NeedsAsset() bool {
	switch l.Type {
	case LayerImage, LayerGIF, LayerSticker, LayerLottie, LayerVideo:
		return true
	}
	return false
}

// TriggerKind returns the effective entrance trigger. Layers without an
// entrance fire on load.
func (l *Layer) TriggerKind() TriggerKind {
	if l.Entrance == nil || l.Entrance.Trigger == "" {
		return TriggerLoad
	}
	return l.Entrance.Trigger
}

// ConfigError describes a malformed or missing animation setting. It is never
// fatal: the engine degrades the field to its neutral value.
type ConfigError struct {
	LayerID string
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layer %q: %s: %s", e.LayerID, e.Field, e.Reason)
}

func invalid(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Validate reports every malformed setting on the layer as a joined error of
// *ConfigError values. A nil result means the layer is well-formed.
func (l *Layer) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &ConfigError{LayerID: l.ID, Field: field, Reason: reason})
	}

	if l.ID == "" {
		bad("id", "empty")
	}
	if invalid(l.X) || invalid(l.Y) {
		bad("position", "not finite")
	}
	if invalid(l.Scale) || l.Scale <= 0 {
		bad("scale", "must be positive")
	}
	if invalid(l.Opacity) || l.Opacity < 0 || l.Opacity > 1 {
		bad("opacity", "must be within [0, 1]")
	}
	for i := 1; i < len(l.Keyframes); i++ {
		if l.Keyframes[i].Time < l.Keyframes[i-1].Time {
			bad("keyframes", "not sorted by time")
			break
		}
	}
	for _, kf := range l.Keyframes {
		switch kf.Property {
		case PropX, PropY, PropScale, PropRotation, PropOpacity:
		default:
			bad("keyframes", fmt.Sprintf("unknown property %q", kf.Property))
		}
	}
	if e := l.Entrance; e != nil {
		if _, ok := entranceTable[e.Type]; !ok && e.Type != EntranceNone {
			bad("entrance.type", fmt.Sprintf("unknown type %q", e.Type))
		}
		if e.Duration < 0 || e.Delay < 0 {
			bad("entrance", "negative timing")
		}
	}
	if lp := l.Loop; lp != nil {
		if _, ok := loopTable[lp.Type]; !ok {
			bad("loop.type", fmt.Sprintf("unknown type %q", lp.Type))
		}
		if lp.Duration < 0 {
			bad("loop.duration", "negative")
		}
	}
	if p := l.MotionPath; p != nil {
		if len(p.Points) < 2 {
			bad("motionPath.points", "fewer than 2 points")
		}
		if p.Duration <= 0 {
			bad("motionPath.duration", "must be positive")
		}
	}
	if s := l.ElegantSpin; s != nil {
		if s.MinScale > s.MaxScale {
			bad("elegantSpin", "minScale exceeds maxScale")
		}
		if s.MinScale > 1 || s.MaxScale < 1 {
			bad("elegantSpin", "scale range must contain 1")
		}
	}
	if s := l.Sequence; s != nil && s.Duration < 0 {
		bad("sequence.duration", "negative")
	}
	if a := l.Anchoring; a != nil && a.IsRelative {
		if a.TargetID == "" {
			bad("anchoring.targetId", "empty")
		} else if a.TargetID == l.ID {
			bad("anchoring.targetId", "anchored to itself")
		}
	}
	return errors.Join(errs...)
}
