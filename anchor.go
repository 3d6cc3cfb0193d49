package motion

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorCycle reports two layers anchored to each other.
	ErrAnchorCycle = errors.New("anchoring cycle")
	// ErrUnknownTarget reports an anchoring target that no container holds.
	ErrUnknownTarget = errors.New("unknown anchoring target")
)

// Dimensions caches the real rendered size of layers, written by the
// rendering surface once a layer has been measured.
type Dimensions struct {
	sizes map[string]Size
}

// NewDimensions creates an empty cache.
func NewDimensions() *Dimensions {
	return &Dimensions{sizes: make(map[string]Size)}
}

// Set records the measured size of id.
func (d *Dimensions) Set(id string, w, h float64) {
	d.sizes[id] = Size{Width: w, Height: h}
}

// Get returns the measured size of id.
func (d *Dimensions) Get(id string) (Size, bool) {
	s, ok := d.sizes[id]
	return s, ok
}

// Anchors resolves relative vertical placement. It indexes every known layer
// container (primary sections and secondary stages) by layer ID.
type Anchors struct {
	layers map[string]*Layer
	dims   *Dimensions
}

// NewAnchors creates a resolver reading measured sizes from dims.
func NewAnchors(dims *Dimensions) *Anchors {
	if dims == nil {
		dims = NewDimensions()
	}
	return &Anchors{layers: make(map[string]*Layer), dims: dims}
}

// Dimensions returns the measured-size cache.
func (a *Anchors) Dimensions() *Dimensions {
	return a.dims
}

// Index adds layers to the lookup table, replacing earlier entries with the
// same ID.
func (a *Anchors) Index(layers ...*Layer) {
	for _, l := range layers {
		if l != nil && l.ID != "" {
			a.layers[l.ID] = l
		}
	}
}

// Lookup returns the indexed layer with the given ID.
func (a *Anchors) Lookup(id string) (*Layer, bool) {
	l, ok := a.layers[id]
	return l, ok
}

// measuredHeight prefers the live measured height over the configured one.
func (a *Anchors) measuredHeight(l *Layer) float64 {
	if s, ok := a.dims.Get(l.ID); ok {
		return s.Height
	}
	return l.Height
}

// YShift returns the vertical offset that places l below its anchoring
// target: (target.y + measuredHeight(target) + offset) - l.y. Layers that are
// not relative, whose target is unknown, or that would form a cycle get 0.
func (a *Anchors) YShift(l *Layer) float64 {
	target, err := a.target(l)
	if err != nil || target == nil {
		return 0
	}
	return target.Y + a.measuredHeight(target) + l.Anchoring.Offset - l.Y
}

func (a *Anchors) target(l *Layer) (*Layer, error) {
	anc := l.Anchoring
	if anc == nil || !anc.IsRelative || anc.TargetID == "" {
		return nil, nil
	}
	target, ok := a.layers[anc.TargetID]
	if !ok {
		return nil, fmt.Errorf("layer %q -> %q: %w", l.ID, anc.TargetID, ErrUnknownTarget)
	}
	if target == l {
		return nil, fmt.Errorf("layer %q anchored to itself: %w", l.ID, ErrAnchorCycle)
	}
	if ta := target.Anchoring; ta != nil && ta.IsRelative && ta.TargetID == l.ID {
		return nil, fmt.Errorf("layers %q and %q: %w", l.ID, target.ID, ErrAnchorCycle)
	}
	return target, nil
}

// Validate checks every indexed layer's anchoring and returns the joined
// errors for unknown targets and cycles.
func (a *Anchors) Validate() error {
	var errs []error
	for _, l := range a.layers {
		if _, err := a.target(l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
