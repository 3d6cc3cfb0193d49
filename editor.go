package motion

// Editor previews layers on an authoring timeline. It owns a ScrubberClock
// and an editor-mode Compositor; triggers are never consulted.
type Editor struct {
	clock *ScrubberClock
	comp  *Compositor
}

// NewEditor creates an editor with the playhead at 0. anchors may be nil.
func NewEditor(anchors *Anchors) *Editor {
	clock := NewScrubberClock(0)
	return &Editor{
		clock: clock,
		comp:  NewCompositor(ModeEditor, clock, nil, anchors),
	}
}

// Seek moves the playhead to t ms.
func (e *Editor) Seek(t float64) { e.clock.Seek(t) }

// Play starts advancing the playhead on Advance.
func (e *Editor) Play() { e.clock.SetPlaying(true) }

// Pause stops the playhead.
func (e *Editor) Pause() { e.clock.SetPlaying(false) }

// Playing reports whether the playhead is advancing.
func (e *Editor) Playing() bool { return e.clock.IsPlaying() }

// Advance moves the playhead by dt ms while playing.
func (e *Editor) Advance(dt float64) { e.clock.Advance(dt) }

// Playhead returns the current playhead in ms.
func (e *Editor) Playhead() float64 { return e.clock.Time() }

// Evaluate returns l's transform at the playhead.
func (e *Editor) Evaluate(l *Layer) Transform { return e.comp.Evaluate(l) }

// Compositor returns the editor-mode compositor.
func (e *Editor) Compositor() *Compositor { return e.comp }
