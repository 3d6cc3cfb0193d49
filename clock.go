package motion

// Clock supplies the current time in milliseconds.
type Clock interface {
	Time() float64
}

// ScrubberClock is an externally driven, seekable clock. Its value may jump
// or decrease at any time.
type ScrubberClock struct {
	playhead float64
	playing  bool
}

// NewScrubberClock creates a paused scrubber clock at the given playhead.
func NewScrubberClock(playhead float64) *ScrubberClock {
	return &ScrubberClock{playhead: playhead}
}

// Time returns the current playhead.
func (c *ScrubberClock) Time() float64 {
	return c.playhead
}

// Seek moves the playhead to t. Negative values clamp to 0.
func (c *ScrubberClock) Seek(t float64) {
	if invalid(t) {
		return
	}
	c.playhead = max(t, 0)
}

// SetPlaying sets whether Advance moves the playhead.
func (c *ScrubberClock) SetPlaying(playing bool) {
	c.playing = playing
}

// IsPlaying reports whether the clock is playing.
func (c *ScrubberClock) IsPlaying() bool {
	return c.playing
}

// Advance moves the playhead forward by dt ms while playing.
func (c *ScrubberClock) Advance(dt float64) {
	if !c.playing || dt <= 0 || invalid(dt) {
		return
	}
	c.playhead += dt
}

// WallClock is a monotonic, frame-driven clock. It only moves forward and is
// never reset; elapsed time is accumulated from frame deltas.
type WallClock struct {
	elapsed float64
	frames  uint64
}

// Time returns the elapsed ms since the clock was created.
func (c *WallClock) Time() float64 {
	return c.elapsed
}

// Frames returns the number of frames advanced so far.
func (c *WallClock) Frames() uint64 {
	return c.frames
}

// Advance adds one frame of dt ms. Non-positive deltas count the frame but
// leave time unchanged.
func (c *WallClock) Advance(dt float64) {
	c.frames++
	if dt > 0 && !invalid(dt) {
		c.elapsed += dt
	}
}
