package motion

import "time"

// FrameFunc is a per-frame callback. It receives the wall time and the frame
// delta in ms and must be idempotent: running it twice at the same time
// (dt 0 the second time) must leave its output unchanged.
type FrameFunc func(now, dt float64)

// FrameHandle cancels a registered frame callback. Owners must cancel their
// callbacks on teardown; the scheduler keeps them alive until then.
type FrameHandle struct {
	s  *Scheduler
	id uint32
}

// Cancel removes the callback. Safe to call more than once and from inside a
// running callback.
func (h FrameHandle) Cancel() {
	if h.s == nil {
		return
	}
	h.s.cancel(h.id)
}

type frameEntry struct {
	id uint32
	fn FrameFunc
}

// Scheduler runs frame callbacks off a WallClock, decoupled from any render
// loop. Callbacks write straight into their owner's output structs.
// Single-threaded: Tick, Add and Cancel must be called from one goroutine.
type Scheduler struct {
	clock   *WallClock
	entries []frameEntry
	nextID  uint32
	ticking bool
	dirty   bool
}

// NewScheduler creates a scheduler driving clock. A nil clock gets a fresh
// WallClock.
func NewScheduler(clock *WallClock) *Scheduler {
	if clock == nil {
		clock = &WallClock{}
	}
	return &Scheduler{clock: clock}
}

// Clock returns the scheduler's wall clock.
func (s *Scheduler) Clock() *WallClock {
	return s.clock
}

// Add registers fn to run on every Tick.
func (s *Scheduler) Add(fn FrameFunc) FrameHandle {
	s.nextID++
	s.entries = append(s.entries, frameEntry{id: s.nextID, fn: fn})
	return FrameHandle{s: s, id: s.nextID}
}

// Len returns the number of live callbacks.
func (s *Scheduler) Len() int {
	n := 0
	for i := range s.entries {
		if s.entries[i].fn != nil {
			n++
		}
	}
	return n
}

func (s *Scheduler) cancel(id uint32) {
	for i := range s.entries {
		if s.entries[i].id == id {
			s.entries[i].fn = nil
			s.dirty = true
			break
		}
	}
	if !s.ticking {
		s.compact()
	}
}

func (s *Scheduler) compact() {
	if !s.dirty {
		return
	}
	live := s.entries[:0]
	for _, e := range s.entries {
		if e.fn != nil {
			live = append(live, e)
		}
	}
	clear(s.entries[len(live):])
	s.entries = live
	s.dirty = false
}

// Tick advances the clock by dt ms and runs every live callback once.
// Callbacks added during a tick first run on the next one.
func (s *Scheduler) Tick(dt float64) {
	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	s.clock.Advance(dt)
	now := s.clock.Time()
	s.ticking = true
	n := len(s.entries)
	updated := 0
	for i := 0; i < n; i++ {
		if fn := s.entries[i].fn; fn != nil {
			fn(now, dt)
			updated++
		}
	}
	s.ticking = false
	s.compact()

	if globalDebug {
		debugLog(debugStats{
			frame:    s.clock.Frames(),
			bindings: len(s.entries),
			updated:  updated,
			tickTime: time.Since(t0),
		})
	}
}
