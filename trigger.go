package motion

// TriggerKind names the event that fires a layer's entrance.
type TriggerKind string

const (
	TriggerLoad      TriggerKind = "load"
	TriggerImmediate TriggerKind = "immediate"
	TriggerScroll    TriggerKind = "scroll"
	TriggerClick     TriggerKind = "click"
	TriggerOpenBtn   TriggerKind = "open_btn"
)

// TriggerState is the lifecycle state of one layer's trigger.
type TriggerState uint8

const (
	Untriggered TriggerState = iota
	Pending                  // fire requested, waiting for the layer's asset
	Triggered
)

// String returns the state name.
func (s TriggerState) String() string {
	switch s {
	case Untriggered:
		return "untriggered"
	case Pending:
		return "pending"
	case Triggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// TriggerReason explains why a TriggerEvent was emitted.
type TriggerReason string

const (
	ReasonFired        TriggerReason = "fired"
	ReasonAssetTimeout TriggerReason = "asset-timeout"
	ReasonRearmed      TriggerReason = "rearmed"
	ReasonReset        TriggerReason = "reset"
)

// TriggerEvent reports a trigger state change.
type TriggerEvent struct {
	LayerID string
	Kind    TriggerKind
	Reason  TriggerReason
	At      float64 // wall time in ms
}

// EventSink receives trigger events. Set one on a Player to observe the
// trigger protocol (see the ecs package for a Donburi adapter).
type EventSink interface {
	EmitTrigger(event TriggerEvent)
}

// Registry records which layers have triggered in the current epoch. It
// outlives individual bindings, so rebinding a layer within an epoch does not
// replay its entrance. A Registry is owned by one goroutine.
type Registry struct {
	at    map[string]float64
	nonce uint64
	epoch uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{at: make(map[string]float64)}
}

// Triggered reports whether id has triggered in this epoch.
func (r *Registry) Triggered(id string) bool {
	_, ok := r.at[id]
	return ok
}

// TriggeredAt returns the wall time at which id triggered.
func (r *Registry) TriggeredAt(id string) (float64, bool) {
	t, ok := r.at[id]
	return t, ok
}

// Set marks id as triggered at wall time t. Setting an already triggered
// layer keeps the original time.
func (r *Registry) Set(id string, t float64) {
	if _, ok := r.at[id]; ok {
		return
	}
	r.at[id] = t
}

// Clear returns id to Untriggered.
func (r *Registry) Clear(id string) {
	delete(r.at, id)
}

// ClearAll returns every layer to Untriggered and starts a new epoch.
func (r *Registry) ClearAll() {
	clear(r.at)
	r.epoch++
}

// Len returns the number of triggered layers.
func (r *Registry) Len() int {
	return len(r.at)
}

// Epoch returns the number of wholesale clears so far.
func (r *Registry) Epoch() uint64 {
	return r.epoch
}

// Nonce returns the last applied reset nonce.
func (r *Registry) Nonce() uint64 {
	return r.nonce
}

// ApplyReset clears the registry when nonce is newer than the last applied
// one and reports whether it did. Stale or repeated nonces are ignored.
func (r *Registry) ApplyReset(nonce uint64) bool {
	if nonce <= r.nonce {
		return false
	}
	r.nonce = nonce
	r.ClearAll()
	return true
}

// Signals are the external control inputs consumed by a trigger evaluation.
type Signals struct {
	ResetNonce    uint64
	ForceTrigger  bool // level; the machine fires on its rising edge
	SectionActive bool
	Opened        bool
	Viewport      Rect // visible region of the scroll container
}

// TriggerMachine drives the Untriggered -> Triggered lifecycle of one layer.
// Triggered state lives in the shared Registry; the machine only holds the
// edge detectors and the asset-readiness deferral.
type TriggerMachine struct {
	layer    *Layer
	registry *Registry
	cfg      Config
	sink     EventSink

	epoch        uint64
	prevForce    bool
	prevOpened   bool
	loaded       bool
	pending      bool
	pendingSince float64
	last         TriggerState
}

// NewTriggerMachine creates a machine for l backed by registry.
func NewTriggerMachine(l *Layer, registry *Registry, cfg Config) *TriggerMachine {
	m := &TriggerMachine{layer: l, registry: registry, cfg: cfg, epoch: registry.Epoch()}
	if registry.Triggered(l.ID) {
		m.last = Triggered
	}
	return m
}

// SetSink sets the optional event observer.
func (m *TriggerMachine) SetSink(sink EventSink) {
	m.sink = sink
}

// ContentLoaded marks the layer's asynchronous content as ready. A pending
// fire completes on the next Update.
func (m *TriggerMachine) ContentLoaded() {
	m.loaded = true
}

// State returns the current state without evaluating signals.
func (m *TriggerMachine) State() TriggerState {
	switch {
	case m.registry.Triggered(m.layer.ID):
		return Triggered
	case m.pending:
		return Pending
	default:
		return Untriggered
	}
}

// Update evaluates the signals at wall time now and returns the resulting
// state. bounds is the layer's rectangle in scroll-container coordinates.
func (m *TriggerMachine) Update(now float64, sig Signals, bounds Rect) TriggerState {
	m.last = m.update(now, sig, bounds)
	return m.last
}

func (m *TriggerMachine) update(now float64, sig Signals, bounds Rect) TriggerState {
	if m.registry.ApplyReset(sig.ResetNonce) {
		debugf("reset nonce %d applied", sig.ResetNonce)
	}
	if m.epoch != m.registry.Epoch() {
		m.epoch = m.registry.Epoch()
		m.pending = false
		// Another machine may already have cleared the registry, so the
		// state seen on the previous Update decides.
		if m.last != Untriggered {
			m.emit(ReasonReset, now)
		}
	}

	rising := sig.ForceTrigger && !m.prevForce
	opened := sig.Opened && !m.prevOpened
	m.prevForce = sig.ForceTrigger
	m.prevOpened = sig.Opened

	id := m.layer.ID
	kind := m.layer.TriggerKind()

	if m.registry.Triggered(id) {
		if kind == TriggerScroll && m.scrolledOut(sig.Viewport, bounds) {
			m.registry.Clear(id)
			m.emit(ReasonRearmed, now)
			return Untriggered
		}
		return Triggered
	}

	if !m.pending && m.wants(kind, sig, bounds, rising, opened) {
		m.pending = true
		m.pendingSince = now
	}
	if !m.pending {
		return Untriggered
	}

	reason := ReasonFired
	if m.layer.NeedsAsset() && !m.loaded {
		if now-m.pendingSince < float64(m.cfg.AssetTimeout.Milliseconds()) {
			return Pending
		}
		reason = ReasonAssetTimeout
		debugf("layer %q: asset not ready after %v, firing anyway", id, m.cfg.AssetTimeout)
	}
	m.pending = false
	m.registry.Set(id, now)
	m.emit(reason, now)
	return Triggered
}

func (m *TriggerMachine) wants(kind TriggerKind, sig Signals, bounds Rect, rising, opened bool) bool {
	switch kind {
	case TriggerScroll:
		return sig.SectionActive && bounds.IntersectionRatio(sig.Viewport) >= m.cfg.ScrollThreshold
	case TriggerClick:
		return rising
	case TriggerOpenBtn:
		return rising || opened
	default:
		return sig.SectionActive
	}
}

// scrolledOut reports whether the user scrolled back above the layer: its
// top sits past the near-bottom exit line and less than the scroll
// threshold of it is still visible.
func (m *TriggerMachine) scrolledOut(vp, bounds Rect) bool {
	if vp.Height <= 0 {
		return false
	}
	return bounds.IntersectionRatio(vp) < m.cfg.ScrollThreshold &&
		bounds.Y >= vp.Y+vp.Height*m.cfg.ScrollExitFraction
}

func (m *TriggerMachine) emit(reason TriggerReason, at float64) {
	if m.sink == nil {
		return
	}
	m.sink.EmitTrigger(TriggerEvent{LayerID: m.layer.ID, Kind: m.layer.TriggerKind(), Reason: reason, At: at})
}
