package motion

// Output is the per-layer result written by the frame scheduler and read by
// the rendering surface. It is a plain struct: the renderer may read it at
// any time between frames.
type Output struct {
	Transform
	State      TriggerState
	Transition TransitionState
}

// binding ties one mounted layer to its trigger machine, entrance transition
// and output slot.
type binding struct {
	player     *Player
	layer      *Layer
	section    string
	offset     float64
	stage      bool
	machine    *TriggerMachine
	transition *Transition
	handle     FrameHandle
	out        Output
	force      bool // external forceTrigger level
	pulse      bool // injected one-frame edge
	epoch      uint64
}

// bounds returns the layer's live rectangle in scroll-container coordinates.
func (b *binding) bounds() Rect {
	p := b.player
	r := b.layer.Bounds()
	if s, ok := p.dims.Get(b.layer.ID); ok {
		r.Width, r.Height = s.Width, s.Height
	}
	r.Y += p.anchors.YShift(b.layer)
	if b.stage {
		r.Y += p.viewport.Y
	} else {
		r.Y += b.offset
	}
	return r
}

// frame is the binding's FrameFunc.
func (b *binding) frame(now, dt float64) {
	p := b.player
	sig := Signals{
		ResetNonce:    p.resetNonce,
		ForceTrigger:  b.force || b.pulse,
		SectionActive: b.stage || p.active[b.section],
		Opened:        p.opened,
		Viewport:      p.viewport.Visible(),
	}
	state := b.machine.Update(now, sig, b.bounds())

	if e := p.registry.Epoch(); e != b.epoch {
		b.epoch = e
		b.transition.Hide()
	}
	if state == Triggered {
		b.transition.Start()
	} else if b.transition.State() != TransitionHidden {
		b.transition.Hide()
	}
	b.transition.Update(dt)

	t := p.comp.EvaluateAt(b.layer, now)
	b.out.Transform = ApplyDelta(t, b.transition.Delta())
	b.out.State = state
	b.out.Transition = b.transition.State()
}

// Player is the production runtime. It binds layers to per-frame callbacks
// on a wall-clock Scheduler, runs the trigger protocol from the control
// signals, and writes each layer's final transform into its Output.
//
// A Player is single-threaded: call its methods from the goroutine that calls
// Update.
type Player struct {
	cfg      Config
	registry *Registry
	dims     *Dimensions
	anchors  *Anchors
	comp     *Compositor
	sched    *Scheduler
	viewport *Viewport
	sink     EventSink

	resetNonce uint64
	opened     bool
	active     map[string]bool
	bindings   map[string]*binding

	injectQueue []injectedSignal
	testRunner  *TestRunner
}

// NewPlayer creates a player with a fresh wall clock. registry may be shared
// with an earlier Player to keep completed entrances from replaying across
// remounts; nil creates a new one.
func NewPlayer(cfg Config, registry *Registry, viewport *Viewport) *Player {
	cfg = cfg.normalized()
	if registry == nil {
		registry = NewRegistry()
	}
	if viewport == nil {
		viewport = NewViewport(0, 0)
	}
	dims := NewDimensions()
	anchors := NewAnchors(dims)
	sched := NewScheduler(nil)
	globalDebug = cfg.Debug
	return &Player{
		cfg:      cfg,
		registry: registry,
		dims:     dims,
		anchors:  anchors,
		comp:     NewCompositor(ModeProduction, sched.Clock(), registry, anchors),
		sched:    sched,
		viewport: viewport,
		active:   make(map[string]bool),
		bindings: make(map[string]*binding),
	}
}

// Registry returns the trigger registry.
func (p *Player) Registry() *Registry { return p.registry }

// Viewport returns the scroll container.
func (p *Player) Viewport() *Viewport { return p.viewport }

// Clock returns the wall clock.
func (p *Player) Clock() *WallClock { return p.sched.Clock() }

// Compositor returns the production compositor.
func (p *Player) Compositor() *Compositor { return p.comp }

// SetSink sets the optional trigger event observer.
func (p *Player) SetSink(sink EventSink) {
	p.sink = sink
	for _, b := range p.bindings {
		b.machine.SetSink(sink)
	}
}

// SetDebugMode enables or disables [motion] debug logging.
func (p *Player) SetDebugMode(enabled bool) {
	p.cfg.Debug = enabled
	globalDebug = enabled
}

// Bind mounts every layer of scene: section layers scroll with their section,
// stage layers stay pinned over the viewport.
func (p *Player) Bind(scene *Scene) {
	scene.Index(p.anchors)
	if p.viewport.ContentHeight == 0 {
		p.viewport.ContentHeight = scene.ContentHeight()
	}
	for i := range scene.Sections {
		sec := &scene.Sections[i]
		for _, l := range sec.Layers {
			p.BindLayer(l, sec.ID, sec.Offset)
		}
	}
	for i := range scene.Stages {
		for _, l := range scene.Stages[i].Layers {
			p.bindStage(l)
		}
	}
}

// BindLayer mounts l inside section, whose top edge sits at offset in the
// scroll container. Rebinding an ID replaces the previous binding. A layer
// already triggered in this epoch shows at once without replaying its
// entrance.
func (p *Player) BindLayer(l *Layer, section string, offset float64) *Output {
	return p.bind(l, section, offset, false)
}

func (p *Player) bindStage(l *Layer) *Output {
	return p.bind(l, "", 0, true)
}

func (p *Player) bind(l *Layer, section string, offset float64, stage bool) *Output {
	if l == nil {
		return nil
	}
	if err := l.Validate(); err != nil {
		debugf("%v", err)
	}
	p.Unbind(l.ID)
	p.anchors.Index(l)

	b := &binding{
		player:     p,
		layer:      l,
		section:    section,
		offset:     offset,
		stage:      stage,
		machine:    NewTriggerMachine(l, p.registry, p.cfg),
		transition: NewTransition(l.Entrance),
		epoch:      p.registry.Epoch(),
	}
	b.machine.SetSink(p.sink)
	if p.registry.Triggered(l.ID) {
		b.transition.Show()
	}
	b.handle = p.sched.Add(b.frame)
	b.frame(p.sched.Clock().Time(), 0)
	p.bindings[l.ID] = b
	return &b.out
}

// Unbind cancels the frame callback of layer id. Its trigger record stays in
// the registry.
func (p *Player) Unbind(id string) {
	if b, ok := p.bindings[id]; ok {
		b.handle.Cancel()
		delete(p.bindings, id)
	}
}

// Close cancels every frame callback. The player must not be updated after.
func (p *Player) Close() {
	for id, b := range p.bindings {
		b.handle.Cancel()
		delete(p.bindings, id)
	}
}

// Output returns the output slot of layer id.
func (p *Player) Output(id string) (*Output, bool) {
	b, ok := p.bindings[id]
	if !ok {
		return nil, false
	}
	return &b.out, true
}

// State returns the trigger state of layer id.
func (p *Player) State(id string) TriggerState {
	if b, ok := p.bindings[id]; ok {
		return b.machine.State()
	}
	if p.registry.Triggered(id) {
		return Triggered
	}
	return Untriggered
}

// SetSectionActive marks a section as the active one (or not).
func (p *Player) SetSectionActive(section string, active bool) {
	p.active[section] = active
}

// SetOpened sets the invitation-opened signal.
func (p *Player) SetOpened(opened bool) {
	p.opened = opened
}

// SetResetNonce sets the reset signal. Every increase returns all layers to
// Untriggered on the next frame.
func (p *Player) SetResetNonce(nonce uint64) {
	p.resetNonce = max(p.resetNonce, nonce)
}

// BumpReset increments the reset nonce.
func (p *Player) BumpReset() {
	p.resetNonce = max(p.resetNonce, p.registry.Nonce()) + 1
}

// SetForceTrigger sets layer id's external forceTrigger level. Click and
// open-button triggers fire on its rising edge.
func (p *Player) SetForceTrigger(id string, on bool) {
	if b, ok := p.bindings[id]; ok {
		b.force = on
	}
}

// ContentLoaded signals that layer id's asynchronous content is ready.
func (p *Player) ContentLoaded(id string) {
	if b, ok := p.bindings[id]; ok {
		b.machine.ContentLoaded()
	}
}

// DimensionsDetected records layer id's real rendered size.
func (p *Player) DimensionsDetected(id string, w, h float64) {
	p.dims.Set(id, w, h)
}

// Update advances one frame of Config.TPS.
func (p *Player) Update() {
	p.Advance(p.cfg.FrameDuration())
}

// Advance runs one frame of dt ms: scripted steps and injected signals are
// applied first, then the viewport scroll and every frame callback.
func (p *Player) Advance(dt float64) {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInjected()
	p.viewport.update(dt)
	p.sched.Tick(dt)
	for _, b := range p.bindings {
		b.pulse = false
	}
}
