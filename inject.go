package motion

// signalKind identifies an injected control signal.
type signalKind uint8

const (
	signalClick signalKind = iota
	signalLoad
	signalMeasure
)

// injectedSignal represents a single queued control signal for one layer.
type injectedSignal struct {
	kind          signalKind
	layerID       string
	width, height float64
}

// InjectClick queues a one-frame forceTrigger pulse for layer id. The event
// is consumed on the next frame, before frame callbacks run.
func (p *Player) InjectClick(id string) {
	p.injectQueue = append(p.injectQueue, injectedSignal{kind: signalClick, layerID: id})
}

// InjectLoad queues a content-loaded signal for layer id.
func (p *Player) InjectLoad(id string) {
	p.injectQueue = append(p.injectQueue, injectedSignal{kind: signalLoad, layerID: id})
}

// InjectMeasure queues a dimensions-detected signal for layer id.
func (p *Player) InjectMeasure(id string, w, h float64) {
	p.injectQueue = append(p.injectQueue, injectedSignal{
		kind: signalMeasure, layerID: id,
		width: w, height: h,
	})
}

// Pending returns the number of queued injected signals.
func (p *Player) Pending() int {
	return len(p.injectQueue)
}

// processInjected pops one signal from the inject queue and applies it.
// Returns true if a signal was consumed.
func (p *Player) processInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case signalClick:
		if b, ok := p.bindings[evt.layerID]; ok {
			b.pulse = true
		}
	case signalLoad:
		p.ContentLoaded(evt.layerID)
	case signalMeasure:
		p.DimensionsDetected(evt.layerID, evt.width, evt.height)
	}
	return true
}
