package motion

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Layer    string  `json:"layer,omitempty"`
	Section  string  `json:"section,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays control signals across frames for automated runs of a
// Player: scrolling, clicks, asset loads, measurements, resets and section
// changes. Attach to a Player via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Player via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "wait", "scroll", "reset", "open":
		case "click", "load", "measure":
			if st.Layer == "" {
				return nil, fmt.Errorf("parse test script: step %d: %s needs a layer", i, st.Action)
			}
		case "activate", "deactivate":
			if st.Section == "" {
				return nil, fmt.Errorf("parse test script: step %d: %s needs a section", i, st.Action)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the player. The runner's step method
// is called from Player.Advance before injected signals are processed.
func (p *Player) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Player.Advance.
func (r *TestRunner) step(p *Player) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "scroll":
		p.viewport.ScrollTo(st.Y, st.Duration, nil)
	case "click":
		p.InjectClick(st.Layer)
	case "load":
		p.InjectLoad(st.Layer)
	case "measure":
		p.InjectMeasure(st.Layer, st.Width, st.Height)
	case "reset":
		p.BumpReset()
	case "open":
		p.SetOpened(true)
	case "activate":
		p.SetSectionActive(st.Section, true)
	case "deactivate":
		p.SetSectionActive(st.Section, false)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
