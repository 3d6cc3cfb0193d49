// Package motion is a per-layer animation engine for scrollable, layered
// pages (digital invitations, story pages) that renders the same layer
// configuration two ways: a scrubbable editor timeline and a trigger-driven
// production playback.
//
// # Quick start
//
// Production playback binds a [Scene] to a [Player] and advances it once per
// frame:
//
//	scene, err := motion.LoadScene("scene.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := motion.NewPlayer(motion.LoadConfigFromEnv(), nil, motion.NewViewport(480, 800))
//	p.Bind(scene)
//	p.SetSectionActive("cover", true)
//
//	// every frame
//	p.Update()
//	out, _ := p.Output("title")
//	m := out.Matrix(layer)
//
// The editor evaluates layers at a playhead instead:
//
//	ed := motion.NewEditor(nil)
//	ed.Seek(1200)
//	t := ed.Evaluate(layer)
//
// # Layers
//
// Every visual element is a [Layer]: a static rectangle plus optional
// [Entrance], [Loop], [Keyframe]s, [MotionPath], [ElegantSpin], [Sequence]
// and [Anchoring]. Layers are read-only to the engine; malformed settings
// degrade to their neutral value and are reported by [Layer.Validate] as
// [ConfigError]s.
//
// # Composition
//
// A [Compositor] resolves one layer at one instant. Keyframes override the
// static base, the motion path adds its offset, loops add their periodic
// delta, the entrance delta is applied on top, and anchoring shifts the
// result below its target's measured bottom edge. Output is a [Transform]:
// absolute position, rotation in degrees, per-axis scale including flips,
// opacity and a [Filter].
//
// In [ModeEditor] time is the [ScrubberClock] playhead relative to the
// layer's [Sequence]; outside the window the layer is transparent. In
// [ModeProduction] time is the [WallClock] and the entrance is played by a
// [Transition] when the layer's trigger fires.
//
// # Triggers
//
// A [TriggerMachine] moves each layer from Untriggered to Triggered exactly
// once per epoch on its [TriggerKind]: load, immediate, scroll, click or
// open_btn. Layers whose content loads asynchronously wait for
// [Player.ContentLoaded] up to Config.AssetTimeout. The shared [Registry]
// survives rebinding, so remounted layers do not replay; increasing the
// reset nonce starts a new epoch and replays every entrance. Scroll-triggered
// layers re-arm when scrolled back out near the bottom of the viewport.
// Trigger changes are reported to an optional [EventSink]; the ecs
// subpackage publishes them into a Donburi world.
//
// # Scheduling
//
// A [Scheduler] runs one callback per bound layer on every tick, writing
// into the layer's [Output]. Callbacks are cancelled by their
// [FrameHandle]; [Player.Close] cancels all of them.
//
// # Debug
//
// Set MOTION_DEBUG=1 or call [Player.SetDebugMode] to print [motion] lines
// for resets, asset timeouts, config problems and per-frame scheduler stats.
//
// # Scripted runs
//
// [LoadTestScript] parses a JSON list of steps (wait, scroll, click, load,
// measure, reset, open, activate, deactivate) that a [TestRunner] replays
// one per frame on a Player:
//
//	{"steps": [
//	  {"action": "activate", "section": "cover"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "scroll", "y": 800, "duration": 400},
//	  {"action": "click", "layer": "heart"}
//	]}
package motion
