package motion

import (
	"errors"
	"path/filepath"
	"testing"
)

const testSceneYAML = `
version: "1"
width: 400
height: 800
sections:
  - id: cover
    offset: 0
    height: 800
    layers:
      - id: title
        type: text
        x: 20
        y: 100
        width: 360
        height: 60
        entrance: {type: slide-up, delay: 200}
      - id: subtitle
        type: text
        x: 20
        y: 0
        width: 360
        height: 30
        opacity: 0.5
        anchoring: {isRelative: true, targetId: title, offset: 8}
  - id: story
    offset: 800
    height: 1200
    layers:
      - id: photo
        type: image
        x: 0
        y: 40
        width: 400
        height: 300
        entrance: {type: fade-in, trigger: scroll}
        loop: {type: float, duration: 2000}
stages:
  - id: petals
    layers:
      - id: petal
        type: sticker
        x: 10
        y: 10
        width: 20
        height: 20
        elegantSpin: {spinDuration: 6000, growthDuration: 3000, minScale: 0.9, maxScale: 1.2}
`

func TestParseScene(t *testing.T) {
	scene, err := ParseScene([]byte(testSceneYAML))
	if err != nil {
		t.Fatal(err)
	}
	if scene.LayerCount() != 4 {
		t.Fatalf("LayerCount = %d, want 4", scene.LayerCount())
	}
	title := scene.Sections[0].Layers[0]
	if title.Scale != 1 || title.Opacity != 1 {
		t.Errorf("defaults: scale %v opacity %v, want 1 1", title.Scale, title.Opacity)
	}
	if title.Entrance == nil || title.Entrance.Type != EntranceSlideUp || title.Entrance.Delay != 200 {
		t.Errorf("entrance = %+v", title.Entrance)
	}
	if sub := scene.Sections[0].Layers[1]; sub.Opacity != 0.5 {
		t.Errorf("explicit opacity = %v, want 0.5", sub.Opacity)
	}
	if photo := scene.Sections[1].Layers[0]; photo.TriggerKind() != TriggerScroll || !photo.NeedsAsset() {
		t.Errorf("photo trigger %v, needs asset %v", photo.TriggerKind(), photo.NeedsAsset())
	}
	if err := scene.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	assertNear(t, "content height", scene.ContentHeight(), 2000)
	if sec, ok := scene.Section("story"); !ok || sec.Offset != 800 {
		t.Errorf("Section(story) = %+v, %v", sec, ok)
	}
}

func TestParseSceneErrors(t *testing.T) {
	if _, err := ParseScene([]byte("sections: [")); err == nil {
		t.Error("expected YAML error")
	}
	_, err := ParseScene([]byte("version: \"1\"\nsections: []\n"))
	if !errors.Is(err, ErrNoLayers) {
		t.Errorf("err = %v, want ErrNoLayers", err)
	}
}

func TestSceneLayersVisitsStages(t *testing.T) {
	scene, err := ParseScene([]byte(testSceneYAML))
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	var stages int
	scene.Layers(func(_ string, stage bool, l *Layer) {
		ids = append(ids, l.ID)
		if stage {
			stages++
		}
	})
	if len(ids) != 4 || ids[3] != "petal" || stages != 1 {
		t.Errorf("ids = %v, stages = %d", ids, stages)
	}
}

func TestSceneValidateReportsProblems(t *testing.T) {
	a := NewLayer("a", 0, 0, 10, 10)
	a.Loop = &Loop{Type: "wiggle"}
	dup := NewLayer("a", 0, 0, 10, 10)
	b := NewLayer("b", 0, 0, 10, 10)
	b.Anchoring = &Anchoring{IsRelative: true, TargetID: "ghost"}
	scene := &Scene{Sections: []Section{{ID: "s", Layers: []*Layer{a, dup, b}}}}

	err := scene.Validate()
	if err == nil {
		t.Fatal("expected problems")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected a *ConfigError in %v", err)
	}
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget in %v", err)
	}
}

func TestWriteAndLoadScene(t *testing.T) {
	scene, err := ParseScene([]byte(testSceneYAML))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := WriteScene(scene, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadScene(path)
	if err != nil {
		t.Fatal(err)
	}
	petal := loaded.Stages[0].Layers[0]
	if petal.ElegantSpin == nil || petal.ElegantSpin.MaxScale != 1.2 {
		t.Errorf("elegant spin = %+v", petal.ElegantSpin)
	}
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLayerValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(l *Layer)
		field string
	}{
		{"empty id", func(l *Layer) { l.ID = "" }, "id"},
		{"zero scale", func(l *Layer) { l.Scale = 0 }, "scale"},
		{"opacity", func(l *Layer) { l.Opacity = 2 }, "opacity"},
		{"unsorted", func(l *Layer) {
			l.Keyframes = []Keyframe{{Time: 10, Property: PropX}, {Time: 5, Property: PropX}}
		}, "keyframes"},
		{"entrance type", func(l *Layer) { l.Entrance = &Entrance{Type: "spiral"} }, "entrance.type"},
		{"short path", func(l *Layer) { l.MotionPath = &MotionPath{Points: []PathPoint{{}}, Duration: 10} }, "motionPath.points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayer("x", 0, 0, 10, 10)
			tt.edit(l)
			var cfgErr *ConfigError
			if err := l.Validate(); !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Errorf("Validate = %v, want field %q", err, tt.field)
			}
		})
	}
	if err := NewLayer("ok", 0, 0, 1, 1).Validate(); err != nil {
		t.Errorf("valid layer: %v", err)
	}
}
