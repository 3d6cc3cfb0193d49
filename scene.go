package motion

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoLayers reports a scene document without any layer.
var ErrNoLayers = errors.New("scene has no layers")

// Section is a primary scroll section. Offset is the section's top edge in
// scroll-container coordinates; its layers are positioned relative to it.
type Section struct {
	ID     string   `yaml:"id"`
	Offset float64  `yaml:"offset"`
	Height float64  `yaml:"height"`
	Layers []*Layer `yaml:"layers"`
}

// Stage is a secondary decorative container pinned over the viewport. Its
// layers are always active and always in view.
type Stage struct {
	ID     string   `yaml:"id"`
	Layers []*Layer `yaml:"layers"`
}

// Scene is a complete layer document: the primary sections of a scrollable
// page plus any secondary stages.
type Scene struct {
	Version  string    `yaml:"version"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Sections []Section `yaml:"sections"`
	Stages   []Stage   `yaml:"stages,omitempty"`
}

// ParseScene decodes a YAML scene document.
func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if scene.LayerCount() == 0 {
		return nil, fmt.Errorf("parse scene: %w", ErrNoLayers)
	}
	return &scene, nil
}

// LoadScene reads a YAML scene document from path.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return ParseScene(data)
}

// WriteScene writes scene to path as YAML.
func WriteScene(scene *Scene, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LayerCount returns the number of layers across all containers.
func (s *Scene) LayerCount() int {
	n := 0
	for i := range s.Sections {
		n += len(s.Sections[i].Layers)
	}
	for i := range s.Stages {
		n += len(s.Stages[i].Layers)
	}
	return n
}

// Layers calls fn for every layer of every section, then every stage. The
// container ID is passed along; stage layers report stage true.
func (s *Scene) Layers(fn func(container string, stage bool, l *Layer)) {
	for i := range s.Sections {
		sec := &s.Sections[i]
		for _, l := range sec.Layers {
			fn(sec.ID, false, l)
		}
	}
	for i := range s.Stages {
		st := &s.Stages[i]
		for _, l := range st.Layers {
			fn(st.ID, true, l)
		}
	}
}

// Index adds every layer of the scene to a.
func (s *Scene) Index(a *Anchors) {
	s.Layers(func(_ string, _ bool, l *Layer) {
		a.Index(l)
	})
}

// Section returns the section with the given ID.
func (s *Scene) Section(id string) (*Section, bool) {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i], true
		}
	}
	return nil, false
}

// ContentHeight returns the bottom edge of the lowest section.
func (s *Scene) ContentHeight() float64 {
	h := s.Height
	for i := range s.Sections {
		h = max(h, s.Sections[i].Offset+s.Sections[i].Height)
	}
	return h
}

// Validate checks every layer, duplicate IDs and anchoring, returning all
// problems joined. Problems are non-fatal for evaluation.
func (s *Scene) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	s.Layers(func(container string, _ bool, l *Layer) {
		if l == nil {
			errs = append(errs, fmt.Errorf("container %q: nil layer", container))
			return
		}
		if seen[l.ID] {
			errs = append(errs, &ConfigError{LayerID: l.ID, Field: "id", Reason: "duplicate"})
		}
		seen[l.ID] = true
		if err := l.Validate(); err != nil {
			errs = append(errs, err)
		}
	})
	a := NewAnchors(nil)
	s.Index(a)
	if err := a.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
