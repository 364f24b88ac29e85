package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"whisper-prompting/internal/app/util/files"
)

// Preset is a named, reusable transcription prompt: a glossary of proper
// nouns, a style exemplar, or any other seed text worth keeping around.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Prompt      string `yaml:"prompt"`
}

// PresetConfig is the parsed presets file.
type PresetConfig struct {
	Presets []Preset `yaml:"presets"`
}

// DefaultPresetsPath returns <root>/configs/presets.yaml.
func DefaultPresetsPath() (string, error) {
	root, err := files.GetProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "configs", "presets.yaml"), nil
}

// LoadPresets reads the presets file at path. A missing file yields the
// built-in defaults rather than an error.
func LoadPresets(path string) (*PresetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPresets(), nil
		}
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var config PresetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse presets file %s: %w", path, err)
	}

	for i, p := range config.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d has no name", i)
		}
		if p.Prompt == "" {
			return nil, fmt.Errorf("preset %q has no prompt", p.Name)
		}
	}

	return &config, nil
}

// Get returns the preset with the given name.
func (c *PresetConfig) Get(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Names lists the available preset names in file order.
func (c *PresetConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	return names
}

// DefaultPresets covers the canonical steering demos: a product-name
// glossary and an all-lowercase style exemplar.
func DefaultPresets() *PresetConfig {
	return &PresetConfig{
		Presets: []Preset{
			{
				Name:        "product-names",
				Description: "Glossary of unusual product and company names, to nudge correct spelling",
				Prompt:      "Quirk, Quid, Quill, Inc., P1, P2, O3OMo",
			},
			{
				Name:        "lowercase",
				Description: "Lowercase style exemplar; raises the odds of lowercase output",
				Prompt:      "hi there and welcome to the show.",
			},
			{
				Name:        "punctuated",
				Description: "Well-punctuated exemplar, nudges the model toward full punctuation",
				Prompt:      "Hello, welcome to my lecture. Today, we will discuss maps, compasses, and navigation.",
			},
		},
	}
}
