// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	UserName      string `json:"user_name,omitempty"`
	UserID        int    `json:"user_id,omitempty"`
	DefaultDiet   string `json:"default_diet,omitempty"`
	StreamDelayMS int    `json:"stream_delay_ms,omitempty"`
	WordsPerChunk int    `json:"words_per_chunk,omitempty"`
	Verbose       bool   `json:"verbose,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalSettingsFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global settings: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.UserName != "" {
		result.UserName = project.UserName
	}
	if project.UserID != 0 {
		result.UserID = project.UserID
	}
	if project.DefaultDiet != "" {
		result.DefaultDiet = project.DefaultDiet
	}
	if project.StreamDelayMS != 0 {
		result.StreamDelayMS = project.StreamDelayMS
	}
	if project.WordsPerChunk != 0 {
		result.WordsPerChunk = project.WordsPerChunk
	}
	if project.Verbose {
		result.Verbose = true
	}

	return &result
}
