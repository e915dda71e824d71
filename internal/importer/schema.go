package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// JournalVersion is the file format written by Export.
const JournalVersion = 1

// JournalFile is the top-level YAML structure of a garden journal backup.
type JournalFile struct {
	Version int            `yaml:"version"`
	Profile ProfileImport  `yaml:"profile"`
	Results []ResultImport `yaml:"results,omitempty"`
}

// ProfileImport defines the gardener profile in the journal file.
type ProfileImport struct {
	Name          string            `yaml:"name"`
	Role          string            `yaml:"role,omitempty"`
	Location      string            `yaml:"location"`
	Preferences   PreferencesImport `yaml:"preferences,omitempty"`
	LastCheckedAt *string           `yaml:"last_checked_at,omitempty"`
}

// PreferencesImport defines the accessibility switches.
type PreferencesImport struct {
	LargeText     bool `yaml:"large_text,omitempty"`
	HighContrast  bool `yaml:"high_contrast,omitempty"`
	VoiceGuidance bool `yaml:"voice_guidance,omitempty"`
}

// ResultImport defines one saved soil test.
type ResultImport struct {
	ID          string  `yaml:"id,omitempty"`
	RecordedAt  string  `yaml:"recorded_at"`
	Moisture    float64 `yaml:"moisture"`
	PH          float64 `yaml:"ph"`
	Temperature float64 `yaml:"temperature_f"`
	Nutrients   string  `yaml:"nutrients,omitempty"`
	Shared      bool    `yaml:"shared,omitempty"`
}

// LoadJournalFile reads and parses a journal YAML file.
func LoadJournalFile(path string) (*JournalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJournal(data)
}

// ParseJournal decodes journal YAML. Unknown keys are rejected so typos
// surface instead of being silently dropped.
func ParseJournal(data []byte) (*JournalFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var j JournalFile
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("parsing journal file: %w", err)
	}
	return &j, nil
}

// Marshal encodes the journal as YAML.
func (j *JournalFile) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("encoding journal: %w", err)
	}
	return out, nil
}
