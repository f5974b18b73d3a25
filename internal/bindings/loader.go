package bindings

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the manifest schema version this build understands.
const SupportedVersion = "1"

// LoadFile loads and parses a YAML bindings manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest. Unknown keys are rejected so
// a typo in the manifest fails loudly instead of silently dropping a
// binding.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse bindings YAML: %w", err)
	}

	applyDefaults(&m)

	if m.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported bindings version %q (supported: %s)", m.Version, SupportedVersion)
	}

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = SupportedVersion
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(m *Manifest, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal bindings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write bindings file %s: %w", path, err)
	}

	return nil
}
