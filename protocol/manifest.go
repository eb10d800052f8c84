package protocol

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vitalvas/urlproto/urlspec"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML descriptor that selects and arranges provided
// services:
//
//	packages:
//	  - github.com/acme/protocols
//	factories:
//	  - name: vault
//	    priority: -10
//	  - name: legacy
//	    disabled: true
//	aliases:
//	  res: resource
type Manifest struct {
	// Packages are appended to a package list by Apply.
	Packages []string `yaml:"packages,omitempty"`

	// Factories selects provided factories by name.
	Factories []FactoryEntry `yaml:"factories,omitempty"`

	// Aliases maps a protocol to the protocol of a provided handler.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// FactoryEntry selects one provided factory.
type FactoryEntry struct {
	Name string `yaml:"name"`

	// Priority overrides the factory's own priority when set.
	Priority *int `yaml:"priority,omitempty"`

	Disabled bool `yaml:"disabled,omitempty"`
}

// LoadManifest decodes and validates a manifest. Unknown fields are
// rejected. An empty document yields an empty manifest.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// ReadManifest loads the manifest stored at path.
func ReadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadManifest(f)
}

func (m *Manifest) validate() error {
	seen := make(map[string]struct{}, len(m.Factories))
	for i, entry := range m.Factories {
		if entry.Name == "" {
			return fmt.Errorf("%w: factories[%d]: name is required", ErrInvalidManifest, i)
		}

		if _, dup := seen[entry.Name]; dup {
			return fmt.Errorf("%w: factories[%d]: duplicate name %q", ErrInvalidManifest, i, entry.Name)
		}
		seen[entry.Name] = struct{}{}
	}

	for alias, target := range m.Aliases {
		if !urlspec.ValidScheme(alias) {
			return fmt.Errorf("%w: alias %q is not a valid protocol", ErrInvalidManifest, alias)
		}

		if !urlspec.ValidScheme(target) {
			return fmt.Errorf("%w: alias %q targets invalid protocol %q", ErrInvalidManifest, alias, target)
		}
	}

	return nil
}

// Apply appends the manifest packages to l and returns how many were
// new.
func (m *Manifest) Apply(l *PackageList) int {
	added := 0
	for _, prefix := range m.Packages {
		if l.AddOnce(prefix) {
			added++
		}
	}

	return added
}
