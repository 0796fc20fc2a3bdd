package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sourcesFile is the YAML document shape of a sources override file.
type sourcesFile struct {
	Sources []*Profile `yaml:"sources"`
}

// LoadFile reads publisher profiles from a YAML file. Profiles whose key
// matches a built-in profile replace it; new keys extend the set.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var doc sourcesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if len(doc.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s declares no sources", path)
	}

	merged := make([]*Profile, 0, len(doc.Sources))
	overridden := make(map[string]bool, len(doc.Sources))
	for _, p := range doc.Sources {
		// File selectors are publisher-specific; the shared fallbacks
		// still apply after them.
		p.Selectors = withGenericFallbacks(p.Selectors)
		merged = append(merged, p)
		overridden[p.Key] = true
	}
	for _, p := range DefaultProfiles() {
		if !overridden[p.Key] {
			merged = append(merged, p)
		}
	}

	return NewRegistry(merged)
}

// Load builds the profile registry: from the override file when path is
// non-empty, otherwise from the built-in defaults.
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewDefaultRegistry()
	}
	return LoadFile(path)
}
