package ai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProfileFile represents the top-level YAML structure.
type ProfileFile struct {
	Profiles []ProfileEntry `yaml:"profiles"`
}

// ProfileEntry represents a single named opponent in the YAML file. A
// zero seed means a fresh random source per game.
type ProfileEntry struct {
	Name       string `yaml:"name"`
	Difficulty string `yaml:"difficulty"`
	Seed       int64  `yaml:"seed"`
}

// ParseProfileFile parses a YAML profile file and validates every entry's
// difficulty.
func ParseProfileFile(path string) ([]ProfileEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf ProfileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse profile YAML: %w", err)
	}

	for _, p := range pf.Profiles {
		if _, err := GetConfig(Difficulty(p.Difficulty)); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}

	return pf.Profiles, nil
}

// ProfileByName returns the named profile from the profile file.
func ProfileByName(path, name string) (ProfileEntry, error) {
	profiles, err := ParseProfileFile(path)
	if err != nil {
		return ProfileEntry{}, err
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return ProfileEntry{}, fmt.Errorf("profile %q not found (have %d profiles)", name, len(profiles))
}

// ProfileByNumber returns the Nth profile (1-indexed) from the profile file.
func ProfileByNumber(path string, n int) (ProfileEntry, error) {
	profiles, err := ParseProfileFile(path)
	if err != nil {
		return ProfileEntry{}, err
	}
	if n < 1 || n > len(profiles) {
		return ProfileEntry{}, fmt.Errorf("profile %d not found (have %d profiles)", n, len(profiles))
	}
	return profiles[n-1], nil
}
