// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ThesisSet holds the unit codes designated as thesis units. It is loaded
// once at startup and must not be mutated afterwards; concurrent
// calculations read it freely.
type ThesisSet map[string]struct{}

// thesisFile is the on-disk shape of the thesis-code artifact.
type thesisFile struct {
	ThesisUnits []string `yaml:"thesis_units"`
}

// NewThesisSet builds a set from a list of unit codes.
func NewThesisSet(codes []string) ThesisSet {
	s := make(ThesisSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// LoadThesisCodes reads the thesis-unit artifact: a YAML file with a
// single thesis_units list of unit code strings.
func LoadThesisCodes(path string) (ThesisSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading thesis codes %s: %w", path, err)
	}

	var f thesisFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing thesis codes %s: %w", path, err)
	}

	return NewThesisSet(f.ThesisUnits), nil
}

// Contains reports whether code is a known thesis unit. Exact match only.
func (s ThesisSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}
