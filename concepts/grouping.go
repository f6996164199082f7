package concepts

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownAttribute is returned when a concept references an
	// attribute name that is absent from the score table.
	ErrUnknownAttribute = errors.New("concepts: unknown attribute in grouping")

	// ErrEmptyConcept is returned when a concept has no name or no
	// member attributes.
	ErrEmptyConcept = errors.New("concepts: concept needs a name and at least one attribute")

	// ErrEmptyGrouping is returned when a grouping holds no concepts.
	ErrEmptyGrouping = errors.New("concepts: grouping must hold at least one concept")
)

// Concept names a group of member attributes.
type Concept struct {
	Name       string   `yaml:"name"`
	Attributes []string `yaml:"attributes"`
}

// Grouping is an ordered list of concepts. Overlapping membership is
// permitted; order determines table row order downstream.
type Grouping []Concept

// Identity builds the default grouping: every attribute becomes its own
// singleton concept, in attribute order.
func Identity(attrNames []string) Grouping {
	g := make(Grouping, len(attrNames))
	for i, name := range attrNames {
		g[i] = Concept{Name: name, Attributes: []string{name}}
	}
	return g
}

// Validate checks structural soundness and that every member attribute
// exists in attrNames.
func (g Grouping) Validate(attrNames []string) error {
	if len(g) == 0 {
		return ErrEmptyGrouping
	}
	known := make(map[string]struct{}, len(attrNames))
	for _, name := range attrNames {
		known[name] = struct{}{}
	}
	for _, c := range g {
		if c.Name == "" || len(c.Attributes) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyConcept, c.Name)
		}
		for _, attr := range c.Attributes {
			if _, ok := known[attr]; !ok {
				return fmt.Errorf("%w: concept %q references %q", ErrUnknownAttribute, c.Name, attr)
			}
		}
	}
	return nil
}

// FileConfig is the on-disk shape accepted by LoadFile.
type FileConfig struct {
	Concepts Grouping  `yaml:"concepts"`
	Risk     []float64 `yaml:"risk,omitempty"`
}

// LoadFile reads a YAML grouping (and optional risk vector) from path.
// The list form keeps concept order stable across loads:
//
//	concepts:
//	  - name: stromal
//	    attributes: [collagen, fibronectin]
//	  - name: immune
//	    attributes: [cd3, cd8]
//	risk: [0.25, 0.75]
//
// Membership validation against the attribute universe is deferred to
// the caller (the universe is not known at load time).
func LoadFile(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("concepts: read %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("concepts: parse %s: %w", path, err)
	}
	if len(cfg.Concepts) == 0 {
		return nil, ErrEmptyGrouping
	}
	for _, c := range cfg.Concepts {
		if c.Name == "" || len(c.Attributes) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyConcept, c.Name)
		}
	}
	return &cfg, nil
}
