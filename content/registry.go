// Package content holds the typed, read-only records that drive every
// rendered section of the portfolio: profile, stats, highlights, contact
// details, experience, tech stack and featured projects.
//
// The default registry is embedded at build time. Lists keep the order in
// which they are declared; nothing here sorts, filters or deduplicates.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var defaultYAML []byte

var defaultRegistry struct {
	once sync.Once
	reg  *Registry
}

// Default returns the registry embedded in the binary. The embedded
// document is validated by tests, so a failure here is a build defect.
func Default() *Registry {
	defaultRegistry.once.Do(func() {
		reg, err := Load(bytes.NewReader(defaultYAML))
		if err != nil {
			panic(fmt.Sprintf("content: embedded registry: %v", err))
		}
		defaultRegistry.reg = reg
	})
	return defaultRegistry.reg
}

// DefaultYAML returns a copy of the embedded registry document, used as a
// starting point for site owners who want their own content file.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Load decodes and validates a registry document.
func Load(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var reg Registry
	if err := dec.Decode(&reg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode registry: empty document")
		}
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// LoadFile reads a registry document from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the constraints the renderers rely on.
func (r *Registry) Validate() error {
	var errs []error
	if r.Profile.Name == "" {
		errs = append(errs, errors.New("profile: name is required"))
	}
	for i, e := range r.Experience {
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: title is required", i))
		}
		switch e.Status {
		case StatusCurrent, StatusCompleted:
		default:
			errs = append(errs, fmt.Errorf("experience[%d] %q: unknown status %q", i, e.Title, e.Status))
		}
	}
	for i, cat := range r.TechStack {
		if cat.Category == "" {
			errs = append(errs, fmt.Errorf("tech_stack[%d]: category is required", i))
		}
		for j, t := range cat.Technologies {
			if t.Level < 0 || t.Level > 100 {
				errs = append(errs, fmt.Errorf("tech_stack[%d].technologies[%d] %q: level %d outside 0-100", i, j, t.Name, t.Level))
			}
		}
	}
	for i, p := range r.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}
	return errors.Join(errs...)
}
