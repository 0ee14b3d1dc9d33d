// Package yamlfile loads dialog definitions from YAML files.
//
// Handlers are code, not data: a step either names a handler registered by
// the host, or carries a reply template interpolated from the filled slots.
// A minimal definition:
//
//	name: transit
//	steps:
//	  - id: next_train
//	    slots:
//	      - name: Station
//	        prompt: "What station?"
//	    reply: "Next train from {Station} leaves in 5 minutes."
//	    transition: "Should I text you?"
//	  - id: send_text
//	    handler: send_text
package yamlfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"parley/pkg/domain"
)

// Registry maps handler names referenced in a dialog file to handlers.
type Registry map[string]domain.Handler

// Definition is a named, loaded dialog.
type Definition struct {
	Name   string
	Dialog *domain.Dialog
}

type dialogFile struct {
	Name  string     `yaml:"name"`
	Steps []stepSpec `yaml:"steps"`
}

type stepSpec struct {
	ID         string        `yaml:"id"`
	Slots      []domain.Slot `yaml:"slots"`
	Handler    string        `yaml:"handler"`
	Reply      string        `yaml:"reply"`
	Transition string        `yaml:"transition"`
}

// Load reads and parses a dialog definition file.
func Load(path string, reg Registry) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialog file: %w", err)
	}

	def, err := Parse(data, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

// Parse builds a validated dialog from raw YAML.
func Parse(data []byte, reg Registry) (*Definition, error) {
	var file dialogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid dialog yaml: %w", err)
	}

	steps := make([]domain.Step, 0, len(file.Steps))
	for _, spec := range file.Steps {
		handler, err := resolveHandler(spec, reg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.Step{
			ID:         spec.ID,
			Slots:      spec.Slots,
			Handler:    handler,
			Transition: spec.Transition,
		})
	}

	dialog, err := domain.NewDialog(steps...)
	if err != nil {
		return nil, err
	}

	return &Definition{Name: file.Name, Dialog: dialog}, nil
}

func resolveHandler(spec stepSpec, reg Registry) (domain.Handler, error) {
	if spec.Handler != "" {
		h, ok := reg[spec.Handler]
		if !ok {
			return nil, fmt.Errorf("step %q: handler %q is not registered", spec.ID, spec.Handler)
		}
		return h, nil
	}
	if spec.Reply != "" {
		return replyHandler(spec.Reply), nil
	}
	return nil, fmt.Errorf("step %q: needs either a handler or a reply template", spec.ID)
}

var tagPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// replyHandler builds a handler that fills {Slot} tags from the session.
// Tags without a filled value are left as-is.
func replyHandler(tmpl string) domain.Handler {
	return func(ctx context.Context, slots domain.SlotView) (string, error) {
		out := tagPattern.ReplaceAllStringFunc(tmpl, func(tag string) string {
			name := tag[1 : len(tag)-1]
			if v, ok := slots.Get(name); ok {
				return v
			}
			return tag
		})
		return out, nil
	}
}
