package blocks

import (
	"context"
	"regexp"
	"strings"

	"github.com/goliatone/go-testimonials/internal/templates"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*/[a-z][a-z0-9-]*$`)

// Instance is the typed state of one block in a document. The host invokes
// Edit while authoring and Save when persisting; both must be pure
// functions of the instance state.
type Instance interface {
	Attributes() Attributes
	Edit(ctx context.Context, host Host) (string, error)
	Save(ctx context.Context, host Host) (string, error)
}

// Initializer is implemented by instances that need a one time setup step
// when inserted into a document or loaded from markup.
type Initializer interface {
	Initialize()
}

// Factory builds an instance from extracted attributes.
type Factory func(attrs Attributes) (Instance, error)

// Type describes a block to the host: identity, presentation in the
// inserter, persisted attributes and the instance factory.
type Type struct {
	Name       string
	Title      string
	Icon       string
	Category   string
	Keywords   []string
	Attributes Schema
	Views      []templates.View
	New        Factory
}

// Namespace returns the part of the name before the slash.
func (t Type) Namespace() string {
	ns, _, _ := strings.Cut(t.Name, "/")
	return ns
}

// Validate checks the descriptor before registration.
func (t Type) Validate() error {
	if !ValidName(t.Name) {
		return ErrInvalidName
	}
	if t.New == nil {
		return ErrFactoryRequired
	}
	return t.Attributes.Validate()
}

// Instantiate merges attrs over the schema defaults and calls the factory.
func (t Type) Instantiate(attrs Attributes) (Instance, error) {
	if t.New == nil {
		return nil, ErrFactoryRequired
	}
	merged := t.Attributes.Defaults()
	for key, value := range attrs {
		merged[key] = value
	}
	instance, err := t.New(merged)
	if err != nil {
		return nil, err
	}
	if init, ok := instance.(Initializer); ok {
		init.Initialize()
	}
	return instance, nil
}

// ValidName reports whether name is a lower case namespace/name pair.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}
