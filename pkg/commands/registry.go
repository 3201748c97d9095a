package commands

import (
	command "github.com/goliatone/go-command"

	internalcommands "github.com/goliatone/go-testimonials/internal/commands"
	"github.com/goliatone/go-testimonials/pkg/document"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
)

// Re-export request types so consumers need not import internal packages.
type (
	AddTestimonial    = internalcommands.AddTestimonial
	UpdateTestimonial = internalcommands.UpdateTestimonial
	RemoveTestimonial = internalcommands.RemoveTestimonial
	SetQuoteField     = internalcommands.SetQuoteField
	RemoveBlock       = internalcommands.RemoveBlock
)

var (
	ErrInvalidBlockID = internalcommands.ErrInvalidBlockID
	ErrWrongBlockType = internalcommands.ErrWrongBlockType
)

// Registry exposes go-command compatible handlers bound to one document.
type Registry struct {
	Catalog           *internalcommands.Catalog
	AddTestimonial    command.Commander[AddTestimonial]
	UpdateTestimonial command.Commander[UpdateTestimonial]
	RemoveTestimonial command.Commander[RemoveTestimonial]
	SetQuoteField     command.Commander[SetQuoteField]
	RemoveBlock       command.Commander[RemoveBlock]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Document *document.Document
	Logger   logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	internalDeps := internalcommands.Dependencies{Logger: deps.Logger}
	if deps.Document != nil {
		internalDeps.Document = deps.Document
	}
	catalog, err := internalcommands.NewCatalog(internalDeps)
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:           catalog,
		AddTestimonial:    catalog.AddTestimonial,
		UpdateTestimonial: catalog.UpdateTestimonial,
		RemoveTestimonial: catalog.RemoveTestimonial,
		SetQuoteField:     catalog.SetQuoteField,
		RemoveBlock:       catalog.RemoveBlock,
	}, nil
}

// Commanders returns every handler so callers can register them with go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.AddTestimonial,
		r.UpdateTestimonial,
		r.RemoveTestimonial,
		r.SetQuoteField,
		r.RemoveBlock,
	}
}
