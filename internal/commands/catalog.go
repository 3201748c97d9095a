package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-testimonials/pkg/document"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
	"github.com/goliatone/go-testimonials/pkg/slider"
	"github.com/goliatone/go-testimonials/pkg/testimonial"
)

var (
	ErrInvalidBlockID = errors.New("commands: invalid block id")
	ErrWrongBlockType = errors.New("commands: block does not support this command")
)

// Catalog exposes go-command compatible handlers for editor input events.
type Catalog struct {
	AddTestimonial    command.Commander[AddTestimonial]
	UpdateTestimonial command.Commander[UpdateTestimonial]
	RemoveTestimonial command.Commander[RemoveTestimonial]
	SetQuoteField     command.Commander[SetQuoteField]
	RemoveBlock       command.Commander[RemoveBlock]
}

type documentService interface {
	Update(clientID uuid.UUID, fn func(*document.Block) error) error
	Remove(clientID uuid.UUID) error
}

// Dependencies wires the edited document into the command catalog.
type Dependencies struct {
	Document documentService
	Logger   logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Document == nil {
		return nil, errors.New("commands: document is required")
	}
	log := logger.OrNop(deps.Logger)

	return &Catalog{
		AddTestimonial:    addTestimonialCommand{doc: deps.Document, logger: log},
		UpdateTestimonial: updateTestimonialCommand{doc: deps.Document, logger: log},
		RemoveTestimonial: removeTestimonialCommand{doc: deps.Document, logger: log},
		SetQuoteField:     setQuoteFieldCommand{doc: deps.Document, logger: log},
		RemoveBlock:       removeBlockCommand{doc: deps.Document, logger: log},
	}, nil
}

// AddTestimonial appends an empty record to a slider block.
type AddTestimonial struct {
	BlockID string `json:"block_id"`
}

// UpdateTestimonial replaces one field of the slider record at Index.
type UpdateTestimonial struct {
	BlockID string `json:"block_id"`
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// RemoveTestimonial deletes the slider record at Index.
type RemoveTestimonial struct {
	BlockID string `json:"block_id"`
	Index   int    `json:"index"`
}

// SetQuoteField replaces one field of a single testimonial block.
type SetQuoteField struct {
	BlockID string `json:"block_id"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// RemoveBlock deletes a block from the document.
type RemoveBlock struct {
	BlockID string `json:"block_id"`
}

type addTestimonialCommand struct {
	doc    documentService
	logger logger.Logger
}

func (c addTestimonialCommand) Execute(ctx context.Context, msg AddTestimonial) error {
	return withSlider(c.doc, msg.BlockID, func(b *slider.Block) error {
		rec := b.AddRecord()
		c.logger.Debug("testimonial added", logger.F("block_id", msg.BlockID), logger.F("index", rec.Index))
		return nil
	})
}

type updateTestimonialCommand struct {
	doc    documentService
	logger logger.Logger
}

func (c updateTestimonialCommand) Execute(ctx context.Context, msg UpdateTestimonial) error {
	field, err := domain.ParseField(msg.Field)
	if err != nil {
		return err
	}
	return withSlider(c.doc, msg.BlockID, func(b *slider.Block) error {
		if err := b.UpdateField(msg.Index, field, msg.Value); err != nil {
			return err
		}
		c.logger.Debug("testimonial updated",
			logger.F("block_id", msg.BlockID),
			logger.F("index", msg.Index),
			logger.F("field", field.String()),
			logger.Masked("value", msg.Value),
		)
		return nil
	})
}

type removeTestimonialCommand struct {
	doc    documentService
	logger logger.Logger
}

func (c removeTestimonialCommand) Execute(ctx context.Context, msg RemoveTestimonial) error {
	return withSlider(c.doc, msg.BlockID, func(b *slider.Block) error {
		if err := b.RemoveRecord(msg.Index); err != nil {
			return err
		}
		c.logger.Debug("testimonial removed", logger.F("block_id", msg.BlockID), logger.F("index", msg.Index))
		return nil
	})
}

type setQuoteFieldCommand struct {
	doc    documentService
	logger logger.Logger
}

func (c setQuoteFieldCommand) Execute(ctx context.Context, msg SetQuoteField) error {
	field, err := domain.ParseField(msg.Field)
	if err != nil {
		return err
	}
	id, err := parseBlockID(msg.BlockID)
	if err != nil {
		return err
	}
	return c.doc.Update(id, func(block *document.Block) error {
		quote, ok := block.Instance.(*testimonial.Quote)
		if !ok {
			return fmt.Errorf("%w: %s", ErrWrongBlockType, block.Name)
		}
		if err := quote.Set(field, msg.Value); err != nil {
			return err
		}
		c.logger.Debug("quote updated",
			logger.F("block_id", msg.BlockID),
			logger.F("field", field.String()),
			logger.Masked("value", msg.Value),
		)
		return nil
	})
}

type removeBlockCommand struct {
	doc    documentService
	logger logger.Logger
}

func (c removeBlockCommand) Execute(ctx context.Context, msg RemoveBlock) error {
	id, err := parseBlockID(msg.BlockID)
	if err != nil {
		return err
	}
	if err := c.doc.Remove(id); err != nil {
		return err
	}
	c.logger.Debug("block removed", logger.F("block_id", msg.BlockID))
	return nil
}

func withSlider(doc documentService, rawID string, fn func(*slider.Block) error) error {
	id, err := parseBlockID(rawID)
	if err != nil {
		return err
	}
	return doc.Update(id, func(block *document.Block) error {
		carousel, ok := block.Instance.(*slider.Block)
		if !ok {
			return fmt.Errorf("%w: %s", ErrWrongBlockType, block.Name)
		}
		return fn(carousel)
	})
}

func parseBlockID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidBlockID, raw)
	}
	return id, nil
}
