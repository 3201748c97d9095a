package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/document"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/slider"
	"github.com/goliatone/go-testimonials/pkg/testimonial"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()
	doc := newTestDocument(t)
	cat, err := NewCatalog(Dependencies{Document: doc})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	carousel, err := doc.Insert(slider.Name)
	if err != nil {
		t.Fatalf("insert slider: %v", err)
	}
	sliderID := carousel.ClientID.String()
	for i := 0; i < 3; i++ {
		if err := cat.AddTestimonial.Execute(ctx, AddTestimonial{BlockID: sliderID}); err != nil {
			t.Fatalf("add testimonial: %v", err)
		}
	}
	for i, content := range []string{"A", "B", "C"} {
		if err := cat.UpdateTestimonial.Execute(ctx, UpdateTestimonial{BlockID: sliderID, Index: i, Field: "content", Value: content}); err != nil {
			t.Fatalf("update testimonial: %v", err)
		}
	}
	if err := cat.RemoveTestimonial.Execute(ctx, RemoveTestimonial{BlockID: sliderID, Index: 1}); err != nil {
		t.Fatalf("remove testimonial: %v", err)
	}

	records := carousel.Instance.(*slider.Block).Sorted()
	if len(records) != 2 || records[0].Content != "A" || records[1].Content != "C" || records[1].Index != 1 {
		t.Fatalf("unexpected records %+v", records)
	}

	quote, err := doc.Insert(testimonial.Name)
	if err != nil {
		t.Fatalf("insert quote: %v", err)
	}
	if err := cat.SetQuoteField.Execute(ctx, SetQuoteField{BlockID: quote.ClientID.String(), Field: "Author", Value: "Ada"}); err != nil {
		t.Fatalf("set quote field: %v", err)
	}
	if got := quote.Instance.(*testimonial.Quote).Author; got != "Ada" {
		t.Fatalf("expected author set, got %q", got)
	}

	if err := cat.RemoveBlock.Execute(ctx, RemoveBlock{BlockID: quote.ClientID.String()}); err != nil {
		t.Fatalf("remove block: %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("expected one block left, got %d", doc.Len())
	}
}

func TestCatalogCommandErrors(t *testing.T) {
	ctx := context.Background()
	doc := newTestDocument(t)
	cat, err := NewCatalog(Dependencies{Document: doc})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	quote, err := doc.Insert(testimonial.Name)
	if err != nil {
		t.Fatalf("insert quote: %v", err)
	}
	carousel, err := doc.Insert(slider.Name)
	if err != nil {
		t.Fatalf("insert slider: %v", err)
	}

	if err := cat.AddTestimonial.Execute(ctx, AddTestimonial{BlockID: "nope"}); !errors.Is(err, ErrInvalidBlockID) {
		t.Fatalf("expected ErrInvalidBlockID, got %v", err)
	}
	if err := cat.AddTestimonial.Execute(ctx, AddTestimonial{BlockID: quote.ClientID.String()}); !errors.Is(err, ErrWrongBlockType) {
		t.Fatalf("expected ErrWrongBlockType, got %v", err)
	}
	if err := cat.SetQuoteField.Execute(ctx, SetQuoteField{BlockID: carousel.ClientID.String(), Field: "content"}); !errors.Is(err, ErrWrongBlockType) {
		t.Fatalf("expected ErrWrongBlockType, got %v", err)
	}
	if err := cat.UpdateTestimonial.Execute(ctx, UpdateTestimonial{BlockID: carousel.ClientID.String(), Index: 0, Field: "content"}); !errors.Is(err, slider.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if err := cat.UpdateTestimonial.Execute(ctx, UpdateTestimonial{BlockID: carousel.ClientID.String(), Field: "title"}); !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := cat.RemoveBlock.Execute(ctx, RemoveBlock{BlockID: "00000000-0000-0000-0000-000000000001"}); !errors.Is(err, document.ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}

	if _, err := NewCatalog(Dependencies{}); err == nil {
		t.Fatalf("expected error without document")
	}
}

func newTestDocument(t *testing.T) *document.Document {
	t.Helper()
	translator, err := translations.NewTranslator("en")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	svc, err := templates.NewService(translator, templates.WithDefaultLocale("en"))
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	host, err := blocks.NewHost(blocks.Dependencies{Translator: translator, Templates: svc})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	ctx := context.Background()
	if err := testimonial.Register(ctx, host); err != nil {
		t.Fatalf("register testimonial: %v", err)
	}
	if err := slider.Register(ctx, host); err != nil {
		t.Fatalf("register slider: %v", err)
	}
	doc, err := document.New(host)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	return doc
}
