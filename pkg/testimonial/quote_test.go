package testimonial

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

func TestQuoteSetLeavesOtherFields(t *testing.T) {
	quote := NewQuote()
	if err := quote.Set(domain.FieldContent, "Great service"); err != nil {
		t.Fatalf("set content: %v", err)
	}
	if err := quote.Set(domain.FieldAuthor, "Ada"); err != nil {
		t.Fatalf("set author: %v", err)
	}
	if err := quote.Set(domain.FieldContent, ""); err != nil {
		t.Fatalf("clear content: %v", err)
	}

	attrs := quote.Attributes()
	if attrs.String("content") != "" || attrs.String("author") != "Ada" || attrs.String("link") != "" {
		t.Fatalf("unexpected attributes %#v", attrs)
	}
}

func TestQuoteSaveEmitsOnlyNonEmptyBlocks(t *testing.T) {
	host := newTestHost(t)
	ctx := context.Background()

	quote := NewQuote()
	quote.Author = "Ada <Lovelace>"
	markup, err := quote.Save(ctx, host)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if strings.Contains(markup, "testimonial-text-container") {
		t.Fatalf("empty content must suppress the text block: %s", markup)
	}
	if strings.Contains(markup, `<p class="testimonial-author-link">`) {
		t.Fatalf("empty link must suppress the link block: %s", markup)
	}
	if !strings.Contains(markup, `<span class="testimonial-author">- Ada &lt;Lovelace&gt;</span>`) {
		t.Fatalf("expected escaped author block: %s", markup)
	}
	if !strings.Contains(markup, `<div class="testimonial-author-container">`) {
		t.Fatalf("author container is always rendered: %s", markup)
	}

	attrs, err := blocks.Extract(markup, blocks.Schema{
		"author": {Type: blocks.TypeString, Source: blocks.SourceText, Selector: "span.testimonial-author"},
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if attrs.String("author") != "- Ada <Lovelace>" {
		t.Fatalf("unexpected extracted author %q", attrs.String("author"))
	}
}

func TestQuoteSaveFullMarkup(t *testing.T) {
	host := newTestHost(t)
	quote := FromAttributes(blocks.Attributes{
		"content": "Fast & friendly",
		"author":  "Grace",
		"link":    "https://example.com/?a=1&b=2",
	})

	markup, err := quote.Save(context.Background(), host)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	for _, want := range []string{
		`<span class="testimonial-text">Fast &amp; friendly</span>`,
		`href="https://example.com/?a=1&amp;b=2"`,
		`<span class="testimonial-author-link">https://example.com/?a=1&amp;b=2</span>`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected %q in %s", want, markup)
		}
	}
}

func TestQuoteEditRendersInputs(t *testing.T) {
	host := newTestHost(t)
	quote := NewQuote()
	quote.Link = "https://example.com"

	markup, err := quote.Edit(context.Background(), host)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	for _, want := range []string{
		`class="wp-block-cgb-testimonial-block"`,
		"Insert testimonial here:",
		`placeholder="Testimonial text"`,
		`placeholder="Author"`,
		`data-field="link"`,
		">https://example.com</textarea>",
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected %q in %s", want, markup)
		}
	}
}

func TestDefinitionDescriptor(t *testing.T) {
	host := newTestHost(t)
	def := Definition(host, WithNamespace("acme"))
	if def.Name != "acme/testimonial-block" {
		t.Fatalf("unexpected name %s", def.Name)
	}
	if def.Title != "Testimonial Block" || def.Icon != "format-quote" || def.Category != "common" {
		t.Fatalf("unexpected descriptor %+v", def)
	}
	if len(def.Keywords) != 2 || def.Keywords[1] != "create-guten-block" {
		t.Fatalf("unexpected keywords %v", def.Keywords)
	}
	instance, err := def.Instantiate(nil)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	if instance.(*Quote).BlockName() != "acme/testimonial-block" {
		t.Fatalf("instance should render under the registered name")
	}
}

func newTestHost(t *testing.T) *blocks.Runtime {
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
	if err := Register(context.Background(), host); err != nil {
		t.Fatalf("register: %v", err)
	}
	return host
}
