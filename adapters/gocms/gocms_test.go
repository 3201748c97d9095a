package gocms

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/document"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/slider"
	"github.com/goliatone/go-testimonials/pkg/testimonial"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

func TestSliderSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	host := newTestHost(t)
	source := newTestDocument(t, host)

	block, err := source.Insert(slider.Name)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	carousel := block.Instance.(*slider.Block)
	for _, content := range []string{"first", "second <b>"} {
		rec := carousel.AddRecord()
		if err := carousel.UpdateField(rec.Index, domain.FieldContent, content); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	snapshot, err := SnapshotFromBlock(ctx, host, block)
	if err != nil {
		t.Fatalf("SnapshotFromBlock: %v", err)
	}
	if snapshot.Configuration[ConfigBlockKey] != slider.Name {
		t.Fatalf("unexpected configuration %#v", snapshot.Configuration)
	}
	markup, _ := snapshot.Translations[0].Content[ContentMarkupKey].(string)
	if !strings.Contains(markup, "second &lt;b&gt;") {
		t.Fatalf("expected saved markup in content: %q", markup)
	}

	var decoded BlockVersionSnapshot
	payload, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	target := newTestDocument(t, host)
	imported, err := ImportBlockSnapshot(target, decoded, "en")
	if err != nil {
		t.Fatalf("ImportBlockSnapshot: %v", err)
	}
	got := imported.Instance.(*slider.Block)
	if got.GroupID() != carousel.GroupID() {
		t.Fatalf("group id differs: %q vs %q", got.GroupID(), carousel.GroupID())
	}
	want, have := carousel.Records(), got.Records()
	if len(want) != len(have) {
		t.Fatalf("expected %d records, got %d", len(want), len(have))
	}
	for i := range want {
		if want[i].Index != have[i].Index || want[i].Testimonial != have[i].Testimonial {
			t.Fatalf("record %d differs: %+v vs %+v", i, have[i], want[i])
		}
	}
}

func TestImportAppliesOverridesAndLocale(t *testing.T) {
	host := newTestHost(t)
	doc := newTestDocument(t, host)
	snapshot := BlockVersionSnapshot{
		Configuration: map[string]any{ConfigBlockKey: testimonial.Name},
		Translations: []BlockTranslationSnapshot{
			{Locale: "en", Content: map[string]any{"content": "Great", "author": "Ada"}},
			{
				Locale:             "es",
				Content:            map[string]any{"content": "Genial", "author": "Ada"},
				AttributeOverrides: map[string]any{"link": "https://example.com/es"},
			},
		},
	}

	block, err := ImportBlockSnapshot(doc, snapshot, "ES")
	if err != nil {
		t.Fatalf("ImportBlockSnapshot: %v", err)
	}
	quote := block.Instance.(*testimonial.Quote)
	if quote.Content != "Genial" || quote.Link != "https://example.com/es" {
		t.Fatalf("unexpected quote %+v", quote.Testimonial)
	}

	block, err = ImportBlockSnapshot(doc, snapshot, "fr")
	if err != nil {
		t.Fatalf("ImportBlockSnapshot fallback: %v", err)
	}
	if block.Instance.(*testimonial.Quote).Content != "Great" {
		t.Fatalf("expected first translation as fallback")
	}
}

func TestImportErrors(t *testing.T) {
	host := newTestHost(t)
	doc := newTestDocument(t, host)

	if _, err := ImportBlockSnapshot(doc, BlockVersionSnapshot{}, "en"); !errors.Is(err, ErrBlockName) {
		t.Fatalf("expected ErrBlockName, got %v", err)
	}
	snapshot := BlockVersionSnapshot{Metadata: map[string]any{"definition": testimonial.Name}}
	if _, err := ImportBlockSnapshot(doc, snapshot, "en"); !errors.Is(err, ErrNoTranslations) {
		t.Fatalf("expected ErrNoTranslations, got %v", err)
	}
	snapshot = BlockVersionSnapshot{
		Configuration: map[string]any{ConfigBlockKey: "cgb/unknown"},
		Translations:  []BlockTranslationSnapshot{{Locale: "en"}},
	}
	if _, err := ImportBlockSnapshot(doc, snapshot, "en"); !errors.Is(err, blocks.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}

	freeform, err := document.Parse(host, "<p>plain</p>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := SnapshotFromBlock(context.Background(), host, freeform.Blocks()[0]); !errors.Is(err, ErrFreeformBlock) {
		t.Fatalf("expected ErrFreeformBlock, got %v", err)
	}
}

func TestWidgetFromBlockPerLocale(t *testing.T) {
	host := newTestHost(t)
	doc := newTestDocument(t, host)
	block, err := doc.Insert(slider.Name)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	block.Instance.(*slider.Block).AddRecord()

	widget, err := WidgetFromBlock(context.Background(), block, host, host.WithLocale("es"))
	if err != nil {
		t.Fatalf("WidgetFromBlock: %v", err)
	}
	if len(widget.Translations) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(widget.Translations))
	}
	es := widget.Translations[1]
	if es.Locale != "es" || !strings.Contains(es.Content[ContentMarkupKey].(string), "Anterior") {
		t.Fatalf("expected localized controls: %#v", es)
	}
	if widget.Metadata[ConfigBlockKey] != slider.Name {
		t.Fatalf("unexpected metadata %#v", widget.Metadata)
	}
	if _, ok := widget.Configuration[slider.AttrTestimonials]; !ok {
		t.Fatalf("expected attributes in configuration")
	}

	if _, err := WidgetFromBlock(context.Background(), block); !errors.Is(err, ErrNoTranslations) {
		t.Fatalf("expected ErrNoTranslations, got %v", err)
	}
}

func TestFindValue(t *testing.T) {
	source := map[string]any{"outer": domain.Attributes{"inner": "value"}}
	if got := firstString(source, "outer.inner"); got != "value" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := firstString(source, "outer.missing.deeper"); got != "" {
		t.Fatalf("expected empty for missing path, got %q", got)
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
	ctx := context.Background()
	if err := testimonial.Register(ctx, host); err != nil {
		t.Fatalf("register testimonial: %v", err)
	}
	if err := slider.Register(ctx, host); err != nil {
		t.Fatalf("register slider: %v", err)
	}
	return host
}

func newTestDocument(t *testing.T, host *blocks.Runtime) *document.Document {
	t.Helper()
	doc, err := document.New(host)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	return doc
}
