package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goliatone/go-testimonials/adapters/gocms"
)

func TestWriteWidget(t *testing.T) {
	var buf bytes.Buffer
	widget := gocms.WidgetDocument{
		Translations: []gocms.WidgetTranslation{{Locale: "en"}, {Locale: "es"}},
		Metadata:     map[string]any{"block": "cgb/testimonial-slider-block"},
	}
	if err := writeWidget(&buf, widget); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Widget 2 locales\n") || !strings.Contains(buf.String(), `"block": "cgb/testimonial-slider-block"`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteWidgetReportsEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	widget := gocms.WidgetDocument{Metadata: map[string]any{"bad": make(chan int)}}
	if err := writeWidget(&buf, widget); err == nil {
		t.Fatalf("expected encode error")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written on error, got %q", buf.String())
	}
}
