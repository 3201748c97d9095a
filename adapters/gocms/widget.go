package gocms

import (
	"context"
	"fmt"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/document"
)

// WidgetDocument captures the structure go-cms emits when exporting widget instances.
type WidgetDocument struct {
	Configuration map[string]any      `json:"configuration"`
	Translations  []WidgetTranslation `json:"translations"`
	Metadata      map[string]any      `json:"metadata"`
}

// WidgetTranslation stores the locale + payload data for a widget.
type WidgetTranslation struct {
	Locale  string         `json:"locale"`
	Content map[string]any `json:"content"`
}

// WidgetFromBlock renders block once per host, producing one translation
// per host locale. Carousel control labels differ between locales.
func WidgetFromBlock(ctx context.Context, block *document.Block, hosts ...blocks.Host) (WidgetDocument, error) {
	if block.Freeform() {
		return WidgetDocument{}, ErrFreeformBlock
	}
	if len(hosts) == 0 {
		return WidgetDocument{}, ErrNoTranslations
	}
	translations := make([]WidgetTranslation, 0, len(hosts))
	for _, host := range hosts {
		markup, err := block.Instance.Save(ctx, host)
		if err != nil {
			return WidgetDocument{}, fmt.Errorf("gocms: render widget for locale %q: %w", host.Locale(), err)
		}
		translations = append(translations, WidgetTranslation{
			Locale:  host.Locale(),
			Content: map[string]any{ContentMarkupKey: markup},
		})
	}
	return WidgetDocument{
		Configuration: cloneMap(block.Instance.Attributes()),
		Translations:  translations,
		Metadata: map[string]any{
			ConfigBlockKey: block.Name,
			"source":       SourceName,
		},
	}, nil
}
