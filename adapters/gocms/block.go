package gocms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/document"
)

const (
	// ConfigBlockKey holds the registered block name in snapshot configuration.
	ConfigBlockKey = "block"
	// ContentMarkupKey holds the saved markup in translation content.
	ContentMarkupKey = "markup"
	// SourceName tags snapshots produced by this package.
	SourceName = "go-testimonials"
)

var (
	ErrNoTranslations = errors.New("gocms: snapshot has no translations")
	ErrBlockName      = errors.New("gocms: snapshot configuration has no block name")
	ErrFreeformBlock  = errors.New("gocms: freeform blocks cannot be exported")
)

// BlockVersionSnapshot mirrors the JSON snapshot emitted by go-cms block versions.
type BlockVersionSnapshot struct {
	Configuration map[string]any             `json:"configuration"`
	Translations  []BlockTranslationSnapshot `json:"translations"`
	Metadata      map[string]any             `json:"metadata"`
}

// BlockTranslationSnapshot mirrors the translation payload captured inside a block snapshot.
type BlockTranslationSnapshot struct {
	Locale             string         `json:"locale"`
	Content            map[string]any `json:"content"`
	AttributeOverrides map[string]any `json:"attribute_overrides"`
}

// SnapshotFromBlock exports block as a single translation in the host
// locale. Content carries the block attributes plus the saved markup.
func SnapshotFromBlock(ctx context.Context, host blocks.Host, block *document.Block) (BlockVersionSnapshot, error) {
	if block.Freeform() {
		return BlockVersionSnapshot{}, ErrFreeformBlock
	}
	markup, err := block.Instance.Save(ctx, host)
	if err != nil {
		return BlockVersionSnapshot{}, fmt.Errorf("gocms: save %s: %w", block.Name, err)
	}
	content := cloneMap(block.Instance.Attributes())
	content[ContentMarkupKey] = markup

	return BlockVersionSnapshot{
		Configuration: map[string]any{ConfigBlockKey: block.Name},
		Translations: []BlockTranslationSnapshot{
			{Locale: host.Locale(), Content: content},
		},
		Metadata: map[string]any{
			"client_id": block.ClientID.String(),
			"source":    SourceName,
		},
	}, nil
}

// ImportBlockSnapshot inserts the snapshot translation for locale into doc.
// When no translation matches, the first one is used. Attribute overrides
// replace content values of the same key.
func ImportBlockSnapshot(doc *document.Document, snapshot BlockVersionSnapshot, locale string) (*document.Block, error) {
	name := firstString(snapshot.Configuration, ConfigBlockKey)
	if name == "" {
		name = firstString(snapshot.Metadata, "definition")
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlockName
	}
	if len(snapshot.Translations) == 0 {
		return nil, ErrNoTranslations
	}

	tr := pickTranslation(snapshot.Translations, locale)
	attrs := blocks.Attributes(cloneMap(tr.Content))
	for key, value := range tr.AttributeOverrides {
		attrs[key] = cloneValue(value)
	}
	delete(attrs, ContentMarkupKey)

	block, err := doc.InsertWith(name, attrs)
	if err != nil {
		return nil, fmt.Errorf("gocms: import %s for locale %q: %w", name, tr.Locale, err)
	}
	return block, nil
}

func pickTranslation(translations []BlockTranslationSnapshot, locale string) BlockTranslationSnapshot {
	locale = strings.ToLower(strings.TrimSpace(locale))
	for _, tr := range translations {
		if strings.ToLower(tr.Locale) == locale {
			return tr
		}
	}
	return translations[0]
}
