package slider

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/domain"
)

// Save renders the stored carousel markup. An empty collection renders
// nothing at all.
func (b *Block) Save(ctx context.Context, host blocks.Host) (string, error) {
	if b.Len() == 0 {
		return "", nil
	}
	records := b.Records()
	if b.saveSorted {
		SortByIndex(records)
	}
	return host.Render(ctx, b.name, "save", map[string]any{
		"group_id": blocks.EscapeText(b.GroupID()),
		"items":    saveItems(records),
	})
}

// saveItems prepares template data. The first record with index 0 is the
// active slide; when none has index 0 the first emitted record is used so
// the carousel always shows something.
func saveItems(records []Record) []map[string]any {
	active := ActivePosition(records)
	items := make([]map[string]any, 0, len(records))
	for position, rec := range records {
		activeClass := ""
		if position == active {
			activeClass = "active"
		}
		items = append(items, map[string]any{
			"position":     position,
			"index":        rec.Index,
			"active":       position == active,
			"active_class": activeClass,
			"content":      blocks.EscapeText(rec.Content),
			"author":       blocks.EscapeText(rec.Author),
			"link":         blocks.EscapeText(rec.Link),
		})
	}
	return items
}

// ActivePosition returns the position of the record marked active, or -1
// for an empty slice.
func ActivePosition(records []Record) int {
	if len(records) == 0 {
		return -1
	}
	for position, rec := range records {
		if rec.Index == 0 {
			return position
		}
	}
	return 0
}

// Parse rebuilds a collection from Save output. Unparsable indices fall
// back to the record position; missing text fields are empty.
func Parse(markup string) (*Collection, error) {
	attrs, err := blocks.Extract(markup, Schema())
	if err != nil {
		return nil, fmt.Errorf("slider: parse: %w", err)
	}
	return FromAttributes(attrs), nil
}

// FromAttributes builds a collection from an attribute bag as produced by
// Extract or Block.Attributes.
func FromAttributes(attrs blocks.Attributes) *Collection {
	items := attrs.List(AttrTestimonials)
	records := make([]Record, 0, len(items))
	for position, item := range items {
		fields := domain.Attributes(item)
		records = append(records, Record{
			Index: parseIndex(item["index"], position),
			Testimonial: domain.Testimonial{
				Content: fields.String("content"),
				Author:  fields.String("author"),
				Link:    fields.String("link"),
			},
		})
	}
	return LoadCollection(strings.TrimSpace(attrs.String(AttrGroupID)), records)
}

func parseIndex(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			return v
		}
	case int64:
		if v >= 0 {
			return int(v)
		}
	case float64:
		if v >= 0 && v == float64(int(v)) {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
