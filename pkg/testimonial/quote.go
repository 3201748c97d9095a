package testimonial

import (
	"context"
	"strings"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

// Quote is the state of one single testimonial block.
type Quote struct {
	domain.Testimonial
	name string
}

var _ blocks.Instance = (*Quote)(nil)

// NewQuote returns an empty quote bound to the default block name.
func NewQuote() *Quote {
	return &Quote{name: Name}
}

// FromAttributes reads the three fields; missing values are empty.
func FromAttributes(attrs blocks.Attributes) *Quote {
	return &Quote{
		Testimonial: domain.Testimonial{
			Content: attrs.String(string(domain.FieldContent)),
			Author:  attrs.String(string(domain.FieldAuthor)),
			Link:    attrs.String(string(domain.FieldLink)),
		}.Normalized(),
		name: Name,
	}
}

// BlockName returns the registered name this quote renders under.
func (q *Quote) BlockName() string {
	if q.name == "" {
		return Name
	}
	return q.name
}

// Attributes exposes the current field values.
func (q *Quote) Attributes() blocks.Attributes {
	return blocks.Attributes{
		string(domain.FieldContent): q.Content,
		string(domain.FieldAuthor):  q.Author,
		string(domain.FieldLink):    q.Link,
	}
}

// Save renders the stored markup. Each presentation block is emitted only
// when its field is non-empty.
func (q *Quote) Save(ctx context.Context, host blocks.Host) (string, error) {
	return host.Render(ctx, q.BlockName(), "save", map[string]any{
		"content": blocks.EscapeText(q.Content),
		"author":  blocks.EscapeText(q.Author),
		"link":    blocks.EscapeText(q.Link),
	})
}

// Edit renders the authoring form with one plain text input per field.
func (q *Quote) Edit(ctx context.Context, host blocks.Host) (string, error) {
	return host.Render(ctx, q.BlockName(), "edit", map[string]any{
		"wrapper_class": wrapperClass(q.BlockName()),
		"content_input": host.PlainText(blocks.PlainTextProps{
			Class:       "content-plain-text",
			Placeholder: host.Translate(translations.KeyContentLabel),
			Value:       q.Content,
			Field:       string(domain.FieldContent),
			Rows:        3,
		}),
		"author_input": host.PlainText(blocks.PlainTextProps{
			Class:       "author-plain-text",
			Placeholder: host.Translate(translations.KeyAuthorLabel),
			Value:       q.Author,
			Field:       string(domain.FieldAuthor),
		}),
		"link_input": host.PlainText(blocks.PlainTextProps{
			Class:       "link-plain-text",
			Placeholder: host.Translate(translations.KeyLinkLabel),
			Value:       q.Link,
			Field:       string(domain.FieldLink),
		}),
	})
}

// wrapperClass mirrors the host's wp-block-<namespace>-<slug> convention.
func wrapperClass(name string) string {
	return "wp-block-" + strings.ReplaceAll(name, "/", "-")
}
