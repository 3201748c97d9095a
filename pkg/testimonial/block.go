package testimonial

import (
	"context"
	"strings"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

const (
	// Slug is the block name without namespace.
	Slug = "testimonial-block"
	// DefaultNamespace matches the namespace the block was published under.
	DefaultNamespace = "cgb"
	// Name is the fully qualified default block name.
	Name = DefaultNamespace + "/" + Slug
)

// Schema keeps all three fields on the block delimiter; none are sourced
// from markup.
func Schema() blocks.Schema {
	return blocks.Schema{
		string(domain.FieldContent): {Type: blocks.TypeString},
		string(domain.FieldAuthor):  {Type: blocks.TypeString},
		string(domain.FieldLink):    {Type: blocks.TypeString},
	}
}

type options struct {
	namespace string
}

// Option customizes the block definition.
type Option func(*options)

// WithNamespace registers the block under namespace instead of "cgb".
func WithNamespace(namespace string) Option {
	return func(o *options) {
		if ns := strings.TrimSpace(namespace); ns != "" {
			o.namespace = ns
		}
	}
}

// Definition describes the single testimonial block. Title and keywords are
// translated through host.
func Definition(host blocks.Host, opts ...Option) blocks.Type {
	settings := options{namespace: DefaultNamespace}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}
	name := settings.namespace + "/" + Slug
	return blocks.Type{
		Name:     name,
		Title:    host.Translate(translations.KeyTestimonialTitle),
		Icon:     "format-quote",
		Category: "common",
		Keywords: []string{
			host.Translate(translations.KeyTestimonialTitle),
			host.Translate(translations.KeyScaffoldKeyword),
		},
		Attributes: Schema(),
		Views: []templates.View{
			{Block: name, Name: "save", Body: saveView},
			{Block: name, Name: "edit", Body: editView},
		},
		New: func(attrs blocks.Attributes) (blocks.Instance, error) {
			quote := FromAttributes(attrs)
			quote.name = name
			return quote, nil
		},
	}
}

// Register adds the block to host.
func Register(ctx context.Context, host blocks.Host, opts ...Option) error {
	return host.RegisterBlock(ctx, Definition(host, opts...))
}
