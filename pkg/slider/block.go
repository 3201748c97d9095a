package slider

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/domain"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

const (
	// Slug is the block name without namespace.
	Slug = "testimonial-slider-block"
	// DefaultNamespace matches the namespace the block was published under.
	DefaultNamespace = "cgb"
	// Name is the fully qualified default block name.
	Name = DefaultNamespace + "/" + Slug
	// DefaultGroupIDPrefix prefixes generated carousel ids.
	DefaultGroupIDPrefix = "testimonial-"

	AttrTestimonials = "testimonials"
	AttrGroupID      = "id"
)

// Schema is the extraction contract for Save output. Change both together.
func Schema() blocks.Schema {
	return blocks.Schema{
		AttrTestimonials: {
			Type:     blocks.TypeArray,
			Source:   blocks.SourceQuery,
			Selector: "blockquote.testimonial",
			Query: map[string]blocks.Attribute{
				"index":   {Type: blocks.TypeString, Source: blocks.SourceText, Selector: "span.testimonial-index"},
				"content": {Type: blocks.TypeString, Source: blocks.SourceText, Selector: "span.testimonial-text"},
				"author":  {Type: blocks.TypeString, Source: blocks.SourceText, Selector: "span.testimonial-author span"},
				"link":    {Type: blocks.TypeString, Source: blocks.SourceText, Selector: ".testimonial-author-link"},
			},
		},
		AttrGroupID: {
			Type:      blocks.TypeString,
			Source:    blocks.SourceAttribute,
			Selector:  ".carousel.slide",
			Attribute: "id",
		},
	}
}

type options struct {
	namespace     string
	saveSorted    bool
	groupIDPrefix string
}

// Option customizes the slider definition.
type Option func(*options)

// WithNamespace registers the block under namespace instead of "cgb".
func WithNamespace(namespace string) Option {
	return func(o *options) {
		if ns := strings.TrimSpace(namespace); ns != "" {
			o.namespace = ns
		}
	}
}

// WithSortedSave emits carousel items in index order rather than storage order.
func WithSortedSave(enabled bool) Option {
	return func(o *options) {
		o.saveSorted = enabled
	}
}

// WithGroupIDPrefix changes the prefix of generated group ids.
func WithGroupIDPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.groupIDPrefix = prefix
		}
	}
}

func buildOptions(opts []Option) options {
	settings := options{
		namespace:     DefaultNamespace,
		groupIDPrefix: DefaultGroupIDPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}
	return settings
}

// Definition describes the slider block to the host.
func Definition(host blocks.Host, opts ...Option) blocks.Type {
	settings := buildOptions(opts)
	name := settings.namespace + "/" + Slug
	return blocks.Type{
		Name:     name,
		Title:    host.Translate(translations.KeySliderTitle),
		Icon:     "format-quote",
		Category: "common",
		Keywords: []string{
			host.Translate(translations.KeySliderTitle),
			host.Translate(translations.KeyScaffoldKeyword),
		},
		Attributes: Schema(),
		Views: []templates.View{
			{Block: name, Name: "save", Body: saveView, Required: []string{"group_id", "items"}},
			{Block: name, Name: "edit", Body: editView, Required: []string{"items"}},
		},
		New: func(attrs blocks.Attributes) (blocks.Instance, error) {
			return newBlock(name, settings, FromAttributes(attrs)), nil
		},
	}
}

// Register adds the slider block to host.
func Register(ctx context.Context, host blocks.Host, opts ...Option) error {
	return host.RegisterBlock(ctx, Definition(host, opts...))
}

// Block binds a collection to the host as a block instance.
type Block struct {
	*Collection
	name       string
	saveSorted bool
	groupIDs   GroupIDFunc
}

var (
	_ blocks.Instance    = (*Block)(nil)
	_ blocks.Initializer = (*Block)(nil)
)

// NewBlock wraps collection with default options.
func NewBlock(collection *Collection, opts ...Option) *Block {
	settings := buildOptions(opts)
	return newBlock(settings.namespace+"/"+Slug, settings, collection)
}

func newBlock(name string, settings options, collection *Collection) *Block {
	if collection == nil {
		collection = NewCollection()
	}
	return &Block{
		Collection: collection,
		name:       name,
		saveSorted: settings.saveSorted,
		groupIDs:   NewGroupIDFunc(settings.groupIDPrefix),
	}
}

// BlockName returns the registered name the block renders under.
func (b *Block) BlockName() string {
	return b.name
}

// Initialize assigns the group id once, at insertion or load time.
func (b *Block) Initialize() {
	b.EnsureGroupID(b.groupIDs)
}

// Attributes exposes the collection in storage order, using the same value
// shapes Extract produces.
func (b *Block) Attributes() blocks.Attributes {
	records := b.Records()
	items := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		items = append(items, map[string]any{
			"index":   strconv.Itoa(rec.Index),
			"content": rec.Content,
			"author":  rec.Author,
			"link":    rec.Link,
		})
	}
	return blocks.Attributes{
		AttrTestimonials: items,
		AttrGroupID:      b.GroupID(),
	}
}

// Edit renders the authoring form, records sorted by index.
func (b *Block) Edit(ctx context.Context, host blocks.Host) (string, error) {
	records := b.Sorted()
	wrapper := "wp-block-" + strings.ReplaceAll(b.name, "/", "-")
	items := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		index := rec.Index
		items = append(items, map[string]any{
			"index":  index,
			"number": index + 1,
			"content_input": host.PlainText(blocks.PlainTextProps{
				Class:       "content-plain-text",
				Placeholder: host.Translate(translations.KeyContentLabel),
				Value:       rec.Content,
				Field:       string(domain.FieldContent),
				Index:       &index,
				Rows:        3,
				AutoFocus:   true,
			}),
			"author_input": host.PlainText(blocks.PlainTextProps{
				Class:       "author-plain-text",
				Placeholder: host.Translate(translations.KeyAuthorLabel),
				Value:       rec.Author,
				Field:       string(domain.FieldAuthor),
				Index:       &index,
			}),
			"link_input": host.PlainText(blocks.PlainTextProps{
				Class:       "link-plain-text",
				Placeholder: host.Translate(translations.KeyLinkLabel),
				Value:       rec.Link,
				Field:       string(domain.FieldLink),
				Index:       &index,
			}),
		})
	}
	return host.Render(ctx, b.name, "edit", map[string]any{
		"wrapper_class": wrapper,
		"group_id":      blocks.EscapeText(b.GroupID()),
		"items":         items,
	})
}
