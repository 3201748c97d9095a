package blocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	i18n "github.com/goliatone/go-i18n"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
)

// Host is the capability set the editor hands to block implementations in
// place of ambient globals: translation, registration, input primitives and
// markup rendering.
type Host interface {
	Locale() string
	Translate(key string, args ...any) string
	RegisterBlock(ctx context.Context, t Type) error
	PlainText(props PlainTextProps) string
	Render(ctx context.Context, block, view string, data map[string]any) (string, error)
}

// PlainTextProps configures the plain text input primitive.
type PlainTextProps struct {
	Class       string
	Placeholder string
	Value       string
	Field       string
	// Index binds the input to a list item; nil for scalar attributes.
	Index     *int
	Rows      int
	AutoFocus bool
}

// Dependencies wires the runtime host.
type Dependencies struct {
	Registry   *Registry
	Templates  *templates.Service
	Translator i18n.Translator
	Locale     string
	Logger     logger.Logger
}

// Runtime is the default Host implementation.
type Runtime struct {
	registry   *Registry
	templates  *templates.Service
	translator i18n.Translator
	locale     string
	logger     logger.Logger
}

var _ Host = (*Runtime)(nil)

// NewHost builds a runtime host. A registry is created when none is given.
func NewHost(deps Dependencies) (*Runtime, error) {
	if deps.Translator == nil {
		return nil, templates.ErrTranslatorRequired
	}
	if deps.Templates == nil {
		return nil, ErrTemplatesRequired
	}
	registry := deps.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	locale := strings.TrimSpace(deps.Locale)
	if locale == "" {
		locale = deps.Templates.DefaultLocale()
	}
	return &Runtime{
		registry:   registry,
		templates:  deps.Templates,
		translator: deps.Translator,
		locale:     locale,
		logger:     logger.OrNop(deps.Logger),
	}, nil
}

// WithLocale returns a host sharing the registry and templates but
// translating into locale.
func (r *Runtime) WithLocale(locale string) *Runtime {
	next := *r
	if locale = strings.TrimSpace(locale); locale != "" {
		next.locale = locale
	}
	return &next
}

// Registry exposes the registry backing RegisterBlock.
func (r *Runtime) Registry() *Registry {
	return r.registry
}

func (r *Runtime) Locale() string {
	return r.locale
}

// Translate resolves key in the host locale. Missing keys return the key.
func (r *Runtime) Translate(key string, args ...any) string {
	value, err := r.translator.Translate(r.locale, key, args...)
	if err != nil {
		r.logger.Debug("missing translation", logger.F("locale", r.locale), logger.F("key", key))
		return key
	}
	return value
}

// RegisterBlock stores t in the registry and loads its views. A type must
// ship a save view unless one is already loaded for its name.
func (r *Runtime) RegisterBlock(ctx context.Context, t Type) error {
	if !hasView(t.Views, "save") && !r.templates.HasView(t.Name, "save") {
		return fmt.Errorf("%w: %s", ErrMissingSaveView, t.Name)
	}
	if err := r.registry.Register(t); err != nil {
		return err
	}
	views := make([]templates.View, 0, len(t.Views))
	for _, view := range t.Views {
		if view.Block == "" {
			view.Block = t.Name
		}
		views = append(views, view)
	}
	r.templates.RegisterViews(ctx, views...)
	r.logger.Info("block registered",
		logger.F("block", t.Name),
		logger.F("title", t.Title),
		logger.F("views", len(views)),
	)
	return nil
}

// Render delegates to the template service using the host locale.
func (r *Runtime) Render(ctx context.Context, block, view string, data map[string]any) (string, error) {
	result, err := r.templates.Render(ctx, templates.RenderRequest{
		Block:  block,
		View:   view,
		Locale: r.locale,
		Data:   data,
	})
	if err != nil {
		return "", err
	}
	return result.Markup, nil
}

// PlainText renders a textarea bound to a field (and list index when set).
func (r *Runtime) PlainText(props PlainTextProps) string {
	attrs := []html.Attribute{}
	if props.Class != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: props.Class})
	}
	if props.Placeholder != "" {
		attrs = append(attrs, html.Attribute{Key: "placeholder", Val: props.Placeholder})
	}
	if props.Field != "" {
		attrs = append(attrs, html.Attribute{Key: "data-field", Val: props.Field})
	}
	if props.Index != nil {
		attrs = append(attrs, html.Attribute{Key: "data-index", Val: strconv.Itoa(*props.Index)})
	}
	rows := props.Rows
	if rows <= 0 {
		rows = 1
	}
	attrs = append(attrs, html.Attribute{Key: "rows", Val: strconv.Itoa(rows)})
	if props.AutoFocus {
		attrs = append(attrs, html.Attribute{Key: "autofocus"})
	}

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Textarea,
		Data:     "textarea",
		Attr:     attrs,
	}
	if props.Value != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: props.Value})
	}

	var sb strings.Builder
	if err := html.Render(&sb, node); err != nil {
		r.logger.Warn("render plain text input", logger.F("field", props.Field), logger.F("error", err))
		return ""
	}
	return sb.String()
}

func hasView(views []templates.View, name string) bool {
	for _, view := range views {
		if strings.EqualFold(strings.TrimSpace(view.Name), name) {
			return true
		}
	}
	return false
}
