package templates

import (
	"context"
	"fmt"
	"strings"
	"sync"

	i18n "github.com/goliatone/go-i18n"
	gotemplate "github.com/goliatone/go-template"
)

// Service coordinates block view registration + rendering with locale-aware fallbacks.
type Service struct {
	renderer      *gotemplate.Engine
	registry      *registry
	helpers       *helperRegistry
	translator    i18n.Translator
	fallbacks     i18n.FallbackResolver
	defaultLocale string
	localeKey     string
	renderMu      sync.Mutex
}

// RenderRequest wraps the inputs needed to resolve and render a block view.
type RenderRequest struct {
	Block  string
	View   string
	Locale string
	Data   map[string]any
}

// RenderResult returns the rendered markup along with the resolved locale.
type RenderResult struct {
	Markup       string
	Locale       string
	Revision     int
	UsedFallback bool
}

type serviceOptions struct {
	defaultLocale  string
	fallbacks      i18n.FallbackResolver
	helperFuncs    []map[string]any
	missingHandler i18n.MissingTranslationHandler
	localeKey      string
}

// Option configures the template service.
type Option func(*serviceOptions)

// WithDefaultLocale overrides the locale used when requests do not provide one.
func WithDefaultLocale(locale string) Option {
	return func(so *serviceOptions) {
		so.defaultLocale = locale
	}
}

// WithFallbackResolver wires a locale fallback resolver (e.g., es-MX -> es -> en).
func WithFallbackResolver(resolver i18n.FallbackResolver) Option {
	return func(so *serviceOptions) {
		so.fallbacks = resolver
	}
}

// WithHelperFuncs registers additional helper functions with the renderer.
func WithHelperFuncs(funcs map[string]any) Option {
	return func(so *serviceOptions) {
		if len(funcs) == 0 {
			return
		}
		so.helperFuncs = append(so.helperFuncs, funcs)
	}
}

// WithMissingTranslationHandler customizes how go-i18n helpers surface missing keys.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(so *serviceOptions) {
		so.missingHandler = handler
	}
}

// NewService builds the template service wiring the helper registry, renderer,
// and localization translator together.
func NewService(translator i18n.Translator, opts ...Option) (*Service, error) {
	if translator == nil {
		return nil, ErrTranslatorRequired
	}

	settings := serviceOptions{
		localeKey: "locale",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	defaultLocale := strings.TrimSpace(settings.defaultLocale)
	if defaultLocale == "" {
		if provider, ok := translator.(interface{ DefaultLocale() string }); ok {
			defaultLocale = provider.DefaultLocale()
		}
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	rendererOpts := []gotemplate.Option{
		gotemplate.WithBaseDir("."),
	}

	renderer, err := gotemplate.NewRenderer(rendererOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererConfig, err)
	}

	service := &Service{
		renderer:      renderer,
		registry:      newRegistry(),
		helpers:       newHelperRegistry(renderer),
		translator:    translator,
		fallbacks:     settings.fallbacks,
		defaultLocale: defaultLocale,
		localeKey:     settings.localeKey,
	}

	helperCfg := i18n.HelperConfig{
		LocaleKey:         service.localeKey,
		TemplateHelperKey: "t",
		OnMissing:         settings.missingHandler,
	}
	service.helpers.Register(i18n.TemplateHelpers(translator, helperCfg))
	service.helpers.Register(defaultHelperFuncs())

	for _, funcs := range settings.helperFuncs {
		service.helpers.Register(funcs)
	}

	return service, nil
}

// DefaultLocale returns the locale used when requests omit one.
func (s *Service) DefaultLocale() string {
	if s == nil {
		return ""
	}
	return s.defaultLocale
}

// RegisterViews loads views into the registry. Views missing a locale are
// stored under the default locale.
func (s *Service) RegisterViews(_ context.Context, views ...View) {
	if s == nil {
		return
	}
	for _, view := range views {
		if strings.TrimSpace(view.Locale) == "" {
			view.Locale = s.defaultLocale
		}
		s.registry.Upsert(view)
	}
}

// HasView reports whether any locale variant exists for block/view.
func (s *Service) HasView(block, view string) bool {
	if s == nil {
		return false
	}
	return s.registry.Has(block, view)
}

// RegisterHelpers adds helper functions to the underlying renderer.
func (s *Service) RegisterHelpers(funcs map[string]any) {
	if s == nil {
		return
	}
	s.helpers.Register(funcs)
}

// HasHelper reports whether a template helper named name is available.
func (s *Service) HasHelper(name string) bool {
	if s == nil {
		return false
	}
	return s.helpers.Has(name)
}

// Render resolves the block view and produces localized markup.
func (s *Service) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return RenderResult{}, err
		}
	}
	if s == nil {
		return RenderResult{}, ErrRendererConfig
	}
	if strings.TrimSpace(req.Block) == "" || strings.TrimSpace(req.View) == "" {
		return RenderResult{}, ErrInvalidRenderRequest
	}

	requested := strings.TrimSpace(req.Locale)
	if requested == "" {
		requested = s.defaultLocale
	}

	view, resolvedLocale, err := s.registry.Resolve(req.Block, req.View, s.localeChain(requested))
	if err != nil {
		return RenderResult{}, fmt.Errorf("%w: %s/%s", err, req.Block, req.View)
	}

	// Labels follow the requested locale even when the markup template came
	// from a fallback catalog.
	payload := cloneData(req.Data)
	payload[s.localeKey] = requested

	if err := validateData(req.View, view.Required, payload); err != nil {
		return RenderResult{}, err
	}

	s.renderMu.Lock()
	markup, err := s.renderer.RenderString(view.Body, payload)
	s.renderMu.Unlock()
	if err != nil {
		return RenderResult{}, fmt.Errorf("templates: render %s/%s: %w", req.Block, req.View, err)
	}

	return RenderResult{
		Markup:       markup,
		Locale:       resolvedLocale,
		Revision:     view.Revision,
		UsedFallback: !strings.EqualFold(resolvedLocale, requested),
	}, nil
}

func (s *Service) localeChain(requested string) []string {
	chain := make([]string, 0, 4)
	appendUnique := func(locale string) {
		if locale == "" {
			return
		}
		for _, existing := range chain {
			if strings.EqualFold(existing, locale) {
				return
			}
		}
		chain = append(chain, locale)
	}

	appendUnique(requested)
	if s.fallbacks != nil {
		for _, fb := range s.fallbacks.Resolve(requested) {
			appendUnique(fb)
		}
	}
	appendUnique(s.defaultLocale)
	appendUnique("en")
	return chain
}
