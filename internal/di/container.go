package di

import (
	"context"
	"reflect"
	"strings"

	i18n "github.com/goliatone/go-i18n"

	"github.com/goliatone/go-testimonials/internal/templates"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/config"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
	"github.com/goliatone/go-testimonials/pkg/slider"
	"github.com/goliatone/go-testimonials/pkg/testimonial"
	"github.com/goliatone/go-testimonials/pkg/translations"
)

// Options configure the DI container.
type Options struct {
	Config     config.Config
	Logger     logger.Logger
	Translator i18n.Translator
	Fallbacks  i18n.FallbackResolver
}

// Container wires configuration, translation, templates, the block
// registry and the host the testimonial blocks are registered on.
type Container struct {
	Config     config.Config
	Logger     logger.Logger
	Translator i18n.Translator
	Templates  *templates.Service
	Registry   *blocks.Registry
	Host       *blocks.Runtime
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container and registers both testimonial blocks.
func New(ctx context.Context, opts Options) (*Container, error) {
	cfg := opts.Config
	if isZeroConfig(cfg) {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lgr := logger.OrNop(opts.Logger)

	fallbacks := opts.Fallbacks
	if fallbacks == nil {
		fallbacks = defaultFallbacks(cfg.Localization.DefaultLocale)
	}

	translator := opts.Translator
	if translator == nil {
		var err error
		translator, err = translations.NewTranslatorWithFallbacks(cfg.Localization.DefaultLocale, fallbacks)
		if err != nil {
			return nil, err
		}
	}

	tplSvc, err := templates.NewService(translator,
		templates.WithDefaultLocale(cfg.Localization.DefaultLocale),
		templates.WithFallbackResolver(fallbacks),
		templates.WithMissingTranslationHandler(func(locale, key string, _ []any, err error) string {
			lgr.Debug("missing translation", logger.F("locale", locale), logger.F("key", key), logger.F("error", err))
			return key
		}),
	)
	if err != nil {
		return nil, err
	}

	registry := blocks.NewRegistry()
	host, err := blocks.NewHost(blocks.Dependencies{
		Registry:   registry,
		Templates:  tplSvc,
		Translator: translator,
		Locale:     cfg.Localization.DefaultLocale,
		Logger:     lgr,
	})
	if err != nil {
		return nil, err
	}

	if err := testimonial.Register(ctx, host, testimonial.WithNamespace(cfg.Editor.Namespace)); err != nil {
		return nil, err
	}
	if err := slider.Register(ctx, host,
		slider.WithNamespace(cfg.Editor.Namespace),
		slider.WithGroupIDPrefix(cfg.Slider.GroupIDPrefix),
		slider.WithSortedSave(cfg.Slider.SaveSorted),
	); err != nil {
		return nil, err
	}

	return &Container{
		Config:     cfg,
		Logger:     lgr,
		Translator: translator,
		Templates:  tplSvc,
		Registry:   registry,
		Host:       host,
	}, nil
}

// defaultFallbacks sends regional Spanish locales to "es", then to the
// default locale, and ends every chain at the source catalog.
func defaultFallbacks(defaultLocale string) i18n.FallbackResolver {
	resolver := i18n.NewStaticFallbackResolver()
	for _, locale := range []string{"es-mx", "es-es", "es-ar"} {
		resolver.Set(locale, fallbackChain(locale, "es", defaultLocale, translations.SourceLocale)...)
	}
	for _, locale := range []string{"es", defaultLocale} {
		if chain := fallbackChain(locale, defaultLocale, translations.SourceLocale); len(chain) > 0 {
			resolver.Set(locale, chain...)
		}
	}
	return resolver
}

// fallbackChain drops empty, repeated and self references from candidates.
func fallbackChain(locale string, candidates ...string) []string {
	seen := map[string]bool{strings.ToLower(locale): true}
	chain := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		chain = append(chain, candidate)
	}
	return chain
}

// BlockNames returns the registered names of the single and slider blocks.
func (c *Container) BlockNames() (single, carousel string) {
	ns := c.Config.Editor.Namespace
	return ns + "/" + testimonial.Slug, ns + "/" + slider.Slug
}
