package translations

import (
	"strings"

	i18n "github.com/goliatone/go-i18n"
)

// Message keys used by the testimonial blocks.
const (
	KeyTestimonialTitle  = "testimonial.title"
	KeySliderTitle       = "slider.title"
	KeyScaffoldKeyword   = "blocks.keyword.scaffold"
	KeyTestimonialInsert = "testimonial.insert"
	KeySliderInsert      = "slider.insert"
	KeySliderAdd         = "slider.add"
	KeySliderRemove      = "slider.remove"
	KeySliderPrevious    = "slider.previous"
	KeySliderNext        = "slider.next"
	KeyContentLabel      = "field.content.placeholder"
	KeyAuthorLabel       = "field.author.placeholder"
	KeyLinkLabel         = "field.link.placeholder"
)

// SourceLocale is the catalog every lookup ends at when the requested
// locale has no entry.
const SourceLocale = "en"

// Translations returns the default catalog for the testimonial blocks.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", map[string]string{
			KeyTestimonialTitle:  "Testimonial Block",
			KeySliderTitle:       "Testimonial Slider",
			KeyScaffoldKeyword:   "create-guten-block",
			KeyTestimonialInsert: "Insert testimonial here:",
			KeySliderInsert:      "Insert testimonial %d here:",
			KeySliderAdd:         "Add testimonial",
			KeySliderRemove:      "Remove testimonial %d",
			KeySliderPrevious:    "Previous",
			KeySliderNext:        "Next",
			KeyContentLabel:      "Testimonial text",
			KeyAuthorLabel:       "Author",
			KeyLinkLabel:         "Link to author profile",
		}),
		"es": newCatalog("es", map[string]string{
			KeyTestimonialTitle:  "Bloque de testimonio",
			KeySliderTitle:       "Carrusel de testimonios",
			KeyScaffoldKeyword:   "create-guten-block",
			KeyTestimonialInsert: "Inserta el testimonio aquí:",
			KeySliderInsert:      "Inserta el testimonio %d aquí:",
			KeySliderAdd:         "Añadir testimonio",
			KeySliderRemove:      "Quitar testimonio %d",
			KeySliderPrevious:    "Anterior",
			KeySliderNext:        "Siguiente",
			KeyContentLabel:      "Texto del testimonio",
			KeyAuthorLabel:       "Autor",
			KeyLinkLabel:         "Enlace al perfil del autor",
		}),
	}
}

// HasLocale reports whether the catalog ships messages for locale.
func HasLocale(locale string) bool {
	_, ok := Translations()[strings.ToLower(strings.TrimSpace(locale))]
	return ok
}

// NewTranslator builds a static translator over Translations. A default
// locale without a catalog resolves through SourceLocale.
func NewTranslator(defaultLocale string) (i18n.Translator, error) {
	return NewTranslatorWithFallbacks(defaultLocale, nil)
}

// NewTranslatorWithFallbacks is NewTranslator with a locale fallback chain,
// so regional locales resolve through their base language.
func NewTranslatorWithFallbacks(defaultLocale string, fallbacks i18n.FallbackResolver) (i18n.Translator, error) {
	store := i18n.NewStaticStore(Translations())
	locale := catalogLocale(defaultLocale)
	if fallbacks == nil {
		return i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale(locale))
	}
	return i18n.NewSimpleTranslator(store,
		i18n.WithTranslatorDefaultLocale(locale),
		i18n.WithTranslatorFallbackResolver(fallbacks),
	)
}

func catalogLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" || !HasLocale(locale) {
		return SourceLocale
	}
	return locale
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}
