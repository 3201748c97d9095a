package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-config/cfgx"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/options"
)

// Config captures module-level configuration knobs. Block packages pull from
// these nested structs.
type Config struct {
	Localization LocalizationConfig `mapstructure:"localization" json:"localization"`
	Slider       SliderConfig       `mapstructure:"slider" json:"slider"`
	Editor       EditorConfig       `mapstructure:"editor" json:"editor"`
}

// LocalizationConfig controls the locale used for labels and placeholders.
type LocalizationConfig struct {
	DefaultLocale string `mapstructure:"default_locale" json:"default_locale"`
}

// SliderConfig tunes the testimonial slider block.
type SliderConfig struct {
	// GroupIDPrefix is prepended to generated carousel ids.
	GroupIDPrefix string `mapstructure:"group_id_prefix" json:"group_id_prefix"`
	// SaveSorted emits carousel items in index order instead of storage order.
	SaveSorted bool `mapstructure:"save_sorted" json:"save_sorted"`
}

// EditorConfig scopes block registration.
type EditorConfig struct {
	Namespace string `mapstructure:"namespace" json:"namespace"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Localization: LocalizationConfig{DefaultLocale: "en"},
		Slider: SliderConfig{
			GroupIDPrefix: "testimonial-",
			SaveSorted:    false,
		},
		Editor: EditorConfig{
			Namespace: "cgb",
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.Localization.DefaultLocale == "" {
		return errors.New("localization.default_locale is required")
	}
	if c.Editor.Namespace == "" {
		return errors.New("editor.namespace is required")
	}
	if !blocks.ValidName(c.Editor.Namespace + "/block") {
		return fmt.Errorf("editor.namespace %q must be lowercase letters, digits or '-', starting with a letter", c.Editor.Namespace)
	}
	if strings.ContainsAny(c.Slider.GroupIDPrefix, " \"'<>") {
		return fmt.Errorf("slider.group_id_prefix %q contains characters not allowed in an id", c.Slider.GroupIDPrefix)
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// When cfgx yields a zero value we fall back to a JSON round trip decoder.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (preprocessors, hooks, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if c.Localization.DefaultLocale == "" {
		c.Localization.DefaultLocale = defaults.Localization.DefaultLocale
	}
	if c.Slider.GroupIDPrefix == "" {
		c.Slider.GroupIDPrefix = defaults.Slider.GroupIDPrefix
	}
	if c.Editor.Namespace == "" {
		c.Editor.Namespace = defaults.Editor.Namespace
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}

// DefaultsSnapshot exposes Defaults as a system scope layer.
func DefaultsSnapshot() options.Snapshot {
	d := Defaults()
	return options.System(map[string]any{
		"localization": map[string]any{"default_locale": d.Localization.DefaultLocale},
		"slider": map[string]any{
			"group_id_prefix": d.Slider.GroupIDPrefix,
			"save_sorted":     d.Slider.SaveSorted,
		},
		"editor": map[string]any{"namespace": d.Editor.Namespace},
	})
}

// LoadLayered merges site and user scoped settings over the defaults. Higher
// priority scopes win per key.
func LoadLayered(snapshots ...options.Snapshot) (Config, error) {
	layers := append([]options.Snapshot{DefaultsSnapshot()}, snapshots...)
	resolver, err := options.NewResolver(layers...)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	for path, dst := range map[string]*string{
		"localization.default_locale": &cfg.Localization.DefaultLocale,
		"slider.group_id_prefix":      &cfg.Slider.GroupIDPrefix,
		"editor.namespace":            &cfg.Editor.Namespace,
	} {
		value, _, err := resolver.ResolveString(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		*dst = strings.TrimSpace(value)
	}
	sorted, _, err := resolver.ResolveBool("slider.save_sorted")
	if err != nil {
		return Config{}, fmt.Errorf("config: slider.save_sorted: %w", err)
	}
	cfg.Slider.SaveSorted = sorted

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
