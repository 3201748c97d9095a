package options

import (
	"errors"
	"testing"

	opts "github.com/goliatone/go-options"
)

func TestResolverHigherScopeWins(t *testing.T) {
	resolver, err := NewResolver(
		System(map[string]any{"locale": "en", "sorted": false}),
		User(map[string]any{"sorted": true}),
		Site(map[string]any{"locale": "es"}),
	)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	sorted, trace, err := resolver.ResolveBool("sorted")
	if err != nil {
		t.Fatalf("resolve bool: %v", err)
	}
	if !sorted {
		t.Fatalf("expected user scope to win")
	}
	if trace.Path != "sorted" || len(trace.Layers) == 0 {
		t.Fatalf("unexpected trace %+v", trace)
	}

	locale, _, err := resolver.ResolveString("locale")
	if err != nil {
		t.Fatalf("resolve string: %v", err)
	}
	if locale != "es" {
		t.Fatalf("expected site locale, got %s", locale)
	}

	if _, _, err := resolver.ResolveString("sorted"); err == nil {
		t.Fatalf("expected type mismatch error")
	}
	if _, err := resolver.Schema(); err != nil {
		t.Fatalf("schema: %v", err)
	}
}

func TestNewResolverValidation(t *testing.T) {
	if _, err := NewResolver(); !errors.Is(err, ErrNoSnapshots) {
		t.Fatalf("expected ErrNoSnapshots, got %v", err)
	}
	if _, err := NewResolver(Snapshot{Scope: opts.Scope{}, Data: map[string]any{}}); err == nil {
		t.Fatalf("expected error for missing scope name")
	}
}

func TestParseSettingsAcceptsComments(t *testing.T) {
	data := []byte(`{
		// site overrides
		"slider": {
			"group_id_prefix": "reviews-", /* kept short */
		},
	}`)
	settings, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	resolver, err := NewResolver(Site(settings))
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	prefix, _, err := resolver.ResolveString("slider.group_id_prefix")
	if err != nil || prefix != "reviews-" {
		t.Fatalf("unexpected prefix %q (%v)", prefix, err)
	}

	if empty, err := ParseSettings([]byte("  ")); err != nil || len(empty) != 0 {
		t.Fatalf("expected empty settings, got %v (%v)", empty, err)
	}
	if _, err := ParseSettings([]byte(`{"slider": `)); err == nil {
		t.Fatalf("expected parse error")
	}
}
