// Package options merges editor settings supplied at different scopes
// (system defaults, site, user) into one view with provenance traces.
package options

import (
	"errors"
	"fmt"

	opts "github.com/goliatone/go-options"
	layering "github.com/goliatone/go-options/layering"
)

// Snapshot captures the settings payload contributed by one scope.
type Snapshot struct {
	Scope      opts.Scope
	Data       map[string]any
	SnapshotID string
}

// System returns a snapshot at system priority, used for built-in defaults.
func System(data map[string]any) Snapshot {
	return Snapshot{Scope: opts.NewScope("system", opts.ScopePrioritySystem, opts.WithScopeLabel("System")), Data: data}
}

// Site returns a snapshot at tenant priority for site-wide settings.
func Site(data map[string]any) Snapshot {
	return Snapshot{Scope: opts.NewScope("site", opts.ScopePriorityTenant, opts.WithScopeLabel("Site")), Data: data}
}

// User returns a snapshot at user priority for the editing user's settings.
func User(data map[string]any) Snapshot {
	return Snapshot{Scope: opts.NewScope("user", opts.ScopePriorityUser, opts.WithScopeLabel("User")), Data: data}
}

// Resolver wraps merged go-options layers with typed lookups.
type Resolver struct {
	options *opts.Options[map[string]any]
}

// ErrNoSnapshots signals that at least one scope snapshot must be provided.
var ErrNoSnapshots = errors.New("options: at least one snapshot is required")

// NewResolver merges snapshots by scope priority, higher scopes winning.
func NewResolver(snapshots ...Snapshot) (*Resolver, error) {
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}

	layers := make([]opts.Layer[map[string]any], 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.Scope.Name == "" {
			return nil, fmt.Errorf("options: snapshot scope name is required")
		}
		var layerOpts []opts.LayerOption[map[string]any]
		if snap.SnapshotID != "" {
			layerOpts = append(layerOpts, opts.WithSnapshotID[map[string]any](snap.SnapshotID))
		}
		layers = append(layers, opts.NewLayer(snap.Scope, cloneMap(snap.Data), layerOpts...))
	}

	stack, err := opts.NewStack(layers...)
	if err != nil {
		return nil, err
	}
	merged, err := stack.Merge()
	if err != nil {
		return nil, err
	}
	return &Resolver{options: merged}, nil
}

// Resolve fetches the value at a dotted path with the trace of layers that
// defined it.
func (r *Resolver) Resolve(path string) (any, opts.Trace, error) {
	if r == nil || r.options == nil {
		return nil, opts.Trace{Path: path}, fmt.Errorf("options: resolver not initialised")
	}
	return r.options.ResolveWithTrace(path)
}

// ResolveString resolves path and ensures it is a string.
func (r *Resolver) ResolveString(path string) (string, opts.Trace, error) {
	value, trace, err := r.Resolve(path)
	if err != nil {
		return "", trace, err
	}
	str, ok := value.(string)
	if !ok {
		return "", trace, fmt.Errorf("options: path %s is not a string", path)
	}
	return str, trace, nil
}

// ResolveBool resolves path and ensures it is a boolean.
func (r *Resolver) ResolveBool(path string) (bool, opts.Trace, error) {
	value, trace, err := r.Resolve(path)
	if err != nil {
		return false, trace, err
	}
	boolean, ok := value.(bool)
	if !ok {
		return false, trace, fmt.Errorf("options: path %s is not a boolean", path)
	}
	return boolean, trace, nil
}

// Schema exports the schema inferred from the merged settings.
func (r *Resolver) Schema() (opts.SchemaDocument, error) {
	if r == nil || r.options == nil {
		return opts.SchemaDocument{}, fmt.Errorf("options: resolver not initialised")
	}
	return r.options.Schema()
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	return layering.Clone(src)
}
