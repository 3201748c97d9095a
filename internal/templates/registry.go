package templates

import (
	"strings"
	"sync"
)

// View is one renderable template registered for a block. Name is the render
// target ("save", "edit"), Locale the catalog it was authored for.
type View struct {
	Block    string
	Name     string
	Locale   string
	Body     string
	Revision int
	Required []string
}

type blockEntry struct {
	block string
	views map[string]map[string]*View // view -> locale -> template
}

type registry struct {
	mu     sync.RWMutex
	blocks map[string]*blockEntry
}

func newRegistry() *registry {
	return &registry{
		blocks: make(map[string]*blockEntry),
	}
}

// Upsert stores view, keeping the higher revision when one is already present.
func (r *registry) Upsert(view View) bool {
	if view.Block == "" || view.Name == "" || view.Locale == "" {
		return false
	}

	blockKey := normalizeKey(view.Block)
	viewKey := normalizeKey(view.Name)
	localeKey := normalizeKey(view.Locale)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.blocks[blockKey]
	if !ok {
		entry = &blockEntry{
			block: view.Block,
			views: make(map[string]map[string]*View),
		}
		r.blocks[blockKey] = entry
	}

	if entry.views[viewKey] == nil {
		entry.views[viewKey] = make(map[string]*View)
	}

	current := entry.views[viewKey][localeKey]
	if current != nil && current.Revision > view.Revision {
		return false
	}

	stored := view
	stored.Required = uniqueStrings(view.Required)
	entry.views[viewKey][localeKey] = &stored
	return true
}

func (r *registry) Resolve(block, name string, locales []string) (*View, string, error) {
	if block == "" || name == "" {
		return nil, "", ErrViewNotFound
	}
	blockKey := normalizeKey(block)
	viewKey := normalizeKey(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry := r.blocks[blockKey]
	if entry == nil {
		return nil, "", ErrViewNotFound
	}

	localized := entry.views[viewKey]
	if len(localized) == 0 {
		return nil, "", ErrViewNotFound
	}

	seen := make(map[string]struct{}, len(locales))
	for _, candidate := range locales {
		locKey := normalizeKey(candidate)
		if locKey == "" {
			continue
		}
		if _, ok := seen[locKey]; ok {
			continue
		}
		seen[locKey] = struct{}{}
		if view := localized[locKey]; view != nil {
			return view, candidate, nil
		}
	}
	return nil, "", ErrViewNotFound
}

func (r *registry) Has(block, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry := r.blocks[normalizeKey(block)]
	if entry == nil {
		return false
	}
	return len(entry.views[normalizeKey(name)]) > 0
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
