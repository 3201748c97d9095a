package gocms

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-testimonials/pkg/domain"
)

func firstString(source map[string]any, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || len(source) == 0 {
		return ""
	}
	switch v := findValue(source, path).(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// findValue walks a dotted path through nested maps.
func findValue(source map[string]any, path string) any {
	if source == nil || path == "" {
		return nil
	}
	var current any = source
	for _, segment := range strings.Split(path, ".") {
		key := strings.TrimSpace(segment)
		if key == "" {
			continue
		}
		switch typed := current.(type) {
		case map[string]any:
			current = typed[key]
		case domain.Attributes:
			current = typed[key]
		default:
			return nil
		}
	}
	return current
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMap(v)
	case domain.Attributes:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneMap(item)
		}
		return out
	default:
		return v
	}
}
