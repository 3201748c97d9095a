package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// ParseSettings decodes a settings document. Line and block comments and
// trailing commas are accepted.
func ParseSettings(data []byte) (map[string]any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &out); err != nil {
		return nil, fmt.Errorf("options: parse settings: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
