package templates

import (
	"fmt"
	"strings"
)

func defaultHelperFuncs() map[string]any {
	return map[string]any{
		"class_names": classNames,
	}
}

// classNames joins the non-empty arguments with single spaces.
func classNames(args ...any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		value := stringFromTemplateValue(arg)
		if value == "" {
			continue
		}
		parts = append(parts, value)
	}
	return strings.Join(parts, " ")
}

func stringFromTemplateValue(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
