package logger

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

const maskRule = "preserveEnds(2,2)"

// Masked builds a Field whose value keeps only its first and last two
// characters. Use it for author names, links and other free text typed by
// editors.
func Masked(key, value string) Field {
	return Field{Key: key, Value: maskString(value)}
}

func maskString(value string) string {
	if value == "" {
		return ""
	}
	if masked, err := masker.Default.String(maskRule, value); err == nil {
		return masked
	}
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}
