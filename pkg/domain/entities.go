package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field name does not map to a testimonial field.
var ErrUnknownField = errors.New("domain: unknown testimonial field")

// Field names one of the free-text testimonial fields.
type Field string

const (
	FieldContent Field = "content"
	FieldAuthor  Field = "author"
	FieldLink    Field = "link"
)

// Fields lists the editable fields in presentation order.
func Fields() []Field {
	return []Field{FieldContent, FieldAuthor, FieldLink}
}

func (f Field) String() string {
	return string(f)
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	for _, known := range Fields() {
		if f == known {
			return true
		}
	}
	return false
}

// ParseField normalizes raw into a Field.
func ParseField(raw string) (Field, error) {
	field := Field(strings.ToLower(strings.TrimSpace(raw)))
	if !field.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return field, nil
}

// Testimonial holds the three free-text fields shared by the single block
// and every slider record. Values are accepted verbatim.
type Testimonial struct {
	Content string `json:"content"`
	Author  string `json:"author"`
	Link    string `json:"link"`
}

// Get returns the value stored for field.
func (t Testimonial) Get(field Field) (string, error) {
	switch field {
	case FieldContent:
		return t.Content, nil
	case FieldAuthor:
		return t.Author, nil
	case FieldLink:
		return t.Link, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
}

// Set replaces exactly one field, leaving the others untouched. The value
// is normalized with NormalizeText.
func (t *Testimonial) Set(field Field, value string) error {
	value = NormalizeText(value)
	switch field {
	case FieldContent:
		t.Content = value
	case FieldAuthor:
		t.Author = value
	case FieldLink:
		t.Link = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}

// Normalized returns t with every field passed through NormalizeText.
func (t Testimonial) Normalized() Testimonial {
	return Testimonial{
		Content: NormalizeText(t.Content),
		Author:  NormalizeText(t.Author),
		Link:    NormalizeText(t.Link),
	}
}

// NormalizeText drops NUL characters and replaces each invalid UTF-8 byte
// with U+FFFD, matching what survives an HTML save and parse.
func NormalizeText(value string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, value)
}

// IsZero reports whether every field is empty.
func (t Testimonial) IsZero() bool {
	return t.Content == "" && t.Author == "" && t.Link == ""
}

// Attributes is the loosely typed attribute bag a block instance exposes to
// the host. Values are strings, numbers, or []map[string]any for list fields.
type Attributes map[string]any

// String returns the attribute as a string, or "" when missing or not textual.
func (a Attributes) String(key string) string {
	if a == nil {
		return ""
	}
	switch v := a[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// List returns a list attribute normalized to []map[string]any.
func (a Attributes) List(key string) []map[string]any {
	if a == nil {
		return nil
	}
	switch v := a[key].(type) {
	case []map[string]any:
		return v
	case []Attributes:
		out := make([]map[string]any, len(v))
		for i, item := range v {
			out[i] = map[string]any(item)
		}
		return out
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			switch typed := item.(type) {
			case map[string]any:
				out = append(out, typed)
			case Attributes:
				out = append(out, map[string]any(typed))
			}
		}
		return out
	default:
		return nil
	}
}

// Clone returns a shallow copy with list values copied one level deep.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for key, value := range a {
		switch v := value.(type) {
		case []map[string]any:
			items := make([]map[string]any, len(v))
			for i, item := range v {
				cp := make(map[string]any, len(item))
				for k, val := range item {
					cp[k] = val
				}
				items[i] = cp
			}
			out[key] = items
		default:
			out[key] = v
		}
	}
	return out
}
