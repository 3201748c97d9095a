package blocks

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-testimonials/pkg/domain"
)

// Attributes is re-exported so callers need not import domain.
type Attributes = domain.Attributes

// AttributeType is the logical type of an attribute value.
type AttributeType string

const (
	TypeString AttributeType = "string"
	TypeNumber AttributeType = "number"
	TypeArray  AttributeType = "array"
)

// Source tells the extractor where an attribute lives.
type Source string

const (
	// SourceComment attributes are stored as JSON on the block delimiter.
	SourceComment Source = ""
	// SourceText reads the text content of the first selector match.
	SourceText Source = "text"
	// SourceAttribute reads an HTML attribute of the first selector match.
	SourceAttribute Source = "attribute"
	// SourceQuery builds a list with one entry per selector match, each
	// entry extracted with the nested Query schema relative to the match.
	SourceQuery Source = "query"
)

// Attribute declares one persisted field of a block.
type Attribute struct {
	Type      AttributeType        `json:"type"`
	Source    Source               `json:"source,omitempty"`
	Selector  string               `json:"selector,omitempty"`
	Attribute string               `json:"attribute,omitempty"`
	Default   any                  `json:"default,omitempty"`
	Query     map[string]Attribute `json:"query,omitempty"`
}

// Schema maps attribute names to their declarations.
type Schema map[string]Attribute

// Validate checks that every sourced attribute can be extracted.
func (s Schema) Validate() error {
	for name, attr := range s {
		if err := attr.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSchema, name, err)
		}
	}
	return nil
}

func (a Attribute) validate() error {
	switch a.Source {
	case SourceComment:
		return nil
	case SourceText:
		if strings.TrimSpace(a.Selector) == "" {
			return fmt.Errorf("text source requires a selector")
		}
	case SourceAttribute:
		if strings.TrimSpace(a.Selector) == "" || strings.TrimSpace(a.Attribute) == "" {
			return fmt.Errorf("attribute source requires selector and attribute")
		}
	case SourceQuery:
		if strings.TrimSpace(a.Selector) == "" {
			return fmt.Errorf("query source requires a selector")
		}
		if len(a.Query) == 0 {
			return fmt.Errorf("query source requires a per-item schema")
		}
		for name, item := range a.Query {
			if item.Source == SourceComment || item.Source == SourceQuery {
				return fmt.Errorf("query item %s must use a text or attribute source", name)
			}
			if err := item.validate(); err != nil {
				return fmt.Errorf("query item %s: %v", name, err)
			}
		}
	default:
		return fmt.Errorf("unknown source %q", a.Source)
	}
	return nil
}

// Defaults returns the default value of every attribute. Array attributes
// without a default start as an empty list.
func (s Schema) Defaults() Attributes {
	out := make(Attributes, len(s))
	for name, attr := range s {
		out[name] = attr.defaultValue()
	}
	return out
}

// CommentAttributes filters attrs down to comment-sourced entries.
func (s Schema) CommentAttributes(attrs Attributes) Attributes {
	out := make(Attributes)
	for name, attr := range s {
		if attr.Source != SourceComment {
			continue
		}
		value, ok := attrs[name]
		if !ok || value == nil {
			continue
		}
		if text, isText := value.(string); isText && text == "" {
			continue
		}
		out[name] = value
	}
	return out
}

func (a Attribute) defaultValue() any {
	if a.Default != nil {
		return a.Default
	}
	switch a.Type {
	case TypeArray:
		return []map[string]any{}
	case TypeNumber:
		return 0
	default:
		return ""
	}
}
