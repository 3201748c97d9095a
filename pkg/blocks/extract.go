package blocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var selectorCache sync.Map // string -> cascadia.Selector

// Extract rebuilds sourced attributes from persisted markup. Comment sourced
// attributes are skipped; they travel on the block delimiter. Missing
// matches yield the attribute default, never an error. Errors are reserved
// for selectors that do not compile.
func Extract(markup string, schema Schema) (Attributes, error) {
	out := make(Attributes, len(schema))
	if len(schema) == 0 {
		return out, nil
	}
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("blocks: parse markup: %w", err)
	}
	for name, attr := range schema {
		if attr.Source == SourceComment {
			continue
		}
		value, err := extractAttribute(root, attr)
		if err != nil {
			return nil, fmt.Errorf("blocks: extract %s: %w", name, err)
		}
		out[name] = value
	}
	return out, nil
}

func extractAttribute(scope *html.Node, attr Attribute) (any, error) {
	sel, err := compileSelector(attr.Selector)
	if err != nil {
		return nil, err
	}
	switch attr.Source {
	case SourceText:
		node := sel.MatchFirst(scope)
		if node == nil {
			return attr.defaultValue(), nil
		}
		return TextContent(node), nil
	case SourceAttribute:
		node := sel.MatchFirst(scope)
		if node == nil {
			return attr.defaultValue(), nil
		}
		if value, ok := attributeValue(node, attr.Attribute); ok {
			return value, nil
		}
		return attr.defaultValue(), nil
	case SourceQuery:
		matches := sel.MatchAll(scope)
		items := make([]map[string]any, 0, len(matches))
		for _, match := range matches {
			item := make(map[string]any, len(attr.Query))
			for key, nested := range attr.Query {
				value, err := extractAttribute(match, nested)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", key, err)
				}
				item[key] = value
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidSchema, attr.Source)
	}
}

func compileSelector(raw string) (cascadia.Selector, error) {
	if cached, ok := selectorCache.Load(raw); ok {
		return cached.(cascadia.Selector), nil
	}
	sel, err := cascadia.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: selector %q: %v", ErrInvalidSchema, raw, err)
	}
	selectorCache.Store(raw, sel)
	return sel, nil
}

// TextContent concatenates every descendant text node, like the DOM property.
func TextContent(node *html.Node) string {
	if node == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return sb.String()
}

func attributeValue(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}

// EscapeText escapes s for use in element content or a quoted attribute.
// Carriage returns are escaped so they survive parser newline folding.
func EscapeText(s string) string {
	return html.EscapeString(s)
}
