package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/jaytaylor/html2text"
	"golang.org/x/net/html"
)

// hiddenContent matches markup a reader never sees: carousel bookkeeping,
// screen reader labels and display:none spans.
var hiddenContent = cascadia.MustCompile(
	`[style*="display: none"], [style*="display:none"], .sr-only, .carousel-indicators, [aria-hidden="true"]`,
)

// Excerpt returns the visible text of the saved document with whitespace
// collapsed. A positive width truncates the result on a word boundary.
func (d *Document) Excerpt(ctx context.Context, width int) (string, error) {
	markup, err := d.renderMarkup(ctx)
	if err != nil {
		return "", err
	}
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("document: excerpt: %w", err)
	}
	for _, node := range hiddenContent.MatchAll(root) {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	}
	text, err := html2text.FromHTMLNode(root, html2text.Options{OmitLinks: true, TextOnly: true})
	if err != nil {
		return "", fmt.Errorf("document: excerpt: %w", err)
	}
	return truncateWords(strings.Join(strings.Fields(text), " "), width), nil
}

// renderMarkup concatenates the saved markup of every block without
// delimiters.
func (d *Document) renderMarkup(ctx context.Context) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var sb strings.Builder
	for _, block := range d.blocks {
		if block.Freeform() {
			sb.WriteString(block.Raw)
			sb.WriteByte('\n')
			continue
		}
		markup, err := block.Instance.Save(ctx, d.host)
		if err != nil {
			return "", fmt.Errorf("document: save %s: %w", block.Name, err)
		}
		sb.WriteString(markup)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func truncateWords(text string, width int) string {
	runes := []rune(text)
	if width <= 0 || len(runes) <= width {
		return text
	}
	cut := string(runes[:width])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "…"
}
