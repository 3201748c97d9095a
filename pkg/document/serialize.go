package document

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-testimonials/pkg/blocks"
)

// Serialize writes every block as delimited markup, separated by blank
// lines. Freeform blocks are written verbatim.
func (d *Document) Serialize(ctx context.Context) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	parts := make([]string, 0, len(d.blocks))
	for _, block := range d.blocks {
		if block.Freeform() {
			parts = append(parts, block.Raw)
			continue
		}
		part, err := serializeBlock(ctx, d.host, block)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n\n"), nil
}

func serializeBlock(ctx context.Context, host blocks.Host, block *Block) (string, error) {
	markup, err := block.Instance.Save(ctx, host)
	if err != nil {
		return "", fmt.Errorf("document: save %s: %w", block.Name, err)
	}

	var sb strings.Builder
	sb.WriteString("<!-- wp:")
	sb.WriteString(block.Name)
	if attrs := block.Type.Attributes.CommentAttributes(block.Instance.Attributes()); len(attrs) > 0 {
		encoded, err := encodeAttributes(attrs)
		if err != nil {
			return "", fmt.Errorf("document: encode %s attributes: %w", block.Name, err)
		}
		sb.WriteByte(' ')
		sb.WriteString(encoded)
	}
	sb.WriteString(" -->\n")
	sb.WriteString(markup)
	sb.WriteString("\n<!-- /wp:")
	sb.WriteString(block.Name)
	sb.WriteString(" -->")
	return sb.String(), nil
}

// encodeAttributes marshals attrs so the result can sit inside an HTML
// comment: "--" never appears and markup characters are escaped.
func encodeAttributes(attrs blocks.Attributes) (string, error) {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(raw), "--", `\u002d\u002d`), nil
}
