package document

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
)

var delimiterName = regexp.MustCompile(`^([a-z][a-z0-9_-]*/)?[a-z][a-z0-9_-]*$`)

// delimiter is one <!-- wp:... --> comment located in the source.
type delimiter struct {
	start  int
	end    int
	name   string
	attrs  string
	closer bool
	void   bool
}

// Parse reads delimited content into a document. Registered blocks get
// their attributes from the delimiter JSON merged with values extracted
// from the inner markup. Unknown or malformed blocks and markup outside
// delimiters are kept verbatim as freeform blocks. An opener without a
// closer runs to the end of the content.
func Parse(host Host, content string, opts ...Option) (*Document, error) {
	doc, err := New(host, opts...)
	if err != nil {
		return nil, err
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	pos := 0
	for pos < len(content) {
		open, ok := nextDelimiter(content, pos)
		if !ok {
			doc.appendFreeform("", content[pos:])
			break
		}
		doc.appendFreeform("", content[pos:open.start])

		switch {
		case open.closer:
			doc.logger.Warn("stray block closer", logger.F("block", open.name))
			doc.appendFreeform("", content[open.start:open.end])
			pos = open.end
		case open.void:
			doc.appendParsed(open, "", content[open.start:open.end])
			pos = open.end
		default:
			innerEnd, next := len(content), len(content)
			if closer, found := findCloser(content, open); found {
				innerEnd, next = closer.start, closer.end
			} else {
				doc.logger.Warn("unclosed block", logger.F("block", open.name))
			}
			doc.appendParsed(open, content[open.end:innerEnd], content[open.start:next])
			pos = next
		}
	}
	return doc, nil
}

func (d *Document) appendParsed(open delimiter, inner, source string) {
	t, err := d.host.Registry().Get(open.name)
	if err != nil {
		d.logger.Debug("unknown block kept as freeform", logger.F("block", open.name))
		d.appendFreeform(open.name, source)
		return
	}

	attrs := blocks.Attributes{}
	if open.attrs != "" {
		if err := json.Unmarshal([]byte(open.attrs), &attrs); err != nil {
			d.logger.Warn("invalid block attributes", logger.F("block", open.name), logger.F("error", err))
			d.appendFreeform(open.name, source)
			return
		}
	}
	extracted, err := blocks.Extract(strings.TrimSpace(inner), t.Attributes)
	if err != nil {
		d.logger.Warn("attribute extraction failed", logger.F("block", open.name), logger.F("error", err))
		d.appendFreeform(open.name, source)
		return
	}
	for key, value := range extracted {
		attrs[key] = value
	}

	instance, err := t.Instantiate(attrs)
	if err != nil {
		d.logger.Warn("block instantiation failed", logger.F("block", open.name), logger.F("error", err))
		d.appendFreeform(open.name, source)
		return
	}
	d.blocks = append(d.blocks, &Block{
		ClientID: uuid.New(),
		Name:     t.Name,
		Type:     t,
		Instance: instance,
	})
}

// findCloser returns the closer matching open, skipping nested blocks of
// the same name.
func findCloser(content string, open delimiter) (delimiter, bool) {
	depth := 0
	pos := open.end
	for {
		d, ok := nextDelimiter(content, pos)
		if !ok {
			return delimiter{}, false
		}
		pos = d.end
		if d.name != open.name {
			continue
		}
		switch {
		case d.closer && depth == 0:
			return d, true
		case d.closer:
			depth--
		case !d.void:
			depth++
		}
	}
}

// nextDelimiter finds the first block delimiter at or after from. Plain
// HTML comments are skipped.
func nextDelimiter(content string, from int) (delimiter, bool) {
	for from < len(content) {
		i := strings.Index(content[from:], "<!--")
		if i < 0 {
			return delimiter{}, false
		}
		start := from + i
		j := strings.Index(content[start+4:], "-->")
		if j < 0 {
			return delimiter{}, false
		}
		end := start + 4 + j + 3
		if d, ok := parseDelimiter(content[start+4 : end-3]); ok {
			d.start, d.end = start, end
			return d, true
		}
		from = end
	}
	return delimiter{}, false
}

func parseDelimiter(body string) (delimiter, bool) {
	var d delimiter
	if body == "" || !unicode.IsSpace(rune(body[0])) {
		return d, false
	}
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "/") {
		d.closer = true
		body = body[1:]
	}
	if !strings.HasPrefix(body, "wp:") {
		return d, false
	}
	body = body[len("wp:"):]
	if strings.HasSuffix(body, "/") {
		d.void = true
		body = strings.TrimSpace(strings.TrimSuffix(body, "/"))
	}

	name, rest := body, ""
	if i := strings.IndexFunc(body, unicode.IsSpace); i >= 0 {
		name, rest = body[:i], strings.TrimSpace(body[i:])
	}
	if !delimiterName.MatchString(name) {
		return d, false
	}
	if d.closer && (rest != "" || d.void) {
		return d, false
	}
	if rest != "" && !strings.HasPrefix(rest, "{") {
		return d, false
	}
	d.name = blocks.NormalizeName(name)
	d.attrs = rest
	return d, true
}
