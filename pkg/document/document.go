// Package document keeps an ordered post body of block instances and
// converts it to and from delimited markup.
package document

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
)

// FreeformName labels markup that is not wrapped in block delimiters.
const FreeformName = "core/freeform"

var (
	ErrBlockNotFound = errors.New("document: block not found")
	ErrHostRequired  = errors.New("document: host required")
)

// Host is the editor capability set plus access to the block registry.
type Host interface {
	blocks.Host
	Registry() *blocks.Registry
}

// Block is one entry of a document. Blocks of unregistered types and
// markup between delimiters keep their source in Raw and have no Instance.
type Block struct {
	ClientID uuid.UUID
	Name     string
	Type     blocks.Type
	Instance blocks.Instance
	Raw      string
}

// Freeform reports whether the block is kept verbatim.
func (b *Block) Freeform() bool {
	return b == nil || b.Instance == nil
}

// Option customizes a document.
type Option func(*Document)

// WithLogger sets the logger used for parse fallbacks.
func WithLogger(l logger.Logger) Option {
	return func(d *Document) {
		d.logger = logger.OrNop(l)
	}
}

// Document is safe for concurrent use. Blocks returned by Get and Blocks
// are shared; mutate them through Update.
type Document struct {
	mu     sync.RWMutex
	host   Host
	logger logger.Logger
	blocks []*Block
}

// New returns an empty document bound to host.
func New(host Host, opts ...Option) (*Document, error) {
	if host == nil {
		return nil, ErrHostRequired
	}
	doc := &Document{host: host, logger: &logger.Nop{}}
	for _, opt := range opts {
		if opt != nil {
			opt(doc)
		}
	}
	return doc, nil
}

// Host returns the host the document renders with.
func (d *Document) Host() Host {
	return d.host
}

// Insert appends a new instance of the named block type with default
// attributes.
func (d *Document) Insert(name string) (*Block, error) {
	return d.InsertWith(name, nil)
}

// InsertWith appends a new instance of the named block type, with attrs
// merged over the schema defaults.
func (d *Document) InsertWith(name string, attrs blocks.Attributes) (*Block, error) {
	t, err := d.host.Registry().Get(name)
	if err != nil {
		return nil, fmt.Errorf("document: insert: %w", err)
	}
	instance, err := t.Instantiate(attrs)
	if err != nil {
		return nil, fmt.Errorf("document: insert %s: %w", t.Name, err)
	}
	block := &Block{
		ClientID: uuid.New(),
		Name:     t.Name,
		Type:     t,
		Instance: instance,
	}

	d.mu.Lock()
	d.blocks = append(d.blocks, block)
	d.mu.Unlock()

	d.logger.Debug("block inserted", logger.F("block", t.Name), logger.F("client_id", block.ClientID.String()))
	return block, nil
}

// Get returns the block with clientID.
func (d *Document) Get(clientID uuid.UUID) (*Block, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if _, block := d.find(clientID); block != nil {
		return block, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, clientID)
}

// Update runs fn against the block with clientID while holding the
// document lock.
func (d *Document) Update(clientID uuid.UUID, fn func(*Block) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, block := d.find(clientID)
	if block == nil {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, clientID)
	}
	return fn(block)
}

// Remove deletes the block with clientID.
func (d *Document) Remove(clientID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, block := d.find(clientID)
	if block == nil {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, clientID)
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	return nil
}

// Blocks returns the blocks in document order.
func (d *Document) Blocks() []*Block {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Len returns the number of blocks, freeform ones included.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.blocks)
}

func (d *Document) find(clientID uuid.UUID) (int, *Block) {
	for i, block := range d.blocks {
		if block.ClientID == clientID {
			return i, block
		}
	}
	return -1, nil
}

func (d *Document) appendFreeform(name, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if name == "" {
		name = FreeformName
	}
	d.blocks = append(d.blocks, &Block{ClientID: uuid.New(), Name: name, Raw: raw})
}
