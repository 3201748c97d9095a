package slider

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-testimonials/pkg/domain"
)

// ErrRecordNotFound is returned when no record holds the requested index.
var ErrRecordNotFound = errors.New("slider: record not found")

// Record is one testimonial in a collection. ID is stable for the life of
// the record; Index is its position and changes on removal of earlier records.
type Record struct {
	ID    uuid.UUID `json:"id"`
	Index int       `json:"index"`
	domain.Testimonial
}

// GroupIDFunc produces carousel group ids.
type GroupIDFunc func() string

// NewGroupIDFunc returns a generator yielding prefix plus a random
// 128-bit hex suffix.
func NewGroupIDFunc(prefix string) GroupIDFunc {
	return func() string {
		return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}

// Collection is the ordered testimonial list owned by one slider block.
// Records are kept by ID with a secondary index -> ID map, so edits and
// lookups by index do not rebuild the list. Storage order is insertion
// order.
type Collection struct {
	groupID string
	order   []uuid.UUID
	records map[uuid.UUID]*Record
	byIndex map[int]uuid.UUID
}

// NewCollection returns an empty collection without a group id.
func NewCollection() *Collection {
	return &Collection{
		records: make(map[uuid.UUID]*Record),
		byIndex: make(map[int]uuid.UUID),
	}
}

// LoadCollection rebuilds a collection from records in storage order.
// Missing IDs are assigned. Indices are kept as given unless two records
// share one or an index is negative, in which case the collection is
// normalized.
func LoadCollection(groupID string, records []Record) *Collection {
	c := NewCollection()
	c.groupID = groupID
	consistent := true
	for _, rec := range records {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if _, dup := c.records[rec.ID]; dup {
			rec.ID = uuid.New()
		}
		if _, taken := c.byIndex[rec.Index]; taken || rec.Index < 0 {
			consistent = false
		}
		stored := rec
		stored.Testimonial = stored.Testimonial.Normalized()
		c.records[stored.ID] = &stored
		c.order = append(c.order, stored.ID)
		if consistent {
			c.byIndex[stored.Index] = stored.ID
		}
	}
	if !consistent {
		c.Normalize()
	}
	return c
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.order)
}

// GroupID returns the assigned group id, or "" when none is set yet.
func (c *Collection) GroupID() string {
	return c.groupID
}

// EnsureGroupID assigns an id from gen when none is set and returns the
// current id. An assigned id never changes.
func (c *Collection) EnsureGroupID(gen GroupIDFunc) string {
	if c.groupID != "" {
		return c.groupID
	}
	if gen == nil {
		gen = NewGroupIDFunc(DefaultGroupIDPrefix)
	}
	c.groupID = gen()
	return c.groupID
}

// AddRecord appends an empty record at index Len(). A collection loaded with
// gaps in its indices is normalized first so the new index is free.
func (c *Collection) AddRecord() Record {
	if _, taken := c.byIndex[c.Len()]; taken {
		c.Normalize()
	}
	rec := &Record{ID: uuid.New(), Index: c.Len()}
	c.records[rec.ID] = rec
	c.order = append(c.order, rec.ID)
	c.byIndex[rec.Index] = rec.ID
	return *rec
}

// Record returns a copy of the record at index.
func (c *Collection) Record(index int) (Record, bool) {
	id, ok := c.byIndex[index]
	if !ok {
		return Record{}, false
	}
	return *c.records[id], true
}

// UpdateField replaces one field of the record at index.
func (c *Collection) UpdateField(index int, field domain.Field, value string) error {
	id, ok := c.byIndex[index]
	if !ok {
		return fmt.Errorf("%w: index %d", ErrRecordNotFound, index)
	}
	return c.records[id].Set(field, value)
}

// RemoveRecord deletes the record at index and shifts every later record
// down by one, keeping indices contiguous.
func (c *Collection) RemoveRecord(index int) error {
	id, ok := c.byIndex[index]
	if !ok {
		return fmt.Errorf("%w: index %d", ErrRecordNotFound, index)
	}
	delete(c.records, id)
	for i, candidate := range c.order {
		if candidate == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	c.byIndex = make(map[int]uuid.UUID, len(c.order))
	for _, rid := range c.order {
		rec := c.records[rid]
		if rec.Index > index {
			rec.Index--
		}
		c.byIndex[rec.Index] = rid
	}
	return nil
}

// Records returns copies in storage order.
func (c *Collection) Records() []Record {
	out := make([]Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.records[id])
	}
	return out
}

// Sorted returns copies ordered by ascending index. Ties keep storage order.
func (c *Collection) Sorted() []Record {
	out := c.Records()
	SortByIndex(out)
	return out
}

// Normalize reassigns indices 0..N-1 following the current index order,
// ties broken by storage order.
func (c *Collection) Normalize() {
	sorted := c.Sorted()
	c.byIndex = make(map[int]uuid.UUID, len(sorted))
	for i, rec := range sorted {
		c.records[rec.ID].Index = i
		c.byIndex[i] = rec.ID
	}
}

// SortByIndex stable sorts records by ascending index in place.
func SortByIndex(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Index < records[j].Index
	})
}
