package slider

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-testimonials/pkg/domain"
)

func TestRemoveMiddleRecordReindexes(t *testing.T) {
	c := NewCollection()
	for _, content := range []string{"A", "B", "C"} {
		rec := c.AddRecord()
		if err := c.UpdateField(rec.Index, domain.FieldContent, content); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	if err := c.RemoveRecord(1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got := c.Sorted()
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Index != 0 || got[0].Content != "A" {
		t.Fatalf("unexpected first record %+v", got[0])
	}
	if got[1].Index != 1 || got[1].Content != "C" {
		t.Fatalf("unexpected second record %+v", got[1])
	}
}

func TestRemoveKeepsIndicesContiguous(t *testing.T) {
	const size = 5
	for k := 0; k < size; k++ {
		t.Run(fmt.Sprintf("remove-%d", k), func(t *testing.T) {
			c := newFilledCollection(t, size)
			before := contents(c.Sorted())

			if err := c.RemoveRecord(k); err != nil {
				t.Fatalf("remove: %v", err)
			}

			sorted := c.Sorted()
			for i, rec := range sorted {
				if rec.Index != i {
					t.Fatalf("expected index %d at position %d, got %d", i, i, rec.Index)
				}
			}
			want := append(append([]string{}, before[:k]...), before[k+1:]...)
			if strings.Join(contents(sorted), ",") != strings.Join(want, ",") {
				t.Fatalf("relative order changed: want %v got %v", want, contents(sorted))
			}
		})
	}
}

func TestSortedIsIdempotent(t *testing.T) {
	c := LoadCollection("g", []Record{
		{Index: 2, Testimonial: domain.Testimonial{Content: "c"}},
		{Index: 0, Testimonial: domain.Testimonial{Content: "a"}},
		{Index: 1, Testimonial: domain.Testimonial{Content: "b"}},
	})

	once := c.Sorted()
	twice := append([]Record(nil), once...)
	SortByIndex(twice)

	if strings.Join(contents(once), "") != "abc" {
		t.Fatalf("unexpected sort result %v", contents(once))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("sorting a sorted slice changed position %d", i)
		}
	}
	if strings.Join(contents(c.Records()), "") != "cab" {
		t.Fatalf("storage order must be untouched, got %v", contents(c.Records()))
	}
}

func TestEnsureGroupIDIsStable(t *testing.T) {
	calls := 0
	gen := func() string {
		calls++
		return fmt.Sprintf("group-%d", calls)
	}

	c := NewCollection()
	first := c.EnsureGroupID(gen)
	second := c.EnsureGroupID(gen)
	if first != "group-1" || second != first {
		t.Fatalf("group id changed: %q then %q", first, second)
	}
	if calls != 1 {
		t.Fatalf("expected generator to run once, ran %d times", calls)
	}

	loaded := LoadCollection("persisted", nil)
	if loaded.EnsureGroupID(gen) != "persisted" {
		t.Fatalf("expected persisted id to be kept")
	}
}

func TestNewGroupIDFuncProducesDistinctIDs(t *testing.T) {
	gen := NewGroupIDFunc("testimonial-")
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen()
		if !strings.HasPrefix(id, "testimonial-") || len(id) != len("testimonial-")+32 {
			t.Fatalf("unexpected id shape %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}

	if id := NewCollection().EnsureGroupID(nil); !strings.HasPrefix(id, DefaultGroupIDPrefix) {
		t.Fatalf("expected default prefix, got %q", id)
	}
}

func TestMissingIndexErrors(t *testing.T) {
	c := newFilledCollection(t, 2)

	if err := c.UpdateField(5, domain.FieldAuthor, "x"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on update, got %v", err)
	}
	if err := c.RemoveRecord(-1); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on remove, got %v", err)
	}
	if err := c.UpdateField(0, domain.Field("title"), "x"); !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("failed operations must not change the collection")
	}
}

func TestUpdateFieldTouchesOneRecordInPlace(t *testing.T) {
	c := newFilledCollection(t, 3)
	order := ids(c.Records())

	if err := c.UpdateField(1, domain.FieldLink, "https://example.com"); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, ok := c.Record(1)
	if !ok || rec.Link != "https://example.com" || rec.Content != "item-1" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if fmt.Sprint(ids(c.Records())) != fmt.Sprint(order) {
		t.Fatalf("update must not move the record in storage order")
	}
}

func TestRecordsReturnsCopies(t *testing.T) {
	c := newFilledCollection(t, 1)
	records := c.Records()
	records[0].Content = "mutated"
	records[0].Index = 9

	rec, _ := c.Record(0)
	if rec.Content != "item-0" {
		t.Fatalf("collection state leaked through Records")
	}
}

func TestLoadCollectionNormalizesDuplicateIndices(t *testing.T) {
	c := LoadCollection("g", []Record{
		{Index: 1, Testimonial: domain.Testimonial{Content: "first"}},
		{Index: 1, Testimonial: domain.Testimonial{Content: "second"}},
		{Index: 0, Testimonial: domain.Testimonial{Content: "zero"}},
	})

	got := c.Sorted()
	if strings.Join(contents(got), ",") != "zero,first,second" {
		t.Fatalf("unexpected normalized order %v", contents(got))
	}
	for i, rec := range got {
		if rec.Index != i {
			t.Fatalf("expected contiguous indices, got %d at %d", rec.Index, i)
		}
	}
}

func TestLoadCollectionKeepsGapsUntilAdd(t *testing.T) {
	c := LoadCollection("g", []Record{
		{Index: 0, Testimonial: domain.Testimonial{Content: "a"}},
		{Index: 2, Testimonial: domain.Testimonial{Content: "c"}},
	})
	if _, ok := c.Record(2); !ok {
		t.Fatalf("expected loaded index 2 to be kept")
	}

	added := c.AddRecord()
	if added.Index != 2 {
		t.Fatalf("expected new record at index 2, got %d", added.Index)
	}
	sorted := c.Sorted()
	if len(sorted) != 3 || sorted[1].Content != "c" || sorted[1].Index != 1 {
		t.Fatalf("expected normalization before append, got %+v", sorted)
	}
}

func newFilledCollection(t *testing.T, n int) *Collection {
	t.Helper()
	c := NewCollection()
	for i := 0; i < n; i++ {
		rec := c.AddRecord()
		if rec.Index != i {
			t.Fatalf("expected append at %d, got %d", i, rec.Index)
		}
		if err := c.UpdateField(rec.Index, domain.FieldContent, fmt.Sprintf("item-%d", i)); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	return c
}

func contents(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Content
	}
	return out
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID.String()
	}
	return out
}
