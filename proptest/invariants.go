package proptest

import (
	"cinelog/internal/catalog"

	"pgregory.net/rapid"
)

// verifyStructure checks what must hold for any listing, whatever
// operations produced it.
func verifyStructure(t *rapid.T, store catalog.Store) []catalog.Record {
	t.Helper()
	c, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	records := c.Records()
	if c.Len() != len(records) {
		t.Fatalf("Len()=%d but len(Records())=%d", c.Len(), len(records))
	}
	assertNoDuplicateTitles(t, records)

	for _, r := range records {
		got, ok := c.Get(r.Title)
		if !ok {
			t.Fatalf("Get(%q) missed a listed title", r.Title)
		}
		if got != r {
			t.Fatalf("Get(%q) = %+v, listed as %+v", r.Title, got, r)
		}
	}
	return records
}
