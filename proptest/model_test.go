package proptest

import (
	"slices"

	"cinelog/internal/catalog"

	"pgregory.net/rapid"
)

// storeModel is the reference behaviour every store must match: an ordered
// list keyed by exact title, where re-adding a title replaces it in place.
type storeModel struct {
	records []catalog.Record
}

func (m *storeModel) index(title string) int {
	return slices.IndexFunc(m.records, func(r catalog.Record) bool { return r.Title == title })
}

func (m *storeModel) Add(r catalog.Record) {
	if i := m.index(r.Title); i >= 0 {
		m.records[i] = r
		return
	}
	m.records = append(m.records, r)
}

func (m *storeModel) Delete(title string) {
	if i := m.index(title); i >= 0 {
		m.records = slices.Delete(m.records, i, i+1)
	}
}

func (m *storeModel) UpdateNotes(title, notes string) {
	if i := m.index(title); i >= 0 {
		m.records[i].Notes = notes
	}
}

func (m *storeModel) Titles() []string {
	titles := make([]string, len(m.records))
	for i, r := range m.records {
		titles[i] = r.Title
	}
	return titles
}

// CheckedStore applies every operation to both the store and the model and
// fails as soon as they diverge.
type CheckedStore struct {
	t     *rapid.T
	store catalog.Store
	model *storeModel
}

func NewCheckedStore(t *rapid.T, store catalog.Store) *CheckedStore {
	return &CheckedStore{t: t, store: store, model: &storeModel{}}
}

func (c *CheckedStore) Add(r catalog.Record) {
	if err := c.store.Add(r); err != nil {
		c.t.Fatalf("Add(%q) failed: %v", r.Title, err)
	}
	c.model.Add(r)
	c.verify()
}

func (c *CheckedStore) Delete(title string) {
	if err := c.store.Delete(title); err != nil {
		c.t.Fatalf("Delete(%q) failed: %v", title, err)
	}
	c.model.Delete(title)
	c.verify()
}

func (c *CheckedStore) UpdateNotes(title, notes string) {
	if err := c.store.UpdateNotes(title, notes); err != nil {
		c.t.Fatalf("UpdateNotes(%q) failed: %v", title, err)
	}
	c.model.UpdateNotes(title, notes)
	c.verify()
}

func (c *CheckedStore) verify() {
	c.t.Helper()
	records := verifyStructure(c.t, c.store)
	assertRecordsEqual(c.t, c.model.records, records)
}
