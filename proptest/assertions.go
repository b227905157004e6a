package proptest

import (
	"errors"
	"fmt"
	"slices"

	"cinelog/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertRecordsEqual(t *rapid.T, expected, actual []catalog.Record) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset []string, records []catalog.Record) {
	t.Helper()
	titles := make(map[string]bool, len(records))
	for _, r := range records {
		titles[r.Title] = true
	}
	for _, title := range subset {
		if !titles[title] {
			t.Fatalf("title %q is not in the listing", title)
		}
	}
}

func assertSortedByRating(t *rapid.T, sorted []catalog.Record) {
	t.Helper()
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Rating < sorted[i+1].Rating {
			t.Fatalf("sort order violated at positions %d, %d: %v < %v", i, i+1, sorted[i].Rating, sorted[i+1].Rating)
		}
	}
}

func assertNoDuplicateTitles(t *rapid.T, records []catalog.Record) {
	t.Helper()
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.Title] {
			t.Fatalf("duplicate title found: %q", r.Title)
		}
		seen[r.Title] = true
	}
}

func assertStoreError(t *rapid.T, err error, allowed ...error) {
	t.Helper()
	if err == nil {
		return
	}
	if !slices.ContainsFunc(allowed, func(target error) bool { return errors.Is(err, target) }) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func requireNoPanic(t *rapid.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", fmt.Sprint(r))
		}
	}()
	fn()
}
