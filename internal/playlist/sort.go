package playlist

import (
	"cmp"
	"slices"
)

// Sort returns a copy of entries ordered by name. Equal names are ordered
// by id and then by URL, so any permutation of the same input sorts the same.
func Sort(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, compareEntries)
	return sorted
}

func compareEntries(a, b Entry) int {
	return cmp.Or(
		cmp.Compare(a.name, b.name),
		cmp.Compare(a.id, b.id),
		cmp.Compare(a.url, b.url),
		cmp.Compare(a.logo, b.logo),
		cmp.Compare(a.group, b.group),
	)
}
