package matrix

import (
	"sort"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// SortChangelog returns the entries newest first. ISO dates compare
// lexically; entries sharing a date keep their input order. The input slice
// is not modified.
func SortChangelog(entries []catalog.ChangelogEntry) []catalog.ChangelogEntry {
	out := append([]catalog.ChangelogEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
