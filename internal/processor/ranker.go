package processor

import (
	"cmp"
	"slices"
	"strconv"
)

// Rank orders the table by count, highest first. The sort is stable, so
// equal counts keep first-appearance order.
func Rank(table *FrequencyTable) []RankedEntry {
	ranked := table.Entries()

	slices.SortStableFunc(ranked, func(a, b RankedEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return ranked
}

func (e RankedEntry) String() string {
	return "(" + string(e.Word) + ", " + strconv.Itoa(e.Count) + ")"
}
