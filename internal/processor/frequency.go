package processor

import (
	"fmt"
	"strings"
)

// FrequencyTable counts tokens and remembers the order in which each token
// was first seen.
type FrequencyTable struct {
	counts map[Token]int
	order  []Token
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[Token]int)}
}

// Aggregate counts tokens in order. An empty slice gives an empty table.
func Aggregate(tokens []Token) *FrequencyTable {
	table := NewFrequencyTable()
	for _, token := range tokens {
		table.Add(token)
	}
	return table
}

func (t *FrequencyTable) Add(token Token) {
	if _, exists := t.counts[token]; !exists {
		t.order = append(t.order, token)
	}
	t.counts[token]++
}

func (t *FrequencyTable) Count(token Token) int {
	return t.counts[token]
}

func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Total is the sum of all counts.
func (t *FrequencyTable) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

// Entries returns the table contents in first-appearance order.
func (t *FrequencyTable) Entries() []RankedEntry {
	entries := make([]RankedEntry, 0, len(t.order))
	for _, token := range t.order {
		entries = append(entries, RankedEntry{Word: token, Count: t.counts[token]})
	}
	return entries
}

func (t *FrequencyTable) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, entry := range t.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", entry.Word, entry.Count)
	}
	sb.WriteString("}")
	return sb.String()
}
