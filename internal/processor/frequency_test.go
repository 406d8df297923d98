package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var corpora = []string{
	"",
	"Cat dog cat. Dog dog!",
	"b a b a",
	"... !!! ??? a a",
	"Le chat, le chien. LE CHAT? le!",
	"un deux trois quatre cinq un deux trois un deux un",
}

func TestAggregate(t *testing.T) {
	t.Run("Should count occurrences in first-appearance order", func(t *testing.T) {
		table := Aggregate(Tokenize("Cat dog cat. Dog dog!"))

		assert.Equal(t, 2, table.Len())
		assert.Equal(t, 2, table.Count("cat"))
		assert.Equal(t, 3, table.Count("dog"))
		assert.Equal(t, []RankedEntry{{"cat", 2}, {"dog", 3}}, table.Entries())
	})

	t.Run("Should count empty tokens like any other", func(t *testing.T) {
		table := Aggregate(Tokenize("... x !!"))

		assert.Equal(t, 2, table.Count(""))
		assert.Equal(t, []RankedEntry{{"", 2}, {"x", 1}}, table.Entries())
	})

	t.Run("Should return an empty table for no tokens", func(t *testing.T) {
		table := Aggregate(nil)

		assert.Equal(t, 0, table.Len())
		assert.Equal(t, 0, table.Total())
		assert.Empty(t, table.Entries())
		assert.Equal(t, "{}", table.String())
	})

	t.Run("Should sum counts to the number of tokens", func(t *testing.T) {
		for _, text := range corpora {
			tokens := Tokenize(text)
			assert.Equal(t, len(tokens), Aggregate(tokens).Total(), "corpus %q", text)
		}
	})

	t.Run("Should give every key a positive count", func(t *testing.T) {
		for _, text := range corpora {
			for _, entry := range Aggregate(Tokenize(text)).Entries() {
				assert.Positive(t, entry.Count, "corpus %q token %q", text, entry.Word)
			}
		}
	})

	t.Run("Should render in first-appearance order", func(t *testing.T) {
		assert.Equal(t, "{cat: 2, dog: 3}", Aggregate(Tokenize("Cat dog cat. Dog dog!")).String())
	})
}
