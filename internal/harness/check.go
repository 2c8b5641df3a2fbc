package harness

import (
	"slices"

	"github.com/g-m-twostay/dsdemo/Decks"
)

// IsSorted reports whether cards are in non-decreasing rank order.
func IsSorted(cards []Decks.Card) bool {
	return slices.IsSortedFunc(cards, Decks.Card.Compare)
}

// IsStablySorted reports whether sorted holds the cards of before in rank
// order, with the cards of each rank in the order they have in before.
func IsStablySorted(sorted, before []Decks.Card) bool {
	if len(sorted) != len(before) || !IsSorted(sorted) {
		return false
	}
	want := slices.Clone(before)
	slices.SortStableFunc(want, Decks.Card.Compare)
	return slices.Equal(want, sorted)
}
