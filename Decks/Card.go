package Decks

import (
	"cmp"
	"strconv"
)

// Rank of a card. Two is the lowest, Ace the highest.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r))
}

// Suit of a card, the value is the letter it prints as.
type Suit byte

const (
	Spade   Suit = 'S'
	Heart   Suit = 'H'
	Diamond Suit = 'D'
	Club    Suit = 'C'
)

func (s Suit) String() string {
	return string(rune(s))
}

// Card is compared by Rank only, so two cards of different suits may be equal.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) Less(o Card) bool {
	return c.Rank < o.Rank
}

func (c Card) Equal(o Card) bool {
	return c.Rank == o.Rank
}

// Compare is like cmp.Compare on the ranks. It can be passed to slices.SortStableFunc and such.
func (c Card) Compare(o Card) int {
	return cmp.Compare(c.Rank, o.Rank)
}

// String gives "(rank|suit)", e.g. "(10|H)".
func (c Card) String() string {
	return "(" + c.Rank.String() + "|" + c.Suit.String() + ")"
}
