package Decks

import (
	"iter"
	"strings"
)

type node struct {
	c  Card
	nx *node
}

// Deck is a singly linked list of cards. head is a sentinel placed before the
// first card, so the front of the deck needs no special cases.
// The zero value is an empty deck. A Deck must not be copied after first use.
type Deck struct {
	head node
	sz   uint
}

// Source of random numbers for Shuffle. Intn returns a number in [0,n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

func New() *Deck {
	return new(Deck)
}

// StandardDeck of 52 cards. For each rank from Ace down to Two, one card of
// each suit in the order Spade, Heart, Club, Diamond is pushed to the front,
// so the deck starts with the twos.
func StandardDeck() *Deck {
	d := New()
	for r := Ace; r >= Two; r-- {
		for _, s := range [...]Suit{Spade, Heart, Club, Diamond} {
			d.PushFront(Card{s, r})
		}
	}
	return d
}

// From builds a deck holding cards in the same order.
func From(cards ...Card) *Deck {
	d := New()
	for p, i := d.BeforeBegin(), 0; i < len(cards); p, i = p.Next(), i+1 {
		d.InsertAfter(p, cards[i])
	}
	return d
}

func (u *Deck) Size() uint {
	return u.sz
}

func (u *Deck) Empty() bool {
	return u.sz == 0
}

// BeforeBegin is the position of the sentinel. It's valid for InsertAfter and EraseAfter only.
func (u *Deck) BeforeBegin() Pos {
	return Pos{&u.head}
}

// Begin is the position of the first card, or the end position if the deck is empty.
func (u *Deck) Begin() Pos {
	return Pos{u.head.nx}
}

// End position, it's the zero Pos.
func (u *Deck) End() Pos {
	return Pos{}
}

// All cards from the front. The sequence can be ranged over more than once,
// but the deck must not be modified while ranging.
func (u *Deck) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for n := u.head.nx; n != nil; n = n.nx {
			if !yield(n.c) {
				return
			}
		}
	}
}

// Cards returns a copy of the cards from the front.
func (u *Deck) Cards() []Card {
	s := make([]Card, 0, u.sz)
	for c := range u.All() {
		s = append(s, c)
	}
	return s
}

// PushFront adds c as the first card.
// Time: O(1)
func (u *Deck) PushFront(c Card) {
	u.InsertAfter(u.BeforeBegin(), c)
}

// PopFront removes the first card. It panics with EmptyDeckError on an empty deck.
// Time: O(1)
func (u *Deck) PopFront() {
	if u.head.nx == nil {
		panic(EmptyDeckError{})
	}
	u.EraseAfter(u.BeforeBegin())
}

// InsertAfter puts c right after p. p must be a position in u.
// Time: O(1)
func (u *Deck) InsertAfter(p Pos, c Card) {
	if p.n == nil {
		panic(InvalidPosError{"insert after the end"})
	}
	attachAfter(p.n, &node{c: c})
	u.sz++
}

// EraseAfter removes the card right after p. p must be a position in u that isn't the last card.
// Time: O(1)
func (u *Deck) EraseAfter(p Pos) {
	if p.n == nil || p.n.nx == nil {
		panic(InvalidPosError{"erase after the last card"})
	}
	extractAfter(p.n)
	u.sz--
}

// Clear removes all the cards.
func (u *Deck) Clear() {
	u.head.nx, u.sz = nil, 0
}

func attachAfter(n, a *node) {
	a.nx = n.nx
	n.nx = a
}

// extractAfter unlinks the node after n and returns it.
func extractAfter(n *node) *node {
	a := n.nx
	n.nx, a.nx = a.nx, nil
	return a
}

// Shuffle the deck with a forward Fisher-Yates shuffle: the card at position i
// is swapped with the card at a uniformly chosen position in [i, Size()).
// Only the cards move, the nodes stay in place.
// Time: O(n^2)
func (u *Deck) Shuffle(src Source) {
	left := int(u.sz)
	for n := u.head.nx; n != nil; n, left = n.nx, left-1 {
		m := n
		for off := src.Intn(left); off > 0; off-- {
			m = m.nx
		}
		n.c, m.c = m.c, n.c
	}
}

// StableSelectionSort sorts the deck by rank. Cards of equal rank keep their
// relative order. The minimum of the unsorted part is unlinked and relinked
// after the sorted part; no node is allocated.
// Time: O(n^2) comparisons, O(n) relinks
func (u *Deck) StableSelectionSort() {
	for ins := &u.head; ins.nx != nil; ins = ins.nx {
		attachAfter(ins, extractAfter(beforeMin(ins)))
	}
}

// beforeMin returns the node before the first minimum after start. start.nx must not be nil.
func beforeMin(start *node) *node {
	bm := start
	for n := start.nx; n.nx != nil; n = n.nx {
		if n.nx.c.Less(bm.nx.c) {
			bm = n
		}
	}
	return bm
}

func (u *Deck) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := u.head.nx; n != nil; n = n.nx {
		sb.WriteString(n.c.String())
		if n.nx != nil {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
