package Decks

// Pos is a position in a Deck, like a forward iterator. The zero value is
// the end position. A Pos stays valid until the card at it is erased.
type Pos struct {
	n *node
}

// Next position. Calling Next on the end position panics.
func (p Pos) Next() Pos {
	return Pos{p.n.nx}
}

func (p Pos) End() bool {
	return p.n == nil
}

// Card at p. The card can be modified in place. The card of BeforeBegin is meaningless.
func (p Pos) Card() *Card {
	return &p.n.c
}
