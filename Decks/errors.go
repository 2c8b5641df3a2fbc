package Decks

type EmptyDeckError struct {
}

func (e EmptyDeckError) Error() string {
	return "Deck is Empty: cannot PopFront."
}

// InvalidPosError is the panic value when a Pos can't be used for an operation.
type InvalidPosError struct {
	op string
}

func (e InvalidPosError) Error() string {
	return "invalid position: cannot " + e.op + "."
}
