package Trees

// Tree represents a binary search tree holding no repeated values.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v
	//is already in the Tree.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v
	//isn't in the Tree.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Clear removes all the elements.
	Clear()
	//Height is the number of nodes on the longest path from the root.
	Height() uint
	//InOrder calls f on the elements in ascending order until f returns
	//false. The tree must not be modified during the iteration.
	InOrder(f func(*T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or the links between nodes don't agree.
	Corrupt() bool
}

var _ Tree[int] = (*OrderedTree[int, uint32])(nil)
