package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Pair is a key and its value.
type Pair[K, V any] struct {
	Key K
	Val V
}

// Tree is an ordered map with positional access, implemented using nodes.
// Receivers that have A bool as A second return value indicate whether the
// first return value is defined. For example, if calling Kth with k>=Len(),
// the return value will be (x K, false bool), and x should not be used.
// Methods implemented recursively should be noted, otherwise methods are
// implemented iteratively.
// Ranks start from 0: the smallest key has rank 0, the greatest Len()-1.
type Tree[K, V any, S constraints.Unsigned] interface {
	//Insert k with value v, replacing the value if k exists. Returns true if k is new.
	Insert(k K, v V) bool
	//Set is Insert without the result.
	Set(k K, v V)
	//Delete k. Returns false if k doesn't exist.
	Delete(k K) bool
	//Member returns whether k exists.
	Member(k K) bool
	//Load the value of k.
	Load(k K) (V, bool)
	//Get A pointer to the value of k. If k doesn't exist, it's first inserted with
	//the default value. The pointer stays valid until the next insertion or removal.
	Get(k K) *V
	//LowerBound is the smallest key >= k.
	LowerBound(k K) (K, bool)
	//UpperBound is the greatest key < k.
	UpperBound(k K) (K, bool)
	//Kth smallest key.
	Kth(k S) (K, bool)
	//Rank is the number of keys < k.
	Rank(k K) S
	//Min key. Fails with ErrEmpty on an empty tree.
	Min() (K, error)
	//Max key. Fails with ErrEmpty on an empty tree.
	Max() (K, error)
	//PopMin removes and returns the Min key.
	PopMin() (K, error)
	//PopMax removes and returns the Max key.
	PopMax() (K, error)
	//PopKth removes and returns the Kth key.
	PopKth(k S) (K, bool)
	//Len is the number of keys.
	Len() S
	//Keys in ascending order. The tree must not be modified during the iteration.
	Keys() iter.Seq[K]
	//Values in ascending order of their keys.
	Values() iter.Seq[V]
	//Items in ascending order of keys.
	Items() iter.Seq2[K, V]
	//ToMap collects all pairs in ascending order of keys.
	ToMap() []Pair[K, V]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var _ Tree[int, int, uint] = (*AVLTree[int, int, uint])(nil)
