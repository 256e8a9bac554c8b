package Trees

import "iter"

// Member returns whether k is in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) Member(k K) bool {
	return u.find(k) != u.nilPtr
}

// Load the value of k without inserting anything.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) Load(k K) (V, bool) {
	n := u.find(k)
	return n.v, n != u.nilPtr
}

// Get returns A pointer to the value of k. If k isn't in the tree, it's
// inserted first with A new value from the default factory, or the zero
// value of V if the tree has no factory. So even though Get reads, it may
// modify the tree.
// Each inserted key gets its own call to the factory: a factory returning
// slices or maps must allocate new ones.
// The pointer is only valid until the next Insert, Delete or Pop*: removals
// move keys and values between nodes.
// Time: O(D)
func (u *AVLTree[K, V, S]) Get(k K) *V {
	if n := u.find(k); n != u.nilPtr {
		return &n.v
	}
	var v V
	if u.def != nil {
		v = u.def()
	}
	n, _ := u.insert(k, v)
	return &n.v
}

// Set is Insert, ignoring whether k was new.
func (u *AVLTree[K, V, S]) Set(k K, v V) {
	u.insert(k, v)
}

// Keys returns an iterator over the keys in ascending order. Each step is a
// call to Kth, so A full iteration costs O(n*D). The number of keys is taken
// when the iteration starts; the tree must not be modified during it.
func (u *AVLTree[K, V, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i, n := S(0), u.Len(); i < n; i++ {
			nd := u.kth(i)
			if nd == u.nilPtr || !yield(nd.k) {
				return
			}
		}
	}
}

// Values is Keys, but gives the value of each key.
func (u *AVLTree[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i, n := S(0), u.Len(); i < n; i++ {
			nd := u.kth(i)
			if nd == u.nilPtr || !yield(nd.v) {
				return
			}
		}
	}
}

// Items is Keys, but gives both the key and the value.
func (u *AVLTree[K, V, S]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, n := S(0), u.Len(); i < n; i++ {
			nd := u.kth(i)
			if nd == u.nilPtr || !yield(nd.k, nd.v) {
				return
			}
		}
	}
}

// ToMap collects every pair into a slice, ascending by key. A slice is used
// since a Go map wouldn't keep the order.
// Time: O(n*D)
func (u *AVLTree[K, V, S]) ToMap() []Pair[K, V] {
	ps := make([]Pair[K, V], 0, u.Len())
	for k, v := range u.Items() {
		ps = append(ps, Pair[K, V]{k, v})
	}
	return ps
}
