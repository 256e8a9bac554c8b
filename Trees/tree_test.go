package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
	tCheckEvery  = 997
)

func (u *AVLTree[K, V, S]) depth() int {
	var h func(*node[K, V, S]) int
	h = func(n *node[K, V, S]) int {
		if n == u.nilPtr {
			return 0
		}
		return max(h(n.l), h(n.r)) + 1
	}
	return h(u.root)
}

func TestAVLTree_Insert(t *testing.T) {
	tree := New[int, int, uint32](nil)
	content := hashmap.New[int, int]()
	for i := range tAddN {
		a := rg.Intn(tAddValRange)
		_, in := content.Get(a)
		if added := tree.Insert(a, i); added == in {
			t.Fatalf("insert %v returned %v, key present before: %v", a, added, in)
		}
		content.Set(a, i)
		if i%tCheckEvery == 0 && tree.Corrupt() {
			t.Fatalf("corrupt after %d insertions", i+1)
		}
	}
	if tree.Corrupt() {
		t.Fatal("corrupt")
	}
	if int(tree.Len()) != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Len(), content.Len())
	}
	t.Logf("depth: %d, size: %d.\n", tree.depth(), tree.Len())
	content.Range(func(k, v int) bool {
		if got, ok := tree.Load(k); !ok || got != v {
			t.Errorf("key %v has %v,%v want %v", k, got, ok, v)
		}
		return true
	})
	for k := range tree.Keys() {
		if _, in := content.Get(k); !in {
			t.Errorf("tree has non existent key %v", k)
		}
	}
}

func TestAVLTree_Delete(t *testing.T) {
	tree := New[int, struct{}, uint32](nil)
	content := hashmap.New[int, struct{}]()
	if tree.Delete(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i], struct{}{})
		content.Set(a[i], struct{}{})
	}
	for i := range rg.Intn(len(a)) {
		_, in := content.Get(a[i])
		if b := tree.Delete(a[i]); b != in {
			t.Fatalf("failed to delete key %v", a[i])
		}
		if tree.Delete(a[i]) {
			t.Fatalf("can delete a second time key %v", a[i])
		}
		content.Del(a[i])
		if i%tCheckEvery == 0 && tree.Corrupt() {
			t.Fatalf("corrupt after %d removals", i+1)
		}
	}
	if tree.Corrupt() {
		t.Fatal("corrupt")
	}
	if int(tree.Len()) != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Len(), content.Len())
	}
	t.Logf("depth: %d, size: %d.\n", tree.depth(), tree.Len())
	content.Range(func(k int, _ struct{}) bool {
		if !tree.Member(k) {
			t.Errorf("tree does not have key %v", k)
		}
		return true
	})
}

// TestAVLTree_Small checks every invariant after every operation on small
// trees, where rotations near the root are most frequent.
func TestAVLTree_Small(t *testing.T) {
	for round := range 200 {
		tree := New[int, int, uint8](nil)
		content := make(map[int]int)
		for i := range 120 {
			k := rg.Intn(40)
			if rg.Intn(3) == 0 {
				_, in := content[k]
				if tree.Delete(k) != in {
					t.Fatalf("round %d: delete %d, present %v", round, k, in)
				}
				delete(content, k)
			} else {
				tree.Insert(k, i)
				content[k] = i
			}
			if tree.Corrupt() {
				t.Fatalf("round %d: corrupt after op %d on key %d", round, i, k)
			}
			if int(tree.Len()) != len(content) {
				t.Fatalf("round %d: size %d, want %d", round, tree.Len(), len(content))
			}
		}
		got := tree.ToMap()
		if !slices.IsSortedFunc(got, func(a, b Pair[int, int]) int { return a.Key - b.Key }) {
			t.Fatalf("round %d: not sorted %v", round, got)
		}
		for _, p := range got {
			if content[p.Key] != p.Val {
				t.Fatalf("round %d: key %d has %d want %d", round, p.Key, p.Val, content[p.Key])
			}
		}
	}
}

// TestAVLTree_DrainAscending removes keys in order, which makes removals
// rotate repeatedly on the left spine.
func TestAVLTree_DrainAscending(t *testing.T) {
	tree := New[int, int, uint](nil)
	for _, k := range rg.Perm(5000) {
		tree.Insert(k, k)
	}
	for want := range 5000 {
		k, err := tree.PopMin()
		if err != nil || k != want {
			t.Fatalf("PopMin %d,%v want %d", k, err, want)
		}
		if want%97 == 0 && tree.Corrupt() {
			t.Fatalf("corrupt after removing %d", k)
		}
	}
	if !tree.Empty() || tree.Corrupt() {
		t.Fatal("tree not empty")
	}
	if _, err := tree.PopMin(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("PopMin on empty tree: %v", err)
	}
}

func TestAVLTree_Kth(t *testing.T) {
	tree := New[int, int, uint16](nil)
	ref := btree.NewOrderedG[int](16)
	for range tAddN / 2 {
		a := rg.Intn(tAddValRange)
		tree.Insert(a, a)
		ref.ReplaceOrInsert(a)
	}
	for range tAddN / 4 {
		a := rg.Intn(tAddValRange)
		tree.Delete(a)
		ref.Delete(a)
	}
	sorted := make([]int, 0, ref.Len())
	ref.Ascend(func(item int) bool {
		sorted = append(sorted, item)
		return true
	})
	if int(tree.Len()) != len(sorted) {
		t.Fatalf("tree size is %d, want %d", tree.Len(), len(sorted))
	}
	for i, v := range sorted {
		a, ok := tree.Kth(uint16(i))
		if !ok {
			t.Fatalf("nothing at rank k %d\n", i)
		}
		if a != v {
			t.Fatalf("wrong rank k %d, want %d has %d\n", i, v, a)
		}
		if r := tree.Rank(v); r != uint16(i) {
			t.Fatalf("wrong rank of %d: %d want %d", v, r, i)
		}
	}
	if _, ok := tree.Kth(tree.Len()); ok {
		t.Fatal("found key at rank Len()")
	}
	if r := tree.Rank(-1); r != 0 {
		t.Fatalf("wrong rank %d", r)
	}
	if r := tree.Rank(tAddValRange); r != tree.Len() {
		t.Fatalf("wrong rank %d", r)
	}
	if got := slices.Collect(tree.Keys()); !slices.Equal(got, sorted) {
		t.Fatal("Keys differ from reference")
	}
}

func TestAVLTree_Bounds(t *testing.T) {
	tree := New[int, int, uint32](nil)
	ref := avltree.NewWithIntComparator()
	for range tAddN / 4 {
		a := rg.Intn(tAddValRange)
		tree.Insert(a, a)
		ref.Put(a, a)
	}
	if ref.Size() != int(tree.Len()) {
		t.Fatalf("tree size is %d, want %d", tree.Len(), ref.Size())
	}
	for k := -1; k <= tAddValRange; k += 7 {
		want, wok := ref.Ceiling(k)
		got, ok := tree.LowerBound(k)
		if ok != wok || ok && got != want.Key.(int) {
			t.Fatalf("LowerBound(%d) = %d,%v", k, got, ok)
		}
		want, wok = ref.Floor(k - 1)
		got, ok = tree.UpperBound(k)
		if ok != wok || ok && got != want.Key.(int) {
			t.Fatalf("UpperBound(%d) = %d,%v", k, got, ok)
		}
	}
	mi, err := tree.Min()
	if err != nil || mi != ref.Left().Key.(int) {
		t.Fatalf("Min %d,%v", mi, err)
	}
	ma, err := tree.Max()
	if err != nil || ma != ref.Right().Key.(int) {
		t.Fatalf("Max %d,%v", ma, err)
	}
}

func TestAVLTree_Overwrite(t *testing.T) {
	tree := New[int, string, uint](nil)
	for _, k := range rg.Perm(1000) {
		tree.Insert(k, "a")
	}
	before := slices.Collect(tree.Keys())
	depth := tree.depth()
	for _, k := range rg.Perm(1000) {
		if tree.Insert(k, "b") {
			t.Fatalf("key %d inserted twice", k)
		}
	}
	if tree.Len() != 1000 || tree.depth() != depth || tree.Corrupt() {
		t.Fatal("overwriting changed the structure")
	}
	if after := slices.Collect(tree.Keys()); !slices.Equal(before, after) {
		t.Fatal("overwriting changed the keys")
	}
	for v := range tree.Values() {
		if v != "b" {
			t.Fatalf("value %q not overwritten", v)
		}
	}
}

func TestAVLTree_Depth(t *testing.T) {
	tree := New[int, struct{}, uint](nil)
	for i := range 1<<16 - 1 {
		tree.Insert(i, struct{}{})
	}
	// sequential insertion into an AVL tree yields a perfect tree.
	if d := tree.depth(); d != 16 {
		t.Errorf("depth %d, want 16", d)
	}
}

func TestFrom(t *testing.T) {
	content := make([]Pair[int, int], 0, tAddN)
	for i := range tAddN {
		content = append(content, Pair[int, int]{i * 2, i})
	}
	tree := From[int, int, uint16](content, nil)
	if tree.Len() != uint16(len(content)) {
		t.Fatalf("tree size is %d, want %d", tree.Len(), len(content))
	}
	if tree.Corrupt() {
		t.Fatal("corrupt")
	}
	if got := tree.ToMap(); !slices.Equal(got, content) {
		t.Fatal("wrong pairs")
	}
	for i := range 1000 {
		tree.Insert(rg.Intn(tAddN*2), -i)
		tree.Delete(rg.Intn(tAddN * 2))
	}
	if tree.Corrupt() {
		t.Fatal("corrupt after updates")
	}
	t.Logf("depth: %d, size: %d.\n", tree.depth(), tree.Len())

	defer func() {
		r := recover()
		e, ok := r.(InvalidSliceError)
		if !ok || e.Index != 2 {
			t.Fatalf("recovered %v", r)
		}
	}()
	From[int, int, uint]([]Pair[int, int]{{1, 0}, {3, 0}, {3, 0}}, nil)
}

func TestNewFunc(t *testing.T) {
	// reversed, case insensitive order.
	tree := NewFunc[string, int, uint](func(a, b string) int {
		return strings.Compare(strings.ToLower(b), strings.ToLower(a))
	}, nil)
	for i, s := range []string{"b", "A", "c", "B", "d"} {
		tree.Insert(s, i)
	}
	if got := slices.Collect(tree.Keys()); !slices.Equal(got, []string{"d", "c", "b", "A"}) {
		t.Fatalf("keys %v", got)
	}
	if v, _ := tree.Load("b"); v != 3 {
		t.Fatalf("value of b is %d", v)
	}
	if k, _ := tree.LowerBound("bb"); k != "b" {
		t.Fatalf("LowerBound %q", k)
	}
}

func TestEmpty(t *testing.T) {
	tree := New[int, int, uint](nil)
	var e *EmptyContainerError
	for _, f := range []func() (int, error){tree.Min, tree.Max, tree.PopMin, tree.PopMax} {
		if _, err := f(); !errors.Is(err, ErrEmpty) || !errors.As(err, &e) {
			t.Fatalf("want ErrEmpty, got %v", err)
		}
	}
	if _, ok := tree.Kth(0); ok {
		t.Fatal("Kth on empty tree")
	}
	if _, ok := tree.PopKth(0); ok {
		t.Fatal("PopKth on empty tree")
	}
	if _, ok := tree.LowerBound(0); ok {
		t.Fatal("LowerBound on empty tree")
	}
	if _, ok := tree.UpperBound(0); ok {
		t.Fatal("UpperBound on empty tree")
	}
	for range tree.Items() {
		t.Fatal("Items on empty tree")
	}
	tree.Insert(1, 1)
	tree.Clear()
	if !tree.Empty() || tree.Len() != 0 || tree.Member(1) {
		t.Fatal("Clear left keys")
	}
}
