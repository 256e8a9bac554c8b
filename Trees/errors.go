package Trees

import "fmt"

// EmptyContainerError is returned by extremum queries on an empty tree.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	if e.Op == "" {
		return "Trees: empty container"
	}
	return "Trees: " + e.Op + " on empty container"
}

// Is makes every EmptyContainerError match ErrEmpty regardless of Op.
func (e *EmptyContainerError) Is(target error) bool {
	_, ok := target.(*EmptyContainerError)
	return ok
}

// ErrEmpty matches, through errors.Is, any error returned because the tree was empty.
var ErrEmpty error = &EmptyContainerError{}

// InvalidSliceError is the panic value of From when the given pairs aren't
// sorted in strictly ascending order of keys. Prev and Next are the first
// pair of adjacent keys found out of order.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: keys not strictly ascending at index %d: %v, %v", e.Index, e.Prev, e.Next)
}
