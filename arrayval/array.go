/*
File    : arrayval/array.go

Package arrayval implements the interpreter's multi-dimensional array model:
a recursive structure built right-to-left from a dimension list, where each
outer level owns independent copies of the inner array rather than sharing
storage. This mirrors the original interpreter's CallStack::Array, which
deep-copies the inner array once per outer slot.
*/
package arrayval

import "github.com/cxxi-lang/cxxi/interperr"

// Array is either a leaf (Ints holds the element storage, one int32 per
// slot) or an interior level (Elems holds independently-owned sub-arrays).
// Exactly one of Ints/Elems is non-nil for any given Array value.
type Array struct {
	Ints  []int32
	Elems []*Array
}

// New builds a multi-dimensional array from dims (outermost dimension
// first), matching the original construction order: the innermost level is
// allocated first as a zero-filled integer array, then each outer level
// wraps it by deep-copying that inner array once per slot.
func New(dims []int32) (*Array, error) {
	if len(dims) == 0 {
		return nil, interperr.New(interperr.TypeMismatch, "array declaration requires at least one dimension")
	}
	for _, d := range dims {
		if d < 0 {
			return nil, interperr.New(interperr.TypeMismatch, "array dimension must be non-negative, got %d", d)
		}
	}

	cur := &Array{Ints: make([]int32, dims[len(dims)-1])}
	for i := len(dims) - 2; i >= 0; i-- {
		n := dims[i]
		elems := make([]*Array, n)
		for j := range elems {
			elems[j] = cur.deepCopy()
		}
		cur = &Array{Elems: elems}
	}
	return cur, nil
}

// deepCopy returns an independent copy of a, recursing through every
// nested level so that no storage is shared between sibling slots.
func (a *Array) deepCopy() *Array {
	if a.Ints != nil {
		cp := make([]int32, len(a.Ints))
		copy(cp, a.Ints)
		return &Array{Ints: cp}
	}
	elems := make([]*Array, len(a.Elems))
	for i, e := range a.Elems {
		elems[i] = e.deepCopy()
	}
	return &Array{Elems: elems}
}

// IsLeaf reports whether this array's elements are integers rather than
// sub-arrays.
func (a *Array) IsLeaf() bool { return a.Ints != nil }

// Len returns the number of elements at this level, regardless of whether
// they are integers or sub-arrays.
func (a *Array) Len() int {
	if a.Ints != nil {
		return len(a.Ints)
	}
	return len(a.Elems)
}
