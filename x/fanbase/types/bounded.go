package types

import "errors"

// ErrBoundExceeded is returned by BoundedVec.TryPush when the vector is full.
// Callers translate it into the capacity error of the index they maintain.
var ErrBoundExceeded = errors.New("bounded vec: capacity exceeded")

// BoundedVec is a fixed capacity, order-irrelevant set of ids. Removal swaps
// the last element into the freed slot, so ordering is not preserved.
type BoundedVec[T comparable] struct {
	items []T
	bound uint32
}

// NewBoundedVec wraps items with the given capacity. Items are copied.
func NewBoundedVec[T comparable](items []T, bound uint32) BoundedVec[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return BoundedVec[T]{items: cp, bound: bound}
}

func (v BoundedVec[T]) Len() int { return len(v.items) }

func (v BoundedVec[T]) Bound() uint32 { return v.bound }

func (v BoundedVec[T]) IsFull() bool { return uint64(len(v.items)) >= uint64(v.bound) }

// Items returns a copy of the elements.
func (v BoundedVec[T]) Items() []T {
	cp := make([]T, len(v.items))
	copy(cp, v.items)
	return cp
}

func (v BoundedVec[T]) Position(item T) int {
	for i, it := range v.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (v BoundedVec[T]) Contains(item T) bool { return v.Position(item) >= 0 }

// TryPush appends item, failing without mutation when the vector is full.
func (v *BoundedVec[T]) TryPush(item T) error {
	if v.IsFull() {
		return ErrBoundExceeded
	}
	v.items = append(v.items, item)
	return nil
}

// SwapRemove removes the first occurrence of item in O(1) and reports whether
// it was present.
func (v *BoundedVec[T]) SwapRemove(item T) bool {
	i := v.Position(item)
	if i < 0 {
		return false
	}
	last := len(v.items) - 1
	v.items[i] = v.items[last]
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	return true
}
