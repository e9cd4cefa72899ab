// Package bitfield treats fixed-width unsigned integers as occupancy bitmaps
// for the slot neighbourhoods of hash-map buckets.
package bitfield

import (
	"fmt"
	"iter"
	"math/bits"
)

// Unsigned constrains the integer types that can act as a neighbourhood
// occupancy bitmap. Bit i marks slot i, counting from the least significant
// bit.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Default is the bitfield type for consumers that have no reason to pick a
// specific width.
type Default = uint32

// Size returns the number of bits in T.
func Size[T Unsigned]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// OneAt returns a bitfield that is all zeroes, except for a single one at the
// given index.
//
// Panics if the index is outside [0, Size).
func OneAt[T Unsigned](index int) T {
	if index < 0 || index >= Size[T]() {
		panic(fmt.Sprintf("bitfield: index %d is out of range: must be less than %d", index, Size[T]()))
	}

	return T(1) << index
}

// ZeroAt returns a bitfield that is all ones, except for a single zero at the
// given index.
//
// Panics if the index is outside [0, Size).
func ZeroAt[T Unsigned](index int) T {
	return ^OneAt[T](index)
}

// Full reports whether every bit of the bitfield is set, meaning every slot
// in the neighbourhood is occupied.
func Full[T Unsigned](v T) bool {
	return v == ^T(0)
}

// Count returns the number of bits set in the bitfield.
func Count[T Unsigned](v T) int {
	return bits.OnesCount64(uint64(v))
}

// Traverse calls fn for each set bit of v, from the least significant bit to
// the most significant one, until fn returns false. It reports whether the
// traversal ran to completion.
//
// The bitfield is copied, so v is never mutated.
func Traverse[T Unsigned](v T, fn func(int) bool) bool {
	it := NewIterator(v)
	for index, ok := it.Next(); ok; index, ok = it.Next() {
		if !fn(index) {
			return false
		}
	}

	return true
}

// Iter returns an iterator over the indices of the set bits of v, in order
// from least significant to most significant. Every invocation of the
// returned sequence is a fresh, independent traversal.
func Iter[T Unsigned](v T) iter.Seq[int] {
	return func(yield func(int) bool) {
		Traverse(v, yield)
	}
}

// AsSlice returns the indices of the set bits of v, in ascending order.
func AsSlice[T Unsigned](v T) []int {
	out := make([]int, 0, Count(v))

	Traverse(v, func(index int) bool {
		out = append(out, index)
		return true
	})

	return out
}
