package bitfield

import "math/bits"

// Iterator walks the set bits of a single bitfield value, in order from the
// least significant bit to the most significant one. It owns a copy of the
// value, so advancing never affects the value it was built from and multiple
// iterators over the same value never interfere.
type Iterator[T Unsigned] struct {
	word T
}

// NewIterator constructs an iterator over the set bits of v.
func NewIterator[T Unsigned](v T) *Iterator[T] {
	return &Iterator[T]{word: v}
}

// Next returns the index of the next set bit, or false once every set bit has
// been produced. Indices are strictly increasing across calls, and exactly as
// many of them are produced as there are set bits in the value.
func (it *Iterator[T]) Next() (int, bool) {
	if it.word == 0 {
		return 0, false
	}

	index := bits.TrailingZeros64(uint64(it.word))
	// Clears the least significant set bit, advancing past index while
	// leaving the higher bits untouched.
	it.word &= it.word - 1

	return index, true
}
