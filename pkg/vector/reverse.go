package vector

import "cmp"

// ReverseIterator walks a Vector's buffer from the back to the front.
// Every movement is the mirror image of Iterator's:
// moving forward steps to a lower slot, and a cursor further along the reversed traversal compares greater.
type ReverseIterator[T any] struct {
	buf []T
	pos int
}

func (it ReverseIterator[T]) Value() T { return it.buf[it.pos] }

func (it ReverseIterator[T]) Ptr() *T { return &it.buf[it.pos] }

func (it ReverseIterator[T]) IsZero() bool { return it.buf == nil && it.pos == 0 }

func (it ReverseIterator[T]) Next() ReverseIterator[T] { return it.Add(1) }

func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return it.Add(-1) }

func (it *ReverseIterator[T]) Inc() ReverseIterator[T] {
	prev := *it
	it.pos--
	return prev
}

func (it *ReverseIterator[T]) Dec() ReverseIterator[T] {
	prev := *it
	it.pos++
	return prev
}

func (it ReverseIterator[T]) Add(k int) ReverseIterator[T] {
	return ReverseIterator[T]{buf: it.buf, pos: it.pos - k}
}

func (it ReverseIterator[T]) Sub(k int) ReverseIterator[T] {
	return ReverseIterator[T]{buf: it.buf, pos: it.pos + k}
}

func (it ReverseIterator[T]) Distance(other ReverseIterator[T]) int {
	return other.pos - it.pos
}

func (it *ReverseIterator[T]) Advance(k int) ReverseIterator[T] {
	it.pos -= k
	return *it
}

func (it *ReverseIterator[T]) Retreat(k int) ReverseIterator[T] {
	it.pos += k
	return *it
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return sameBuffer(it.buf, other.buf) && it.pos == other.pos
}

func (it ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return it.Compare(other) < 0
}

// Compare returns 0 only for Equal cursors, like Iterator.Compare.
func (it ReverseIterator[T]) Compare(other ReverseIterator[T]) int {
	return cmp.Or(cmp.Compare(other.pos, it.pos), compareBuffers(it.buf, other.buf))
}

// Forward returns the forward cursor addressing the same slot.
func (it ReverseIterator[T]) Forward() Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos}
}
