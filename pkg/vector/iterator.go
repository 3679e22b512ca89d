package vector

import (
	"cmp"
	"unsafe"
)

// Iterator is a forward cursor over a Vector's buffer.
//
// It is a plain position without ownership or bounds checking,
// and it behaves like pointer arithmetic over the buffer.
// The zero Iterator is the null cursor, it must not be dereferenced.
// Reallocating the vector detaches the Iterator from it.
type Iterator[T any] struct {
	buf []T
	pos int
}

// Value dereferences the cursor.
func (it Iterator[T]) Value() T { return it.buf[it.pos] }

// Ptr returns the address of the element under the cursor.
func (it Iterator[T]) Ptr() *T { return &it.buf[it.pos] }

// IsZero reports whether it is the null cursor.
func (it Iterator[T]) IsZero() bool { return it.buf == nil && it.pos == 0 }

// Next returns the cursor moved by one slot forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the cursor moved by one slot backward.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Inc moves the cursor one slot forward and returns its previous state.
func (it *Iterator[T]) Inc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Dec moves the cursor one slot backward and returns its previous state.
func (it *Iterator[T]) Dec() Iterator[T] {
	prev := *it
	it.pos--
	return prev
}

func (it Iterator[T]) Add(k int) Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos + k}
}

func (it Iterator[T]) Sub(k int) Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos - k}
}

// Distance returns the signed number of slots from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.pos - other.pos
}

// Advance moves the cursor by k slots in place, and returns the moved cursor.
func (it *Iterator[T]) Advance(k int) Iterator[T] {
	it.pos += k
	return *it
}

// Retreat moves the cursor back by k slots in place, and returns the moved cursor.
func (it *Iterator[T]) Retreat(k int) Iterator[T] {
	it.pos -= k
	return *it
}

// Equal reports whether both cursors address the same slot of the same buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return sameBuffer(it.buf, other.buf) && it.pos == other.pos
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Compare(other) < 0
}

// Compare orders cursors by their position, an earlier slot is the lesser.
// It returns 0 only for Equal cursors.
// Cursors of different buffers at the same position get an arbitrary but stable order.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	return cmp.Or(cmp.Compare(it.pos, other.pos), compareBuffers(it.buf, other.buf))
}

// Reverse returns the reverse cursor addressing the same slot.
func (it Iterator[T]) Reverse() ReverseIterator[T] {
	return ReverseIterator[T]{buf: it.buf, pos: it.pos}
}

// sameBuffer reports whether a and b are the same allocation.
// Buffers of a zero-sized T share their address, so for those only the capacity tells them apart.
func sameBuffer[T any](a, b []T) bool {
	return compareBuffers(a, b) == 0
}

func compareBuffers[T any](a, b []T) int {
	return cmp.Or(
		cmp.Compare(uintptr(unsafe.Pointer(unsafe.SliceData(a))), uintptr(unsafe.Pointer(unsafe.SliceData(b)))),
		cmp.Compare(len(a), len(b)),
	)
}
