// Package vector implements a contiguous, growable sequence container
// with manual capacity control and random-access iterators.
//
// The core operations follow the contract of a low-level array primitive:
// indexes, positions and non-emptiness are unchecked preconditions.
// Violating them is a programming error, not a reported failure.
// The Try* methods and the Sequence methods (Lookup, Set, Insert, Delete)
// form the checked layer on top of the same container.
//
// Iterators are plain positions inside a buffer.
// Any operation that reallocates the buffer invalidates them:
// Reserve growth, ShrinkToFit, and growth through Assign, Resize, PushBack or InsertAt.
// Operations that only change the length (Clear, PopBack, EraseAt, shrinking Assign/Resize)
// keep the buffer, so iterators to still-live elements remain valid.
//
// A Vector owns its buffer exclusively. Copy it with Clone or CopyFrom,
// never by dereferencing, since a shallow struct copy would share the buffer.
package vector

import (
	"context"
	"iter"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/mathkit"
)

type Vector[T any] struct {
	// buf is the owned buffer, its length is the capacity.
	// Slots from length up to the capacity are never read.
	buf    []T
	length int
	maxCap int
	logger *logging.Logger
}

// New returns an empty Vector without any allocation.
// The zero Vector is equally ready to use.
func New[T any](opts ...Option) *Vector[T] {
	c := toConfig(opts)
	return &Vector[T]{maxCap: c.MaxCapacity, logger: c.Logger}
}

// Make returns a Vector with size zero value elements, and a capacity of exactly size.
func Make[T any](size int, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.Resize(size)
	return v
}

// Of returns a Vector holding a copy of vs, with a capacity of exactly len(vs).
func Of[T any](vs ...T) *Vector[T] {
	var v Vector[T]
	v.Reserve(len(vs))
	v.length = copy(v.buf, vs)
	return &v
}

// Clone returns a deep copy of v, with a capacity equal to v.Len().
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{maxCap: v.maxCap, logger: v.logger}
	c.CopyFrom(v)
	return c
}

// CopyFrom replaces the contents of the vector with a copy of other's elements.
// The existing buffer is reused when it is large enough, the capacity never shrinks.
// Copying a vector onto itself is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Reserve(other.length)
	v.length = copy(v.buf, other.buf[:other.length])
}

// Release drops the buffer and returns the vector to its unallocated state.
// Releasing an unallocated vector has no effect.
func (v *Vector[T]) Release() {
	if v.buf == nil {
		return
	}
	v.logDebug(context.Background(), "vector buffer released",
		logging.Field("from", len(v.buf)))
	v.buf = nil
	v.length = 0
}

func (v *Vector[T]) Len() int { return v.length }

func (v *Vector[T]) Cap() int { return len(v.buf) }

func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// Data returns the address of the first slot of the buffer, or nil when nothing is allocated.
// The pointer is meant for reading and identity checks.
// It is only meaningful while the vector is not empty, and until the next reallocation.
func (v *Vector[T]) Data() *T {
	if len(v.buf) == 0 {
		return nil
	}
	return &v.buf[0]
}

// At returns the element at index i.
// The index must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	if debug {
		assertIndex(i, v.length)
	}
	return v.buf[i]
}

// Ref returns a pointer to the element at index i for in-place modification.
// The index must be in [0, Len()).
func (v *Vector[T]) Ref(i int) *T {
	if debug {
		assertIndex(i, v.length)
	}
	return &v.buf[i]
}

// Reserve grows the capacity to exactly n when n is larger than the current capacity.
// It never shrinks the buffer.
func (v *Vector[T]) Reserve(n int) { must(v.reserve(n)) }

func (v *Vector[T]) reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	return v.realloc(n)
}

// Clear sets the length to zero. The buffer and the capacity are kept.
func (v *Vector[T]) Clear() { v.length = 0 }

// Assign makes the vector n elements long.
//
// When n is not larger than the length, the vector is truncated, nothing is written.
// Otherwise the slots from the old length up to n are filled with value,
// after growing the capacity to max(2*Cap(), n) if it was too small.
func (v *Vector[T]) Assign(n int, value T) { must(v.assign(n, value)) }

func (v *Vector[T]) assign(n int, value T) error {
	if n <= v.length {
		v.length = max(n, 0)
		return nil
	}
	if len(v.buf) < n {
		capacity := n
		if !mathkit.CanIntMulOverflow(len(v.buf), 2) {
			capacity = max(len(v.buf)*2, n)
		}
		if err := v.realloc(capacity); err != nil {
			return err
		}
	}
	for i := v.length; i < n; i++ {
		v.buf[i] = value
	}
	v.length = n
	return nil
}

// Resize is Assign with the zero value of T.
func (v *Vector[T]) Resize(n int) { must(v.resize(n)) }

func (v *Vector[T]) resize(n int) error {
	var zero T
	return v.assign(n, zero)
}

// ShrinkToFit reallocates the buffer to exactly Len() slots.
// Shrinking an empty vector releases its buffer.
func (v *Vector[T]) ShrinkToFit() { must(v.shrinkToFit()) }

func (v *Vector[T]) shrinkToFit() error {
	if v.length == len(v.buf) {
		return nil
	}
	return v.realloc(v.length)
}

// PushBack appends value at the end.
// A full buffer is doubled first, an unallocated one gets a single slot.
func (v *Vector[T]) PushBack(value T) { must(v.pushBack(value)) }

func (v *Vector[T]) pushBack(value T) error {
	if err := v.growFull(); err != nil {
		return err
	}
	v.buf[v.length] = value
	v.length++
	return nil
}

// PopBack removes the last element. The vector must not be empty.
// The vacated slot is left as is.
func (v *Vector[T]) PopBack() {
	if debug {
		assertNotEmpty(v.length)
	}
	v.length--
}

// InsertAt inserts value in front of the element pos points to.
// pos must be in [Begin(), End()]; End() makes it equal to PushBack.
// The index of pos is taken before a full buffer grows, so the shift happens in the new buffer.
func (v *Vector[T]) InsertAt(pos Iterator[T], value T) { must(v.insertAt(pos.pos, value)) }

func (v *Vector[T]) insertAt(i int, value T) error {
	if debug {
		assertPosition(i, v.length)
	}
	if err := v.growFull(); err != nil {
		return err
	}
	copy(v.buf[i+1:v.length+1], v.buf[i:v.length])
	v.buf[i] = value
	v.length++
	return nil
}

// EraseAt removes the element pos points to and shifts the rest of the elements left.
// pos must be in [Begin(), End()).
func (v *Vector[T]) EraseAt(pos Iterator[T]) { v.eraseAt(pos.pos) }

func (v *Vector[T]) eraseAt(i int) {
	if debug {
		assertIndex(i, v.length)
	}
	copy(v.buf[i:v.length-1], v.buf[i+1:v.length])
	v.length--
}

// Swap exchanges the buffers, lengths and capacities of the two vectors.
// The configured limits stay with their vector.
// No element is copied. Iterators keep pointing into their buffer,
// which now belongs to the other vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.length, other.length = other.length, v.length
}

// growFull doubles the buffer when there is no free slot left.
func (v *Vector[T]) growFull() error {
	if v.length < len(v.buf) {
		return nil
	}
	capacity, err := doubled(len(v.buf))
	if err != nil {
		return err
	}
	return v.realloc(capacity)
}

func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: v.buf, pos: 0}
}

func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{buf: v.buf, pos: v.length}
}

// RBegin points to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{buf: v.buf, pos: v.length - 1}
}

// REnd points one slot before the first element, and must not be dereferenced.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{buf: v.buf, pos: -1}
}

// Values iterates over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// All iterates over the index and value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward iterates over the index and value pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; 0 <= i; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.length)
	copy(out, v.buf[:v.length])
	return out
}
