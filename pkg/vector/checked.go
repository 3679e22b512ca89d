package vector

import (
	"go.llib.dev/frameless/pkg/mathkit"
	"go.llib.dev/frameless/port/ds"
)

var _ ds.Sequence[int] = (*Vector[int])(nil)

// Append pushes vs to the end, growing the buffer with the same doubling rule as PushBack.
// Like PushBack, it panics with ErrOutOfMemory when the buffer can't grow.
func (v *Vector[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	must(v.growFor(len(vs)))
	v.length += copy(v.buf[v.length:], vs)
}

// Lookup returns the element at index, and reports whether index addressed a live element.
func (v *Vector[T]) Lookup(index int) (T, bool) {
	if !v.isIndex(index) {
		var zero T
		return zero, false
	}
	return v.buf[index], true
}

// Set overwrites the element at index, and reports whether index addressed a live element.
func (v *Vector[T]) Set(index int, val T) bool {
	if !v.isIndex(index) {
		return false
	}
	v.buf[index] = val
	return true
}

// Insert places vs in front of the element at index.
// An index equal to Len() appends. It reports false when index is out of range,
// or when the buffer can't grow, and in that case the vector is unchanged.
func (v *Vector[T]) Insert(index int, vs ...T) bool {
	if !v.isPosition(index) {
		return false
	}
	if err := v.growFor(len(vs)); err != nil {
		return false
	}
	n := len(vs)
	copy(v.buf[index+n:v.length+n], v.buf[index:v.length])
	copy(v.buf[index:index+n], vs)
	v.length += n
	return true
}

// Delete removes the element at index, and reports whether index addressed a live element.
func (v *Vector[T]) Delete(index int) bool {
	if !v.isIndex(index) {
		return false
	}
	v.eraseAt(index)
	return true
}

func (v *Vector[T]) TryAt(i int) (T, error) {
	val, ok := v.Lookup(i)
	if !ok {
		return val, ErrIndexOutOfRange.F("index %d with length %d", i, v.length)
	}
	return val, nil
}

// TryPopBack removes and returns the last element.
func (v *Vector[T]) TryPopBack() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	last := v.buf[v.length-1]
	v.length--
	return last, nil
}

func (v *Vector[T]) TryReserve(n int) error { return v.reserve(n) }

func (v *Vector[T]) TryPushBack(value T) error { return v.pushBack(value) }

func (v *Vector[T]) TryAssign(n int, value T) error {
	if n < 0 {
		return ErrIndexOutOfRange.F("negative size: %d", n)
	}
	return v.assign(n, value)
}

func (v *Vector[T]) TryResize(n int) error {
	var zero T
	return v.TryAssign(n, zero)
}

func (v *Vector[T]) TryShrinkToFit() error { return v.shrinkToFit() }

// TryInsertAt is InsertAt with the position validated against the vector's current buffer.
// For a zero-sized T, buffers are told apart by their capacity only,
// so an iterator of another vector with the same capacity passes the check.
func (v *Vector[T]) TryInsertAt(pos Iterator[T], value T) error {
	if !sameBuffer(pos.buf, v.buf) {
		return ErrForeignIterator
	}
	if !v.isPosition(pos.pos) {
		return ErrIndexOutOfRange.F("position %d with length %d", pos.pos, v.length)
	}
	return v.insertAt(pos.pos, value)
}

// TryEraseAt is EraseAt with the position validated against the vector's current buffer.
// The zero-sized T limitation of TryInsertAt applies.
func (v *Vector[T]) TryEraseAt(pos Iterator[T]) error {
	if !sameBuffer(pos.buf, v.buf) {
		return ErrForeignIterator
	}
	if !v.isIndex(pos.pos) {
		return ErrIndexOutOfRange.F("position %d with length %d", pos.pos, v.length)
	}
	v.eraseAt(pos.pos)
	return nil
}

func (v *Vector[T]) isIndex(i int) bool { return 0 <= i && i < v.length }

func (v *Vector[T]) isPosition(i int) bool { return 0 <= i && i <= v.length }

// growFor makes room for n more elements, doubling the capacity as many times as needed.
func (v *Vector[T]) growFor(n int) error {
	if mathkit.CanIntSumOverflow(v.length, n) {
		return ErrOutOfMemory.F("length %d can't grow by %d", v.length, n)
	}
	need := v.length + n
	capacity := len(v.buf)
	for capacity < need {
		var err error
		capacity, err = doubled(capacity)
		if err != nil {
			return err
		}
	}
	if capacity == len(v.buf) {
		return nil
	}
	return v.realloc(capacity)
}
