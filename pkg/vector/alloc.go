package vector

import (
	"context"
	"runtime"
	"unsafe"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/mathkit"
)

// ceiling returns the largest capacity a buffer of T may have.
// A positive limit lowers the platform ceiling.
func ceiling[T any](limit int) int {
	var zero T
	c := mathkit.MaxInt[int]()
	if size := int(unsafe.Sizeof(zero)); 0 < size {
		c /= size
	}
	if 0 < limit && limit < c {
		c = limit
	}
	return c
}

// allocate makes a new buffer with exactly n slots.
// A zero n yields the unallocated (nil) buffer.
// Only the runtime's length check is recoverable,
// a request within range that the process can't back with memory is fatal.
func allocate[T any](n, limit int) (buf []T, err error) {
	if n == 0 {
		return nil, nil
	}
	if c := ceiling[T](limit); n < 0 || c < n {
		return nil, ErrOutOfMemory.F("requested capacity %d exceeds the maximum of %d", n, c)
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rErr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		buf, err = nil, ErrOutOfMemory.Wrap(rErr)
	}()
	return make([]T, n), nil
}

// doubled is the push-back growth rule.
func doubled(capacity int) (int, error) {
	if capacity == 0 {
		return 1, nil
	}
	if mathkit.CanIntMulOverflow(capacity, 2) {
		return 0, ErrOutOfMemory.F("capacity %d can't be doubled", capacity)
	}
	return capacity * 2, nil
}

// realloc moves the live elements into a new buffer of exactly capacity slots.
// On failure the vector is left untouched.
func (v *Vector[T]) realloc(capacity int) error {
	ctx := context.Background()
	buf, err := allocate[T](capacity, v.maxCap)
	if err != nil {
		v.logDebug(ctx, "vector buffer allocation failed",
			logging.Field("from", len(v.buf)),
			logging.Field("to", capacity),
			logging.ErrField(err))
		return err
	}
	copy(buf, v.buf[:v.length])
	v.logDebug(ctx, "vector buffer reallocated",
		logging.Field("from", len(v.buf)),
		logging.Field("to", capacity))
	v.buf = buf
	return nil
}

func (v *Vector[T]) logDebug(ctx context.Context, msg string, ds ...logging.Detail) {
	if v.logger != nil {
		v.logger.Debug(ctx, msg, ds...)
		return
	}
	logger.Debug(ctx, msg, ds...)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
