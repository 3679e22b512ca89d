package vector

import "cmp"

// Equal reports whether a and b have the same length and pairwise equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a orders before b lexicographically.
// The first differing element decides,
// and when one is a prefix of the other, the shorter one is the lesser.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	n := min(a.length, b.length)
	for i := 0; i < n; i++ {
		x, y := a.buf[i], b.buf[i]
		if less(x, y) {
			return true
		}
		if less(y, x) {
			return false
		}
	}
	return a.length < b.length
}

// Compare returns 0 when a equals b, -1 when a is less than b, and +1 otherwise.
// It is derived from Equal and Less, so the three always agree.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return derive(Equal(a, b), func() bool { return Less(a, b) })
}

func CompareFunc[T any](a, b *Vector[T], eq func(x, y T) bool, less func(x, y T) bool) int {
	return derive(EqualFunc(a, b, eq), func() bool { return LessFunc(a, b, less) })
}

func derive(equal bool, less func() bool) int {
	switch {
	case equal:
		return 0
	case less():
		return -1
	default:
		return +1
	}
}
