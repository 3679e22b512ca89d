package vector

import (
	"cmp"
	"iter"
	"sort"
)

// RandomAccess is satisfied by both Iterator and ReverseIterator,
// so range algorithms can be written once for either direction.
type RandomAccess[T, It any] interface {
	Ptr() *T
	Add(k int) It
	Distance(other It) int
}

var (
	_ RandomAccess[int, Iterator[int]]        = Iterator[int]{}
	_ RandomAccess[int, ReverseIterator[int]] = ReverseIterator[int]{}
)

// Walk yields the elements of the half-open range [first, last).
//
//	for v := range vector.Walk[int](v.RBegin(), v.REnd()) {
//		// last to first
//	}
func Walk[T any, It RandomAccess[T, It]](first, last It) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := last.Distance(first)
		for i := 0; i < n; i++ {
			if !yield(*first.Add(i).Ptr()) {
				return
			}
		}
	}
}

// Sort orders the elements of [first, last) in ascending order along the iterator's direction.
// Sorting [RBegin(), REnd()) leaves the vector in descending order.
func Sort[T cmp.Ordered, It RandomAccess[T, It]](first, last It) {
	SortFunc[T](first, last, cmp.Compare[T])
}

func SortFunc[T any, It RandomAccess[T, It]](first, last It, fn func(a, b T) int) {
	sort.Sort(span[T, It]{first: first, n: last.Distance(first), cmp: fn})
}

type span[T any, It RandomAccess[T, It]] struct {
	first It
	n     int
	cmp   func(a, b T) int
}

func (s span[T, It]) Len() int { return s.n }

func (s span[T, It]) Less(i, j int) bool {
	return s.cmp(*s.first.Add(i).Ptr(), *s.first.Add(j).Ptr()) < 0
}

func (s span[T, It]) Swap(i, j int) {
	x, y := s.first.Add(i).Ptr(), s.first.Add(j).Ptr()
	*x, *y = *y, *x
}
