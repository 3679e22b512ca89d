package vectorcontract

import (
	"cmp"
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/vector/pkg/vector"
)

// Cursor is the value-receiver surface shared by the forward and the reverse iterator.
type Cursor[T, It any] interface {
	vector.RandomAccess[T, It]
	Value() T
	Sub(k int) It
	Next() It
	Prev() It
	Equal(It) bool
	Less(It) bool
	Compare(It) int
}

// IteratorSubject is a half-open cursor range, [First, Last).
type IteratorSubject[It any] struct {
	First It
	Last  It
}

// RandomAccessIterator checks the pointer-arithmetic laws of a cursor type.
// mk must return a range whose traversal from First to Last yields vs in order.
func RandomAccessIterator[T any, It Cursor[T, It]](mk func(tb testing.TB, vs []T) IteratorSubject[It], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	values := let.Var(s, func(t *testcase.T) []T {
		return c.makeElems(t, t.Random.IntBetween(3, 7))
	})
	subject := let.Var(s, func(t *testcase.T) IteratorSubject[It] {
		return mk(t, values.Get(t))
	})
	// position returns a random offset within [0, len(values)].
	position := func(t *testcase.T) int {
		return t.Random.IntBetween(0, len(values.Get(t)))
	}

	s.Test("traversal from First to Last visits the values in order", func(t *testcase.T) {
		var (
			first = subject.Get(t).First
			last  = subject.Get(t).Last
			vs    = values.Get(t)
		)
		assert.Equal(t, len(vs), last.Distance(first))
		assert.Equal(t, vs, iterkit.Collect(vector.Walk[T](first, last)))
		for i, exp := range vs {
			assert.Equal(t, exp, first.Add(i).Value())
		}
	})

	s.Test("Last is reachable from First by single steps", func(t *testcase.T) {
		var (
			it    = subject.Get(t).First
			last  = subject.Get(t).Last
			steps int
		)
		for !it.Equal(last) {
			assert.True(t, steps < len(values.Get(t)), "stepped past Last")
			it = it.Next()
			steps++
		}
		assert.Equal(t, len(values.Get(t)), steps)
	})

	s.Test("Distance is the signed offset between two cursors", func(t *testcase.T) {
		var (
			i, j  = position(t), position(t)
			first = subject.Get(t).First
			a, b  = first.Add(i), first.Add(j)
		)
		assert.Equal(t, i-j, a.Distance(b))
		assert.Equal(t, j-i, b.Distance(a))
	})

	s.Test("Add and Sub are inverse operations", func(t *testcase.T) {
		var (
			i  = position(t)
			k  = t.Random.IntBetween(-len(values.Get(t)), len(values.Get(t)))
			it = subject.Get(t).First.Add(i)
		)
		assert.True(t, it.Add(k).Sub(k).Equal(it))
		assert.True(t, it.Sub(k).Add(k).Equal(it))
		assert.True(t, it.Add(-k).Equal(it.Sub(k)))
		assert.Equal(t, k, it.Add(k).Distance(it))
	})

	s.Test("Next and Prev move by a single slot", func(t *testcase.T) {
		var (
			first = subject.Get(t).First
			i     = t.Random.IntBetween(1, len(values.Get(t))-1)
			it    = first.Add(i)
		)
		assert.True(t, it.Next().Equal(first.Add(i+1)))
		assert.True(t, it.Prev().Equal(first.Add(i-1)))
		assert.True(t, it.Next().Prev().Equal(it))
		assert.Equal(t, values.Get(t)[i-1], it.Prev().Value())
	})

	s.Test("ordering follows the traversal direction", func(t *testcase.T) {
		first := subject.Get(t).First
		for i := 0; i <= len(values.Get(t)); i++ {
			for j := 0; j <= len(values.Get(t)); j++ {
				a, b := first.Add(i), first.Add(j)
				assert.Equal(t, i == j, a.Equal(b))
				assert.Equal(t, i < j, a.Less(b))
				assert.Equal(t, cmp.Compare(i, j), a.Compare(b))
				assert.Equal(t, i <= j, a.Compare(b) <= 0)
			}
		}
	})

	s.Test("Ptr gives write access to the addressed element", func(t *testcase.T) {
		var (
			first = subject.Get(t).First
			i     = t.Random.IntN(len(values.Get(t)))
			exp   = c.makeElem(t)
		)
		*first.Add(i).Ptr() = exp
		assert.Equal(t, exp, first.Add(i).Value())
		for j, v := range values.Get(t) {
			if j == i {
				continue
			}
			assert.Equal(t, v, first.Add(j).Value())
		}
	})

	return s.AsSuite(fmt.Sprintf("RandomAccessIterator[%s]", reflectkit.TypeOf[It]().String()))
}
