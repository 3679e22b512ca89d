package vector_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/vector/pkg/vector"
	"go.llib.dev/vector/pkg/vector/vectorcontract"
)

func TestReverseIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("random access", vectorcontract.RandomAccessIterator(func(tb testing.TB, vs []int) vectorcontract.IteratorSubject[vector.ReverseIterator[int]] {
		rev := slices.Clone(vs)
		slices.Reverse(rev)
		v := vector.Of(rev...)
		return vectorcontract.IteratorSubject[vector.ReverseIterator[int]]{First: v.RBegin(), Last: v.REnd()}
	}).Spec)

	sequence := func() *vector.Vector[int] {
		a := vector.Make[int](5)
		for i := range a.Len() {
			*a.Ref(i) = i
		}
		return a
	}

	s.Test("movement and comparison", func(t *testcase.T) {
		a := sequence()
		first, last := a.RBegin(), a.REnd()
		assert.Equal(t, a.Len(), last.Distance(first))
		assert.Equal(t, 4, first.Value())

		assert.True(t, first.Equal(a.RBegin()))
		assert.False(t, first.Equal(last))
		assert.True(t, first.Less(last))
		assert.True(t, first.Compare(last) <= 0)
		assert.True(t, last.Compare(first) > 0)
		assert.True(t, last.Compare(first) >= 0)

		first.Inc()
		assert.Equal(t, 3, first.Value())
		tmp := first.Inc()
		assert.Equal(t, 3, tmp.Value())
		assert.Equal(t, 2, first.Value())
		end := last.Dec()
		assert.True(t, end.Equal(a.REnd()))
		assert.Equal(t, 0, last.Value())
		last.Dec()
		assert.True(t, first.Advance(1).Equal(last))
		last.Retreat(3)
		assert.Equal(t, 4, last.Value())
	})

	s.Test("offsets in both directions", func(t *testcase.T) {
		a := sequence()
		first := a.RBegin()
		size := a.Len()
		for i := 0; i < size; i++ {
			for diff := -2; diff <= 2; diff++ {
				if 0 <= i+diff && i+diff < size {
					assert.Equal(t, 4-(i+diff), first.Add(i+diff).Value())
				}
				if 0 <= i-diff && i-diff < size {
					assert.Equal(t, 4-(i-diff), first.Add(i).Sub(diff).Value())
				}
			}
		}
	})

	s.Test("writing through Ptr", func(t *testcase.T) {
		a := vector.Of(1, 3, 5)
		*a.RBegin().Ptr() = 2
		*a.REnd().Prev().Ptr() = 4
		assert.Equal(t, []int{4, 3, 2}, a.ToSlice())

		var it vector.ReverseIterator[int]
		assert.True(t, it.IsZero())
		it = a.RBegin().Add(1)
		assert.Equal(t, 3, it.Value())
	})

	s.Test("RBegin equals REnd on an empty vector", func(t *testcase.T) {
		var a vector.Vector[int]
		assert.True(t, a.RBegin().Equal(a.REnd()))
		assert.Equal(t, 0, a.REnd().Distance(a.RBegin()))
	})

	s.Test("walking the reverse range visits the elements backwards", func(t *testcase.T) {
		a := sequence()
		var got []int
		for v := range vector.Walk[int](a.RBegin(), a.REnd()) {
			got = append(got, v)
		}
		assert.Equal(t, []int{4, 3, 2, 1, 0}, got)

		var backward []int
		for _, v := range a.Backward() {
			backward = append(backward, v)
		}
		assert.Equal(t, got, backward)
	})
}
