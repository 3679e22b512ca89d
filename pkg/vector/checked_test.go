package vector_test

import (
	"testing"

	"go.llib.dev/frameless/port/ds"
	"go.llib.dev/frameless/port/ds/dscontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/vector/pkg/vector"
	"go.llib.dev/vector/pkg/vector/vectorcontract"
)

func TestVector_sequence(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("ds.Sequence", vectorcontract.Sequence(func(tb testing.TB) ds.Sequence[int] {
		return vector.New[int]()
	}).Spec)

	s.Context("ds.Sequence with string elements", vectorcontract.Sequence(func(tb testing.TB) ds.Sequence[string] {
		return vector.New[string]()
	}).Spec)

	s.Context("ds.List", dscontract.OrderedList[int](func(tb testing.TB) ds.List[int] {
		return vector.New[int]()
	}).Spec)

	s.Context("ds.Len", dscontract.LenAppendable[int](func(tb testing.TB) dscontract.SubjectLenAppendable[int] {
		return vector.New[int]()
	}).Spec)

	s.Test("Append follows the doubling rule", func(t *testcase.T) {
		v := vector.Of(1, 2, 3)
		v.Append(4, 5, 6, 7)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, v.ToSlice())
		assert.Equal(t, 12, v.Cap())

		v.Append()
		assert.Equal(t, 12, v.Cap())
	})
}

func TestVector_checked(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
	})
	v := let.Var(s, func(t *testcase.T) *vector.Vector[int] {
		return vector.Of(values.Get(t)...)
	})

	s.Describe("#TryAt", func(s *testcase.Spec) {
		s.Then("a live index gives the element", func(t *testcase.T) {
			i := t.Random.IntN(len(values.Get(t)))
			got, err := v.Get(t).TryAt(i)
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[i], got)
		})

		s.Then("an index past the length is rejected", func(t *testcase.T) {
			_, err := v.Get(t).TryAt(len(values.Get(t)))
			assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)

			_, err = v.Get(t).TryAt(-1)
			assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
		})

		s.Then("slots beyond the length are not readable, even if allocated", func(t *testcase.T) {
			v.Get(t).PopBack()
			_, err := v.Get(t).TryAt(len(values.Get(t)) - 1)
			assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
		})
	})

	s.Describe("#TryPopBack", func(s *testcase.Spec) {
		s.Then("elements come back in reverse order until the vector is empty", func(t *testcase.T) {
			vs := values.Get(t)
			for i := len(vs) - 1; 0 <= i; i-- {
				got, err := v.Get(t).TryPopBack()
				assert.NoError(t, err)
				assert.Equal(t, vs[i], got)
			}
			_, err := v.Get(t).TryPopBack()
			assert.ErrorIs(t, err, vector.ErrEmpty)
		})
	})

	s.Describe("#TryAssign", func(s *testcase.Spec) {
		s.Then("a negative size is rejected and nothing changes", func(t *testcase.T) {
			assert.ErrorIs(t, v.Get(t).TryAssign(-1, 0), vector.ErrIndexOutOfRange)
			assert.Equal(t, values.Get(t), v.Get(t).ToSlice())
		})

		s.Then("a valid size behaves like Assign", func(t *testcase.T) {
			n := len(values.Get(t)) + 2
			assert.NoError(t, v.Get(t).TryAssign(n, 42))
			assert.Equal(t, append(values.Get(t), 42, 42), v.Get(t).ToSlice())
		})
	})

	s.Describe("#TryResize", func(s *testcase.Spec) {
		s.Then("it fills with zero values", func(t *testcase.T) {
			assert.NoError(t, v.Get(t).TryResize(len(values.Get(t))+1))
			assert.Equal(t, append(values.Get(t), 0), v.Get(t).ToSlice())
			assert.ErrorIs(t, v.Get(t).TryResize(-1), vector.ErrIndexOutOfRange)
		})
	})

	s.Describe("#TryReserve and #TryShrinkToFit", func(s *testcase.Spec) {
		s.Then("the capacity changes the same way as the panicking variants", func(t *testcase.T) {
			n := len(values.Get(t))
			assert.NoError(t, v.Get(t).TryReserve(n*3))
			assert.Equal(t, n*3, v.Get(t).Cap())
			assert.NoError(t, v.Get(t).TryShrinkToFit())
			assert.Equal(t, n, v.Get(t).Cap())
			assert.Equal(t, values.Get(t), v.Get(t).ToSlice())
		})
	})

	s.Describe("#TryInsertAt", func(s *testcase.Spec) {
		s.Then("a valid position inserts", func(t *testcase.T) {
			assert.NoError(t, v.Get(t).TryInsertAt(v.Get(t).Begin(), 42))
			assert.Equal(t, append([]int{42}, values.Get(t)...), v.Get(t).ToSlice())
		})

		s.Then("a position outside of [Begin, End] is rejected", func(t *testcase.T) {
			assert.ErrorIs(t, v.Get(t).TryInsertAt(v.Get(t).End().Next(), 42), vector.ErrIndexOutOfRange)
			assert.ErrorIs(t, v.Get(t).TryInsertAt(v.Get(t).Begin().Prev(), 42), vector.ErrIndexOutOfRange)
			assert.Equal(t, values.Get(t), v.Get(t).ToSlice())
		})

		s.Then("an iterator from another vector is rejected", func(t *testcase.T) {
			other := vector.Of(values.Get(t)...)
			assert.ErrorIs(t, v.Get(t).TryInsertAt(other.Begin(), 42), vector.ErrForeignIterator)
		})

		s.Then("an iterator invalidated by a reallocation is rejected", func(t *testcase.T) {
			begin := v.Get(t).Begin()
			v.Get(t).PushBack(42)
			assert.ErrorIs(t, v.Get(t).TryInsertAt(begin, 42), vector.ErrForeignIterator)
		})
	})

	s.Describe("#TryEraseAt", func(s *testcase.Spec) {
		s.Then("a live position erases", func(t *testcase.T) {
			assert.NoError(t, v.Get(t).TryEraseAt(v.Get(t).Begin()))
			assert.Equal(t, values.Get(t)[1:], v.Get(t).ToSlice())
		})

		s.Then("End is not erasable", func(t *testcase.T) {
			assert.ErrorIs(t, v.Get(t).TryEraseAt(v.Get(t).End()), vector.ErrIndexOutOfRange)
		})

		s.Then("an iterator from another vector is rejected", func(t *testcase.T) {
			other := vector.Of(values.Get(t)...)
			assert.ErrorIs(t, v.Get(t).TryEraseAt(other.Begin()), vector.ErrForeignIterator)
			assert.Equal(t, values.Get(t), v.Get(t).ToSlice())
		})
	})
}

func TestVector_checked_zeroSizedElements(t *testing.T) {
	var e struct{}

	t.Run("an iterator of a vector with another capacity is foreign", func(t *testing.T) {
		x, y := vector.Make[struct{}](2), vector.Make[struct{}](3)
		assert.ErrorIs(t, x.TryEraseAt(y.Begin()), vector.ErrForeignIterator)
		assert.ErrorIs(t, x.TryInsertAt(y.Begin(), e), vector.ErrForeignIterator)
		assert.Equal(t, 2, x.Len())
		assert.Equal(t, 3, y.Len())
	})

	t.Run("reallocation detaches the iterators", func(t *testing.T) {
		x := vector.Make[struct{}](2)
		begin := x.Begin()
		x.PushBack(e)
		assert.False(t, begin.Equal(x.Begin()))
		assert.ErrorIs(t, x.TryEraseAt(begin), vector.ErrForeignIterator)
		assert.NoError(t, x.TryEraseAt(x.Begin()))
		assert.Equal(t, 2, x.Len())
	})
}
