package vectorcontract

import (
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/ds"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Sequence checks the index-validating operations of a ds.Sequence.
// mk must return an empty sequence.
func Sequence[T any](mk contract.Make[ds.Sequence[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	seq := let.Var(s, func(t *testcase.T) ds.Sequence[T] {
		return mk(t)
	})
	index := let.Var[int](s, nil)

	values := let.Var(s, func(t *testcase.T) []T {
		return c.makeElems(t, t.Random.IntBetween(3, 7))
	})
	givenTheSequenceHasValues := func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			seq.Get(t).Append(values.Get(t)...)
		})
	}
	existingIndex := func(t *testcase.T) int {
		return t.Random.IntN(len(values.Get(t)))
	}
	outOfBoundIndex := func(t *testcase.T) int {
		if t.Random.Bool() {
			return -1 * t.Random.IntBetween(1, 42)
		}
		return len(values.Get(t)) + t.Random.IntBetween(0, 42)
	}

	s.Describe("#Lookup", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return seq.Get(t).Lookup(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("the requested value is reported to be missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			givenTheSequenceHasValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, existingIndex)

				s.Then("the value is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, outOfBoundIndex)

				s.Then("the requested value is reported to be missing", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it reports that it was not possible", func(t *testcase.T) {
				assert.False(t, act(t))
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			givenTheSequenceHasValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, existingIndex)

				s.Then("only the value under the index is replaced", func(t *testcase.T) {
					assert.True(t, act(t))

					exp := slices.Clone(values.Get(t))
					exp[index.Get(t)] = value.Get(t)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, outOfBoundIndex)

				s.Then("failure is reported and nothing changes", func(t *testcase.T) {
					assert.False(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		newValues := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, t.Random.IntBetween(1, 5))
		})
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).Insert(index.Get(t), newValues.Get(t)...)
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the values are inserted", func(t *testcase.T) {
					assert.True(t, act(t))
					assert.Equal(t, newValues.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("failure is reported", func(t *testcase.T) {
					assert.False(t, act(t))
				})
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			givenTheSequenceHasValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, existingIndex)

				s.Then("new values are placed from the index, the rest is shifted after them", func(t *testcase.T) {
					assert.True(t, act(t))

					exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), newValues.Get(t)...)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("new values are appended", func(t *testcase.T) {
					assert.True(t, act(t))

					exp := append(slices.Clone(values.Get(t)), newValues.Get(t)...)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					if t.Random.Bool() {
						return -1 * t.Random.IntBetween(1, 42)
					}
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("failure is reported and nothing changes", func(t *testcase.T) {
					assert.False(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#Delete", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).Delete(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it reports that it was not possible", func(t *testcase.T) {
				assert.False(t, act(t))
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			givenTheSequenceHasValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, existingIndex)

				s.Then("only the indexed value is removed, order is kept", func(t *testcase.T) {
					assert.True(t, act(t))

					exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, outOfBoundIndex)

				s.Then("failure is reported and nothing changes", func(t *testcase.T) {
					assert.False(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", reflectkit.TypeOf[T]().String()))
}
