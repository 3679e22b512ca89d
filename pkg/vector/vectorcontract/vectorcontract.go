// Package vectorcontract holds reusable testcase suites
// for random-access iterators and index-checked sequences.
package vectorcontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Config[T any] struct {
	MakeElem func(tb testing.TB) T
}

func (c Config[T]) Configure(t *Config[T]) {
	t.MakeElem = zerokit.Coalesce(c.MakeElem, t.MakeElem)
}

type Option[T any] option.Option[Config[T]]

func (c Config[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, randomElem[T])(tb)
}

func randomElem[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

func (c Config[T]) makeElems(tb testing.TB, n int) []T {
	vs := make([]T, 0, n)
	for range n {
		vs = append(vs, c.makeElem(tb))
	}
	return vs
}
