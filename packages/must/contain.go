package must

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Contain asserts that every expected item is present in actual. Order and
// duplicates are ignored.
func Contain[T any](t TestingT, actual []T, expected ...T) {
	t.Helper()
	missing := filter(expected, func(item T) bool { return !member(actual, item) })
	if len(missing) == 0 {
		return
	}
	f := formatter()
	report(t, &Failure{
		Message: fmt.Sprintf("expected %s to contain %s; missing %s",
			f.List(boxed(actual)), f.List(boxed(expected)), f.List(missing)),
	})
}

// NotContain asserts that none of the excluded items is present in actual.
func NotContain[T any](t TestingT, actual []T, excluded ...T) {
	t.Helper()
	found := filter(excluded, func(item T) bool { return member(actual, item) })
	if len(found) == 0 {
		return
	}
	f := formatter()
	report(t, &Failure{
		Message: fmt.Sprintf("expected %s not to contain %s; found %s",
			f.List(boxed(actual)), f.List(boxed(excluded)), f.List(found)),
	})
}

func member[T any](items []T, item T) bool {
	for _, candidate := range items {
		if assert.ObjectsAreEqual(candidate, item) {
			return true
		}
	}
	return false
}

func filter[T any](items []T, keep func(T) bool) []any {
	var out []any
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func boxed[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
