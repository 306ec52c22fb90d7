package must

import (
	"fmt"
	"reflect"
)

// Assignable reports whether a value of type typ can be used where a T is
// expected: typ is T, implements interface T, or is assignable to T.
func Assignable[T any](typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	target := reflect.TypeOf((*T)(nil)).Elem()
	if typ == target {
		return true
	}
	if target.Kind() == reflect.Interface {
		return typ.Implements(target)
	}
	return typ.AssignableTo(target)
}

// TypeBeA asserts that typ is assignable to T.
func TypeBeA[T any](t TestingT, typ reflect.Type) {
	t.Helper()
	if Assignable[T](typ) {
		return
	}
	target := reflect.TypeOf((*T)(nil)).Elem()
	report(t, &Failure{
		Message:  fmt.Sprintf("expected a type assignable to %v", target),
		Expected: target,
		Actual:   typ,
		Compared: true,
	})
}

// BeA asserts that the dynamic type of obj is assignable to T. Pass type
// descriptors to TypeBeA instead.
func BeA[T any](t TestingT, obj any) {
	t.Helper()
	if obj == nil {
		report(t, &Failure{Message: fmt.Sprintf("expected an instance of %v, got <nil>", reflect.TypeOf((*T)(nil)).Elem())})
		return
	}
	TypeBeA[T](t, reflect.TypeOf(obj))
}

// Match asserts that typ is exactly T. Implementing or converting to T is
// not enough.
func Match[T any](t TestingT, typ reflect.Type) {
	t.Helper()
	target := reflect.TypeOf((*T)(nil)).Elem()
	if typ == target {
		return
	}
	report(t, &Failure{
		Message:  fmt.Sprintf("expected type %v", target),
		Expected: target,
		Actual:   typ,
		Compared: true,
	})
}
