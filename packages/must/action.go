package must

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

// ErrNilAction is captured when an assertion is handed a nil action.
var ErrNilAction = errors.New("nil action")

// PanicError is the captured form of a panic raised by an action.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Capture runs action and returns the error it returned or the panic it
// raised. runtime.Goexit is not intercepted.
func Capture(action func() error) (err error) {
	if action == nil {
		return ErrNilAction
	}
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return action()
}

// Do adapts a function without a result for NotThrow, Throw and Action.
func Do(fn func()) func() error {
	return func() error {
		if fn == nil {
			return ErrNilAction
		}
		fn()
		return nil
	}
}

// NotThrow asserts that action neither returns an error nor panics.
func NotThrow(t TestingT, action func() error) {
	t.Helper()
	if err := Capture(action); err != nil {
		report(t, &Failure{Message: "expected action not to fail", Err: err})
	}
}

// Throw asserts that action fails with an error whose chain holds an E,
// as decided by errors.As. Panics count as failures; a panic with an error
// value is matched against that value.
func Throw[E error](t TestingT, action func() error) {
	t.Helper()
	kind := reflect.TypeOf((*E)(nil)).Elem()
	err := Capture(action)
	if err == nil {
		report(t, &Failure{Message: fmt.Sprintf("expected action to fail with %v, but it succeeded", kind)})
		return
	}
	var target E
	if !errors.As(err, &target) {
		report(t, &Failure{Message: fmt.Sprintf("expected action to fail with %v", kind), Err: err})
	}
}

// ThrowAny asserts that action fails with any error.
func ThrowAny(t TestingT, action func() error) {
	t.Helper()
	Throw[error](t, action)
}
