package must

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notFoundError struct {
	key string
}

func (e *notFoundError) Error() string { return "not found: " + e.key }

func TestCapture(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, Capture(func() error { return nil }))
	})

	t.Run("returned error", func(t *testing.T) {
		err := Capture(func() error { return io.EOF })
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("panic with value", func(t *testing.T) {
		err := Capture(Do(func() { panic("boom") }))

		var panicErr *PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.Equal(t, "boom", panicErr.Value)
		assert.Equal(t, "panic: boom", err.Error())
		assert.NotEmpty(t, panicErr.Stack)
		assert.Nil(t, panicErr.Unwrap())
	})

	t.Run("panic with error", func(t *testing.T) {
		err := Capture(Do(func() { panic(io.ErrUnexpectedEOF) }))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("panic nil", func(t *testing.T) {
		err := Capture(Do(func() { panic(nil) }))

		var panicNil *runtime.PanicNilError
		assert.ErrorAs(t, err, &panicNil)
	})

	t.Run("nil action", func(t *testing.T) {
		assert.ErrorIs(t, Capture(nil), ErrNilAction)
		assert.ErrorIs(t, Capture(Do(nil)), ErrNilAction)
	})
}

func TestNotThrow(t *testing.T) {
	requirePass(t, func(t TestingT) {
		NotThrow(t, Do(func() {}))
		NotThrow(t, func() error { return nil })
	})

	out := requireFail(t, func(t TestingT) {
		NotThrow(t, func() error { return errors.New("disk full") })
	})
	assert.Contains(t, out, "expected action not to fail")
	assert.Contains(t, out, "disk full")

	out = requireFail(t, func(t TestingT) {
		NotThrow(t, Do(func() { panic("boom") }))
	})
	assert.Contains(t, out, "panic: boom")

	out = requireFail(t, func(t TestingT) {
		NotThrow(t, nil)
	})
	assert.Contains(t, out, "nil action")
}

func TestThrow(t *testing.T) {
	requirePass(t, func(t TestingT) {
		Throw[*notFoundError](t, func() error { return &notFoundError{key: "a"} })
		Throw[*notFoundError](t, func() error { return fmt.Errorf("lookup: %w", &notFoundError{key: "b"}) })
		Throw[*notFoundError](t, Do(func() { panic(&notFoundError{key: "c"}) }))
		Throw[*fs.PathError](t, func() error {
			_, err := os.Open(filepath.Join(os.TempDir(), "must-does-not-exist", "file"))
			return err
		})
		Throw[*PanicError](t, Do(func() { panic("boom") }))
	})

	out := requireFail(t, func(t TestingT) {
		Throw[*notFoundError](t, func() error { return errors.New("other") })
	})
	assert.Contains(t, out, "expected action to fail with *must.notFoundError")
	assert.Contains(t, out, "other")

	out = requireFail(t, func(t TestingT) {
		Throw[*notFoundError](t, func() error { return nil })
	})
	assert.Contains(t, out, "but it succeeded")
}

func TestThrowAny(t *testing.T) {
	requirePass(t, func(t TestingT) {
		ThrowAny(t, func() error { return io.EOF })
		ThrowAny(t, Do(func() { panic("boom") }))
	})

	out := requireFail(t, func(t TestingT) {
		ThrowAny(t, Do(func() {}))
	})
	assert.Contains(t, out, "expected action to fail with error, but it succeeded")
}
