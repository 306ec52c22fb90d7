package must

import (
	"github.com/abdul-hamid-achik/must/packages/diagnostic"
	"github.com/stretchr/testify/require"
)

// TestingT is the part of *testing.T the helpers need.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
	Helper()
}

// Failure is the diagnostic attached to a failed assertion.
type Failure = diagnostic.Failure

// report fails the test with the rendered failure.
func report(t TestingT, failure *Failure) {
	t.Helper()
	require.Fail(t, formatter().Format(failure))
}

// Fail always fails the test.
func Fail(t TestingT, message string) {
	t.Helper()
	report(t, &Failure{Message: "assert failed with " + message})
}

// Be asserts that actual equals expected.
func Be[T any](t TestingT, actual, expected T) {
	t.Helper()
	require.Equal(t, expected, actual)
}

// NotBeNull asserts that actual is not nil. Typed nil pointers, maps,
// slices, channels and funcs count as nil.
func NotBeNull(t TestingT, actual any) {
	t.Helper()
	require.NotNil(t, actual)
}

// BeNull asserts that actual is nil.
func BeNull(t TestingT, actual any) {
	t.Helper()
	require.Nil(t, actual)
}

func BeTrue(t TestingT, actual bool) {
	t.Helper()
	require.True(t, actual)
}

func BeFalse(t TestingT, actual bool) {
	t.Helper()
	require.False(t, actual)
}
