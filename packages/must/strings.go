package must

import (
	"fmt"

	"github.com/abdul-hamid-achik/must/packages/compare"
)

// Comparison selects how BeLike and NotBeLike compare strings.
type Comparison = compare.Mode

const (
	CurrentCulture             = compare.CurrentCulture
	CurrentCultureIgnoreCase   = compare.CurrentCultureIgnoreCase
	InvariantCulture           = compare.InvariantCulture
	InvariantCultureIgnoreCase = compare.InvariantCultureIgnoreCase
	Ordinal                    = compare.Ordinal
	OrdinalIgnoreCase          = compare.OrdinalIgnoreCase
)

// BeLike asserts that actual equals expected under the given comparison
// mode, by default case-insensitively (see config for changing the default).
func BeLike(t TestingT, actual, expected string, mode ...Comparison) {
	t.Helper()
	likeness(t, actual, expected, true, mode)
}

// NotBeLike asserts that actual differs from expected under the given
// comparison mode.
func NotBeLike(t TestingT, actual, expected string, mode ...Comparison) {
	t.Helper()
	likeness(t, actual, expected, false, mode)
}

func likeness(t TestingT, actual, expected string, want bool, modes []Comparison) {
	t.Helper()
	mode := defaultComparison()
	if len(modes) > 0 {
		mode = modes[0]
	}

	equal, err := compare.Equal(actual, expected, mode, culture())
	if err != nil {
		report(t, &Failure{Message: err.Error()})
		return
	}
	if equal == want {
		return
	}

	message := fmt.Sprintf("expected strings to be alike (%v)", mode)
	if !want {
		message = fmt.Sprintf("expected strings not to be alike (%v)", mode)
	}
	report(t, &Failure{Message: message, Expected: expected, Actual: actual, Compared: true})
}
