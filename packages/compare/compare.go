// Package compare implements the string comparison modes used by the
// must.BeLike family of assertions.
package compare

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Mode selects how two strings are compared.
type Mode int

const (
	CurrentCulture Mode = iota
	CurrentCultureIgnoreCase
	InvariantCulture
	InvariantCultureIgnoreCase
	Ordinal
	OrdinalIgnoreCase
)

// Default is the mode used when a caller passes none.
const Default = OrdinalIgnoreCase

// ErrUnknownMode is returned for names or values outside the known modes.
var ErrUnknownMode = errors.New("unknown comparison mode")

var modeNames = map[Mode]string{
	CurrentCulture:             "CurrentCulture",
	CurrentCultureIgnoreCase:   "CurrentCultureIgnoreCase",
	InvariantCulture:           "InvariantCulture",
	InvariantCultureIgnoreCase: "InvariantCultureIgnoreCase",
	Ordinal:                    "Ordinal",
	OrdinalIgnoreCase:          "OrdinalIgnoreCase",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// IgnoresCase reports whether m treats upper and lower case as equal.
func (m Mode) IgnoresCase() bool {
	return m == CurrentCultureIgnoreCase || m == InvariantCultureIgnoreCase || m == OrdinalIgnoreCase
}

// ParseMode parses a mode name case-insensitively. Separators such as
// "-" and "_" are ignored, so "ordinal-ignore-case" is accepted.
func ParseMode(name string) (Mode, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(name))
	for mode, modeName := range modeNames {
		if strings.EqualFold(normalized, modeName) {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Equal compares a and b under mode. culture is only consulted by the
// CurrentCulture modes; the invariant modes always collate with language.Und.
func Equal(a, b string, mode Mode, culture language.Tag) (bool, error) {
	switch mode {
	case Ordinal:
		return a == b, nil
	case OrdinalIgnoreCase:
		return strings.EqualFold(a, b), nil
	case CurrentCulture, CurrentCultureIgnoreCase:
		return collated(a, b, culture, mode.IgnoresCase()), nil
	case InvariantCulture, InvariantCultureIgnoreCase:
		return collated(a, b, language.Und, mode.IgnoresCase()), nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// collated builds a fresh collator per call; collate.Collator is not safe
// for concurrent use.
func collated(a, b string, tag language.Tag, ignoreCase bool) bool {
	var opts []collate.Option
	if ignoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	return collate.New(tag, opts...).CompareString(a, b) == 0
}
