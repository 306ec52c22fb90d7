package compare

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// localeVars are consulted in order when no culture is configured.
var localeVars = []string{"LC_ALL", "LC_COLLATE", "LANG"}

// ParseCulture converts a BCP 47 tag or a POSIX locale name
// ("en_US.UTF-8", "de_DE@euro") into a language tag. The empty string,
// "C" and "POSIX" map to language.Und.
func ParseCulture(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid culture %q: %w", name, err)
	}
	return tag, nil
}

// ResolveCulture returns the configured culture when set, otherwise the
// first parseable locale from the environment, otherwise language.Und.
func ResolveCulture(configured string, lookup func(string) (string, bool)) language.Tag {
	if configured != "" {
		if tag, err := ParseCulture(configured); err == nil {
			return tag
		}
	}
	if lookup == nil {
		return language.Und
	}
	for _, key := range localeVars {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}
		if tag, err := ParseCulture(value); err == nil {
			return tag
		}
	}
	return language.Und
}
