package diagnostic

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fatih/color"
)

// formatValue formats a value for display, truncating or summarizing large values
func formatValue(v any, maxLen int) string {
	var str string
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		str = fmt.Sprintf("%q", val)
	case error:
		str = val.Error()
	case reflect.Type:
		str = val.String()
	default:
		str = fmt.Sprintf("%#v", v)
	}
	if maxLen <= 0 || len(str) <= maxLen {
		return str
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[array with %d items]", rv.Len())
	case reflect.Map:
		return fmt.Sprintf("{object with %d keys}", rv.Len())
	}
	return str[:maxLen] + "..."
}

type Formatter struct {
	maxLen  int
	noColor bool
}

type Option func(*Formatter)

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		maxLen: 100,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithMaxValueLength sets the display length after which values are
// summarised. Zero disables truncation.
func WithMaxValueLength(n int) Option {
	return func(f *Formatter) {
		f.maxLen = n
	}
}

func WithNoColor(nc bool) Option {
	return func(f *Formatter) {
		f.noColor = nc
	}
}

func (f *Formatter) colorize(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Format renders a failure as a multi-line message.
func (f *Formatter) Format(failure *Failure) string {
	red := f.colorize(color.FgRed)
	bold := f.colorize(color.Bold)
	yellow := f.colorize(color.FgYellow)

	var b strings.Builder
	b.WriteString(bold(failure.Message))
	if failure.Compared {
		fmt.Fprintf(&b, "\n  %s %s", yellow("Expected:"), f.Value(failure.Expected))
		fmt.Fprintf(&b, "\n  %s %s", red("Actual:  "), f.Value(failure.Actual))
	}
	if failure.Err != nil {
		fmt.Fprintf(&b, "\n  %s %s", red("Error:   "), f.Value(failure.Err))
	}
	return b.String()
}

// Value renders a single value with the formatter's truncation rules.
func (f *Formatter) Value(v any) string {
	return formatValue(v, f.maxLen)
}

// List renders items as "[a, b, c]" with each item formatted by Value.
func (f *Formatter) List(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = f.Value(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
