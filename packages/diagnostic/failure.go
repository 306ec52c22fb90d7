package diagnostic

// Failure describes a violated assertion.
type Failure struct {
	Message  string
	Expected any
	Actual   any
	// Compared marks Expected and Actual as meaningful, since nil is a
	// legitimate value for both.
	Compared bool
	Err      error
}

// Error renders the failure without colour or truncation.
func (f *Failure) Error() string {
	return plain.Format(f)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

var plain = NewFormatter(WithNoColor(true), WithMaxValueLength(0))
