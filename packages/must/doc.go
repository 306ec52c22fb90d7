// Package must provides fluent assertion helpers on top of testify's
// require package.
//
// Every helper takes the test handle first and halts the test through
// require when its condition does not hold:
//
//	must.Be(t, got, 42)
//	must.BeLike(t, "FOO", "foo")
//	must.Slice(t, names).Contain("alice", "bob")
//	must.Throw[*fs.PathError](t, func() error { _, err := os.Open("nope"); return err })
//
// The constructors That, String, Slice, Bool, Action and Type wrap a value
// so assertions read left to right. Go methods cannot declare type
// parameters, so the kind-parameterised checks (BeA, TypeBeA, Match,
// Throw) are functions only.
//
// Go has no inheritance. "Assignable" therefore means identical, or
// implementing an interface, or convertible under Go's assignability rules;
// embedding a struct does not make the outer type assignable to the
// embedded one.
//
// Settings (default comparison mode, colour, snapshot options) are read
// once from the nearest .must.yaml / .mustrc.json and MUST_* environment
// variables, see package config.
package must
