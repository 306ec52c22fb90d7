package must

import "reflect"

// Subject wraps a value for fluent assertions.
type Subject[T any] struct {
	t     TestingT
	value T
}

func That[T any](t TestingT, value T) *Subject[T] {
	return &Subject[T]{t: t, value: value}
}

func (s *Subject[T]) Be(expected T) *Subject[T] {
	s.t.Helper()
	Be(s.t, s.value, expected)
	return s
}

func (s *Subject[T]) BeNull() *Subject[T] {
	s.t.Helper()
	BeNull(s.t, s.value)
	return s
}

func (s *Subject[T]) NotBeNull() *Subject[T] {
	s.t.Helper()
	NotBeNull(s.t, s.value)
	return s
}

// Text wraps a string.
type Text struct {
	t     TestingT
	value string
}

func String(t TestingT, value string) *Text {
	return &Text{t: t, value: value}
}

func (s *Text) Be(expected string) *Text {
	s.t.Helper()
	Be(s.t, s.value, expected)
	return s
}

func (s *Text) BeLike(expected string, mode ...Comparison) *Text {
	s.t.Helper()
	BeLike(s.t, s.value, expected, mode...)
	return s
}

func (s *Text) NotBeLike(expected string, mode ...Comparison) *Text {
	s.t.Helper()
	NotBeLike(s.t, s.value, expected, mode...)
	return s
}

// Seq wraps a slice.
type Seq[T any] struct {
	t     TestingT
	items []T
}

func Slice[T any](t TestingT, items []T) *Seq[T] {
	return &Seq[T]{t: t, items: items}
}

func (s *Seq[T]) Contain(expected ...T) *Seq[T] {
	s.t.Helper()
	Contain(s.t, s.items, expected...)
	return s
}

func (s *Seq[T]) NotContain(excluded ...T) *Seq[T] {
	s.t.Helper()
	NotContain(s.t, s.items, excluded...)
	return s
}

// Truth wraps a bool.
type Truth struct {
	t     TestingT
	value bool
}

func Bool(t TestingT, value bool) *Truth {
	return &Truth{t: t, value: value}
}

func (s *Truth) BeTrue() {
	s.t.Helper()
	BeTrue(s.t, s.value)
}

func (s *Truth) BeFalse() {
	s.t.Helper()
	BeFalse(s.t, s.value)
}

// Act wraps an action. Use Throw for a specific error kind.
type Act struct {
	t      TestingT
	action func() error
}

func Action(t TestingT, action func() error) *Act {
	return &Act{t: t, action: action}
}

func (a *Act) NotThrow() {
	a.t.Helper()
	NotThrow(a.t, a.action)
}

func (a *Act) Throw() {
	a.t.Helper()
	ThrowAny(a.t, a.action)
}

// TypeSubject wraps a type descriptor.
type TypeSubject struct {
	t   TestingT
	typ reflect.Type
}

func Type(t TestingT, typ reflect.Type) *TypeSubject {
	return &TypeSubject{t: t, typ: typ}
}

// Be asserts strict type identity with other.
func (s *TypeSubject) Be(other reflect.Type) *TypeSubject {
	s.t.Helper()
	if s.typ != other {
		report(s.t, &Failure{Message: "expected identical types", Expected: other, Actual: s.typ, Compared: true})
	}
	return s
}
