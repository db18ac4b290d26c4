/*
Package maybe implements optional values.

Maybe values are used throughout the module wherever a value may be absent,
most notably for attribute values: setting an attribute to Nothing removes
it from an element.

	el.Attr("title", maybe.Just("Home"))    // title="Home"
	el.Attr("title", maybe.Nothing[string]()) // no title attribute

Values may be unpacked with Get, WithDefault or by matching:

	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok is true, Nothing otherwise. It is intended to wrap
// the results of "comma ok" expressions.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// NonZero returns Nothing for the zero value of T, Just(x) otherwise.
// For strings this treats the empty string as absent.
func NonZero[T comparable](x T) Maybe[T] {
	var zero T
	return Of(x, x != zero)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to a present value.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	return x.Map(f)
}

// Filter turns x into Nothing if pred does not hold for its value.
func Filter[T any](pred func(T) bool, x Maybe[T]) Maybe[T] {
	if v, ok := x.Get(); ok && pred(v) {
		return x
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used to switch on a Maybe, see package documentation.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
