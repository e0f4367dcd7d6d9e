// Package lateinit provides a value that must be assigned before it is read.
package lateinit

import "errors"

// ErrUnset is returned by Get when the value has not been assigned.
var ErrUnset = errors.New("value required before use")

type unsetError struct{ msg string }

func (e unsetError) Error() string { return e.msg }
func (e unsetError) Unwrap() error { return ErrUnset }

// Value holds a T that is unusable until Set is called.
type Value[T any] struct {
	v   T
	set bool
	msg string
}

// New returns an unset value whose Get reports msg until it is assigned.
func New[T any](msg string) Value[T] {
	return Value[T]{msg: msg}
}

func (v *Value[T]) Set(val T) {
	v.v = val
	v.set = true
}

func (v *Value[T]) IsSet() bool { return v.set }

func (v *Value[T]) Get() (T, error) {
	if !v.set {
		var zero T
		if v.msg == "" {
			return zero, ErrUnset
		}
		return zero, unsetError{msg: v.msg}
	}
	return v.v, nil
}

// MustGet panics when the value is unset. Use it where an unset value is a wiring bug.
func (v *Value[T]) MustGet() T {
	val, err := v.Get()
	if err != nil {
		panic(err)
	}
	return val
}
