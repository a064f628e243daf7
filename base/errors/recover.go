// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "fmt"

// Panic is the base error recorded by [Recover] when the guarded
// function panics. Value is the value passed to panic.
type Panic struct {
	Value any
}

func (p *Panic) Error() string {
	if err, ok := p.Value.(error); ok {
		return "panic: " + err.Error()
	}
	return fmt.Sprintf("panic: %v", p.Value)
}

// Recover calls fn and returns its error. If fn panics, the panic is
// stopped and returned as an [*Error] whose base is a [*Panic].
// Any other error is passed through [Wrap].
func Recover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Base: &Panic{Value: r}}
			if Debug {
				err.(*Error).Stack = Stack(3)
			}
		}
	}()
	return Wrap(fn())
}

// Recover1 is [Recover] for functions that also return a value.
// The zero value is returned when fn panics.
func Recover1[T any](fn func() (T, error)) (v T, err error) {
	err = Recover(func() error {
		var ferr error
		v, ferr = fn()
		return ferr
	})
	return
}

// IsPanic returns whether the given error was produced by [Recover]
// stopping a panic.
func IsPanic(err error) bool {
	var p *Panic
	return As(err, &p)
}
