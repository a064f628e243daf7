// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "reflect"

// Func represents a registered static function.
type Func struct {
	// Name is the name of the function (eg: Spawn)
	Name string

	// Doc has all of the comment documentation
	// info as one string.
	Doc string

	// Args are the names of the arguments, which may be fewer
	// than the number of parameters.
	Args []string

	// Fun is the function value itself.
	Fun any
}

// Value returns the function as a [reflect.Value].
func (f *Func) Value() reflect.Value {
	return reflect.ValueOf(f.Fun)
}

// ArgName returns the name of the argument at the given index,
// which is the registered name if any and the parameter type otherwise.
func (f *Func) ArgName(i int) string {
	if i < len(f.Args) && f.Args[i] != "" {
		return f.Args[i]
	}
	return f.Value().Type().In(i).String()
}
