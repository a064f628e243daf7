// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
)

// New returns a new addressable default value of the given type:
// the zero value for value types, a pointer to a new zero value
// for pointer types, and empty non-nil maps and slices.
// Interface, func and chan types get their zero (nil) value.
func New(typ reflect.Type) reflect.Value {
	v := reflect.New(typ).Elem()
	switch typ.Kind() {
	case reflect.Pointer:
		v.Set(reflect.New(typ.Elem()))
	case reflect.Map:
		v.Set(reflect.MakeMap(typ))
	case reflect.Slice:
		v.Set(reflect.MakeSlice(typ, 0, 0))
	}
	return v
}

// NonNilNew returns a pointer to a non-nil value of the given type,
// allocating every level of pointer indirection.
func NonNilNew(typ reflect.Type) reflect.Value {
	n := reflect.New(typ)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
		n.Elem().Set(reflect.New(typ))
		n = n.Elem()
	}
	return n
}
