// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helpers for the reflect system:
// navigating pointers, extracting and converting values, creating
// default instances, and mutating slices and maps.
package reflectx

import (
	"reflect"
)

// These are a set of consistently named functions for navigating pointer
// types and values within the reflect system.

// NonPointerType returns a non-pointer version of the given type.
func NonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// PointerType returns the pointer version of the given type
// if it is not already a pointer type.
func PointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	if typ.Kind() != reflect.Pointer {
		typ = reflect.PointerTo(typ)
	}
	return typ
}

// NonPointerValue returns a non-pointer version of the given value.
// It returns an invalid value if it reaches a nil pointer.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// PointerValue returns a pointer to the given value if it is not already
// a pointer. Values that cannot be addressed are copied first.
func PointerValue(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.Kind() == reflect.Pointer {
		return v
	}
	if v.CanAddr() {
		return v.Addr()
	}
	pv := reflect.New(v.Type())
	pv.Elem().Set(v)
	return pv
}

// Underlying returns the actual non-pointer underlying value of the
// given value, going through any pointers and interfaces. It returns
// an invalid value if it reaches a nil pointer or interface.
func Underlying(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		v = v.Elem()
	}
	return v
}

// IsNil returns whether the given value is invalid or is a nil value
// of one of the nillable kinds (pointer, interface, map, slice,
// func and chan).
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// AnyIsNil returns whether the given value is nil, including a
// typed nil stored in an interface.
func AnyIsNil(v any) bool {
	return IsNil(reflect.ValueOf(v))
}

// Addressable returns v if it can be addressed, and otherwise an
// addressable copy of it. Edits made to a copy must be written back
// by the caller.
func Addressable(v reflect.Value) (av reflect.Value, copied bool) {
	if !v.IsValid() || v.CanAddr() {
		return v, false
	}
	cp := reflect.New(v.Type()).Elem()
	if v.CanInterface() {
		cp.Set(v)
	} else {
		copyReadOnly(cp, v)
	}
	return cp, true
}
