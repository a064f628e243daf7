// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"

	"cogentcore.org/deepinspect/base/errors"
)

// This file contains helpful functions for dealing with slices, in the reflect
// system. Slice operations return the new slice value, which the caller
// must store back into its slot since the backing array may change.

// SliceElementType returns the type of the elements of the given slice
// or array type, going through any pointers.
func SliceElementType(typ reflect.Type) reflect.Type {
	return NonPointerType(typ).Elem()
}

// SliceAppend returns the given slice with the given element appended.
func SliceAppend(sl reflect.Value, el reflect.Value) (reflect.Value, error) {
	if sl.Kind() != reflect.Slice {
		return sl, errors.Errorf("reflectx.SliceAppend: cannot append to %v", sl.Type())
	}
	et := sl.Type().Elem()
	if !el.Type().AssignableTo(et) {
		return sl, errors.Errorf("reflectx.SliceAppend: cannot append %v to %v", el.Type(), sl.Type())
	}
	return reflect.Append(sl, el), nil
}

// SliceResize returns the given slice resized to n elements. New
// elements are created with fill, or are zero values if fill is nil.
func SliceResize(sl reflect.Value, n int, fill func() reflect.Value) (reflect.Value, error) {
	if sl.Kind() != reflect.Slice {
		return sl, errors.Errorf("reflectx.SliceResize: cannot resize %v", sl.Type())
	}
	if n < 0 {
		n = 0
	}
	cur := sl.Len()
	if n <= cur {
		return sl.Slice(0, n), nil
	}
	ns := reflect.MakeSlice(sl.Type(), n, n)
	reflect.Copy(ns, sl)
	if fill != nil {
		for i := cur; i < n; i++ {
			ns.Index(i).Set(fill())
		}
	}
	return ns, nil
}

// SliceDeleteAt returns the given slice with the element at the given
// index removed.
func SliceDeleteAt(sl reflect.Value, idx int) (reflect.Value, error) {
	if sl.Kind() != reflect.Slice {
		return sl, errors.Errorf("reflectx.SliceDeleteAt: cannot delete from %v", sl.Type())
	}
	if idx < 0 || idx >= sl.Len() {
		return sl, errors.Errorf("reflectx.SliceDeleteAt: index %d out of range [0:%d]", idx, sl.Len())
	}
	ns := reflect.MakeSlice(sl.Type(), 0, sl.Len()-1)
	ns = reflect.AppendSlice(ns, sl.Slice(0, idx))
	ns = reflect.AppendSlice(ns, sl.Slice(idx+1, sl.Len()))
	return ns, nil
}
