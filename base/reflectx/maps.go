// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"cmp"
	"reflect"
	"slices"

	"cogentcore.org/deepinspect/base/errors"
)

// This file contains helpful functions for dealing with maps, in the reflect
// system

// MapKeysSorted returns the keys of the given map in a stable order:
// numeric keys sort numerically, everything else by its display string.
func MapKeysSorted(mp reflect.Value) []reflect.Value {
	keys := mp.MapKeys()
	slices.SortStableFunc(keys, func(a, b reflect.Value) int {
		ra, rb := Readable(a), Readable(b)
		switch {
		case isInt(ra.Kind()) && isInt(rb.Kind()):
			return cmp.Compare(ra.Int(), rb.Int())
		case isUint(ra.Kind()) && isUint(rb.Kind()):
			return cmp.Compare(ra.Uint(), rb.Uint())
		case isFloat(ra.Kind()) && isFloat(rb.Kind()):
			return cmp.Compare(ra.Float(), rb.Float())
		}
		return cmp.Compare(ToString(ra), ToString(rb))
	})
	return keys
}

// MapHas returns whether the given map has the given key.
func MapHas(mp, key reflect.Value) bool {
	return mp.MapIndex(key).IsValid()
}

// MapAdd adds the given key and value to the map. It returns an
// error if the key already exists, leaving the map unchanged.
func MapAdd(mp, key, val reflect.Value) error {
	if mp.IsNil() {
		return errors.Errorf("reflectx.MapAdd: map of type %v is nil", mp.Type())
	}
	if MapHas(mp, key) {
		return errors.Errorf("Key: %v, already existed.", ToString(key))
	}
	mp.SetMapIndex(key, val)
	return nil
}

// MapDelete deletes the given keys from the map.
func MapDelete(mp reflect.Value, keys ...reflect.Value) {
	for _, k := range keys {
		mp.SetMapIndex(k, reflect.Value{})
	}
}

// MapClear deletes all of the entries of the map.
func MapClear(mp reflect.Value) {
	if !mp.IsNil() {
		mp.Clear()
	}
}
