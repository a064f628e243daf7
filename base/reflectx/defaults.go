// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"

	"cogentcore.org/deepinspect/base/errors"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` field tags. Fields without a tag, and fields of kinds that
// cannot be parsed from a string, are left alone. Embedded and nested
// structs are processed recursively.
func SetFromDefaultTags(obj any) error {
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct || !v.CanSet() {
		return errors.Errorf("reflectx.SetFromDefaultTags: expected a pointer to a struct, not %T", obj)
	}
	return setFromDefaultTags(v)
}

func setFromDefaultTags(v reflect.Value) error {
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, errors.Errorf("reflectx.SetFromDefaultTags: field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}
