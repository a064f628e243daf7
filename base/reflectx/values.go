// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	"cogentcore.org/deepinspect/base/errors"
)

// Readable returns a value equivalent to v whose contents can be read
// with [reflect.Value.Interface], also when v was obtained through an
// unexported struct field. Callers must treat the result of a value that
// could not be interfaced as read-only.
func Readable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() {
		return v
	}
	if v.CanAddr() {
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	}
	cp := reflect.New(v.Type()).Elem()
	copyReadOnly(cp, v)
	return cp
}

// Interface returns the value held by v as an any, also when v was
// obtained through an unexported struct field. It returns nil for an
// invalid value.
func Interface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return Readable(v).Interface()
}

// copyReadOnly copies the basic-kind contents of src into the addressable
// dst. Composite kinds that cannot be copied without exported access are
// left at their zero value.
func copyReadOnly(dst, src reflect.Value) {
	w := reflect.NewAt(dst.Type(), unsafe.Pointer(dst.UnsafeAddr())).Elem()
	switch src.Kind() {
	case reflect.Bool:
		w.SetBool(src.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.SetInt(src.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.SetUint(src.Uint())
	case reflect.Float32, reflect.Float64:
		w.SetFloat(src.Float())
	case reflect.Complex64, reflect.Complex128:
		w.SetComplex(src.Complex())
	case reflect.String:
		w.SetString(src.String())
	case reflect.Struct:
		for i := range src.NumField() {
			copyReadOnly(w.Field(i), src.Field(i))
		}
	case reflect.Array:
		for i := range src.Len() {
			copyReadOnly(w.Index(i), src.Index(i))
		}
	}
}

// ToString returns the display string of the given value: the string
// itself for strings, the String method result for [fmt.Stringer]
// values, "nil" for nil values, and the default formatting otherwise.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return x
	case reflect.Value:
		return ToString(Interface(x))
	case fmt.Stringer:
		if AnyIsNil(x) {
			return "nil"
		}
		return x.String()
	case error:
		return x.Error()
	}
	if AnyIsNil(v) {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

// SetFromString sets the given settable value of a basic kind by parsing
// the given string. Pointers are followed, allocating as needed.
func SetFromString(to reflect.Value, s string) error {
	if !to.CanSet() {
		return errors.Errorf("reflectx.SetFromString: value of type %v is not settable", to.Type())
	}
	if ss, ok := to.Addr().Interface().(interface{ SetString(string) error }); ok {
		return ss.SetString(s)
	}
	s = strings.TrimSpace(s)
	switch to.Kind() {
	case reflect.Pointer:
		if to.IsNil() {
			to.Set(reflect.New(to.Type().Elem()))
		}
		return SetFromString(to.Elem(), s)
	case reflect.String:
		to.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return errors.Wrap(err)
		}
		to.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, to.Type().Bits())
		if err != nil {
			return errors.Wrap(err)
		}
		to.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, to.Type().Bits())
		if err != nil {
			return errors.Wrap(err)
		}
		to.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, to.Type().Bits())
		if err != nil {
			return errors.Wrap(err)
		}
		to.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(s, to.Type().Bits())
		if err != nil {
			return errors.Wrap(err)
		}
		to.SetComplex(c)
	default:
		return errors.Errorf("reflectx.SetFromString: cannot set value of type %v from a string", to.Type())
	}
	return nil
}

// Convert returns from converted to the given type. Assignable values
// are used directly, numeric values are converted with an overflow check,
// and strings are parsed with [SetFromString]. The result is addressable.
func Convert(from any, typ reflect.Type) (reflect.Value, error) {
	res := reflect.New(typ).Elem()
	if from == nil {
		return res, nil
	}
	fv := reflect.ValueOf(from)
	if rv, ok := from.(reflect.Value); ok {
		fv = Readable(rv)
	}
	if !fv.IsValid() {
		return res, nil
	}
	ft := fv.Type()
	if ft.AssignableTo(typ) {
		res.Set(fv)
		return res, nil
	}
	if fv.Kind() == reflect.String && typ.Kind() != reflect.String {
		return res, SetFromString(res, fv.String())
	}
	switch {
	case isInt(ft.Kind()) && isInt(typ.Kind()):
		if res.OverflowInt(fv.Int()) {
			return res, errors.Errorf("value %d overflows %v", fv.Int(), typ)
		}
		res.SetInt(fv.Int())
		return res, nil
	case isUint(ft.Kind()) && isUint(typ.Kind()):
		if res.OverflowUint(fv.Uint()) {
			return res, errors.Errorf("value %d overflows %v", fv.Uint(), typ)
		}
		res.SetUint(fv.Uint())
		return res, nil
	case isInt(ft.Kind()) && isUint(typ.Kind()):
		if fv.Int() < 0 || res.OverflowUint(uint64(fv.Int())) {
			return res, errors.Errorf("value %d out of range for %v", fv.Int(), typ)
		}
		res.SetUint(uint64(fv.Int()))
		return res, nil
	case isUint(ft.Kind()) && isInt(typ.Kind()):
		if fv.Uint() > 1<<63-1 || res.OverflowInt(int64(fv.Uint())) {
			return res, errors.Errorf("value %d overflows %v", fv.Uint(), typ)
		}
		res.SetInt(int64(fv.Uint()))
		return res, nil
	case isFloat(ft.Kind()) && isFloat(typ.Kind()):
		if res.OverflowFloat(fv.Float()) {
			return res, errors.Errorf("value %g overflows %v", fv.Float(), typ)
		}
		res.SetFloat(fv.Float())
		return res, nil
	}
	if ft.ConvertibleTo(typ) && ft.Kind() == typ.Kind() {
		res.Set(fv.Convert(typ))
		return res, nil
	}
	return res, errors.Errorf("cannot use value of type %v as %v", ft, typ)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
