// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/deepinspect/base/reflectx"
)

// FriendlyTypeName returns a user-friendly version of the name of the given type.
// It transforms it into title case, excludes the package, and converts various
// builtin types into more friendly forms (eg: "int" to "Number").
func FriendlyTypeName(typ reflect.Type) string {
	nptyp := reflectx.NonPointerType(typ)
	if nptyp == nil {
		return "None"
	}
	nm := nptyp.Name()

	// if it is named, we use that
	if nm != "" {
		switch nm {
		case "string":
			return "Text"
		case "bool":
			return "Switch"
		case "float32", "float64", "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
			return "Number"
		}
		return TitleName(nm)
	}

	// otherwise, we fall back on Kind
	switch nptyp.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		bnm := FriendlyTypeName(nptyp.Elem())
		if strings.HasSuffix(bnm, "s") {
			return "List of " + bnm
		}
		return bnm + "s"
	case reflect.Func:
		return "Function"
	}
	if nptyp.String() == "interface {}" {
		return "Value"
	}
	return nptyp.String()
}

// ShortTypeName returns the package-qualified name of the given type
// without any leading pointers, for example "scene.Stats" or "[]int".
func ShortTypeName(typ reflect.Type) string {
	if typ == nil {
		return "nil"
	}
	return reflectx.NonPointerType(typ).String()
}

// FriendlySliceLabel returns a user-friendly label for the given slice
// or array value, such as "3 Numbers" or "None" for a nil slice.
func FriendlySliceLabel(v reflect.Value) string {
	npv := reflectx.NonPointerValue(v)
	if !npv.IsValid() || (npv.Kind() == reflect.Slice && npv.IsNil()) {
		return "None"
	}
	return countLabel(npv.Len(), FriendlyTypeName(npv.Type().Elem()))
}

// FriendlyMapLabel returns a user-friendly label for the given map value.
func FriendlyMapLabel(v reflect.Value) string {
	npv := reflectx.NonPointerValue(v)
	if !npv.IsValid() || npv.IsNil() {
		return "None"
	}
	return countLabel(npv.Len(), FriendlyTypeName(npv.Type().Elem()))
}

func countLabel(n int, bnm string) string {
	if strings.HasSuffix(bnm, "s") {
		return fmt.Sprintf("%d lists of %s", n, bnm)
	}
	if n == 1 {
		return fmt.Sprintf("1 %s", bnm)
	}
	return fmt.Sprintf("%d %ss", n, bnm)
}
