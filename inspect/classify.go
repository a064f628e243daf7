// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"bytes"
	"image/color"
	"reflect"
	"strings"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/base/reflectx"
	"cogentcore.org/deepinspect/enums"
	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/math32"
	"cogentcore.org/deepinspect/surface"
)

var (
	enumType      = reflect.TypeFor[enums.Enum]()
	objectType    = reflect.TypeFor[host.Object]()
	validatorType = reflect.TypeFor[interface{ Validate() error }]()
	errorType     = reflect.TypeFor[error]()
)

// knownTypes are the value types with a dedicated widget.
var knownTypes = map[reflect.Type]surface.Widget{
	reflect.TypeFor[strings.Builder]():  surface.TextBuffer,
	reflect.TypeFor[bytes.Buffer]():     surface.TextBuffer,
	reflect.TypeFor[math32.Vector2]():   surface.Vector2,
	reflect.TypeFor[math32.Vector3]():   surface.Vector3,
	reflect.TypeFor[math32.Vector4]():   surface.Vector4,
	reflect.TypeFor[math32.Vector2i]():  surface.Vector2i,
	reflect.TypeFor[math32.Vector3i]():  surface.Vector3i,
	reflect.TypeFor[math32.Quat]():      surface.Quat,
	reflect.TypeFor[math32.Color]():     surface.Color,
	reflect.TypeFor[color.RGBA]():       surface.Color32,
	reflect.TypeFor[math32.Rect]():      surface.Rect,
	reflect.TypeFor[math32.RectInt]():   surface.RectInt,
	reflect.TypeFor[math32.Bounds]():    surface.Bounds,
	reflect.TypeFor[math32.BoundsInt](): surface.BoundsInt,
	reflect.TypeFor[math32.Matrix4]():   surface.Matrix,
	reflect.TypeFor[math32.Curve]():     surface.Curve,
}

// Classifier decides how each type is drawn. Results are cached per type.
type Classifier struct {
	Settings *Settings

	classes   map[reflect.Type]Class
	creatable map[reflect.Type]bool
}

// NewClassifier returns a new classifier using the given settings.
func NewClassifier(s *Settings) *Classifier {
	return &Classifier{Settings: s, classes: map[reflect.Type]Class{}, creatable: map[reflect.Type]bool{}}
}

// Classify returns the class of the given type.
func (c *Classifier) Classify(typ reflect.Type) Class {
	if typ == nil {
		return Class{Category: Undrawable, Reason: "null"}
	}
	if cl, ok := c.classes[typ]; ok {
		return cl
	}
	cl := c.classify(typ)
	c.classes[typ] = cl
	return cl
}

func leaf(w surface.Widget) Class {
	return Class{Category: Leaf, Widget: w}
}

func (c *Classifier) classify(typ reflect.Type) Class {
	switch typ.Kind() {
	case reflect.UnsafePointer, reflect.Uintptr:
		return Class{Category: Undrawable, Reason: "pointer is not drawable"}
	case reflect.Pointer:
		if typ.Elem().Kind() == reflect.Pointer {
			return Class{Category: Undrawable, Reason: "pointer is not drawable"}
		}
		if typ.Implements(objectType) {
			return leaf(surface.Reference)
		}
		return c.Classify(typ.Elem())
	}
	if typ.Implements(enumType) {
		return leaf(surface.Enum)
	}
	switch typ.Kind() {
	case reflect.Bool:
		return leaf(surface.Bool)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return leaf(surface.Int)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return leaf(surface.Uint)
	case reflect.Float32, reflect.Float64:
		return leaf(surface.Float)
	case reflect.Complex64, reflect.Complex128:
		return leaf(surface.Complex)
	case reflect.String:
		return leaf(surface.Text)
	}
	if w, ok := knownTypes[typ]; ok {
		return leaf(w)
	}
	switch typ.Kind() {
	case reflect.Map:
		return Class{Category: Dictionary}
	case reflect.Slice, reflect.Array:
		return Class{Category: Collection}
	case reflect.Interface:
		if typ.Implements(objectType) {
			return leaf(surface.Reference)
		}
		return Class{Category: Undrawable, Reason: "interface is not drawable"}
	case reflect.Func, reflect.Chan:
		return Class{Category: Undrawable, Reason: typ.Kind().String() + " is not drawable"}
	}
	if typ.Kind() == reflect.Struct && c.Settings.IsFrameworkPackage(typ.PkgPath()) &&
		!strings.Contains(typ.Name(), "GUI") && !host.IsComponentType(typ) && !host.IsObjectType(typ) {
		return Class{Category: AlwaysExpanded}
	}
	return Class{Category: Foldable}
}

// CanCreate returns whether a default instance of the given type can be
// created without user input: to fill a nil slot, to add an element to
// a list, or as a method argument.
func (c *Classifier) CanCreate(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	if ok, has := c.creatable[typ]; has {
		return ok
	}
	ok := c.canCreate(typ)
	c.creatable[typ] = ok
	return ok
}

func (c *Classifier) canCreate(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Uintptr:
		return false
	case reflect.Pointer:
		if typ.Elem().Kind() == reflect.Pointer || typ.Implements(objectType) {
			return false
		}
		return c.CanCreate(typ.Elem())
	}
	if host.IsObjectType(typ) {
		return false
	}
	if typ.Kind() == reflect.Struct && reflect.PointerTo(typ).Implements(validatorType) {
		v := reflect.New(typ)
		err := errors.Recover(func() error {
			return v.Interface().(interface{ Validate() error }).Validate()
		})
		return err == nil
	}
	return true
}

// NewValue returns a new addressable default value of the given type:
// the first value of enums, values with `default:` tags applied for
// structs, and the zero value otherwise, allocating pointers, maps
// and slices.
func (c *Classifier) NewValue(typ reflect.Type) reflect.Value {
	v := reflectx.New(typ)
	if typ.Implements(enumType) {
		if f := enums.First(reflectx.Interface(v).(enums.Enum)); f != nil {
			if fv := reflect.ValueOf(f); fv.Type().AssignableTo(typ) {
				v.Set(fv)
			}
		}
		return v
	}
	if reflectx.NonPointerType(typ).Kind() == reflect.Struct {
		errors.Log(reflectx.SetFromDefaultTags(reflectx.PointerValue(v).Interface()))
	}
	return v
}
