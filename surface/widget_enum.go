// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "cogentcore.org/deepinspect/enums"

var _WidgetValues = []Widget{None, Bool, Int, Uint, Float, Complex, Text, TextArea, TextBuffer, Enum, Vector2, Vector3, Vector4, Vector2i, Vector3i, Quat, Euler, Color, Color32, Rect, RectInt, Bounds, BoundsInt, Matrix, Curve, Reference}

var _WidgetNames = map[Widget]string{None: `None`, Bool: `Bool`, Int: `Int`, Uint: `Uint`, Float: `Float`, Complex: `Complex`, Text: `Text`, TextArea: `TextArea`, TextBuffer: `TextBuffer`, Enum: `Enum`, Vector2: `Vector2`, Vector3: `Vector3`, Vector4: `Vector4`, Vector2i: `Vector2i`, Vector3i: `Vector3i`, Quat: `Quat`, Euler: `Euler`, Color: `Color`, Color32: `Color32`, Rect: `Rect`, RectInt: `RectInt`, Bounds: `Bounds`, BoundsInt: `BoundsInt`, Matrix: `Matrix`, Curve: `Curve`, Reference: `Reference`}

var _WidgetDescs = map[Widget]string{None: `None is not a field.`, Bool: `Bool is a toggle holding a bool.`, Int: `Int is a number field holding an int64.`, Uint: `Uint is a number field holding a uint64.`, Float: `Float is a number field holding a float64.`, Complex: `Complex is a pair of number fields holding a complex128.`, Text: `Text is a single line text field holding a string.`, TextArea: `TextArea is a multi-line text area holding a string.`, TextBuffer: `TextBuffer is a read-only text area holding a string.`, Enum: `Enum is a choice field holding an enums.Enum.`, Vector2: `Vector2 is a field holding a math32.Vector2.`, Vector3: `Vector3 is a field holding a math32.Vector3.`, Vector4: `Vector4 is a field holding a math32.Vector4.`, Vector2i: `Vector2i is a field holding a math32.Vector2i.`, Vector3i: `Vector3i is a field holding a math32.Vector3i.`, Quat: `Quat is a field holding a math32.Quat.`, Euler: `Euler is a field holding euler angles in degrees as a math32.Vector3.`, Color: `Color is a color picker holding a math32.Color.`, Color32: `Color32 is a color picker holding a color.RGBA.`, Rect: `Rect is a field holding a math32.Rect.`, RectInt: `RectInt is a field holding a math32.RectInt.`, Bounds: `Bounds is a field holding a math32.Bounds.`, BoundsInt: `BoundsInt is a field holding a math32.BoundsInt.`, Matrix: `Matrix is a read-only text field holding a math32.Matrix4.`, Curve: `Curve is a curve editor holding a math32.Curve.`, Reference: `Reference is a reference picker holding a host.Object or nil; an edit returns the name of the object to load as a string.`}

// String returns the string representation of this Widget value.
func (i Widget) String() string { return enums.String(i, _WidgetNames) }

// SetString sets the Widget value from its string representation,
// and returns an error if the string is invalid.
func (i *Widget) SetString(s string) error { return enums.SetString(i, s, _WidgetNames, "Widget") }

// Int64 returns the Widget value as an int64.
func (i Widget) Int64() int64 { return int64(i) }

// SetInt64 sets the Widget value from an int64.
func (i *Widget) SetInt64(in int64) { *i = Widget(in) }

// Desc returns the description of the Widget value.
func (i Widget) Desc() string { return enums.Desc(i, _WidgetDescs) }

// WidgetValues returns all possible values for the type Widget.
func WidgetValues() []Widget { return _WidgetValues }

// Values returns all possible values for the type Widget.
func (i Widget) Values() []enums.Enum { return enums.Values(_WidgetValues) }

// IsText returns whether the widget holds a string.
func (i Widget) IsText() bool { return i == Text || i == TextArea || i == TextBuffer }
