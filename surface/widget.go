// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

// Widget is the kind of a primitive field.
type Widget int32

const (
	// None is not a field.
	None Widget = iota

	// Bool is a toggle holding a bool.
	Bool

	// Int is a number field holding an int64.
	Int

	// Uint is a number field holding a uint64.
	Uint

	// Float is a number field holding a float64.
	Float

	// Complex is a pair of number fields holding a complex128.
	Complex

	// Text is a single line text field holding a string.
	Text

	// TextArea is a multi-line text area holding a string.
	TextArea

	// TextBuffer is a read-only text area holding a string.
	TextBuffer

	// Enum is a choice field holding an enums.Enum.
	Enum

	// Vector2 is a field holding a math32.Vector2.
	Vector2

	// Vector3 is a field holding a math32.Vector3.
	Vector3

	// Vector4 is a field holding a math32.Vector4.
	Vector4

	// Vector2i is a field holding a math32.Vector2i.
	Vector2i

	// Vector3i is a field holding a math32.Vector3i.
	Vector3i

	// Quat is a field holding a math32.Quat.
	Quat

	// Euler is a field holding euler angles in degrees as a math32.Vector3.
	Euler

	// Color is a color picker holding a math32.Color.
	Color

	// Color32 is a color picker holding a color.RGBA.
	Color32

	// Rect is a field holding a math32.Rect.
	Rect

	// RectInt is a field holding a math32.RectInt.
	RectInt

	// Bounds is a field holding a math32.Bounds.
	Bounds

	// BoundsInt is a field holding a math32.BoundsInt.
	BoundsInt

	// Matrix is a read-only text field holding a math32.Matrix4.
	Matrix

	// Curve is a curve editor holding a math32.Curve.
	Curve

	// Reference is a reference picker holding a host.Object
	// or nil; an edit returns the name of the object to load as a string.
	Reference
)
