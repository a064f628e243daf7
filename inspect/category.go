// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"cogentcore.org/deepinspect/surface"
)

// Category is how a type is drawn by the inspector.
type Category int32

const (
	// Leaf types are drawn as a single primitive field.
	Leaf Category = iota

	// AlwaysExpanded types are drawn inline with their members
	// always visible.
	AlwaysExpanded

	// Foldable types are drawn as a foldout header with their
	// members in a box below it.
	Foldable

	// Collection types are slices and arrays drawn as paged lists.
	Collection

	// Dictionary types are maps drawn as paged key and value rows.
	Dictionary

	// Undrawable types are drawn as a disabled placeholder.
	Undrawable
)

// Class is the result of classifying a type.
type Class struct {
	Category Category

	// Widget is the field kind of a [Leaf].
	Widget surface.Widget

	// Reason is why an [Undrawable] type can not be drawn.
	Reason string
}

// IsComposite returns whether the class has members or elements
// drawn below a header.
func (c Class) IsComposite() bool {
	switch c.Category {
	case AlwaysExpanded, Foldable, Collection, Dictionary:
		return true
	}
	return false
}
