// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the immediate-mode widget surface that the
// inspector draws on. Every call draws one widget for the current frame
// and reports any user interaction with it since the last frame.
package surface

import "reflect"

// Surface is an immediate-mode widget surface.
type Surface interface {

	// Field draws a labeled primitive field of the given widget kind
	// showing value, and returns the new value and whether the user
	// changed it. The value types for each widget are documented on [Widget].
	Field(label string, w Widget, value any, opts FieldOptions) (any, bool)

	// Foldout draws a foldout header and returns its new open state.
	Foldout(label string, open bool, indent int) bool

	// Toggle draws a labeled toggle and returns its new state.
	Toggle(label string, on bool, indent int) bool

	// Button draws a button and returns whether it was clicked.
	Button(label string, indent int) bool

	// Label draws a text label.
	Label(text string, indent int)

	// Confirm asks the user to confirm the given message and
	// returns whether they chose ok.
	Confirm(title, message, ok, cancel string) bool

	// BeginBox starts a visual group of widgets, ended by EndBox.
	BeginBox()
	EndBox()

	// SetDisabled sets whether subsequent widgets are drawn disabled.
	// Disabled widgets never report changes.
	SetDisabled(disabled bool)
}

// FieldOptions are the options for [Surface.Field].
type FieldOptions struct {

	// Indent is the nesting level of the field.
	Indent int

	// ReadOnly fields are drawn but can not be edited,
	// independent of the disabled state.
	ReadOnly bool

	// Type is the declared type of the slot, used by
	// reference pickers and for display.
	Type reflect.Type

	// Choices are the names of the values for [Enum] fields.
	Choices []string
}
