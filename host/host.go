// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host defines the object model of the host engine that the
// inspector edits: objects, components and the model that owns them.
package host

import "reflect"

// Object is a named object owned by the host engine, such as a node,
// a component or an asset. Slots of Object types are edited as references.
type Object interface {
	Name() string
	SetName(name string)
}

// Component is an [Object] attached to a node that can be enabled and disabled.
type Component interface {
	Object
	Enabled() bool
	SetEnabled(enabled bool)
}

// Model is the host object model used by the inspector.
type Model interface {

	// Components returns the components attached to the given node, in order.
	Components(node Object) []Component

	// Active returns whether the given node is active.
	Active(node Object) bool

	// SetActive sets whether the given node is active.
	SetActive(node Object, active bool)

	// LoadAsset returns the asset of the given type with the given name.
	LoadAsset(typ reflect.Type, name string) (Object, error)

	// RecordUndo records the state of the given object before the
	// given action changes it.
	RecordUndo(obj any, action string)
}

// IsObjectType returns whether the given type, or a pointer to it,
// implements [Object].
func IsObjectType(typ reflect.Type) bool {
	return implements(typ, objectType)
}

// IsComponentType returns whether the given type, or a pointer to it,
// implements [Component].
func IsComponentType(typ reflect.Type) bool {
	return implements(typ, componentType)
}

var (
	objectType    = reflect.TypeFor[Object]()
	componentType = reflect.TypeFor[Component]()
)

func implements(typ, iface reflect.Type) bool {
	if typ == nil || typ.Kind() == reflect.Interface {
		return false
	}
	if typ.Implements(iface) {
		return true
	}
	return typ.Kind() != reflect.Pointer && reflect.PointerTo(typ).Implements(iface)
}
