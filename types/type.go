// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"

	"cogentcore.org/deepinspect/base/ordmap"
	"github.com/iancoleman/strcase"
)

// Type represents a type together with its package level
// variables and functions ("statics").
type Type struct {
	// Name is the fully package-path-qualified name of the type (eg: cogentcore.org/deepinspect/host/scene.Stats)
	Name string

	// IDName is the short, package-unqualified, kebab-case name of the type that is suitable
	// for use in an ID (eg: stats)
	IDName string

	// Doc has all of the comment documentation
	// info as one string.
	Doc string

	// Vars are the static variables of the type, as pointers
	// to the variables, keyed by name in declaration order.
	Vars *ordmap.Map[string, any]

	// Funcs are the static functions of the type, keyed by name in declaration order.
	Funcs *ordmap.Map[string, *Func]

	// Instance is an optional instance of the type, as a pointer
	// to a zero value.
	Instance any

	// ID is the unique type ID number
	ID uint64
}

// NewType returns a new [Type] for the type of the given instance,
// which must be a pointer to a value of that type.
func NewType(instance any) *Type {
	rt := reflect.TypeOf(instance).Elem()
	tp := &Type{Name: TypeName(rt), Instance: instance}
	tp.IDName = strcase.ToKebab(rt.Name())
	return tp
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short name of the type (package.Type)
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, "/")
	return tp.Name[li+1:]
}

func (tp *Type) Label() string {
	return tp.ShortName()
}

// ReflectType returns the [reflect.Type] for this type, using the Instance
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	return reflect.TypeOf(tp.Instance).Elem()
}

// AddVar registers a static variable, given as a pointer, and returns the type.
func (tp *Type) AddVar(name string, ptr any) *Type {
	if tp.Vars == nil {
		tp.Vars = ordmap.New[string, any]()
	}
	tp.Vars.Add(name, ptr)
	return tp
}

// AddFunc registers a static function and returns the type.
// Argument names are optional and default to the parameter type names.
func (tp *Type) AddFunc(name string, fun any, args ...string) *Type {
	if tp.Funcs == nil {
		tp.Funcs = ordmap.New[string, *Func]()
	}
	tp.Funcs.Add(name, &Func{Name: name, Fun: fun, Args: args})
	return tp
}

// NumStatics returns the number of registered variables and functions.
func (tp *Type) NumStatics() int {
	return tp.Vars.Len() + tp.Funcs.Len()
}

// TypeName returns the long, full package-path qualified type name.
// This is guaranteed to be unique and used for the Types registry.
func TypeName(typ reflect.Type) string {
	return typ.PkgPath() + "." + typ.Name()
}
