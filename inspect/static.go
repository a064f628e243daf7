// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"reflect"

	"cogentcore.org/deepinspect/base/ordmap"
	"cogentcore.org/deepinspect/surface"
	"cogentcore.org/deepinspect/types"
)

// StaticInspector draws the registered package level variables and
// functions of types looked up by name.
type StaticInspector struct {
	*Inspector

	// Entry is the type name entered by the user.
	Entry string

	// Message is the result of the last lookup shown to the user.
	Message string

	// Types are the inspected types by full name, in the order inspected.
	Types *ordmap.Map[string, *types.Type]
}

// NewStaticInspector returns a new static inspector using the given inspector.
func NewStaticInspector(in *Inspector) *StaticInspector {
	return &StaticInspector{Inspector: in, Types: ordmap.New[string, *types.Type]()}
}

// Inspect adds the type with the given full or short name to the
// inspected types. The error wraps [types.ErrNotFound] if there is
// no such type.
func (si *StaticInspector) Inspect(name string) (*types.Type, error) {
	tp, err := si.Members.Types.ByName(name)
	if err != nil {
		si.Message = types.ErrNotFound.Error()
		if sg := si.Members.Types.Suggest(name); sg != "" {
			si.Message += " Did you mean " + sg + "?"
		}
		return nil, err
	}
	si.Message = ""
	if _, has := si.Types.ValueByKey(tp.Name); !has {
		si.Types.Add(tp.Name, tp)
	}
	return tp, nil
}

// Draw draws the lookup entry and all of the inspected types.
func (si *StaticInspector) Draw() {
	si.Settings.ShowTypes = si.Surface.Toggle("Show Types", si.Settings.ShowTypes, 0)
	si.Settings.QuaternionAsEuler = si.Surface.Toggle("Quaternion As Euler", si.Settings.QuaternionAsEuler, 0)
	if v, ch := si.Surface.Field("Type Name", surface.Text, si.Entry, surface.FieldOptions{}); ch {
		if s, ok := v.(string); ok {
			si.Entry = s
		}
	}
	if si.Surface.Button("Inspect", 0) {
		if _, err := si.Inspect(si.Entry); err != nil {
			si.diagnose(err)
		}
	}
	if si.Message != "" {
		si.Surface.Label(si.Message, 0)
	}
	var removed []string
	for name, tp := range si.Types.All() {
		rt := tp.ReflectType()
		si.Surface.BeginBox()
		state := si.States.Get(reflect.Value{}, rt, "")
		state.Expanded = si.Surface.Foldout(tp.ShortName(), state.Expanded, 0)
		if si.Surface.Button("Remove "+tp.ShortName(), 0) {
			removed = append(removed, name)
		}
		if state.Expanded && rt != nil {
			si.Render(rt, reflect.Value{}, state, rt, 0, 0)
		}
		si.Surface.EndBox()
	}
	for _, name := range removed {
		si.Types.DeleteKey(name)
	}
}
