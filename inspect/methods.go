// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"reflect"

	"cogentcore.org/deepinspect/base/labels"
)

type argsKey struct {
	typ    reflect.Type
	static bool
	method string
}

// argState is the arguments of a method entered by the user
// and the summary of its last call.
type argState struct {
	Values  []reflect.Value
	Summary string
}

// argsFor returns the argument state of the given method, creating
// default arguments on first access.
func (in *Inspector) argsFor(m *Members, md *MethodDescriptor) *argState {
	k := argsKey{m.Type, m.Static, md.Name}
	as := in.args[k]
	if as != nil {
		return as
	}
	as = &argState{}
	for _, p := range md.Params {
		as.Values = append(as.Values, in.Classifier.NewValue(p.Type))
	}
	in.args[k] = as
	return as
}

// drawMethods draws the methods section of the given members.
func (in *Inspector) drawMethods(m *Members, recv reflect.Value, state *ShowState, stack, depth int) {
	if len(m.Methods) == 0 {
		return
	}
	in.Surface.BeginBox()
	state.MethodsExpanded = in.Surface.Foldout(labels.TitleName(m.Type.Name())+" Methods:", state.MethodsExpanded, depth)
	state.ShowInheritedMethods = in.Surface.Toggle("Base Methods", state.ShowInheritedMethods, depth)
	if state.MethodsExpanded {
		for _, md := range m.Methods {
			if !md.Invocable || (md.Inherited && !state.ShowInheritedMethods) {
				continue
			}
			in.drawMethod(m, md, recv, stack, depth+1)
		}
	}
	in.Surface.EndBox()
}

// drawMethod draws the arguments and call button of a method,
// and calls it when the button is clicked.
func (in *Inspector) drawMethod(m *Members, md *MethodDescriptor, recv reflect.Value, stack, depth int) {
	as := in.argsFor(m, md)
	if len(md.Params) > 0 {
		in.Surface.Label(md.Name+", Parameters:", depth)
		for i, p := range md.Params {
			nv, changed := in.drawSlot(slot{name: p.Name, typ: p.Type, value: as.Values[i], index: i, editable: true}, m.Type, stack+1, depth+1)
			if changed {
				as.Values[i] = nv
			}
		}
	}
	if in.Surface.Button("Call "+md.Name, depth) && !in.Disabled.Active() {
		out, err := Invoke(recv, md, as.Values)
		as.Summary = out.Summary
		in.Logger.Info(out.Summary)
		if err != nil {
			in.diagnose(err)
		}
	}
	if as.Summary != "" {
		in.Surface.Label(as.Summary, depth+1)
	}
}
