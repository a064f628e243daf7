// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"reflect"

	"cogentcore.org/deepinspect/base/labels"
	"cogentcore.org/deepinspect/base/reflectx"
	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/host/scene"
	"cogentcore.org/deepinspect/math32"
	"cogentcore.org/deepinspect/surface"
)

// Node draws the given node of the host model with all of its components.
func (in *Inspector) Node(node host.Object) {
	if in.Host == nil || reflectx.AnyIsNil(node) {
		in.Surface.Label("null", 0)
		return
	}
	in.Settings.ShowTypes = in.Surface.Toggle("Show Types", in.Settings.ShowTypes, 0)
	in.Settings.QuaternionAsEuler = in.Surface.Toggle("Quaternion As Euler", in.Settings.QuaternionAsEuler, 0)
	active := in.Host.Active(node)
	if na := in.Surface.Toggle("Active", active, 0); na != active {
		in.Host.SetActive(node, na)
	}
	if nv, ch := in.Surface.Field("Name", surface.Text, node.Name(), surface.FieldOptions{}); ch {
		if name, ok := nv.(string); ok && name != node.Name() {
			node.SetName(name)
		}
	}
	for _, c := range in.Host.Components(node) {
		in.component(c)
	}
}

func (in *Inspector) component(c host.Component) {
	cv := reflect.ValueOf(c)
	typ := cv.Type()
	title := labels.TitleName(reflectx.NonPointerType(typ).Name())
	state := in.States.Get(cv, typ, title)
	in.Surface.BeginBox()
	defer in.Surface.EndBox()
	open := in.foldout(title, state, 0)
	tr, isTransform := c.(*scene.Transform)
	if !isTransform {
		en := c.Enabled()
		if ne := in.Surface.Toggle(title+" Enabled", en, 0); ne != en {
			in.Host.RecordUndo(c, "Set Enabled")
			c.SetEnabled(ne)
		}
	}
	if !open {
		return
	}
	if isTransform {
		in.transform(tr)
		return
	}
	in.Render(typ, cv, state, typ, 0, 0)
}

var vector3Type = reflect.TypeFor[math32.Vector3]()

// transform draws the dedicated editor of a transform.
func (in *Inspector) transform(t *scene.Transform) {
	in.objects = append(in.objects, t)
	defer func() { in.objects = in.objects[:len(in.objects)-1] }()

	if nv, ch := in.drawValue("Position", vector3Type, reflect.ValueOf(t.Position), surface.Vector3, 1); ch {
		in.recordUndo("Set Position")
		t.Position = nv.Interface().(math32.Vector3)
	}
	if in.Surface.Button("Reset Position", 1) {
		in.recordUndo("Reset Position")
		t.ResetPosition()
	}
	if nv, ch := in.drawValue("Rotation", reflect.TypeFor[math32.Quat](), reflect.ValueOf(t.Rotation), surface.Quat, 1); ch {
		in.recordUndo("Set Rotation")
		t.Rotation = nv.Interface().(math32.Quat)
	}
	if in.Surface.Button("Reset Rotation", 1) {
		in.recordUndo("Reset Rotation")
		t.ResetRotation()
	}
	if nv, ch := in.drawValue("Scale", vector3Type, reflect.ValueOf(t.Scale), surface.Vector3, 1); ch {
		in.recordUndo("Set Scale")
		t.Scale = nv.Interface().(math32.Vector3)
	}
	if in.Surface.Button("Reset Scale", 1) {
		in.recordUndo("Reset Scale")
		t.ResetScale()
	}
}
