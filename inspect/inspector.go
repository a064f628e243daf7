// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect draws editable views of arbitrary values on an
// immediate-mode [surface.Surface], using reflection to find their
// fields, properties and methods.
package inspect

import (
	"fmt"
	"log/slog"
	"reflect"
	"unicode/utf8"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/base/labels"
	"cogentcore.org/deepinspect/base/reflectx"
	"cogentcore.org/deepinspect/enums"
	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/math32"
	"cogentcore.org/deepinspect/surface"
	"cogentcore.org/deepinspect/types"
)

// MaxDepth is the deepest nesting and stack depth that is drawn.
const MaxDepth = 4

const (
	// WarningTitle is the title of confirmations.
	WarningTitle = "Warning"

	// DangerousMessage is the confirmation asked before opening a dangerous type.
	DangerousMessage = "Open this component in the inspector is not recommended. It may generate errors."
)

// Inspector draws values on a surface and commits the edits made to them.
// It must be used from a single goroutine.
type Inspector struct {
	Settings   *Settings
	Surface    surface.Surface
	Host       host.Model
	Classifier *Classifier
	Members    *Cache
	States     *Tree
	Disabled   *DisabledStack
	Logger     *slog.Logger

	args    map[argsKey]*argState
	objects []any
}

// New returns a new inspector drawing on the given surface, editing
// objects of the given host model, which may be nil. Nil settings
// are replaced by [NewSettings].
func New(s surface.Surface, h host.Model, settings *Settings) *Inspector {
	if settings == nil {
		settings = NewSettings()
	}
	c := NewClassifier(settings)
	return &Inspector{
		Settings:   settings,
		Surface:    s,
		Host:       h,
		Classifier: c,
		Members:    NewCache(c, types.Types),
		States:     NewTree(c),
		Disabled:   &DisabledStack{Surface: s},
		Logger:     slog.Default(),
		args:       map[argsKey]*argState{},
	}
}

// SetSurface sets the surface to draw on.
func (in *Inspector) SetSurface(s surface.Surface) {
	in.Surface = s
	in.Disabled.Surface = s
}

// SetSettings replaces the settings, clearing everything derived from them.
func (in *Inspector) SetSettings(settings *Settings) {
	in.Settings = settings
	in.Classifier = NewClassifier(settings)
	in.Members = NewCache(in.Classifier, in.Members.Types)
	in.States.Classifier = in.Classifier
	in.args = map[argsKey]*argState{}
}

// Inspect draws all of the members of the given value, which should be
// a pointer so that edits are written to it. It returns an error wrapping
// [ErrUndrawable] if the value has no members to draw.
func (in *Inspector) Inspect(obj any) error {
	v := reflect.ValueOf(obj)
	if reflectx.IsNil(v) {
		in.Surface.Label("null", 0)
		return fmt.Errorf("%w: nil value", ErrUndrawable)
	}
	typ := v.Type()
	if cl := in.Classifier.Classify(typ); !cl.IsComposite() || cl.Category == Collection || cl.Category == Dictionary {
		return fmt.Errorf("%w: %v is not a struct", ErrUndrawable, typ)
	}
	in.Render(typ, v, in.States.Get(v, typ, ""), typ, 0, 0)
	return nil
}

// Render draws the members of the given value of the given type, or the
// registered statics of the type if v is invalid, with the given state.
// Nothing is drawn beyond [MaxDepth]. If v can not be addressed, it is
// edited as a copy, which is returned.
func (in *Inspector) Render(typ reflect.Type, v reflect.Value, state *ShowState, owner reflect.Type, stack, depth int) reflect.Value {
	if depth > MaxDepth || stack > MaxDepth {
		return v
	}
	static := !v.IsValid()
	m := in.Members.For(typ, static)
	var sv, recv reflect.Value
	copied := false
	if !static {
		sv = reflectx.NonPointerValue(v)
		if !sv.IsValid() {
			return v
		}
		sv, copied = reflectx.Addressable(sv)
		recv = sv.Addr()
		if obj, ok := reflectx.Interface(recv).(host.Object); ok {
			in.objects = append(in.objects, obj)
			defer func() { in.objects = in.objects[:len(in.objects)-1] }()
		}
	}
	for i, fd := range m.Fields {
		in.guard(fd.Name, depth, func() { in.drawField(fd, i, sv, state, typ, stack, depth) })
	}
	for i, pd := range m.Properties {
		in.guard(pd.Name, depth, func() { in.drawProperty(pd, len(m.Fields)+i, recv, state, typ, stack, depth) })
	}
	in.drawMethods(m, recv, state, stack, depth)
	if copied {
		return sv
	}
	return v
}

// slot is a drawn value with its label.
type slot struct {
	name string

	// raw names are used as labels as is.
	raw bool

	typ   reflect.Type
	value reflect.Value

	// index is the index of the slot in its owner.
	index int

	editable  bool
	nonPublic bool
}

func (s *slot) title() string {
	t := s.name
	if !s.raw {
		t = labels.TitleName(t)
	}
	if s.nonPublic {
		t = "(non-public) " + t
	}
	return t
}

func (in *Inspector) drawField(fd *FieldDescriptor, index int, sv reflect.Value, state *ShowState, owner reflect.Type, stack, depth int) {
	if fd.Policy == Hidden || (fd.Inherited && !state.ShowInheritedMembers) {
		return
	}
	if fd.Policy == NameOnly {
		in.nameOnly(fd.Name, depth)
		return
	}
	fv, err := ReadField(sv, fd)
	if err != nil {
		in.unreadable(fd.Name, err, depth)
		return
	}
	editable := !fd.ReadOnly && fd.Policy != ReadOnly
	nv, changed := in.drawSlot(slot{name: fd.Name, typ: fd.Type, value: fv, index: index, editable: editable, nonPublic: !fd.Public}, owner, stack, depth)
	if !changed || !editable || in.Disabled.Active() {
		return
	}
	in.recordUndo("Set " + fd.Name)
	if err := WriteField(sv, fd, nv); err != nil {
		in.diagnose(err)
	}
}

func (in *Inspector) drawProperty(pd *PropertyDescriptor, index int, recv reflect.Value, state *ShowState, owner reflect.Type, stack, depth int) {
	if pd.Policy == Hidden || (pd.Inherited && !state.ShowInheritedMembers) {
		return
	}
	if !pd.Readable || pd.Policy == NameOnly {
		in.nameOnly(pd.Name, depth)
		return
	}
	pv, err := ReadProperty(recv, pd)
	if err != nil {
		in.unreadable(pd.Name, err, depth)
		return
	}
	editable := pd.Writable && pd.Policy != ReadOnly
	nv, changed := in.drawSlot(slot{name: pd.Name, typ: pd.Type, value: pv, index: index, editable: editable}, owner, stack, depth)
	if !changed || !editable || in.Disabled.Active() {
		return
	}
	in.recordUndo("Set " + pd.Name)
	if err := WriteProperty(recv, pd, nv); err != nil {
		in.diagnose(err)
	}
}

// drawSlot draws the given slot and returns its new value and whether
// it needs to be written back.
func (in *Inspector) drawSlot(s slot, owner reflect.Type, stack, depth int) (reflect.Value, bool) {
	if depth > MaxDepth || stack > MaxDepth {
		return s.value, false
	}
	in.Disabled.Begin(!s.editable)
	defer in.Disabled.End()
	title := s.title()
	cl := in.Classifier.Classify(s.typ)
	v := s.value
	switch cl.Category {
	case Undrawable:
		in.undrawable(title, s, cl, depth)
		return v, false
	case Leaf:
		return in.drawLeaf(title, s, cl, depth)
	}
	state := in.States.Get(v, s.typ, title)
	header := title
	if in.Settings.ShowTypes {
		header += " (" + labels.ShortTypeName(s.typ) + ")"
	}
	if cl.Category == AlwaysExpanded {
		in.Surface.Label(header, depth)
	} else if !in.foldout(header, state, depth) {
		return v, false
	}
	if reflectx.IsNil(v) {
		return in.fill(s, "null", depth+1)
	}
	if cl.Category == Collection || cl.Category == Dictionary {
		if v.Kind() != reflect.Pointer {
			return in.drawContainer(s, v, cl, state, owner, stack+1, depth+1)
		}
		nv, changed := in.drawContainer(s, v.Elem(), cl, state, owner, stack+1, depth+1)
		if !changed {
			return v, false
		}
		p := reflect.New(s.typ.Elem())
		p.Elem().Set(nv)
		return p, true
	}
	av, copied := reflectx.Addressable(v)
	in.Surface.BeginBox()
	in.Render(s.typ, av, state, owner, stack+1, 0)
	in.Surface.EndBox()
	if copied && !reflect.DeepEqual(reflectx.Interface(av), reflectx.Interface(v)) {
		return av, true
	}
	return v, false
}

// foldout draws a foldout header for the given state and returns
// whether it is open, asking for confirmation before opening
// values that require it.
func (in *Inspector) foldout(label string, state *ShowState, depth int) bool {
	open := in.Surface.Foldout(label, state.Expanded, depth)
	if open && !state.Expanded && state.RequiresConfirmation && !state.Confirmed {
		if !in.Surface.Confirm(WarningTitle, DangerousMessage, "Open anyway", "No") {
			return false
		}
		state.Confirmed = true
	}
	state.Expanded = open
	return open
}

// fill returns a new default value for the nil slot if it can be
// created and edited, and otherwise draws the given label.
func (in *Inspector) fill(s slot, label string, depth int) (reflect.Value, bool) {
	if !in.Disabled.Active() && in.Classifier.CanCreate(s.typ) {
		return in.Classifier.NewValue(s.typ), true
	}
	in.Surface.Label(label, depth)
	return s.value, false
}

func (in *Inspector) drawLeaf(title string, s slot, cl Class, depth int) (reflect.Value, bool) {
	if cl.Widget == surface.Reference {
		return in.drawReference(title, s, depth)
	}
	v := s.value
	if s.typ.Kind() != reflect.Pointer {
		return in.drawValue(title, s.typ, v, cl.Widget, depth)
	}
	if reflectx.IsNil(v) {
		return in.fill(s, title+": null", depth)
	}
	nv, changed := in.drawValue(title, s.typ.Elem(), v.Elem(), cl.Widget, depth)
	if !changed {
		return v, false
	}
	p := reflect.New(s.typ.Elem())
	p.Elem().Set(nv)
	return p, true
}

// drawContainer draws the given non-pointer slice, array or map.
func (in *Inspector) drawContainer(s slot, v reflect.Value, cl Class, state *ShowState, owner reflect.Type, stack, depth int) (reflect.Value, bool) {
	if cl.Category == Dictionary {
		return in.drawMap(s, v, state, owner, stack, depth)
	}
	return in.drawList(s, v, state, owner, stack, depth)
}

// leafValue returns the value passed to the surface for a leaf
// of the given widget kind.
func leafValue(w surface.Widget, v reflect.Value) any {
	v = reflectx.Readable(v)
	switch w {
	case surface.Bool:
		return v.Bool()
	case surface.Int:
		return v.Int()
	case surface.Uint:
		return v.Uint()
	case surface.Float:
		return v.Float()
	case surface.Complex:
		return v.Complex()
	case surface.Text:
		return v.String()
	case surface.TextBuffer:
		if s, ok := reflectx.PointerValue(v).Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return ""
	}
	return v.Interface()
}

// drawValue draws a non-pointer leaf value and returns the edited value
// converted to the given type.
func (in *Inspector) drawValue(title string, typ reflect.Type, v reflect.Value, w surface.Widget, depth int) (reflect.Value, bool) {
	val := leafValue(w, v)
	opts := surface.FieldOptions{Indent: depth, Type: typ}
	switch w {
	case surface.Text:
		n := utf8.RuneCountInString(val.(string))
		if n > in.Settings.TextMax {
			in.Surface.Label(title+": String is too long to display.", depth)
			return v, false
		}
		if n >= in.Settings.TextFieldMax {
			w = surface.TextArea
		}
	case surface.TextBuffer, surface.Matrix:
		opts.ReadOnly = true
	case surface.Quat:
		if in.Settings.QuaternionAsEuler {
			val = val.(math32.Quat).EulerDegrees()
			w = surface.Euler
		}
	case surface.Enum:
		if e, ok := val.(enums.Enum); ok {
			opts.Choices = enums.Strings(e)
		}
	}
	res, changed := in.Surface.Field(title, w, val, opts)
	if !changed || opts.ReadOnly {
		return v, false
	}
	if e, ok := res.(math32.Vector3); ok && w == surface.Euler {
		q := math32.Quat{}
		q.SetEulerDegrees(e)
		res = q
	}
	nv, err := reflectx.Convert(res, typ)
	if err != nil {
		in.diagnose(fmt.Errorf("%w: %s: %w", ErrUncommittable, title, err))
		return v, false
	}
	return nv, true
}

// drawReference draws a reference picker. A picked name is loaded
// through the host as an asset of the slot type.
func (in *Inspector) drawReference(title string, s slot, depth int) (reflect.Value, bool) {
	v := s.value
	var cur any
	if !reflectx.IsNil(v) {
		cur = reflectx.Interface(v)
	}
	res, changed := in.Surface.Field(title, surface.Reference, cur, surface.FieldOptions{Indent: depth, Type: s.typ})
	if !changed {
		return v, false
	}
	name, isName := res.(string)
	switch {
	case res == nil || (isName && (name == "" || name == "None")):
		return reflect.New(s.typ).Elem(), true
	case isName:
		if in.Host == nil {
			in.diagnose(fmt.Errorf("%w: %s: no host to load %q from", ErrUncommittable, title, name))
			return v, false
		}
		obj, err := in.Host.LoadAsset(s.typ, name)
		if err != nil {
			in.diagnose(fmt.Errorf("%w: %s: %w", ErrUncommittable, title, err))
			return v, false
		}
		res = obj
	}
	nv, err := reflectx.Convert(res, s.typ)
	if err != nil {
		in.diagnose(fmt.Errorf("%w: %s: %w", ErrUncommittable, title, err))
		return v, false
	}
	return nv, true
}

func (in *Inspector) undrawable(title string, s slot, cl Class, depth int) {
	reason := cl.Reason
	if s.typ != nil && s.typ.Kind() == reflect.Interface {
		if reflectx.IsNil(s.value) {
			reason = "null"
		} else {
			reason = reflectx.ToString(s.value) + " (" + s.value.Elem().Type().String() + ")"
		}
	}
	in.Disabled.Begin(true)
	in.Surface.Label(title+": "+reason, depth)
	in.Disabled.End()
}

// nameOnly draws the name of a member whose value is not read.
func (in *Inspector) nameOnly(name string, depth int) {
	in.Disabled.Begin(true)
	in.Surface.Label(labels.TitleName(name)+" (This property is not readable)", depth)
	in.Disabled.End()
}

func (in *Inspector) unreadable(name string, err error, depth int) {
	in.Disabled.Begin(true)
	in.Surface.Label(labels.TitleName(name)+": Unreadable", depth)
	in.Disabled.End()
	in.diagnose(err)
}

// guard draws a member with draw, drawing it as unreadable if
// drawing it panics.
func (in *Inspector) guard(name string, depth int, draw func()) {
	err := errors.Recover(func() error {
		draw()
		return nil
	})
	if err != nil {
		in.unreadable(name, fmt.Errorf("%w: %s: %w", ErrUnreadable, name, err), depth)
	}
}

// diagnose logs the given rendering failure, at the warning level
// if [Settings.Debug] is on.
func (in *Inspector) diagnose(err error) {
	if in.Settings.Debug {
		in.Logger.Warn(err.Error())
		return
	}
	in.Logger.Debug(err.Error())
}

// recordUndo records the innermost host object being drawn before
// the given action changes it.
func (in *Inspector) recordUndo(action string) {
	if in.Host == nil || len(in.objects) == 0 {
		return
	}
	in.Host.RecordUndo(in.objects[len(in.objects)-1], action)
}
