// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"cogentcore.org/deepinspect/base/labels"
	"cogentcore.org/deepinspect/types"
	"github.com/fatih/camelcase"
)

// FieldDescriptor describes a struct field or a registered static variable.
type FieldDescriptor struct {
	Name string
	Type reflect.Type

	// Index is the index path of a struct field.
	Index []int

	// Static is the pointer to a registered static variable.
	Static reflect.Value

	// Public fields are exported.
	Public bool

	// ReadOnly fields are drawn disabled.
	ReadOnly bool

	// Inherited fields are promoted from a framework root.
	Inherited bool

	// Declaring is the struct type that declares the field.
	Declaring reflect.Type

	Policy Policy
}

// PropertyDescriptor describes a getter and setter method pair.
type PropertyDescriptor struct {
	Name string
	Type reflect.Type

	// Getter and Setter are method indices in the pointer method set,
	// or -1 if there is no such method.
	Getter, Setter int

	Readable, Writable bool

	// SetterError is whether the setter returns an error.
	SetterError bool

	Inherited bool
	Policy    Policy
}

// ParamDescriptor describes a method parameter.
type ParamDescriptor struct {
	Name string
	Type reflect.Type
}

// MethodDescriptor describes a method or a registered static function.
type MethodDescriptor struct {
	Name string

	// Index is the index in the pointer method set of an instance method.
	Index int

	// Func is the function value of a registered static function.
	Func reflect.Value

	Params   []ParamDescriptor
	Results  []reflect.Type
	Variadic bool

	// Invocable methods can be called from the method panel;
	// Reason says why other methods can not be called.
	Invocable bool
	Reason    string

	Inherited bool
}

// HasError returns whether the last result of the method is an error.
func (md *MethodDescriptor) HasError() bool {
	return len(md.Results) > 0 && md.Results[len(md.Results)-1] == errorType
}

// Members are the drawable members of a type.
type Members struct {
	Type       reflect.Type
	Static     bool
	Fields     []*FieldDescriptor
	Properties []*PropertyDescriptor
	Methods    []*MethodDescriptor
}

type membersKey struct {
	typ    reflect.Type
	static bool
}

// Cache discovers and caches the members of types.
type Cache struct {
	Classifier *Classifier

	// Types is the registry of static variables and functions.
	Types *types.Registry

	members map[membersKey]*Members
	scans   int
}

// NewCache returns a new member cache.
func NewCache(c *Classifier, reg *types.Registry) *Cache {
	return &Cache{Classifier: c, Types: reg, members: map[membersKey]*Members{}}
}

// Scans returns the number of types that have been scanned.
func (c *Cache) Scans() int {
	return c.scans
}

// For returns the instance members of the given type, or its registered
// statics if static is true. The members of each type are discovered once.
func (c *Cache) For(typ reflect.Type, static bool) *Members {
	typ = nonPointer(typ)
	k := membersKey{typ, static}
	if m, ok := c.members[k]; ok {
		return m
	}
	c.scans++
	m := &Members{Type: typ, Static: static}
	if typ != nil {
		if static {
			c.scanStatics(m)
		} else {
			c.scanInstance(m)
		}
	}
	c.members[k] = m
	return m
}

func nonPointer(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

func (c *Cache) settings() *Settings {
	return c.Classifier.Settings
}

func (c *Cache) scanInstance(m *Members) {
	roots := map[string]bool{}
	if m.Type.Kind() == reflect.Struct {
		c.scanFields(m, m.Type, nil, false, roots)
	}
	if m.Type.Kind() == reflect.Interface {
		return
	}
	pt := reflect.PointerTo(m.Type)
	accessors := c.scanProperties(m, pt, roots)
	for i := range pt.NumMethod() {
		if accessors[i] {
			continue
		}
		mt := pt.Method(i)
		md := &MethodDescriptor{Name: mt.Name, Index: i, Inherited: roots[mt.Name] && isPromoted(pt, mt.Name)}
		c.setSignature(md, mt.Type, 1, nil)
		m.Methods = append(m.Methods, md)
	}
}

// scanFields adds the fields of the given struct type, flattening
// embedded structs. The method names of embedded framework roots
// are added to roots.
func (c *Cache) scanFields(m *Members, typ reflect.Type, index []int, inherited bool, roots map[string]bool) {
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Tag.Get("display") == "-" {
			continue
		}
		idx := append(slices.Clone(index), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			root := inherited || c.settings().IsFrameworkRoot(f.Type)
			if root {
				pt := reflect.PointerTo(f.Type)
				for j := range pt.NumMethod() {
					roots[pt.Method(j).Name] = true
				}
			}
			c.scanFields(m, f.Type, idx, root, roots)
			continue
		}
		m.Fields = append(m.Fields, &FieldDescriptor{
			Name:      f.Name,
			Type:      f.Type,
			Index:     idx,
			Public:    f.IsExported(),
			ReadOnly:  !f.IsExported() || f.Tag.Get("edit") == "-",
			Inherited: inherited,
			Declaring: typ,
			Policy:    c.settings().PolicyFor(m.Type, f.Name),
		})
	}
}

// isActionVerb returns whether the first word of the given method
// name is an action verb.
func (c *Cache) isActionVerb(name string) bool {
	words := camelcase.Split(name)
	return len(words) > 0 && slices.Contains(c.settings().ActionVerbs, words[0])
}

// setterName returns the property name of the given method name
// if its first word is Set.
func setterName(name string) (string, bool) {
	words := camelcase.Split(name)
	if len(words) < 2 || words[0] != "Set" {
		return "", false
	}
	return strings.Join(words[1:], ""), true
}

func inheritedAccessor(pt reflect.Type, i int, roots map[string]bool) bool {
	name := pt.Method(i).Name
	return roots[name] && isPromoted(pt, name)
}

// isPromoted returns whether the method of the given pointer type with
// the given name is promoted from an embedded field instead of being
// declared by the element type itself.
func isPromoted(pt reflect.Type, name string) bool {
	mt, ok := pt.MethodByName(name)
	if !ok || !generated(mt) {
		return false
	}
	if vm, ok := pt.Elem().MethodByName(name); ok && !generated(vm) {
		return false
	}
	return true
}

// generated returns whether the code of the given method is a
// compiler generated wrapper.
func generated(mt reflect.Method) bool {
	f := runtime.FuncForPC(mt.Func.Pointer())
	if f == nil {
		return false
	}
	file, _ := f.FileLine(f.Entry())
	return file == "<autogenerated>"
}

// scanProperties adds the properties of the given pointer type and
// returns the method indices of their accessors.
func (c *Cache) scanProperties(m *Members, pt reflect.Type, roots map[string]bool) map[int]bool {
	accessors := map[int]bool{}
	byName := map[string]*PropertyDescriptor{}
	var names []string
	for i := range pt.NumMethod() {
		mt := pt.Method(i)
		ft := mt.Type
		switch mt.Name {
		case "String", "GoString", "Error":
			continue
		}
		if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.Out(0) == errorType || c.isActionVerb(mt.Name) {
			continue
		}
		if _, ok := setterName(mt.Name); ok {
			continue
		}
		pd := &PropertyDescriptor{Name: mt.Name, Type: ft.Out(0), Getter: i, Setter: -1, Readable: true}
		byName[mt.Name] = pd
		names = append(names, mt.Name)
	}
	for i := range pt.NumMethod() {
		mt := pt.Method(i)
		ft := mt.Type
		name, ok := setterName(mt.Name)
		if !ok || ft.NumIn() != 2 || ft.IsVariadic() {
			continue
		}
		switch {
		case ft.NumOut() == 0:
		case ft.NumOut() == 1 && ft.Out(0) == errorType:
		default:
			continue
		}
		pd := byName[name]
		if pd == nil {
			if pt.Elem().Kind() == reflect.Struct {
				if _, has := pt.Elem().FieldByName(name); has {
					continue
				}
			}
			pd = &PropertyDescriptor{Name: name, Type: ft.In(1), Getter: -1}
			byName[name] = pd
			names = append(names, name)
		} else if ft.In(1) != pd.Type {
			continue
		}
		pd.Setter = i
		pd.Writable = true
		pd.SetterError = ft.NumOut() == 1
	}
	slices.Sort(names)
	for _, name := range names {
		pd := byName[name]
		if pd.Getter >= 0 {
			accessors[pd.Getter] = true
			pd.Inherited = inheritedAccessor(pt, pd.Getter, roots)
		}
		if pd.Setter >= 0 {
			accessors[pd.Setter] = true
			pd.Inherited = pd.Inherited || inheritedAccessor(pt, pd.Setter, roots)
		}
		pd.Policy = c.settings().PolicyFor(m.Type, name)
		m.Properties = append(m.Properties, pd)
	}
	return accessors
}

// setSignature sets the parameters and results of the given method
// from its function type, skipping the first skip parameters, and
// decides whether it can be invoked.
func (c *Cache) setSignature(md *MethodDescriptor, ft reflect.Type, skip int, args func(i int) string) {
	md.Variadic = ft.IsVariadic()
	counts := map[reflect.Type]int{}
	for i := skip; i < ft.NumIn(); i++ {
		counts[ft.In(i)]++
	}
	seen := map[reflect.Type]int{}
	for i := skip; i < ft.NumIn(); i++ {
		pt := ft.In(i)
		name := ""
		if args != nil {
			name = args(i - skip)
		}
		if name == "" {
			name = labels.FriendlyTypeName(pt)
			if counts[pt] > 1 {
				seen[pt]++
				name = fmt.Sprintf("%s %d", name, seen[pt])
			}
		}
		md.Params = append(md.Params, ParamDescriptor{Name: name, Type: pt})
	}
	for i := range ft.NumOut() {
		md.Results = append(md.Results, ft.Out(i))
	}
	md.Invocable = true
	for _, p := range md.Params {
		if reason := c.paramReason(p.Type); reason != "" {
			md.Invocable = false
			md.Reason = reason
			return
		}
	}
}

// paramReason returns why a parameter of the given type can not be
// created by the method panel, or "" if it can.
func (c *Cache) paramReason(typ reflect.Type) string {
	if typ.Kind() == reflect.String {
		return ""
	}
	if !c.Classifier.CanCreate(typ) {
		return fmt.Sprintf("parameter of type %v can not be created", typ)
	}
	st := nonPointer(typ)
	if st.Kind() != reflect.Struct {
		return ""
	}
	for i := range st.NumField() {
		f := st.Field(i)
		if !f.IsExported() || f.Tag.Get("edit") == "-" || f.Type.Kind() == reflect.String {
			continue
		}
		if !c.Classifier.CanCreate(f.Type) {
			return fmt.Sprintf("field %s of parameter of type %v can not be created", f.Name, typ)
		}
	}
	pt := reflect.PointerTo(st)
	for i := range pt.NumMethod() {
		mt := pt.Method(i)
		name, ok := setterName(mt.Name)
		if !ok || mt.Type.NumIn() != 2 {
			continue
		}
		at := mt.Type.In(1)
		if at.Kind() != reflect.String && !c.Classifier.CanCreate(at) {
			return fmt.Sprintf("property %s of parameter of type %v can not be created", name, typ)
		}
	}
	return ""
}

func (c *Cache) scanStatics(m *Members) {
	if c.Types == nil || m.Type.Name() == "" {
		return
	}
	tp, err := c.Types.ByName(types.TypeName(m.Type))
	if err != nil {
		return
	}
	for name, ptr := range tp.Vars.All() {
		pv := reflect.ValueOf(ptr)
		if pv.Kind() != reflect.Pointer || pv.IsNil() {
			continue
		}
		m.Fields = append(m.Fields, &FieldDescriptor{
			Name:      name,
			Type:      pv.Type().Elem(),
			Static:    pv,
			Public:    true,
			Declaring: m.Type,
			Policy:    c.settings().PolicyFor(m.Type, name),
		})
	}
	for name, f := range tp.Funcs.All() {
		fv := f.Value()
		if fv.Kind() != reflect.Func {
			continue
		}
		md := &MethodDescriptor{Name: name, Index: -1, Func: fv}
		c.setSignature(md, fv.Type(), 0, func(i int) string {
			if i < len(f.Args) {
				return f.Args[i]
			}
			return ""
		})
		m.Methods = append(m.Methods, md)
	}
}
