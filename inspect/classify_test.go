// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"bytes"
	"errors"
	"image/color"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/host/scene"
	"cogentcore.org/deepinspect/host/scene/demo"
	"cogentcore.org/deepinspect/math32"
	"cogentcore.org/deepinspect/surface"
	"github.com/stretchr/testify/assert"
)

type statsGUI struct {
	Scale float32
}

type needsName struct {
	Name string
}

func (n *needsName) Validate() error {
	if n.Name == "" {
		return errors.New("name required")
	}
	return nil
}

func TestClassifyTotal(t *testing.T) {
	c := NewClassifier(NewSettings())
	corpus := []reflect.Type{
		nil,
		reflect.TypeFor[bool](), reflect.TypeFor[int8](), reflect.TypeFor[uint16](),
		reflect.TypeFor[float32](), reflect.TypeFor[complex64](), reflect.TypeFor[string](),
		reflect.TypeFor[demo.Team](), reflect.TypeFor[*demo.Team](), reflect.TypeFor[surface.Widget](),
		reflect.TypeFor[[]int](), reflect.TypeFor[[3]string](), reflect.TypeFor[map[string]int](),
		reflect.TypeFor[any](), reflect.TypeFor[func()](), reflect.TypeFor[chan int](),
		reflect.TypeFor[unsafe.Pointer](), reflect.TypeFor[uintptr](), reflect.TypeFor[**int](),
		reflect.TypeFor[*int](), reflect.TypeFor[stats](), reflect.TypeFor[*stats](),
		reflect.TypeFor[strings.Builder](), reflect.TypeFor[bytes.Buffer](), reflect.TypeFor[color.RGBA](),
		reflect.TypeFor[math32.Vector2](), reflect.TypeFor[math32.Vector3](), reflect.TypeFor[math32.Vector4](),
		reflect.TypeFor[math32.Vector2i](), reflect.TypeFor[math32.Vector3i](), reflect.TypeFor[math32.Quat](),
		reflect.TypeFor[math32.Color](), reflect.TypeFor[math32.Rect](), reflect.TypeFor[math32.RectInt](),
		reflect.TypeFor[math32.Bounds](), reflect.TypeFor[math32.BoundsInt](), reflect.TypeFor[math32.Matrix4](),
		reflect.TypeFor[math32.Curve](), reflect.TypeFor[*scene.Node](), reflect.TypeFor[host.Object](),
		reflect.TypeFor[scene.Transform](), reflect.TypeFor[demo.Player](), reflect.TypeFor[host.ObjectBase](),
	}
	for _, typ := range corpus {
		cl := c.Classify(typ)
		assert.Contains(t, CategoryValues(), cl.Category, "%v", typ)
		if cl.Category == Leaf {
			assert.NotEqual(t, surface.None, cl.Widget, "%v", typ)
		}
		if _, known := knownTypes[typ]; known {
			assert.Equal(t, Leaf, cl.Category, "%v", typ)
		}
		assert.Equal(t, cl, c.Classify(typ), "%v", typ)
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(NewSettings())
	tests := []struct {
		typ  reflect.Type
		want Class
	}{
		{nil, Class{Category: Undrawable, Reason: "null"}},
		{reflect.TypeFor[bool](), leaf(surface.Bool)},
		{reflect.TypeFor[int16](), leaf(surface.Int)},
		{reflect.TypeFor[uint8](), leaf(surface.Uint)},
		{reflect.TypeFor[float64](), leaf(surface.Float)},
		{reflect.TypeFor[complex128](), leaf(surface.Complex)},
		{reflect.TypeFor[string](), leaf(surface.Text)},
		{reflect.TypeFor[*int](), leaf(surface.Int)},
		{reflect.TypeFor[demo.Team](), leaf(surface.Enum)},
		{reflect.TypeFor[strings.Builder](), leaf(surface.TextBuffer)},
		{reflect.TypeFor[color.RGBA](), leaf(surface.Color32)},
		{reflect.TypeFor[math32.Quat](), leaf(surface.Quat)},
		{reflect.TypeFor[math32.Matrix4](), leaf(surface.Matrix)},
		{reflect.TypeFor[*scene.Node](), leaf(surface.Reference)},
		{reflect.TypeFor[*scene.Material](), leaf(surface.Reference)},
		{reflect.TypeFor[host.Object](), leaf(surface.Reference)},
		{reflect.TypeFor[[]int](), Class{Category: Collection}},
		{reflect.TypeFor[[4]float32](), Class{Category: Collection}},
		{reflect.TypeFor[map[int]string](), Class{Category: Dictionary}},
		{reflect.TypeFor[any](), Class{Category: Undrawable, Reason: "interface is not drawable"}},
		{reflect.TypeFor[func()](), Class{Category: Undrawable, Reason: "func is not drawable"}},
		{reflect.TypeFor[chan int](), Class{Category: Undrawable, Reason: "chan is not drawable"}},
		{reflect.TypeFor[unsafe.Pointer](), Class{Category: Undrawable, Reason: "pointer is not drawable"}},
		{reflect.TypeFor[**stats](), Class{Category: Undrawable, Reason: "pointer is not drawable"}},
		{reflect.TypeFor[stats](), Class{Category: Foldable}},
		{reflect.TypeFor[*demo.Stats](), Class{Category: Foldable}},
		{reflect.TypeFor[scene.Transform](), Class{Category: Foldable}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.typ), "%v", tt.typ)
	}
}

func TestClassifyFramework(t *testing.T) {
	s := NewSettings()
	s.FrameworkPackages = append(s.FrameworkPackages, reflect.TypeFor[stats]().PkgPath())
	c := NewClassifier(s)
	assert.Equal(t, AlwaysExpanded, c.Classify(reflect.TypeFor[stats]()).Category)
	assert.Equal(t, AlwaysExpanded, c.Classify(reflect.TypeFor[*stats]()).Category)
	assert.Equal(t, Foldable, c.Classify(reflect.TypeFor[statsGUI]()).Category)
}

func TestCanCreate(t *testing.T) {
	c := NewClassifier(NewSettings())
	assert.True(t, c.CanCreate(reflect.TypeFor[stats]()))
	assert.True(t, c.CanCreate(reflect.TypeFor[*stats]()))
	assert.True(t, c.CanCreate(reflect.TypeFor[map[string][]int]()))
	assert.True(t, c.CanCreate(reflect.TypeFor[string]()))
	assert.False(t, c.CanCreate(nil))
	assert.False(t, c.CanCreate(reflect.TypeFor[any]()))
	assert.False(t, c.CanCreate(reflect.TypeFor[func()]()))
	assert.False(t, c.CanCreate(reflect.TypeFor[chan int]()))
	assert.False(t, c.CanCreate(reflect.TypeFor[*scene.Node]()))
	assert.False(t, c.CanCreate(reflect.TypeFor[needsName]()))
	assert.False(t, c.CanCreate(reflect.TypeFor[*needsName]()))
}

func TestNewValue(t *testing.T) {
	c := NewClassifier(NewSettings())
	v := c.NewValue(reflect.TypeFor[stats]())
	assert.Equal(t, stats{Strength: 1}, v.Interface())
	assert.True(t, v.CanSet())
	p := c.NewValue(reflect.TypeFor[*stats]())
	assert.Equal(t, &stats{Strength: 1}, p.Interface())
	assert.Equal(t, demo.TeamNone, c.NewValue(reflect.TypeFor[demo.Team]()).Interface())
	assert.NotNil(t, c.NewValue(reflect.TypeFor[map[string]int]()).Interface())
}
