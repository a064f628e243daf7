// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))

	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))
	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
	assert.Equal(t, reflect.TypeFor[*int](), PointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[*int](), PointerType(reflect.TypeFor[*int]()))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(v)).Equal(rv))
	assert.True(t, NonPointerValue(reflect.ValueOf(&v)).Equal(rv))

	p := &v
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))

	n := (*int)(nil)
	assert.False(t, NonPointerValue(reflect.ValueOf(n)).IsValid())
}

func TestPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.False(t, rv.CanAddr())
	assert.Equal(t, reflect.TypeFor[*int](), PointerValue(rv).Type())

	rp := reflect.ValueOf(&v)
	assert.True(t, PointerValue(rp).Equal(rp))
	assert.True(t, PointerValue(rp.Elem()).Equal(rp))
	assert.False(t, PointerValue(reflect.ValueOf(nil)).IsValid())
}

func TestUnderlying(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	a := any(v)
	assert.True(t, Underlying(reflect.ValueOf(&a)).Equal(rv))
	assert.Equal(t, rv.Type(), Underlying(reflect.ValueOf(&a)).Type())
	assert.False(t, Underlying(reflect.ValueOf((*int)(nil))).IsValid())
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(reflect.Value{}))
	assert.True(t, AnyIsNil(nil))
	assert.True(t, AnyIsNil((*int)(nil)))
	assert.True(t, AnyIsNil([]int(nil)))
	assert.True(t, AnyIsNil(map[string]int(nil)))
	assert.False(t, AnyIsNil(0))
	assert.False(t, AnyIsNil([]int{}))
}

type hidden struct {
	count int
	name  string
}

func TestAddressable(t *testing.T) {
	v := reflect.ValueOf(3)
	av, copied := Addressable(v)
	assert.True(t, copied)
	assert.True(t, av.CanSet())
	assert.Equal(t, 3, av.Interface())

	x := 4
	av, copied = Addressable(reflect.ValueOf(&x).Elem())
	assert.False(t, copied)
	av.SetInt(5)
	assert.Equal(t, 5, x)

	h := hidden{count: 2, name: "a"}
	f := reflect.ValueOf(h).Field(0)
	av, copied = Addressable(f)
	assert.True(t, copied)
	assert.Equal(t, 2, av.Interface())
}
