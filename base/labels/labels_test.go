// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleName(t *testing.T) {
	tests := map[string]string{
		"health":             "Health",
		"maxHealth":          "Max Health",
		"MaxHealth":          "Max Health",
		"_private":           "Private",
		"m_speed":            "Speed",
		"M_speed":            "Speed",
		"HTTPServer":         "HTTP Server",
		"isActiveAndEnabled": "Is Active And Enabled",
		"layer_cull_dist":    "Layer Cull Dist",
		"Vector3":            "Vector3",
		"slot2Name":          "Slot2 Name",
		"":                   "",
		"_":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleName(in), "TitleName(%q)", in)
	}
}

func TestBetween(t *testing.T) {
	assert.Equal(t, "Stats", Between("type <Stats> found", "<", ">"))
	assert.Equal(t, "a", Between("[a][b]", "[", "]"))
	assert.Equal(t, "no markers", Between("no markers", "<", ">"))
	assert.Equal(t, "x<y", Between("x<y", "<", ">"))
	assert.Equal(t, "text", Between("text", "", ">"))
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "0~49", PageTitle(0, 50))
	assert.Equal(t, "100~129", PageTitle(100, 130))
	assert.Equal(t, "50", PageTitle(50, 51))
}

type inventoryItem struct{}

func TestFriendlyTypeName(t *testing.T) {
	assert.Equal(t, "Number", FriendlyTypeName(reflect.TypeFor[int]()))
	assert.Equal(t, "Text", FriendlyTypeName(reflect.TypeFor[*string]()))
	assert.Equal(t, "Numbers", FriendlyTypeName(reflect.TypeFor[[]float32]()))
	assert.Equal(t, "Inventory Item", FriendlyTypeName(reflect.TypeFor[inventoryItem]()))
	assert.Equal(t, "Value", FriendlyTypeName(reflect.TypeFor[any]()))
	assert.Equal(t, "labels.inventoryItem", ShortTypeName(reflect.TypeFor[*inventoryItem]()))
}

func TestFriendlyLabels(t *testing.T) {
	assert.Equal(t, "3 Numbers", FriendlySliceLabel(reflect.ValueOf([]int{1, 2, 3})))
	assert.Equal(t, "None", FriendlySliceLabel(reflect.ValueOf([]int(nil))))
	assert.Equal(t, "1 Text", FriendlyMapLabel(reflect.ValueOf(map[int]string{1: "a"})))
	assert.Equal(t, "None", FriendlyMapLabel(reflect.ValueOf(map[int]string(nil))))
}
