// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("health", 10)
	om.Add("armor", 5)
	om.Add("speed", 2)
	om.Add("armor", 6)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"health", "armor", "speed"}, om.Keys())
	v, ok := om.ValueByKey("armor")
	assert.True(t, ok)
	assert.Equal(t, 6, v)
	_, ok = om.ValueByKey("mana")
	assert.False(t, ok)

	assert.True(t, om.DeleteKey("health"))
	assert.False(t, om.DeleteKey("health"))
	assert.Equal(t, 0, om.IndexByKey("armor"))
	assert.Equal(t, 1, om.IndexByKey("speed"))
	assert.Equal(t, -1, om.IndexByKey("health"))

	var keys []string
	for k := range om.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"armor", "speed"}, keys)

	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
}
