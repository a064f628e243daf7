// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// it is much easier to test with an independent enum mock
type fruit int32

const (
	apple fruit = iota + 1
	pear
)

var fruitNames = map[fruit]string{apple: "Apple", pear: "Pear"}

func (f fruit) String() string    { return String(f, fruitNames) }
func (f fruit) Int64() int64      { return int64(f) }
func (f fruit) Desc() string      { return Desc(f, map[fruit]string{apple: "A round fruit"}) }
func (f fruit) Values() []Enum    { return Values([]fruit{apple, pear}) }
func (f *fruit) SetInt64(i int64) { *f = fruit(i) }
func (f *fruit) SetString(s string) error {
	return SetString(f, s, fruitNames, "fruit")
}

var _ EnumSetter = (*fruit)(nil)

func TestString(t *testing.T) {
	assert.Equal(t, "Apple", apple.String())
	assert.Equal(t, "7", fruit(7).String())
	assert.Equal(t, "A round fruit", apple.Desc())
	assert.Equal(t, "2", pear.Desc())
}

func TestSetString(t *testing.T) {
	var f fruit
	assert.NoError(t, f.SetString("pear"))
	assert.Equal(t, pear, f)
	assert.Error(t, f.SetString("Orange"))
	assert.Equal(t, pear, f)
}

func TestValues(t *testing.T) {
	assert.Equal(t, []string{"Apple", "Pear"}, Strings(apple))
	assert.Equal(t, 1, Index(pear))
	assert.Equal(t, -1, Index(fruit(9)))
	assert.Equal(t, apple, First(pear))
}
