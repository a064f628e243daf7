// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import "cogentcore.org/deepinspect/enums"

var _CategoryValues = []Category{Leaf, AlwaysExpanded, Foldable, Collection, Dictionary, Undrawable}

var _CategoryNames = map[Category]string{Leaf: `Leaf`, AlwaysExpanded: `AlwaysExpanded`, Foldable: `Foldable`, Collection: `Collection`, Dictionary: `Dictionary`, Undrawable: `Undrawable`}

var _CategoryDescs = map[Category]string{Leaf: `Leaf types are drawn as a single primitive field.`, AlwaysExpanded: `AlwaysExpanded types are drawn inline with their members always visible.`, Foldable: `Foldable types are drawn as a foldout header with their members in a box below it.`, Collection: `Collection types are slices and arrays drawn as paged lists.`, Dictionary: `Dictionary types are maps drawn as paged key and value rows.`, Undrawable: `Undrawable types are drawn as a disabled placeholder.`}

// String returns the string representation of this Category value.
func (i Category) String() string { return enums.String(i, _CategoryNames) }

// SetString sets the Category value from its string representation,
// and returns an error if the string is invalid.
func (i *Category) SetString(s string) error {
	return enums.SetString(i, s, _CategoryNames, "Category")
}

// Int64 returns the Category value as an int64.
func (i Category) Int64() int64 { return int64(i) }

// SetInt64 sets the Category value from an int64.
func (i *Category) SetInt64(in int64) { *i = Category(in) }

// Desc returns the description of the Category value.
func (i Category) Desc() string { return enums.Desc(i, _CategoryDescs) }

// CategoryValues returns all possible values for the type Category.
func CategoryValues() []Category { return _CategoryValues }

// Values returns all possible values for the type Category.
func (i Category) Values() []enums.Enum { return enums.Values(_CategoryValues) }
