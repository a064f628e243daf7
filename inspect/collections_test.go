// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"strings"
	"testing"

	"cogentcore.org/deepinspect/surface/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bag struct {
	Items []int
	Grid  [3]int
	Hooks []func()
}

func elements(rs *record.Surface) []string {
	var res []string
	for _, r := range rs.Rows {
		if strings.HasPrefix(r.Label, "Element ") {
			res = append(res, r.Label)
		}
	}
	return res
}

func TestPages(t *testing.T) {
	in, rs := newTestInspector(nil)
	b := &bag{Items: make([]int, 130)}
	frame(t, in, rs, b)
	assert.Equal(t, []string{"Items", "0~49", "50~99", "100~129", "Grid", "0~2", "Hooks"}, rs.Labels(record.FoldoutRow))
	assert.Empty(t, elements(rs))
	assert.Contains(t, rs.Labels(record.LabelRow), "Size: 3")

	rs.Click("50~99")
	frame(t, in, rs, b)
	els := elements(rs)
	require.Len(t, els, 50)
	assert.Equal(t, "Element 50", els[0])
	assert.Equal(t, "Element 99", els[49])

	rs.Click("0~49")
	frame(t, in, rs, b)
	els = elements(rs)
	require.Len(t, els, 50)
	assert.Equal(t, "Element 0", els[0])

	rs.Edit("Element 1", int64(42))
	frame(t, in, rs, b)
	assert.Equal(t, 42, b.Items[1])

	rs.Click("0~49")
	frame(t, in, rs, b)
	assert.Empty(t, elements(rs))

	in.Settings.PageSize = 100
	frame(t, in, rs, b)
	assert.Contains(t, rs.Labels(record.FoldoutRow), "100~129")
	assert.Contains(t, rs.Labels(record.FoldoutRow), "0~99")
}

func TestListEdits(t *testing.T) {
	in, rs := newTestInspector(nil)
	b := &bag{Items: []int{1, 2, 3}}
	frame(t, in, rs, b)

	rs.Edit("Size", int64(5))
	frame(t, in, rs, b)
	assert.Equal(t, []int{1, 2, 3, 0, 0}, b.Items)

	rs.Edit("Size", int64(2))
	frame(t, in, rs, b)
	assert.Equal(t, []int{1, 2}, b.Items)

	rs.Click("Clear")
	frame(t, in, rs, b)
	assert.Equal(t, []int{1, 2}, b.Items)
	assert.Equal(t, []string{"You're going to clear this list."}, rs.Confirms)

	rs.Click("Clear").Answer(true)
	frame(t, in, rs, b)
	assert.Empty(t, b.Items)
	assert.NotNil(t, b.Items)

	// the first Add button is the one of Items
	rs.Click("Add").Click("Add")
	frame(t, in, rs, b)
	assert.Equal(t, []int{0}, b.Items)
	assert.Empty(t, b.Hooks)
}

type scores struct {
	Scores map[string]int
}

func TestMap(t *testing.T) {
	in, rs := newTestInspector(nil)
	s := &scores{Scores: map[string]int{"b": 2, "a": 1}}
	frame(t, in, rs, s)
	assert.Contains(t, rs.Labels(record.LabelRow), "Size: 2")
	assert.Zero(t, rs.Count("Key"))

	rs.Click("0~1")
	frame(t, in, rs, s)
	keys := rs.FindAll("Key")
	require.Len(t, keys, 2)
	assert.Equal(t, "a", keys[0].Value)
	assert.True(t, keys[0].Disabled)
	assert.Equal(t, "b", keys[1].Value)

	rs.Edit("Value", int64(10))
	frame(t, in, rs, s)
	assert.Equal(t, map[string]int{"a": 10, "b": 2}, s.Scores)

	rs.Click("Add")
	frame(t, in, rs, s)
	_, ok := rs.Find("Key (Text):")
	require.True(t, ok)
	_, ok = rs.Find("Value (Number):")
	require.True(t, ok)

	rs.Edit("Key (Text):", "c").Edit("Value (Number):", int64(3)).Click("Add New Object")
	frame(t, in, rs, s)
	assert.Equal(t, 3, s.Scores["c"])
	frame(t, in, rs, s)
	_, ok = rs.Find("Key (Text):")
	assert.False(t, ok)

	rs.Click("Add")
	frame(t, in, rs, s)
	rs.Edit("Key (Text):", "b").Edit("Value (Number):", int64(9)).Click("Add New Object")
	frame(t, in, rs, s)
	assert.Equal(t, 2, s.Scores["b"])
	frame(t, in, rs, s)
	staged, ok := rs.Find("Key (Text):")
	require.True(t, ok)
	assert.Equal(t, "b", staged.Value)

	rs.Click("Remove")
	frame(t, in, rs, s)
	assert.Len(t, s.Scores, 3)
	assert.Contains(t, rs.Confirms, "You're going to remove this key.")

	rs.Click("Remove").Answer(true)
	frame(t, in, rs, s)
	assert.Equal(t, map[string]int{"b": 2, "c": 3}, s.Scores)

	rs.Click("Clear").Answer(true)
	frame(t, in, rs, s)
	assert.Empty(t, s.Scores)
	assert.Contains(t, rs.Confirms, "You're going to clear this dictionary.")
}

type ptrBag struct {
	L *[]int
	M *map[string]int
	A *[3]int
	N *[]int
}

func TestPointerCollections(t *testing.T) {
	in, rs := newTestInspector(nil)
	l := []int{1, 2}
	m := map[string]int{"a": 1}
	a := [3]int{4, 5, 6}
	b := &ptrBag{L: &l, M: &m, A: &a}
	frame(t, in, rs, b)
	folds := rs.Labels(record.FoldoutRow)
	assert.Contains(t, folds, "0~1")
	assert.Contains(t, folds, "0~2")
	assert.Contains(t, rs.Labels(record.LabelRow), "Size: 3")
	assert.Contains(t, rs.Labels(record.LabelRow), "Size: 1")
	require.NotNil(t, b.N)
	assert.Empty(t, *b.N)

	rs.Click("0~1")
	frame(t, in, rs, b)
	rs.Edit("Element 1", int64(7))
	frame(t, in, rs, b)
	assert.Equal(t, []int{1, 7}, *b.L)

	rs.Edit("Size", int64(3))
	frame(t, in, rs, b)
	assert.Equal(t, []int{1, 7, 0}, *b.L)

	rs.Click("0~1").Click("0~2")
	frame(t, in, rs, b)
	rs.Edit("Element 2", int64(9))
	frame(t, in, rs, b)
	assert.Equal(t, [3]int{4, 5, 9}, *b.A)
	assert.Same(t, &a, b.A)

	rs.Click("0")
	frame(t, in, rs, b)
	rs.Edit("Value", int64(10))
	frame(t, in, rs, b)
	assert.Equal(t, 10, (*b.M)["a"])
}

type grid struct {
	Rows [][]int
}

func TestNestedElementDepth(t *testing.T) {
	in, rs := newTestInspector(nil)
	g := &grid{Rows: [][]int{{1}, {2}}}
	frame(t, in, rs, g)
	rs.Click("0~1")
	frame(t, in, rs, g)
	row, ok := rs.Find("Element 0")
	require.True(t, ok)
	assert.Equal(t, record.FoldoutRow, row.Kind)
	assert.Equal(t, 2, row.Indent)

	rs.Click("0")
	frame(t, in, rs, g)
	var cells []record.Row
	for _, r := range rs.FindAll("Element 0") {
		if r.Kind == record.FieldRow {
			cells = append(cells, r)
		}
	}
	require.Len(t, cells, 1)
	assert.Equal(t, 4, cells[0].Indent)
	assert.Equal(t, int64(1), cells[0].Value)
}
