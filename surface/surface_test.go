// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type named struct{ name string }

func (n *named) Name() string { return n.name }

func TestFormat(t *testing.T) {
	assert.Equal(t, "[x]", Format(Bool, true))
	assert.Equal(t, "[ ]", Format(Bool, false))
	assert.Equal(t, `"a\nb"`, Format(TextArea, "a\nb"))
	assert.Equal(t, "#ff000080", Format(Color32, color.RGBA{255, 0, 0, 128}))
	assert.Equal(t, "None", Format(Reference, nil))
	assert.Equal(t, "None", Format(Reference, (*named)(nil)))
	assert.Equal(t, "Cube (named)", Format(Reference, &named{"Cube"}))
	assert.Equal(t, "12", Format(Int, int64(12)))
}

func TestWidget(t *testing.T) {
	var w Widget
	assert.NoError(t, w.SetString("quat"))
	assert.Equal(t, Quat, w)
	assert.Equal(t, "Quat is a field holding a math32.Quat.", w.Desc())
	assert.Len(t, w.Values(), 26)
	assert.True(t, TextArea.IsText())
	assert.False(t, Enum.IsText())
}
