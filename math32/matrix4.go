// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// String returns the matrix one row per line, tab separated.
func (m Matrix4) String() string {
	var b strings.Builder
	for r := range 4 {
		for c := range 4 {
			if c > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, "%.5f", m.At(r, c))
		}
		if r < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
