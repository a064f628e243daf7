// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image/color"
)

// Color is a linear float32 RGBA color with components in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// NewColor returns a new [Color] from the given components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromRGBA converts a 32-bit color to a [Color].
func ColorFromRGBA(c color.RGBA) Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// AsRGBA converts the color to a 32-bit color, clamping each component.
func (c Color) AsRGBA() color.RGBA {
	cv := func(f float32) uint8 { return uint8(Clamp(f, 0, 1)*255 + 0.5) }
	return color.RGBA{cv(c.R), cv(c.G), cv(c.B), cv(c.A)}
}

func (c Color) String() string {
	return fmt.Sprintf("RGBA(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
