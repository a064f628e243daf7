// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Rect is an axis aligned rectangle given by its minimum corner and size.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Max returns the maximum corner of the rectangle.
func (r Rect) Max() Vector2 {
	return Vec2(r.X+r.Width, r.Y+r.Height)
}

// Contains returns whether the point is inside the rectangle.
func (r Rect) Contains(p Vector2) bool {
	mx := r.Max()
	return p.X >= r.X && p.Y >= r.Y && p.X < mx.X && p.Y < mx.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("(x:%g, y:%g, width:%g, height:%g)", r.X, r.Y, r.Width, r.Height)
}

// RectInt is a [Rect] with integer coordinates.
type RectInt struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

func (r RectInt) String() string {
	return fmt.Sprintf("(x:%d, y:%d, width:%d, height:%d)", r.X, r.Y, r.Width, r.Height)
}

// Bounds is an axis aligned bounding box given by its center and extents
// (half of its size).
type Bounds struct {
	Center  Vector3
	Extents Vector3
}

// Min returns the minimum corner of the box.
func (b Bounds) Min() Vector3 {
	return b.Center.Add(b.Extents.MulScalar(-1))
}

// Max returns the maximum corner of the box.
func (b Bounds) Max() Vector3 {
	return b.Center.Add(b.Extents)
}

func (b Bounds) String() string {
	return fmt.Sprintf("Center: %v, Extents: %v", b.Center, b.Extents)
}

// BoundsInt is an integer box given by its minimum corner and size.
type BoundsInt struct {
	Position Vector3i
	Size     Vector3i
}

func (b BoundsInt) String() string {
	return fmt.Sprintf("Position: %v, Size: %v", b.Position, b.Size)
}
