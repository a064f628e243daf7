// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"slices"
)

// Keyframe is one key of a [Curve].
type Keyframe struct {
	Time  float32
	Value float32
}

// Curve is a piecewise linear animation curve.
// Keys are kept sorted by time.
type Curve struct {
	Keys []Keyframe
}

// AddKey inserts a key, keeping the keys sorted by time,
// and returns its index.
func (c *Curve) AddKey(time, value float32) int {
	i, _ := slices.BinarySearchFunc(c.Keys, time, func(k Keyframe, t float32) int {
		switch {
		case k.Time < t:
			return -1
		case k.Time > t:
			return 1
		}
		return 0
	})
	c.Keys = slices.Insert(c.Keys, i, Keyframe{time, value})
	return i
}

// Evaluate returns the value of the curve at the given time,
// holding the end values outside of the key range.
func (c Curve) Evaluate(time float32) float32 {
	n := len(c.Keys)
	switch {
	case n == 0:
		return 0
	case time <= c.Keys[0].Time:
		return c.Keys[0].Value
	case time >= c.Keys[n-1].Time:
		return c.Keys[n-1].Value
	}
	for i := 1; i < n; i++ {
		k0, k1 := c.Keys[i-1], c.Keys[i]
		if time > k1.Time {
			continue
		}
		span := k1.Time - k0.Time
		if span == 0 {
			return k1.Value
		}
		return Lerp(k0.Value, k1.Value, (time-k0.Time)/span)
	}
	return c.Keys[n-1].Value
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve(%d keys)", len(c.Keys))
}
