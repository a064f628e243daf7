// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import "cogentcore.org/deepinspect/surface"

// DisabledStack tracks nested disabled regions so that the surface
// is only switched when the first disabled region starts and when
// the last one ends.
type DisabledStack struct {
	Surface surface.Surface

	stack []bool
	count int
}

// Begin starts a region that is disabled if disabled is true.
// Every Begin must be matched by an [DisabledStack.End].
func (d *DisabledStack) Begin(disabled bool) {
	d.stack = append(d.stack, disabled)
	if !disabled {
		return
	}
	d.count++
	if d.count == 1 {
		d.Surface.SetDisabled(true)
	}
}

// End ends the innermost region.
func (d *DisabledStack) End() {
	if len(d.stack) == 0 {
		return
	}
	disabled := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	if !disabled {
		return
	}
	d.count--
	if d.count == 0 {
		d.Surface.SetDisabled(false)
	}
}

// Active returns whether any enclosing region is disabled.
func (d *DisabledStack) Active() bool {
	return d.count > 0
}

// Depth returns the number of open regions.
func (d *DisabledStack) Depth() int {
	return len(d.stack)
}
