// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import "cogentcore.org/deepinspect/base/errors"

var (
	// ErrUnreadable is returned when reading a member fails.
	ErrUnreadable = errors.New("member is not readable")

	// ErrUncommittable is returned when an edited value can not be written back.
	ErrUncommittable = errors.New("edit can not be committed")

	// ErrUndrawable is returned for values of types that can not be drawn.
	ErrUndrawable = errors.New("type is not drawable")

	// ErrInvocation is returned when calling a method fails.
	ErrInvocation = errors.New("method invocation failed")
)
