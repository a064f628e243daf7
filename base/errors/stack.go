// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Debug is whether errors created by [Wrap] record a stack trace.
var Debug = true

// Verbose is whether [Error.Error] includes the recorded stack trace.
var Verbose = false

// Stack returns the stack trace of the caller as a slice of
// "file:line function" strings, skipping the given number of frames.
func Stack(skip int) []string {
	callers := make([]uintptr, 10)
	n := runtime.Callers(skip+1, callers)
	// Return now to avoid processing the zero Frame that would
	// otherwise be returned by frames.Next below.
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(callers[:n])
	res := []string{}
	for {
		frame, more := frames.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program, not the
		// low-level language code.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		res = append(res, fmt.Sprintf("%s:%d %s", filepath.Base(frame.File), frame.Line, shortFunc(frame.Function)))
		if !more {
			break
		}
	}
	return res
}

// shortFunc strips the package path from a fully qualified function name.
func shortFunc(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
