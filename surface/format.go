// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"image/color"
	"reflect"
	"strconv"
	"strings"
)

// Format returns the display text of a field value of the given widget kind.
func Format(w Widget, value any) string {
	switch w {
	case Bool:
		if b, ok := value.(bool); ok && b {
			return "[x]"
		}
		return "[ ]"
	case Text, TextArea, TextBuffer:
		s, _ := value.(string)
		return strconv.Quote(s)
	case Matrix:
		return strings.ReplaceAll(fmt.Sprint(value), "\n", " | ")
	case Color32:
		if c, ok := value.(color.RGBA); ok {
			return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
		}
	case Reference:
		if value == nil {
			return "None"
		}
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "None"
		}
		if n, ok := value.(interface{ Name() string }); ok {
			return fmt.Sprintf("%s (%s)", n.Name(), reflect.TypeOf(value).Elem().Name())
		}
	}
	return fmt.Sprint(value)
}
