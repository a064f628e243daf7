// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the string representation of the given
// enum value with the given map.
func String[T ~int64 | ~int32 | ~int](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation,
// which is matched case-insensitively against the given map.
func SetString[T ~int64 | ~int32 | ~int](i *T, s string, m map[T]string, typeName string) error {
	for v, str := range m {
		if strings.EqualFold(str, s) {
			*i = v
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value, or
// its string representation if it has no description.
func Desc[T ~int64 | ~int32 | ~int](i T, descs map[T]string) string {
	if d, ok := descs[i]; ok {
		return d
	}
	return fmt.Sprint(int64(i))
}

// Values returns the given enum values as a slice of [Enum].
func Values[T Enum](vals []T) []Enum {
	res := make([]Enum, len(vals))
	for i, v := range vals {
		res[i] = v
	}
	return res
}

// Strings returns the string representations of all of the
// values of the type of the given enum value.
func Strings(e Enum) []string {
	vals := e.Values()
	res := make([]string, len(vals))
	for i, v := range vals {
		res[i] = v.String()
	}
	return res
}

// Index returns the index of the given enum value within
// its [Enum.Values], or -1 if it is not one of them.
func Index(e Enum) int {
	for i, v := range e.Values() {
		if v.Int64() == e.Int64() {
			return i
		}
	}
	return -1
}

// First returns the first value of the type of the given enum value,
// or e itself if the type declares no values.
func First(e Enum) Enum {
	vals := e.Values()
	if len(vals) == 0 {
		return e
	}
	return vals[0]
}
