// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels provides functions for turning Go names, types and
// values into user-facing labels.
package labels

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/iancoleman/strcase"
)

// TitleName returns the title version of the given field, property or
// type name, as shown next to an edited value: "maxHealth" becomes
// "Max Health". A single leading underscore and a leading "m_" are
// dropped, snake and kebab case are treated as word separators,
// initialisms are kept together ("HTTPServer" becomes "HTTP Server")
// and digits stay attached to the preceding word.
func TitleName(name string) string {
	name = strings.TrimPrefix(name, "_")
	if len(name) >= 2 && (name[0] == 'm' || name[0] == 'M') && name[1] == '_' {
		name = name[2:]
	}
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, "-_.\t ") {
		name = strcase.ToCamel(name)
	}
	split := camelcase.Split(name)
	words := make([]string, 0, len(split))
	for _, w := range split {
		if strings.TrimSpace(w) == "" {
			continue
		}
		if len(words) > 0 && isDigits(w) {
			words[len(words)-1] += w
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return ""
	}
	r := []rune(words[0])
	r[0] = unicode.ToUpper(r[0])
	words[0] = string(r)
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Between returns the text between the first occurrence of start and
// the next occurrence of end after it. It returns text unchanged if
// either marker is empty or cannot be found.
func Between(text, start, end string) string {
	if start == "" || end == "" {
		return text
	}
	i := strings.Index(text, start)
	if i < 0 {
		return text
	}
	i += len(start)
	j := strings.Index(text[i:], end)
	if j < 0 {
		return text
	}
	return text[i : i+j]
}

// PageTitle returns the title of a page of items covering the
// half-open index range [start, end): "50~99", or just "50"
// for a page holding a single item.
func PageTitle(start, end int) string {
	if start == end-1 {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "~" + strconv.Itoa(end-1)
}
