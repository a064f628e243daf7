// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text provides a [surface.Surface] that writes one frame as
// an indented, styled text dump. It never reports user interaction.
package text

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/deepinspect/surface"
	"github.com/muesli/termenv"
)

// Surface writes every widget as one line of text.
type Surface struct {

	// ExpandAll draws every foldout open.
	ExpandAll bool

	out      *termenv.Output
	disabled bool
	box      int
}

var _ surface.Surface = (*Surface)(nil)

// New returns a new text surface writing to the given writer,
// using color when the writer is a terminal that supports it.
func New(w io.Writer, opts ...termenv.OutputOption) *Surface {
	return &Surface{out: termenv.NewOutput(w, opts...)}
}

func (s *Surface) line(indent int, text string) {
	pad := strings.Repeat("  ", indent+s.box)
	st := s.out.String(text)
	if s.disabled {
		st = st.Faint()
	}
	fmt.Fprintln(s.out, pad+st.String())
}

func (s *Surface) Field(label string, w surface.Widget, value any, opts surface.FieldOptions) (any, bool) {
	name := s.out.String(label + ":").Bold().String()
	if s.disabled || opts.ReadOnly {
		name = s.out.String(label + ":").Faint().String()
	}
	s.line(opts.Indent, name+" "+surface.Format(w, value))
	return value, false
}

func (s *Surface) Foldout(label string, open bool, indent int) bool {
	open = open || s.ExpandAll
	mark := "▸ "
	if open {
		mark = "▾ "
	}
	s.line(indent, mark+s.out.String(label).Foreground(termenv.ANSICyan).String())
	return open
}

func (s *Surface) Toggle(label string, on bool, indent int) bool {
	s.line(indent, surface.Format(surface.Bool, on)+" "+label)
	return on
}

func (s *Surface) Button(label string, indent int) bool {
	s.line(indent, s.out.String("["+label+"]").Foreground(termenv.ANSIBlue).String())
	return false
}

func (s *Surface) Label(text string, indent int) {
	s.line(indent, text)
}

// Confirm always declines.
func (s *Surface) Confirm(title, message, ok, cancel string) bool {
	s.line(0, s.out.String(title+": "+message).Foreground(termenv.ANSIYellow).String())
	return false
}

func (s *Surface) BeginBox() { s.box++ }

func (s *Surface) EndBox() {
	if s.box > 0 {
		s.box--
	}
}

func (s *Surface) SetDisabled(disabled bool) { s.disabled = disabled }
