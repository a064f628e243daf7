// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record provides a scripted [surface.Surface] that records
// every widget drawn in a frame and replays queued user interactions.
package record

import (
	"fmt"
	"strings"

	"cogentcore.org/deepinspect/surface"
)

// Kind is the kind of a recorded [Row].
type Kind string

const (
	FieldRow   Kind = "field"
	FoldoutRow Kind = "foldout"
	ToggleRow  Kind = "toggle"
	ButtonRow  Kind = "button"
	LabelRow   Kind = "label"
)

// Row is one widget drawn in a frame.
type Row struct {
	Kind     Kind
	Label    string
	Widget   surface.Widget
	Value    any
	Indent   int
	Box      int
	Disabled bool
	ReadOnly bool
}

func (r Row) String() string {
	s := strings.Repeat("  ", r.Indent) + string(r.Kind) + " " + r.Label
	if r.Kind == FieldRow {
		s += fmt.Sprintf(" = %v", r.Value)
	}
	if r.Disabled {
		s += " (disabled)"
	}
	return s
}

// Surface is a scripted, recording [surface.Surface].
// Queued interactions are matched by label and consumed by the first
// matching widget that is drawn enabled.
type Surface struct {

	// Rows are the widgets drawn since the last call to [Surface.Frame].
	Rows []Row

	// Confirms are the messages of all confirmations asked.
	Confirms []string

	// DisabledCalls counts the calls to SetDisabled.
	DisabledCalls int

	edits    map[string][]any
	clicks   map[string]int
	answers  []bool
	disabled bool
	box      int
}

var _ surface.Surface = (*Surface)(nil)

// New returns a new empty recording surface.
func New() *Surface {
	return &Surface{edits: map[string][]any{}, clicks: map[string]int{}}
}

// Frame starts a new frame, clearing the recorded rows.
func (s *Surface) Frame() {
	s.Rows = nil
	s.box = 0
}

// Edit queues an edit of the next enabled field with the given label.
func (s *Surface) Edit(label string, v any) *Surface {
	s.edits[label] = append(s.edits[label], v)
	return s
}

// Click queues a click on the next enabled button, toggle or foldout
// with the given label.
func (s *Surface) Click(label string) *Surface {
	s.clicks[label]++
	return s
}

// Answer queues the answer to the next confirmation.
// Confirmations without a queued answer are declined.
func (s *Surface) Answer(ok bool) *Surface {
	s.answers = append(s.answers, ok)
	return s
}

// Pending returns whether any queued interaction has not been consumed.
func (s *Surface) Pending() bool {
	for _, e := range s.edits {
		if len(e) > 0 {
			return true
		}
	}
	for _, c := range s.clicks {
		if c > 0 {
			return true
		}
	}
	return len(s.answers) > 0
}

// IsDisabled returns whether widgets are currently drawn disabled.
func (s *Surface) IsDisabled() bool {
	return s.disabled
}

func (s *Surface) add(r Row) {
	r.Box = s.box
	r.Disabled = s.disabled
	s.Rows = append(s.Rows, r)
}

func (s *Surface) click(label string) bool {
	if s.disabled || s.clicks[label] == 0 {
		return false
	}
	s.clicks[label]--
	return true
}

func (s *Surface) Field(label string, w surface.Widget, value any, opts surface.FieldOptions) (any, bool) {
	s.add(Row{Kind: FieldRow, Label: label, Widget: w, Value: value, Indent: opts.Indent, ReadOnly: opts.ReadOnly})
	if s.disabled || opts.ReadOnly || len(s.edits[label]) == 0 {
		return value, false
	}
	v := s.edits[label][0]
	s.edits[label] = s.edits[label][1:]
	return v, true
}

// Foldouts can be opened and closed while disabled.
func (s *Surface) Foldout(label string, open bool, indent int) bool {
	s.add(Row{Kind: FoldoutRow, Label: label, Value: open, Indent: indent})
	if s.clicks[label] > 0 {
		s.clicks[label]--
		return !open
	}
	return open
}

func (s *Surface) Toggle(label string, on bool, indent int) bool {
	s.add(Row{Kind: ToggleRow, Label: label, Value: on, Indent: indent})
	if s.click(label) {
		return !on
	}
	return on
}

func (s *Surface) Button(label string, indent int) bool {
	s.add(Row{Kind: ButtonRow, Label: label, Indent: indent})
	return s.click(label)
}

func (s *Surface) Label(text string, indent int) {
	s.add(Row{Kind: LabelRow, Label: text, Indent: indent})
}

func (s *Surface) Confirm(title, message, ok, cancel string) bool {
	s.Confirms = append(s.Confirms, message)
	if len(s.answers) == 0 {
		return false
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *Surface) BeginBox() { s.box++ }

func (s *Surface) EndBox() {
	if s.box > 0 {
		s.box--
	}
}

func (s *Surface) SetDisabled(disabled bool) {
	s.DisabledCalls++
	s.disabled = disabled
}

// Find returns the first row with the given label.
func (s *Surface) Find(label string) (Row, bool) {
	for _, r := range s.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return Row{}, false
}

// FindAll returns all rows with the given label.
func (s *Surface) FindAll(label string) []Row {
	var res []Row
	for _, r := range s.Rows {
		if r.Label == label {
			res = append(res, r)
		}
	}
	return res
}

// Count returns the number of rows with the given label.
func (s *Surface) Count(label string) int {
	return len(s.FindAll(label))
}

// Labels returns the labels of all rows of the given kind,
// or of all rows if kind is "".
func (s *Surface) Labels(kind Kind) []string {
	var res []string
	for _, r := range s.Rows {
		if kind == "" || r.Kind == kind {
			res = append(res, r.Label)
		}
	}
	return res
}

// String returns the rows of the frame one per line.
func (s *Surface) String() string {
	var b strings.Builder
	for _, r := range s.Rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}
