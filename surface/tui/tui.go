// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui provides an interactive terminal [surface.Surface] built on
// bubbletea. The frame function is run again after every key press, and
// the interaction with the focused row is reported by that row's widget.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/deepinspect/enums"
	"cogentcore.org/deepinspect/surface"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Frame draws one frame on the given surface.
type Frame func(s surface.Surface)

type rowKind int

const (
	fieldRow rowKind = iota
	foldoutRow
	toggleRow
	buttonRow
	labelRow
)

type row struct {
	kind     rowKind
	label    string
	widget   surface.Widget
	value    any
	indent   int
	disabled bool
	readOnly bool
}

// editable returns whether the row can be edited as text.
func (r row) editable() bool {
	if r.kind != fieldRow || r.disabled || r.readOnly {
		return false
	}
	switch r.widget {
	case surface.Int, surface.Uint, surface.Float, surface.Complex, surface.Text, surface.TextArea, surface.Reference:
		return true
	}
	return false
}

// Styles are the lipgloss styles used to draw rows.
type Styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Foldout  lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	Confirm  lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Foldout:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Disabled: lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Confirm:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// question is a confirmation asked by the frame.
type question struct {
	title, message, ok, cancel string
}

// Model is the bubbletea model of the inspector. It implements
// [surface.Surface] for the frame function it runs.
type Model struct {
	Title  string
	Styles Styles

	frame  Frame
	rows   []row
	cursor int
	width  int
	height int

	// interaction with the row at pendingRow, consumed by the next frame
	pendingRow   int
	pendingValue any
	hasPending   bool

	// the interaction of the last frame, replayed once a confirmation it asked is answered
	lastRow   int
	lastValue any
	lastHas   bool

	editing bool
	input   string
	status  string

	asking  *question
	answers map[string]bool

	disabled bool
	box      int
}

var _ surface.Surface = (*Model)(nil)

// New returns a new model that runs the given frame function.
func New(title string, frame Frame) *Model {
	m := &Model{Title: title, Styles: DefaultStyles(), frame: frame, pendingRow: -1, answers: map[string]bool{}, height: 24}
	m.run()
	return m
}

// Run runs the model as a full screen program until the user quits.
func Run(title string, frame Frame) error {
	_, err := tea.NewProgram(New(title, frame), tea.WithAltScreen()).Run()
	return err
}

// run runs the frame function once, consuming the pending interaction.
func (m *Model) run() {
	m.rows = m.rows[:0]
	m.disabled = false
	m.box = 0
	m.frame(m)
	m.lastRow, m.lastValue, m.lastHas = m.pendingRow, m.pendingValue, m.hasPending
	m.hasPending = false
	m.pendingRow = -1
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.asking != nil {
			return m.updateConfirm(msg)
		}
		if m.editing {
			return m.updateEdit(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.cursor = max(m.cursor-1, 0)
		case "down", "j":
			m.cursor = min(m.cursor+1, max(len(m.rows)-1, 0))
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.rows)-1, 0)
		case "enter", " ":
			m.activate()
		case "e":
			m.startEdit()
		case "r":
			m.run()
		}
	}
	return m, nil
}

// activate interacts with the focused row.
func (m *Model) activate() {
	if m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	switch r.kind {
	case foldoutRow:
		m.setPending(!r.value.(bool))
	case toggleRow:
		if !r.disabled {
			m.setPending(!r.value.(bool))
		}
	case buttonRow:
		if !r.disabled {
			m.setPending(true)
		}
	case fieldRow:
		switch {
		case r.disabled || r.readOnly:
		case r.widget == surface.Bool:
			b, _ := r.value.(bool)
			m.setPending(!b)
		case r.widget == surface.Enum:
			if e, ok := r.value.(enums.Enum); ok {
				vals := e.Values()
				if i := enums.Index(e); len(vals) > 0 {
					m.setPending(vals[(i+1)%len(vals)])
				}
			}
		default:
			m.startEdit()
			return
		}
	}
	if m.hasPending {
		m.run()
	}
}

func (m *Model) setPending(v any) {
	m.pendingRow = m.cursor
	m.pendingValue = v
	m.hasPending = true
}

func (m *Model) startEdit() {
	if m.cursor >= len(m.rows) || !m.rows[m.cursor].editable() {
		return
	}
	r := m.rows[m.cursor]
	m.editing = true
	m.input = ""
	if r.widget != surface.Reference {
		m.input = fmt.Sprint(r.value)
	}
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
	case tea.KeyEnter:
		m.editing = false
		r := m.rows[m.cursor]
		v, err := parse(r.widget, m.input)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.setPending(v)
		m.run()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			rs := []rune(m.input)
			m.input = string(rs[:len(rs)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.answers[m.asking.message] = true
	case "n", "esc":
		m.answers[m.asking.message] = false
	default:
		return m, nil
	}
	m.asking = nil
	m.pendingRow, m.pendingValue, m.hasPending = m.lastRow, m.lastValue, m.lastHas
	m.run()
	return m, nil
}

// parse parses text typed into a field of the given widget kind.
func parse(w surface.Widget, s string) (any, error) {
	switch w {
	case surface.Int:
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	case surface.Uint:
		return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	case surface.Float:
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	case surface.Complex:
		return strconv.ParseComplex(strings.TrimSpace(s), 128)
	}
	return s, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.Styles.Title.Render(m.Title))
	b.WriteByte('\n')
	avail := max(m.height-3, 1)
	start := 0
	if m.cursor >= avail {
		start = m.cursor - avail + 1
	}
	for i := start; i < len(m.rows) && i < start+avail; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteByte('\n')
	}
	switch {
	case m.asking != nil:
		b.WriteString(m.Styles.Confirm.Render(fmt.Sprintf("%s: %s [y] %s / [n] %s", m.asking.title, m.asking.message, m.asking.ok, m.asking.cancel)))
	case m.editing:
		b.WriteString("> " + m.input + "▏")
	default:
		st := m.status
		if st == "" {
			st = "↑/↓ move • enter activate • e edit • r refresh • q quit"
		}
		b.WriteString(m.Styles.Status.Render(st))
	}
	return b.String()
}

func (m *Model) renderRow(i int) string {
	r := m.rows[i]
	var s string
	switch r.kind {
	case fieldRow:
		s = r.label + ": " + surface.Format(r.widget, r.value)
	case foldoutRow:
		mark := "▸ "
		if r.value.(bool) {
			mark = "▾ "
		}
		s = m.Styles.Foldout.Render(mark + r.label)
	case toggleRow:
		s = surface.Format(surface.Bool, r.value) + " " + r.label
	case buttonRow:
		s = m.Styles.Button.Render("[" + r.label + "]")
	default:
		s = r.label
	}
	if r.disabled || r.readOnly {
		s = m.Styles.Disabled.Render(s)
	}
	if i == m.cursor {
		s = m.Styles.Cursor.Render(s)
	}
	return strings.Repeat("  ", r.indent) + s
}

// add records a row and returns its interaction for this frame, if any.
func (m *Model) add(r row) (any, bool) {
	r.disabled = m.disabled
	r.indent += m.box
	m.rows = append(m.rows, r)
	if m.hasPending && m.pendingRow == len(m.rows)-1 {
		return m.pendingValue, true
	}
	return nil, false
}

func (m *Model) Field(label string, w surface.Widget, value any, opts surface.FieldOptions) (any, bool) {
	v, ok := m.add(row{kind: fieldRow, label: label, widget: w, value: value, indent: opts.Indent, readOnly: opts.ReadOnly})
	if !ok || m.disabled || opts.ReadOnly {
		return value, false
	}
	return v, true
}

func (m *Model) Foldout(label string, open bool, indent int) bool {
	if v, ok := m.add(row{kind: foldoutRow, label: label, value: open, indent: indent}); ok {
		return v.(bool)
	}
	return open
}

func (m *Model) Toggle(label string, on bool, indent int) bool {
	if v, ok := m.add(row{kind: toggleRow, label: label, value: on, indent: indent}); ok && !m.disabled {
		return v.(bool)
	}
	return on
}

func (m *Model) Button(label string, indent int) bool {
	_, ok := m.add(row{kind: buttonRow, label: label, indent: indent})
	return ok && !m.disabled
}

func (m *Model) Label(text string, indent int) {
	m.add(row{kind: labelRow, label: text, indent: indent})
}

// Confirm returns the answer the user gave to the same message, asking
// it after the frame when there is none yet.
func (m *Model) Confirm(title, message, ok, cancel string) bool {
	if a, has := m.answers[message]; has {
		delete(m.answers, message)
		return a
	}
	m.asking = &question{title: title, message: message, ok: ok, cancel: cancel}
	return false
}

func (m *Model) BeginBox() { m.box++ }

func (m *Model) EndBox() {
	if m.box > 0 {
		m.box--
	}
}

func (m *Model) SetDisabled(disabled bool) { m.disabled = disabled }
