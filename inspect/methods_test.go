// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"testing"

	"cogentcore.org/deepinspect/host/scene/demo"
	"cogentcore.org/deepinspect/surface/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodPanel(t *testing.T) {
	in, rs := newTestInspector(nil)
	p := &demo.Player{Health: 10, Stats: demo.Stats{Strength: 1}}
	frame(t, in, rs, p)
	methods, ok := rs.Find("Player Methods:")
	require.True(t, ok)
	assert.Equal(t, false, methods.Value)
	assert.Zero(t, rs.Count("Call Heal"))
	assert.Contains(t, rs.Labels(record.LabelRow), "Gold (This property is not readable)")

	rs.Click("Player Methods:")
	frame(t, in, rs, p)
	buttons := rs.Labels(record.ButtonRow)
	for _, name := range []string{"Buff", "Crash", "Describe", "Echo", "Greet", "Heal", "TakeItems"} {
		assert.Contains(t, buttons, "Call "+name)
	}
	assert.NotContains(t, buttons, "Call Follow")
	assert.NotContains(t, buttons, "Call CompareTag")
	assert.Contains(t, rs.Labels(record.LabelRow), "Heal, Parameters:")

	rs.Edit("Number", int64(5)).Click("Call Heal")
	frame(t, in, rs, p)
	assert.Equal(t, 15, p.Health)
	assert.Contains(t, rs.Labels(record.LabelRow), "Method (Heal) Result: 15")

	rs.Click("Call Crash")
	frame(t, in, rs, p)
	assert.Contains(t, rs.Labels(record.LabelRow), "Method (Crash) Failed: panic: crash requested")
	assert.Contains(t, rs.Labels(record.LabelRow), "Method (Heal) Result: 15")

	rs.Click("Call Greet")
	frame(t, in, rs, p)
	assert.Contains(t, rs.Labels(record.LabelRow), "Method (Greet) Failed: no name given")

	rs.Click("Base Methods")
	frame(t, in, rs, p)
	buttons = rs.Labels(record.ButtonRow)
	assert.Contains(t, buttons, "Call CompareTag")
	assert.Contains(t, buttons, "Call String")
}

type sealedPlayer struct {
	player demo.Player
}

func TestMethodPanelDisabled(t *testing.T) {
	in, rs := newTestInspector(nil)
	s := &sealedPlayer{player: demo.Player{Health: 1}}
	frame(t, in, rs, s)
	rs.Click("Player Methods:")
	frame(t, in, rs, s)
	heal, ok := rs.Find("Call Heal")
	require.True(t, ok)
	assert.True(t, heal.Disabled)

	rs.Click("Call Heal")
	frame(t, in, rs, s)
	assert.Equal(t, 1, s.player.Health)
}
