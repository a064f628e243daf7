// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import "cogentcore.org/deepinspect/enums"

var _TeamValues = []Team{TeamNone, TeamRed, TeamBlue}

var _TeamNames = map[Team]string{TeamNone: `None`, TeamRed: `Red`, TeamBlue: `Blue`}

var _TeamDescs = map[Team]string{TeamNone: `TeamNone is no team.`, TeamRed: `TeamRed is the red team.`, TeamBlue: `TeamBlue is the blue team.`}

// String returns the string representation of this Team value.
func (i Team) String() string { return enums.String(i, _TeamNames) }

// SetString sets the Team value from its string representation,
// and returns an error if the string is invalid.
func (i *Team) SetString(s string) error { return enums.SetString(i, s, _TeamNames, "Team") }

// Int64 returns the Team value as an int64.
func (i Team) Int64() int64 { return int64(i) }

// SetInt64 sets the Team value from an int64.
func (i *Team) SetInt64(in int64) { *i = Team(in) }

// Desc returns the description of the Team value.
func (i Team) Desc() string { return enums.Desc(i, _TeamDescs) }

// TeamValues returns all possible values for the type Team.
func TeamValues() []Team { return _TeamValues }

// Values returns all possible values for the type Team.
func (i Team) Values() []enums.Enum { return enums.Values(_TeamValues) }
