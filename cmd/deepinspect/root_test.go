// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/deepinspect/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the root command with the given arguments and a settings
// file in a temporary directory, returning its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config := filepath.Join(t.TempDir(), "settings.toml")
	return runWith(t, config, args...)
}

func runWith(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", config, "--color=false", "-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Main Camera")
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "Effects")
	assert.Contains(t, out, "Health: 10")
	assert.Contains(t, out, "▸ Particle System")

	out, err = run(t, "dump", "Player")
	require.NoError(t, err)
	assert.NotContains(t, out, "Main Camera\n")
	assert.Contains(t, out, "[Reset Position]")

	_, err = run(t, "dump", "Nobody")
	assert.ErrorContains(t, err, `no node named "Nobody"`)
}

func TestDumpExpand(t *testing.T) {
	out, err := run(t, "dump", "--expand", "Effects")
	require.NoError(t, err)
	assert.Contains(t, out, inspect.WarningTitle+": "+inspect.DangerousMessage)
	assert.NotContains(t, out, "URL:")

	out, err = run(t, "dump", "-e", "Player")
	require.NoError(t, err)
	assert.Contains(t, out, "Player Methods:")
	assert.Contains(t, out, "[Call Heal]")
}

func TestStatic(t *testing.T) {
	out, err := run(t, "static", "Spawner")
	require.NoError(t, err)
	assert.Contains(t, out, "Spawn Limit:")
	assert.Contains(t, out, "[Remove demo.Spawner]")

	_, err = run(t, "static", "Spawnr")
	assert.ErrorContains(t, err, "Did you mean demo.Spawner?")

	_, err = run(t, "static")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "demo.Spawner\t4 statics")
	assert.Contains(t, out, "demo.Stats\t0 statics")
}

func TestSettings(t *testing.T) {
	config := filepath.Join(t.TempDir(), "nested", "settings.toml")
	out, err := runWith(t, config, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "page_size = 50")
	assert.NoFileExists(t, config)

	_, err = runWith(t, config, "--debug", "settings", "--save")
	require.NoError(t, err)
	b, err := os.ReadFile(config)
	require.NoError(t, err)
	assert.Contains(t, string(b), "debug = true")

	require.NoError(t, os.WriteFile(config, []byte("page_size = 7\n"), 0666))
	out, err = runWith(t, config, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "page_size = 7")

	require.NoError(t, os.WriteFile(config, []byte("page_size = \n"), 0666))
	_, err = runWith(t, config, "settings")
	assert.ErrorContains(t, err, "loading settings")
}
