// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/base/labels"
	"cogentcore.org/deepinspect/base/reflectx"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Policy is an override of how a member is drawn.
type Policy string

const (
	// Hidden members are not drawn.
	Hidden Policy = "hidden"

	// NameOnly members are drawn as their name without a value,
	// for members whose getters are known to be unsafe to call.
	NameOnly Policy = "name-only"

	// ReadOnly members are drawn disabled.
	ReadOnly Policy = "read-only"
)

// Override applies a [Policy] to a member. An empty Type matches
// the member on all types.
type Override struct {

	// Type is the short type name, such as "scene.NavAgent".
	Type string `toml:"type"`

	// Member is the name of the field or property.
	Member string `toml:"member"`

	Policy Policy `toml:"policy"`
}

// Settings are the user settings of the inspector.
type Settings struct {

	// Debug logs diagnostics about unreadable members, rejected
	// edits and failed calls at the warning level.
	Debug bool `toml:"debug"`

	// ShowTypes adds the type of each member to its header.
	ShowTypes bool `toml:"show_types"`

	// QuaternionAsEuler edits rotations as euler angles in degrees.
	QuaternionAsEuler bool `toml:"quaternion_as_euler"`

	// PageSize is the number of elements in a page of a list or map.
	PageSize int `toml:"page_size" default:"50"`

	// TextFieldMax is the length from which text is edited in a text area.
	TextFieldMax int `toml:"text_field_max" default:"60"`

	// TextMax is the length above which text is not drawn.
	TextMax int `toml:"text_max" default:"15000"`

	// ActionVerbs are the first words of methods that are never properties.
	ActionVerbs []string `toml:"action_verbs"`

	// FrameworkPackages are the import paths of the host framework.
	// Plain structs declared in them are drawn always expanded.
	FrameworkPackages []string `toml:"framework_packages"`

	// FrameworkRoots are the short names of the host base types.
	// Members promoted from them are inherited.
	FrameworkRoots []string `toml:"framework_roots"`

	// DangerousTypes are the short names of types that are only
	// opened after confirmation.
	DangerousTypes []string `toml:"dangerous_types"`

	Overrides []Override `toml:"overrides"`
}

// NewSettings returns new settings with default values.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the default values of the settings.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
	s.ActionVerbs = []string{"Add", "Append", "Apply", "Clear", "Clone", "Close", "Create", "Delete",
		"Describe", "Destroy", "Insert", "Load", "Open", "Pause", "Play", "Pop", "Push", "Refresh",
		"Remove", "Reset", "Resume", "Save", "Spawn", "Start", "Stop", "Update"}
	s.FrameworkPackages = []string{"cogentcore.org/deepinspect/host", "cogentcore.org/deepinspect/host/scene"}
	s.FrameworkRoots = []string{"host.ObjectBase", "host.ComponentBase", "host.BehaviourBase"}
	s.DangerousTypes = []string{"scene.ParticleSystem", "scene.VideoPlayer"}
	s.Overrides = []Override{
		{Member: "Enabled", Policy: Hidden},
		{Member: "ActiveAndEnabled", Policy: Hidden},
		{Member: "Name", Policy: Hidden},
		{Member: "Tag", Policy: Hidden},
		{Type: "scene.Camera", Member: "LayerCullDistances", Policy: NameOnly},
		{Type: "scene.NavAgent", Member: "Destination", Policy: ReadOnly},
		{Type: "scene.NavAgent", Member: "IsStopped", Policy: NameOnly},
		{Type: "scene.NavAgent", Member: "RemainingDistance", Policy: NameOnly},
		{Type: "scene.MeshFilter", Member: "Mesh", Policy: NameOnly},
		{Type: "scene.Renderer", Member: "Material", Policy: NameOnly},
		{Type: "scene.Renderer", Member: "Materials", Policy: NameOnly},
	}
}

// PolicyFor returns the override policy of the given member of the
// given type, or "" if there is none. Type specific overrides take
// precedence over overrides for all types.
func (s *Settings) PolicyFor(typ reflect.Type, member string) Policy {
	tn := labels.ShortTypeName(typ)
	res := Policy("")
	for _, o := range s.Overrides {
		if o.Member != member {
			continue
		}
		if o.Type == tn {
			return o.Policy
		}
		if o.Type == "" {
			res = o.Policy
		}
	}
	return res
}

// IsDangerous returns whether the given type is only opened after confirmation.
func (s *Settings) IsDangerous(typ reflect.Type) bool {
	return slices.Contains(s.DangerousTypes, labels.ShortTypeName(typ))
}

// IsFrameworkPackage returns whether the given import path is a
// package of the host framework.
func (s *Settings) IsFrameworkPackage(path string) bool {
	return slices.Contains(s.FrameworkPackages, path)
}

// IsFrameworkRoot returns whether the given type is a host base type.
func (s *Settings) IsFrameworkRoot(typ reflect.Type) bool {
	return slices.Contains(s.FrameworkRoots, labels.ShortTypeName(typ))
}

// DefaultSettingsFile returns the default path of the settings file.
func DefaultSettingsFile() string {
	return errors.Log1(homedir.Expand(filepath.Join("~", ".config", "deepinspect", "settings.toml")))
}

// Open reads the settings from the given TOML file on top of the
// current values.
func (s *Settings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(toml.Unmarshal(b, s))
}

// Save writes the settings to the given TOML file, creating its
// directory as needed.
func (s *Settings) Save(filename string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return errors.Wrap(err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(os.WriteFile(filename, b, 0666))
}

// LoadSettings returns the default settings updated from the given
// file. A missing file is not an error.
func LoadSettings(filename string) (*Settings, error) {
	s := NewSettings()
	if filename == "" {
		return s, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	return s, s.Open(filename)
}

// WatchSettings calls fn with newly loaded settings whenever the
// given file is written, until ctx is done. It watches the directory
// of the file so that editors that replace the file are handled.
func WatchSettings(ctx context.Context, filename string, fn func(s *Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err)
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return errors.Wrap(err)
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(filename) {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					s, err := LoadSettings(filename)
					if err != nil {
						slog.Warn("reloading settings", "file", filename, "err", err)
						continue
					}
					fn(s)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("watching settings", "err", err)
			}
		}
	}()
	return nil
}
