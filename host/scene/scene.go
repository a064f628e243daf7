// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides an in-memory host engine: a scene of nodes
// with attached components, a set of named assets, and undo.
package scene

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/undo"
)

// Scene is a flat list of nodes together with the assets they reference.
// It implements [host.Model].
type Scene struct {
	Name  string
	Nodes []*Node

	assets []host.Object
	undo   *undo.Mgr
}

var _ host.Model = (*Scene)(nil)

// New returns a new empty scene with the given name.
func New(name string) *Scene {
	return &Scene{Name: name, undo: undo.New()}
}

// AddNode adds a new active node with the given name and a [Transform]
// and returns it.
func (s *Scene) AddNode(name string) *Node {
	n := NewNode(name)
	s.Nodes = append(s.Nodes, n)
	return n
}

// RemoveNode removes the given node from the scene.
func (s *Scene) RemoveNode(n *Node) {
	s.Nodes = slices.DeleteFunc(s.Nodes, func(o *Node) bool { return o == n })
}

// FindByName returns the first node with the given name, or nil.
func (s *Scene) FindByName(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name() == name {
			return n
		}
	}
	return nil
}

// AddAsset adds the given object to the assets that can be loaded by name.
func (s *Scene) AddAsset(obj host.Object) {
	s.assets = append(s.assets, obj)
}

// Assets returns the assets of the given type, or all assets if typ is nil.
func (s *Scene) Assets(typ reflect.Type) []host.Object {
	var res []host.Object
	for _, a := range s.assets {
		if typ == nil || assetIs(a, typ) {
			res = append(res, a)
		}
	}
	return res
}

func assetIs(a host.Object, typ reflect.Type) bool {
	at := reflect.TypeOf(a)
	return at == typ || (at.Kind() == reflect.Pointer && at.Elem() == typ) || (typ.Kind() == reflect.Interface && at.Implements(typ))
}

func (s *Scene) Components(node host.Object) []host.Component {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return nil
	}
	return n.components
}

func (s *Scene) Active(node host.Object) bool {
	n, ok := node.(*Node)
	return ok && n != nil && n.Active
}

func (s *Scene) SetActive(node host.Object, active bool) {
	if n, ok := node.(*Node); ok && n != nil {
		s.RecordUndo(n, "Set Active")
		n.Active = active
	}
}

// LoadAsset returns the asset of the given type and name. Node types
// are resolved against the nodes of the scene.
func (s *Scene) LoadAsset(typ reflect.Type, name string) (host.Object, error) {
	if typ == reflect.TypeFor[*Node]() || typ == reflect.TypeFor[Node]() {
		if n := s.FindByName(name); n != nil {
			return n, nil
		}
	}
	for _, a := range s.Assets(typ) {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, errors.Errorf("scene: no asset of type %v named %q", typ, name)
}

func (s *Scene) RecordUndo(obj any, action string) {
	if err := s.undo.Save(action, obj); err != nil {
		slog.Debug("scene: could not record undo", "action", action, "err", err)
	}
}

// Undo undoes the last recorded action and returns it.
func (s *Scene) Undo() string {
	return s.undo.Undo()
}

// Redo redoes the last undone action and returns it.
func (s *Scene) Redo() string {
	return s.undo.Redo()
}

func (s *Scene) String() string {
	return fmt.Sprintf("Scene %s (%d nodes)", s.Name, len(s.Nodes))
}
