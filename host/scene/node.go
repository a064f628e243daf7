// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"reflect"

	"cogentcore.org/deepinspect/host"
)

// Node is an object in the scene that holds an ordered list of
// components, the first of which is always its [Transform].
type Node struct {
	host.ObjectBase

	// Active is whether the node and its components take part in the scene.
	Active bool

	components []host.Component
}

// NewNode returns a new active node with the given name and a [Transform].
func NewNode(name string) *Node {
	n := &Node{Active: true}
	n.SetName(name)
	n.AddComponent(NewTransform())
	return n
}

// IsActive returns whether the node is active.
func (n *Node) IsActive() bool { return n.Active }

// AddComponent attaches the given component to the node and returns it.
func (n *Node) AddComponent(c host.Component) host.Component {
	if a, ok := c.(host.Attacher); ok {
		a.SetNode(n)
	}
	n.components = append(n.components, c)
	return c
}

// Transform returns the transform of the node.
func (n *Node) Transform() *Transform {
	return n.components[0].(*Transform)
}

// Component returns the first component of the given type, or nil.
func (n *Node) Component(typ reflect.Type) host.Component {
	for _, c := range n.components {
		if reflect.TypeOf(c) == typ {
			return c
		}
	}
	return nil
}
