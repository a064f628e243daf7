// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

// ObjectBase is the framework root of all host objects.
// Embed it to make a type an [Object].
type ObjectBase struct {
	name string
	tag  string
}

func (o *ObjectBase) Name() string        { return o.name }
func (o *ObjectBase) SetName(name string) { o.name = name }

// Tag returns the tag used to find the object.
func (o *ObjectBase) Tag() string       { return o.tag }
func (o *ObjectBase) SetTag(tag string) { o.tag = tag }

// CompareTag returns whether the object has the given tag.
func (o *ObjectBase) CompareTag(tag string) bool { return o.tag == tag }

func (o *ObjectBase) String() string {
	return o.name
}

// ComponentBase is the framework root of all components.
// Components start enabled.
type ComponentBase struct {
	ObjectBase
	disabled bool
	node     Object
}

func (c *ComponentBase) Enabled() bool           { return !c.disabled }
func (c *ComponentBase) SetEnabled(enabled bool) { c.disabled = !enabled }

// Node returns the node that the component is attached to.
func (c *ComponentBase) Node() Object { return c.node }

// SetNode attaches the component to the given node.
func (c *ComponentBase) SetNode(node Object) {
	c.node = node
	if c.name == "" && node != nil {
		c.name = node.Name()
	}
}

// Activator is implemented by nodes that can be deactivated.
type Activator interface {
	IsActive() bool
}

// BehaviourBase is the framework root of scripted components.
type BehaviourBase struct {
	ComponentBase
}

// ActiveAndEnabled returns whether the behaviour is enabled
// and its node, if any, is active.
func (b *BehaviourBase) ActiveAndEnabled() bool {
	if !b.Enabled() {
		return false
	}
	if a, ok := b.node.(Activator); ok {
		return a.IsActive()
	}
	return true
}

// Attacher is implemented by components that can be attached to a node.
type Attacher interface {
	SetNode(node Object)
}
