// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"reflect"
	"testing"

	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() *Scene {
	s := New("Test")
	stone := &Material{Color: math32.White}
	stone.SetName("Stone")
	s.AddAsset(stone)
	cube := &Mesh{Vertices: []math32.Vector3{{}}}
	cube.SetName("Cube")
	s.AddAsset(cube)
	cam := s.AddNode("Main Camera")
	cam.AddComponent(NewCamera())
	pn := s.AddNode("Player")
	pn.AddComponent(&MeshFilter{SharedMesh: cube})
	pn.AddComponent(&Renderer{SharedMaterials: []*Material{stone}})
	pn.AddComponent(&NavAgent{Speed: 1})
	return s
}

func TestScene(t *testing.T) {
	s := testScene()
	require.Len(t, s.Nodes, 2)
	pn := s.FindByName("Player")
	require.NotNil(t, pn)
	comps := s.Components(pn)
	require.Len(t, comps, 4)
	assert.IsType(t, &Transform{}, comps[0])
	nav := comps[3].(*NavAgent)
	assert.Same(t, pn, nav.Node())
	assert.Equal(t, "Player", nav.Name())

	s.SetActive(pn, false)
	assert.False(t, s.Active(pn))
	assert.Equal(t, "Set Active", s.Undo())
	assert.True(t, s.Active(pn))
	assert.Equal(t, "Set Active", s.Redo())
	assert.False(t, s.Active(pn))

	assert.Nil(t, s.Components(nil))
	assert.False(t, s.Active(nil))
	assert.Nil(t, s.FindByName("Nobody"))
}

func TestLoadAsset(t *testing.T) {
	s := testScene()
	m, err := s.LoadAsset(reflect.TypeFor[*Material](), "Stone")
	require.NoError(t, err)
	assert.Equal(t, "Stone", m.Name())
	n, err := s.LoadAsset(reflect.TypeFor[*Node](), "Main Camera")
	require.NoError(t, err)
	assert.Equal(t, "Main Camera", n.Name())
	_, err = s.LoadAsset(reflect.TypeFor[*Mesh](), "Stone")
	assert.Error(t, err)
	assert.Len(t, s.Assets(reflect.TypeFor[host.Object]()), 2)
	assert.Len(t, s.Assets(nil), 2)
}

func TestRecordUndo(t *testing.T) {
	s := testScene()
	tr := s.FindByName("Player").Transform()
	s.RecordUndo(tr, "Set Position")
	tr.Position = math32.Vec3(1, 2, 3)
	assert.Equal(t, "Set Position", s.Undo())
	assert.Equal(t, math32.Vector3{}, tr.Position)
	assert.Equal(t, "Set Position", s.Redo())
	assert.Equal(t, math32.Vec3(1, 2, 3), tr.Position)
}

func TestInstances(t *testing.T) {
	s := testScene()
	pn := s.FindByName("Player")
	r := pn.Component(reflect.TypeFor[*Renderer]()).(*Renderer)
	assert.Equal(t, "Stone (Instance)", r.Material().Name())
	mf := pn.Component(reflect.TypeFor[*MeshFilter]()).(*MeshFilter)
	assert.Equal(t, "Cube (Instance)", mf.Mesh().Name())
	mf.Mesh().Vertices[0].X = 1
	assert.Equal(t, float32(0), mf.SharedMesh.Vertices[0].X)
	assert.Same(t, mf.Mesh(), mf.Mesh())
	nav := pn.Component(reflect.TypeFor[*NavAgent]()).(*NavAgent)
	assert.Panics(t, func() { nav.IsStopped() })
	nav.Warp(math32.Vec3(0, 0, 3))
	assert.InDelta(t, 3, nav.RemainingDistance(), 1e-5)
}
