// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/math32"
	"github.com/jinzhu/copier"
)

// Transform is the position, rotation and scale of a node.
type Transform struct {
	host.ComponentBase
	Position math32.Vector3
	Rotation math32.Quat
	Scale    math32.Vector3
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{Rotation: math32.QuatIdentity(), Scale: math32.Vector3Scalar(1)}
}

// ResetPosition sets the position to the origin.
func (t *Transform) ResetPosition() { t.Position = math32.Vector3{} }

// ResetRotation sets the rotation to the identity.
func (t *Transform) ResetRotation() { t.Rotation = math32.QuatIdentity() }

// ResetScale sets the scale to one.
func (t *Transform) ResetScale() { t.Scale = math32.Vector3Scalar(1) }

// Translate moves the position by the given offset.
func (t *Transform) Translate(offset math32.Vector3) { t.Position = t.Position.Add(offset) }

// Camera renders the scene from the node.
type Camera struct {
	host.ComponentBase
	FieldOfView float32 `default:"60"`
	Near        float32 `default:"0.3"`
	Far         float32 `default:"1000"`
	Background  math32.Color
	Viewport    math32.Rect
	Projection  math32.Matrix4 `edit:"-"`

	layerCullDistances []float32
}

// NewCamera returns a camera with default settings.
func NewCamera() *Camera {
	return &Camera{FieldOfView: 60, Near: 0.3, Far: 1000, Background: math32.NewColor(0.19, 0.3, 0.47, 1),
		Viewport: math32.Rect{Width: 1, Height: 1}, Projection: math32.Identity4(), layerCullDistances: make([]float32, 32)}
}

// LayerCullDistances returns a copy of the per layer culling distances.
func (c *Camera) LayerCullDistances() []float32 {
	return append([]float32(nil), c.layerCullDistances...)
}

func (c *Camera) SetLayerCullDistances(d []float32) {
	if len(d) != 32 {
		panic("scene.Camera: there must be exactly 32 layer cull distances")
	}
	c.layerCullDistances = append([]float32(nil), d...)
}

// Mesh is a named mesh asset.
type Mesh struct {
	host.ObjectBase
	Vertices []math32.Vector3
	Bounds   math32.Bounds
}

// Material is a named material asset.
type Material struct {
	host.ObjectBase
	Color   math32.Color
	Texture string
}

// instantiate returns a deep copy of the given shared asset,
// named as an instance of it.
func instantiate[T any, PT interface {
	*T
	host.Object
}](asset PT) PT {
	inst := PT(new(T))
	errors.Log(copier.CopyWithOption(inst, asset, copier.Option{DeepCopy: true}))
	inst.SetName(asset.Name() + " (Instance)")
	if tg, ok := any(asset).(interface{ Tag() string }); ok {
		if st, ok := any(inst).(interface{ SetTag(tag string) }); ok {
			st.SetTag(tg.Tag())
		}
	}
	return inst
}

// MeshFilter holds the mesh of a node.
type MeshFilter struct {
	host.ComponentBase
	SharedMesh *Mesh
	mesh       *Mesh
}

// Mesh returns an instance of the shared mesh, creating it on first access.
func (m *MeshFilter) Mesh() *Mesh {
	if m.mesh == nil && m.SharedMesh != nil {
		m.mesh = instantiate(m.SharedMesh)
	}
	return m.mesh
}

func (m *MeshFilter) SetMesh(mesh *Mesh) { m.mesh = mesh }

// Renderer draws the mesh of a node with its materials.
type Renderer struct {
	host.ComponentBase
	SharedMaterials []*Material
	CastShadows     bool `default:"true"`
	materials       []*Material
}

// Material returns the instance of the first material, creating the
// material instances on first access.
func (r *Renderer) Material() *Material {
	mats := r.Materials()
	if len(mats) == 0 {
		return nil
	}
	return mats[0]
}

func (r *Renderer) SetMaterial(m *Material) {
	r.materials = []*Material{m}
}

// Materials returns instances of all shared materials,
// creating them on first access.
func (r *Renderer) Materials() []*Material {
	if r.materials == nil {
		for _, sm := range r.SharedMaterials {
			if sm == nil {
				continue
			}
			r.materials = append(r.materials, instantiate(sm))
		}
	}
	return r.materials
}

func (r *Renderer) SetMaterials(m []*Material) { r.materials = m }

// ParticleSystem emits particles. Its state changes on every access
// while playing, so it should not be opened in the inspector.
type ParticleSystem struct {
	host.ComponentBase
	Rate      float32 `default:"10"`
	Lifetime  math32.Curve
	StartSize float32 `default:"1"`
	playing   bool
}

// Play starts emitting.
func (p *ParticleSystem) Play() { p.playing = true }

// Stop stops emitting.
func (p *ParticleSystem) Stop() { p.playing = false }

func (p *ParticleSystem) IsPlaying() bool { return p.playing }

// VideoPlayer plays a video clip on a render target.
type VideoPlayer struct {
	host.ComponentBase
	URL     string
	Loop    bool
	Volume  float32 `default:"1"`
	handle  uintptr
	started bool
}

// Frame returns the current frame of the clip, which requires
// the player to have been started.
func (v *VideoPlayer) Frame() int64 {
	if !v.started {
		panic("scene.VideoPlayer: frame requested before the player started")
	}
	return int64(v.handle)
}

// NavAgent moves its node towards a destination.
type NavAgent struct {
	host.ComponentBase
	Speed        float32 `default:"3.5"`
	StopDistance float32

	destination math32.Vector3
	position    math32.Vector3
	stopped     bool
	onMesh      bool
}

func (a *NavAgent) Destination() math32.Vector3 { return a.destination }

func (a *NavAgent) SetDestination(d math32.Vector3) {
	if !a.onMesh {
		panic("scene.NavAgent: destination set on an agent that is not on a nav mesh")
	}
	a.destination = d
}

// IsStopped returns whether the agent is stopped, which panics
// when the agent is not on a nav mesh.
func (a *NavAgent) IsStopped() bool {
	if !a.onMesh {
		panic("scene.NavAgent: stopped state requested on an agent that is not on a nav mesh")
	}
	return a.stopped
}

func (a *NavAgent) SetIsStopped(stopped bool) { a.stopped = stopped }

// RemainingDistance returns the distance left to the destination.
func (a *NavAgent) RemainingDistance() float32 {
	if !a.onMesh {
		panic("scene.NavAgent: remaining distance requested on an agent that is not on a nav mesh")
	}
	d := a.destination.Add(a.position.MulScalar(-1))
	return math32.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Resume resumes movement along the current path.
func (a *NavAgent) Resume() { a.stopped = false }

// Warp places the agent on the nav mesh at the given position.
func (a *NavAgent) Warp(position math32.Vector3) {
	a.position = position
	a.onMesh = true
}
