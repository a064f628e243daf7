// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/host"
	"cogentcore.org/deepinspect/host/scene"
	"cogentcore.org/deepinspect/math32"
	"cogentcore.org/deepinspect/types"
)

// Team is the team a [Player] plays for.
type Team int32

const (
	// TeamNone is no team.
	TeamNone Team = iota

	// TeamRed is the red team.
	TeamRed

	// TeamBlue is the blue team.
	TeamBlue
)

// Stats are the combat stats of a [Player].
type Stats struct {
	Armor    int
	Strength float32 `default:"1"`
	Tint     color.RGBA
}

// Player is a scripted component with a mix of member kinds.
type Player struct {
	host.BehaviourBase
	Health    int
	Team      Team
	Stats     Stats
	Items     []int
	Inventory map[string]int
	Target    *scene.Node
	Notes     strings.Builder
	Jump      math32.Curve
	Bio       string

	level int
	gold  float64
}

// Level returns the level of the player.
func (p *Player) Level() int { return p.level }

func (p *Player) SetLevel(level int) error {
	if level < 1 {
		return errors.Errorf("level must be positive, not %d", level)
	}
	p.level = level
	return nil
}

// SetGold is write-only.
func (p *Player) SetGold(gold float64) { p.gold = gold }

// Heal adds the given amount to the health of the player and returns it.
func (p *Player) Heal(amount int) int {
	p.Health += amount
	return p.Health
}

// Describe returns the stats of the player.
func (p *Player) Describe() Stats { return p.Stats }

// Greet returns a greeting, or an error for an empty name.
func (p *Player) Greet(name string) (string, error) {
	if name == "" {
		return "", errors.New("no name given")
	}
	return "Hello, " + name, nil
}

// Buff applies the given stats on top of the current ones.
func (p *Player) Buff(s Stats) {
	p.Stats.Armor += s.Armor
	p.Stats.Strength += s.Strength
}

// Crash panics.
func (p *Player) Crash() { panic("crash requested") }

// TakeItems removes and returns the last n items, or nil if there are none.
func (p *Player) TakeItems(n int) []int {
	n = min(n, len(p.Items))
	if n <= 0 {
		return nil
	}
	taken := p.Items[len(p.Items)-n:]
	p.Items = p.Items[:len(p.Items)-n]
	return taken
}

// Echo returns the given text.
func (p *Player) Echo(text string) string { return text }

// Follow sets the target to the node returned by pick.
func (p *Player) Follow(pick func() *scene.Node) { p.Target = pick() }

// Spawner holds package level spawn settings and is registered
// with its statics in the type registry.
type Spawner struct{}

var (
	// SpawnLimit is the maximum number of spawned nodes.
	SpawnLimit = 8

	// SpawnPoint is where nodes are spawned.
	SpawnPoint = math32.Vec3(0, 1, 0)

	spawned int
)

// Spawn returns the names of n new nodes with the given prefix.
func Spawn(prefix string, n int) ([]string, error) {
	if spawned+n > SpawnLimit {
		return nil, errors.Errorf("spawn limit of %d reached", SpawnLimit)
	}
	names := make([]string, n)
	for i := range names {
		spawned++
		names[i] = fmt.Sprintf("%s %d", prefix, spawned)
	}
	return names, nil
}

// SpawnCount returns the number of spawned nodes.
func SpawnCount() int { return spawned }

func init() {
	types.AddType(types.NewType(&Spawner{}).
		AddVar("SpawnLimit", &SpawnLimit).
		AddVar("SpawnPoint", &SpawnPoint).
		AddFunc("Spawn", Spawn, "prefix", "n").
		AddFunc("SpawnCount", SpawnCount))
	types.AddType(types.NewType(&Stats{}))
}

// New returns a scene with a player, a camera and assets
// that exercise every kind of member the inspector draws.
func New() *scene.Scene {
	s := scene.New("Demo")
	stone := &scene.Material{Color: math32.NewColor(0.5, 0.5, 0.5, 1)}
	stone.SetName("Stone")
	s.AddAsset(stone)
	cube := &scene.Mesh{Bounds: math32.Bounds{Extents: math32.Vector3Scalar(0.5)}}
	cube.SetName("Cube")
	s.AddAsset(cube)

	cam := s.AddNode("Main Camera")
	cam.AddComponent(scene.NewCamera())
	cam.Transform().Position = math32.Vec3(0, 1, -10)

	pn := s.AddNode("Player")
	p := &Player{Health: 10, Team: TeamRed, Stats: Stats{Armor: 5, Strength: 1}, Items: []int{1, 2, 3},
		Inventory: map[string]int{"potion": 2, "arrow": 20}, Bio: "Hero of the demo.", level: 1}
	p.Jump.AddKey(0, 0)
	p.Jump.AddKey(0.5, 2)
	p.Jump.AddKey(1, 0)
	pn.AddComponent(p)
	pn.AddComponent(&scene.MeshFilter{SharedMesh: cube})
	pn.AddComponent(&scene.Renderer{SharedMaterials: []*scene.Material{stone}, CastShadows: true})
	nav := &scene.NavAgent{Speed: 3.5}
	pn.AddComponent(nav)

	fx := s.AddNode("Effects")
	fx.AddComponent(&scene.ParticleSystem{Rate: 10, StartSize: 1})
	fx.AddComponent(&scene.VideoPlayer{URL: "intro.mp4", Volume: 1})

	p.Target = cam
	return s
}
