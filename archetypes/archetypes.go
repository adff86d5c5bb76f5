package archetypes

import (
	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Headset = newArchetype(
		tags.Headset,
		components.Camera,
	)
	SnackBar = newArchetype(
		tags.SnackBar,
		components.Transform,
		components.Follower,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
