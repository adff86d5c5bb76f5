package factory

import (
	"github.com/automoto/followhead/archetypes"
	"github.com/automoto/followhead/components"
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SnackBarParams describes one followed panel.
type SnackBarParams struct {
	Name   string
	Follow headfollow.Config
	Spawn  mgl64.Vec3
	Scale  mgl64.Vec3
}

// CreateSnackBar spawns a panel that follows camera. The follower starts on the
// first UpdateFollowers; its completion is published as a WarmupFinished event.
func CreateSnackBar(ecs *ecs.ECS, camera headfollow.CameraProvider, p SnackBarParams) *donburi.Entry {
	bar := archetypes.SnackBar.Spawn(ecs)

	components.Transform.SetValue(bar, components.TransformData{
		Body: *headfollow.NewBody(p.Spawn, p.Scale),
	})
	transform := components.Transform.Get(bar)

	follower := headfollow.NewFollower(p.Follow, camera, transform)
	entity := bar.Entity()
	world := ecs.World
	follower.OnWarmupFinished(func() {
		components.WarmupFinished.Publish(world, components.WarmupFinishedEvent{
			Entity: entity,
			Name:   p.Name,
		})
	})

	components.Follower.SetValue(bar, components.FollowerData{Follower: follower})
	return bar
}
