package factory

import (
	"github.com/automoto/followhead/archetypes"
	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHeadset spawns the simulated head-mounted camera at eye height.
func CreateHeadset(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	headset := archetypes.Headset.Spawn(ecs)
	components.Camera.SetValue(headset, components.CameraData{
		Position: mgl64.Vec3{x, cfg.Headset.EyeHeight, z},
		Sway:     cfg.Headset.SwayEnabled,
	})
	return headset
}
