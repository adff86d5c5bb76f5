package systems

import (
	"math"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/automoto/followhead/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHeadset steers the simulated head-mounted camera from input and idle sway.
func UpdateHeadset(ecs *ecs.ECS) {
	entry, ok := tags.Headset.First(ecs.World)
	if !ok {
		return
	}
	steerHeadset(components.Camera.Get(entry), getOrCreateInput(ecs), frameDelta())
}

func steerHeadset(cam *components.CameraData, input *components.InputData, dt float64) {
	turn := cfg.Headset.TurnSpeed * dt
	if input.Pressed(cfg.ActionLookLeft) {
		cam.Yaw -= turn
	}
	if input.Pressed(cfg.ActionLookRight) {
		cam.Yaw += turn
	}
	if input.Pressed(cfg.ActionLookUp) {
		cam.Pitch += turn
	}
	if input.Pressed(cfg.ActionLookDown) {
		cam.Pitch -= turn
	}
	cam.Pitch = math.Max(-cfg.Headset.PitchLimit, math.Min(cfg.Headset.PitchLimit, cam.Pitch))
	cam.Yaw = math.Remainder(cam.Yaw, 2*math.Pi)

	// Walk on the floor plane along the current heading
	sy, cy := math.Sincos(cam.Yaw)
	heading := mgl64.Vec3{sy, 0, cy}
	right := mgl64.Vec3{cy, 0, -sy}
	var move mgl64.Vec3
	if input.Pressed(cfg.ActionMoveForward) {
		move = move.Add(heading)
	}
	if input.Pressed(cfg.ActionMoveBack) {
		move = move.Sub(heading)
	}
	if input.Pressed(cfg.ActionMoveRight) {
		move = move.Add(right)
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		move = move.Sub(right)
	}
	if move.Len() > 0 {
		cam.Position = cam.Position.Add(move.Normalize().Mul(cfg.Headset.StrafeStep * dt))
	}

	if !cam.Sway {
		cam.SwayYaw, cam.SwayPitch = 0, 0
		return
	}
	cam.SwayTime += dt
	phase := 2 * math.Pi * cfg.Headset.SwayFrequency * cam.SwayTime
	cam.SwayYaw = cfg.Headset.SwayYaw * math.Sin(phase)
	cam.SwayPitch = cfg.Headset.SwayPitch * math.Sin(phase*1.7)
}

// worldCamera is the CameraProvider backed by the headset entity. It looks the entity
// up on every call, so a removed headset reads as "no camera".
type worldCamera struct {
	world donburi.World
}

func (w worldCamera) CameraPose() (headfollow.Pose, bool) {
	entry, ok := tags.Headset.First(w.world)
	if !ok {
		return headfollow.Pose{}, false
	}
	return components.Camera.Get(entry).Pose(), true
}

// CameraProvider returns the head pose source for followers in world.
func CameraProvider(world donburi.World) headfollow.CameraProvider {
	return worldCamera{world: world}
}
