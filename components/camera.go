package components

import (
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the simulated head-mounted camera
type CameraData struct {
	Position mgl64.Vec3
	Yaw      float64 // radians around world up, 0 looks down +Z
	Pitch    float64 // radians, positive looks up

	// Idle sway offsets on top of Yaw/Pitch
	Sway      bool
	SwayTime  float64
	SwayYaw   float64
	SwayPitch float64
}

var Camera = donburi.NewComponentType[CameraData]()

// Pose returns the head pose including sway.
func (c *CameraData) Pose() headfollow.Pose {
	return headfollow.PoseFromAngles(c.Position, c.Yaw+c.SwayYaw, c.Pitch+c.SwayPitch)
}
