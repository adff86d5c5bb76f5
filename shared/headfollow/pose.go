// Package headfollow keeps a world-space UI element in front of a viewer's head.
//
// A Follower repositions and reorients a Transform relative to the pose reported by a
// CameraProvider once per frame. Tracking is preceded by a one-shot warm-up: a short
// delay, a snap to the initial target pose and a scale-in reveal. The package has no
// dependency on ebiten or the ECS so it can be driven by any frame loop.
package headfollow

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// WorldUp is the world's vertical axis. Y-lock and constant-distance mode work
	// against it, never against the camera's own up vector.
	WorldUp = mgl64.Vec3{0, 1, 0}
	// WorldForward is the local forward axis of every transform.
	WorldForward = mgl64.Vec3{0, 0, 1}
	// WorldRight is the local right axis of every transform.
	WorldRight = mgl64.Vec3{1, 0, 0}
)

// Pose is a snapshot of the viewer's head transform for one frame.
type Pose struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3 // unit length
	Up       mgl64.Vec3 // unit length
}

// CameraProvider reports the current head pose. ok is false when no camera exists.
type CameraProvider interface {
	CameraPose() (pose Pose, ok bool)
}

// PoseFromAngles builds a head pose at position looking along yaw (radians around the
// world up axis, 0 = +Z) and pitch (radians, positive looks up).
func PoseFromAngles(position mgl64.Vec3, yaw, pitch float64) Pose {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	forward := mgl64.Vec3{sy * cp, sp, cy * cp}

	// Up tilts with pitch so the basis stays orthonormal.
	up := mgl64.Vec3{-sy * sp, cp, -cy * sp}

	return Pose{
		Position: position,
		Forward:  forward,
		Up:       up,
	}
}

// normalizeOrZero returns v scaled to unit length, or the zero vector when v has no
// usable length.
func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
