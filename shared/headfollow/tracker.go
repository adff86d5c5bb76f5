package headfollow

import "github.com/go-gl/mathgl/mgl64"

// DesiredPosition returns where the object should sit for the camera pose.
//
// With KeepConstantDistance the camera forward is flattened onto the horizontal plane,
// so looking up or down does not pull the object closer. That mode also clears LockY;
// the two constraints are mutually exclusive and the clear happens on every call.
func (c *Config) DesiredPosition(cam Pose) mgl64.Vec3 {
	dir := cam.Forward
	if c.KeepConstantDistance {
		dir = normalizeOrZero(mgl64.Vec3{dir.X(), 0, dir.Z()})
		c.LockY = false
	}

	return cam.Position.
		Add(dir.Mul(c.DistanceFromCamera)).
		Add(WorldUp.Mul(-c.DownOffset))
}

// DesiredFacing returns the unit direction the object should face from objectPos.
// ok is false when the object sits on the look-at point and no direction exists.
func (c *Config) DesiredFacing(cam Pose, objectPos mgl64.Vec3) (mgl64.Vec3, bool) {
	target := cam.Position
	if c.FreezeYForLookAt {
		target[1] = objectPos.Y()
	}

	dir := normalizeOrZero(target.Sub(objectPos))
	if dir.Len() == 0 {
		return dir, false
	}
	if !c.Mirrored {
		dir = dir.Mul(-1)
	}
	return dir, true
}
