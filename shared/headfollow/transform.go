package headfollow

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the read/write surface of the followed object in world space.
type Transform interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Forward() mgl64.Vec3
	SetForward(f mgl64.Vec3)
	Scale() mgl64.Vec3
	SetScale(s mgl64.Vec3)
}

// Body is a plain in-memory Transform.
type Body struct {
	Pos      mgl64.Vec3
	Rotation mgl64.Quat
	Size     mgl64.Vec3
}

// NewBody returns a body at position with identity rotation and the given scale.
func NewBody(position, scale mgl64.Vec3) *Body {
	return &Body{
		Pos:      position,
		Rotation: mgl64.QuatIdent(),
		Size:     scale,
	}
}

func (b *Body) Position() mgl64.Vec3     { return b.Pos }
func (b *Body) SetPosition(p mgl64.Vec3) { b.Pos = p }
func (b *Body) Forward() mgl64.Vec3      { return b.Rotation.Rotate(WorldForward) }
func (b *Body) Scale() mgl64.Vec3        { return b.Size }
func (b *Body) SetScale(s mgl64.Vec3)    { b.Size = s }

// SetForward rotates the body to face f, keeping it upright. A zero vector is ignored.
func (b *Body) SetForward(f mgl64.Vec3) {
	if q, ok := LookRotation(f, WorldUp); ok {
		b.Rotation = q
	}
}

// LookRotation returns the rotation whose local +Z points along forward and whose local
// +Y is as close to up as possible. ok is false for a zero forward.
func LookRotation(forward, up mgl64.Vec3) (mgl64.Quat, bool) {
	f := normalizeOrZero(forward)
	if f.Len() == 0 {
		return mgl64.QuatIdent(), false
	}

	right := normalizeOrZero(up.Cross(f))
	if right.Len() == 0 {
		// Looking straight along up: any roll is as good as another.
		return mgl64.QuatBetweenVectors(WorldForward, f).Normalize(), true
	}
	u := f.Cross(right)

	m := mgl64.Mat3FromCols(right, u, f)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize(), true
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = math.Max(0, math.Min(1, t))
	return a.Add(b.Sub(a).Mul(t))
}
