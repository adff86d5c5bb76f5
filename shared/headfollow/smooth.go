package headfollow

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// SmoothDamp moves current toward target with a critically damped spring. smoothTime
// is roughly the time to reach the target; velocity carries over between calls and
// must belong to this one smoothed quantity.
func SmoothDamp(current, target mgl64.Vec3, velocity *mgl64.Vec3, smoothTime, dt float64) mgl64.Vec3 {
	if smoothTime <= 0 {
		*velocity = mgl64.Vec3{}
		return target
	}
	if dt <= 0 {
		return current
	}

	spring := harmonica.NewSpring(dt, 2/smoothTime, 1.0)

	var out mgl64.Vec3
	for i := range out {
		out[i], velocity[i] = spring.Update(current[i], velocity[i], target[i])
	}
	return out
}
