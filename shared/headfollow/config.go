package headfollow

import "github.com/tanema/gween/ease"

// Config holds the follower's tunables. Fields may be changed while the follower runs;
// the new values apply from the next frame.
type Config struct {
	// Positioning
	DistanceFromCamera   float64 // metres in front of the head
	DownOffset           float64 // metres below the head, along world up
	Mirrored             bool    // face away from the camera instead of toward it
	KeepConstantDistance bool    // follow the horizontal heading only; forces LockY off

	// Smoothing
	Smooth           bool    // false writes targets directly
	FollowSmoothTime float64 // seconds, position
	LookAtSmoothTime float64 // seconds, facing

	// Constraints
	FreezeYForLookAt      bool // look at the head at the object's own height
	LockY                 bool // keep the Y captured after warm-up
	StopUpdatingPosition  bool
	StopUpdatingDirection bool

	// Warm-up
	WarmupDelay       float64 // seconds before the snap
	UpdateAfterWarmup bool    // apply one unsmoothed update at the snap
	RevealDuration    float64 // seconds of scale-in
	RevealCurve       ease.TweenFunc
}

// DefaultConfig returns the stock snack bar settings.
func DefaultConfig() Config {
	return Config{
		DistanceFromCamera: 1.0,
		DownOffset:         0,
		Smooth:             true,
		FollowSmoothTime:   0.5,
		LookAtSmoothTime:   0.5,
		LockY:              true,
		WarmupDelay:        0.1,
		UpdateAfterWarmup:  true,
		RevealDuration:     1.0,
		RevealCurve:        SmoothStep,
	}
}
