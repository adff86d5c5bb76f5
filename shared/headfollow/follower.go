package headfollow

import (
	"errors"
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrCameraUnavailable is returned by Start when there is no camera to follow.
var ErrCameraUnavailable = errors.New("headfollow: camera unavailable")

// Follower keeps one Transform in front of the camera.
type Follower struct {
	cfg    Config
	camera CameraProvider
	body   Transform
	seq    *Sequencer

	positionVelocity mgl64.Vec3
	forwardVelocity  mgl64.Vec3
	initialPosition  mgl64.Vec3
	initialScale     mgl64.Vec3

	started          bool
	inactive         bool // no camera at start; never tracks
	warmedUp         bool
	canFollow        bool
	followingEnabled bool

	finished Signal
}

// NewFollower creates a follower for body. Nothing moves until Start.
func NewFollower(cfg Config, camera CameraProvider, body Transform) *Follower {
	f := &Follower{
		cfg:              cfg,
		camera:           camera,
		body:             body,
		canFollow:        true,
		followingEnabled: true,
	}
	f.seq = newSequencer(&f.cfg, f)
	return f
}

// Start resolves the camera and begins the warm-up. Without a camera it logs a warning,
// leaves the object untouched and returns ErrCameraUnavailable; the follower then stays
// inactive for good. Calling Start again has no effect.
func (f *Follower) Start() error {
	if f.started {
		if f.inactive {
			return ErrCameraUnavailable
		}
		return nil
	}
	f.started = true

	if f.camera == nil {
		f.inactive = true
	} else if _, ok := f.camera.CameraPose(); !ok {
		f.inactive = true
	}
	if f.inactive {
		log.Printf("Warning: no camera to follow; the object will stay where it is")
		return ErrCameraUnavailable
	}

	f.seq.Start()
	return nil
}

// Update advances the follower by dt seconds: tracking first, then the warm-up.
func (f *Follower) Update(dt float64) {
	if !f.started || f.inactive {
		return
	}

	if f.canFollow && f.followingEnabled && f.warmedUp {
		f.apply(f.cfg.Smooth, dt)
	}
	f.seq.Tick(dt)
}

// apply writes one position and facing update.
func (f *Follower) apply(doSmooth bool, dt float64) {
	cam, ok := f.camera.CameraPose()
	if !ok {
		return
	}

	if !f.cfg.StopUpdatingPosition {
		pos := f.cfg.DesiredPosition(cam)
		if f.cfg.LockY {
			pos[1] = f.initialPosition.Y()
		}
		if doSmooth {
			pos = SmoothDamp(f.body.Position(), pos, &f.positionVelocity, f.cfg.FollowSmoothTime, dt)
		}
		f.body.SetPosition(pos)
	}

	if !f.cfg.StopUpdatingDirection {
		forward, ok := f.cfg.DesiredFacing(cam, f.body.Position())
		if !ok {
			return
		}
		if doSmooth {
			forward = SmoothDamp(f.body.Forward(), forward, &f.forwardVelocity, f.cfg.LookAtSmoothTime, dt)
		}
		f.body.SetForward(forward)
	}
}

func (f *Follower) beginWarmup() {
	f.initialScale = f.body.Scale()
	f.body.SetScale(mgl64.Vec3{})
}

func (f *Follower) snap() {
	cam, ok := f.camera.CameraPose()
	if ok {
		f.initialPosition = f.cfg.DesiredPosition(cam)
	} else {
		f.initialPosition = f.body.Position()
	}
	f.warmedUp = true

	if f.cfg.UpdateAfterWarmup {
		f.apply(false, 0)
	}
	f.body.SetPosition(f.initialPosition)
}

func (f *Follower) reveal(progress float64) {
	if progress >= 1 {
		f.body.SetScale(f.initialScale)
		return
	}
	// Undershooting curves stop at zero scale
	f.body.SetScale(Lerp(mgl64.Vec3{}, f.initialScale, progress))
}

func (f *Follower) finishWarmup() {
	f.finished.Fire()
}

// OnWarmupFinished registers fn to run once, when the reveal animation ends.
func (f *Follower) OnWarmupFinished(fn func()) {
	f.finished.Add(fn)
}

// StopFollowing freezes the object where it is.
func (f *Follower) StopFollowing() { f.canFollow = false }

// ResumeFollowing undoes StopFollowing.
func (f *Follower) ResumeFollowing() { f.canFollow = true }

// CanFollow reports the StopFollowing/ResumeFollowing gate.
func (f *Follower) CanFollow() bool { return f.canFollow }

// SetFollowingEnabled sets the second, independent tracking gate.
func (f *Follower) SetFollowingEnabled(enabled bool) { f.followingEnabled = enabled }

// FollowingEnabled reports the gate set by SetFollowingEnabled.
func (f *Follower) FollowingEnabled() bool { return f.followingEnabled }

func (f *Follower) SetDistanceFromCamera(d float64) { f.cfg.DistanceFromCamera = d }

func (f *Follower) SetDownOffset(o float64) { f.cfg.DownOffset = o }

// Config exposes the live configuration for field-by-field changes.
func (f *Follower) Config() *Config { return &f.cfg }

// State returns the warm-up step.
func (f *Follower) State() WarmupState { return f.seq.State() }

// WarmedUp reports whether the initial pose was captured and tracking may run.
func (f *Follower) WarmedUp() bool { return f.warmedUp }

// Active reports whether the follower found a camera at start.
func (f *Follower) Active() bool { return f.started && !f.inactive }

// InitialPosition returns the target position captured at the end of the delay.
func (f *Follower) InitialPosition() mgl64.Vec3 { return f.initialPosition }

// InitialScale returns the scale the object had before the warm-up hid it.
func (f *Follower) InitialScale() mgl64.Vec3 { return f.initialScale }
