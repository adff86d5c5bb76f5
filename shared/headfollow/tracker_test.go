package headfollow

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// closeTo compares with an absolute tolerance; mgl64's ApproxEqualThreshold is relative
// and rejects rounding noise next to an expected zero.
func closeTo(got, want mgl64.Vec3, tol float64) bool {
	return got.Sub(want).Len() <= tol
}

func TestDesiredPosition(t *testing.T) {
	cases := []struct {
		name     string
		pos      mgl64.Vec3
		forward  mgl64.Vec3
		distance float64
		down     float64
	}{
		{"origin_plus_z", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, 2, 0.5},
		{"raised_minus_x", mgl64.Vec3{1, 1.7, -3}, mgl64.Vec3{-1, 0, 0}, 1, 0},
		{"looking_down", mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{0, -0.6, 0.8}, 1.5, 0.2},
		{"negative_offset", mgl64.Vec3{2, 0, 2}, mgl64.Vec3{0.6, 0, 0.8}, 0.75, -0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DistanceFromCamera = c.distance
			cfg.DownOffset = c.down
			cam := Pose{Position: c.pos, Forward: c.forward, Up: WorldUp}

			got := cfg.DesiredPosition(cam)
			want := c.pos.Add(c.forward.Mul(c.distance)).Sub(WorldUp.Mul(c.down))
			if !closeTo(got, want, eps) {
				t.Fatalf("expected %v, got %v", want, got)
			}
			if !cfg.LockY {
				t.Fatalf("LockY should be untouched when constant distance is off")
			}
		})
	}
}

func TestDesiredPositionConstantDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeepConstantDistance = true
	cfg.LockY = true
	cfg.DistanceFromCamera = 2
	cfg.DownOffset = 0

	cam := PoseFromAngles(mgl64.Vec3{0, 1.6, 0}, 0.4, -0.7)
	got := cfg.DesiredPosition(cam)

	if cfg.LockY {
		t.Fatalf("LockY should be forced off in constant distance mode")
	}
	if math.Abs(got.Y()-1.6) > eps {
		t.Fatalf("expected height to stay at camera height, got %v", got.Y())
	}
	horizontal := got.Sub(cam.Position)
	if math.Abs(horizontal.Len()-2) > eps {
		t.Fatalf("expected horizontal distance 2, got %v", horizontal.Len())
	}

	// Re-enabling LockY does not survive the next evaluation.
	cfg.LockY = true
	cfg.DesiredPosition(cam)
	if cfg.LockY {
		t.Fatalf("LockY should be cleared on every evaluation")
	}
}

func TestDesiredPositionConstantDistanceLookingStraightUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeepConstantDistance = true
	cfg.DownOffset = 0.25
	cam := Pose{Position: mgl64.Vec3{1, 2, 3}, Forward: WorldUp, Up: mgl64.Vec3{0, 0, -1}}

	got := cfg.DesiredPosition(cam)
	want := mgl64.Vec3{1, 1.75, 3}
	if !closeTo(got, want, eps) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDesiredFacing(t *testing.T) {
	cases := []struct {
		name   string
		cam    mgl64.Vec3
		object mgl64.Vec3
		freeze bool
	}{
		{"in_front", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 2}, false},
		{"below_and_left", mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{-1, 0.8, 1}, false},
		{"below_frozen", mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{-1, 0.8, 1}, true},
		{"far", mgl64.Vec3{10, -3, 4}, mgl64.Vec3{-20, 5, 7}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.FreezeYForLookAt = c.freeze
			cam := Pose{Position: c.cam, Forward: WorldForward, Up: WorldUp}

			facing, ok := cfg.DesiredFacing(cam, c.object)
			if !ok {
				t.Fatalf("expected a facing direction")
			}
			if math.Abs(facing.Len()-1) > 1e-9 {
				t.Fatalf("expected unit facing, got length %v", facing.Len())
			}
			if c.freeze && facing.Y() != 0 {
				t.Fatalf("expected level facing with frozen Y, got %v", facing)
			}

			cfg.Mirrored = true
			mirrored, ok := cfg.DesiredFacing(cam, c.object)
			if !ok {
				t.Fatalf("expected a mirrored facing direction")
			}
			if !closeTo(mirrored, facing.Mul(-1), eps) {
				t.Fatalf("mirrored facing %v should negate %v", mirrored, facing)
			}
		})
	}
}

func TestDesiredFacingPointsAwayFromCamera(t *testing.T) {
	cfg := DefaultConfig()
	cam := Pose{Position: mgl64.Vec3{}, Forward: WorldForward, Up: WorldUp}

	facing, _ := cfg.DesiredFacing(cam, mgl64.Vec3{0, 0, 2})
	if !closeTo(facing, mgl64.Vec3{0, 0, 1}, eps) {
		t.Fatalf("expected +Z facing, got %v", facing)
	}
}

func TestDesiredFacingDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	cam := Pose{Position: mgl64.Vec3{1, 2, 3}, Forward: WorldForward, Up: WorldUp}

	if _, ok := cfg.DesiredFacing(cam, mgl64.Vec3{1, 2, 3}); ok {
		t.Fatalf("expected no facing when the object sits on the camera")
	}

	cfg.FreezeYForLookAt = true
	if _, ok := cfg.DesiredFacing(cam, mgl64.Vec3{1, -5, 3}); ok {
		t.Fatalf("expected no facing when the object is straight below with frozen Y")
	}
}
