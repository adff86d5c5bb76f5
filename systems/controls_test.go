package systems

import (
	"math"
	"testing"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/go-gl/mathgl/mgl64"
)

func newFollowerData() *components.FollowerData {
	body := headfollow.NewBody(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	return &components.FollowerData{Follower: headfollow.NewFollower(headfollow.DefaultConfig(), nil, body)}
}

func TestApplyControlsToggles(t *testing.T) {
	f := newFollowerData()
	before := *f.Config()

	applyControls(f, held(
		cfg.ActionToggleFollow,
		cfg.ActionToggleEnabled,
		cfg.ActionToggleSmooth,
		cfg.ActionToggleMirrored,
		cfg.ActionToggleConstant,
		cfg.ActionToggleLockY,
	), 0)

	c := f.Config()
	if f.CanFollow() || f.FollowingEnabled() {
		t.Fatalf("expected both follow gates closed")
	}
	if c.Smooth == before.Smooth || c.Mirrored == before.Mirrored ||
		c.KeepConstantDistance == before.KeepConstantDistance || c.LockY == before.LockY {
		t.Fatalf("expected every flag flipped, got %+v", c)
	}

	// Held keys do not toggle again
	in := held(cfg.ActionToggleFollow)
	in.Previous = in.Current
	applyControls(f, in, 0)
	if f.CanFollow() {
		t.Fatalf("a held key must not toggle twice")
	}

	applyControls(f, held(cfg.ActionToggleFollow), 0)
	if !f.CanFollow() {
		t.Fatalf("expected a second press to resume following")
	}
}

func TestApplyControlsAdjustments(t *testing.T) {
	cases := []struct {
		name         string
		action       cfg.ActionID
		start        float64
		wantDistance float64
		wantOffset   float64
	}{
		{"push away", cfg.ActionDistanceUp, 1, 1 + cfg.Tuning.DistanceStep, 0},
		{"pull closer", cfg.ActionDistanceDown, 1, 1 - cfg.Tuning.DistanceStep, 0},
		{"clamped far", cfg.ActionDistanceUp, cfg.Tuning.MaxDistance, cfg.Tuning.MaxDistance, 0},
		{"clamped near", cfg.ActionDistanceDown, cfg.Tuning.MinDistance, cfg.Tuning.MinDistance, 0},
		{"raise", cfg.ActionOffsetUp, 1, 1, -cfg.Tuning.OffsetStep},
		{"lower", cfg.ActionOffsetDown, 1, 1, cfg.Tuning.OffsetStep},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFollowerData()
			f.SetDistanceFromCamera(c.start)

			applyControls(f, held(c.action), 1)

			got := f.Config()
			if math.Abs(got.DistanceFromCamera-c.wantDistance) > 1e-9 {
				t.Fatalf("expected distance %v, got %v", c.wantDistance, got.DistanceFromCamera)
			}
			if math.Abs(got.DownOffset-c.wantOffset) > 1e-9 {
				t.Fatalf("expected down offset %v, got %v", c.wantOffset, got.DownOffset)
			}
		})
	}
}

func TestRestartRequested(t *testing.T) {
	e := newTestECS()
	if RestartRequested(e) {
		t.Fatalf("no restart without input")
	}
	getOrCreateInput(e).Current[cfg.ActionRestart] = true
	if !RestartRequested(e) {
		t.Fatalf("expected the restart press to be reported")
	}
}
