package systems

import (
	"math"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls maps the runtime controls onto every follower and the headset.
// Must run AFTER UpdateInput.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := frameDelta()

	EachFollower(ecs, func(_ *donburi.Entry, f *components.FollowerData) {
		applyControls(f, input, dt)
	})

	if input.JustPressed(cfg.ActionToggleSway) {
		if entry, ok := tags.Headset.First(ecs.World); ok {
			cam := components.Camera.Get(entry)
			cam.Sway = !cam.Sway
		}
	}

	if input.JustPressed(cfg.ActionToggleHUD) {
		settings := GetOrCreateSettings(ecs)
		settings.ShowHUD = !settings.ShowHUD
	}

	if input.JustPressed(cfg.ActionSaveSettings) {
		if entry, ok := tags.SnackBar.First(ecs.World); ok {
			if err := SaveFollowerSettings(components.Follower.Get(entry).Config()); err == nil {
				ShowMessage(ecs, cfg.Message.SettingsSaved)
			}
		}
	}
}

// RestartRequested reports whether the restart action was pressed this frame.
func RestartRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).JustPressed(cfg.ActionRestart)
}

func applyControls(f *components.FollowerData, input *components.InputData, dt float64) {
	if input.JustPressed(cfg.ActionToggleFollow) {
		if f.CanFollow() {
			f.StopFollowing()
		} else {
			f.ResumeFollowing()
		}
	}
	if input.JustPressed(cfg.ActionToggleEnabled) {
		f.SetFollowingEnabled(!f.FollowingEnabled())
	}

	c := f.Config()
	if input.JustPressed(cfg.ActionToggleSmooth) {
		c.Smooth = !c.Smooth
	}
	if input.JustPressed(cfg.ActionToggleMirrored) {
		c.Mirrored = !c.Mirrored
	}
	if input.JustPressed(cfg.ActionToggleConstant) {
		c.KeepConstantDistance = !c.KeepConstantDistance
	}
	if input.JustPressed(cfg.ActionToggleLockY) {
		c.LockY = !c.LockY
	}

	if input.Pressed(cfg.ActionDistanceUp) {
		f.SetDistanceFromCamera(clampDistance(c.DistanceFromCamera + cfg.Tuning.DistanceStep*dt))
	}
	if input.Pressed(cfg.ActionDistanceDown) {
		f.SetDistanceFromCamera(clampDistance(c.DistanceFromCamera - cfg.Tuning.DistanceStep*dt))
	}
	if input.Pressed(cfg.ActionOffsetUp) {
		f.SetDownOffset(c.DownOffset - cfg.Tuning.OffsetStep*dt)
	}
	if input.Pressed(cfg.ActionOffsetDown) {
		f.SetDownOffset(c.DownOffset + cfg.Tuning.OffsetStep*dt)
	}
}

func clampDistance(d float64) float64 {
	return math.Max(cfg.Tuning.MinDistance, math.Min(cfg.Tuning.MaxDistance, d))
}

// GetOrCreateSettings returns the Settings singleton, creating it if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			ShowHUD: cfg.Debug.ShowHUD,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
