package prefabs

import (
	"fmt"

	"github.com/automoto/followhead/shared/headfollow"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// SnackBarFile is the prefab describing the followed panel.
const SnackBarFile = "snack_bar.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SnackBarSpec struct {
	Name   string     `yaml:"name"`
	Panel  PanelSpec  `yaml:"panel"`
	Follow FollowSpec `yaml:"follow"`
	Warmup WarmupSpec `yaml:"warmup"`
}

type PanelSpec struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Scale  []float64 `yaml:"scale"`
	Spawn  []float64 `yaml:"spawn"`
}

// FollowSpec uses pointers so a prefab only overrides the keys it sets.
type FollowSpec struct {
	DistanceFromCamera    *float64 `yaml:"distance_from_camera"`
	DownOffset            *float64 `yaml:"down_offset"`
	Mirrored              *bool    `yaml:"mirrored"`
	KeepConstantDistance  *bool    `yaml:"keep_constant_distance"`
	Smooth                *bool    `yaml:"smooth"`
	FollowSmoothTime      *float64 `yaml:"follow_smooth_time"`
	LookAtSmoothTime      *float64 `yaml:"look_at_smooth_time"`
	FreezeYForLookAt      *bool    `yaml:"freeze_y_for_look_at"`
	LockY                 *bool    `yaml:"lock_y"`
	StopUpdatingPosition  *bool    `yaml:"stop_updating_position"`
	StopUpdatingDirection *bool    `yaml:"stop_updating_direction"`
}

type WarmupSpec struct {
	Delay             *float64 `yaml:"delay"`
	UpdateAfterWarmup *bool    `yaml:"update_after_warmup"`
	RevealDuration    *float64 `yaml:"reveal_duration"`
	RevealCurve       string   `yaml:"reveal_curve"`
}

func LoadSnackBarSpec() (*SnackBarSpec, error) {
	spec, err := LoadSpec[SnackBarSpec](SnackBarFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ApplyFollow overlays the follow keys onto cfg. Warm-up keys are left alone; they only
// matter before a follower starts, see ApplyWarmup.
func (s *SnackBarSpec) ApplyFollow(cfg *headfollow.Config) {
	f := s.Follow
	setFloat(&cfg.DistanceFromCamera, f.DistanceFromCamera)
	setFloat(&cfg.DownOffset, f.DownOffset)
	setBool(&cfg.Mirrored, f.Mirrored)
	setBool(&cfg.KeepConstantDistance, f.KeepConstantDistance)
	setBool(&cfg.Smooth, f.Smooth)
	setFloat(&cfg.FollowSmoothTime, f.FollowSmoothTime)
	setFloat(&cfg.LookAtSmoothTime, f.LookAtSmoothTime)
	setBool(&cfg.FreezeYForLookAt, f.FreezeYForLookAt)
	setBool(&cfg.LockY, f.LockY)
	setBool(&cfg.StopUpdatingPosition, f.StopUpdatingPosition)
	setBool(&cfg.StopUpdatingDirection, f.StopUpdatingDirection)
}

// ApplyWarmup overlays the warm-up keys onto cfg.
func (s *SnackBarSpec) ApplyWarmup(cfg *headfollow.Config) error {
	w := s.Warmup
	setFloat(&cfg.WarmupDelay, w.Delay)
	setBool(&cfg.UpdateAfterWarmup, w.UpdateAfterWarmup)
	setFloat(&cfg.RevealDuration, w.RevealDuration)
	if w.RevealCurve != "" {
		curve, err := headfollow.CurveByName(w.RevealCurve)
		if err != nil {
			return fmt.Errorf("prefabs: %s: %w", SnackBarFile, err)
		}
		cfg.RevealCurve = curve
	}
	return nil
}

// ScaleOr returns the panel scale, or fallback when the prefab omits it.
func (p PanelSpec) ScaleOr(fallback mgl64.Vec3) (mgl64.Vec3, error) {
	return vec3Or(p.Scale, fallback, "panel.scale")
}

// SpawnOr returns the spawn position, or fallback when the prefab omits it.
func (p PanelSpec) SpawnOr(fallback mgl64.Vec3) (mgl64.Vec3, error) {
	return vec3Or(p.Spawn, fallback, "panel.spawn")
}

func vec3Or(v []float64, fallback mgl64.Vec3, key string) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return fallback, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	}
	return fallback, fmt.Errorf("prefabs: %s: want 3 components, got %d", key, len(v))
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
