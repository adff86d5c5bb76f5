package config

import (
	"image/color"

	"github.com/automoto/followhead/shared/headfollow"
	"github.com/go-gl/mathgl/mgl64"
)

// SnackBarConfig contains the followed panel's look and starting transform
type SnackBarConfig struct {
	Name   string
	Width  float64    // metres
	Height float64    // metres
	Scale  mgl64.Vec3 // original scale restored by the reveal
	Spawn  mgl64.Vec3 // where the panel sits before warm-up

	FillColor    color.RGBA
	OutlineColor color.RGBA
	FrontColor   color.RGBA // marker drawn on the face pointing along +Z
}

// HeadsetConfig contains the simulated head-mounted camera behaviour
type HeadsetConfig struct {
	EyeHeight  float64 // metres above the floor
	TurnSpeed  float64 // radians per second from the arrow keys
	PitchLimit float64 // radians, symmetric
	StrafeStep float64 // metres per second from WASD

	// Idle sway keeps the panel moving when nobody touches the keys
	SwayEnabled   bool
	SwayYaw       float64 // radians amplitude
	SwayPitch     float64 // radians amplitude
	SwayFrequency float64 // Hz
}

// RenderConfig contains projection and scene drawing values
type RenderConfig struct {
	FieldOfView float64 // vertical, degrees
	Near        float64
	Far         float64

	FloorSize    int     // grid lines per side
	FloorSpacing float64 // metres between grid lines

	Background color.RGBA
	GridColor  color.RGBA
	LineWidth  float32
}

// TuningConfig contains the step sizes used by the runtime controls
type TuningConfig struct {
	DistanceStep float64 // metres per second while held
	OffsetStep   float64 // metres per second while held
	MinDistance  float64
	MaxDistance  float64
}

// MessageConfig contains HUD popup configuration
type MessageConfig struct {
	DisplayDuration int // frames
	BoxPadding      float64
	TopMargin       float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
	WarmupFinished  string
	SettingsSaved   string
	PrefabReloaded  string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHUD       bool // draw the state readout
	WatchPrefabs  bool // hot-reload prefabs/*.yaml from disk
	NoPersistence bool // ignore saved settings
}

// Global configuration instances
var C *Config
var Follower headfollow.Config
var SnackBar SnackBarConfig
var Headset HeadsetConfig
var Render RenderConfig
var Tuning TuningConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Follower = headfollow.DefaultConfig()

	SnackBar = SnackBarConfig{
		Name:         "snack_bar",
		Width:        0.6,
		Height:       0.2,
		Scale:        mgl64.Vec3{1, 1, 1},
		Spawn:        mgl64.Vec3{0, 1.2, 1},
		FillColor:    color.RGBA{R: 30, G: 60, B: 110, A: 220},
		OutlineColor: LightBlue,
		FrontColor:   Orange,
	}

	Headset = HeadsetConfig{
		EyeHeight:     1.6,
		TurnSpeed:     1.5,
		PitchLimit:    1.3,
		StrafeStep:    1.2,
		SwayEnabled:   false,
		SwayYaw:       0.35,
		SwayPitch:     0.15,
		SwayFrequency: 0.2,
	}

	Render = RenderConfig{
		FieldOfView:  70,
		Near:         0.05,
		Far:          100,
		FloorSize:    20,
		FloorSpacing: 0.5,
		Background:   color.RGBA{R: 12, G: 12, B: 18, A: 255},
		GridColor:    DarkGrey,
		LineWidth:    1.5,
	}

	Tuning = TuningConfig{
		DistanceStep: 0.5,
		OffsetStep:   0.5,
		MinDistance:  0.3,
		MaxDistance:  5,
	}

	Message = MessageConfig{
		DisplayDuration: 120,
		BoxPadding:      8,
		TopMargin:       16,
		BoxColor:        BlackOverlay,
		TextColor:       White,
		WarmupFinished:  "Snack bar ready",
		SettingsSaved:   "Settings saved",
		PrefabReloaded:  "Prefab reloaded",
	}

	Debug = DebugConfig{
		ShowHUD:      true,
		WatchPrefabs: true,
	}
}
