package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical control action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionToggleFollow     // StopFollowing / ResumeFollowing
	ActionToggleEnabled    // following-enabled gate
	ActionToggleSmooth     // smoothing on/off
	ActionToggleMirrored   // face away from the viewer
	ActionToggleConstant   // constant horizontal distance
	ActionToggleLockY      // Y-lock
	ActionToggleSway       // idle head sway
	ActionDistanceUp       // push the panel away
	ActionDistanceDown     // pull the panel closer
	ActionOffsetUp         // raise the panel
	ActionOffsetDown       // lower the panel
	ActionSaveSettings     // persist current tunables
	ActionToggleHUD        // state readout
	ActionRestart          // rebuild the scene and replay the warm-up
	ActionCount            // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionLookLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionLookRight: {
				Keys: []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionLookUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionLookDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveForward: {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionMoveBack:    {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionToggleFollow: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleEnabled:  {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionToggleSmooth:   {Keys: []ebiten.Key{ebiten.KeyF}},
			ActionToggleMirrored: {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionToggleConstant: {Keys: []ebiten.Key{ebiten.KeyC}},
			ActionToggleLockY:    {Keys: []ebiten.Key{ebiten.KeyY}},
			ActionToggleSway:     {Keys: []ebiten.Key{ebiten.KeyV}},
			ActionDistanceUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionDistanceDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionOffsetUp:     {Keys: []ebiten.Key{ebiten.KeyPageUp}},
			ActionOffsetDown:   {Keys: []ebiten.Key{ebiten.KeyPageDown}},
			ActionSaveSettings: {Keys: []ebiten.Key{ebiten.KeyF5}},
			ActionRestart:      {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyH},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
