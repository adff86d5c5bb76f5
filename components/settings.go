package components

import "github.com/yohamta/donburi"

// SettingsData is a singleton for scene-wide toggles
type SettingsData struct {
	ShowHUD bool
}

var Settings = donburi.NewComponentType[SettingsData]()
