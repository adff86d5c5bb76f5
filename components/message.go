package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the active HUD popup
type MessageStateData struct {
	Text         string // Currently displayed message ("" = none)
	DisplayTimer int    // Frames remaining to display current message
}

var MessageState = donburi.NewComponentType[MessageStateData]()
