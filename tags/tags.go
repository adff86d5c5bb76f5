package tags

import "github.com/yohamta/donburi"

var (
	Headset  = donburi.NewTag().SetName("Headset")
	SnackBar = donburi.NewTag().SetName("SnackBar")
)
