package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/fonts"
	"github.com/automoto/followhead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 10
	hudLineHeight = 15
)

var hudFontFace font.Face

// DrawHUD renders the follower state readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowHUD {
		return
	}
	entry, ok := tags.SnackBar.First(ecs.World)
	if !ok {
		return
	}
	f := components.Follower.Get(entry)
	if f.Follower == nil {
		return
	}

	if hudFontFace == nil {
		hudFontFace = fonts.Mono.Get()
	}

	lines := hudLines(f, components.Transform.Get(entry))
	height := float32(len(lines)*hudLineHeight + hudMargin)
	vector.FillRect(screen, hudMargin/2, hudMargin/2, 280, height, cfg.Message.BoxColor, false)
	for i, line := range lines {
		text.Draw(screen, line, hudFontFace, hudMargin, hudMargin+(i+1)*hudLineHeight, cfg.Message.TextColor)
	}
}

func hudLines(f *components.FollowerData, t *components.TransformData) []string {
	c := f.Config()
	pos := t.Pos
	return []string{
		fmt.Sprintf("state     %s", f.State()),
		fmt.Sprintf("follow    %s", onOff(f.CanFollow() && f.FollowingEnabled())),
		fmt.Sprintf("distance  %.2f  down %.2f", c.DistanceFromCamera, c.DownOffset),
		fmt.Sprintf("position  %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
		"flags     " + flagList(c.Smooth, "smooth", c.LockY, "lockY", c.Mirrored, "mirror", c.KeepConstantDistance, "const"),
	}
}

func flagList(pairs ...any) string {
	var on []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if set, _ := pairs[i].(bool); set {
			on = append(on, pairs[i+1].(string))
		}
	}
	if len(on) == 0 {
		return "-"
	}
	return strings.Join(on, " ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
