package systems

import (
	"fmt"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// UpdateMessage counts down the active popup
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs.World)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// ShowMessage replaces the active popup
func ShowMessage(ecs *ecs.ECS, msg string) {
	showMessage(ecs.World, msg)
}

func showMessage(w donburi.World, msg string) {
	state := getOrCreateMessageState(w)
	state.Text = msg
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// OnWarmupFinished announces a panel that finished its reveal.
// Subscribed to components.WarmupFinished by the scene.
func OnWarmupFinished(w donburi.World, event components.WarmupFinishedEvent) {
	msg := cfg.Message.WarmupFinished
	if event.Name != "" {
		msg = fmt.Sprintf("%s (%s)", msg, event.Name)
	}
	showMessage(w, msg)
}

// DrawMessage renders the active popup at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs.World)
	if state.Text == "" {
		return
	}

	if messageFontFace == nil {
		messageFontFace = fonts.Title.Get()
	}

	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, messageFontFace, textX, textY, cfg.Message.TextColor)
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(w donburi.World) *components.MessageStateData {
	entry, ok := components.MessageState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
