package components

import (
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world-space position, rotation and scale.
// It satisfies headfollow.Transform through the embedded body.
type TransformData struct {
	headfollow.Body
}

var Transform = donburi.NewComponentType[TransformData]()
