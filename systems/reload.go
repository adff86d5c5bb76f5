package systems

import (
	"log"
	"path/filepath"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/prefabs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// changeSource yields prefab files changed, and watch errors seen, since the last call.
type changeSource interface {
	Drain() []string
	DrainErrors() []error
}

// NewPrefabReloader returns a system that re-applies snack_bar.yaml to live followers
// whenever src reports it changed. Only the follow keys are re-applied; warm-up keys
// have no effect once a follower has started.
func NewPrefabReloader(src changeSource) ecs.System {
	return func(ecs *ecs.ECS) {
		for _, err := range src.DrainErrors() {
			log.Printf("Warning: Prefab watcher error: %v", err)
		}

		reload := false
		for _, name := range src.Drain() {
			if filepath.Base(name) == prefabs.SnackBarFile {
				reload = true
			}
		}
		if !reload {
			return
		}

		spec, err := prefabs.LoadSnackBarSpec()
		if err != nil {
			log.Printf("Warning: Could not reload prefab: %v", err)
			return
		}
		EachFollower(ecs, func(_ *donburi.Entry, f *components.FollowerData) {
			spec.ApplyFollow(f.Config())
		})
		ShowMessage(ecs, cfg.Message.PrefabReloaded)
	}
}
