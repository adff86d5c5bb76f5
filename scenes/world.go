package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/prefabs"
	"github.com/automoto/followhead/systems"
	"github.com/automoto/followhead/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the running scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// HeadsetScene shows one snack bar following the simulated headset.
type HeadsetScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *prefabs.Watcher
	once         sync.Once
}

func NewHeadsetScene(sc SceneChanger) *HeadsetScene {
	return &HeadsetScene{sceneChanger: sc}
}

func (hs *HeadsetScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()

	if systems.RestartRequested(hs.ecs) {
		hs.Close()
		hs.sceneChanger.ChangeScene(NewHeadsetScene(hs.sceneChanger))
	}
}

func (hs *HeadsetScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

// Close stops the prefab watcher, if any.
func (hs *HeadsetScene) Close() {
	if hs.watcher != nil {
		_ = hs.watcher.Close()
		hs.watcher = nil
	}
}

func (hs *HeadsetScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateHeadset)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateFollowers)
	ecs.AddSystem(systems.UpdateMessage)

	if cfg.Debug.WatchPrefabs {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Warning: Could not watch prefabs: %v", err)
		} else {
			hs.watcher = w
			ecs.AddSystem(systems.NewPrefabReloader(w))
		}
	}

	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawMessage)

	components.WarmupFinished.Subscribe(ecs.World, systems.OnWarmupFinished)

	hs.ecs = ecs

	factory.CreateHeadset(hs.ecs, 0, 0)
	factory.CreateSnackBar(hs.ecs, systems.CameraProvider(hs.ecs.World), snackBarParams())
}

// snackBarParams layers the prefab and then saved settings over the built-in config.
func snackBarParams() factory.SnackBarParams {
	p := factory.SnackBarParams{
		Name:   cfg.SnackBar.Name,
		Follow: cfg.Follower,
		Spawn:  cfg.SnackBar.Spawn,
		Scale:  cfg.SnackBar.Scale,
	}

	spec, err := prefabs.LoadSnackBarSpec()
	if err != nil {
		log.Printf("Warning: Could not load prefab, using defaults: %v", err)
	} else {
		if spec.Name != "" {
			p.Name = spec.Name
		}
		if spec.Panel.Width > 0 {
			cfg.SnackBar.Width = spec.Panel.Width
		}
		if spec.Panel.Height > 0 {
			cfg.SnackBar.Height = spec.Panel.Height
		}
		spec.ApplyFollow(&p.Follow)
		if err := spec.ApplyWarmup(&p.Follow); err != nil {
			log.Printf("Warning: %v", err)
		}
		if p.Spawn, err = spec.Panel.SpawnOr(p.Spawn); err != nil {
			log.Printf("Warning: %v", err)
		}
		if p.Scale, err = spec.Panel.ScaleOr(p.Scale); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	if !cfg.Debug.NoPersistence {
		if saved, err := systems.LoadSettings(); err == nil {
			systems.ApplySavedSettings(&p.Follow, saved)
		}
	}
	return p
}
