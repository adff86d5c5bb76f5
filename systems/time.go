package systems

import cfg "github.com/automoto/followhead/config"

// frameDelta is the fixed simulation step in seconds. ebiten calls Update at a fixed
// tick rate, so the step never varies with rendering speed.
func frameDelta() float64 {
	if cfg.C.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.C.TPS)
}
