package headfollow

import "github.com/tanema/gween"

// WarmupState identifies a step of the warm-up sequence.
type WarmupState int

const (
	WarmupIdle      WarmupState = iota // not started
	WarmupWaiting                      // counting down the delay
	WarmupSnapped                      // initial pose captured, reveal starts next tick
	WarmupRevealing                    // scaling in
	WarmupComplete                     // done for good
)

func (s WarmupState) String() string {
	switch s {
	case WarmupIdle:
		return "idle"
	case WarmupWaiting:
		return "waiting"
	case WarmupSnapped:
		return "snapped"
	case WarmupRevealing:
		return "revealing"
	case WarmupComplete:
		return "complete"
	}
	return "unknown"
}

// warmupTarget receives the side effects of each transition.
type warmupTarget interface {
	beginWarmup()
	snap()
	reveal(progress float64)
	finishWarmup()
}

// Sequencer runs the warm-up once: delay, snap, reveal, complete. It is driven by Tick
// and reads its timings from cfg on every tick.
type Sequencer struct {
	cfg     *Config
	target  warmupTarget
	state   WarmupState
	elapsed float64
	tween   *gween.Tween
}

func newSequencer(cfg *Config, target warmupTarget) *Sequencer {
	return &Sequencer{cfg: cfg, target: target}
}

// State returns the current step.
func (s *Sequencer) State() WarmupState {
	return s.state
}

// Start leaves Idle. Later calls do nothing.
func (s *Sequencer) Start() {
	if s.state != WarmupIdle {
		return
	}
	s.target.beginWarmup()
	s.elapsed = 0
	s.state = WarmupWaiting
}

// Tick advances the sequence by dt seconds.
func (s *Sequencer) Tick(dt float64) {
	switch s.state {
	case WarmupWaiting:
		s.elapsed += dt
		if s.elapsed < s.cfg.WarmupDelay {
			return
		}
		s.target.snap()
		s.state = WarmupSnapped

	case WarmupSnapped:
		s.elapsed = 0
		s.state = WarmupRevealing
		if s.cfg.RevealDuration > 0 {
			curve := s.cfg.RevealCurve
			if curve == nil {
				curve = SmoothStep
			}
			s.tween = gween.New(0, 1, float32(s.cfg.RevealDuration), curve)
		}
		s.stepReveal(dt)

	case WarmupRevealing:
		s.stepReveal(dt)
	}
}

func (s *Sequencer) stepReveal(dt float64) {
	s.elapsed += dt
	if s.tween == nil || s.elapsed >= s.cfg.RevealDuration {
		s.finish()
		return
	}

	// The tween is positioned from the float64 clock so float32 drift can't delay
	// completion past the configured duration.
	progress, _ := s.tween.Set(float32(s.elapsed))
	s.target.reveal(float64(progress))
}

func (s *Sequencer) finish() {
	s.target.reveal(1)
	s.tween = nil
	s.state = WarmupComplete
	s.target.finishWarmup()
}
