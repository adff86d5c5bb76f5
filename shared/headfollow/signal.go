package headfollow

// Signal is a single-fire notification. Listeners added after it fired are not called.
type Signal struct {
	listeners []func()
	fired     bool
}

// Add registers a listener.
func (s *Signal) Add(fn func()) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Fire calls every listener in registration order. Only the first call does anything.
func (s *Signal) Fire() {
	if s.fired {
		return
	}
	s.fired = true
	for _, fn := range s.listeners {
		fn()
	}
}
