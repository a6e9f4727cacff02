package session

import (
	"sync"
	"time"

	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/store"
)

// DefaultTickInterval is how often the monitor re-derives the auth
// state, so the UI is never stale by more than this.
const DefaultTickInterval = time.Second

// Monitor watches the session expiry and forces the logout transition
// the moment the lifetime runs out. Its ticker runs only while a
// session is live and stops on any transition to anonymous, so no
// timer leaks past teardown.
type Monitor struct {
	store    *store.Store
	interval time.Duration

	mu       sync.Mutex
	stopCh   chan struct{}
	running  bool
	onLogout func()
}

// NewMonitor creates a monitor; interval <= 0 uses the default
func NewMonitor(st *store.Store, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Monitor{store: st, interval: interval}
}

// SetOnLogout registers a callback fired exactly once when expiry
// forces the logout
func (m *Monitor) SetOnLogout(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = fn
}

// Start launches the ticker. A no-op when already running or when
// there is no live session to watch.
func (m *Monitor) Start() {
	if !m.store.IsAuthenticated() {
		return
	}

	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.stopCh = make(chan struct{})
	stopCh := m.stopCh
	m.mu.Unlock()

	logger.Debug("Session monitor started")
	go m.loop(stopCh)
}

// Stop halts the ticker immediately. Safe to call repeatedly.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.running = false
	close(m.stopCh)
	logger.Debug("Session monitor stopped")
}

// Running reports whether the ticker is live
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) loop(stopCh chan struct{}) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if m.Tick() {
				return
			}
		case <-stopCh:
			return
		}
	}
}

// Tick performs one expiry check. It returns true when the monitor
// should stop: either the expiry just forced a logout, or the session
// is already gone (explicit logout elsewhere). Exposed so tests can
// drive ticks with a fake clock instead of waiting on the timer.
func (m *Monitor) Tick() bool {
	if m.store.ExpireIfDue() {
		m.mu.Lock()
		cb := m.onLogout
		m.running = false
		m.mu.Unlock()

		if cb != nil {
			cb()
		}
		return true
	}

	if !m.store.IsAuthenticated() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
		return true
	}
	return false
}
