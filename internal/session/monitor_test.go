package session

import (
	"sync"
	"testing"
	"time"

	"github.com/lotworks/lotview/internal/store"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMonitorForcesLogoutOnExpiry(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()
	st := store.NewWithClock(clk.Now)
	m := NewMonitor(st, DefaultTickInterval)

	logouts := 0
	m.SetOnLogout(func() { logouts++ })

	st.Login(30 * time.Minute)

	// Live session: ticks are no-ops
	for i := 0; i < 3; i++ {
		if m.Tick() {
			t.Fatal("tick stopped the monitor while the session was live")
		}
	}
	if logouts != 0 {
		t.Fatalf("onLogout fired %d times before expiry", logouts)
	}

	clk.Advance(31 * time.Minute)
	if !m.Tick() {
		t.Fatal("tick at expiry must stop the monitor")
	}
	if logouts != 1 {
		t.Fatalf("onLogout fired %d times, want 1", logouts)
	}
	if st.IsAuthenticated() || st.Session() != nil {
		t.Fatal("session survived forced logout")
	}

	// Later ticks never fire the callback again
	if m.Tick() {
		// already anonymous, reports stop without callback
	}
	if logouts != 1 {
		t.Fatalf("onLogout fired %d times total, want 1", logouts)
	}
}

func TestMonitorStopsAfterExplicitLogout(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()
	st := store.NewWithClock(clk.Now)
	m := NewMonitor(st, DefaultTickInterval)

	logouts := 0
	m.SetOnLogout(func() { logouts++ })

	st.Login(time.Hour)
	st.Logout()

	if !m.Tick() {
		t.Fatal("tick must report stop when the session is already gone")
	}
	if logouts != 0 {
		t.Fatal("explicit logout must not fire the expiry callback")
	}
}

func TestMonitorStartRequiresSession(t *testing.T) {
	t.Parallel()
	st := store.New()
	m := NewMonitor(st, 10*time.Millisecond)

	m.Start()
	if m.Running() {
		t.Fatal("monitor started without a live session")
	}
}

func TestMonitorStartStop(t *testing.T) {
	t.Parallel()
	st := store.New()
	m := NewMonitor(st, time.Minute)

	st.Login(time.Hour)
	m.Start()
	if !m.Running() {
		t.Fatal("monitor not running after Start")
	}

	// Second start is a no-op
	m.Start()

	m.Stop()
	if m.Running() {
		t.Fatal("monitor still running after Stop")
	}
	// Repeated stop is safe
	m.Stop()
}

func TestMonitorExpiryOverTimer(t *testing.T) {
	clk := newFakeClock()
	st := store.NewWithClock(clk.Now)
	m := NewMonitor(st, 5*time.Millisecond)

	done := make(chan struct{})
	m.SetOnLogout(func() { close(done) })

	st.Login(time.Minute)
	m.Start()
	clk.Advance(2 * time.Minute)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer-driven expiry never fired")
	}
	if st.IsAuthenticated() {
		t.Fatal("still authenticated after timer-driven expiry")
	}
}

func TestMonitorDefaultInterval(t *testing.T) {
	t.Parallel()
	m := NewMonitor(store.New(), 0)
	if m.interval != DefaultTickInterval {
		t.Fatalf("interval = %v, want %v", m.interval, DefaultTickInterval)
	}
}
