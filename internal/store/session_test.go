package store

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lotworks/lotview/internal/model"
)

// fakeClock is an adjustable clock for expiry tests
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

func TestLogin(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()
	st := NewWithClock(clk.Now)

	sess := st.Login(time.Hour)

	if !strings.HasPrefix(sess.Token, "auth-token-") {
		t.Fatalf("token %q missing prefix", sess.Token)
	}
	if sess.User.ID != "user123" || sess.User.Name != "Authenticated User" {
		t.Fatalf("unexpected user %+v", sess.User)
	}
	if want := clk.Now().Add(time.Hour); !sess.ExpiresAt.Equal(want) {
		t.Fatalf("expiry = %v, want %v", sess.ExpiresAt, want)
	}
	if !st.IsAuthenticated() {
		t.Fatal("store not authenticated after login")
	}

	// Tokens are unique per login
	if again := st.Login(time.Hour); again.Token == sess.Token {
		t.Fatal("two logins produced the same token")
	}
}

func TestLoginDefaultTTL(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()
	st := NewWithClock(clk.Now)

	sess := st.Login(0)
	if want := clk.Now().Add(model.SessionTTL); !sess.ExpiresAt.Equal(want) {
		t.Fatalf("expiry = %v, want the default TTL %v", sess.ExpiresAt, want)
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()
	st := New()

	notifications := 0
	st.Subscribe(func() { notifications++ })

	st.Logout() // anonymous, must not notify
	if notifications != 0 {
		t.Fatal("logout while anonymous notified subscribers")
	}

	st.Login(time.Hour)
	st.Logout()
	if st.IsAuthenticated() || st.Session() != nil {
		t.Fatal("session survived logout")
	}
}

func TestAuthDerivedFromExpiry(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()
	st := NewWithClock(clk.Now)

	st.Login(time.Hour)
	if !st.IsAuthenticated() {
		t.Fatal("should be authenticated right after login")
	}

	clk.Advance(59 * time.Minute)
	if !st.IsAuthenticated() {
		t.Fatal("should still be authenticated before expiry")
	}
	if got := st.TimeRemaining(); got != time.Minute {
		t.Fatalf("remaining = %v, want 1m", got)
	}

	// The expiry instant itself counts as expired
	clk.Advance(time.Minute)
	if st.IsAuthenticated() {
		t.Fatal("authenticated at the expiry instant")
	}
	if got := st.TimeRemaining(); got != 0 {
		t.Fatalf("remaining = %v, want 0", got)
	}
}

func TestExpireIfDueFiresOnce(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()
	st := NewWithClock(clk.Now)

	st.Login(30 * time.Minute)
	if st.ExpireIfDue() {
		t.Fatal("expired a live session")
	}

	clk.Advance(31 * time.Minute)
	if !st.ExpireIfDue() {
		t.Fatal("due session not expired")
	}
	if st.Session() != nil {
		t.Fatal("session survived the expiry transition")
	}
	if st.ExpireIfDue() {
		t.Fatal("second call reported a transition again")
	}
}

func TestSetInitialSession(t *testing.T) {
	t.Parallel()
	clk := newFakeClock()

	live := &model.Session{
		Token:     "auth-token-restored",
		User:      model.User{ID: "user123", Name: "Authenticated User"},
		ExpiresAt: clk.Now().Add(20 * time.Minute),
	}

	st := NewWithClock(clk.Now)
	st.SetInitialSession(live)
	if !st.IsAuthenticated() {
		t.Fatal("live persisted session not adopted")
	}
	if got := st.Session(); got == nil || got.Token != live.Token {
		t.Fatalf("session = %+v", got)
	}

	// Expired sessions never re-enter the authenticated state
	expired := &model.Session{
		Token:     "auth-token-old",
		ExpiresAt: clk.Now().Add(-time.Minute),
	}
	st2 := NewWithClock(clk.Now)
	st2.SetInitialSession(expired)
	if st2.IsAuthenticated() || st2.Session() != nil {
		t.Fatal("expired persisted session adopted")
	}

	// Tokenless and nil restores are ignored
	st3 := NewWithClock(clk.Now)
	st3.SetInitialSession(nil)
	st3.SetInitialSession(&model.Session{ExpiresAt: clk.Now().Add(time.Hour)})
	if st3.Session() != nil {
		t.Fatal("restore without a token adopted")
	}
}

func TestSessionReturnsCopy(t *testing.T) {
	t.Parallel()
	st := New()
	st.Login(time.Hour)

	got := st.Session()
	got.Token = "mutated"
	if st.Session().Token == "mutated" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestTimeRemainingAnonymous(t *testing.T) {
	t.Parallel()
	st := New()
	if got := st.TimeRemaining(); got != 0 {
		t.Fatalf("anonymous remaining = %v, want 0", got)
	}
}
