package persist

import (
	"sync"
	"time"

	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/store"
)

// DefaultSaveInterval bounds how often state is written under rapid
// interaction
const DefaultSaveInterval = time.Second

// Saver mirrors store changes into the KV store, throttled to at most
// one write per interval no matter how many mutations land inside the
// window. The write always captures the latest snapshot, so trailing
// changes are never lost, only coalesced.
type Saver struct {
	st       *store.Store
	kv       KV
	interval time.Duration

	mu          sync.Mutex
	pending     bool
	stopCh      chan struct{}
	stopped     bool
	unsubscribe func()
}

// NewSaver creates a saver and subscribes it to store changes;
// interval <= 0 uses the default
func NewSaver(st *store.Store, kv KV, interval time.Duration) *Saver {
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	s := &Saver{
		st:       st,
		kv:       kv,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
	s.unsubscribe = st.Subscribe(s.markDirty)
	return s
}

// markDirty schedules a throttled write; changes inside an open window
// coalesce into the one pending write
func (s *Saver) markDirty() {
	s.mu.Lock()
	if s.stopped || s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	go s.delayedSave()
}

func (s *Saver) delayedSave() {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.save()
	case <-s.stopCh:
		// Flush on teardown so the last mutations survive
		s.save()
	}
}

func (s *Saver) save() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()

	if err := Save(s.kv, s.st.PersistedSnapshot()); err != nil {
		logger.Error("Failed to persist state", logger.F("error", err))
	}
}

// Flush writes immediately if a save is pending
func (s *Saver) Flush() {
	s.mu.Lock()
	pending := s.pending
	s.pending = false
	s.mu.Unlock()

	if pending {
		if err := Save(s.kv, s.st.PersistedSnapshot()); err != nil {
			logger.Error("Failed to persist state", logger.F("error", err))
		}
	}
}

// Stop unsubscribes from the store and flushes any pending write.
// The saver must not be reused afterwards.
func (s *Saver) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.unsubscribe()
	close(s.stopCh)
	s.Flush()
}
