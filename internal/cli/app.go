package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/lotworks/lotview/internal/catalog"
	"github.com/lotworks/lotview/internal/config"
	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/persist"
	"github.com/lotworks/lotview/internal/store"
)

// App bundles the wiring every command needs: config, the state
// container, durable storage and the throttled saver. Restore runs
// before anything reads the store, so the first render already sees
// the persisted favorites, search and session.
type App struct {
	Config *config.Config
	Store  *store.Store
	KV     *persist.SQLiteKV
	Saver  *persist.Saver
	Client *catalog.Client
}

// openApp loads config, opens the state database and restores
// persisted state into a fresh store
func openApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", logger.F("error", err))
		cfg = config.DefaultConfig()
	}

	var kv *persist.SQLiteKV
	if cfg.DataDir != "" {
		kv, err = persist.Open(filepath.Join(cfg.DataDir, "state.db"))
	} else {
		kv, err = persist.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	st := store.New()
	st.SetInitialLimit(cfg.PageSize)
	persist.Restore(kv).Apply(st)

	return &App{
		Config: cfg,
		Store:  st,
		KV:     kv,
		Saver:  persist.NewSaver(st, kv, persist.DefaultSaveInterval),
		Client: catalog.NewClient(cfg.CatalogURL),
	}, nil
}

// Close flushes pending writes and releases the database
func (a *App) Close() {
	a.Saver.Stop()
	if err := a.KV.Close(); err != nil {
		logger.Warn("Failed to close state database", logger.F("error", err))
	}
}

// formatRemaining renders a session countdown as mm:ss
func formatRemaining(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
