package persist

import (
	"encoding/json"
	"time"

	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/store"
)

// Storage keys. Each is independently optional: a corrupt entry under
// one key never blocks restoring the others.
const (
	KeyFavorites  = "favorites"
	KeyLastSearch = "lastSearch"
	KeySession    = "session"
)

// persistedSession is the wire form of a session; expiry is unix
// milliseconds
type persistedSession struct {
	Token  string     `json:"token"`
	User   model.User `json:"user"`
	Expiry int64      `json:"expiry"`
}

// Restored carries the three optional slices read back from storage
type Restored struct {
	Favorites  []string
	LastSearch *store.LastSearch
	Session    *model.Session
}

// Restore reads all persisted keys. Any storage or parse error is
// logged and degrades to "absent" for that key only; startup never
// fails on bad persisted data.
func Restore(kv KV) Restored {
	var r Restored

	if raw, ok := readKey(kv, KeyFavorites); ok {
		var favs []string
		if err := json.Unmarshal([]byte(raw), &favs); err != nil {
			logger.Warn("Discarding malformed favorites", logger.F("error", err))
		} else {
			r.Favorites = favs
		}
	}

	if raw, ok := readKey(kv, KeyLastSearch); ok {
		var last store.LastSearch
		if err := json.Unmarshal([]byte(raw), &last); err != nil {
			logger.Warn("Discarding malformed last search", logger.F("error", err))
		} else {
			r.LastSearch = &last
		}
	}

	if raw, ok := readKey(kv, KeySession); ok {
		var ps persistedSession
		if err := json.Unmarshal([]byte(raw), &ps); err != nil || ps.Token == "" {
			logger.Warn("Discarding malformed session", logger.F("error", err))
		} else {
			r.Session = &model.Session{
				Token:     ps.Token,
				User:      ps.User,
				ExpiresAt: time.UnixMilli(ps.Expiry),
			}
		}
	}

	return r
}

// Apply installs the restored slices into the store, before the first
// render. The store itself discards a session whose expiry has already
// passed.
func (r Restored) Apply(st *store.Store) {
	if r.Favorites != nil {
		st.SetInitialFavorites(r.Favorites)
	}
	if r.LastSearch != nil {
		st.SetInitialSearch(r.LastSearch)
	}
	if r.Session != nil {
		st.SetInitialSession(r.Session)
	}
}

// Save writes all three keys from a consistent snapshot
func Save(kv KV, state store.PersistedState) error {
	favs, err := json.Marshal(state.Favorites)
	if err != nil {
		return err
	}
	if err := kv.Set(KeyFavorites, string(favs)); err != nil {
		return err
	}

	if state.LastSearch != nil {
		last, err := json.Marshal(state.LastSearch)
		if err != nil {
			return err
		}
		if err := kv.Set(KeyLastSearch, string(last)); err != nil {
			return err
		}
	}

	if state.Session != nil {
		sess, err := json.Marshal(persistedSession{
			Token:  state.Session.Token,
			User:   state.Session.User,
			Expiry: state.Session.ExpiresAt.UnixMilli(),
		})
		if err != nil {
			return err
		}
		return kv.Set(KeySession, string(sess))
	}
	return kv.Delete(KeySession)
}

func readKey(kv KV, key string) (string, bool) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Warn("Failed to read persisted key", logger.F("key", key), logger.F("error", err))
		return "", false
	}
	return raw, ok
}
