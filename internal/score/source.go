package score

import (
	"log"
	"net/http"
)

// Source selects where the arcade keeps its leaderboard.
type Source struct {
	// Remote uses the site's leaderboard API at SiteURL.
	Remote  bool
	SiteURL string
	// File overrides the local leaderboard location.
	File string
	// Client is used for the remote API; nil means a 5s timeout client.
	Client *http.Client
}

// LocalBackend returns the backend that keeps the board on this device:
// path when set, otherwise the per-user file on desktop builds and
// localStorage in the browser.
func LocalBackend(path string) (Backend, error) {
	if path != "" {
		return FileBackend{Path: path}, nil
	}
	return defaultLocal()
}

// OpenSource opens the store for src. Remote sources fall back to the local
// board when the site cannot be read; a store that cannot persist at all is
// still returned so play can go on. The AsyncBackend is non-nil for remote
// stores and must be Run.
func OpenSource(src Source) (*Store, *AsyncBackend) {
	if src.Remote {
		async := NewAsync(RemoteBackend{BaseURL: src.SiteURL, Client: src.Client})
		store, err := Open(async)
		if err == nil {
			return store, async
		}
		log.Printf("score: remote leaderboard unavailable, using local board: %v", err)
	}

	backend, err := LocalBackend(src.File)
	if err != nil {
		log.Printf("score: no local storage, scores will not persist: %v", err)
		store, _ := Open(nil)
		return store, nil
	}
	store, err := Open(backend)
	if err != nil {
		log.Printf("score: starting with an empty board: %v", err)
		store, _ = Open(nil)
	}
	return store, nil
}
