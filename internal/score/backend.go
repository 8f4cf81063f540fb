package score

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MemoryBackend keeps the encoded board in memory.
type MemoryBackend struct {
	mu    sync.Mutex
	text  string
	saves int
}

func (m *MemoryBackend) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *MemoryBackend) Save(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FileBackend stores the board in a JSON file, replacing it atomically.
type FileBackend struct {
	Path string
}

// DefaultFilePath returns the leaderboard path under the user config dir.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "playground", StorageKey+".json"), nil
}

func (f FileBackend) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Path, err)
	}
	return string(b), nil
}

func (f FileBackend) Save(text string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create leaderboard dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace %s: %w", f.Path, err)
	}
	return nil
}

// RemoteBackend loads and merges the board through the site's leaderboard API.
type RemoteBackend struct {
	BaseURL string
	Client  *http.Client
}

type leaderboardPayload struct {
	Leaderboard map[string]int `json:"leaderboard"`
}

func (r RemoteBackend) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return &http.Client{Timeout: 5 * time.Second}
}

func (r RemoteBackend) Load() (string, error) {
	resp, err := r.client().Get(r.BaseURL + "/api/leaderboard")
	if err != nil {
		return "", fmt.Errorf("fetch leaderboard: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch leaderboard: status %d", resp.StatusCode)
	}
	var payload leaderboardPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode leaderboard response: %w", err)
	}
	b, err := json.Marshal(payload.Leaderboard)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r RemoteBackend) Save(text string) error {
	resp, err := r.client().Post(r.BaseURL+"/api/leaderboard", "application/json", bytes.NewBufferString(text))
	if err != nil {
		return fmt.Errorf("post leaderboard: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post leaderboard: status %d", resp.StatusCode)
	}
	return nil
}

// AsyncBackend hands saves to a background writer so callers never wait on
// the wrapped backend. Only the latest pending text is written.
type AsyncBackend struct {
	inner   Backend
	pending chan string
}

// NewAsync wraps inner. Run must be started for saves to reach it.
func NewAsync(inner Backend) *AsyncBackend {
	return &AsyncBackend{inner: inner, pending: make(chan string, 1)}
}

func (a *AsyncBackend) Load() (string, error) {
	return a.inner.Load()
}

// Save queues text, replacing any save that has not been written yet.
func (a *AsyncBackend) Save(text string) error {
	for {
		select {
		case a.pending <- text:
			return nil
		default:
		}
		select {
		case <-a.pending:
		default:
		}
	}
}

// Run writes queued saves until ctx is done, then flushes the last one.
func (a *AsyncBackend) Run(ctx context.Context) {
	for {
		select {
		case text := <-a.pending:
			if err := a.inner.Save(text); err != nil {
				log.Printf("score: background save: %v", err)
			}
		case <-ctx.Done():
			select {
			case text := <-a.pending:
				if err := a.inner.Save(text); err != nil {
					log.Printf("score: final save: %v", err)
				}
			default:
			}
			return
		}
	}
}
