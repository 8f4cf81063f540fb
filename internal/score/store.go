// Package score keeps the best score of every mini-game and persists the
// whole board as a single text record.
package score

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// StorageKey is the well-known identifier the board is persisted under.
const StorageKey = "playgroundLeaderboard"

// Key identifies one of the six games.
type Key string

const (
	Catcher Key = "catcher"
	Memory  Key = "memory"
	Runner  Key = "runner"
	Block   Key = "block"
	Cat     Key = "cat"
	Rocket  Key = "rocket"
)

// Keys lists every game key in leaderboard order.
var Keys = []Key{Catcher, Memory, Runner, Block, Cat, Rocket}

// ParseKey reports whether s names a known game.
func ParseKey(s string) (Key, bool) {
	for _, k := range Keys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Board maps every game key to its best score.
type Board map[Key]int

// Backend persists the encoded board.
type Backend interface {
	Load() (string, error)
	Save(text string) error
}

// Store is the shared best-score mapping. It is safe for concurrent use;
// subscribers are called outside the board lock, in registration order, and
// never receive a board older than one they already saw.
type Store struct {
	mu      sync.Mutex
	best    Board
	backend Backend
	subs    map[int]func(Board)
	nextSub int
	version uint64

	// sendMu orders deliveries; sent is the newest version delivered.
	sendMu sync.Mutex
	sent   uint64
}

// Open loads the persisted board from backend. A backend read error is
// returned; text that does not decode is logged and replaced by an empty
// board.
func Open(backend Backend) (*Store, error) {
	s := &Store{best: Board{}, backend: backend, subs: map[int]func(Board){}}
	if backend == nil {
		return s, nil
	}
	text, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	board, err := Decode(text)
	if err != nil {
		log.Printf("score: discarding unreadable leaderboard: %v", err)
		board = Board{}
	}
	s.best = board
	return s, nil
}

// Report records score for key when it beats the stored best, persists the
// full board and notifies subscribers. Unknown keys and negative scores are
// ignored. It returns the best score now stored for key.
func (s *Store) Report(key Key, score int) int {
	if _, ok := ParseKey(string(key)); !ok || score < 0 {
		return 0
	}

	s.mu.Lock()
	if score > s.best[key] {
		s.best[key] = score
	}
	best := s.best[key]
	s.version++
	version := s.version
	snapshot := s.snapshotLocked()
	subs := s.subscribersLocked()
	if s.backend != nil {
		if err := s.backend.Save(Encode(snapshot)); err != nil {
			log.Printf("score: persist %s=%d: %v", key, best, err)
		}
	}
	s.mu.Unlock()

	s.deliver(version, snapshot, subs)
	return best
}

// deliver hands snapshot to subs unless a newer board already went out, so
// subscribers see boards in commit order. Subscribers must not call Report.
func (s *Store) deliver(version uint64, snapshot Board, subs []func(Board)) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if version < s.sent {
		return
	}
	s.sent = version
	for _, fn := range subs {
		fn(snapshot)
	}
}

// Merge reports every entry of board. Invalid entries are skipped.
func (s *Store) Merge(board Board) Board {
	for _, k := range Keys {
		if v, ok := board[k]; ok {
			s.Report(k, v)
		}
	}
	return s.All()
}

// All returns a copy of the board with every key present.
func (s *Store) All() Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Best returns the stored best for key.
func (s *Store) Best(key Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best[key]
}

// Subscribe registers fn to be called with a snapshot after every report.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Board)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) snapshotLocked() Board {
	out := make(Board, len(Keys))
	for _, k := range Keys {
		out[k] = s.best[k]
	}
	return out
}

func (s *Store) subscribersLocked() []func(Board) {
	out := make([]func(Board), 0, len(s.subs))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// Encode renders board as a JSON object holding all six keys.
func Encode(board Board) string {
	m := make(map[string]int, len(Keys))
	for _, k := range Keys {
		m[string(k)] = board[k]
	}
	b, _ := json.Marshal(m)
	return string(b)
}

// Decode parses text produced by Encode. Empty text is an empty board;
// unknown keys and negative values are dropped.
func Decode(text string) (Board, error) {
	board := Board{}
	if text == "" {
		return board, nil
	}
	var raw map[string]int
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	for name, v := range raw {
		if k, ok := ParseKey(name); ok && v >= 0 {
			board[k] = v
		}
	}
	return board, nil
}
