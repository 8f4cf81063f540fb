package storage

import (
	"path/filepath"
	"testing"

	"github.com/Zachkp/playground/internal/score"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedKeepsExistingValues(t *testing.T) {
	db := openTestDB(t)

	if err := db.UpdateContent(map[string]string{"hero_name": "Zach"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := db.Seed(map[string]string{"hero_name": "Your Name", "games_title": "Mini Game Zone"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	content, err := db.Content()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content["hero_name"] != "Zach" {
		t.Fatalf("seed overwrote hero_name: %q", content["hero_name"])
	}
	if content["games_title"] != "Mini Game Zone" {
		t.Fatalf("seed missed games_title: %v", content)
	}
}

func TestUpdateContentUpserts(t *testing.T) {
	db := openTestDB(t)
	db.Seed(map[string]string{"enable_blockblast": "true"})

	if err := db.UpdateContent(map[string]string{"enable_blockblast": "false", "theme_mode": "light"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	content, _ := db.Content()
	if content["enable_blockblast"] != "false" || content["theme_mode"] != "light" {
		t.Fatalf("content = %v", content)
	}
}

func TestKVMissingKeyIsEmpty(t *testing.T) {
	db := openTestDB(t)
	v, err := db.Get("nothing")
	if err != nil || v != "" {
		t.Fatalf("get missing = %q, %v", v, err)
	}
}

func TestRecordBacksScoreStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	store, err := score.Open(Record{DB: db, Key: score.StorageKey})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	store.Report(score.Block, 620)
	store.Report(score.Block, 120)
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	again, err := score.Open(Record{DB: db, Key: score.StorageKey})
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if again.Best(score.Block) != 620 {
		t.Fatalf("block = %d, want 620", again.Best(score.Block))
	}
}
