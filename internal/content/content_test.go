package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zachkp/playground/internal/engine"
)

func TestParseDefaults(t *testing.T) {
	s := Parse(nil)

	if !s.EnableBlockBlast || !s.EnableCatMouse || !s.EnableRocketTouch {
		t.Fatalf("games should be enabled by default: %+v", s)
	}
	if s.Theme != "dark" || !s.SfxOn {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.IconScale != 1 || s.FontScale != 1 {
		t.Fatalf("scales = %v/%v, want 1/1", s.IconScale, s.FontScale)
	}
	if s.GamesTitle != "Mini Game Zone" {
		t.Fatalf("games title = %q", s.GamesTitle)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"explicit false", "false", false},
		{"explicit true", "true", true},
		{"garbage", "maybe", true},
		{"blank", "  ", true},
		{"padded false", " false ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Parse(map[string]string{"enable_cat_mouse": tt.value})
			if s.EnableCatMouse != tt.want {
				t.Errorf("enable_cat_mouse=%q -> %v, want %v", tt.value, s.EnableCatMouse, tt.want)
			}
		})
	}
}

func TestParseSettings(t *testing.T) {
	s := Parse(map[string]string{
		"theme_mode":  "Light",
		"sfx_default": "off",
		"font_scale":  "1.1",
		"icon_scale":  "-3",
		"game_3_desc": "Jump!",
	})

	if s.Theme != "light" || s.Palette() != engine.Light {
		t.Fatalf("theme = %q", s.Theme)
	}
	if s.SfxOn {
		t.Fatal("sfx_default off left sound on")
	}
	if s.FontScale != 1.1 || s.IconScale != 1 {
		t.Fatalf("scales = %v/%v", s.FontScale, s.IconScale)
	}
	if s.Descriptions["Code Runner"] != "Jump!" {
		t.Fatalf("runner description = %q", s.Descriptions["Code Runner"])
	}
}

func TestDefaultsCoverFields(t *testing.T) {
	defaults := Defaults()
	for _, f := range Fields {
		if _, ok := defaults[f.Key]; !ok {
			t.Errorf("no default for %s", f.Key)
		}
	}
	if len(defaults) != len(Fields) {
		t.Errorf("defaults has %d keys, fields has %d", len(defaults), len(Fields))
	}
	if !Known("theme_mode") || Known("admin_password") {
		t.Error("Known disagrees with Fields")
	}
}

func TestLoadFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/content" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":{"enable_blockblast":"false","theme_mode":"light"}}`))
	}))
	defer srv.Close()

	s := Load(context.Background(), Client{BaseURL: srv.URL})

	if s.EnableBlockBlast {
		t.Fatal("block blast should be disabled")
	}
	if s.Theme != "light" {
		t.Fatalf("theme = %q", s.Theme)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := (Client{BaseURL: srv.URL}).Fetch(context.Background()); err == nil {
		t.Fatal("expected fetch error on 500")
	}

	s := Load(context.Background(), Client{BaseURL: srv.URL})
	if !s.EnableBlockBlast || s.Theme != "dark" {
		t.Fatalf("fallback settings = %+v", s)
	}
}
