// Package content holds the editable site copy and arcade settings, and the
// client the arcade uses to fetch them from the site server.
package content

import (
	"strconv"
	"strings"

	"github.com/Zachkp/playground/internal/engine"
)

// Field is one editable content entry as shown in the admin editor.
type Field struct {
	Key   string
	Label string
	// Long fields get a textarea.
	Long bool
}

// Fields lists every editable key in editor order.
var Fields = []Field{
	{Key: "hero_intro", Label: "Hero Intro"},
	{Key: "hero_name", Label: "Hero Name"},
	{Key: "hero_subtitle", Label: "Hero Subtitle"},
	{Key: "about_title", Label: "About Title"},
	{Key: "story_1_title", Label: "Story 1 Title"},
	{Key: "story_1_text", Label: "Story 1 Text", Long: true},
	{Key: "story_2_title", Label: "Story 2 Title"},
	{Key: "story_2_text", Label: "Story 2 Text", Long: true},
	{Key: "story_3_title", Label: "Story 3 Title"},
	{Key: "story_3_text", Label: "Story 3 Text", Long: true},
	{Key: "projects_title", Label: "Projects Title"},
	{Key: "games_title", Label: "Games Title"},
	{Key: "leaderboard_title", Label: "Leaderboard Title"},
	{Key: "project_1_title", Label: "Project 1 Title"},
	{Key: "project_2_title", Label: "Project 2 Title"},
	{Key: "project_3_title", Label: "Project 3 Title"},
	{Key: "game_1_desc", Label: "Game 1 Description"},
	{Key: "game_3_desc", Label: "Game 3 Description"},
	{Key: "secret_message", Label: "Secret Mode Message", Long: true},
	{Key: "contact_title", Label: "Contact Title"},
	{Key: "contact_button", Label: "Contact Button"},
	{Key: "skill_html", Label: "Skill HTML (%)"},
	{Key: "skill_js", Label: "Skill JavaScript (%)"},
	{Key: "skill_editing", Label: "Skill Editing (%)"},
	{Key: "skill_creativity", Label: "Skill Creativity (%)"},
	{Key: "enable_blockblast", Label: "Enable Block Blast (true/false)"},
	{Key: "enable_cat_mouse", Label: "Enable Cat & Mouse (true/false)"},
	{Key: "enable_rocket_touch", Label: "Enable Rocket Touch (true/false)"},
	{Key: "theme_mode", Label: "Default Theme (dark/light)"},
	{Key: "sfx_default", Label: "SFX Default (on/off)"},
	{Key: "music_default", Label: "Music Default (on/off)"},
	{Key: "icon_scale", Label: "Icon Scale (e.g. 1 or 1.2)"},
	{Key: "font_scale", Label: "Font Scale (e.g. 1 or 1.1)"},
}

// Defaults are seeded into the database at boot and used by the arcade when
// the content fetch fails.
func Defaults() map[string]string {
	return map[string]string{
		"hero_intro":          "Hi, I'm",
		"hero_name":           "Your Name",
		"hero_subtitle":       "Creative Developer • Video Editor • Storyteller",
		"about_title":         "About Me · Story Mode",
		"story_1_title":       "Chapter 1 · Spark",
		"story_1_text":        "It started with curiosity about design and interactive code.",
		"story_2_title":       "Chapter 2 · Build",
		"story_2_text":        "Building websites, videos and visual stories that stick.",
		"story_3_title":       "Chapter 3 · Evolve",
		"story_3_text":        "Balancing creativity, performance and modern user experience.",
		"projects_title":      "Projects",
		"games_title":         "Mini Game Zone",
		"leaderboard_title":   "Local Leaderboard",
		"project_1_title":     "Immersive Landing",
		"project_2_title":     "Brand Motion Reel",
		"project_3_title":     "UI Aesthetic Kit",
		"game_1_desc":         "Move with the mouse or touch to catch skills.",
		"game_3_desc":         "Press Space/↑ to jump and dodge the bugs!",
		"secret_message":      `Secret Mode unlocked: "You found the hidden cosmos of creativity!"`,
		"contact_title":       "Contact Me",
		"contact_button":      "Send Message",
		"skill_html":          "90",
		"skill_js":            "80",
		"skill_editing":       "85",
		"skill_creativity":    "95",
		"enable_blockblast":   "true",
		"enable_cat_mouse":    "true",
		"enable_rocket_touch": "true",
		"theme_mode":          "dark",
		"sfx_default":         "on",
		"music_default":       "off",
		"icon_scale":          "1",
		"font_scale":          "1",
	}
}

// Known reports whether key is an editable content key.
func Known(key string) bool {
	for _, f := range Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Settings is the arcade's view of the content mapping.
type Settings struct {
	EnableBlockBlast  bool
	EnableCatMouse    bool
	EnableRocketTouch bool

	Theme string
	SfxOn bool

	IconScale float64
	FontScale float64

	GamesTitle       string
	LeaderboardTitle string
	// Descriptions keyed by game title.
	Descriptions map[string]string
}

// Palette returns the colors for the configured theme.
func (s Settings) Palette() engine.Palette {
	if s.Theme == "light" {
		return engine.Light
	}
	return engine.Dark
}

// Parse builds Settings from a content mapping. Missing keys take their
// default; enable flags only turn a game off on an explicit "false".
func Parse(values map[string]string) Settings {
	defaults := Defaults()
	get := func(key string) string {
		if v, ok := values[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return defaults[key]
	}

	s := Settings{
		EnableBlockBlast:  flag(get("enable_blockblast")),
		EnableCatMouse:    flag(get("enable_cat_mouse")),
		EnableRocketTouch: flag(get("enable_rocket_touch")),
		Theme:             "dark",
		SfxOn:             onOff(get("sfx_default"), true),
		IconScale:         scale(get("icon_scale")),
		FontScale:         scale(get("font_scale")),
		GamesTitle:        get("games_title"),
		LeaderboardTitle:  get("leaderboard_title"),
		Descriptions: map[string]string{
			"Skill Catcher": get("game_1_desc"),
			"Code Runner":   get("game_3_desc"),
		},
	}
	if strings.EqualFold(get("theme_mode"), "light") {
		s.Theme = "light"
	}
	return s
}

func flag(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}

func onOff(v string, fallback bool) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}
	return fallback
}

func scale(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 1
	}
	return f
}
