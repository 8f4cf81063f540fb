package main

import (
	"context"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/playground/internal/arcade"
	"github.com/Zachkp/playground/internal/config"
	"github.com/Zachkp/playground/internal/content"
	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
	"github.com/Zachkp/playground/internal/screen"
)

func main() {
	cfg, err := config.LoadArcade()
	if err != nil {
		log.Fatal(err)
	}

	fetchCtx, cancelFetch := context.WithTimeout(context.Background(), 5*time.Second)
	settings := content.Load(fetchCtx, content.Client{BaseURL: cfg.SiteURL})
	cancelFetch()

	ctx, cancel := context.WithCancel(context.Background())
	var writer sync.WaitGroup
	store, async := score.OpenSource(score.Source{
		Remote:  cfg.RemoteScores,
		SiteURL: cfg.SiteURL,
		File:    cfg.ScoresFile,
	})
	if async != nil {
		writer.Add(1)
		go func() {
			defer writer.Done()
			async.Run(ctx)
		}()
	}

	var rng engine.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	a, err := arcade.New(arcade.Options{
		Scores:   store,
		Settings: settings,
		Rand:     rng,
		Sound:    screen.NewSfx(),
		NewSurface: func(w, h int) engine.Surface {
			return screen.NewCanvas(w, h, settings.FontScale)
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	ebiten.SetWindowSize(arcade.ScreenWidth, arcade.ScreenHeight)
	ebiten.SetWindowTitle(settings.GamesTitle)
	ebiten.SetTPS(engine.TPS)

	if err := ebiten.RunGame(&screen.Game{Arcade: a, FontScale: settings.FontScale}); err != nil {
		log.Printf("arcade stopped: %v", err)
	}

	cancel()
	writer.Wait()
}
