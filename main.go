package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"RoomCrawler/assets"
	"RoomCrawler/config"
	"RoomCrawler/engine"
	"RoomCrawler/game"
	"RoomCrawler/logging"
	"RoomCrawler/scenes"
	"RoomCrawler/styles"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config; defaults are used when missing")
	logLevel := flag.String("log-level", "", "log level, overrides debug.log_level from the config")
	flag.Parse()

	if err := logging.Setup("info", os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config")
	}
	level := cfg.Debug.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := logging.Setup(level, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}

	theme, err := scenes.NewTheme(cfg.Theme)
	if err != nil {
		log.Fatal().Err(err).Msg("theme")
	}

	// ebiten allows a single audio context per process
	audioCtx := audio.NewContext(assets.SampleRate)
	lib, err := assets.Load(context.Background(), game.Manifest(cfg), audioCtx)
	if err != nil {
		log.Fatal().Err(err).Msg("assets")
	}

	app := engine.NewApp(cfg.Window.Width, cfg.Window.Height)
	engine.AddResource(app.Resources, lib)
	engine.AddResource(app.Resources, engine.NewDebugLog(cfg.Debug.Console))

	states := game.AddStates(app)
	app.AddPlugins(
		styles.Plugin{Font: &styles.UiFont{Source: lib.Font}},
		game.Plugin{Config: cfg, States: states},
		scenes.Plugin{Theme: theme, States: states, Debug: cfg.Debug.Overlay},
	)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Window.TPS)
	log.Info().Str("config", *configPath).Msg("starting")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal().Err(err).Msg("game")
	}
}
