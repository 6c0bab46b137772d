package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/embodiment/config"
	"github.com/milk9111/embodiment/logger"
)

func main() {
	levelName := flag.String("level", "level.yaml", "level prefab to load")
	configPath := flag.String("config", "", "config file (defaults to prefabs/config.yaml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", true, "hot reload prefabs/ on change")
	flag.Parse()

	if err := run(*levelName, *configPath, *debug, *watch); err != nil {
		logger.L().WithError(err).Error("embodiment exited")
		if sentry.CurrentHub().Client() != nil {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		os.Exit(1)
	}
}

func run(levelName, configPath string, debug, watch bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	log := logger.Init(cfg.Log)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Release: "embodiment"}); err != nil {
			log.WithError(err).Warn("sentry disabled")
		}
		defer sentry.Flush(2 * time.Second)
		defer sentry.Recover()
	}

	game, err := NewGame(cfg, levelName, watch)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("embodiment")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load(config.DefaultFile)
	}
	return config.LoadFile(path)
}
