package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"reactionarena/internal/audio"
	"reactionarena/internal/config"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/terminal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err.Error())
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	// The screen owns the terminal while running, so the logger is silenced.
	// run's returned error is reported by main after the screen is closed.
	logger := log.NewWithOptions(io.Discard, log.Options{Level: cfg.LogLevel})

	bus := events.NewBus()
	rng := rand.New(rand.NewSource(cfg.Seeded()))
	game := gamedata.NewGame(cfg.Game(), rng, bus, logger)

	player := audio.NewPlayer(logger)
	if cfg.Audio {
		if err := player.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer player.Close()
	go player.Run(ctx, bus.Events)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return terminal.NewHost(screen, game, logger).Run(ctx, cfg.FrameDelay)
}
