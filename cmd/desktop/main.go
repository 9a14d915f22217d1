package main

import (
	"math/rand"
	"reactionarena/internal/config"
	"reactionarena/internal/desktop"
	"reactionarena/internal/gamedata"

	"github.com/charmbracelet/log"
)

func main() {
	cfg := config.Load()
	logger := cfg.Logger()

	rng := rand.New(rand.NewSource(cfg.Seeded()))
	game := gamedata.NewGame(cfg.Game(), rng, nil, logger)

	if err := desktop.Run(game, cfg.WindowWidth(), cfg.WindowHeight, logger); err != nil {
		log.Fatal(err.Error())
	}
}
