package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lox/heartsforbots/internal/config"
	"github.com/lox/heartsforbots/internal/console"
	"github.com/lox/heartsforbots/internal/hearts"
	"github.com/lox/heartsforbots/internal/randutil"
)

type PlayCmd struct {
	Name    string `help:"Display name (defaults to $USER)"`
	Players int    `default:"4" help:"Number of seats including you (3-7)"`
	Variant string `help:"Rule variant to play ($HEARTS_VARIANT)"`
	Config  string `help:"Variants HCL file ($HEARTS_CONFIG)"`
	Seed    int64  `help:"RNG seed, 0 for time-based ($HEARTS_SEED)"`
	Debug   bool   `help:"Debug logging"`
}

func (c *PlayCmd) Run() error {
	env, err := config.EnvOverrides()
	if err != nil {
		return err
	}
	logger := setupLogger(c.Debug, env.LogLevel)

	variants, err := config.Load(firstOf(c.Config, env.ConfigFile))
	if err != nil {
		return err
	}
	variant, err := variants.Lookup(firstOf(c.Variant, env.Variant))
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = env.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		name = "Player"
	}

	players := make([]hearts.Player, c.Players)
	players[0] = console.New(name, os.Stdin, os.Stdout)
	for seat := 1; seat < c.Players; seat++ {
		players[seat] = hearts.NewBot(hearts.BotNames[seat-1], randutil.New(seed+int64(seat)))
	}

	game, err := hearts.NewGame(randutil.New(seed), players, variant.Options(), hearts.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("starting game", "id", game.ID(), "variant", variant.Name, "seed", seed, "players", c.Players)

	res, err := game.Run(signalContext(logger))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			fmt.Println("Game abandoned.")
			return nil
		}
		return err
	}

	fmt.Printf("Game over after %d rounds.\n", res.Rounds)
	return nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
