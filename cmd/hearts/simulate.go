package main

import (
	"fmt"
	"time"

	"github.com/lox/heartsforbots/internal/config"
	"github.com/lox/heartsforbots/internal/simulator"
)

type SimulateCmd struct {
	Games   int    `default:"1000" help:"Number of games to simulate"`
	Players int    `default:"4" help:"Number of seats (3-7)"`
	Variant string `help:"Rule variant to simulate ($HEARTS_VARIANT)"`
	Config  string `help:"Variants HCL file ($HEARTS_CONFIG)"`
	Seed    int64  `default:"1" help:"Base RNG seed; game i uses seed+i"`
	Workers int    `help:"Concurrent games (defaults to GOMAXPROCS)"`
	Debug   bool   `help:"Debug logging"`
}

func (c *SimulateCmd) Run() error {
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

	logger.Info("simulating", "games", c.Games, "players", c.Players, "variant", variant.Name, "seed", c.Seed)
	start := time.Now()

	summary, err := simulator.Run(signalContext(logger), simulator.Config{
		Games:   c.Games,
		Players: c.Players,
		Options: variant.Options(),
		Seed:    c.Seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("Simulated %d games of %q in %s (%.1f rounds/game)\n\n",
		summary.Games, variant.Name, elapsed.Round(time.Millisecond),
		float64(summary.Rounds)/float64(summary.Games))
	fmt.Printf("%-10s %8s %8s %8s %12s\n", "Seat", "Wins", "Draws", "Win %", "Mean score")
	for _, s := range summary.Seats {
		fmt.Printf("%-10s %8d %8d %7.1f%% %12.1f\n",
			s.Name, s.Wins, s.Draws,
			100*float64(s.Wins)/float64(summary.Games),
			s.Mean(summary.Games))
	}
	if summary.DrawGames > 0 {
		fmt.Printf("\n%d games ended in a draw.\n", summary.DrawGames)
	}
	return nil
}
