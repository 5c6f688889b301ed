// Package simulator runs batches of bot-only games concurrently and
// aggregates the outcomes per seat.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/heartsforbots/internal/hearts"
	"github.com/lox/heartsforbots/internal/randutil"
)

// Config controls a simulation batch.
type Config struct {
	Games   int
	Players int
	Options hearts.Options
	Seed    int64 // base seed; game i plays with Seed+i
	Workers int   // concurrent games, defaults to GOMAXPROCS
	Logger  *log.Logger
}

// SeatStats aggregates one seat's outcomes across the batch.
type SeatStats struct {
	Name     string
	Wins     int // outright wins
	Draws    int // shared lowest score
	SumScore int
}

// Mean returns the seat's mean final score.
func (s SeatStats) Mean(games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(s.SumScore) / float64(games)
}

// Summary is the aggregate of a simulation batch.
type Summary struct {
	Games     int
	Rounds    int // total rounds played across the batch
	Seats     []SeatStats
	DrawGames int
}

// Run plays the configured number of games and aggregates the results. Game
// i always uses seed base+i, so a batch is reproducible and any single game
// can be replayed alone.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if cfg.Players < hearts.MinPlayers || cfg.Players > hearts.MaxPlayers {
		return nil, fmt.Errorf("players must be %d-%d, got %d", hearts.MinPlayers, hearts.MaxPlayers, cfg.Players)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	summary := &Summary{Games: cfg.Games, Seats: make([]SeatStats, cfg.Players)}
	for seat := range summary.Seats {
		summary.Seats[seat].Name = hearts.BotNames[seat]
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			res, err := playGame(ctx, seed, cfg.Players, cfg.Options)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", seed, err)
			}
			logger.Debug("game finished", "seed", seed, "rounds", res.Rounds, "scores", fmt.Sprint(res.Scores))

			mu.Lock()
			defer mu.Unlock()
			summary.Rounds += res.Rounds
			for seat, score := range res.Scores {
				summary.Seats[seat].SumScore += score
			}
			if res.Draw {
				summary.DrawGames++
				for _, seat := range res.Winners {
					summary.Seats[seat].Draws++
				}
			} else {
				summary.Seats[res.Winners[0]].Wins++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

func playGame(ctx context.Context, seed int64, numPlayers int, opts hearts.Options) (*hearts.Result, error) {
	players := make([]hearts.Player, numPlayers)
	for seat := range players {
		players[seat] = hearts.NewBot(hearts.BotNames[seat], randutil.New(seed^int64(seat+1)))
	}
	game, err := hearts.NewGame(randutil.New(seed), players, opts)
	if err != nil {
		return nil, err
	}
	return game.Run(ctx)
}
