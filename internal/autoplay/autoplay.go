// Package autoplay plays 2048 games headlessly with random legal moves.
// It is used to exercise the engine and to benchmark spawn settings.
package autoplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// DefaultMaxMoves bounds a single game.
const DefaultMaxMoves = 100000

// ErrNoGames is returned when a batch asks for no games.
var ErrNoGames = errors.New("autoplay: games must be positive")

// Config describes a batch of games.
type Config struct {
	Variant  t2048.Variant
	Games    int
	Seed     int64 // First game seed; game i uses Seed+i. 0 means time-based
	MaxMoves int   // 0 means DefaultMaxMoves
	Workers  int   // Games played concurrently; 1 or less plays them in order
	Options  t2048.Options
}

// Run is the outcome of one game.
type Run struct {
	RunID       string
	Seed        int64
	Score       int
	HighestTile int
	Moves       int
	Over        bool // false when MaxMoves was reached first
	Duration    time.Duration
}

// Recorder persists finished runs.
type Recorder interface {
	SaveResult(r storage.Result) (storage.Result, error)
}

// Summary aggregates a batch.
type Summary struct {
	Variant   t2048.Variant
	Runs      []Run
	BestScore int
	MeanScore float64
	BestTile  int
	Tiles     map[int]int // highest tile -> number of games
}

// Play runs the batch. Runs are returned in seed order regardless of Workers.
func Play(ctx context.Context, cfg Config, logger *log.Logger) ([]Run, error) {
	if cfg.Games <= 0 {
		return nil, ErrNoGames
	}
	if cfg.MaxMoves <= 0 {
		cfg.MaxMoves = DefaultMaxMoves
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	runs := make([]Run, cfg.Games)
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 1 {
		eg.SetLimit(cfg.Workers)
	} else {
		eg.SetLimit(1)
	}

	for i := range runs {
		seed := base + int64(i)
		eg.Go(func() error {
			r, err := playOne(ctx, cfg, seed)
			if err != nil {
				return fmt.Errorf("autoplay: game %d (seed %d): %w", i, seed, err)
			}
			runs[i] = r
			logger.Debug("game finished", "variant", cfg.Variant.ID, "seed", seed,
				"score", r.Score, "highest", r.HighestTile, "moves", r.Moves)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// playOne plays a single game to the end.
func playOne(ctx context.Context, cfg Config, seed int64) (Run, error) {
	start := time.Now()

	opts := cfg.Options
	opts.Seed = seed
	opts.Rand = nil
	gs, err := t2048.NewWithOptions(cfg.Variant.Size, nil, opts)
	if err != nil {
		return Run{}, err
	}

	// Moves use their own source so spawns depend only on the seed and the moves.
	moves := rand.New(rand.NewSource(seed ^ 0x2048))
	legal := make([]t2048.Direction, 0, len(t2048.Directions))

	for gs.Moves() < cfg.MaxMoves && !gs.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return Run{}, err
		}

		legal = legal[:0]
		for _, d := range t2048.Directions {
			if gs.Simulate(d).Changed {
				legal = append(legal, d)
			}
		}
		if len(legal) == 0 {
			break
		}

		if _, err := gs.ApplyMove(legal[moves.Intn(len(legal))], true); err != nil {
			return Run{}, err
		}
	}

	return Run{
		RunID:       uuid.NewString(),
		Seed:        seed,
		Score:       gs.Score(),
		HighestTile: gs.HighestTile(),
		Moves:       gs.Moves(),
		Over:        gs.IsGameOver(),
		Duration:    time.Since(start),
	}, nil
}

// Record saves finished runs one at a time. Runs cut short by MaxMoves are skipped.
func Record(rec Recorder, variant t2048.Variant, runs []Run) (int, error) {
	saved := 0
	for _, r := range runs {
		if !r.Over {
			continue
		}
		_, err := rec.SaveResult(storage.Result{
			RunID:       r.RunID,
			Variant:     variant.ID,
			Score:       r.Score,
			HighestTile: r.HighestTile,
			Moves:       r.Moves,
			Size:        variant.Size,
		})
		if err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

// Summarize aggregates runs.
func Summarize(variant t2048.Variant, runs []Run) Summary {
	s := Summary{Variant: variant, Runs: runs, Tiles: make(map[int]int)}
	if len(runs) == 0 {
		return s
	}

	total := 0
	for _, r := range runs {
		total += r.Score
		s.BestScore = max(s.BestScore, r.Score)
		s.BestTile = max(s.BestTile, r.HighestTile)
		s.Tiles[r.HighestTile]++
	}
	s.MeanScore = float64(total) / float64(len(runs))
	return s
}

// TileCounts returns the highest-tile histogram sorted by tile value.
func (s Summary) TileCounts() [][2]int {
	tiles := make([]int, 0, len(s.Tiles))
	for t := range s.Tiles {
		tiles = append(tiles, t)
	}
	slices.Sort(tiles)

	out := make([][2]int, len(tiles))
	for i, t := range tiles {
		out[i] = [2]int{t, s.Tiles[t]}
	}
	return out
}
