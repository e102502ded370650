package autoplay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func mini(t *testing.T) t2048.Variant {
	t.Helper()
	v, ok := t2048.GetVariant("2048-mini")
	require.True(t, ok)
	return v
}

func TestPlayIsDeterministic(t *testing.T) {
	cfg := Config{Variant: mini(t), Games: 6, Seed: 100, Options: t2048.DefaultOptions()}

	seq, err := Play(context.Background(), cfg, nil)
	require.NoError(t, err)

	cfg.Workers = 4
	par, err := Play(context.Background(), cfg, nil)
	require.NoError(t, err)

	require.Len(t, seq, 6)
	require.Len(t, par, 6)
	for i := range seq {
		assert.Equal(t, int64(100+i), seq[i].Seed)
		assert.Equal(t, seq[i].Seed, par[i].Seed)
		assert.Equal(t, seq[i].Score, par[i].Score, "game %d", i)
		assert.Equal(t, seq[i].Moves, par[i].Moves, "game %d", i)
		assert.True(t, seq[i].Over)
		assert.NotEqual(t, seq[i].RunID, par[i].RunID)
	}
}

func TestPlayMaxMoves(t *testing.T) {
	v, ok := t2048.GetVariant("2048-huge")
	require.True(t, ok)

	runs, err := Play(context.Background(), Config{Variant: v, Games: 2, Seed: 1, MaxMoves: 5, Options: t2048.DefaultOptions()}, nil)
	require.NoError(t, err)
	for _, r := range runs {
		assert.Equal(t, 5, r.Moves)
		assert.False(t, r.Over)
	}
}

func TestPlayErrors(t *testing.T) {
	_, err := Play(context.Background(), Config{Variant: mini(t)}, nil)
	assert.ErrorIs(t, err, ErrNoGames)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Play(ctx, Config{Variant: mini(t), Games: 2, Seed: 1, Options: t2048.DefaultOptions()}, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Play(context.Background(), Config{Variant: mini(t), Games: 1, Seed: 1, Options: t2048.Options{NextBaseProbability: 3}}, nil)
	assert.ErrorIs(t, err, t2048.ErrInvalidOptions)
}

type memRecorder struct {
	saved []storage.Result
	err   error
}

func (m *memRecorder) SaveResult(r storage.Result) (storage.Result, error) {
	if m.err != nil {
		return r, m.err
	}
	m.saved = append(m.saved, r)
	return r, nil
}

func TestRecord(t *testing.T) {
	v := mini(t)
	runs := []Run{
		{RunID: "a", Score: 100, HighestTile: 32, Moves: 40, Over: true},
		{RunID: "b", Score: 50, HighestTile: 16, Moves: 5, Over: false},
	}

	rec := &memRecorder{}
	n, err := Record(rec, v, runs)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, rec.saved, 1)
	assert.Equal(t, storage.Result{RunID: "a", Variant: "2048-mini", Score: 100, HighestTile: 32, Moves: 40, Size: 3}, rec.saved[0])

	_, err = Record(&memRecorder{err: errors.New("locked")}, v, runs)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize(mini(t), []Run{
		{Score: 100, HighestTile: 32},
		{Score: 300, HighestTile: 64},
		{Score: 200, HighestTile: 32},
	})

	assert.Equal(t, 300, s.BestScore)
	assert.Equal(t, 64, s.BestTile)
	assert.InDelta(t, 200, s.MeanScore, 1e-9)
	assert.Equal(t, [][2]int{{32, 2}, {64, 1}}, s.TileCounts())

	empty := Summarize(mini(t), nil)
	assert.Zero(t, empty.BestScore)
	assert.Empty(t, empty.TileCounts())
}
