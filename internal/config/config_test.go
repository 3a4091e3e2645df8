package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tractor/internal/game/card"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFull(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 2048
redis:
  addr: redis:6379
  db: 3
log:
  level: debug
game:
  dominant_rank: "10"
  enable_counter_bid: true
  enable_combos: true
  combo_penalty: 0.5
  turn_timeout: 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 2048, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Game.EnableCounterBid)
	assert.True(t, cfg.Game.EnableCombos)
	assert.InDelta(t, 0.5, cfg.Game.ComboPenalty, 1e-9)

	rank, err := cfg.Game.ParseDominantRank()
	require.NoError(t, err)
	assert.Equal(t, card.Rank10, rank)
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "server:\n  port: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1790, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "2", cfg.Game.DominantRank)
	assert.InDelta(t, 0.1, cfg.Game.ComboPenalty, 1e-9)

	assert.Equal(t, cfg, Default())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not a map"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "game:\n  dominant_rank: \"17\"\n"))
	assert.Error(t, err)
}

func TestParseDominantRank(t *testing.T) {
	t.Parallel()

	for want := card.Rank2; want <= card.RankA; want++ {
		cfg := GameConfig{DominantRank: want.String()}
		got, err := cfg.ParseDominantRank()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	cfg := GameConfig{DominantRank: "XJ"}
	_, err := cfg.ParseDominantRank()
	assert.Error(t, err)
}
