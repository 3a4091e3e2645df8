package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T) (*Leaderboard, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewLeaderboard(client), mr
}

func TestRecordGameResult(t *testing.T) {
	lb, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	// 庄家方首胜
	require.NoError(t, lb.RecordGameResult(ctx, "p1", "小明", true, true))

	stats, err := lb.GetPlayerStats(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalGames)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.DefenderGames)
	assert.Equal(t, 1, stats.DefenderWins)
	assert.Equal(t, WinAsDefender, stats.Score)
	assert.Equal(t, 1, stats.CurrentStreak)

	// 抓分方失败：积分下降，连胜中断
	require.NoError(t, lb.RecordGameResult(ctx, "p1", "小明", false, false))

	stats, err = lb.GetPlayerStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.ChallengerGames)
	assert.Equal(t, 0, stats.ChallengerWins)
	assert.Equal(t, WinAsDefender+LoseAsChallenger, stats.Score)
	assert.Equal(t, -1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.MaxWinStreak)
}

func TestScoreNeverNegative(t *testing.T) {
	lb, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	for range 3 {
		require.NoError(t, lb.RecordGameResult(ctx, "p1", "小明", true, false))
	}

	stats, err := lb.GetPlayerStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Score)
	assert.Equal(t, -3, stats.CurrentStreak)
}

func TestStreakBonus(t *testing.T) {
	lb, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	for range 3 {
		require.NoError(t, lb.RecordGameResult(ctx, "p1", "小明", false, true))
	}

	stats, err := lb.GetPlayerStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.CurrentStreak)
	// 第三连胜触发加成
	assert.Equal(t, 3*WinAsChallenger+StreakBonus3, stats.Score)
	assert.Equal(t, 3, stats.MaxWinStreak)
}

func TestGetLeaderboard(t *testing.T) {
	lb, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	// p1 一胜，p2 两胜，p3 一败
	require.NoError(t, lb.RecordGameResult(ctx, "p1", "小明", true, true))
	require.NoError(t, lb.RecordGameResult(ctx, "p2", "小红", false, true))
	require.NoError(t, lb.RecordGameResult(ctx, "p2", "小红", true, true))
	require.NoError(t, lb.RecordGameResult(ctx, "p3", "小刚", false, false))

	entries, err := lb.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "p2", entries[0].PlayerID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "小红", entries[0].PlayerName)
	assert.Equal(t, 2, entries[0].Wins)
	assert.InDelta(t, 100.0, entries[0].WinRate, 1e-9)

	assert.Equal(t, "p1", entries[1].PlayerID)
	assert.Equal(t, "p3", entries[2].PlayerID)
	assert.Equal(t, 0, entries[2].Score)

	// limit 截断
	top, err := lb.GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "p2", top[0].PlayerID)
}

func TestGetPlayerRank(t *testing.T) {
	lb, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	rank, err := lb.GetPlayerRank(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rank)

	for i := range 3 {
		id := fmt.Sprintf("p%d", i+1)
		for range i + 1 {
			require.NoError(t, lb.RecordGameResult(ctx, id, id, true, true))
		}
	}

	rank, err = lb.GetPlayerRank(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)

	rank, err = lb.GetPlayerRank(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rank)
}

func TestGetPlayerStatsMissing(t *testing.T) {
	lb, mr := newTestLeaderboard(t)
	defer mr.Close()

	stats, err := lb.GetPlayerStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
