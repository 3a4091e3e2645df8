package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey    = "player:stats:"
	leaderboardKey    = "leaderboard:score"
	dailyLeaderboard  = "leaderboard:daily:"
	weeklyLeaderboard = "leaderboard:weekly:"
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	// 总计
	TotalGames int `json:"total_games"` // 总场次
	Wins       int `json:"wins"`        // 胜场
	Losses     int `json:"losses"`      // 败场

	// 庄家方/抓分方分开统计
	DefenderGames   int `json:"defender_games"`   // 庄家方场次
	DefenderWins    int `json:"defender_wins"`    // 庄家方胜场
	ChallengerGames int `json:"challenger_games"` // 抓分方场次
	ChallengerWins  int `json:"challenger_wins"`  // 抓分方胜场

	// 积分
	Score int `json:"score"` // 当前积分

	// 连胜/连败
	CurrentStreak int `json:"current_streak"` // 正数为连胜，负数为连败
	MaxWinStreak  int `json:"max_win_streak"` // 最大连胜

	// 时间
	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// WinRate 胜率（百分比）
func (s *PlayerStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames) * 100
}

// 积分规则：守庄方守住升级拿分多，抄底成功的抓分方同理
const (
	WinAsDefender    = 25  // 庄家方获胜
	WinAsChallenger  = 20  // 抓分方获胜
	LoseAsDefender   = -15 // 庄家方失败
	LoseAsChallenger = -10 // 抓分方失败

	// 连胜加成
	StreakBonus3  = 5  // 3 连胜加成
	StreakBonus5  = 10 // 5 连胜加成
	StreakBonus10 = 20 // 10 连胜加成
)

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Score      int     `json:"score"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// Leaderboard 排行榜与玩家战绩存储
type Leaderboard struct {
	redis *redis.Client
}

// NewLeaderboard 创建排行榜存储
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在时返回 nil
func (lb *Leaderboard) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	key := playerStatsKey + playerID
	data, err := lb.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (lb *Leaderboard) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	key := playerStatsKey + stats.PlayerID
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lb.redis.Set(ctx, key, data, 0).Err()
}

// getOrCreateStats 获取或创建玩家统计
func (lb *Leaderboard) getOrCreateStats(ctx context.Context, playerID, playerName string) (*PlayerStats, error) {
	stats, err := lb.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		return &PlayerStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}, nil
	}
	return stats, nil
}

// updateSideStats 更新阵营相关统计并返回基础积分变化
func updateSideStats(stats *PlayerStats, isDefender, isWinner bool) int {
	switch {
	case isDefender && isWinner:
		stats.DefenderGames++
		stats.DefenderWins++
		return WinAsDefender
	case isDefender && !isWinner:
		stats.DefenderGames++
		return LoseAsDefender
	case !isDefender && isWinner:
		stats.ChallengerGames++
		stats.ChallengerWins++
		return WinAsChallenger
	default: // !isDefender && !isWinner
		stats.ChallengerGames++
		return LoseAsChallenger
	}
}

// updateWinLossStats 更新胜负统计和连胜/连败
func updateWinLossStats(stats *PlayerStats, isWinner bool) {
	if isWinner {
		stats.Wins++
		stats.CurrentStreak = max(1, stats.CurrentStreak+1)
	} else {
		stats.Losses++
		stats.CurrentStreak = min(-1, stats.CurrentStreak-1)
	}

	if stats.CurrentStreak > stats.MaxWinStreak {
		stats.MaxWinStreak = stats.CurrentStreak
	}
}

// calculateStreakBonus 计算连胜加成
func calculateStreakBonus(streak int) int {
	switch {
	case streak >= 10:
		return StreakBonus10
	case streak >= 5:
		return StreakBonus5
	case streak >= 3:
		return StreakBonus3
	default:
		return 0
	}
}

// RecordGameResult 记录一局结果。isDefender 表示该玩家属于庄家方
func (lb *Leaderboard) RecordGameResult(ctx context.Context, playerID, playerName string, isDefender, isWinner bool) error {
	stats, err := lb.getOrCreateStats(ctx, playerID, playerName)
	if err != nil {
		return err
	}

	// 更新基本信息
	stats.PlayerName = playerName
	stats.TotalGames++
	stats.LastPlayedAt = time.Now().Unix()

	// 更新阵营和胜负统计
	scoreChange := updateSideStats(stats, isDefender, isWinner)
	updateWinLossStats(stats, isWinner)

	// 计算连胜加成并更新积分
	scoreChange += calculateStreakBonus(stats.CurrentStreak)
	stats.Score = max(0, stats.Score+scoreChange)

	// 保存并更新排行榜
	if err := lb.SavePlayerStats(ctx, stats); err != nil {
		return err
	}
	return lb.updateLeaderboard(ctx, stats)
}

// updateLeaderboard 把最新积分写进总榜、日榜和周榜
func (lb *Leaderboard) updateLeaderboard(ctx context.Context, stats *PlayerStats) error {
	member := redis.Z{
		Score:  float64(stats.Score),
		Member: stats.PlayerID,
	}

	if err := lb.redis.ZAdd(ctx, leaderboardKey, member).Err(); err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	dailyKey := dailyLeaderboard + today
	if err := lb.redis.ZAdd(ctx, dailyKey, member).Err(); err != nil {
		return err
	}
	lb.redis.Expire(ctx, dailyKey, 48*time.Hour)

	year, week := time.Now().ISOWeek()
	weeklyKey := fmt.Sprintf("%s%d-W%02d", weeklyLeaderboard, year, week)
	if err := lb.redis.ZAdd(ctx, weeklyKey, member).Err(); err != nil {
		return err
	}
	lb.redis.Expire(ctx, weeklyKey, 8*24*time.Hour)

	return nil
}

// GetLeaderboard 获取总榜前 limit 名（从高到低）
func (lb *Leaderboard) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	results, err := lb.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		playerID, ok := result.Member.(string)
		if !ok {
			continue
		}

		stats, err := lb.GetPlayerStats(ctx, playerID)
		if err != nil || stats == nil {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   playerID,
			PlayerName: stats.PlayerName,
			Score:      int(result.Score),
			Wins:       stats.Wins,
			WinRate:    stats.WinRate(),
		})
	}

	return entries, nil
}

// GetPlayerRank 获取玩家总榜排名，未上榜返回 -1
func (lb *Leaderboard) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := lb.redis.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil // Redis 排名从 0 开始
}
