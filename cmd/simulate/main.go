package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/palemoky/tractor/internal/agent"
	"github.com/palemoky/tractor/internal/config"
	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/logger"
	"github.com/palemoky/tractor/internal/storage"
)

func main() {
	games := flag.Int("games", 100, "自对弈局数")
	seed := flag.Uint64("seed", 1, "随机种子")
	rankFlag := flag.String("rank", "2", "级牌点数 (2..10/J/Q/K/A)")
	counterBid := flag.Bool("counterbid", true, "允许抄底")
	combos := flag.Bool("combos", true, "允许甩牌")
	lineupFlag := flag.String("agents", "greedy,random,greedy,random", "四个座位的策略，北西南东顺序")
	redisAddr := flag.String("redis", "", "Redis 地址，非空时把结果记入排行榜")
	logLevel := flag.String("log", "info", "日志级别")
	flag.Parse()

	if err := logger.Init(*logLevel, ""); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	gameCfg := config.GameConfig{DominantRank: *rankFlag}
	dominant, err := gameCfg.ParseDominantRank()
	if err != nil {
		log.Fatalf("级牌无效: %v", err)
	}
	cfg := game.Config{
		DominantRank:     dominant,
		EnableCounterBid: *counterBid,
		EnableCombos:     *combos,
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	lineup, err := parseLineup(*lineupFlag, rng)
	if err != nil {
		log.Fatalf("策略配置无效: %v", err)
	}

	var lb *storage.Leaderboard
	if *redisAddr != "" {
		lb = storage.NewLeaderboard(redis.NewClient(&redis.Options{Addr: *redisAddr}))
	}

	runner := agent.NewRunner(lineup, rng)

	var sum agent.Summary
	for i := range *games {
		g, err := runner.PlayOne(cfg)
		if err != nil {
			log.Fatalf("第 %d 局失败: %v", i+1, err)
		}
		accumulate(&sum, g)
		logger.L().Debug("对局结束", zap.Int("game", i+1), zap.String("status", g.Status()))

		if lb != nil {
			recordGame(lb, lineup, g)
		}
	}

	report(sum, lineup)
}

// parseLineup 解析四个座位的策略
func parseLineup(spec string, rng *rand.Rand) ([game.NumSeats]agent.Agent, error) {
	var lineup [game.NumSeats]agent.Agent
	parts := strings.Split(spec, ",")
	if len(parts) != game.NumSeats {
		return lineup, fmt.Errorf("需要 %d 个策略，得到 %d 个", game.NumSeats, len(parts))
	}
	for i, part := range parts {
		switch strings.TrimSpace(part) {
		case "greedy":
			lineup[i] = agent.NewGreedy()
		case "random":
			lineup[i] = agent.NewRandom(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
		default:
			return lineup, fmt.Errorf("未知策略: %q", part)
		}
	}
	return lineup, nil
}

// accumulate 把一局结果并入汇总
func accumulate(sum *agent.Summary, g *game.Game) {
	sum.Games++
	sum.TotalRounds += g.RoundCount()

	finals := g.Finals()
	for seat, f := range finals {
		sum.TotalFinals[seat] += f
	}

	dealer, _ := g.Dealer()
	switch {
	case finals[dealer] > 0:
		sum.DealerWins++
	case finals[dealer] < 0:
		sum.ChallengerWins++
	default:
		sum.Draws++
	}
}

// recordGame 把一局结果记入排行榜，座位名作为玩家 ID
func recordGame(lb *storage.Leaderboard, lineup [game.NumSeats]agent.Agent, g *game.Game) {
	dealer, ok := g.Dealer()
	if !ok {
		return
	}
	finals := g.Finals()
	for _, seat := range game.AllPositions {
		id := fmt.Sprintf("sim-%v-%s", seat, lineup[seat].Name())
		if err := lb.RecordGameResult(context.Background(), id, id,
			seat.SameTeam(dealer), finals[seat] > 0); err != nil {
			logger.L().Warn("记录战绩失败", zap.String("player", id), zap.Error(err))
		}
	}
}

// report 打印汇总结果
func report(sum agent.Summary, lineup [game.NumSeats]agent.Agent) {
	fmt.Printf("共 %d 局，平均每局 %.1f 轮\n", sum.Games, float64(sum.TotalRounds)/float64(max(sum.Games, 1)))
	fmt.Printf("庄家方胜 %d 局，抓分方胜 %d 局，平 %d 局\n", sum.DealerWins, sum.ChallengerWins, sum.Draws)
	for _, seat := range game.AllPositions {
		fmt.Printf("  %v (%s): 平均得分 %+.3f\n",
			seat, lineup[seat].Name(), sum.TotalFinals[seat]/float64(max(sum.Games, 1)))
	}
}
