package main

import (
	"flag"
	"log"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/tractor/internal/agent"
	"github.com/palemoky/tractor/internal/config"
	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/ui"
)

func main() {
	seatFlag := flag.String("seat", "N", "自己坐的座位 (N/W/S/E)")
	rankFlag := flag.String("rank", "2", "级牌点数 (2..10/J/Q/K/A)")
	counterBid := flag.Bool("counterbid", false, "允许抄底")
	combos := flag.Bool("combos", false, "允许甩牌")
	seed := flag.Uint64("seed", 0, "洗牌种子，0 为随机")
	flag.Parse()

	seat, err := game.ParsePosition(*seatFlag)
	if err != nil {
		log.Fatalf("座位无效: %v", err)
	}

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
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}

	agents := make(map[game.Position]agent.Agent, game.NumSeats-1)
	for _, p := range game.AllPositions {
		if p != seat {
			agents[p] = agent.NewGreedy()
		}
	}

	model, err := ui.NewModel(cfg, seat, agents)
	if err != nil {
		log.Fatalf("创建对局失败: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
