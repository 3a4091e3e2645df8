package agent

import (
	"fmt"
	"math/rand/v2"

	"github.com/palemoky/tractor/internal/game"
)

// Summary 多局自对弈的汇总结果
type Summary struct {
	Games          int
	DealerWins     int // 守方（庄家方）得分为正的局数
	ChallengerWins int // 抓分方得分为正的局数
	Draws          int // 双方都未得分的局数

	TotalRounds int                     // 所有局的出牌轮数
	TotalFinals [game.NumSeats]float64 // 各座位最终得分累计
}

// Runner 驱动四个智能体完成多局自对弈
type Runner struct {
	agents [game.NumSeats]Agent
	rng    *rand.Rand
}

// NewRunner 创建自对弈驱动器
func NewRunner(agents [game.NumSeats]Agent, rng *rand.Rand) *Runner {
	return &Runner{agents: agents, rng: rng}
}

// PlayOne 跑完一局并返回终局对象
func (r *Runner) PlayOne(cfg game.Config) (*game.Game, error) {
	cfg.Rand = rand.New(rand.NewPCG(r.rng.Uint64(), r.rng.Uint64()))
	g, err := game.New(cfg)
	if err != nil {
		return nil, err
	}

	seat, err := g.Start()
	if err != nil {
		return nil, err
	}

	for !g.Done() {
		obs := g.Observe(seat)
		if len(obs.Actions) == 0 {
			return nil, fmt.Errorf("座位 %v 在 %v 阶段无动作可选", seat, obs.Stage)
		}

		action := r.agents[seat].Act(obs)
		step, err := g.Apply(seat, action)
		if err != nil {
			return nil, fmt.Errorf("座位 %v 执行 %v 失败: %w", seat, action, err)
		}
		seat = step.Next
	}
	return g, nil
}

// Run 连续跑 games 局并汇总
func (r *Runner) Run(cfg game.Config, games int) (Summary, error) {
	var sum Summary
	for range games {
		g, err := r.PlayOne(cfg)
		if err != nil {
			return sum, err
		}

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
	return sum, nil
}
