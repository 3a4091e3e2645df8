package agent

import (
	"math/rand/v2"

	"github.com/palemoky/tractor/internal/game"
)

// Agent 替一个座位在其行动时挑选动作。
// 输入是该座位的观察，输出必须取自 Observation.Actions。
type Agent interface {
	Name() string
	Act(obs game.Observation) game.Action
}

// Random 均匀随机选择合法动作，主要用于对局回归和陪打
type Random struct {
	rng *rand.Rand
}

// NewRandom 创建随机智能体
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) Name() string { return "随机" }

func (a *Random) Act(obs game.Observation) game.Action {
	return obs.Actions[a.rng.IntN(len(obs.Actions))]
}
