package agent

import (
	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/game/card"
	"github.com/palemoky/tractor/internal/game/rule"
)

// Greedy 基于简单启发式的智能体：能亮则亮、埋底弃杂牌、
// 队友大时喂分、能大过就用最便宜的牌大过，否则垫最小的牌。
type Greedy struct{}

// NewGreedy 创建启发式智能体
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (a *Greedy) Name() string { return "贪心" }

func (a *Greedy) Act(obs game.Observation) game.Action {
	switch obs.Stage {
	case game.StageDeclare:
		return a.declare(obs)
	case game.StageKitty:
		return a.placeKitty(obs)
	case game.StageCounterBid:
		return a.counterBid(obs)
	case game.StagePlay:
		return a.play(obs)
	}
	return obs.Actions[0]
}

// declare 有得亮就亮，优先选级别高的
func (a *Greedy) declare(obs game.Observation) game.Action {
	var best game.Action
	bestLevel := 0
	for _, act := range obs.Actions {
		if d, ok := act.(game.Declare); ok && d.Level > bestLevel {
			best, bestLevel = d, d.Level
		}
	}
	if best != nil {
		return best
	}
	return game.PassDeclare{}
}

// placeKitty 逐张埋掉最没用的牌
func (a *Greedy) placeKitty(obs game.Observation) game.Action {
	var best game.Action
	bestCost := -1
	for _, act := range obs.Actions {
		p, ok := act.(game.PlaceKitty)
		if !ok {
			continue
		}
		cost := cardCost(p.Card, obs.Trump)
		if bestCost < 0 || cost < bestCost {
			best, bestCost = p, cost
		}
	}
	if best != nil {
		return best
	}
	return obs.Actions[0]
}

// counterBid 有资格就抄，花色序越高越好
func (a *Greedy) counterBid(obs game.Observation) game.Action {
	var best game.Action
	bestRank := -1
	for _, act := range obs.Actions {
		if cb, ok := act.(game.CounterBid); ok && cb.Suit.CounterBidRank() > bestRank {
			best, bestRank = cb, cb.Suit.CounterBidRank()
		}
	}
	if best != nil {
		return best
	}
	return game.PassCounterBid{}
}

func (a *Greedy) play(obs game.Observation) game.Action {
	if obs.Leading && len(obs.Actions) > 0 {
		if _, ok := obs.Actions[0].(game.Lead); ok {
			return a.lead(obs)
		}
		// 甩牌追加阶段直接定牌，组合交给领出时一次决定
		return game.EndLead{}
	}
	return a.follow(obs)
}

// lead 领出自己最大的牌型：形状越大越好，同形状比顶张
func (a *Greedy) lead(obs game.Observation) game.Action {
	var best game.Action
	bestSize, bestTop := -1, -1
	for _, act := range obs.Actions {
		l, ok := act.(game.Lead)
		if !ok {
			continue
		}
		size := l.Cards.Size()
		top := topEffRank(l.Cards, obs.Trump)
		if size > bestSize || (size == bestSize && top > bestTop) {
			best, bestSize, bestTop = l, size, top
		}
	}
	if best != nil {
		return best
	}
	return obs.Actions[0]
}

// follow 跟牌：队友在大就喂分；自己能大过就用最便宜的取胜牌；
// 否则垫成本最低的牌
func (a *Greedy) follow(obs game.Observation) game.Action {
	round := obs.Rounds[len(obs.Rounds)-1]
	partnerWinning := roundWinnerRel(round, obs.Trump) == game.RelOpposite

	var best game.Action
	bestKey := [2]int{}
	for _, act := range obs.Actions {
		f, ok := act.(game.Follow)
		if !ok {
			continue
		}

		var key [2]int
		switch {
		case partnerWinning:
			// 喂分：先比点数多，再比成本低
			key = [2]int{-f.Cards.Points(), setCost(f.Cards, obs.Trump)}
		case beatsRound(round, f.Cards, obs.Trump):
			// 取胜牌按成本排序，且永远优于垫牌
			key = [2]int{-1 << 20, setCost(f.Cards, obs.Trump)}
		default:
			// 垫牌：先保点数，再比成本
			key = [2]int{f.Cards.Points(), setCost(f.Cards, obs.Trump)}
		}

		if best == nil || key[0] < bestKey[0] || (key[0] == bestKey[0] && key[1] < bestKey[1]) {
			best, bestKey = f, key
		}
	}
	if best != nil {
		return best
	}
	return obs.Actions[0]
}

// roundWinnerRel 返回当前一轮暂时领先者的相对座位
func roundWinnerRel(round game.RoundView, t card.Trump) game.RelativePosition {
	w := rule.RoundWinner(round.Plays, t)
	return game.RelativePosition((int(round.Leader) + w) % game.NumSeats)
}

// beatsRound 判断 cards 接在当前一轮后能否成为暂时领先者
func beatsRound(round game.RoundView, cards card.CardSet, t card.Trump) bool {
	plays := make([]card.CardSet, 0, len(round.Plays)+1)
	plays = append(plays, round.Plays...)
	plays = append(plays, cards)
	return rule.RoundWinner(plays, t) == len(plays)-1
}

// cardCost 牌的保留价值：将牌和分牌更贵
func cardCost(c card.Card, t card.Trump) int {
	cost := t.EffectiveRank(c) + 5*c.Points()
	if t.IsTrump(c) {
		cost += 30
	}
	return cost
}

func setCost(cs card.CardSet, t card.Trump) int {
	total := 0
	for _, c := range cs.Cards() {
		total += cardCost(c, t)
	}
	return total
}

func topEffRank(cs card.CardSet, t card.Trump) int {
	top := 0
	for _, c := range cs.Cards() {
		if r := t.EffectiveRank(c); r > top {
			top = r
		}
	}
	return top
}
