package game

import (
	"slices"

	"github.com/palemoky/tractor/internal/game/card"
)

// DeclarationView 定主在某个座位视角下的描述
type DeclarationView struct {
	Seat  RelativePosition
	Suit  card.TrumpSuit
	Level int
}

// RoundView 一轮出牌在某个座位视角下的描述。
// Plays 按行动顺序排列，Plays[0] 为领出；甩牌组合期间领出会原位更新，
// 追加的成分对所有座位立即可见。
type RoundView struct {
	Leader RelativePosition
	Plays  []card.CardSet
}

// Observation 某个座位在当前时刻可见的全部信息。任何座位随时可观察；
// Actions 只对行动座位非空。所有集合都是值拷贝，修改不影响对局。
type Observation struct {
	Seat   Position
	Stage  Stage
	Active RelativePosition // 当前行动座位
	Trump  card.Trump

	Hand  card.CardSet
	Kitty card.CardSet // 只有持底者可见，其余座位为空集合

	Dealer      *RelativePosition // 庄家，未定时为 nil
	Declaration *DeclarationView  // 最近一次定主，无人定主时为 nil

	CounterBids [NumSeats]int          // 各座位抄底次数，按相对座位索引
	Public      [NumSeats]card.CardSet // 各座位公开的牌（亮主、甩牌失败），按相对座位索引

	ChallengerPoints int          // 抓分方累计得分
	DefenderPoints   int          // 守方累计保住的分数
	Unplayed         card.CardSet // 尚未打出的牌，含自己手牌与底牌
	Rounds           []RoundView  // 出牌历史，最后一项为进行中的一轮
	Leading          bool         // 本轮是否由自己领出

	Actions []Action // 当前可行动作，非行动座位为空

	Final float64 // 终局后本方的最终得分
	Done  bool
}

// Observe 生成某个座位当前可见的信息
func (g *Game) Observe(seat Position) Observation {
	obs := Observation{
		Seat:             seat,
		Stage:            g.stage,
		Active:           g.active.RelativeTo(seat),
		Trump:            g.Trump(),
		Hand:             g.hands[seat],
		ChallengerPoints: g.challengerPoints,
		DefenderPoints:   g.defenderPoints,
		Unplayed:         g.unplayed,
		Done:             g.done,
	}

	if g.dealerKnown {
		rel := g.dealer.RelativeTo(seat)
		obs.Dealer = &rel
		if seat == g.kittyOwner {
			obs.Kitty = g.kitty
		}
	}
	if len(g.declarations) > 0 {
		last := g.declarations[len(g.declarations)-1]
		obs.Declaration = &DeclarationView{
			Seat:  last.Seat.RelativeTo(seat),
			Suit:  last.Suit,
			Level: last.Level,
		}
	}
	for _, p := range AllPositions {
		rel := p.RelativeTo(seat)
		obs.CounterBids[rel] = g.counterBids[p]
		obs.Public[rel] = g.public[p]
	}

	obs.Rounds = make([]RoundView, 0, len(g.rounds))
	for _, r := range g.rounds {
		obs.Rounds = append(obs.Rounds, RoundView{
			Leader: r.leader.RelativeTo(seat),
			Plays:  slices.Clone(r.plays),
		})
	}
	if len(g.rounds) > 0 {
		obs.Leading = g.rounds[len(g.rounds)-1].leader == seat
	} else {
		obs.Leading = g.dealerKnown && seat == g.dealer
	}

	if g.done {
		obs.Final = g.finals[seat]
	} else if g.started && seat == g.active {
		obs.Actions = g.legalActions(seat)
	}
	return obs
}
