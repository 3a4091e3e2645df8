package card

import "fmt"

// TrumpSuit 定义将牌花色。除了四种常规花色之外还有两种无将模式：
// 以小王或大王对定主时没有将牌花色，只有王牌和级牌属于主牌。
type TrumpSuit int

const (
	TrumpDiamond TrumpSuit = iota
	TrumpClub
	TrumpHeart
	TrumpSpade
	TrumpSmallJoker // 无将（小王对定主，亦为无人定主时的默认值）
	TrumpBigJoker   // 无将（大王对定主）
)

var trumpSuitNames = map[TrumpSuit]string{
	TrumpDiamond:    "♦",
	TrumpClub:       "♣",
	TrumpHeart:      "♥",
	TrumpSpade:      "♠",
	TrumpSmallJoker: "XJ",
	TrumpBigJoker:   "DJ",
}

func (ts TrumpSuit) String() string {
	if name, ok := trumpSuitNames[ts]; ok {
		return name
	}
	return fmt.Sprintf("TrumpSuit(%d)", int(ts))
}

// IsJoker 判断是否为无将模式
func (ts TrumpSuit) IsJoker() bool {
	return ts == TrumpSmallJoker || ts == TrumpBigJoker
}

// Suit 返回对应的常规花色，无将模式返回 Joker
func (ts TrumpSuit) Suit() Suit {
	if ts.IsJoker() {
		return Joker
	}
	return Suit(ts)
}

// CounterBidRank 返回抄底比较用的花色序：♦ < ♣ < ♥ < ♠ < XJ < DJ
func (ts TrumpSuit) CounterBidRank() int {
	return int(ts) + 1
}

// Trump 定义一局的将牌环境：级牌点数加定主结果。
// 所有有效花色与有效点数的换算都以它为准。
type Trump struct {
	Suit TrumpSuit
	Rank Rank
}

func (t Trump) String() string {
	return fmt.Sprintf("%v级%v", t.Rank, t.Suit)
}

// EffSuit 定义有效花色：跟牌与比较只认有效花色，主牌自成一门。
type EffSuit int

const (
	EffDiamond EffSuit = iota
	EffClub
	EffHeart
	EffSpade
	EffTrump
)

var effSuitNames = map[EffSuit]string{
	EffDiamond: "♦",
	EffClub:    "♣",
	EffHeart:   "♥",
	EffSpade:   "♠",
	EffTrump:   "主",
}

func (es EffSuit) String() string {
	if name, ok := effSuitNames[es]; ok {
		return name
	}
	return fmt.Sprintf("EffSuit(%d)", int(es))
}

// 有效点数的特殊档位：主花色级牌 16，副花色级牌 15，小王 17，大王 18。
// 无将模式没有副花色级牌，四门级牌一律 16，与小王相邻。
// 低于级牌的常规点数整体上移一位，以保证有效点数在一门之内连续。
const (
	rankOffTrump  = 15
	rankOnTrump   = 16
	rankEffSmallJ = 17
	rankEffBigJ   = 18
)

// EffectiveSuit 返回牌在当前将牌环境下的有效花色。
// 王牌和级牌一律属主，主花色的牌属主，其余保持原花色。
func (t Trump) EffectiveSuit(c Card) EffSuit {
	if c.IsJoker() || c.Rank == t.Rank {
		return EffTrump
	}
	if !t.Suit.IsJoker() && c.Suit == t.Suit.Suit() {
		return EffTrump
	}
	return EffSuit(c.Suit)
}

// EffectiveRank 返回牌在当前将牌环境下的有效点数。
// 同一有效花色内：有效点数相邻的对子才能连成拖拉机。
func (t Trump) EffectiveRank(c Card) int {
	switch {
	case c == BigJoker:
		return rankEffBigJ
	case c == SmallJoker:
		return rankEffSmallJ
	case c.Rank == t.Rank:
		if t.Suit.IsJoker() || c.Suit == t.Suit.Suit() {
			return rankOnTrump
		}
		return rankOffTrump
	case c.Rank < t.Rank:
		return int(c.Rank) + 1
	default:
		return int(c.Rank)
	}
}

// IsTrump 判断牌是否属于主牌
func (t Trump) IsTrump(c Card) bool {
	return t.EffectiveSuit(c) == EffTrump
}
