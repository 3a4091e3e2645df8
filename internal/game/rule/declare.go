package rule

import (
	"github.com/palemoky/tractor/internal/game/card"
)

// DeclarationOption 定义一个可行的定主选项。
// 级别 1 为单张本花色级牌，级别 2 为本花色级牌对，级别 3 为王牌对（无将）。
type DeclarationOption struct {
	Suit  card.TrumpSuit
	Level int
}

// ValidDeclaration 判断花色与级别的组合是否成立
func ValidDeclaration(suit card.TrumpSuit, level int) bool {
	if suit.IsJoker() {
		return level == 3
	}
	return level == 1 || level == 2
}

// DeclarationCards 返回某个定主选项需要亮出的牌
func DeclarationCards(suit card.TrumpSuit, level int, dominant card.Rank) card.CardSet {
	switch suit {
	case card.TrumpSmallJoker:
		return card.NewSet(card.SmallJoker, card.SmallJoker)
	case card.TrumpBigJoker:
		return card.NewSet(card.BigJoker, card.BigJoker)
	default:
		var s card.CardSet
		s.AddN(card.Card{Suit: suit.Suit(), Rank: dominant}, level)
		return s
	}
}

// CounterBidRank 返回定主结果的抄底比较序。单张定主不设防，序为 0；
// 对子按花色 ♦ < ♣ < ♥ < ♠ < XJ < DJ 排序。
func CounterBidRank(suit card.TrumpSuit, level int) int {
	if level < 2 {
		return 0
	}
	return suit.CounterBidRank()
}

// DeclarableOptions 枚举手牌当前支持的全部定主选项，按花色、级别升序排列
func DeclarableOptions(hand card.CardSet, dominant card.Rank) []DeclarationOption {
	var opts []DeclarationOption
	for s := card.Diamond; s <= card.Spade; s++ {
		n := hand.Count(card.Card{Suit: s, Rank: dominant})
		if n >= 1 {
			opts = append(opts, DeclarationOption{Suit: card.TrumpSuit(s), Level: 1})
		}
		if n >= 2 {
			opts = append(opts, DeclarationOption{Suit: card.TrumpSuit(s), Level: 2})
		}
	}
	if hand.Count(card.SmallJoker) >= 2 {
		opts = append(opts, DeclarationOption{Suit: card.TrumpSmallJoker, Level: 3})
	}
	if hand.Count(card.BigJoker) >= 2 {
		opts = append(opts, DeclarationOption{Suit: card.TrumpBigJoker, Level: 3})
	}
	return opts
}
