package rule

import (
	"slices"

	"github.com/palemoky/tractor/internal/game/card"
)

// LeadingMoves 枚举手牌在当前将牌环境下所有可领出的单张、对子与拖拉机。
// 甩牌不在此列，由调用方逐个成分组合。结果顺序确定：
// 按有效花色升序，花色内先单张、再对子、再拖拉机（短在前），同型按点数升序。
func LeadingMoves(hand card.CardSet, t card.Trump) []Move {
	var moves []Move
	for es := card.EffDiamond; es <= card.EffTrump; es++ {
		suitCards := hand.FilterSuit(t, es)
		if suitCards.IsEmpty() {
			continue
		}
		moves = append(moves, suitMoves(suitCards, es, t)...)
	}
	return moves
}

// LeadingMovesInSuit 枚举某一有效花色内可领出的牌型，用于甩牌补充成分
func LeadingMovesInSuit(hand card.CardSet, t card.Trump, es card.EffSuit) []Move {
	suitCards := hand.FilterSuit(t, es)
	if suitCards.IsEmpty() {
		return nil
	}
	return suitMoves(suitCards, es, t)
}

func suitMoves(suitCards card.CardSet, es card.EffSuit, t card.Trump) []Move {
	var moves []Move

	singles := suitCards.Distinct()
	slices.SortStableFunc(singles, func(a, b card.Card) int {
		if ra, rb := t.EffectiveRank(a), t.EffectiveRank(b); ra != rb {
			return ra - rb
		}
		return a.Index() - b.Index()
	})
	for _, c := range singles {
		moves = append(moves, Move{
			Kind:       KindSingle,
			Suit:       es,
			Cards:      card.NewSet(c),
			Components: []Component{{Kind: KindSingle, High: t.EffectiveRank(c), Cards: card.NewSet(c)}},
		})
	}

	for _, c := range singles {
		if suitCards.Count(c) < 2 {
			continue
		}
		pair := card.NewSet(c, c)
		moves = append(moves, Move{
			Kind:       KindPair,
			Suit:       es,
			Cards:      pair,
			Components: []Component{{Kind: KindPair, Pairs: 1, High: t.EffectiveRank(c), Cards: pair}},
		})
	}

	maxPairs := suitCards.Size() / 2
	for p := 2; p <= maxPairs; p++ {
		for _, ts := range tractorSets(suitCards, t, p) {
			high := 0
			for _, c := range ts.Distinct() {
				high = max(high, t.EffectiveRank(c))
			}
			moves = append(moves, Move{
				Kind:       KindTractor,
				Suit:       es,
				Cards:      ts,
				Components: []Component{{Kind: KindTractor, Pairs: p, High: high, Cards: ts}},
			})
		}
	}

	return moves
}
