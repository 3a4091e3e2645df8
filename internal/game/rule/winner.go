package rule

import (
	"slices"

	"github.com/palemoky/tractor/internal/game/card"
)

// RoundWinner determines which play takes the trick. Plays are given in play
// order, the leader first; the returned value is the offset of the winner from
// the leader. A play contends only if it is a single effective suit (the led
// suit, or trump), and can realize the exact shape of the lead. Among
// contenders trump beats the plain led suit, within the same suit the higher
// top of the largest component wins, and on equal tops the earlier play keeps
// the trick.
func RoundWinner(plays []card.CardSet, t card.Trump) int {
	lead, err := Classify(plays[0], t)
	if err != nil {
		return 0
	}

	winner := 0
	bestKey := lead.Components[0].High
	bestTrump := lead.Suit == card.EffTrump

	for i := 1; i < len(plays); i++ {
		key, suit, ok := contendKey(lead, plays[i], t)
		if !ok {
			continue
		}
		isTrump := suit == card.EffTrump
		switch {
		case isTrump && !bestTrump:
			winner, bestKey, bestTrump = i, key, true
		case isTrump == bestTrump && key > bestKey:
			winner, bestKey = i, key
		}
	}
	return winner
}

// contendKey reports whether the play can contend against the lead, and if so
// the effective rank it contends with: the best achievable top of the lead's
// largest component when the play is arranged into the lead's shape.
func contendKey(lead Move, play card.CardSet, t card.Trump) (int, card.EffSuit, bool) {
	suit, ok := singleSuit(play, t)
	if !ok {
		return 0, 0, false
	}
	if suit != lead.Suit && suit != card.EffTrump {
		return 0, 0, false
	}

	first := lead.Components[0]
	fillers := componentFillers(first, play, t)
	slices.SortStableFunc(fillers, func(a, b filler) int {
		return b.top - a.top
	})
	for _, f := range fillers {
		rest := play
		rest.RemoveSet(f.cards)
		if realizable(lead.Components[1:], rest, t) {
			return f.top, suit, true
		}
	}
	return 0, 0, false
}

type filler struct {
	top   int
	cards card.CardSet
}

// componentFillers enumerates the sub-sets of avail that can stand in for the
// given lead component: same kind, same size.
func componentFillers(comp Component, avail card.CardSet, t card.Trump) []filler {
	var out []filler
	switch comp.Kind {
	case KindSingle:
		for _, c := range avail.Distinct() {
			out = append(out, filler{top: t.EffectiveRank(c), cards: card.NewSet(c)})
		}
	case KindPair:
		for _, c := range avail.Distinct() {
			if avail.Count(c) >= 2 {
				out = append(out, filler{top: t.EffectiveRank(c), cards: card.NewSet(c, c)})
			}
		}
	case KindTractor:
		for _, ts := range tractorSets(avail, t, comp.Pairs) {
			top := 0
			for _, c := range ts.Distinct() {
				top = max(top, t.EffectiveRank(c))
			}
			out = append(out, filler{top: top, cards: ts})
		}
	}
	return out
}

// realizable reports whether avail can be split exactly into the given
// components, kind for kind.
func realizable(comps []Component, avail card.CardSet, t card.Trump) bool {
	if len(comps) == 0 {
		return avail.IsEmpty()
	}
	for _, f := range componentFillers(comps[0], avail, t) {
		rest := avail
		rest.RemoveSet(f.cards)
		if realizable(comps[1:], rest, t) {
			return true
		}
	}
	return false
}

// KittyMultiplier returns the factor applied to the kitty points when the
// challengers take the final trick: 2 for a single, 4 for a pair, 8 for a
// tractor; a combo counts as its largest component.
func KittyMultiplier(winning card.CardSet, t card.Trump) int {
	mv, err := Classify(winning, t)
	if err != nil {
		return 2
	}
	switch mv.Components[0].Kind {
	case KindTractor:
		return 8
	case KindPair:
		return 4
	default:
		return 2
	}
}
