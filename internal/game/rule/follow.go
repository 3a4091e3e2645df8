package rule

import (
	"github.com/palemoky/tractor/internal/game/card"
)

// MatchingMoves enumerates every card set that is a structurally valid answer
// to the lead. The follower must stay in the led effective suit while cards
// remain there, and must reproduce the lead's shape as far as the holding
// allows: tractors answer tractors of the same length, leftover tractor
// requirements degrade to pairs, pairs degrade to singles. A seat that is out
// of the led suit entirely may answer with any cards.
//
// Results are deterministic: branches are explored in canonical card order and
// duplicates produced by different branch orders are emitted once.
func MatchingMoves(lead Move, hand card.CardSet, t card.Trump) []card.CardSet {
	n := lead.Size()
	suitCards := hand.FilterSuit(t, lead.Suit)
	k := suitCards.Size()

	switch {
	case k == 0:
		// Void in the led suit: any cards may be thrown.
		return subsetsOfSize(hand, n)

	case k < n:
		// All remaining cards of the led suit must be played, the rest is free.
		rest := hand
		rest.RemoveSet(suitCards)
		fills := subsetsOfSize(rest, n-k)
		out := make([]card.CardSet, 0, len(fills))
		for _, fill := range fills {
			m := suitCards
			m.AddSet(fill)
			out = append(out, m)
		}
		return out

	default:
		return shapeMatches(lead, suitCards, t)
	}
}

// shapeMatches enumerates the in-suit answers that reproduce the lead's shape
// as far as the suit holding allows.
func shapeMatches(lead Move, suitCards card.CardSet, t card.Trump) []card.CardSet {
	var tractorsNeeded []int
	pairsNeeded := 0
	for _, comp := range lead.Components {
		switch comp.Kind {
		case KindTractor:
			tractorsNeeded = append(tractorsNeeded, comp.Pairs)
		case KindPair:
			pairsNeeded++
		}
	}

	m := &matcher{total: lead.Size(), trump: t, seen: make(map[card.CardSet]bool)}
	m.fillTractors(tractorsNeeded, pairsNeeded, suitCards, card.CardSet{})
	return m.out
}

type matcher struct {
	total int
	trump card.Trump
	seen  map[card.CardSet]bool
	out   []card.CardSet
}

// fillTractors answers the lead's tractor components longest first. A length
// that cannot be answered by any tractor degrades into a pair requirement.
func (m *matcher) fillTractors(tractors []int, pairsNeeded int, remaining, acc card.CardSet) {
	if len(tractors) == 0 {
		m.fillPairs(pairsNeeded, remaining, acc)
		return
	}
	candidates := tractorSets(remaining, m.trump, tractors[0])
	if len(candidates) == 0 {
		m.fillTractors(tractors[1:], pairsNeeded+tractors[0], remaining, acc)
		return
	}
	for _, ts := range candidates {
		next := remaining
		next.RemoveSet(ts)
		nacc := acc
		nacc.AddSet(ts)
		m.fillTractors(tractors[1:], pairsNeeded, next, nacc)
	}
}

// fillPairs satisfies as much of the pair requirement as the remaining suit
// cards can cover, then fills the rest with singles.
func (m *matcher) fillPairs(pairsNeeded int, remaining, acc card.CardSet) {
	var pairable []card.Card
	for _, c := range remaining.Distinct() {
		if remaining.Count(c) >= 2 {
			pairable = append(pairable, c)
		}
	}
	use := min(pairsNeeded, len(pairable))
	for _, combo := range combinations(pairable, use) {
		next := remaining
		nacc := acc
		for _, c := range combo {
			next.Remove(c)
			next.Remove(c)
			nacc.AddN(c, 2)
		}
		m.fillSingles(next, nacc)
	}
}

func (m *matcher) fillSingles(remaining, acc card.CardSet) {
	for _, fill := range subsetsOfSize(remaining, m.total-acc.Size()) {
		res := acc
		res.AddSet(fill)
		if !m.seen[res] {
			m.seen[res] = true
			m.out = append(m.out, res)
		}
	}
}

// subsetsOfSize enumerates all distinct sub-multisets of the given size, in
// canonical card order.
func subsetsOfSize(cs card.CardSet, n int) []card.CardSet {
	if n == 0 {
		return []card.CardSet{{}}
	}
	if n > cs.Size() {
		return nil
	}
	cards := cs.Distinct()

	// Suffix totals for pruning branches that can no longer reach n.
	suffix := make([]int, len(cards)+1)
	for i := len(cards) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + cs.Count(cards[i])
	}

	var out []card.CardSet
	var walk func(i, need int, acc card.CardSet)
	walk = func(i, need int, acc card.CardSet) {
		if need == 0 {
			out = append(out, acc)
			return
		}
		if i >= len(cards) || suffix[i] < need {
			return
		}
		for take := min(cs.Count(cards[i]), need); take >= 0; take-- {
			next := acc
			next.AddN(cards[i], take)
			walk(i+1, need-take, next)
		}
	}
	walk(0, n, card.CardSet{})
	return out
}

// combinations enumerates all ways to choose k elements from the list,
// preserving order.
func combinations(cards []card.Card, k int) [][]card.Card {
	if k == 0 {
		return [][]card.Card{nil}
	}
	if k > len(cards) {
		return nil
	}
	var out [][]card.Card
	var walk func(start int, picked []card.Card)
	walk = func(start int, picked []card.Card) {
		if len(picked) == k {
			out = append(out, append([]card.Card(nil), picked...))
			return
		}
		for i := start; i <= len(cards)-(k-len(picked)); i++ {
			walk(i+1, append(picked, cards[i]))
		}
	}
	walk(0, nil)
	return out
}
