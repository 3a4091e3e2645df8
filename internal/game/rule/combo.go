package rule

import (
	"github.com/palemoky/tractor/internal/game/card"
)

// JudgeLead checks a multi-component lead (a throw) against the other seats'
// holdings. A component is unsafe if any other seat could beat it inside the
// led effective suit. If every component is safe the lead stands as thrown.
// Otherwise the lead is cut down to its safe components; if none are safe it
// is cut down to its smallest, lowest component. The reduced move is what the
// leader actually plays; the caller decides the penalty.
func JudgeLead(move Move, others []card.CardSet, t card.Trump) (bool, Move) {
	if len(move.Components) <= 1 {
		return true, move
	}

	suitHoldings := make([]card.CardSet, 0, len(others))
	for _, hand := range others {
		suitHoldings = append(suitHoldings, hand.FilterSuit(t, move.Suit))
	}

	var safe []Component
	for _, comp := range move.Components {
		beatable := false
		for _, holding := range suitHoldings {
			if canBeatComponent(holding, comp, t) {
				beatable = true
				break
			}
		}
		if !beatable {
			safe = append(safe, comp)
		}
	}

	if len(safe) == len(move.Components) {
		return true, move
	}
	if len(safe) == 0 {
		// Components are sorted largest and highest first, so the forced
		// play is the last one.
		safe = []Component{move.Components[len(move.Components)-1]}
	}
	forced, err := NewMove(t, safe...)
	if err != nil {
		return false, move
	}
	return false, forced
}

// canBeatComponent reports whether the holding (already filtered to the led
// suit) contains a same-shape structure strictly above the component.
func canBeatComponent(holding card.CardSet, comp Component, t card.Trump) bool {
	switch comp.Kind {
	case KindSingle:
		for _, c := range holding.Distinct() {
			if t.EffectiveRank(c) > comp.High {
				return true
			}
		}
	case KindPair:
		for _, c := range holding.Distinct() {
			if holding.Count(c) >= 2 && t.EffectiveRank(c) > comp.High {
				return true
			}
		}
	case KindTractor:
		for _, run := range pairRuns(holding, t) {
			if len(run) >= comp.Pairs && run[len(run)-1].rank > comp.High {
				return true
			}
		}
	}
	return false
}
