package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tractor/internal/game/card"
)

func TestLeadingMoves(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	hand := mustSet(t, "3♥ 3♥ 4♥ 4♥ 9♣")

	moves := LeadingMoves(hand, trump)

	var singles, pairs, tractors int
	for _, m := range moves {
		switch m.Kind {
		case KindSingle:
			singles++
		case KindPair:
			pairs++
		case KindTractor:
			tractors++
		}
	}
	assert.Equal(t, 3, singles)
	assert.Equal(t, 2, pairs)
	assert.Equal(t, 1, tractors)
	assert.Len(t, moves, 6)

	cardSets := make([]card.CardSet, 0, len(moves))
	for _, m := range moves {
		cardSets = append(cardSets, m.Cards)
	}
	assert.Contains(t, cardSets, mustSet(t, "3♥ 3♥ 4♥ 4♥"))
	assert.Contains(t, cardSets, mustSet(t, "9♣"))
}

func TestLeadingMovesDeterministic(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpHeart, Rank: card.Rank10}
	hand := mustSet(t, "A♦ K♦ K♦ 5♥ 5♥ 6♥ 6♥ 10♠ XJ")

	first := LeadingMoves(hand, trump)
	second := LeadingMoves(hand, trump)
	assert.Equal(t, first, second)

	// 花色升序，同花色内先单张再对子再拖拉机
	assert.Equal(t, card.EffDiamond, first[0].Suit)
	lastSuit := card.EffDiamond
	for _, m := range first {
		assert.GreaterOrEqual(t, m.Suit, lastSuit)
		lastSuit = m.Suit
	}
}

func TestLeadingMovesDominantBranches(t *testing.T) {
	t.Parallel()

	// 两种副花色级牌对都能和 A♠ 连成拖拉机
	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank7}
	hand := mustSet(t, "A♠ A♠ 7♦ 7♦ 7♥ 7♥")

	moves := LeadingMoves(hand, trump)

	var tractors []card.CardSet
	for _, m := range moves {
		if m.Kind == KindTractor {
			tractors = append(tractors, m.Cards)
		}
	}
	require.Len(t, tractors, 2)
	assert.Contains(t, tractors, mustSet(t, "A♠ A♠ 7♦ 7♦"))
	assert.Contains(t, tractors, mustSet(t, "A♠ A♠ 7♥ 7♥"))
}

func TestLeadingMovesInSuit(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	hand := mustSet(t, "3♥ 3♥ 9♣ A♠")

	hearts := LeadingMovesInSuit(hand, trump, card.EffHeart)
	assert.Len(t, hearts, 2) // 单张 3♥ 和对 3♥

	assert.Empty(t, LeadingMovesInSuit(hand, trump, card.EffDiamond))

	trumps := LeadingMovesInSuit(hand, trump, card.EffTrump)
	require.Len(t, trumps, 1)
	assert.Equal(t, mustSet(t, "A♠"), trumps[0].Cards)
}

func TestLongTractorWindows(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSmallJoker, Rank: card.Rank2}
	hand := mustSet(t, "5♣ 5♣ 6♣ 6♣ 7♣ 7♣")

	moves := LeadingMoves(hand, trump)

	var tractors int
	for _, m := range moves {
		if m.Kind == KindTractor {
			tractors++
		}
	}
	// 两个二连对窗口加一个三连对
	assert.Equal(t, 3, tractors)
}
