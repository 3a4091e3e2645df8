package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tractor/internal/game/card"
)

func classifyLead(t *testing.T, cards string, trump card.Trump) Move {
	t.Helper()
	mv, err := Classify(mustSet(t, cards), trump)
	require.NoError(t, err)
	return mv
}

func TestMatchingMovesFollowSuit(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	lead := classifyLead(t, "5♥", trump)

	// 有本门牌时只能跟本门
	hand := mustSet(t, "3♥ A♥ 9♠ 8♦")
	moves := MatchingMoves(lead, hand, trump)
	assert.ElementsMatch(t, []card.CardSet{
		mustSet(t, "3♥"),
		mustSet(t, "A♥"),
	}, moves)
}

func TestMatchingMovesVoidSuit(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	lead := classifyLead(t, "5♥ 5♥", trump)

	// 本门无牌时任意两张都合法，包括毙牌与垫牌
	hand := mustSet(t, "7♠ 7♠ 3♦")
	moves := MatchingMoves(lead, hand, trump)
	assert.ElementsMatch(t, []card.CardSet{
		mustSet(t, "7♠ 7♠"),
		mustSet(t, "7♠ 3♦"),
	}, moves)
}

func TestMatchingMovesShortSuit(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	lead := classifyLead(t, "5♥ 5♥", trump)

	// 本门только一张：必须打出，再任意补一张
	hand := mustSet(t, "A♥ 9♣ 4♦")
	moves := MatchingMoves(lead, hand, trump)
	assert.ElementsMatch(t, []card.CardSet{
		mustSet(t, "A♥ 9♣"),
		mustSet(t, "A♥ 4♦"),
	}, moves)
}

func TestMatchingMovesPairRequired(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	lead := classifyLead(t, "5♥ 5♥", trump)

	// 有对子必须出对子
	hand := mustSet(t, "9♥ 9♥ A♥ K♥")
	moves := MatchingMoves(lead, hand, trump)
	assert.ElementsMatch(t, []card.CardSet{
		mustSet(t, "9♥ 9♥"),
	}, moves)

	// 没有对子时任意两张本门牌
	loose := mustSet(t, "9♥ A♥ K♥")
	moves = MatchingMoves(lead, loose, trump)
	assert.Len(t, moves, 3)
}

func TestMatchingMovesTractor(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	lead := classifyLead(t, "A♥ A♥ K♥ K♥", trump)

	tests := []struct {
		name     string
		hand     string
		expected []string
	}{
		{
			name:     "Own tractor must answer",
			hand:     "J♥ J♥ 10♥ 10♥ 8♥",
			expected: []string{"10♥ 10♥ J♥ J♥"},
		},
		{
			name:     "No tractor degrades to pairs",
			hand:     "Q♥ Q♥ 9♥ 9♥ 5♥",
			expected: []string{"9♥ 9♥ Q♥ Q♥"},
		},
		{
			name:     "One pair plus singles",
			hand:     "Q♥ Q♥ 9♥ 8♥",
			expected: []string{"8♥ 9♥ Q♥ Q♥"},
		},
		{
			name: "Singles only",
			hand: "Q♥ J♥ 9♥ 8♥ 7♥",
			expected: []string{
				"8♥ 9♥ J♥ Q♥", "7♥ 9♥ J♥ Q♥", "7♥ 8♥ J♥ Q♥",
				"7♥ 8♥ 9♥ Q♥", "7♥ 8♥ 9♥ J♥",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hand := mustSet(t, tt.hand)
			moves := MatchingMoves(lead, hand, trump)
			got := make([]string, 0, len(moves))
			for _, m := range moves {
				got = append(got, m.String())
			}
			assert.ElementsMatch(t, tt.expected, got)
		})
	}
}

func TestMatchingMovesCombo(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}
	lead := classifyLead(t, "A♥ A♥ 10♥", trump) // 对子带单张

	// 对子必须回应，单张随意补
	hand := mustSet(t, "K♥ K♥ 8♥ 7♥")
	moves := MatchingMoves(lead, hand, trump)
	assert.ElementsMatch(t, []card.CardSet{
		mustSet(t, "K♥ K♥ 8♥"),
		mustSet(t, "K♥ K♥ 7♥"),
	}, moves)
}

func TestMatchingMovesAlwaysCompleteAndOwned(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpHeart, Rank: card.Rank7}
	lead := classifyLead(t, "9♣ 9♣ 8♣", trump)
	hand := mustSet(t, "A♣ A♣ 4♣ 7♦ XJ 3♠ 3♠")

	moves := MatchingMoves(lead, hand, trump)
	require.NotEmpty(t, moves)
	seen := make(map[card.CardSet]bool)
	for _, m := range moves {
		assert.Equal(t, lead.Size(), m.Size())
		assert.True(t, hand.ContainsSet(m))
		assert.False(t, seen[m], "duplicate move %v", m)
		seen[m] = true
	}
}

func TestSubsetsOfSize(t *testing.T) {
	t.Parallel()

	cs := mustSet(t, "5♦ 5♦ 8♣")
	subsets := subsetsOfSize(cs, 2)
	assert.ElementsMatch(t, []card.CardSet{
		mustSet(t, "5♦ 5♦"),
		mustSet(t, "5♦ 8♣"),
	}, subsets)

	assert.Len(t, subsetsOfSize(cs, 0), 1)
	assert.Empty(t, subsetsOfSize(cs, 4))
}
