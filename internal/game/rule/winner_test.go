package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/tractor/internal/game/card"
)

func TestRoundWinnerSingles(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}

	tests := []struct {
		name     string
		plays    []string
		expected int
	}{
		{
			name:     "Highest in led suit wins",
			plays:    []string{"9♥", "A♥", "3♥", "K♥"},
			expected: 1,
		},
		{
			name:     "Off-suit discard never wins",
			plays:    []string{"9♥", "A♦", "3♥", "K♦"},
			expected: 0,
		},
		{
			name:     "Trump beats the led suit",
			plays:    []string{"9♥", "A♥", "3♠", "K♥"},
			expected: 2,
		},
		{
			name:     "Dominant rank outranks plain trump",
			plays:    []string{"9♥", "A♠", "2♦", "K♥"},
			expected: 2,
		},
		{
			name:     "Big joker on top",
			plays:    []string{"9♠", "A♠", "2♠", "DJ"},
			expected: 3,
		},
		{
			name:     "Leader keeps on equal rank",
			plays:    []string{"9♥", "9♥", "3♦", "4♦"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			plays := make([]card.CardSet, 0, len(tt.plays))
			for _, p := range tt.plays {
				plays = append(plays, mustSet(t, p))
			}
			assert.Equal(t, tt.expected, RoundWinner(plays, trump))
		})
	}
}

func TestRoundWinnerShapes(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}

	tests := []struct {
		name     string
		plays    []string
		expected int
	}{
		{
			name:     "Pair beaten only by a higher pair",
			plays:    []string{"9♥ 9♥", "A♥ K♥", "10♥ 10♥", "Q♥ J♥"},
			expected: 2,
		},
		{
			name:     "Tractor ruffed by a trump tractor",
			plays:    []string{"K♥ K♥ A♥ A♥", "3♥ 3♥ 4♥ 4♥", "5♠ 5♠ 6♠ 6♠", "9♦ 8♦ 7♦ 6♦"},
			expected: 2,
		},
		{
			name:     "Loose trumps cannot ruff a tractor",
			plays:    []string{"K♥ K♥ A♥ A♥", "3♥ 3♥ 4♥ 4♥", "5♠ 9♠ 6♠ 7♠", "9♦ 8♦ 7♦ 6♦"},
			expected: 0,
		},
		{
			name:     "Combo ruffed by matching trump shape",
			plays:    []string{"A♥ A♥ 10♥", "K♥ K♥ 3♥", "3♠ 3♠ 5♠", "9♦ 8♦ 7♦"},
			expected: 2,
		},
		{
			name:     "Combo survives shapeless trumps",
			plays:    []string{"A♥ A♥ 10♥", "K♥ K♥ 3♥", "3♠ 9♠ 5♠", "9♦ 8♦ 7♦"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			plays := make([]card.CardSet, 0, len(tt.plays))
			for _, p := range tt.plays {
				plays = append(plays, mustSet(t, p))
			}
			assert.Equal(t, tt.expected, RoundWinner(plays, trump))
		})
	}
}

func TestRoundWinnerDominantTie(t *testing.T) {
	t.Parallel()

	// 两个副花色级牌对同级，先出者保持领先
	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank7}
	plays := []card.CardSet{
		mustSet(t, "7♦ 7♦"),
		mustSet(t, "7♥ 7♥"),
		mustSet(t, "3♦ 4♦"),
		mustSet(t, "5♣ 6♣"),
	}
	assert.Equal(t, 0, RoundWinner(plays, trump))
}

func TestKittyMultiplier(t *testing.T) {
	t.Parallel()

	trump := card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}

	assert.Equal(t, 2, KittyMultiplier(mustSet(t, "A♥"), trump))
	assert.Equal(t, 4, KittyMultiplier(mustSet(t, "A♥ A♥"), trump))
	assert.Equal(t, 8, KittyMultiplier(mustSet(t, "K♥ K♥ A♥ A♥"), trump))
	// 甩牌按最大成分计
	assert.Equal(t, 4, KittyMultiplier(mustSet(t, "A♥ A♥ 10♥"), trump))
	assert.Equal(t, 2, KittyMultiplier(mustSet(t, "A♥ K♥ 10♥"), trump))
}
