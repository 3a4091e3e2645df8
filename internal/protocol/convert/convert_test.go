package convert

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/game/card"
)

func TestSetTokensRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := card.ParseSet("A♦ A♦ 10♥ K♠ XJ DJ")
	require.NoError(t, err)

	tokens := SetToTokens(s)
	assert.Equal(t, []string{"A♦", "A♦", "10♥", "K♠", "XJ", "DJ"}, tokens)

	back, err := TokensToSet(tokens)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = TokensToSet([]string{"A♦", "什么牌"})
	assert.Error(t, err)
}

func TestObservationToDTO(t *testing.T) {
	t.Parallel()

	dealer := game.North
	g, err := game.New(game.Config{
		Dealer:       &dealer,
		DominantRank: card.Rank7,
		Rand:         rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	first, err := g.Start()
	require.NoError(t, err)

	obs := g.Observe(first)
	dto := ObservationToDTO(obs)

	assert.Equal(t, int(first), dto.Seat)
	assert.Equal(t, obs.Stage.String(), dto.Stage)
	assert.Equal(t, "7", dto.TrumpRank)
	assert.Len(t, dto.Hand, 1)
	assert.Len(t, dto.CounterBids, game.NumSeats)
	assert.Len(t, dto.Public, game.NumSeats)
	assert.Len(t, dto.Actions, len(obs.Actions))
	require.NotNil(t, dto.Dealer)
	assert.Equal(t, int(game.RelSelf), *dto.Dealer)

	// 非行动座位的快照没有动作
	other := g.Observe(first.Next())
	assert.Empty(t, ObservationToDTO(other).Actions)
}
