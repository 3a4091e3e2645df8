package agent

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/game/card"
)

func mustSet(t *testing.T, s string) card.CardSet {
	t.Helper()
	cs, err := card.ParseSet(s)
	require.NoError(t, err)
	return cs
}

func mustCard(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	require.NoError(t, err)
	return c
}

var spadeTrump = card.Trump{Suit: card.TrumpSpade, Rank: card.Rank2}

func TestRandomPicksFromActions(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Actions: []game.Action{
			game.PassDeclare{},
			game.Declare{Suit: card.TrumpHeart, Level: 1},
			game.Declare{Suit: card.TrumpSpade, Level: 2},
		},
	}

	a := NewRandom(rand.New(rand.NewPCG(7, 7)))
	for range 20 {
		assert.Contains(t, obs.Actions, a.Act(obs))
	}

	// 相同种子产生相同选择序列
	a1 := NewRandom(rand.New(rand.NewPCG(1, 2)))
	a2 := NewRandom(rand.New(rand.NewPCG(1, 2)))
	for range 10 {
		assert.Equal(t, a1.Act(obs), a2.Act(obs))
	}
}

func TestGreedyDeclare(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage: game.StageDeclare,
		Actions: []game.Action{
			game.Declare{Suit: card.TrumpHeart, Level: 1},
			game.Declare{Suit: card.TrumpSpade, Level: 2},
			game.PassDeclare{},
		},
	}
	assert.Equal(t, game.Declare{Suit: card.TrumpSpade, Level: 2}, NewGreedy().Act(obs))

	// 无得亮时过
	obs.Actions = []game.Action{game.PassDeclare{}}
	assert.Equal(t, game.PassDeclare{}, NewGreedy().Act(obs))
}

func TestGreedyPlaceKitty(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage: game.StageKitty,
		Trump: spadeTrump,
		Actions: []game.Action{
			game.PlaceKitty{Card: mustCard(t, "K♥")}, // 分牌
			game.PlaceKitty{Card: mustCard(t, "5♠")}, // 将牌
			game.PlaceKitty{Card: mustCard(t, "3♦")}, // 杂牌
		},
	}
	assert.Equal(t, game.PlaceKitty{Card: mustCard(t, "3♦")}, NewGreedy().Act(obs))
}

func TestGreedyCounterBid(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage: game.StageCounterBid,
		Actions: []game.Action{
			game.PassCounterBid{},
			game.CounterBid{Suit: card.TrumpHeart, Level: 2},
			game.CounterBid{Suit: card.TrumpSpade, Level: 2},
		},
	}
	assert.Equal(t, game.CounterBid{Suit: card.TrumpSpade, Level: 2}, NewGreedy().Act(obs))

	obs.Actions = []game.Action{game.PassCounterBid{}}
	assert.Equal(t, game.PassCounterBid{}, NewGreedy().Act(obs))
}

func TestGreedyLead(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage:   game.StagePlay,
		Trump:   spadeTrump,
		Leading: true,
		Actions: []game.Action{
			game.Lead{Cards: mustSet(t, "7♦")},
			game.Lead{Cards: mustSet(t, "A♦")},
			game.Lead{Cards: mustSet(t, "A♦ A♦")},
		},
	}
	// 形状优先：对子压过单张
	assert.Equal(t, game.Lead{Cards: mustSet(t, "A♦ A♦")}, NewGreedy().Act(obs))

	// 甩牌追加阶段直接定牌
	obs.Actions = []game.Action{
		game.ExtendLead{Cards: mustSet(t, "K♦")},
		game.EndLead{},
	}
	assert.Equal(t, game.EndLead{}, NewGreedy().Act(obs))
}

func TestGreedyFollowBeatsWhenPossible(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage: game.StagePlay,
		Trump: spadeTrump,
		Rounds: []game.RoundView{{
			Leader: game.RelPrev,
			Plays:  []card.CardSet{mustSet(t, "10♦")},
		}},
		Actions: []game.Action{
			game.Follow{Cards: mustSet(t, "3♦")},
			game.Follow{Cards: mustSet(t, "A♦")},
		},
	}
	assert.Equal(t, game.Follow{Cards: mustSet(t, "A♦")}, NewGreedy().Act(obs))
}

func TestGreedyFollowFeedsWinningPartner(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage: game.StagePlay,
		Trump: spadeTrump,
		Rounds: []game.RoundView{{
			Leader: game.RelOpposite,
			Plays:  []card.CardSet{mustSet(t, "A♦"), mustSet(t, "3♦")},
		}},
		Actions: []game.Action{
			game.Follow{Cards: mustSet(t, "4♦")},
			game.Follow{Cards: mustSet(t, "10♦")},
		},
	}
	// 对家在大，把分垫给队友
	assert.Equal(t, game.Follow{Cards: mustSet(t, "10♦")}, NewGreedy().Act(obs))
}

func TestGreedyFollowDumpsCheapWhenLosing(t *testing.T) {
	t.Parallel()

	obs := game.Observation{
		Stage: game.StagePlay,
		Trump: spadeTrump,
		Rounds: []game.RoundView{{
			Leader: game.RelPrev,
			Plays:  []card.CardSet{mustSet(t, "A♦")},
		}},
		Actions: []game.Action{
			game.Follow{Cards: mustSet(t, "K♦")},
			game.Follow{Cards: mustSet(t, "4♦")},
		},
	}
	// 大不过且队友没在大：保住分牌，垫最便宜的
	assert.Equal(t, game.Follow{Cards: mustSet(t, "4♦")}, NewGreedy().Act(obs))
}

func TestRunnerSelfPlay(t *testing.T) {
	t.Parallel()

	agents := [game.NumSeats]Agent{
		NewGreedy(),
		NewRandom(rand.New(rand.NewPCG(11, 0))),
		NewGreedy(),
		NewRandom(rand.New(rand.NewPCG(12, 0))),
	}
	runner := NewRunner(agents, rand.New(rand.NewPCG(2026, 8)))

	cfg := game.Config{
		DominantRank:     card.Rank2,
		EnableCounterBid: true,
		EnableCombos:     true,
	}
	sum, err := runner.Run(cfg, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Games)
	assert.Equal(t, 5, sum.DealerWins+sum.ChallengerWins+sum.Draws)
	assert.Positive(t, sum.TotalRounds)

	// 零和：四个座位的最终得分之和为零
	total := 0.0
	for _, f := range sum.TotalFinals {
		total += f
	}
	assert.InDelta(t, 0, total, 1e-9)
}
