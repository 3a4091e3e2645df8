package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardSetAddRemove(t *testing.T) {
	t.Parallel()

	var s CardSet
	ace := Card{Suit: Spade, Rank: RankA}

	s.Add(ace)
	s.Add(ace)
	s.Add(BigJoker)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 2, s.Count(ace))
	assert.True(t, s.Contains(BigJoker))

	assert.True(t, s.Remove(ace))
	assert.Equal(t, 1, s.Count(ace))

	// 移除不存在的牌不改变集合
	assert.False(t, s.Remove(SmallJoker))
	assert.Equal(t, 2, s.Size())
}

func TestCardSetSetOps(t *testing.T) {
	t.Parallel()

	a, err := ParseSet("5♦ 5♦ K♥ XJ")
	require.NoError(t, err)
	b, err := ParseSet("5♦ K♥")
	require.NoError(t, err)

	assert.True(t, a.ContainsSet(b))
	assert.False(t, b.ContainsSet(a))

	require.True(t, a.RemoveSet(b))
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 1, a.Count(Card{Suit: Diamond, Rank: Rank5}))

	// 数量不足时整体失败
	twoJokers := NewSet(SmallJoker, SmallJoker)
	assert.False(t, a.RemoveSet(twoJokers))
	assert.Equal(t, 2, a.Size())

	a.AddSet(b)
	assert.Equal(t, 4, a.Size())
}

func TestCardSetCanonicalOrder(t *testing.T) {
	t.Parallel()

	s := NewSet(
		BigJoker,
		Card{Suit: Spade, Rank: Rank3},
		Card{Suit: Diamond, Rank: RankA},
		Card{Suit: Diamond, Rank: Rank2},
		Card{Suit: Diamond, Rank: Rank2},
	)

	// 无论加入顺序如何，展开顺序都是规范顺序
	assert.Equal(t, []Card{
		{Suit: Diamond, Rank: Rank2},
		{Suit: Diamond, Rank: Rank2},
		{Suit: Diamond, Rank: RankA},
		{Suit: Spade, Rank: Rank3},
		BigJoker,
	}, s.Cards())

	assert.Equal(t, []Card{
		{Suit: Diamond, Rank: Rank2},
		{Suit: Diamond, Rank: RankA},
		{Suit: Spade, Rank: Rank3},
		BigJoker,
	}, s.Distinct())

	assert.Equal(t, "2♦ 2♦ A♦ 3♠ DJ", s.String())
}

func TestCardSetPoints(t *testing.T) {
	t.Parallel()

	s, err := ParseSet("5♣ 10♠ K♦ A♥")
	require.NoError(t, err)
	assert.Equal(t, 25, s.Points())
	assert.Equal(t, 0, CardSet{}.Points())
}

func TestCardSetFilterSuit(t *testing.T) {
	t.Parallel()

	trump := Trump{Suit: TrumpSpade, Rank: Rank2}
	s, err := ParseSet("2♦ 9♦ 9♦ A♠ XJ 8♥")
	require.NoError(t, err)

	trumps := s.FilterSuit(trump, EffTrump)
	assert.Equal(t, 3, trumps.Size()) // 2♦ 级牌、A♠ 主花色、XJ

	diamonds := s.FilterSuit(trump, EffDiamond)
	assert.Equal(t, 2, diamonds.Size())
	assert.Equal(t, 2, diamonds.Count(Card{Suit: Diamond, Rank: Rank9}))

	assert.True(t, s.FilterSuit(trump, EffClub).IsEmpty())
}

func TestCardSetComparable(t *testing.T) {
	t.Parallel()

	a := NewSet(SmallJoker, Card{Suit: Heart, Rank: Rank4})
	b := NewSet(Card{Suit: Heart, Rank: Rank4}, SmallJoker)
	assert.Equal(t, a, b)

	c := a
	c.Add(BigJoker)
	// 值拷贝互不影响
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 3, c.Size())
}
