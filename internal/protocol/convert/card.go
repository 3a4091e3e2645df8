package convert

import (
	"github.com/palemoky/tractor/internal/game/card"
)

// SetToTokens 把多重集合按规范顺序展开为牌面字符串
func SetToTokens(s card.CardSet) []string {
	cards := s.Cards()
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return tokens
}

// TokensToSet 把牌面字符串列表还原为多重集合
func TokensToSet(tokens []string) (card.CardSet, error) {
	var s card.CardSet
	for _, tok := range tokens {
		c, err := card.Parse(tok)
		if err != nil {
			return card.CardSet{}, err
		}
		s.Add(c)
	}
	return s, nil
}

// SetsToTokens 逐个转换多组牌
func SetsToTokens(sets []card.CardSet) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		out[i] = SetToTokens(s)
	}
	return out
}
