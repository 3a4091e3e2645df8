package card

import (
	"fmt"
	"strings"
)

// ParseCards 解析以空白分隔的牌面列表，如 "A♦ A♦ 10♥ XJ"
func ParseCards(input string) ([]Card, error) {
	fields := strings.Fields(input)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseSet 解析以空白分隔的牌面列表为多重集合
func ParseSet(input string) (CardSet, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return CardSet{}, err
	}
	return NewSet(cards...), nil
}

// ParseDeck 解析完整牌序，用于配置文件指定发牌顺序
func ParseDeck(entries []string) (Deck, error) {
	deck := make(Deck, 0, PackSize)
	for _, e := range entries {
		c, err := Parse(e)
		if err != nil {
			return nil, fmt.Errorf("第 %d 张牌: %w", len(deck)+1, err)
		}
		deck = append(deck, c)
	}
	if err := ValidatePack(deck); err != nil {
		return nil, err
	}
	return deck, nil
}
