package game

import (
	"fmt"

	"github.com/palemoky/tractor/internal/game/card"
	"github.com/palemoky/tractor/internal/game/rule"
)

// Declaration 记录一次成功的定主或抄底：座位、将牌花色与级别。
// 级别 1 为单张级牌，2 为级牌对，3 为王牌对。
type Declaration struct {
	Seat  Position
	Suit  card.TrumpSuit
	Level int
}

// Cards 返回该定主当时亮出的牌
func (d Declaration) Cards(dominant card.Rank) card.CardSet {
	return rule.DeclarationCards(d.Suit, d.Level, dominant)
}

func (d Declaration) String() string {
	return fmt.Sprintf("%v %v x%d", d.Seat, d.Suit, d.Level)
}
