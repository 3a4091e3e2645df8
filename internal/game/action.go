package game

import (
	"fmt"

	"github.com/palemoky/tractor/internal/game/card"
)

// Action 定义玩家可执行的动作。动作集合是封闭的：
// 由 Observe 为行动座位枚举，经 Apply 结算。
// 所有动作都是可比较的值类型。
type Action interface {
	fmt.Stringer
	isAction()
}

// Declare 亮主：用手中的级牌或王牌对定将牌花色
type Declare struct {
	Suit  card.TrumpSuit
	Level int
}

// PassDeclare 过，不亮主
type PassDeclare struct{}

// PlaceKitty 向底牌埋一张牌
type PlaceKitty struct {
	Card card.Card
}

// PlaceAllKitty 一次性埋满八张底牌
type PlaceAllKitty struct {
	Cards card.CardSet
}

// CounterBid 抄底：用花色序更高的定主接管底牌
type CounterBid struct {
	Suit  card.TrumpSuit
	Level int
}

// PassCounterBid 过，不抄底
type PassCounterBid struct{}

// Lead 领出一个成分：单张、对子或拖拉机。
// 允许甩牌的座位领出后可继续追加成分；否则立即定牌。
type Lead struct {
	Cards card.CardSet
}

// ExtendLead 甩牌追加一个同花色成分
type ExtendLead struct {
	Cards card.CardSet
}

// EndLead 结束甩牌组合，接受合法性裁决
type EndLead struct{}

// Follow 跟牌
type Follow struct {
	Cards card.CardSet
}

func (Declare) isAction()        {}
func (PassDeclare) isAction()    {}
func (PlaceKitty) isAction()     {}
func (PlaceAllKitty) isAction()  {}
func (CounterBid) isAction()     {}
func (PassCounterBid) isAction() {}
func (Lead) isAction()           {}
func (ExtendLead) isAction()     {}
func (EndLead) isAction()        {}
func (Follow) isAction()         {}

func (a Declare) String() string {
	return fmt.Sprintf("亮主(%v x%d)", a.Suit, a.Level)
}

func (PassDeclare) String() string { return "不亮" }

func (a PlaceKitty) String() string {
	return fmt.Sprintf("埋底(%v)", a.Card)
}

func (a PlaceAllKitty) String() string {
	return fmt.Sprintf("埋底(%v)", a.Cards)
}

func (a CounterBid) String() string {
	return fmt.Sprintf("抄底(%v x%d)", a.Suit, a.Level)
}

func (PassCounterBid) String() string { return "不抄" }

func (a Lead) String() string {
	return fmt.Sprintf("领出(%v)", a.Cards)
}

func (a ExtendLead) String() string {
	return fmt.Sprintf("追加(%v)", a.Cards)
}

func (EndLead) String() string { return "定牌" }

func (a Follow) String() string {
	return fmt.Sprintf("跟牌(%v)", a.Cards)
}
