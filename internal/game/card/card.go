package card

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Diamond Suit = iota // 方块
	Club                // 梅花
	Heart               // 红心
	Spade               // 黑桃
	Joker               // 王牌
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Diamond: "♦",
	Club:    "♣",
	Heart:   "♥",
	Spade:   "♠",
	Joker:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	RankSmallJoker // 小王
	RankBigJoker   // 大王
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:          "2",
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	RankSmallJoker: "XJ",
	RankBigJoker:   "DJ",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// rankFromName 用于快速查找字符串对应的 Rank
var rankFromName = map[string]Rank{
	"2": Rank2, "3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6,
	"7": Rank7, "8": Rank8, "9": Rank9, "10": Rank10, "T": Rank10,
	"J": RankJ, "Q": RankQ, "K": RankK, "A": RankA,
}

// Card 定义一张牌。两张王牌使用 Joker 花色，其余 54 种点数花色组合各有两张副本，
// 副本之间不可区分。
type Card struct {
	Suit Suit
	Rank Rank
}

// 两张王牌
var (
	SmallJoker = Card{Suit: Joker, Rank: RankSmallJoker}
	BigJoker   = Card{Suit: Joker, Rank: RankBigJoker}
)

// NumCards 不同牌面的数量，PackSize 整副牌（两副 54 张）的总张数
const (
	NumCards      = 54
	CopiesPerCard = 2
	PackSize      = NumCards * CopiesPerCard
)

// Index 返回牌面的规范序号（0..53）：四种花色按 ♦♣♥♠ 各 13 张升序排列，之后是小王、大王。
// 所有需要确定性顺序的遍历都必须使用该序号。
func (c Card) Index() int {
	switch c {
	case SmallJoker:
		return NumCards - 2
	case BigJoker:
		return NumCards - 1
	default:
		return int(c.Suit)*13 + int(c.Rank) - 2
	}
}

// ByIndex 根据规范序号还原牌面
func ByIndex(i int) Card {
	switch i {
	case NumCards - 2:
		return SmallJoker
	case NumCards - 1:
		return BigJoker
	default:
		return Card{Suit: Suit(i / 13), Rank: Rank(i%13 + 2)}
	}
}

// IsJoker 判断是否为王牌
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// Points 返回牌的分值：5 记 5 分，10 和 K 记 10 分
func (c Card) Points() int {
	switch c.Rank {
	case Rank5:
		return 5
	case Rank10, RankK:
		return 10
	default:
		return 0
	}
}

func (c Card) String() string {
	if c.IsJoker() {
		return c.Rank.String()
	}
	return c.Rank.String() + c.Suit.String()
}

// Parse 解析 "A♦"、"10♥"、"XJ" 这样的牌面字符串
func Parse(s string) (Card, error) {
	switch s {
	case "XJ":
		return SmallJoker, nil
	case "DJ":
		return BigJoker, nil
	}
	for suit := Diamond; suit <= Spade; suit++ {
		symbol := suitSymbols[suit]
		if name, ok := strings.CutSuffix(s, symbol); ok && name != "" {
			rank, ok := rankFromName[name]
			if !ok {
				return Card{}, fmt.Errorf("无法识别的点数: %q", name)
			}
			return Card{Suit: suit, Rank: rank}, nil
		}
	}
	return Card{}, fmt.Errorf("无法识别的牌面: %q", s)
}

// Deck 定义一副待发的牌
type Deck []Card

// NewPack 按规范顺序生成整副 108 张牌
func NewPack() Deck {
	deck := make(Deck, 0, PackSize)
	for i := range NumCards {
		for range CopiesPerCard {
			deck = append(deck, ByIndex(i))
		}
	}
	return deck
}

func (d Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Valid 判断牌面是否合法
func (c Card) Valid() bool {
	if c == SmallJoker || c == BigJoker {
		return true
	}
	return c.Suit >= Diamond && c.Suit <= Spade && c.Rank >= Rank2 && c.Rank <= RankA
}

// ValidatePack 检查外部提供的牌序是否恰好构成整副 108 张牌
func ValidatePack(d Deck) error {
	if len(d) != PackSize {
		return fmt.Errorf("牌堆应有 %d 张，实际 %d 张", PackSize, len(d))
	}
	var counts [NumCards]int
	for _, c := range d {
		if !c.Valid() {
			return fmt.Errorf("非法牌面: %v", c)
		}
		counts[c.Index()]++
	}
	for i, n := range counts {
		if n != CopiesPerCard {
			return fmt.Errorf("牌面 %v 应有 %d 张，实际 %d 张", ByIndex(i), CopiesPerCard, n)
		}
	}
	return nil
}
