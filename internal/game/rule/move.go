package rule

import (
	"fmt"
	"slices"
	"strings"

	"github.com/palemoky/tractor/internal/game/card"
)

// MoveKind 定义牌型
type MoveKind int

const (
	KindSingle  MoveKind = iota // 单张
	KindPair                    // 对子
	KindTractor                 // 拖拉机：同一有效花色内有效点数连续的对子
	KindCombo                   // 甩牌：同一有效花色内多个成分的组合
)

var kindNames = map[MoveKind]string{
	KindSingle:  "Single",
	KindPair:    "Pair",
	KindTractor: "Tractor",
	KindCombo:   "Combo",
}

func (k MoveKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Component 定义甩牌中的一个成分：单张、对子或拖拉机
type Component struct {
	Kind  MoveKind
	High  int // 最大有效点数
	Pairs int // 拖拉机的对数，对子为 1，单张为 0
	Cards card.CardSet
}

func (c Component) Size() int {
	return c.Cards.Size()
}

func (c Component) String() string {
	return fmt.Sprintf("%v[%v]", c.Kind, c.Cards)
}

// Move 定义一手出牌。非甩牌只有一个成分；
// 成分按（张数降序，有效点数降序）排列，比较时以第一个成分为基准。
type Move struct {
	Kind       MoveKind
	Suit       card.EffSuit
	Cards      card.CardSet
	Components []Component
}

func (m Move) Size() int {
	return m.Cards.Size()
}

func (m Move) String() string {
	return fmt.Sprintf("%v[%v]", m.Kind, m.Cards)
}

// sortComponents 按张数降序、点数降序排列成分
func sortComponents(comps []Component) {
	slices.SortStableFunc(comps, func(a, b Component) int {
		if a.Size() != b.Size() {
			return b.Size() - a.Size()
		}
		return b.High - a.High
	})
}

// NewMove 根据成分组装一手出牌，成分必须同属一个有效花色
func NewMove(t card.Trump, comps ...Component) (Move, error) {
	if len(comps) == 0 {
		return Move{}, fmt.Errorf("出牌不能为空")
	}
	var cards card.CardSet
	for _, comp := range comps {
		cards.AddSet(comp.Cards)
	}
	suit, ok := singleSuit(cards, t)
	if !ok {
		return Move{}, fmt.Errorf("甩牌的成分必须同属一个花色: %v", cards)
	}
	sorted := slices.Clone(comps)
	sortComponents(sorted)
	kind := KindCombo
	if len(sorted) == 1 {
		kind = sorted[0].Kind
	}
	return Move{Kind: kind, Suit: suit, Cards: cards, Components: sorted}, nil
}

// Classify 把一个多重集合解析为出牌。
// 集合必须非空且同属一个有效花色，否则返回错误。
func Classify(cs card.CardSet, t card.Trump) (Move, error) {
	suit, ok := singleSuit(cs, t)
	if !ok {
		return Move{}, fmt.Errorf("无法解析的出牌: %v", cs)
	}
	comps := Decompose(cs, t)
	kind := KindCombo
	if len(comps) == 1 {
		kind = comps[0].Kind
	}
	return Move{Kind: kind, Suit: suit, Cards: cs, Components: comps}, nil
}

// singleSuit 判断集合是否同属一个有效花色
func singleSuit(cs card.CardSet, t card.Trump) (card.EffSuit, bool) {
	cards := cs.Distinct()
	if len(cards) == 0 {
		return 0, false
	}
	suit := t.EffectiveSuit(cards[0])
	for _, c := range cards[1:] {
		if t.EffectiveSuit(c) != suit {
			return 0, false
		}
	}
	return suit, true
}

// Decompose 把同一有效花色的牌规范地拆解为成分：
// 先取极大拖拉机，再取剩余对子，最后是单张。
// 同一有效点数上有多个可选对子时（副花色级牌），取规范序号最小的，保证结果确定。
func Decompose(cs card.CardSet, t card.Trump) []Component {
	remaining := cs
	var comps []Component

	for _, run := range pairRuns(remaining, t) {
		if len(run) < 2 {
			continue
		}
		comp := Component{Kind: KindTractor, Pairs: len(run), High: run[len(run)-1].rank}
		for _, pr := range run {
			comp.Cards.AddN(pr.card, 2)
			remaining.Remove(pr.card)
			remaining.Remove(pr.card)
		}
		comps = append(comps, comp)
	}

	for _, c := range remaining.Distinct() {
		if remaining.Count(c) >= 2 {
			comps = append(comps, Component{
				Kind:  KindPair,
				Pairs: 1,
				High:  t.EffectiveRank(c),
				Cards: card.NewSet(c, c),
			})
			remaining.Remove(c)
			remaining.Remove(c)
		}
	}

	for _, c := range remaining.Distinct() {
		for range remaining.Count(c) {
			comps = append(comps, Component{
				Kind:  KindSingle,
				High:  t.EffectiveRank(c),
				Cards: card.NewSet(c),
			})
		}
	}

	sortComponents(comps)
	return comps
}

// pairRank 定义某个有效点数上的一个可用对子
type pairRank struct {
	rank int
	card card.Card
}

// pairsByRank 收集集合中所有成对的牌面，按有效点数分组。
// 同一有效点数上可能有多个不同牌面的对子（副花色级牌），组内按规范顺序排列。
func pairsByRank(cs card.CardSet, t card.Trump) ([]int, map[int][]card.Card) {
	byRank := make(map[int][]card.Card)
	var ranks []int
	for _, c := range cs.Distinct() {
		if cs.Count(c) < 2 {
			continue
		}
		r := t.EffectiveRank(c)
		if _, ok := byRank[r]; !ok {
			ranks = append(ranks, r)
		}
		byRank[r] = append(byRank[r], c)
	}
	slices.Sort(ranks)
	return ranks, byRank
}

// pairRuns 找出集合中有效点数连续的极大对子串。
// 每个点数只占用一个对子；同点数多个对子时取规范序号最小的。
func pairRuns(cs card.CardSet, t card.Trump) [][]pairRank {
	ranks, byRank := pairsByRank(cs, t)

	var runs [][]pairRank
	var current []pairRank
	for i, r := range ranks {
		if i > 0 && r != ranks[i-1]+1 {
			runs = append(runs, current)
			current = nil
		}
		current = append(current, pairRank{rank: r, card: byRank[r][0]})
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// tractorSets 枚举集合中恰好 pairs 对的全部拖拉机。
// 对每个等长的连续点数窗口，同点数上的不同对子逐一展开。
func tractorSets(cs card.CardSet, t card.Trump, pairs int) []card.CardSet {
	if pairs < 2 {
		return nil
	}
	ranks, byRank := pairsByRank(cs, t)

	var out []card.CardSet
	for start := 0; start+pairs <= len(ranks); start++ {
		window := ranks[start : start+pairs]
		if window[pairs-1]-window[0] != pairs-1 {
			continue
		}
		expandTractor(window, byRank, card.CardSet{}, &out)
	}
	return out
}

// expandTractor 对窗口内每个点数依次选择一个对子，深度优先展开全部组合
func expandTractor(window []int, byRank map[int][]card.Card, acc card.CardSet, out *[]card.CardSet) {
	if len(window) == 0 {
		*out = append(*out, acc)
		return
	}
	for _, c := range byRank[window[0]] {
		next := acc
		next.AddN(c, 2)
		expandTractor(window[1:], byRank, next, out)
	}
}

// shapeKey 返回出牌形状的规范描述，用于判断两手牌是否同形
func shapeKey(comps []Component) string {
	parts := make([]string, 0, len(comps))
	for _, c := range comps {
		parts = append(parts, fmt.Sprintf("%d:%d", int(c.Kind), c.Size()))
	}
	return strings.Join(parts, ",")
}
