package card

import "strings"

// CardSet 定义一手牌的多重集合。内部用规范序号计数，副本不区分；
// 结构体可直接比较与赋值拷贝，所有遍历都按规范顺序进行，保证确定性。
type CardSet struct {
	counts [NumCards]uint8
	size   int
}

// NewSet 根据若干张牌构造集合
func NewSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

func (s *CardSet) Add(c Card) {
	s.AddN(c, 1)
}

func (s *CardSet) AddN(c Card, n int) {
	if n <= 0 {
		return
	}
	s.counts[c.Index()] += uint8(n)
	s.size += n
}

// Remove 移除一张牌，若集合中没有该牌则返回 false 且不做修改
func (s *CardSet) Remove(c Card) bool {
	i := c.Index()
	if s.counts[i] == 0 {
		return false
	}
	s.counts[i]--
	s.size--
	return true
}

// AddSet 并入另一个集合的全部牌
func (s *CardSet) AddSet(o CardSet) {
	for i, n := range o.counts {
		s.counts[i] += n
	}
	s.size += o.size
}

// RemoveSet 移除另一个集合的全部牌，数量不足时返回 false 且不做修改
func (s *CardSet) RemoveSet(o CardSet) bool {
	if !s.ContainsSet(o) {
		return false
	}
	for i, n := range o.counts {
		s.counts[i] -= n
	}
	s.size -= o.size
	return true
}

// ContainsSet 判断是否逐张包含另一个集合
func (s CardSet) ContainsSet(o CardSet) bool {
	for i, n := range o.counts {
		if s.counts[i] < n {
			return false
		}
	}
	return true
}

// Count 返回某张牌的持有数量
func (s CardSet) Count(c Card) int {
	return int(s.counts[c.Index()])
}

func (s CardSet) Contains(c Card) bool {
	return s.counts[c.Index()] > 0
}

func (s CardSet) Size() int {
	return s.size
}

func (s CardSet) IsEmpty() bool {
	return s.size == 0
}

// Cards 按规范顺序展开全部牌（含副本）
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.size)
	for i, n := range s.counts {
		for range n {
			cards = append(cards, ByIndex(i))
		}
	}
	return cards
}

// Distinct 按规范顺序返回出现过的牌面（不含副本）
func (s CardSet) Distinct() []Card {
	cards := make([]Card, 0, s.size)
	for i, n := range s.counts {
		if n > 0 {
			cards = append(cards, ByIndex(i))
		}
	}
	return cards
}

// Points 返回集合的总分值
func (s CardSet) Points() int {
	total := 0
	for i, n := range s.counts {
		if n > 0 {
			total += ByIndex(i).Points() * int(n)
		}
	}
	return total
}

// FilterSuit 返回属于某一有效花色的子集
func (s CardSet) FilterSuit(t Trump, es EffSuit) CardSet {
	var out CardSet
	for i, n := range s.counts {
		if n > 0 && t.EffectiveSuit(ByIndex(i)) == es {
			out.AddN(ByIndex(i), int(n))
		}
	}
	return out
}

func (s CardSet) String() string {
	if s.size == 0 {
		return "[]"
	}
	parts := make([]string, 0, s.size)
	for _, c := range s.Cards() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
