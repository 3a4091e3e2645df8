package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/palemoky/tractor/internal/apperrors"
	"github.com/palemoky/tractor/internal/game/card"
	"github.com/palemoky/tractor/internal/game/rule"
)

const (
	drawnCards    = 100 // 摸牌阶段逐张发出的张数
	kittySize     = 8   // 底牌张数
	maxComboParts = 3   // 一次甩牌最多组合的成分数
)

// round 一轮出牌：领出座位与按行动顺序的出牌
type round struct {
	leader Position
	plays  []card.CardSet
}

// Step 一次动作结算后的进展
type Step struct {
	Next   Position // 下一个行动座位；终局后为拿下末轮的座位
	Reward float64  // 行动座位当次获得的奖励
	Done   bool
}

// Game 四人升级对局。引擎本身不含任何策略：决策方通过 Observe 拿到
// 可行动作，经 Apply 结算。相同配置、相同牌序、相同动作序列驱动出的
// 两个实例状态完全一致。
//
// 引擎只在调用方违反使用契约（乱序、非法动作、不持有的牌）时返回错误；
// 规则内的结果（甩牌被压缩、抄底失败）通过返回值表达。
type Game struct {
	cfg Config
	rng *rand.Rand

	stage   Stage
	active  Position
	started bool
	done    bool

	deck  card.Deck
	drawn int

	hands  [NumSeats]card.CardSet
	kitty  card.CardSet
	public [NumSeats]card.CardSet

	declarations []Declaration
	freeDealer   bool // 抢庄模式：每次亮主都把庄家让给亮主者
	dealerKnown  bool
	dealer       Position
	kittyOwner   Position

	// 定主确认圈与抄底圈共用的锚点：轮到锚点的上家过牌时圈结束
	lapAnchor Position
	lapOpen   bool

	counterBids [NumSeats]int

	rounds      []round
	pendingOpen bool         // 甩牌组合进行中
	pendingSuit card.EffSuit // 甩牌的有效花色
	comboParts  int          // 已组合的成分数

	unplayed card.CardSet

	challengerPoints int
	defenderPoints   int
	pointDeltas      []int // 每轮结算后守方视角的分数变动

	finals [NumSeats]float64
}

// New 按配置创建对局。Start 之前不接受任何动作。
func New(cfg Config) (*Game, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, rng: cfg.Rand, stage: StageDeclare}
	if len(cfg.Deck) > 0 {
		g.deck = slices.Clone(cfg.Deck)
	} else {
		g.deck = card.NewPack()
		g.deck.Shuffle(g.rng)
	}
	for i := range card.NumCards {
		g.unplayed.AddN(card.ByIndex(i), card.CopiesPerCard)
	}
	if cfg.Dealer != nil {
		g.dealer = *cfg.Dealer
		g.dealerKnown = true
		g.kittyOwner = g.dealer
	} else {
		g.freeDealer = true
	}
	return g, nil
}

// Start 把第一张牌发给首位摸牌者并返回该座位。
// 固定庄家时由庄家先摸，抢庄时随机挑选。
func (g *Game) Start() (Position, error) {
	if g.started {
		return 0, apperrors.ErrGameStarted
	}
	first := Position(g.rng.IntN(NumSeats))
	if g.cfg.Dealer != nil {
		first = *g.cfg.Dealer
	}
	g.hands[first].Add(g.deck[0])
	g.drawn = 1
	g.active = first
	g.started = true
	return first, nil
}

// Trump 当前将牌环境。无人定主时将牌花色取无将默认值，只有王牌与级牌属主。
func (g *Game) Trump() card.Trump {
	t := card.Trump{Suit: card.TrumpSmallJoker, Rank: g.cfg.DominantRank}
	if len(g.declarations) > 0 {
		t.Suit = g.declarations[len(g.declarations)-1].Suit
	}
	return t
}

// Apply 以指定座位执行一个动作。动作必须出自该座位当前的合法动作集，
// 违反契约时返回错误且状态不变。
func (g *Game) Apply(seat Position, action Action) (Step, error) {
	if !g.started {
		return Step{}, apperrors.ErrGameNotStart
	}
	if g.done {
		return Step{}, apperrors.ErrGameOver
	}
	if seat != g.active {
		return Step{}, apperrors.ErrNotYourTurn
	}
	switch a := action.(type) {
	case Declare:
		return g.applyDeclare(seat, a)
	case PassDeclare:
		return g.applyPassDeclare(seat)
	case PlaceKitty:
		return g.applyPlaceKitty(seat, a)
	case PlaceAllKitty:
		return g.applyPlaceAllKitty(seat, a)
	case CounterBid:
		return g.applyCounterBid(seat, a)
	case PassCounterBid:
		return g.applyPassCounterBid(seat)
	case Lead:
		return g.applyLead(seat, a)
	case ExtendLead:
		return g.applyExtendLead(seat, a)
	case EndLead:
		return g.applyEndLead(seat)
	case Follow:
		return g.applyFollow(seat, a)
	}
	return Step{}, fmt.Errorf("%w: %T", apperrors.ErrInvalidAction, action)
}

// legalActions 枚举行动座位当前的全部合法动作
func (g *Game) legalActions(seat Position) []Action {
	t := g.Trump()
	var actions []Action
	switch g.stage {
	case StageDeclare:
		for _, opt := range rule.DeclarableOptions(g.hands[seat], g.cfg.DominantRank) {
			if g.declarationAllowed(seat, opt) {
				actions = append(actions, Declare{Suit: opt.Suit, Level: opt.Level})
			}
		}
		actions = append(actions, PassDeclare{})

	case StageKitty:
		for _, c := range g.hands[seat].Distinct() {
			actions = append(actions, PlaceKitty{Card: c})
		}

	case StageCounterBid:
		for _, opt := range rule.DeclarableOptions(g.hands[seat], g.cfg.DominantRank) {
			if g.counterBidAllowed(opt) {
				actions = append(actions, CounterBid{Suit: opt.Suit, Level: opt.Level})
			}
		}
		actions = append(actions, PassCounterBid{})

	case StagePlay:
		r := g.rounds[len(g.rounds)-1]
		switch {
		case r.leader == seat && len(r.plays) == 0:
			for _, mv := range rule.LeadingMoves(g.hands[seat], t) {
				actions = append(actions, Lead{Cards: mv.Cards})
			}
		case r.leader == seat && g.pendingOpen:
			if g.comboParts < maxComboParts {
				remaining := g.hands[seat].FilterSuit(t, g.pendingSuit)
				remaining.RemoveSet(r.plays[0])
				for _, mv := range rule.LeadingMovesInSuit(remaining, t, g.pendingSuit) {
					actions = append(actions, ExtendLead{Cards: mv.Cards})
				}
			}
			actions = append(actions, EndLead{})
		default:
			if lead, err := rule.Classify(r.plays[0], t); err == nil {
				for _, cs := range rule.MatchingMoves(lead, g.hands[seat], t) {
					actions = append(actions, Follow{Cards: cs})
				}
			}
		}
	}
	return actions
}

// declarationAllowed 亮主资格：第一口任意；其后必须级别更高，
// 且同一座位只能用原花色加固自己的定主。
func (g *Game) declarationAllowed(seat Position, opt rule.DeclarationOption) bool {
	if len(g.declarations) == 0 {
		return true
	}
	last := g.declarations[len(g.declarations)-1]
	return opt.Level > last.Level && (last.Suit == opt.Suit || last.Seat != seat)
}

// counterBidAllowed 抄底资格：按（花色，级别）排序，抄底序必须严格高过当前定主。
// 单张定主序为 0，任何对子都可抄；单张本身永远抄不了底。
func (g *Game) counterBidAllowed(opt rule.DeclarationOption) bool {
	last := g.declarations[len(g.declarations)-1]
	return rule.CounterBidRank(opt.Suit, opt.Level) > rule.CounterBidRank(last.Suit, last.Level)
}

// combosAllowed 判断座位是否可以甩牌
func (g *Game) combosAllowed(seat Position) bool {
	if !g.cfg.EnableCombos {
		return false
	}
	if g.cfg.NorthSouthCombosOnly && (seat == East || seat == West) {
		return false
	}
	return true
}

func (g *Game) applyDeclare(seat Position, a Declare) (Step, error) {
	if g.stage != StageDeclare {
		return Step{}, apperrors.ErrWrongStage
	}
	if !rule.ValidDeclaration(a.Suit, a.Level) {
		return Step{}, apperrors.ErrInvalidDeclaration
	}
	if !g.declarationAllowed(seat, rule.DeclarationOption{Suit: a.Suit, Level: a.Level}) {
		return Step{}, fmt.Errorf("%w: 压不过当前定主", apperrors.ErrInvalidDeclaration)
	}
	shown := rule.DeclarationCards(a.Suit, a.Level, g.cfg.DominantRank)
	if !g.hands[seat].ContainsSet(shown) {
		return Step{}, apperrors.ErrCardNotOwned
	}

	g.declarations = append(g.declarations, Declaration{Seat: seat, Suit: a.Suit, Level: a.Level})
	mergePublic(&g.public[seat], shown)
	if g.freeDealer {
		// 抢庄：每一次成功的亮主都把庄家与底牌让给亮主者
		g.dealer = seat
		g.dealerKnown = true
		g.kittyOwner = seat
	}

	if g.drawn < drawnCards {
		return g.drawNext(), nil
	}
	// 发牌结束后亮主：确认圈重新从亮主者的下家开始
	g.lapAnchor = seat
	g.lapOpen = true
	g.active = seat.Next()
	return Step{Next: g.active}, nil
}

func (g *Game) applyPassDeclare(seat Position) (Step, error) {
	if g.stage != StageDeclare {
		return Step{}, apperrors.ErrWrongStage
	}
	if g.drawn < drawnCards {
		return g.drawNext(), nil
	}
	if !g.lapOpen {
		// 一百张刚好发完：有人亮过主才需要给其他座位最后的反超机会
		if len(g.declarations) == 0 {
			return g.closeDeclare(), nil
		}
		g.lapAnchor = seat
		g.lapOpen = true
		g.active = seat.Next()
		return Step{Next: g.active}, nil
	}
	if seat.Next() == g.lapAnchor {
		return g.closeDeclare(), nil
	}
	g.active = seat.Next()
	return Step{Next: g.active}, nil
}

// drawNext 给下家摸一张牌并轮到该座位
func (g *Game) drawNext() Step {
	next := g.active.Next()
	g.hands[next].Add(g.deck[g.drawn])
	g.drawn++
	g.active = next
	return Step{Next: next}
}

// closeDeclare 结束定主阶段：没人亮主则随机定庄，庄家收底进入埋底阶段
func (g *Game) closeDeclare() Step {
	if !g.dealerKnown {
		g.dealer = Position(g.rng.IntN(NumSeats))
		g.dealerKnown = true
		g.kittyOwner = g.dealer
	}
	for _, c := range g.deck[drawnCards:] {
		g.hands[g.kittyOwner].Add(c)
	}
	g.drawn = card.PackSize
	g.lapOpen = false
	g.stage = StageKitty
	g.active = g.kittyOwner
	return Step{Next: g.active}
}

func (g *Game) applyPlaceKitty(seat Position, a PlaceKitty) (Step, error) {
	if g.stage != StageKitty {
		return Step{}, apperrors.ErrWrongStage
	}
	if g.kitty.Size() >= kittySize {
		return Step{}, apperrors.ErrKittyComplete
	}
	if !g.hands[seat].Contains(a.Card) {
		return Step{}, apperrors.ErrCardNotOwned
	}

	t := g.Trump()
	suitsBefore, trumpBefore := suitProfile(g.hands[seat], t)
	g.hands[seat].Remove(a.Card)
	g.kitty.Add(a.Card)
	suitsAfter, trumpAfter := suitProfile(g.hands[seat], t)

	// 埋底的即时奖励：清空一门副牌加分，埋主牌减分，埋级牌或王牌重罚
	reward := 0.2 * float64(suitsBefore-suitsAfter)
	if trumpAfter < trumpBefore {
		reward -= 0.5
	}
	if a.Card.IsJoker() || a.Card.Rank == t.Rank {
		reward -= 1
	}

	if g.kitty.Size() < kittySize {
		return Step{Next: seat, Reward: reward}, nil
	}
	step := g.finishKitty(seat)
	step.Reward = reward
	return step, nil
}

func (g *Game) applyPlaceAllKitty(seat Position, a PlaceAllKitty) (Step, error) {
	if g.stage != StageKitty {
		return Step{}, apperrors.ErrWrongStage
	}
	if !g.kitty.IsEmpty() {
		return Step{}, fmt.Errorf("%w: 批量埋底要求底牌为空", apperrors.ErrInvalidAction)
	}
	if a.Cards.Size() != kittySize {
		return Step{}, fmt.Errorf("%w: 底牌应为 %d 张", apperrors.ErrInvalidAction, kittySize)
	}
	if !g.hands[seat].ContainsSet(a.Cards) {
		return Step{}, apperrors.ErrCardNotOwned
	}
	g.hands[seat].RemoveSet(a.Cards)
	g.kitty.AddSet(a.Cards)
	return g.finishKitty(seat), nil
}

// finishKitty 埋满八张后的阶段转移：需要时开启抄底圈，否则直接开打
func (g *Game) finishKitty(seat Position) Step {
	if g.cfg.EnableCounterBid && len(g.declarations) > 0 {
		g.stage = StageCounterBid
		g.lapAnchor = seat
		g.lapOpen = true
		g.active = seat.Next()
		return Step{Next: g.active}
	}
	return g.startPlay()
}

// startPlay 进入出牌阶段，持底者领出第一轮
func (g *Game) startPlay() Step {
	g.stage = StagePlay
	g.lapOpen = false
	g.rounds = append(g.rounds, round{leader: g.kittyOwner})
	g.active = g.kittyOwner
	return Step{Next: g.active}
}

func (g *Game) applyCounterBid(seat Position, a CounterBid) (Step, error) {
	if g.stage != StageCounterBid {
		return Step{}, apperrors.ErrWrongStage
	}
	if !rule.ValidDeclaration(a.Suit, a.Level) {
		return Step{}, apperrors.ErrInvalidDeclaration
	}
	if !g.counterBidAllowed(rule.DeclarationOption{Suit: a.Suit, Level: a.Level}) {
		return Step{}, fmt.Errorf("%w: 抄底序不够", apperrors.ErrInvalidDeclaration)
	}
	shown := rule.DeclarationCards(a.Suit, a.Level, g.cfg.DominantRank)
	if !g.hands[seat].ContainsSet(shown) {
		return Step{}, apperrors.ErrCardNotOwned
	}

	g.declarations = append(g.declarations, Declaration{Seat: seat, Suit: a.Suit, Level: a.Level})
	mergePublic(&g.public[seat], shown)
	// 抄底者拿走底牌重新埋底；庄家归属不变，守方阵营不随底牌移动
	g.hands[seat].AddSet(g.kitty)
	g.kitty = card.CardSet{}
	g.kittyOwner = seat
	g.counterBids[seat]++
	g.stage = StageKitty
	g.lapOpen = false
	g.active = seat
	return Step{Next: seat}, nil
}

func (g *Game) applyPassCounterBid(seat Position) (Step, error) {
	if g.stage != StageCounterBid {
		return Step{}, apperrors.ErrWrongStage
	}
	if seat.Next() == g.lapAnchor {
		return g.startPlay(), nil
	}
	g.active = seat.Next()
	return Step{Next: g.active}, nil
}

func (g *Game) applyLead(seat Position, a Lead) (Step, error) {
	r, err := g.currentRound(seat, true)
	if err != nil {
		return Step{}, err
	}
	if len(r.plays) > 0 {
		return Step{}, fmt.Errorf("%w: 本轮已有领出", apperrors.ErrInvalidAction)
	}
	mv, err := g.classifyComponent(a.Cards)
	if err != nil {
		return Step{}, err
	}
	if !g.hands[seat].ContainsSet(a.Cards) {
		return Step{}, apperrors.ErrCardNotOwned
	}

	r.plays = append(r.plays, a.Cards)
	if !g.combosAllowed(seat) {
		return g.settleLead(seat, mv)
	}
	// 甩牌模式：领出暂挂，领出者继续追加成分或定牌
	g.pendingOpen = true
	g.pendingSuit = mv.Suit
	g.comboParts = 1
	return Step{Next: seat}, nil
}

func (g *Game) applyExtendLead(seat Position, a ExtendLead) (Step, error) {
	r, err := g.currentRound(seat, true)
	if err != nil {
		return Step{}, err
	}
	if !g.pendingOpen {
		return Step{}, fmt.Errorf("%w: 没有进行中的甩牌", apperrors.ErrInvalidAction)
	}
	if g.comboParts >= maxComboParts {
		return Step{}, fmt.Errorf("%w: 甩牌成分已达上限", apperrors.ErrInvalidAction)
	}
	mv, err := g.classifyComponent(a.Cards)
	if err != nil {
		return Step{}, err
	}
	if mv.Suit != g.pendingSuit {
		return Step{}, fmt.Errorf("%w: 甩牌成分必须同花色", apperrors.ErrInvalidAction)
	}
	remaining := g.hands[seat]
	remaining.RemoveSet(r.plays[0])
	if !remaining.ContainsSet(a.Cards) {
		return Step{}, apperrors.ErrCardNotOwned
	}

	r.plays[0].AddSet(a.Cards)
	g.comboParts++
	return Step{Next: seat}, nil
}

func (g *Game) applyEndLead(seat Position) (Step, error) {
	r, err := g.currentRound(seat, true)
	if err != nil {
		return Step{}, err
	}
	if !g.pendingOpen {
		return Step{}, fmt.Errorf("%w: 没有进行中的甩牌", apperrors.ErrInvalidAction)
	}
	mv, err := rule.Classify(r.plays[0], g.Trump())
	if err != nil {
		return Step{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidAction, err)
	}
	return g.settleLead(seat, mv)
}

// settleLead 裁决领出并定牌。多成分甩牌被其他座位压得住时缩减为
// 被迫替代并计惩罚，甩不出去的部分公开；定牌后牌离手，下家跟牌。
func (g *Game) settleLead(seat Position, mv rule.Move) (Step, error) {
	t := g.Trump()
	others := make([]card.CardSet, 0, NumSeats-1)
	for p := seat.Next(); p != seat; p = p.Next() {
		others = append(others, g.hands[p])
	}
	legal, forced := rule.JudgeLead(mv, others, t)

	r := &g.rounds[len(g.rounds)-1]
	reward := 0.0
	played := mv.Cards
	if !legal {
		played = forced.Cards
		reward = -g.cfg.ComboPenalty
		failed := mv.Cards
		failed.RemoveSet(played)
		mergePublic(&g.public[seat], failed)
	}
	r.plays[0] = played
	g.hands[seat].RemoveSet(played)
	g.unplayed.RemoveSet(played)
	reducePublic(&g.public[seat], played)
	g.pendingOpen = false
	g.comboParts = 0
	g.active = seat.Next()
	return Step{Next: g.active, Reward: reward}, nil
}

func (g *Game) applyFollow(seat Position, a Follow) (Step, error) {
	r, err := g.currentRound(seat, false)
	if err != nil {
		return Step{}, err
	}
	if len(r.plays) == 0 || g.pendingOpen {
		return Step{}, fmt.Errorf("%w: 领出尚未定牌", apperrors.ErrInvalidAction)
	}
	t := g.Trump()
	if !g.hands[seat].ContainsSet(a.Cards) {
		return Step{}, apperrors.ErrCardNotOwned
	}
	lead, err := rule.Classify(r.plays[0], t)
	if err != nil {
		return Step{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidAction, err)
	}
	if !followLegal(lead, g.hands[seat], a.Cards, t) {
		return Step{}, fmt.Errorf("%w: 不符合跟牌要求", apperrors.ErrInvalidAction)
	}

	g.hands[seat].RemoveSet(a.Cards)
	g.unplayed.RemoveSet(a.Cards)
	reducePublic(&g.public[seat], a.Cards)
	r.plays = append(r.plays, a.Cards)

	if len(r.plays) < NumSeats {
		g.active = seat.Next()
		return Step{Next: g.active}, nil
	}
	return g.resolveRound(seat, r), nil
}

// resolveRound 四家出齐后结算一轮：定赢家、记分，赢家领出下一轮；
// 手牌打空则结算终局。
func (g *Game) resolveRound(seat Position, r *round) Step {
	t := g.Trump()
	winnerOff := rule.RoundWinner(r.plays, t)
	winner := Position((int(r.leader) + winnerOff) % NumSeats)

	points := 0
	for _, cs := range r.plays {
		points += cs.Points()
	}
	if winner.SameTeam(g.dealer) {
		g.defenderPoints += points
		g.pointDeltas = append(g.pointDeltas, points)
	} else {
		g.challengerPoints += points
		g.pointDeltas = append(g.pointDeltas, -points)
	}

	if g.hands[seat].IsEmpty() {
		return g.finish(seat, winner, r.plays[winnerOff])
	}
	g.rounds = append(g.rounds, round{leader: winner})
	g.active = winner
	return Step{Next: winner}
}

// finish 终局结算。抓分方拿下末轮时底牌分按赢牌牌型翻倍计入总分；
// 守方拿下时按双倍记为保住的分数。之后按抓分总额换算双方最终得分。
func (g *Game) finish(seat, winner Position, winning card.CardSet) Step {
	kittyPoints := g.kitty.Points()
	last := len(g.pointDeltas) - 1
	if winner.SameTeam(g.dealer) {
		g.pointDeltas[last] += kittyPoints * 2
	} else {
		bonus := kittyPoints * rule.KittyMultiplier(winning, g.Trump())
		g.challengerPoints += bonus
		g.pointDeltas[last] -= bonus
	}

	value := challengerValue(g.challengerPoints)
	for _, p := range AllPositions {
		if p.SameTeam(g.dealer) {
			g.finals[p] = -value
		} else {
			g.finals[p] = value
		}
	}
	g.done = true
	g.stage = StageEnded
	g.active = winner
	return Step{Next: winner, Reward: g.finals[seat], Done: true}
}

// challengerValue 抓分方的终局得分：80 分及格后每 40 分再升一级，
// 不足 80 按档位给负分
func challengerValue(points int) float64 {
	switch {
	case points >= 80:
		return float64(1 + (points-80)/40)
	case points >= 40:
		return -1
	case points > 0:
		return -2
	default:
		return -3
	}
}

// currentRound 返回进行中的一轮，mustLead 要求行动座位是本轮领出者
func (g *Game) currentRound(seat Position, mustLead bool) (*round, error) {
	if g.stage != StagePlay {
		return nil, apperrors.ErrWrongStage
	}
	r := &g.rounds[len(g.rounds)-1]
	if mustLead && r.leader != seat {
		return nil, fmt.Errorf("%w: 本轮由别家领出", apperrors.ErrInvalidAction)
	}
	return r, nil
}

// classifyComponent 要求牌恰好构成一个可领出的成分
func (g *Game) classifyComponent(cs card.CardSet) (rule.Move, error) {
	mv, err := rule.Classify(cs, g.Trump())
	if err != nil {
		return rule.Move{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidAction, err)
	}
	if len(mv.Components) != 1 {
		return rule.Move{}, fmt.Errorf("%w: 一次只能领出一个成分", apperrors.ErrInvalidAction)
	}
	return mv, nil
}

// followLegal 判断跟牌是否在合法应牌集合内
func followLegal(lead rule.Move, hand, cards card.CardSet, t card.Trump) bool {
	if cards.Size() != lead.Size() {
		return false
	}
	for _, cs := range rule.MatchingMoves(lead, hand, t) {
		if cs == cards {
			return true
		}
	}
	return false
}

// suitProfile 统计手牌占有几门副牌以及主牌张数
func suitProfile(hand card.CardSet, t card.Trump) (suits, trump int) {
	for es := card.EffDiamond; es <= card.EffSpade; es++ {
		if !hand.FilterSuit(t, es).IsEmpty() {
			suits++
		}
	}
	return suits, hand.FilterSuit(t, card.EffTrump).Size()
}

// mergePublic 把亮出的牌并入公开信息，按牌面取已知数量的最大值
func mergePublic(public *card.CardSet, shown card.CardSet) {
	for _, c := range shown.Distinct() {
		if n := shown.Count(c) - public.Count(c); n > 0 {
			public.AddN(c, n)
		}
	}
}

// reducePublic 打出的牌从公开信息中销账，至多扣到零
func reducePublic(public *card.CardSet, played card.CardSet) {
	for _, c := range played.Distinct() {
		for range min(public.Count(c), played.Count(c)) {
			public.Remove(c)
		}
	}
}

// Stage 当前阶段
func (g *Game) Stage() Stage { return g.stage }

// Active 当前行动座位
func (g *Game) Active() Position { return g.active }

// Done 对局是否已结束
func (g *Game) Done() bool { return g.done }

// Dealer 庄家座位；抢庄期间尚未定庄时第二个返回值为 false
func (g *Game) Dealer() (Position, bool) { return g.dealer, g.dealerKnown }

// KittyOwner 持底座位；尚未定庄时第二个返回值为 false
func (g *Game) KittyOwner() (Position, bool) { return g.kittyOwner, g.dealerKnown }

// Declarations 定主历史
func (g *Game) Declarations() []Declaration { return slices.Clone(g.declarations) }

// ChallengerPoints 抓分方累计得分
func (g *Game) ChallengerPoints() int { return g.challengerPoints }

// DefenderPoints 守方累计保住的分数
func (g *Game) DefenderPoints() int { return g.defenderPoints }

// PointDeltas 每轮结算后守方视角的分数变动，末轮含底牌结算
func (g *Game) PointDeltas() []int { return slices.Clone(g.pointDeltas) }

// Finals 各座位的最终得分，对局结束前全为零
func (g *Game) Finals() [NumSeats]float64 { return g.finals }

// RoundCount 已开始的轮数
func (g *Game) RoundCount() int { return len(g.rounds) }

// Status 以多行文本描述当前局面，用于命令行与日志排查
func (g *Game) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "阶段: %v  将牌: %v\n", g.stage, g.Trump())
	if g.dealerKnown {
		fmt.Fprintf(&b, "庄家: %v  持底: %v\n", g.dealer, g.kittyOwner)
	}
	for _, p := range AllPositions {
		fmt.Fprintf(&b, "%v(%d): %v\n", p, g.hands[p].Size(), g.hands[p])
	}
	if len(g.declarations) > 0 {
		fmt.Fprintf(&b, "定主: %v\n", g.declarations)
	}
	fmt.Fprintf(&b, "底牌: %v\n", g.kitty)
	fmt.Fprintf(&b, "抓分: %d  保分: %d\n", g.challengerPoints, g.defenderPoints)
	if g.done {
		fmt.Fprintf(&b, "终局: %v\n", g.finals)
	}
	return b.String()
}
