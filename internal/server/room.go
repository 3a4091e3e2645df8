package server

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/tractor/internal/agent"
	"github.com/palemoky/tractor/internal/apperrors"
	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/logger"
	"github.com/palemoky/tractor/internal/protocol"
	"github.com/palemoky/tractor/internal/protocol/convert"
)

const (
	// 牌桌号长度
	roomCodeLength = 6
	// 牌桌号字符集
	roomCodeChars = "0123456789"

	// 等待中的牌桌超时时间
	roomTimeout = 2 * time.Hour
)

// RoomState 牌桌状态
type RoomState int

const (
	RoomStateWaiting RoomState = iota // 等待玩家
	RoomStatePlaying                  // 对局中
	RoomStateEnded                    // 对局结束
)

// RoomPlayer 牌桌上的一个座位。Client 为 nil 时由托管策略代打。
type RoomPlayer struct {
	ID     string
	Name   string
	Seat   game.Position
	Client *Client
	Bot    agent.Agent
}

// Room 一张牌桌：四个座位加一局引擎。
// 引擎本身不认识玩家，牌桌负责座位和连接的对应关系。
type Room struct {
	Code      string
	CreatedAt time.Time

	state RoomState
	seats [game.NumSeats]*RoomPlayer
	game  *game.Game

	server  *Server
	rng     *rand.Rand
	turnGen int // 递增代数，作废过期的超时托管

	mu sync.Mutex
}

// RoomManager 牌桌管理器
type RoomManager struct {
	server *Server
	rooms  map[string]*Room
	mu     sync.RWMutex
}

// NewRoomManager 创建牌桌管理器
func NewRoomManager(s *Server) *RoomManager {
	rm := &RoomManager{
		server: s,
		rooms:  make(map[string]*Room),
	}
	go rm.cleanupLoop()
	return rm
}

// CreateRoom 创建牌桌。bots 为真时空座位由托管策略补齐并立即开局。
func (rm *RoomManager) CreateRoom(client *Client, name string, bots bool) (*Room, error) {
	rm.mu.Lock()
	code := rm.generateRoomCode()

	room := &Room{
		Code:      code,
		CreatedAt: time.Now(),
		state:     RoomStateWaiting,
		server:    rm.server,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	rm.rooms[code] = room
	rm.mu.Unlock()

	room.mu.Lock()
	defer room.mu.Unlock()

	room.seatPlayer(client, name)
	logger.L().Info("牌桌已创建", zap.String("code", code), zap.String("player", client.Name))

	if bots {
		room.fillWithBots()
		room.startGame()
	}
	return room, nil
}

// JoinRoom 加入牌桌，座位满四人后自动开局
func (rm *RoomManager) JoinRoom(client *Client, code, name string) (*Room, error) {
	rm.mu.RLock()
	room, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.state != RoomStateWaiting {
		return nil, apperrors.ErrGameStarted
	}
	if room.freeSeat() < 0 {
		return nil, apperrors.ErrRoomFull
	}

	player := room.seatPlayer(client, name)
	logger.L().Info("玩家加入牌桌", zap.String("code", code), zap.String("player", player.Name))

	room.broadcastExcept(client.ID, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: playerInfo(player),
	}))

	if room.freeSeat() < 0 {
		room.startGame()
	}
	return room, nil
}

// LeaveRoom 离开牌桌。对局中离开的座位转为托管继续打完。
func (rm *RoomManager) LeaveRoom(client *Client) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	rm.mu.RLock()
	room, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return
	}

	room.mu.Lock()

	player := room.playerByClientID(client.ID)
	if player == nil {
		room.mu.Unlock()
		return
	}

	client.SetRoom("")
	room.broadcastExcept(client.ID, protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		PlayerID:   player.ID,
		PlayerName: player.Name,
	}))

	if room.state == RoomStatePlaying {
		// 座位转托管
		player.Client = nil
		player.Bot = agent.NewGreedy()
		logger.L().Info("玩家离开，座位转托管",
			zap.String("code", code), zap.String("player", player.Name), zap.Stringer("seat", player.Seat))
		room.driveBots()
		room.scheduleTurnTimeout()
	} else {
		room.seats[player.Seat] = nil
	}

	empty := !room.hasHumans()
	room.mu.Unlock()

	if empty {
		rm.mu.Lock()
		delete(rm.rooms, code)
		rm.mu.Unlock()
		logger.L().Info("牌桌已解散", zap.String("code", code))
	}
}

// GetRoom 获取牌桌
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// generateRoomCode 生成唯一牌桌号，调用方需持有 rm.mu
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		if _, exists := rm.rooms[string(code)]; !exists {
			return string(code)
		}
	}
}

// cleanupLoop 定期清理超时的等待中牌桌
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()
	for code, room := range rm.rooms {
		room.mu.Lock()
		expired := room.state == RoomStateWaiting && now.Sub(room.CreatedAt) > roomTimeout
		if expired {
			room.broadcast(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "牌桌超时已关闭"))
			for _, p := range room.seats {
				if p != nil && p.Client != nil {
					p.Client.SetRoom("")
				}
			}
			delete(rm.rooms, code)
			logger.L().Info("牌桌超时已清理", zap.String("code", code))
		}
		room.mu.Unlock()
	}
}

// --- Room 方法，均要求持有 r.mu ---

// freeSeat 返回第一个空座位，满员返回 -1
func (r *Room) freeSeat() int {
	for i, p := range r.seats {
		if p == nil {
			return i
		}
	}
	return -1
}

// seatPlayer 把客户端安排到第一个空座位
func (r *Room) seatPlayer(client *Client, name string) *RoomPlayer {
	if name == "" {
		name = client.Name
	}
	client.Name = name

	seat := game.Position(r.freeSeat())
	player := &RoomPlayer{
		ID:     client.ID,
		Name:   name,
		Seat:   seat,
		Client: client,
	}
	r.seats[seat] = player
	client.SetRoom(r.Code)
	return player
}

// fillWithBots 用托管策略补齐空座位
func (r *Room) fillWithBots() {
	for i, p := range r.seats {
		if p != nil {
			continue
		}
		r.seats[i] = &RoomPlayer{
			ID:   r.Code + "-bot-" + game.Position(i).String(),
			Name: GenerateNickname(),
			Seat: game.Position(i),
			Bot:  agent.NewGreedy(),
		}
	}
}

// playerByClientID 按连接 ID 查找座位
func (r *Room) playerByClientID(id string) *RoomPlayer {
	for _, p := range r.seats {
		if p != nil && p.Client != nil && p.Client.ID == id {
			return p
		}
	}
	return nil
}

// hasHumans 判断是否还有真人玩家
func (r *Room) hasHumans() bool {
	for _, p := range r.seats {
		if p != nil && p.Client != nil {
			return true
		}
	}
	return false
}

// playerInfo 打包座位信息
func playerInfo(p *RoomPlayer) protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:   p.ID,
		Name: p.Name,
		Seat: int(p.Seat),
		Bot:  p.Bot != nil,
	}
}

func (r *Room) allPlayersInfo() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, game.NumSeats)
	for _, p := range r.seats {
		if p != nil {
			infos = append(infos, playerInfo(p))
		}
	}
	return infos
}

// broadcast 给所有真人座位发消息
func (r *Room) broadcast(msg *protocol.Message) {
	for _, p := range r.seats {
		if p != nil && p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

// broadcastExcept 给除指定连接外的真人座位发消息
func (r *Room) broadcastExcept(excludeID string, msg *protocol.Message) {
	for _, p := range r.seats {
		if p != nil && p.Client != nil && p.Client.ID != excludeID {
			p.Client.SendMessage(msg)
		}
	}
}

// startGame 创建引擎并开局
func (r *Room) startGame() {
	gameCfg := r.server.config.Game
	dominant, err := gameCfg.ParseDominantRank()
	if err != nil {
		r.broadcast(protocol.NewErrorMessage(protocol.ErrCodeBadConfig))
		return
	}

	g, err := game.New(game.Config{
		DominantRank:     dominant,
		EnableCounterBid: gameCfg.EnableCounterBid,
		EnableCombos:     gameCfg.EnableCombos,
		ComboPenalty:     gameCfg.ComboPenalty,
		Rand:             rand.New(rand.NewPCG(r.rng.Uint64(), r.rng.Uint64())),
	})
	if err != nil {
		logger.L().Error("创建对局失败", zap.String("code", r.Code), zap.Error(err))
		r.broadcast(protocol.NewErrorMessage(protocol.ErrCodeBadConfig))
		return
	}
	if _, err := g.Start(); err != nil {
		logger.L().Error("开局失败", zap.String("code", r.Code), zap.Error(err))
		return
	}

	r.game = g
	r.state = RoomStatePlaying
	logger.L().Info("对局开始", zap.String("code", r.Code), zap.Stringer("trump", g.Trump()))

	players := r.allPlayersInfo()
	for _, p := range r.seats {
		if p == nil || p.Client == nil {
			continue
		}
		p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgGameStart, protocol.GameStartPayload{
			Seat:         int(p.Seat),
			DominantRank: gameCfg.DominantRank,
			Players:      players,
		}))
	}

	r.pushObservations()
	r.driveBots()
	r.scheduleTurnTimeout()
}

// pushObservations 给每个真人座位推送其视角的局面快照
func (r *Room) pushObservations() {
	for _, p := range r.seats {
		if p == nil || p.Client == nil {
			continue
		}
		dto := convert.ObservationToDTO(r.game.Observe(p.Seat))
		p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgObservation, dto))
	}
}

// HandleAct 处理真人按序号提交的动作
func (r *Room) HandleAct(client *Client, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != RoomStatePlaying {
		return apperrors.ErrGameNotStart
	}
	player := r.playerByClientID(client.ID)
	if player == nil {
		return apperrors.ErrNotInRoom
	}
	if r.game.Active() != player.Seat {
		return apperrors.ErrNotYourTurn
	}

	actions := r.game.Observe(player.Seat).Actions
	if index < 0 || index >= len(actions) {
		return apperrors.ErrInvalidAction
	}

	if err := r.applyAction(player.Seat, actions[index]); err != nil {
		return err
	}
	r.driveBots()
	r.scheduleTurnTimeout()
	return nil
}

// applyAction 结算一个动作并推送相关通知
func (r *Room) applyAction(seat game.Position, action game.Action) error {
	prevRounds := r.game.RoundCount()

	step, err := r.game.Apply(seat, action)
	if err != nil {
		return err
	}

	for _, p := range r.seats {
		if p == nil || p.Client == nil {
			continue
		}
		p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgActApplied, protocol.ActAppliedPayload{
			Seat:    int(seat.RelativeTo(p.Seat)),
			Summary: action.String(),
			Stage:   r.game.Stage().String(),
			Reward:  step.Reward,
		}))
	}

	// 一轮打满时通报轮次结算
	completed := -1
	if r.game.RoundCount() > prevRounds && prevRounds > 0 {
		completed = prevRounds - 1
	} else if step.Done && r.game.RoundCount() > 0 {
		completed = r.game.RoundCount() - 1
	}
	if completed >= 0 {
		r.sendRoundResult(completed, step.Next)
	}

	if step.Done {
		r.finishGame()
	} else {
		r.pushObservations()
	}
	return nil
}

// sendRoundResult 给每个真人座位发送一轮结算
func (r *Room) sendRoundResult(index int, winner game.Position) {
	deltas := r.game.PointDeltas()
	points := 0
	if index < len(deltas) {
		points = deltas[index]
	}

	for _, p := range r.seats {
		if p == nil || p.Client == nil {
			continue
		}
		rv := r.game.Observe(p.Seat).Rounds[index]
		p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgRoundResult, protocol.RoundResultPayload{
			Winner:           int(winner.RelativeTo(p.Seat)),
			Points:           points,
			Plays:            convert.SetsToTokens(rv.Plays),
			ChallengerPoints: r.game.ChallengerPoints(),
			DefenderPoints:   r.game.DefenderPoints(),
		}))
	}
}

// finishGame 终局：广播结果并记录战绩
func (r *Room) finishGame() {
	r.state = RoomStateEnded
	r.turnGen++

	finals := r.game.Finals()
	payload := protocol.GameOverPayload{
		ChallengerPoints: r.game.ChallengerPoints(),
		DefenderPoints:   r.game.DefenderPoints(),
		Finals:           finals[:],
	}
	if owner, ok := r.game.KittyOwner(); ok {
		payload.Kitty = convert.SetToTokens(r.game.Observe(owner).Kitty)
	}
	r.broadcast(protocol.MustNewMessage(protocol.MsgGameOver, payload))

	logger.L().Info("对局结束",
		zap.String("code", r.Code),
		zap.Int("challenger_points", r.game.ChallengerPoints()),
		zap.Int("defender_points", r.game.DefenderPoints()))

	dealer, ok := r.game.Dealer()
	if !ok {
		return
	}
	for _, p := range r.seats {
		if p == nil || p.Client == nil {
			continue
		}
		isDefender := p.Seat.SameTeam(dealer)
		isWinner := finals[p.Seat] > 0
		id, name := p.ID, p.Name
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := r.server.leaderboard.RecordGameResult(ctx, id, name, isDefender, isWinner); err != nil {
				logger.L().Warn("记录战绩失败", zap.String("player", id), zap.Error(err))
			}
		}()
	}
}

// driveBots 连续替托管座位行动，直到轮到真人或终局
func (r *Room) driveBots() {
	for r.state == RoomStatePlaying {
		active := r.game.Active()
		player := r.seats[active]
		if player == nil || player.Bot == nil {
			return
		}

		obs := r.game.Observe(active)
		if len(obs.Actions) == 0 {
			return
		}
		if err := r.applyAction(active, player.Bot.Act(obs)); err != nil {
			logger.L().Error("托管行动失败", zap.String("code", r.Code), zap.Error(err))
			return
		}
	}
}

// scheduleTurnTimeout 给当前行动的真人座位挂超时托管
func (r *Room) scheduleTurnTimeout() {
	if r.state != RoomStatePlaying {
		return
	}
	timeout := r.server.config.Game.TurnTimeoutDuration()
	if timeout <= 0 {
		return
	}

	active := r.game.Active()
	player := r.seats[active]
	if player == nil || player.Bot != nil {
		return
	}

	r.turnGen++
	gen := r.turnGen
	time.AfterFunc(timeout, func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		if r.turnGen != gen || r.state != RoomStatePlaying || r.game.Active() != active {
			return
		}
		obs := r.game.Observe(active)
		if len(obs.Actions) == 0 {
			return
		}
		logger.L().Info("座位超时，本手转托管", zap.String("code", r.Code), zap.Stringer("seat", active))
		if err := r.applyAction(active, agent.NewGreedy().Act(obs)); err != nil {
			return
		}
		r.driveBots()
		r.scheduleTurnTimeout()
	})
}
