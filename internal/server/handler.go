package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/tractor/internal/apperrors"
	"github.com/palemoky/tractor/internal/logger"
	"github.com/palemoky/tractor/internal/protocol"
)

// Handler 消息处理器
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client *Client, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 牌桌操作
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.MsgLeaveRoom:
		h.server.rooms.LeaveRoom(client)

	// 对局操作
	case protocol.MsgAct:
		h.handleAct(client, msg)

	// 排行榜
	case protocol.MsgGetStats:
		h.handleGetStats(client)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)

	default:
		logger.L().Warn("未知消息类型", zap.String("type", string(msg.Type)))
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// sendError 按错误类型回复错误消息
func sendError(client *Client, err error) {
	if ge, ok := apperrors.AsGameError(err); ok {
		client.SendMessage(protocol.NewErrorMessageWithText(ge.Code, ge.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// handlePing 处理心跳消息
func (h *Handler) handlePing(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// handleCreateRoom 处理创建牌桌
func (h *Handler) handleCreateRoom(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在牌桌上，先离开
	if client.GetRoom() != "" {
		h.server.rooms.LeaveRoom(client)
	}

	room, err := h.server.rooms.CreateRoom(client, payload.Name, payload.Bots)
	if err != nil {
		sendError(client, err)
		return
	}

	room.mu.Lock()
	player := room.playerByClientID(client.ID)
	room.mu.Unlock()
	if player == nil {
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: room.Code,
		Player:   playerInfo(player),
	}))
}

// handleJoinRoom 处理加入牌桌
func (h *Handler) handleJoinRoom(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		h.server.rooms.LeaveRoom(client)
	}

	room, err := h.server.rooms.JoinRoom(client, payload.RoomCode, payload.Name)
	if err != nil {
		sendError(client, err)
		return
	}

	room.mu.Lock()
	player := room.playerByClientID(client.ID)
	players := room.allPlayersInfo()
	room.mu.Unlock()
	if player == nil {
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode: room.Code,
		Player:   playerInfo(player),
		Players:  players,
	}))
}

// handleAct 处理按序号提交的动作
func (h *Handler) handleAct(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ActPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	room := h.server.rooms.GetRoom(client.GetRoom())
	if room == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if err := room.HandleAct(client, payload.ActionIndex); err != nil {
		sendError(client, err)
	}
}

// handleGetStats 处理个人统计查询
func (h *Handler) handleGetStats(client *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := h.server.leaderboard.GetPlayerStats(ctx, client.ID)
	if err != nil {
		sendError(client, err)
		return
	}

	result := protocol.StatsResultPayload{
		PlayerID:   client.ID,
		PlayerName: client.Name,
	}
	if stats != nil {
		result.PlayerName = stats.PlayerName
		result.TotalGames = stats.TotalGames
		result.Wins = stats.Wins
		result.Score = stats.Score
		result.WinRate = stats.WinRate()
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, result))
}

// handleGetLeaderboard 处理排行榜查询
func (h *Handler) handleGetLeaderboard(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	limit := payload.Limit
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := h.server.leaderboard.GetLeaderboard(ctx, limit)
	if err != nil {
		sendError(client, err)
		return
	}

	dtos := make([]protocol.LeaderboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, protocol.LeaderboardEntryDTO{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			Score:      e.Score,
			Wins:       e.Wins,
			WinRate:    e.WinRate,
		})
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: dtos,
	}))
}
