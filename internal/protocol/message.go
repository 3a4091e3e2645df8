package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 牌桌操作
	MsgCreateRoom MessageType = "create_room" // 创建牌桌
	MsgJoinRoom   MessageType = "join_room"   // 加入牌桌
	MsgLeaveRoom  MessageType = "leave_room"  // 离开牌桌

	// 对局操作
	MsgAct MessageType = "act" // 按序号提交动作

	// 排行榜
	MsgGetStats       MessageType = "get_stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 牌桌相关
	MsgRoomCreated  MessageType = "room_created"  // 牌桌创建成功
	MsgRoomJoined   MessageType = "room_joined"   // 加入牌桌成功
	MsgPlayerJoined MessageType = "player_joined" // 其他玩家加入
	MsgPlayerLeft   MessageType = "player_left"   // 玩家离开

	// 对局流程
	MsgGameStart   MessageType = "game_start"   // 对局开始
	MsgObservation MessageType = "observation"  // 座位视角的局面快照
	MsgActApplied  MessageType = "act_applied"  // 有人动作结算
	MsgRoundResult MessageType = "round_result" // 一轮结算
	MsgGameOver    MessageType = "game_over"    // 对局结束

	// 排行榜
	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
