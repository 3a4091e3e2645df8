package protocol

// 牌在线路上用牌面字符串表示（"A♦"、"10♥"、"XJ"），
// 座位用绝对序号 0..3（北西南东），相对座位用 0..3（自家、下家、对家、上家）。

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建牌桌请求
type CreateRoomPayload struct {
	Name string `json:"name"` // 玩家昵称
	Bots bool   `json:"bots"` // 空座位用托管策略补齐并立即开局
}

// JoinRoomPayload 加入牌桌请求
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
	Name     string `json:"name"`
}

// ActPayload 按序号提交动作：序号指向最近一次局面快照中的动作列表
type ActPayload struct {
	ActionIndex int `json:"action_index"`
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Seat int    `json:"seat"`
	Bot  bool   `json:"bot"` // 由托管策略代打的座位
}

// RoomCreatedPayload 牌桌创建成功响应
type RoomCreatedPayload struct {
	RoomCode string     `json:"room_code"`
	Player   PlayerInfo `json:"player"`
}

// RoomJoinedPayload 加入牌桌成功响应
type RoomJoinedPayload struct {
	RoomCode string       `json:"room_code"`
	Player   PlayerInfo   `json:"player"`
	Players  []PlayerInfo `json:"players"`
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// GameStartPayload 对局开始通知
type GameStartPayload struct {
	Seat         int          `json:"seat"` // 收信者的座位
	DominantRank string       `json:"dominant_rank"`
	Players      []PlayerInfo `json:"players"`
}

// DeclarationDTO 最近一次定主（座位为收信者视角的相对座位）
type DeclarationDTO struct {
	Seat  int    `json:"seat"`
	Suit  string `json:"suit"`
	Level int    `json:"level"`
}

// RoundDTO 一轮出牌（领出座位为相对座位，出牌按行动顺序）
type RoundDTO struct {
	Leader int        `json:"leader"`
	Plays  [][]string `json:"plays"`
}

// ObservationDTO 座位视角的局面快照。Actions 只对行动座位非空，
// 客户端用 ActPayload 回传其中某一项的序号。
type ObservationDTO struct {
	Seat             int             `json:"seat"`
	Stage            string          `json:"stage"`
	Active           int             `json:"active"` // 相对座位
	TrumpSuit        string          `json:"trump_suit"`
	TrumpRank        string          `json:"trump_rank"`
	Hand             []string        `json:"hand"`
	Kitty            []string        `json:"kitty,omitempty"`
	Dealer           *int            `json:"dealer,omitempty"` // 相对座位
	Declaration      *DeclarationDTO `json:"declaration,omitempty"`
	CounterBids      []int           `json:"counter_bids"`
	Public           [][]string      `json:"public"`
	ChallengerPoints int             `json:"challenger_points"`
	DefenderPoints   int             `json:"defender_points"`
	Rounds           []RoundDTO      `json:"rounds,omitempty"`
	Leading          bool            `json:"leading"`
	Actions          []string        `json:"actions,omitempty"`
	Final            float64         `json:"final"`
	Done             bool            `json:"done"`
}

// ActAppliedPayload 动作结算通知（座位为收信者视角的相对座位）
type ActAppliedPayload struct {
	Seat    int     `json:"seat"`
	Summary string  `json:"summary"` // 动作的文字描述
	Stage   string  `json:"stage"`
	Reward  float64 `json:"reward,omitempty"`
}

// RoundResultPayload 一轮结算通知
type RoundResultPayload struct {
	Winner           int        `json:"winner"` // 相对座位
	Points           int        `json:"points"`
	Plays            [][]string `json:"plays"`
	ChallengerPoints int        `json:"challenger_points"`
	DefenderPoints   int        `json:"defender_points"`
}

// GameOverPayload 对局结束通知
type GameOverPayload struct {
	ChallengerPoints int       `json:"challenger_points"`
	DefenderPoints   int       `json:"defender_points"`
	Finals           []float64 `json:"finals"` // 按绝对座位
	Kitty            []string  `json:"kitty"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	TotalGames int     `json:"total_games"`
	Wins       int     `json:"wins"`
	Score      int     `json:"score"`
	WinRate    float64 `json:"win_rate"`
}

// LeaderboardEntryDTO 排行榜条目
type LeaderboardEntryDTO struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Score      int     `json:"score"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntryDTO `json:"entries"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
