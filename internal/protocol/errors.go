package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001
	ErrCodeRateLimit  = 1002 // 速率限制

	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
	ErrCodeGameStarted  = 2004 // 游戏已开始
	ErrCodeSeatTaken    = 2005

	ErrCodeGameNotStart       = 3001
	ErrCodeNotYourTurn        = 3002
	ErrCodeWrongStage         = 3003
	ErrCodeInvalidAction      = 3004
	ErrCodeCardNotOwned       = 3005
	ErrCodeInvalidDeclaration = 3006
	ErrCodeKittyComplete      = 3007
	ErrCodeGameOver           = 3008

	ErrCodeBadConfig = 4001
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:    "未知错误",
	ErrCodeInvalidMsg: "无效的消息格式",
	ErrCodeRateLimit:  "请求过于频繁",

	ErrCodeRoomNotFound: "房间不存在",
	ErrCodeRoomFull:     "房间已满",
	ErrCodeNotInRoom:    "您不在房间中",
	ErrCodeGameStarted:  "游戏已开始",
	ErrCodeSeatTaken:    "座位已被占用",

	ErrCodeGameNotStart:       "游戏尚未开始",
	ErrCodeNotYourTurn:        "还没轮到您",
	ErrCodeWrongStage:         "当前阶段不接受该操作",
	ErrCodeInvalidAction:      "无效的操作",
	ErrCodeCardNotOwned:       "您没有这张牌",
	ErrCodeInvalidDeclaration: "无效的定主",
	ErrCodeKittyComplete:      "底牌已满",
	ErrCodeGameOver:           "游戏已结束",

	ErrCodeBadConfig: "配置无效",
}
