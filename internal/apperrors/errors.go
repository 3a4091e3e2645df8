package apperrors

import (
	"errors"

	"github.com/palemoky/tractor/internal/protocol"
)

// GameError 游戏错误（引擎和服务端共享）。
// 引擎只在调用方违反使用契约时返回错误；规则层面的结果（如甩牌失败）
// 是正常返回值，不走错误通道。
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull     = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted  = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始"}
	ErrSeatTaken    = &GameError{Code: protocol.ErrCodeSeatTaken, Message: "座位已被占用"}

	ErrGameNotStart       = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrNotYourTurn        = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrWrongStage         = &GameError{Code: protocol.ErrCodeWrongStage, Message: "当前阶段不接受该操作"}
	ErrInvalidAction      = &GameError{Code: protocol.ErrCodeInvalidAction, Message: "无效的操作"}
	ErrCardNotOwned       = &GameError{Code: protocol.ErrCodeCardNotOwned, Message: "您没有这张牌"}
	ErrInvalidDeclaration = &GameError{Code: protocol.ErrCodeInvalidDeclaration, Message: "无效的定主"}
	ErrKittyComplete      = &GameError{Code: protocol.ErrCodeKittyComplete, Message: "底牌已满"}
	ErrGameOver           = &GameError{Code: protocol.ErrCodeGameOver, Message: "游戏已结束"}

	ErrBadConfig = &GameError{Code: protocol.ErrCodeBadConfig, Message: "配置无效"}
)

// AsGameError 提取错误链中的 GameError
func AsGameError(err error) (*GameError, bool) {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
