package game

import "fmt"

// Stage 定义对局阶段。阶段只会向前推进，唯一的例外是抄底成功后
// 退回埋底阶段由新的持底者重新埋底。
type Stage int

const (
	StageDeclare    Stage = iota // 摸牌定主
	StageKitty                   // 埋底
	StageCounterBid              // 抄底
	StagePlay                    // 出牌
	StageEnded                   // 终局
)

var stageNames = map[Stage]string{
	StageDeclare:    "定主",
	StageKitty:      "埋底",
	StageCounterBid: "抄底",
	StagePlay:       "出牌",
	StageEnded:      "终局",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}
