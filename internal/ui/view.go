package ui

import (
	"fmt"
	"strings"

	"github.com/palemoky/tractor/internal/game"
)

func (m *Model) View() string {
	obs := m.g.Observe(m.seat)

	var sb strings.Builder
	sb.WriteString(m.headerView(obs))
	sb.WriteString("\n")
	sb.WriteString(m.tableView(obs))
	sb.WriteString("\n")
	sb.WriteString(m.handView(obs))
	sb.WriteString("\n")

	if len(m.events) > 0 {
		sb.WriteString(dimStyle.Render("最近动作: " + strings.Join(m.events, " / ")))
		sb.WriteString("\n")
	}

	if obs.Done {
		sb.WriteString(m.resultView(obs))
	} else {
		sb.WriteString(m.actionView(obs))
	}

	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.errMsg))
	}
	return docStyle.Render(sb.String())
}

// headerView 将牌环境与比分
func (m *Model) headerView(obs game.Observation) string {
	header := fmt.Sprintf("升级 · %v · %v阶段", obs.Trump, obs.Stage)
	score := fmt.Sprintf("抓分 %d : 守分 %d", obs.ChallengerPoints, obs.DefenderPoints)
	return titleStyle(header) + "  " + dimStyle.Render(score)
}

// tableView 四个座位的公开信息与当前一轮出牌
func (m *Model) tableView(obs game.Observation) string {
	var rows []string
	for _, p := range game.AllPositions {
		rel := p.RelativeTo(m.seat)

		marks := ""
		if obs.Dealer != nil && *obs.Dealer == rel {
			marks += DealerIcon
		}
		if obs.Active == rel && !obs.Done {
			marks += ActiveIcon
		}

		line := fmt.Sprintf("%v%s", p, marks)
		if p == m.seat {
			line += dimStyle.Render("(你)")
		}
		if n := obs.CounterBids[rel]; n > 0 {
			line += fmt.Sprintf(" 抄底x%d", n)
		}
		if !obs.Public[rel].IsEmpty() {
			line += "  亮牌: " + renderSet(obs.Public[rel])
		}
		if play, ok := currentPlay(obs, rel); ok {
			line += "  出牌: " + play
		}
		rows = append(rows, line)
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

// currentPlay 返回 rel 座位在进行中一轮里打出的牌
func currentPlay(obs game.Observation, rel game.RelativePosition) (string, bool) {
	if len(obs.Rounds) == 0 {
		return "", false
	}
	round := obs.Rounds[len(obs.Rounds)-1]
	offset := (int(rel) - int(round.Leader) + game.NumSeats) % game.NumSeats
	if offset >= len(round.Plays) {
		return "", false
	}
	return renderSet(round.Plays[offset]), true
}

// handView 自己的手牌、底牌与记牌信息
func (m *Model) handView(obs game.Observation) string {
	var sb strings.Builder
	sb.WriteString("手牌: ")
	sb.WriteString(renderSet(obs.Hand))

	if !obs.Kitty.IsEmpty() {
		sb.WriteString("\n底牌: ")
		sb.WriteString(renderSet(obs.Kitty))
	}

	// 记牌器：场上其他家还没打出的牌
	remaining := obs.Unplayed
	remaining.RemoveSet(obs.Hand)
	remaining.RemoveSet(obs.Kitty)
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("其他家未出: %d 张", remaining.Size())))
	return sb.String()
}

// actionView 可选动作列表与输入框
func (m *Model) actionView(obs game.Observation) string {
	var sb strings.Builder
	if len(obs.Actions) == 0 {
		sb.WriteString(dimStyle.Render("等待其他座位行动..."))
		return sb.String()
	}

	sb.WriteString("可选动作:\n")
	for i, a := range obs.Actions {
		sb.WriteString(fmt.Sprintf("  [%d] %v\n", i, a))
	}
	sb.WriteString(promptStyle.Render(m.input.View()))
	return sb.String()
}

// resultView 终局结果
func (m *Model) resultView(obs game.Observation) string {
	outcome := fmt.Sprintf("对局结束：本方得分 %+.2f（抓分 %d : 守分 %d）",
		obs.Final, obs.ChallengerPoints, obs.DefenderPoints)
	return boxStyle.Render(titleStyle(outcome) + "\n" + dimStyle.Render("回车退出"))
}
