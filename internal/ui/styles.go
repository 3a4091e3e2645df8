package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/tractor/internal/game/card"
)

// 图标
const (
	DealerIcon = "👑"
	ActiveIcon = "👉"
)

// Lipgloss 样式
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptStyle = lipgloss.NewStyle().MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderCard 按花色着色渲染一张牌
func renderCard(c card.Card) string {
	switch {
	case c.Suit == card.Heart || c.Suit == card.Diamond || c == card.BigJoker:
		return redStyle.Render(c.String())
	default:
		return blackStyle.Render(c.String())
	}
}

// renderSet 渲染一组牌，空集合显示占位符
func renderSet(cs card.CardSet) string {
	if cs.IsEmpty() {
		return dimStyle.Render("--")
	}
	out := ""
	for i, c := range cs.Cards() {
		if i > 0 {
			out += " "
		}
		out += renderCard(c)
	}
	return out
}
