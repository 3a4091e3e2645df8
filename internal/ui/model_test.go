package ui

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tractor/internal/agent"
	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/game/card"
)

func newTestModel(t *testing.T, seed uint64) *Model {
	t.Helper()

	agents := map[game.Position]agent.Agent{
		game.West:  agent.NewGreedy(),
		game.South: agent.NewGreedy(),
		game.East:  agent.NewGreedy(),
	}
	m, err := NewModel(game.Config{
		DominantRank: card.Rank2,
		Rand:         rand.New(rand.NewPCG(seed, seed)),
	}, game.North, agents)
	require.NoError(t, err)
	return m
}

func TestNewModelRequiresAgents(t *testing.T) {
	t.Parallel()

	_, err := NewModel(game.Config{}, game.North, nil)
	assert.Error(t, err)
}

func TestViewSmoke(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 7)
	view := m.View()

	assert.Contains(t, view, "升级")
	assert.Contains(t, view, "手牌")
	assert.Contains(t, view, "北")
	assert.Contains(t, view, "(你)")

	// 开局后轮到真人时应列出可选动作
	obs := m.g.Observe(game.North)
	require.NotEmpty(t, obs.Actions)
	assert.Contains(t, view, "[0]")
}

func TestSubmitInvalidInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 7)

	m.input.SetValue("abc")
	m.submitInput()
	assert.NotEmpty(t, m.errMsg)
	assert.Contains(t, m.View(), m.errMsg)

	m.input.SetValue("999")
	m.submitInput()
	assert.Contains(t, m.errMsg, "超出范围")
}

func TestSubmitValidActionAdvances(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 7)
	before := m.g.Observe(game.North).Hand.Size()

	m.input.SetValue("0")
	m.submitInput()
	assert.Empty(t, m.errMsg)
	assert.NotEmpty(t, m.events)

	// 托管座位打完后重新轮到真人（或终局）
	if !m.g.Done() {
		assert.Equal(t, game.North, m.g.Active())
		assert.NotEqual(t, before, 0)
	}
}

func TestPlayThroughToEnd(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 42)
	for i := 0; i < 2000 && !m.g.Done(); i++ {
		m.input.SetValue("0")
		m.submitInput()
		require.Empty(t, m.errMsg)
	}
	require.True(t, m.g.Done(), "对局应在限定步数内打完")

	view := m.View()
	assert.Contains(t, view, "对局结束")

	// 终局后回车退出
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestWindowResizeAndQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 7)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestEventLogBounded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 7)
	for range 30 {
		m.pushEvent("测试事件")
	}
	assert.Len(t, m.events, maxEvents)
}
