package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/tractor/internal/agent"
	"github.com/palemoky/tractor/internal/game"
)

// 事件日志保留的条数
const maxEvents = 8

// Model 本地对战模式：真人坐一个座位，其余三个座位由托管策略代打。
// 整个模型只消费座位观察，从不触碰引擎内部状态。
type Model struct {
	g      *game.Game
	seat   game.Position
	agents map[game.Position]agent.Agent

	input  textinput.Model
	events []string
	errMsg string

	width  int
	height int
}

// NewModel 创建本地对战模型并开局。除 seat 外的座位都必须配有托管策略。
func NewModel(cfg game.Config, seat game.Position, agents map[game.Position]agent.Agent) (*Model, error) {
	for _, p := range game.AllPositions {
		if p == seat {
			continue
		}
		if agents[p] == nil {
			return nil, fmt.Errorf("座位 %v 缺少托管策略", p)
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := g.Start(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "输入动作序号后回车"
	input.CharLimit = 3
	input.Width = 24
	input.Focus()

	m := &Model{
		g:      g,
		seat:   seat,
		agents: agents,
		input:  input,
	}
	m.driveAgents()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.g.Done() {
				return m, tea.Quit
			}
			m.submitInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput 解析输入的动作序号并结算
func (m *Model) submitInput() {
	raw := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	index, err := strconv.Atoi(raw)
	if err != nil {
		m.errMsg = fmt.Sprintf("无法识别的序号: %q", raw)
		return
	}

	obs := m.g.Observe(m.seat)
	if len(obs.Actions) == 0 {
		m.errMsg = "还没轮到您"
		return
	}
	if index < 0 || index >= len(obs.Actions) {
		m.errMsg = fmt.Sprintf("序号 %d 超出范围 0..%d", index, len(obs.Actions)-1)
		return
	}

	m.errMsg = ""
	m.applyAction(m.seat, obs.Actions[index])
	m.driveAgents()
}

// applyAction 结算一个动作并记录事件
func (m *Model) applyAction(seat game.Position, action game.Action) {
	prevSettled := len(m.g.PointDeltas())

	if _, err := m.g.Apply(seat, action); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.pushEvent(fmt.Sprintf("%v %v", seat, action))

	// 一轮打满时记录轮次结算
	if deltas := m.g.PointDeltas(); len(deltas) > prevSettled {
		m.pushEvent(fmt.Sprintf("本轮抓分 %+d，比分 %d : %d",
			deltas[len(deltas)-1], m.g.ChallengerPoints(), m.g.DefenderPoints()))
	}
}

// driveAgents 连续替托管座位行动，直到轮到真人或终局
func (m *Model) driveAgents() {
	for !m.g.Done() {
		active := m.g.Active()
		if active == m.seat {
			return
		}

		obs := m.g.Observe(active)
		if len(obs.Actions) == 0 {
			return
		}
		m.applyAction(active, m.agents[active].Act(obs))
	}
}

func (m *Model) pushEvent(event string) {
	m.events = append(m.events, event)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}
