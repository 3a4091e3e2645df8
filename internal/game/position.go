package game

import "fmt"

// NumSeats 牌桌固定四个座位
const NumSeats = 4

// Position 定义四个座位，按行动顺序北 → 西 → 南 → 东循环。
// 北南一队，西东一队。
type Position int

const (
	North Position = iota
	West
	South
	East
)

// AllPositions 按行动顺序排列的全部座位
var AllPositions = [NumSeats]Position{North, West, South, East}

var positionNames = map[Position]string{
	North: "北",
	West:  "西",
	South: "南",
	East:  "东",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition 解析座位标识，接受 N/W/S/E 或中文名
func ParsePosition(s string) (Position, error) {
	switch s {
	case "N", "n", "北":
		return North, nil
	case "W", "w", "西":
		return West, nil
	case "S", "s", "南":
		return South, nil
	case "E", "e", "东":
		return East, nil
	}
	return 0, fmt.Errorf("无法识别的座位: %q", s)
}

// Next 下家
func (p Position) Next() Position {
	return (p + 1) % NumSeats
}

// Prev 上家
func (p Position) Prev() Position {
	return (p + NumSeats - 1) % NumSeats
}

// Teammate 对家，即队友
func (p Position) Teammate() Position {
	return (p + 2) % NumSeats
}

// SameTeam 判断两个座位是否同队
func (p Position) SameTeam(o Position) bool {
	return p == o || p.Teammate() == o
}

// RelativePosition 以某个座位为基准的相对座位
type RelativePosition int

const (
	RelSelf     RelativePosition = iota // 自家
	RelNext                             // 下家
	RelOpposite                         // 对家
	RelPrev                             // 上家
)

var relativeNames = map[RelativePosition]string{
	RelSelf:     "自家",
	RelNext:     "下家",
	RelOpposite: "对家",
	RelPrev:     "上家",
}

func (r RelativePosition) String() string {
	if name, ok := relativeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RelativePosition(%d)", int(r))
}

// RelativeTo 返回 p 在 viewer 眼中的相对座位
func (p Position) RelativeTo(viewer Position) RelativePosition {
	return RelativePosition((int(p) - int(viewer) + NumSeats) % NumSeats)
}
