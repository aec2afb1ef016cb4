package game

import (
	"strings"

	"github.com/rs/zerolog/log"

	"abalone_go/internal/hex"
)

const (
	// BoardSize 是棋盘边长，9 行共 61 格
	BoardSize = 5
	// MaxSumito 是一次能整体移动的最多棋子数，也是选区长度上限
	MaxSumito = 3
)

// Item 是 Enumerate 返回的一个 (格子, 占用者) 对
type Item struct {
	Cell  hex.Hex
	Color Color
}

// Shift 描述一次走子中一颗棋子的位移，Removed 为 true 时棋子被推出棋盘
type Shift struct {
	From    hex.Hex
	To      hex.Hex
	Color   Color
	Removed bool
}

// Board is the Abalone board: a hex grid of colors plus the starting layout
// used as the score baseline. Every write goes through Set so the
// enumeration cache never goes stale. A Board is not safe for concurrent use.
type Board struct {
	cells  *hex.Grid[Color]
	layout [][]int
	items  []Item // nil 表示需要重新计算
}

// NewBoard creates an empty board with an empty layout.
func NewBoard() *Board {
	return &Board{cells: hex.NewGrid[Color](BoardSize)}
}

// FromData creates a board from row-major layout codes (0 empty, 1 black,
// 2 white). Unknown codes become empty; rows or columns outside the hexagon
// are ignored. The data is kept as the score baseline.
func FromData(data [][]int) *Board {
	b := NewBoard()
	b.layout = copyLayout(data)
	for r, line := range data {
		for col, code := range line {
			// 布局按列存储，列号加上行偏移才是轴向 q
			cell := hex.Hex{Q: col + b.cells.Offset(r), R: r}
			if err := b.Set(cell, ColorFromCode(code)); err != nil {
				log.Debug().Msgf("layout cell row=%d col=%d skipped: %v", r, col, err)
			}
		}
	}
	return b
}

// Layout returns a copy of the starting layout.
func (b *Board) Layout() [][]int { return copyLayout(b.layout) }

// Size returns the board's edge length.
func (b *Board) Size() int { return b.cells.Size() }

// Offset returns the axial q of the first cell in row.
func (b *Board) Offset(row int) int { return b.cells.Offset(row) }

// Get returns the occupant of c; out-of-bounds cells read as Empty.
func (b *Board) Get(c hex.Hex) Color { return b.cells.Get(c) }

// Set writes c and invalidates the enumeration cache.
func (b *Board) Set(c hex.Hex, v Color) error {
	if err := b.cells.Set(c, v); err != nil {
		return err
	}
	b.items = nil
	return nil
}

// Enumerate returns every cell with its occupant in row-major order.
// The slice is cached until the next write and must not be modified.
func (b *Board) Enumerate() []Item {
	if b.items == nil {
		items := make([]Item, 0, b.cells.Len())
		b.cells.Each(func(c hex.Hex, v Color) {
			items = append(items, Item{Cell: c, Color: v})
		})
		b.items = items
	}
	return b.items
}

// CellInBounds reports whether c is on the board.
func (b *Board) CellInBounds(c hex.Hex) bool { return b.cells.Contains(c) }

// CellOwnedBy reports whether c is on the board and holds a marble of player.
func (b *Board) CellOwnedBy(c hex.Hex, player Color) bool {
	v, ok := b.cells.Lookup(c)
	return ok && player.Valid() && v == player
}

// Count 统计棋盘上颜色为 c 的格子数
func (b *Board) Count(c Color) int {
	n := 0
	for _, it := range b.Enumerate() {
		if it.Color == c {
			n++
		}
	}
	return n
}

// Score returns how many marbles the opponent of player has lost relative
// to the starting layout.
func (b *Board) Score(player Color) int {
	enemy := player.Next()
	start := 0
	for _, line := range b.layout {
		for _, code := range line {
			if code == int(enemy) {
				start++
			}
		}
	}
	return start - b.Count(enemy)
}

// IsValidMove reports whether m is legal for currentPlayer. It does not check
// that the selected marbles belong to currentPlayer.
func (b *Board) IsValidMove(m Move, currentPlayer Color) bool {
	cells := m.Selection().Cells()
	if len(cells) == 0 || len(cells) > MaxSumito || !m.Direction().Valid() {
		return false
	}
	for _, c := range cells {
		if !b.CellInBounds(c) {
			return false
		}
	}

	switch m.Kind() {
	case Single:
		return b.isValidSingleMove(m)
	case Inline:
		return b.isValidInlineMove(m, currentPlayer)
	case Sidestep:
		return b.isValidSidestepMove(m)
	}
	return false
}

// isValidSingleMove 目标格必须在界内且为空
func (b *Board) isValidSingleMove(m Move) bool {
	v, ok := b.cells.Lookup(m.Selection().Start().Add(m.Direction()))
	return ok && v == Empty
}

// isValidInlineMove 从 Front 沿方向最多走 MaxSumito 步：
// 遇空格合法；遇己方非法；遇敌方时敌子数必须严格少于己方；
// 出界时只有前面全是敌子（推出棋盘）才合法
func (b *Board) isValidInlineMove(m Move, currentPlayer Color) bool {
	size := m.Selection().Size()
	dest := m.Front()
	pushing := false
	for i := 1; i <= MaxSumito; i++ {
		dest = dest.Add(m.Direction())
		v, ok := b.cells.Lookup(dest)
		switch {
		case !ok:
			return pushing
		case v == Empty:
			return true
		case v == currentPlayer:
			return false
		case i >= size:
			return false
		}
		pushing = true
	}
	return true
}

// isValidSidestepMove 横移不推子，所有落点都必须在界内且为空
func (b *Board) isValidSidestepMove(m Move) bool {
	for _, dest := range m.Destinations() {
		v, ok := b.cells.Lookup(dest)
		if !ok || v != Empty {
			return false
		}
	}
	return true
}

// ApplyMove moves the marbles of a legal move and reports every marble that
// changed cell, pushed marbles first. Behaviour for illegal moves is undefined.
func (b *Board) ApplyMove(m Move) []Shift {
	if m.IsSumito(b) {
		return b.applySumitoMove(m)
	}
	return b.applyBaseMove(m, nil)
}

// applyBaseMove 先清空所有起点，再写入所有落点，避免棋子互相覆盖
func (b *Board) applyBaseMove(m Move, shifts []Shift) []Shift {
	player := m.Selection().Player(b)
	cells := m.Selection().Cells()
	for _, c := range cells {
		_ = b.Set(c, Empty)
	}
	for i, dest := range m.Destinations() {
		shift := Shift{From: cells[i], To: dest, Color: player}
		if err := b.Set(dest, player); err != nil {
			shift.Removed = true
			log.Debug().Msgf("%v marble pushed off the board at %v", player, cells[i])
		}
		shifts = append(shifts, shift)
	}
	return shifts
}

// applySumitoMove 先把被推的敌方棋串整体前移（出界的直接移除），
// 再移动己方棋串填入空出的位置
func (b *Board) applySumitoMove(m Move) []Shift {
	pushed, ok := b.SelectMarblesInLine(m.Target(), m.Direction())
	if !ok {
		return b.applyBaseMove(m, nil)
	}
	shifts := b.applyBaseMove(NewMove(pushed, m.Direction()), nil)
	return b.applyBaseMove(m, shifts)
}

// SelectMarblesInLine returns the longest run of same-colored cells that
// starts at start and extends in dir. ok is false if start is empty or off
// the board.
func (b *Board) SelectMarblesInLine(start hex.Hex, dir hex.Direction) (Selection, bool) {
	color := b.Get(start)
	if color == Empty {
		return Selection{}, false
	}
	end := start
	for next := start.Add(dir); b.Get(next) == color; next = next.Add(dir) {
		end = next
	}
	return NewSelection(start, end), true
}

// Clone 返回深拷贝，布局共享同一份只读数据
func (b *Board) Clone() *Board {
	return &Board{cells: b.cells.Clone(), layout: b.layout}
}

// String 按行输出棋盘：. 空格，B 黑子，W 白子
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.cells.Rows(); r++ {
		sb.WriteString(strings.Repeat(" ", abs(r-(b.Size()-1))))
		off := b.cells.Offset(r)
		for col := 0; col < b.cells.RowLen(r); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch b.Get(hex.Hex{Q: col + off, R: r}) {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func copyLayout(data [][]int) [][]int {
	if data == nil {
		return nil
	}
	out := make([][]int, len(data))
	for i, line := range data {
		out[i] = append([]int(nil), line...)
	}
	return out
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
