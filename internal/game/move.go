package game

import (
	"fmt"

	"abalone_go/internal/hex"
)

// Kind 是走法的形状，在 NewMove 里只计算一次
type Kind int

const (
	Single   Kind = iota // 单子移动
	Inline               // 沿棋串自身方向移动，可能推子
	Sidestep             // 横移，不推子
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Inline:
		return "inline"
	case Sidestep:
		return "sidestep"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Move 表示把一条 Selection 朝 Direction 推进一格
type Move struct {
	sel  Selection
	dir  hex.Direction
	kind Kind
}

// NewMove classifies the pair once: one cell is Single, a direction along
// the selection's own axis is Inline, anything else is Sidestep.
func NewMove(sel Selection, dir hex.Direction) Move {
	m := Move{sel: sel, dir: dir, kind: Sidestep}
	if axis, ok := sel.Axis(); ok {
		if axis.Parallel(dir) {
			m.kind = Inline
		}
	} else if sel.Size() == 1 {
		m.kind = Single
	}
	return m
}

func (m Move) Selection() Selection     { return m.sel }
func (m Move) Direction() hex.Direction { return m.dir }
func (m Move) Kind() Kind               { return m.kind }
func (m Move) IsSingle() bool           { return m.kind == Single }
func (m Move) IsInline() bool           { return m.kind == Inline }
func (m Move) IsSidestep() bool         { return m.kind == Sidestep }

// Front returns the endpoint that meets obstacles first.
func (m Move) Front() hex.Hex {
	if m.kind == Inline {
		if axis, _ := m.sel.Axis(); axis != m.dir {
			return m.sel.Start()
		}
	}
	return m.sel.Head()
}

// Target 返回 Front 前方紧邻的格子
func (m Move) Target() hex.Hex { return m.Front().Add(m.dir) }

// Destinations returns every selected cell advanced one step, in selection order.
func (m Move) Destinations() []hex.Hex {
	cells := m.sel.Cells()
	out := make([]hex.Hex, len(cells))
	for i, c := range cells {
		out[i] = c.Add(m.dir)
	}
	return out
}

// IsSumito reports whether the move pushes: it must be inline and the cell
// ahead of the front must hold an opponent marble.
func (m Move) IsSumito(b *Board) bool {
	if m.kind != Inline {
		return false
	}
	mover := m.sel.Player(b)
	return mover.Valid() && b.Get(m.Target()) == mover.Next()
}

// Inverse 返回撤回这一步非推子走法的走法：落点构成的选区朝反方向移动
func (m Move) Inverse() Move {
	start := m.sel.Start().Add(m.dir)
	if end, ok := m.sel.End(); ok {
		return NewMove(NewSelection(start, end.Add(m.dir)), m.dir.Opposite())
	}
	return NewMove(SingleSelection(start), m.dir.Opposite())
}

func (m Move) String() string {
	return fmt.Sprintf("%v %v %v", m.kind, m.sel, m.dir)
}
