package game

import (
	"fmt"

	"abalone_go/internal/hex"
)

// Selection is a straight run of cells from start to end inclusive.
// A selection without an end covers the start cell only. The type does not
// check colors or length; Board.IsValidMove rejects broken selections.
type Selection struct {
	start  hex.Hex
	end    hex.Hex
	hasEnd bool
}

// SingleSelection 只选中一个格子
func SingleSelection(start hex.Hex) Selection {
	return Selection{start: start}
}

// NewSelection 选中 start 到 end 之间的一条直线
func NewSelection(start, end hex.Hex) Selection {
	return Selection{start: start, end: end, hasEnd: true}
}

// Start returns the first cell of the selection.
func (s Selection) Start() hex.Hex { return s.start }

// End returns the last cell, or ok=false for a selection without one.
func (s Selection) End() (hex.Hex, bool) { return s.end, s.hasEnd }

// Head returns end if present, otherwise start.
func (s Selection) Head() hex.Hex {
	if s.hasEnd {
		return s.end
	}
	return s.start
}

// Axis returns the unit direction from start to end.
// ok is false for single-cell and non-collinear selections.
func (s Selection) Axis() (hex.Direction, bool) {
	dir, _, ok := hex.Line(s.start, s.Head())
	return dir, ok
}

// Cells 返回从 start 到 end（含）的格子序列；首尾不共线时返回 nil
func (s Selection) Cells() []hex.Hex {
	dir, steps, ok := hex.Line(s.start, s.Head())
	if steps == 0 {
		return []hex.Hex{s.start}
	}
	if !ok {
		return nil
	}
	out := make([]hex.Hex, 0, steps+1)
	for c, i := s.start, 0; i <= steps; c, i = c.Add(dir), i+1 {
		out = append(out, c)
	}
	return out
}

// Size returns the number of cells covered, or 0 if the endpoints are not collinear.
func (s Selection) Size() int { return len(s.Cells()) }

// Contains reports whether c is one of the selected cells.
func (s Selection) Contains(c hex.Hex) bool {
	for _, x := range s.Cells() {
		if x == c {
			return true
		}
	}
	return false
}

// Player returns the occupant of the start cell. Callers must make sure the
// selection is non-empty and single-colored.
func (s Selection) Player(b *Board) Color { return b.Get(s.start) }

func (s Selection) String() string {
	if !s.hasEnd || s.end == s.start {
		return s.start.String()
	}
	return fmt.Sprintf("%v-%v", s.start, s.end)
}
