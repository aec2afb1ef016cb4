package view

import (
	"abalone_go/internal/game"
	"abalone_go/internal/hex"
)

// Selector turns successive clicks into a selection and finally a Move.
//
//   - 首次点击己方棋子：选中该子
//   - 再点己方棋子：把选区延伸到该子；超过 MaxSumito、不共线或夹杂他色时清空
//   - 点击选区头部的相邻格：解析方向，合法则返回走法
//   - 其他情况：清空选区
type Selector struct {
	sel    game.Selection
	active bool
}

// Selection returns the current selection, if any.
func (s *Selector) Selection() (game.Selection, bool) { return s.sel, s.active }

// Clear drops the current selection.
func (s *Selector) Clear() { s.sel, s.active = game.Selection{}, false }

// Click feeds one clicked cell. It returns a legal move for player once the
// clicks describe one; the selection is kept until Clear is called.
func (s *Selector) Click(b *game.Board, player game.Color, cell hex.Hex) (game.Move, bool) {
	if !s.active {
		if b.CellOwnedBy(cell, player) {
			s.sel, s.active = game.NewSelection(cell, cell), true
		}
		return game.Move{}, false
	}

	if !b.CellInBounds(cell) {
		s.Clear()
		return game.Move{}, false
	}

	if b.CellOwnedBy(cell, player) {
		next := game.NewSelection(s.sel.Start(), cell)
		if !ownedLine(b, player, next) {
			s.Clear()
			return game.Move{}, false
		}
		s.sel = next
		return game.Move{}, false
	}

	head := s.sel.Head()
	if head.Adjacent(cell) {
		dir, _ := hex.Resolve(cell.Sub(head))
		m := game.NewMove(s.sel, dir)
		if b.IsValidMove(m, player) {
			return m, true
		}
	}
	s.Clear()
	return game.Move{}, false
}

// Targets 返回当前选区能走的所有点击目标（头部相邻格），用于提示
func (s *Selector) Targets(b *game.Board, player game.Color) []hex.Hex {
	if !s.active {
		return nil
	}
	head := s.sel.Head()
	var out []hex.Hex
	for _, dir := range hex.Directions {
		target := head.Add(dir)
		if b.CellOwnedBy(target, player) {
			continue
		}
		if b.IsValidMove(game.NewMove(s.sel, dir), player) {
			out = append(out, target)
		}
	}
	return out
}

func ownedLine(b *game.Board, player game.Color, sel game.Selection) bool {
	cells := sel.Cells()
	if len(cells) == 0 || len(cells) > game.MaxSumito {
		return false
	}
	for _, c := range cells {
		if !b.CellOwnedBy(c, player) {
			return false
		}
	}
	return true
}
