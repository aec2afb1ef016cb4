package game

import "abalone_go/internal/hex"

// lineAxes 是三条轴各取一个方向，保证每条棋串只被枚举一次
var lineAxes = [3]hex.Direction{hex.East, hex.SouthWest, hex.SouthEast}

// Lines 枚举 player 所有长度 1..MaxSumito 的同色直线选区
func Lines(b *Board, player Color) []Selection {
	var out []Selection
	for _, it := range b.Enumerate() {
		if it.Color != player || !player.Valid() {
			continue
		}
		out = append(out, SingleSelection(it.Cell))
		for _, axis := range lineAxes {
			end := it.Cell
			for n := 2; n <= MaxSumito; n++ {
				end = end.Add(axis)
				if !b.CellOwnedBy(end, player) {
					break
				}
				out = append(out, NewSelection(it.Cell, end))
			}
		}
	}
	return out
}

// GenerateMoves 枚举玩家 player 在棋盘 b 上所有合法走法
func GenerateMoves(b *Board, player Color) []Move {
	var moves []Move
	for _, sel := range Lines(b, player) {
		for _, dir := range hex.Directions {
			m := NewMove(sel, dir)
			if b.IsValidMove(m, player) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// MovesFrom 返回以 cell 为成员的所有合法走法，供界面提示使用
func MovesFrom(b *Board, player Color, cell hex.Hex) []Move {
	var out []Move
	for _, m := range GenerateMoves(b, player) {
		if m.Selection().Contains(cell) {
			out = append(out, m)
		}
	}
	return out
}
