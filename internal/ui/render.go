// File /ui/render.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"abalone_go/internal/game"
	"abalone_go/internal/hex"
)

var (
	colCell      = color.RGBA{0x48, 0x53, 0x5a, 0xff}
	colSelected  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colHint      = color.RGBA{0x7c, 0xd9, 0x7c, 0xff}
	marbleColors = map[game.Color]color.RGBA{
		game.Black: {0x33, 0x66, 0xcc, 0xff},
		game.White: {0xcc, 0x33, 0x66, 0xff},
	}
)

// marbleRadius 棋子半径占六边形外接圆半径的比例
const marbleRadius = 0.8

// drawBoard 绘制所有格子、静止的棋子、选区高亮、提示和动画中的棋子
func (gs *GameScreen) drawBoard(dst *ebiten.Image, now time.Time) {
	moving := gs.anims.Moving(now)
	r := float32(gs.geom.CellSize * marbleRadius)

	// 1) 底板和静止棋子
	for _, it := range gs.board.Enumerate() {
		x, y := gs.geom.CellCenter(it.Cell)
		vector.DrawFilledCircle(dst, float32(x), float32(y), r, colCell, true)
		if it.Color.Valid() && !moving[it.Cell] {
			vector.DrawFilledCircle(dst, float32(x), float32(y), r, marbleColors[it.Color], true)
		}
	}

	// 2) 选区与提示
	if sel, ok := gs.selector.Selection(); ok {
		for _, c := range sel.Cells() {
			gs.strokeCell(dst, c, colSelected, 3)
		}
		if gs.cfg.Hints {
			for _, c := range gs.selector.Targets(gs.board, gs.turn) {
				gs.strokeCell(dst, c, colHint, 2)
			}
		}
	}

	// 3) 动画中的棋子画在最上层
	for _, sp := range gs.anims.Sprites(gs.geom, now) {
		vector.DrawFilledCircle(dst, float32(sp.X), float32(sp.Y), r, fade(marbleColors[sp.Color], sp.Alpha), true)
	}
}

func (gs *GameScreen) strokeCell(dst *ebiten.Image, c hex.Hex, clr color.Color, width float32) {
	x, y := gs.geom.CellCenter(c)
	r := float32(gs.geom.CellSize * marbleRadius)
	vector.StrokeCircle(dst, float32(x), float32(y), r, width, clr, true)
}

// fade 按比例缩放预乘 alpha 颜色
func fade(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
