// File ui/input.go
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"abalone_go/internal/game"
)

// handleInput 处理鼠标点击：选子、延伸选区、走子
func (gs *GameScreen) handleInput() {
	// 只在鼠标左键刚按下时响应
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	cell := gs.geom.CellAt(float64(mx), float64(my))

	move, ok := gs.selector.Click(gs.board, gs.turn, cell)
	if !ok {
		if sel, active := gs.selector.Selection(); active {
			log.Trace().Msgf("click %v, selection %v", cell, sel)
		}
		return
	}
	gs.play(move)
}

// play 落子：先分派动画，再切换回合
func (gs *GameScreen) play(move game.Move) {
	shifts := gs.board.ApplyMove(move)
	gs.selector.Clear()
	gs.anims.Start(shifts, time.Now())
	gs.moves++

	removed := 0
	for _, s := range shifts {
		if s.Removed {
			removed++
		}
	}
	log.Info().
		Str("player", gs.turn.String()).
		Str("move", move.String()).
		Int("pushed_off", removed).
		Msgf("move %d applied", gs.moves)

	gs.turn = gs.turn.Next()
}
