package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"abalone_go/internal/game"
)

var colWhite = color.White

// drawHeader 在窗口底部画回合、步数和双方得分
func (gs *GameScreen) drawHeader(screen *ebiten.Image) {
	y := WindowHeight - headerHeight/2 + 4
	x := 10

	strs := []string{
		fmt.Sprintf("Turn | %s", gs.turn),
		fmt.Sprintf("Moves | %d", gs.moves),
		fmt.Sprintf("Score | black:%d  white:%d", gs.board.Score(game.Black), gs.board.Score(game.White)),
		"R reset  Esc quit",
	}
	for _, s := range strs {
		text.Draw(screen, s, basicfont.Face7x13, x, y, colWhite)
		x += len(s)*7 + 30
	}
}
