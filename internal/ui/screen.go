// File /ui/screen.go
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"abalone_go/internal/game"
	"abalone_go/internal/view"
)

const (
	// 窗口尺寸
	WindowWidth  = 800
	WindowHeight = 640
	// 底部信息栏高度
	headerHeight = 40
)

var colBackground = color.RGBA{0x36, 0x39, 0x3e, 0xff}

// Config 是界面层的启动参数
type Config struct {
	Layout string // 开局布局名，见 game.LayoutNames
	Hints  bool   // 是否高亮可走的目标格
	TPS    int
}

// GameScreen 实现 ebiten.Game 接口，管理游戏主循环和渲染
type GameScreen struct {
	cfg      Config
	layout   [][]int
	board    *game.Board
	turn     game.Color
	moves    int
	geom     view.Geometry
	selector view.Selector
	anims    view.Animator
}

// NewGameScreen 构造并初始化游戏界面
func NewGameScreen(cfg Config) (*GameScreen, error) {
	layout, err := game.LayoutByName(cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	gs := &GameScreen{
		cfg:    cfg,
		layout: layout,
		geom:   view.Fit(game.BoardSize, WindowWidth, WindowHeight-headerHeight, 16),
	}
	gs.reset()
	return gs, nil
}

// reset 用同一布局重新开局，黑方先走
func (gs *GameScreen) reset() {
	gs.board = game.FromData(gs.layout)
	gs.turn = game.Black
	gs.moves = 0
	gs.selector.Clear()
	gs.anims.Start(nil, time.Now())
	log.Info().Msgf("new game with layout %q", gs.cfg.Layout)
}

// Update 每帧更新：处理快捷键和玩家点击
func (gs *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.reset()
		return nil
	}
	// 动画播放期间锁输入
	if gs.anims.Running(time.Now()) {
		return nil
	}
	gs.handleInput()
	return nil
}

// Draw 每帧渲染：先清空背景，再绘制棋盘、棋子和信息栏
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	now := time.Now()
	gs.drawBoard(screen, now)
	gs.drawHeader(screen)
}

// Layout 定义逻辑画布尺寸，窗口缩放由 ebiten 处理
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// Run 打开窗口并阻塞到窗口关闭
func Run(cfg Config) error {
	gs, err := NewGameScreen(cfg)
	if err != nil {
		return err
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Abalone")
	if err := ebiten.RunGame(gs); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
