package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"abalone_go/internal/game"
	"abalone_go/internal/hex"
)

func TestGeometryRoundTrip(t *testing.T) {
	g := Fit(game.BoardSize, 800, 600, 20)
	b := game.NewBoard()
	for _, it := range b.Enumerate() {
		x, y := g.CellCenter(it.Cell)
		require.Equal(t, it.Cell, g.CellAt(x, y), "centre of %v", it.Cell)
		// 偏离中心不到半个内切圆半径，仍应落在同一格
		require.Equal(t, it.Cell, g.CellAt(x+g.CellSize*0.4, y-g.CellSize*0.3), "near %v", it.Cell)
	}

	cx, cy := g.CellCenter(hex.Hex{Q: 4, R: 4})
	require.InDelta(t, 400, cx, 1e-9)
	require.InDelta(t, 300, cy, 1e-9)

	w, h := g.Bounds()
	require.LessOrEqual(t, w, 760.0+1e-9)
	require.LessOrEqual(t, h, 560.0+1e-9)
	require.False(t, b.CellInBounds(g.CellAt(1, 1)), "corner of the window is off the board")
}

func TestSelectorBuildsMove(t *testing.T) {
	b := game.FromData(game.Standard())
	var s Selector

	// 点白子不能开始黑方选区
	_, ok := s.Click(b, game.Black, hex.Hex{Q: 4, R: 0})
	require.False(t, ok)
	_, active := s.Selection()
	require.False(t, active)

	_, ok = s.Click(b, game.Black, hex.Hex{Q: 2, R: 6})
	require.False(t, ok)
	_, ok = s.Click(b, game.Black, hex.Hex{Q: 4, R: 6})
	require.False(t, ok)
	sel, active := s.Selection()
	require.True(t, active)
	require.Equal(t, 3, sel.Size())

	targets := s.Targets(b, game.Black)
	require.Contains(t, targets, hex.Hex{Q: 5, R: 6}, "inline forward")
	require.Contains(t, targets, hex.Hex{Q: 4, R: 5}, "sidestep north-west")

	m, ok := s.Click(b, game.Black, hex.Hex{Q: 4, R: 5})
	require.True(t, ok)
	require.Equal(t, hex.NorthWest, m.Direction())
	require.Equal(t, game.Sidestep, m.Kind())
	require.True(t, b.IsValidMove(m, game.Black))
}

func TestSelectorRejects(t *testing.T) {
	b := game.FromData(game.Standard())
	var s Selector

	// 四颗子超出上限
	s.Click(b, game.Black, hex.Hex{Q: 0, R: 7})
	s.Click(b, game.Black, hex.Hex{Q: 3, R: 7})
	_, active := s.Selection()
	require.False(t, active, "a line of four is cleared")

	// 不共线
	s.Click(b, game.Black, hex.Hex{Q: 0, R: 8})
	s.Click(b, game.Black, hex.Hex{Q: 2, R: 7})
	_, active = s.Selection()
	require.False(t, active)

	// 点到棋盘外
	s.Click(b, game.Black, hex.Hex{Q: 0, R: 8})
	s.Click(b, game.Black, hex.Hex{Q: -1, R: 9})
	_, active = s.Selection()
	require.False(t, active)

	// 点空格但不相邻
	s.Click(b, game.Black, hex.Hex{Q: 3, R: 6})
	_, ok := s.Click(b, game.Black, hex.Hex{Q: 3, R: 3})
	require.False(t, ok)
	_, active = s.Selection()
	require.False(t, active)

	// 后排单子：相邻格要么是己方（延伸选区），要么在棋盘外
	s.Click(b, game.Black, hex.Hex{Q: 1, R: 8})
	_, ok = s.Click(b, game.Black, hex.Hex{Q: 1, R: 7})
	require.False(t, ok, "own marble extends instead of moving")
	s.Clear()
	s.Click(b, game.Black, hex.Hex{Q: 0, R: 8})
	_, ok = s.Click(b, game.Black, hex.Hex{Q: 0, R: 9})
	require.False(t, ok)
}

func TestAnimator(t *testing.T) {
	g := Fit(game.BoardSize, 800, 600, 20)
	now := time.Now()
	var a Animator
	a.Start([]game.Shift{
		{From: hex.Hex{Q: 8, R: 4}, To: hex.Hex{Q: 9, R: 4}, Color: game.White, Removed: true},
		{From: hex.Hex{Q: 7, R: 4}, To: hex.Hex{Q: 8, R: 4}, Color: game.Black},
	}, now)

	require.True(t, a.Running(now))
	require.Equal(t, map[hex.Hex]bool{{Q: 8, R: 4}: true}, a.Moving(now))

	half := now.Add(MoveDuration / 2)
	sprites := a.Sprites(g, half)
	require.Len(t, sprites, 2)
	require.InDelta(t, 0.5, sprites[0].Alpha, 1e-9, "removed marble fades out")
	require.InDelta(t, 1, sprites[1].Alpha, 1e-9)

	x0, _ := g.CellCenter(hex.Hex{Q: 7, R: 4})
	x1, _ := g.CellCenter(hex.Hex{Q: 8, R: 4})
	require.InDelta(t, (x0+x1)/2, sprites[1].X, 1e-6)

	done := now.Add(MoveDuration)
	require.False(t, a.Running(done))
	require.Empty(t, a.Sprites(g, done))
	require.Empty(t, a.Moving(done))
}
