package view

import (
	"time"

	"abalone_go/internal/game"
	"abalone_go/internal/hex"
)

// MoveDuration 是一次走子动画的时长
const MoveDuration = 250 * time.Millisecond

// Slide 是一颗棋子从起点格滑到终点格的动画
type Slide struct {
	Shift game.Shift
	Start time.Time
}

// Animator 存储一次走子/推子的完整动画轨迹
type Animator struct {
	slides []Slide
}

// Start replaces any running animation with one slide per shift.
func (a *Animator) Start(shifts []game.Shift, now time.Time) {
	a.slides = a.slides[:0]
	for _, s := range shifts {
		a.slides = append(a.slides, Slide{Shift: s, Start: now})
	}
}

// Running reports whether any slide is still in flight at now.
func (a *Animator) Running(now time.Time) bool {
	for _, s := range a.slides {
		if s.progress(now) < 1 {
			return true
		}
	}
	return false
}

// Moving 返回正在动画中的落点格，绘制静态棋子时需要跳过它们
func (a *Animator) Moving(now time.Time) map[hex.Hex]bool {
	out := make(map[hex.Hex]bool, len(a.slides))
	for _, s := range a.slides {
		if s.progress(now) < 1 && !s.Shift.Removed {
			out[s.Shift.To] = true
		}
	}
	return out
}

// Sprite 是某一时刻一颗棋子的绘制参数
type Sprite struct {
	X, Y  float64
	Color game.Color
	Alpha float64
}

// Sprites 在起止像素之间线性插值；被推出的棋子边移动边淡出
func (a *Animator) Sprites(g Geometry, now time.Time) []Sprite {
	var out []Sprite
	for _, s := range a.slides {
		p := s.progress(now)
		if p >= 1 {
			continue
		}
		x0, y0 := g.CellCenter(s.Shift.From)
		x1, y1 := g.CellCenter(s.Shift.To)
		alpha := 1.0
		if s.Shift.Removed {
			alpha = 1 - p
		}
		out = append(out, Sprite{
			X:     x0 + (x1-x0)*p,
			Y:     y0 + (y1-y0)*p,
			Color: s.Shift.Color,
			Alpha: alpha,
		})
	}
	return out
}

func (s Slide) progress(now time.Time) float64 {
	t := float64(now.Sub(s.Start)) / float64(MoveDuration)
	return min(max(t, 0), 1)
}
