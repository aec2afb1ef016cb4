// Package view 是界面层与规则引擎之间的纯逻辑部分：
// 像素与格子互转、点击选子、走子动画的时间轴。这里不依赖任何绘图库。
package view

import (
	"math"

	"abalone_go/internal/hex"
)

// Geometry maps axial cells to pixel centres on a pointy-top layout.
// The centre cell of the board sits at (OriginX, OriginY).
type Geometry struct {
	CellSize         float64 // 六边形外接圆半径
	OriginX, OriginY float64
	BoardSize        int
}

// CellCenter returns the pixel centre of c.
func (g Geometry) CellCenter(c hex.Hex) (x, y float64) {
	dq := float64(c.Q - (g.BoardSize - 1))
	dr := float64(c.R - (g.BoardSize - 1))
	x = g.OriginX + g.CellSize*math.Sqrt(3)*(dq+dr/2)
	y = g.OriginY + g.CellSize*1.5*dr
	return x, y
}

// CellAt 把像素坐标反算成最近的格子（不检查是否在棋盘内）
func (g Geometry) CellAt(px, py float64) hex.Hex {
	// 1. 去掉平移，缩放到单位格
	x := (px - g.OriginX) / g.CellSize
	y := (py - g.OriginY) / g.CellSize

	// 2. 浮点轴向
	qf := math.Sqrt(3)/3*x - y/3
	rf := 2.0 / 3 * y

	// 3. 立方整体取整
	rx, _, rz := cubeRound(qf, -qf-rf, rf)
	return hex.Hex{Q: rx + g.BoardSize - 1, R: rz + g.BoardSize - 1}
}

// Bounds 返回棋盘在像素空间里的宽和高
func (g Geometry) Bounds() (w, h float64) {
	n := float64(2*g.BoardSize - 1)
	return g.CellSize * math.Sqrt(3) * n, g.CellSize * (1.5*(n-1) + 2)
}

// Fit returns a geometry for boardSize centred in a w×h area with margin pixels
// kept free on each side.
func Fit(boardSize int, w, h, margin float64) Geometry {
	g := Geometry{CellSize: 1, BoardSize: boardSize}
	bw, bh := g.Bounds()
	g.CellSize = math.Min((w-2*margin)/bw, (h-2*margin)/bh)
	g.OriginX, g.OriginY = w/2, h/2
	return g
}

func cubeRound(xf, yf, zf float64) (int, int, int) {
	rx := math.Round(xf)
	ry := math.Round(yf)
	rz := math.Round(zf)

	dx := math.Abs(rx - xf)
	dy := math.Abs(ry - yf)
	dz := math.Abs(rz - zf)

	if dx >= dy && dx >= dz {
		rx = -ry - rz
	} else if dy >= dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return int(rx), int(ry), int(rz)
}
