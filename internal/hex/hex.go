// Package hex 提供轴向坐标 (q, r) 与六边形网格存储。
package hex

import "fmt"

// Hex represents an axial hex coordinate (q, r).
// The implicit third cube coordinate is s = -q - r.
type Hex struct {
	Q, R int
}

// Direction 是六个单位方向之一，每个方向携带自己的 (dq, dr)
type Direction int

const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// deltas 与 Direction 的枚举顺序一一对应，相邻两项夹角 60°
var deltas = [6]Hex{
	{+1, 0},  // 东
	{+1, -1}, // 东北
	{0, -1},  // 西北
	{-1, 0},  // 西
	{-1, +1}, // 西南
	{0, +1},  // 东南
}

var directionNames = [6]string{"E", "NE", "NW", "W", "SW", "SE"}

// Directions lists all six directions in enumeration order.
var Directions = [6]Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool { return d >= East && d <= SouthEast }

// Delta returns the unit vector of d. An invalid direction yields the zero vector.
func (d Direction) Delta() Hex {
	if !d.Valid() {
		return Hex{}
	}
	return deltas[d]
}

// Opposite 返回反方向（转 180°）
func (d Direction) Opposite() Direction { return (d + 3) % 6 }

// Parallel reports whether o lies on the same axis as d, in either sense.
func (d Direction) Parallel(o Direction) bool { return d == o || d == o.Opposite() }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Resolve 把单位向量 normal 映射回方向；不是六个单位向量之一时 ok=false
func Resolve(normal Hex) (Direction, bool) {
	for i, v := range deltas {
		if v == normal {
			return Direction(i), true
		}
	}
	return 0, false
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int { return -h.Q - h.R }

// Add returns the neighbour of h in direction d.
func (h Hex) Add(d Direction) Hex { return h.Step(d.Delta()) }

// Step adds an arbitrary vector to h.
func (h Hex) Step(v Hex) Hex { return Hex{h.Q + v.Q, h.R + v.R} }

// Sub returns the vector from o to h.
func (h Hex) Sub(o Hex) Hex { return Hex{h.Q - o.Q, h.R - o.R} }

// Scale 把向量按 k 倍缩放
func (h Hex) Scale(k int) Hex { return Hex{h.Q * k, h.R * k} }

// Adjacent reports whether o is one of the six neighbours of h.
func (h Hex) Adjacent(o Hex) bool { return Distance(h, o) == 1 }

func (h Hex) String() string { return fmt.Sprintf("(%d,%d)", h.Q, h.R) }

// Distance returns the hex distance between a and b.
func Distance(a, b Hex) int {
	d := a.Sub(b)
	return max(abs(d.Q), abs(d.R), abs(d.S()))
}

// Line 返回从 a 指向 b 的单位方向与步数；a、b 不在同一条轴上时 ok=false。
// a == b 时 steps=0 且 ok=false。
func Line(a, b Hex) (dir Direction, steps int, ok bool) {
	steps = Distance(a, b)
	if steps == 0 {
		return 0, 0, false
	}
	d := b.Sub(a)
	if d.Q%steps != 0 || d.R%steps != 0 {
		return 0, steps, false
	}
	dir, ok = Resolve(Hex{d.Q / steps, d.R / steps})
	return dir, steps, ok
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
