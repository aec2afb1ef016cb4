package hex

import "errors"

// ErrOutOfBounds is returned when writing a cell outside the hexagon.
var ErrOutOfBounds = errors.New("hex: coordinate out of bounds")

// Grid is a fixed-size hexagonal board of 2*size-1 rows.
// Row r holds RowLen(r) cells whose axial q starts at Offset(r), so cell
// (q, r) is stored at rows[r][q-Offset(r)]. Rows shrink by one per step away
// from the centre row.
type Grid[T any] struct {
	size int
	rows [][]T
}

// NewGrid creates an empty grid with the given edge length. size must be positive.
func NewGrid[T any](size int) *Grid[T] {
	if size < 1 {
		panic("hex: grid size must be positive")
	}
	g := &Grid[T]{size: size, rows: make([][]T, 2*size-1)}
	for r := range g.rows {
		g.rows[r] = make([]T, g.RowLen(r))
	}
	return g
}

// Size returns the edge length of the hexagon.
func (g *Grid[T]) Size() int { return g.size }

// Rows returns the number of rows (2*size-1).
func (g *Grid[T]) Rows() int { return 2*g.size - 1 }

// Offset 返回第 row 行首格的 q 值：中心行以上逐行右移，中心行及以下从 0 开始
func (g *Grid[T]) Offset(row int) int { return max(0, g.size-1-row) }

// RowLen 返回第 row 行的格子数
func (g *Grid[T]) RowLen(row int) int {
	return 2*g.size - 1 - abs(row-(g.size-1))
}

// Contains reports whether c lies inside the hexagon.
// It is written in terms of Offset and RowLen so every coordinate produced by
// walking rows and columns is in bounds.
func (g *Grid[T]) Contains(c Hex) bool {
	if c.R < 0 || c.R >= g.Rows() {
		return false
	}
	col := c.Q - g.Offset(c.R)
	return col >= 0 && col < g.RowLen(c.R)
}

// Get returns the value at c, or the zero value of T if c is out of bounds.
func (g *Grid[T]) Get(c Hex) T {
	v, _ := g.Lookup(c)
	return v
}

// Lookup returns the value at c and whether c is in bounds.
func (g *Grid[T]) Lookup(c Hex) (T, bool) {
	if !g.Contains(c) {
		var zero T
		return zero, false
	}
	return g.rows[c.R][c.Q-g.Offset(c.R)], true
}

// Set updates the value at c. Returns ErrOutOfBounds if c is outside the hexagon.
func (g *Grid[T]) Set(c Hex, v T) error {
	if !g.Contains(c) {
		return ErrOutOfBounds
	}
	g.rows[c.R][c.Q-g.Offset(c.R)] = v
	return nil
}

// Each 按行优先顺序遍历所有格子
func (g *Grid[T]) Each(fn func(c Hex, v T)) {
	for r, line := range g.rows {
		off := g.Offset(r)
		for col, v := range line {
			fn(Hex{col + off, r}, v)
		}
	}
}

// Cells returns every in-bounds coordinate in row-major order.
func (g *Grid[T]) Cells() []Hex {
	out := make([]Hex, 0, g.Len())
	g.Each(func(c Hex, _ T) { out = append(out, c) })
	return out
}

// Len returns the number of addressable cells (3*size*(size-1)+1).
func (g *Grid[T]) Len() int { return 3*g.size*(g.size-1) + 1 }

// Clone 返回深拷贝
func (g *Grid[T]) Clone() *Grid[T] {
	rows := make([][]T, len(g.rows))
	for r, line := range g.rows {
		rows[r] = append([]T(nil), line...)
	}
	return &Grid[T]{size: g.size, rows: rows}
}
