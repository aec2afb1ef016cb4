package game

import "fmt"

// Color 是棋子颜色；零值 Empty 表示空格
// Black 与 White 的数值就是布局数据里的编码
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// ColorFromCode 把布局编码转成颜色，无法识别的编码一律视为空格
func ColorFromCode(code int) Color {
	c := Color(code)
	if int(c) != code || !c.Valid() {
		return Empty
	}
	return c
}

// Valid reports whether c is one of the two player colors.
func (c Color) Valid() bool { return c == Black || c == White }

// Next returns the opponent of c. Empty has no opponent and maps to itself.
func (c Color) Next() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("Color(%d)", int8(c))
}
