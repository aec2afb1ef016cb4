package game

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLayout is returned by LayoutByName for names it does not know.
var ErrUnknownLayout = errors.New("unknown layout")

// 开局布局：每行只列出界内的格子，0 空，1 黑，2 白
var layouts = map[string][][]int{
	"standard": {
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2, 2},
		{0, 0, 2, 2, 2, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	},
	"belgian": {
		{2, 2, 0, 1, 1},
		{2, 2, 2, 1, 1, 1},
		{0, 2, 2, 0, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 2, 2, 0},
		{1, 1, 1, 2, 2, 2},
		{1, 1, 0, 2, 2},
	},
	"german": {
		{0, 0, 0, 0, 0},
		{2, 2, 0, 0, 1, 1},
		{2, 2, 2, 0, 1, 1, 1},
		{0, 2, 2, 0, 0, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 0, 2, 2, 0},
		{1, 1, 1, 0, 2, 2, 2},
		{1, 1, 0, 0, 2, 2},
		{0, 0, 0, 0, 0},
	},
}

// Standard returns the classic starting layout.
func Standard() [][]int { return copyLayout(layouts["standard"]) }

// BelgianDaisy returns the Belgian daisy starting layout.
func BelgianDaisy() [][]int { return copyLayout(layouts["belgian"]) }

// GermanDaisy returns the German daisy starting layout.
func GermanDaisy() [][]int { return copyLayout(layouts["german"]) }

// LayoutByName 按名字返回布局的副本
func LayoutByName(name string) ([][]int, error) {
	data, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownLayout, name, LayoutNames())
	}
	return copyLayout(data), nil
}

// LayoutNames returns the known layout names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
