package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionAlgebra(t *testing.T) {
	for _, d := range Directions {
		require.True(t, d.Valid())
		require.Equal(t, 1, Distance(Hex{}, Hex{}.Add(d)), "%v should be a unit step", d)
		require.Equal(t, Hex{}, Hex{}.Add(d).Add(d.Opposite()), "%v and its opposite should cancel", d)
		require.True(t, d.Parallel(d.Opposite()))

		got, ok := Resolve(d.Delta())
		require.True(t, ok)
		require.Equal(t, d, got)
	}
	require.False(t, East.Parallel(NorthEast))
	require.False(t, Direction(6).Valid())
	require.Equal(t, Hex{}, Direction(-1).Delta())

	_, ok := Resolve(Hex{2, 0})
	require.False(t, ok, "non-unit vectors should not resolve")
}

func TestDistanceAndAdjacent(t *testing.T) {
	a := Hex{2, 3}
	require.Equal(t, 0, Distance(a, a))
	require.Equal(t, 3, Distance(Hex{0, 0}, Hex{3, -3}))
	require.Equal(t, 2, Distance(Hex{0, 0}, Hex{2, -1}))
	require.True(t, a.Adjacent(Hex{3, 3}))
	require.False(t, a.Adjacent(a))
	require.False(t, a.Adjacent(Hex{4, 3}))
	require.Equal(t, Hex{1, -2}, Hex{3, 1}.Sub(Hex{2, 3}))
	require.Equal(t, Hex{-2, 4}, Hex{-1, 2}.Scale(2))
}

func TestLine(t *testing.T) {
	tests := []struct {
		a, b  Hex
		dir   Direction
		steps int
		ok    bool
	}{
		{Hex{4, 4}, Hex{6, 4}, East, 2, true},
		{Hex{4, 4}, Hex{4, 2}, NorthWest, 2, true},
		{Hex{4, 4}, Hex{2, 6}, SouthWest, 2, true},
		{Hex{4, 4}, Hex{5, 4}, East, 1, true},
		{Hex{4, 4}, Hex{6, 3}, 0, 2, false},
		{Hex{4, 4}, Hex{4, 4}, 0, 0, false},
	}
	for _, tt := range tests {
		dir, steps, ok := Line(tt.a, tt.b)
		if ok != tt.ok || steps != tt.steps || (ok && dir != tt.dir) {
			t.Errorf("Line(%v, %v) = (%v, %d, %v)，期望 (%v, %d, %v)",
				tt.a, tt.b, dir, steps, ok, tt.dir, tt.steps, tt.ok)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid[int](5)
	require.Equal(t, 9, g.Rows())
	require.Equal(t, 61, g.Len())
	require.Len(t, g.Cells(), g.Len())

	wantLens := []int{5, 6, 7, 8, 9, 8, 7, 6, 5}
	for r, n := range wantLens {
		require.Equal(t, n, g.RowLen(r), "row %d", r)
	}
	require.Equal(t, 4, g.Offset(0))
	require.Equal(t, 0, g.Offset(4))
	require.Equal(t, 0, g.Offset(8))

	// 遍历得到的每个坐标都必须在界内，且满足立方坐标的六边形约束
	for _, c := range g.Cells() {
		require.True(t, g.Contains(c), "%v", c)
		require.LessOrEqual(t, Distance(c, Hex{4, 4}), 4, "%v", c)
	}

	outside := []Hex{{3, 0}, {9, 0}, {-1, 4}, {9, 4}, {5, 8}, {0, -1}, {0, 9}, {9, 1}}
	for _, c := range outside {
		require.False(t, g.Contains(c), "%v should be outside", c)
	}
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid[string](3)
	c := Hex{2, 0}
	require.NoError(t, g.Set(c, "x"))
	require.Equal(t, "x", g.Get(c))

	v, ok := g.Lookup(Hex{0, 0})
	require.False(t, ok)
	require.Equal(t, "", v)
	require.Equal(t, "", g.Get(Hex{0, 0}), "out-of-bounds reads yield the zero value")
	require.ErrorIs(t, g.Set(Hex{0, 0}, "y"), ErrOutOfBounds)

	cp := g.Clone()
	require.NoError(t, cp.Set(c, "z"))
	require.Equal(t, "x", g.Get(c), "clone must not share storage")

	seen := 0
	g.Each(func(h Hex, s string) {
		if s == "x" {
			require.Equal(t, c, h)
		}
		seen++
	})
	require.Equal(t, g.Len(), seen)
}

func TestNewGridRejectsNonPositiveSize(t *testing.T) {
	require.Panics(t, func() { NewGrid[int](0) })
}
