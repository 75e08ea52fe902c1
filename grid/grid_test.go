package grid_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/grid"
)

// digits is a 3×3 grid:
//
//	1 2 3
//	4 5 6
//	7 8 9
func digits(t testing.TB) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.New([][]uint8{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// New and Get Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"ShortSecondRow", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"LongLastRow", [][]int{{1}, {2}, {3, 4}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Dimensions checks Width/Height on a non-square grid.
func TestNew_Dimensions(t *testing.T) {
	g, err := grid.New([][]rune{[]rune("abcd"), []rune("efgh")})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 2, g.Height())
}

// TestNew_CopiesInput ensures mutating the source rows does not leak into the grid.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = 100
	v, ok := g.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

// TestGet checks every in-bounds lookup and a ring of out-of-bounds ones.
func TestGet(t *testing.T) {
	g := digits(t)
	want := uint8(1)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v, ok := g.Get(x, y)
			assert.True(t, ok, "Get(%d,%d)", x, y)
			assert.Equal(t, want, v, "Get(%d,%d)", x, y)
			want++
		}
	}

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}, {3, 3}, {-1, -1}} {
		v, ok := g.Get(xy[0], xy[1])
		assert.False(t, ok, "Get(%d,%d)", xy[0], xy[1])
		assert.Zero(t, v)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Toward and Ray Tests
//----------------------------------------------------------------------------//

// TestToward_FromCenter mirrors the four rays out of the middle cell.
func TestToward_FromCenter(t *testing.T) {
	g := digits(t)

	assert.Equal(t, []uint8{5, 2}, slices.Collect(g.Toward(1, 1, grid.North)))
	assert.Equal(t, []uint8{5, 6}, slices.Collect(g.Toward(1, 1, grid.East)))
	assert.Equal(t, []uint8{5, 8}, slices.Collect(g.Toward(1, 1, grid.South)))
	assert.Equal(t, []uint8{5, 4}, slices.Collect(g.Toward(1, 1, grid.West)))
}

// TestToward_LengthAndValues checks, for every cell and direction, that the
// ray reaches exactly to the edge and agrees with Get.
func TestToward_LengthAndValues(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 2, 3},
		{10, 11, 12, 13},
		{20, 21, 22, 23},
	})
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			wantLen := map[grid.Direction]int{
				grid.North: y + 1,
				grid.South: g.Height() - y,
				grid.East:  g.Width() - x,
				grid.West:  x + 1,
			}
			for _, d := range grid.Directions {
				vals := slices.Collect(g.Toward(x, y, d))
				require.Len(t, vals, wantLen[d], "Toward(%d,%d,%v)", x, y, d)

				dx, dy := d.Delta()
				for i, v := range vals {
					want, ok := g.Get(x+i*dx, y+i*dy)
					require.True(t, ok)
					assert.Equal(t, want, v, "Toward(%d,%d,%v)[%d]", x, y, d, i)
				}
			}
		}
	}
}

// TestToward_Restartable ensures each call, and each range over one sequence,
// starts from the beginning.
func TestToward_Restartable(t *testing.T) {
	g := digits(t)
	seq := g.Toward(0, 2, grid.North)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, []uint8{7, 4, 1}, first)
	assert.Equal(t, first, second)
}

// TestToward_EarlyBreak stops consumption after the first element.
func TestToward_EarlyBreak(t *testing.T) {
	g := digits(t)
	var got []uint8
	for v := range g.Toward(0, 0, grid.East) {
		got = append(got, v)
		break
	}
	assert.Equal(t, []uint8{1}, got)
}

// TestToward_OutOfBoundsStart yields an empty sequence.
func TestToward_OutOfBoundsStart(t *testing.T) {
	g := digits(t)
	assert.Empty(t, slices.Collect(g.Toward(-1, 0, grid.East)))
	assert.Empty(t, slices.Collect(g.Toward(0, 3, grid.North)))
}

// TestRay_Coordinates checks that Ray pairs values with their coordinates.
func TestRay_Coordinates(t *testing.T) {
	g := digits(t)
	var pts []grid.Point
	var vals []uint8
	for p, v := range g.Ray(2, 1, grid.West) {
		pts = append(pts, p)
		vals = append(vals, v)
	}
	assert.Equal(t, []grid.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}, pts)
	assert.Equal(t, []uint8{6, 5, 4}, vals)
}

// TestRay_UnknownDirection panics once iterated.
func TestRay_UnknownDirection(t *testing.T) {
	g := digits(t)
	seq := g.Ray(0, 0, grid.Direction(9))
	assert.Panics(t, func() {
		for range seq {
		}
	})
}

//----------------------------------------------------------------------------//
// Direction and Point Tests
//----------------------------------------------------------------------------//

// TestDirection_TurnRight checks the clockwise cycle.
func TestDirection_TurnRight(t *testing.T) {
	assert.Equal(t, grid.East, grid.North.TurnRight())
	assert.Equal(t, grid.South, grid.East.TurnRight())
	assert.Equal(t, grid.West, grid.South.TurnRight())
	assert.Equal(t, grid.North, grid.West.TurnRight())

	for _, d := range grid.Directions {
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight())
	}
}

// TestDirection_String covers named and unknown values.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "North", grid.North.String())
	assert.Equal(t, "West", grid.West.String())
	assert.Equal(t, "Direction(7)", grid.Direction(7).String())
}

// TestPoint_Add steps in each direction.
func TestPoint_Add(t *testing.T) {
	p := grid.Point{X: 4, Y: 4}
	assert.Equal(t, grid.Point{X: 4, Y: 3}, p.Add(grid.North))
	assert.Equal(t, grid.Point{X: 5, Y: 4}, p.Add(grid.East))
	assert.Equal(t, grid.Point{X: 4, Y: 5}, p.Add(grid.South))
	assert.Equal(t, grid.Point{X: 3, Y: 4}, p.Add(grid.West))
	assert.Equal(t, "(4,4)", p.String())
}
