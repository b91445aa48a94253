package tetris

// Playfield dimensions. Fixed for the whole session.
const (
	Width  = 10
	Height = 20
)

// Point is a column/row offset on the grid. Y grows downwards.
type Point struct {
	X, Y int
}

// Grid is the persistent playfield: Height rows of Width cells.
// 0 is empty; 1..7 is the PieceType that was merged there.
type Grid struct {
	rows [][]int
}

// NewGrid allocates an empty grid.
func NewGrid() *Grid {
	g := &Grid{rows: make([][]int, Height)}
	for y := range g.rows {
		g.rows[y] = make([]int, Width)
	}
	return g
}

// Reset fills every cell with 0.
func (g *Grid) Reset() {
	for y := range g.rows {
		clear(g.rows[y])
	}
}

// Get returns the cell value, or 0 for out-of-range coordinates.
func (g *Grid) Get(x, y int) int {
	if !inBounds(x, y) {
		return 0
	}
	return g.rows[y][x]
}

// Set writes a cell value. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y, v int) {
	if !inBounds(x, y) {
		return
	}
	g.rows[y][x] = v
}

// Collides reports whether any filled shape cell placed at pos lies left of
// column 0, right of the last column, below the last row, or on a filled cell.
// Cells above row 0 never collide so pieces may spawn partially hidden.
func (g *Grid) Collides(s Shape, pos Point) bool {
	for sy, row := range s {
		for sx, v := range row {
			if v == 0 {
				continue
			}
			x, y := pos.X+sx, pos.Y+sy
			if x < 0 || x >= Width || y >= Height {
				return true
			}
			if y < 0 {
				continue
			}
			if g.rows[y][x] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes every filled shape cell into the grid. The caller must have
// checked Collides first; cells above row 0 are dropped.
func (g *Grid) Merge(s Shape, pos Point) {
	for sy, row := range s {
		for sx, v := range row {
			if v != 0 {
				g.Set(pos.X+sx, pos.Y+sy, v)
			}
		}
	}
}

// SweepFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the number of rows removed.
func (g *Grid) SweepFullRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if !g.rowFull(y) {
			continue
		}
		// Reuse the removed row's storage as the new top row.
		row := g.rows[y]
		clear(row)
		copy(g.rows[1:y+1], g.rows[:y])
		g.rows[0] = row
		cleared++
		// The row shifted into y has not been examined yet.
		y++
	}
	return cleared
}

func (g *Grid) rowFull(y int) bool {
	for _, v := range g.rows[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Cells returns a deep copy of the grid contents, indexed [row][column].
func (g *Grid) Cells() [][]int {
	out := make([][]int, Height)
	for y, row := range g.rows {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.rows {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
