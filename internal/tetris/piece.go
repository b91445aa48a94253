package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceType identifies one of the seven pieces. The value doubles as the cell
// id written into the grid and as the color index.
type PieceType int

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceTypes lists every piece in catalog order.
var PieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// Shape is a piece matrix indexed [row][column]. 0 is empty; any other value
// is the piece id.
type Shape [][]int

// templates must never be handed out directly; use Template or RandomPiece.
var templates = map[PieceType]Shape{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceO: {
		{2, 2},
		{2, 2},
	},
	PieceT: {
		{0, 3, 0},
		{3, 3, 3},
		{0, 0, 0},
	},
	PieceS: {
		{0, 4, 4},
		{4, 4, 0},
		{0, 0, 0},
	},
	PieceZ: {
		{5, 5, 0},
		{0, 5, 5},
		{0, 0, 0},
	},
	PieceJ: {
		{6, 0, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	PieceL: {
		{0, 0, 7},
		{7, 7, 7},
		{0, 0, 0},
	},
}

// String returns the piece letter.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for cells of this piece.
func (p PieceType) Color() core.Color {
	switch p {
	case PieceI:
		return core.ColorCyan
	case PieceO:
		return core.ColorYellow
	case PieceT:
		return core.ColorPurple
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Template returns a fresh copy of the piece's spawn orientation.
// Returns nil for unknown piece types.
func Template(p PieceType) Shape {
	t, ok := templates[p]
	if !ok {
		return nil
	}
	return t.Clone()
}

// RandomPiece picks one of the seven pieces uniformly and returns a fresh copy.
func RandomPiece(rng *rand.Rand) Shape {
	return Template(PieceTypes[rng.Intn(len(PieceTypes))])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Type returns the piece type of the first filled cell.
func (s Shape) Type() PieceType {
	for _, row := range s {
		for _, v := range row {
			if v != 0 {
				return PieceType(v)
			}
		}
	}
	return PieceNone
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns a new shape rotated 90 degrees clockwise
// (transpose followed by row reversal). The input is not modified.
func RotateClockwise(s Shape) Shape {
	rows := len(s)
	cols := s.Width()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]int, rows)
		for j := range rows {
			// Column i read bottom-to-top becomes row i.
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}
