package tetris

import "math/rand"

// ActivePiece is the falling piece: its current matrix and the grid offset of
// the matrix's top-left corner.
type ActivePiece struct {
	Shape Shape
	Pos   Point
}

// Clone returns a deep copy.
func (p ActivePiece) Clone() ActivePiece {
	return ActivePiece{Shape: p.Shape.Clone(), Pos: p.Pos}
}

// Spawner hands out pieces through a single-piece lookahead buffer.
type Spawner struct {
	rng  *rand.Rand
	next Shape
}

// NewSpawner creates a spawner with an empty buffer.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Refill replaces the lookahead buffer with a fresh random piece.
func (s *Spawner) Refill() {
	s.next = RandomPiece(s.rng)
}

// Peek returns a copy of the lookahead piece, or nil when the buffer is empty.
func (s *Spawner) Peek() Shape {
	return s.next.Clone()
}

// Spawn promotes the buffered piece (or a fresh one when the buffer is empty),
// refills the buffer and centers the new piece on row 0. The caller decides
// whether the spawn position collides.
func (s *Spawner) Spawn() ActivePiece {
	shape := s.next
	if shape == nil {
		shape = RandomPiece(s.rng)
	}
	s.Refill()

	return ActivePiece{
		Shape: shape,
		Pos:   Point{X: Width/2 - shape.Width()/2, Y: 0},
	}
}
