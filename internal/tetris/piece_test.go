package tetris

import (
	"math/rand"
	"testing"
)

func TestTemplatesMatchIDs(t *testing.T) {
	for _, p := range PieceTypes {
		shape := Template(p)
		if shape == nil {
			t.Fatalf("missing template for %v", p)
		}
		if shape.Type() != p {
			t.Errorf("template %v reports type %v", p, shape.Type())
		}
		filled := 0
		for _, row := range shape {
			for _, v := range row {
				if v != 0 {
					filled++
				}
			}
		}
		if filled != 4 {
			t.Errorf("template %v has %d cells, expected 4", p, filled)
		}
	}
	if Template(PieceNone) != nil {
		t.Error("unknown piece should have no template")
	}
}

func TestTemplateIsCopy(t *testing.T) {
	a := Template(PieceT)
	a[1][1] = 0
	if Template(PieceT)[1][1] != 3 {
		t.Error("mutating a template copy changed the catalog")
	}
}

func TestRandomPieceCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[PieceType]int)
	for range 2000 {
		seen[RandomPiece(rng).Type()]++
	}
	for _, p := range PieceTypes {
		// Uniform over 7 gives ~285 each; allow wide slack.
		if seen[p] < 200 {
			t.Errorf("piece %v drawn %d times out of 2000", p, seen[p])
		}
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name     string
		in       Shape
		expected Shape
	}{
		{
			name:     "T",
			in:       Template(PieceT),
			expected: Shape{{0, 3, 0}, {0, 3, 3}, {0, 3, 0}},
		},
		{
			name:     "I",
			in:       Template(PieceI),
			expected: Shape{{0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}},
		},
		{
			name:     "rectangular",
			in:       Shape{{1, 2, 3}, {4, 5, 6}},
			expected: Shape{{4, 1}, {5, 2}, {6, 3}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			original := tc.in.Clone()
			got := RotateClockwise(tc.in)
			if !got.Equal(tc.expected) {
				t.Errorf("RotateClockwise() = %v, expected %v", got, tc.expected)
			}
			if !tc.in.Equal(original) {
				t.Error("RotateClockwise must not modify its input")
			}
		})
	}
}

func TestRotateFourTimes(t *testing.T) {
	for _, p := range []PieceType{PieceO, PieceT} {
		shape := Template(p)
		for range 4 {
			shape = RotateClockwise(shape)
		}
		if !shape.Equal(Template(p)) {
			t.Errorf("four rotations of %v = %v, expected original", p, shape)
		}
	}

	// O looks the same after every single turn
	if !RotateClockwise(Template(PieceO)).Equal(Template(PieceO)) {
		t.Error("O should be rotation invariant")
	}
}

func TestShapeEqual(t *testing.T) {
	if (Shape{{1}}).Equal(Shape{{1}, {1}}) {
		t.Error("different heights should not be equal")
	}
	if (Shape{{1, 0}}).Equal(Shape{{1}}) {
		t.Error("different widths should not be equal")
	}
	if Shape(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
