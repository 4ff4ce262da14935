package geom

import "testing"

func TestRectOverlaps(t *testing.T) {
	const size = 16.0

	tests := []struct {
		name     string
		a, b     Point
		expected bool
	}{
		{"same cell", Point{0, 0}, Point{0, 0}, true},
		{"touching right edge", Point{0, 0}, Point{16, 0}, false},
		{"touching bottom edge", Point{0, 0}, Point{0, 16}, false},
		{"touching corner", Point{0, 0}, Point{16, 16}, false},
		{"partial horizontal", Point{0, 0}, Point{15.5, 0}, true},
		{"partial vertical", Point{0, 3}, Point{0, 18}, true},
		{"diagonal partial", Point{0, 0}, Point{8, 8}, true},
		{"far apart", Point{0, 0}, Point{64, 64}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Square(tt.a, size)
			b := Square(tt.b, size)
			if got := a.Overlaps(b); got != tt.expected {
				t.Errorf("Overlaps(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
			if got := b.Overlaps(a); got != tt.expected {
				t.Errorf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestCoordToWorld(t *testing.T) {
	p := Coord{X: 3, Y: 2}.ToWorld(16)
	if p.X != 48 || p.Y != 32 {
		t.Errorf("Expected (48, 32), got (%v, %v)", p.X, p.Y)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"on grid", Point{32, 16}, Point{32, 16}},
		{"just past a cell", Point{37, 16}, Point{32, 16}},
		{"past the midpoint", Point{41, 20}, Point{48, 16}},
		{"both axes", Point{7.9, 25}, Point{0, 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.in, 16); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
