package geometry

import (
	"math/rand"
	"strings"
	"testing"
)

func TestComputePath(t *testing.T) {
	tests := []struct {
		name string
		typ  ConnectorType
		from Position
		to   Position
		want string
	}{
		{
			name: "spouse straight line",
			typ:  Spouse,
			from: Position{X: 50, Y: 100},
			to:   Position{X: 200, Y: 100},
			want: "M 50 100 L 200 100",
		},
		{
			name: "generation straight diagonal",
			typ:  Generation,
			from: Position{X: 100, Y: 0},
			to:   Position{X: 250, Y: 180},
			want: "M 100 0 L 250 180",
		},
		{
			name: "parent-child jog at vertical midpoint",
			typ:  ParentChild,
			from: Position{X: 100, Y: 0},
			to:   Position{X: 200, Y: 100},
			want: "M 100 0 L 100 50 L 200 50 L 200 100",
		},
		{
			name: "sibling inverted U",
			typ:  Sibling,
			from: Position{X: 50, Y: 100},
			to:   Position{X: 150, Y: 100},
			want: "M 50 100 L 50 70 L 150 70 L 150 100",
		},
		{
			name: "sibling rise measured from higher endpoint",
			typ:  Sibling,
			from: Position{X: 50, Y: 120},
			to:   Position{X: 150, Y: 80},
			want: "M 50 120 L 50 50 L 150 50 L 150 80",
		},
		{
			name: "degenerate same point still valid",
			typ:  Spouse,
			from: Position{X: 10, Y: 10},
			to:   Position{X: 10, Y: 10},
			want: "M 10 10 L 10 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePath(tt.typ, tt.from, tt.to); got != tt.want {
				t.Errorf("ComputePath(%s) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestSiblingPathContainsRise(t *testing.T) {
	path := ComputePath(Sibling, Position{X: 50, Y: 100}, Position{X: 150, Y: 100})
	for _, fragment := range []string{" 70", "50 ", "150 "} {
		if !strings.Contains(path, fragment) {
			t.Errorf("sibling path %q missing fragment %q", path, fragment)
		}
	}
}

func TestPaddingFor(t *testing.T) {
	tests := []struct {
		typ  ConnectorType
		want float64
	}{
		{Sibling, 40},
		{Spouse, 20},
		{ParentChild, 20},
		{Generation, 20},
	}
	for _, tt := range tests {
		if got := PaddingFor(tt.typ); got != tt.want {
			t.Errorf("PaddingFor(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestComputeViewBoxBoundsAllPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []Position
	}{
		{
			name:   "single point",
			points: []Position{{X: 33, Y: -7}},
		},
		{
			name:   "two points",
			points: []Position{{X: 0, Y: 0}, {X: 100, Y: 50}},
		},
		{
			name:   "many connections",
			points: randomPoints(25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const padding = 20
			vb := ComputeViewBox(tt.points, padding)
			for _, p := range tt.points {
				if vb.X > p.X || vb.X+vb.Width < p.X {
					t.Errorf("point x=%v outside viewBox [%v, %v]", p.X, vb.X, vb.X+vb.Width)
				}
				if vb.Y > p.Y || vb.Y+vb.Height < p.Y {
					t.Errorf("point y=%v outside viewBox [%v, %v]", p.Y, vb.Y, vb.Y+vb.Height)
				}
			}
			if vb.Width <= 0 || vb.Height <= 0 {
				t.Errorf("viewBox has non-positive area: %+v", vb)
			}
		})
	}
}

func TestComputeViewBoxDegenerate(t *testing.T) {
	vb := ComputeViewBox([]Position{{X: 5, Y: 5}, {X: 5, Y: 5}}, 20)
	want := ViewBox{X: -15, Y: -15, Width: 40, Height: 40}
	if vb != want {
		t.Errorf("ComputeViewBox(degenerate) = %+v, want %+v", vb, want)
	}
}

func TestSiblingViewBoxIncludesRise(t *testing.T) {
	from := Position{X: 50, Y: 100}
	to := Position{X: 150, Y: 100}
	vb := SiblingViewBox(from, to)

	// The rise peaks at y=70; the box must reach at least 70-40.
	if vb.Y > 30 {
		t.Errorf("viewBox top = %v, want <= 30 to cover the rise", vb.Y)
	}
	if vb.X > from.X-SiblingPadding {
		t.Errorf("viewBox left = %v, want <= %v", vb.X, from.X-SiblingPadding)
	}
}

func TestViewBoxString(t *testing.T) {
	vb := ViewBox{X: -15, Y: 0, Width: 40.5, Height: 40}
	if got, want := vb.String(), "-15 0 40.5 40"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func randomPoints(n int) []Position {
	rng := rand.New(rand.NewSource(42))
	pts := make([]Position, n)
	for i := range pts {
		pts[i] = Position{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000}
	}
	return pts
}
