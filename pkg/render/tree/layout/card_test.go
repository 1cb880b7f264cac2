package layout

import "testing"

func TestCardGeometry(t *testing.T) {
	c := Card{PersonID: "p1", Left: 10, Right: 130, Top: 0, Bottom: 150}

	if got := c.Width(); got != 120 {
		t.Errorf("Width() = %v, want 120", got)
	}
	if got := c.Height(); got != 150 {
		t.Errorf("Height() = %v, want 150", got)
	}
	if got := c.CenterX(); got != 70 {
		t.Errorf("CenterX() = %v, want 70", got)
	}
	if got := c.CenterY(); got != 75 {
		t.Errorf("CenterY() = %v, want 75", got)
	}

	if x, y := c.TopAnchor(); x != 70 || y != 0 {
		t.Errorf("TopAnchor() = (%v, %v), want (70, 0)", x, y)
	}
	if x, y := c.BottomAnchor(); x != 70 || y != 150 {
		t.Errorf("BottomAnchor() = (%v, %v), want (70, 150)", x, y)
	}
}
