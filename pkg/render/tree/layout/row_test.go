package layout

import "testing"

func TestLayoutRowCardCount(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{name: "single card", ids: []string{"a"}},
		{name: "three cards", ids: []string{"a", "b", "c"}},
		{name: "many cards", ids: manyIDs(20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := LayoutRow(LandmarkCenter, tt.ids, Options{})
			if len(row.Cards) != len(tt.ids) {
				t.Fatalf("got %d cards, want %d (no silent drops or duplicates)", len(row.Cards), len(tt.ids))
			}
			for i, id := range tt.ids {
				if row.Cards[i].PersonID != id {
					t.Errorf("Cards[%d].PersonID = %q, want %q", i, row.Cards[i].PersonID, id)
				}
			}
		})
	}
}

func TestLayoutRowOrderAndSpacing(t *testing.T) {
	row := LayoutRow(LandmarkParents, []string{"a", "b"}, Options{FrameWidth: 10000})

	a, b := row.Cards[0], row.Cards[1]
	if a.Left >= b.Left {
		t.Errorf("cards out of order: a.Left=%v, b.Left=%v", a.Left, b.Left)
	}
	if got, want := b.Left-a.Right, CardGap; got != want {
		t.Errorf("gap between cards = %v, want %v", got, want)
	}
	if got := a.Width(); got != CardWidth {
		t.Errorf("card width = %v, want %v", got, CardWidth)
	}
}

func TestLayoutRowCentersWhenContentFits(t *testing.T) {
	const frame = 800.0
	row := LayoutRow(LandmarkCenter, []string{"a", "b"}, Options{FrameWidth: frame})

	// Two cards: 120*2 + 24 = 264 wide; must be centered, not left-pinned.
	wantLeft := (frame - 264.0) / 2
	if got := row.Cards[0].Left; got != wantLeft {
		t.Errorf("first card Left = %v, want %v (content must be centered)", got, wantLeft)
	}

	leftGap := row.Cards[0].Left
	rightGap := frame - row.Cards[len(row.Cards)-1].Right
	if leftGap != rightGap {
		t.Errorf("content not centered: left gap %v, right gap %v", leftGap, rightGap)
	}
}

func TestLayoutRowOverflowStartsAtZero(t *testing.T) {
	row := LayoutRow(LandmarkCenter, manyIDs(20), Options{FrameWidth: 800})

	if row.Cards[0].Left != 0 {
		t.Errorf("overflowing row first card Left = %v, want 0", row.Cards[0].Left)
	}
	if row.ContentWidth <= row.FrameWidth {
		t.Errorf("ContentWidth = %v, want > frame %v", row.ContentWidth, row.FrameWidth)
	}
}

func TestLayoutRowEmpty(t *testing.T) {
	tests := []struct {
		name        string
		placeholder PlaceholderKind
		wantEmpty   bool
	}{
		{name: "no placeholder renders nothing", placeholder: PlaceholderNone, wantEmpty: true},
		{name: "add placeholder keeps the row", placeholder: PlaceholderAdd, wantEmpty: false},
		{name: "inert placeholder keeps the row", placeholder: PlaceholderInert, wantEmpty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := LayoutRow(LandmarkChildren, nil, Options{Placeholder: tt.placeholder})
			if got := row.Empty(); got != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got, tt.wantEmpty)
			}
			if len(row.Cards) != 0 {
				t.Errorf("empty row has %d cards, want 0", len(row.Cards))
			}
		})
	}
}

func TestCardFor(t *testing.T) {
	row := LayoutRow(LandmarkCenter, []string{"a", "b", "c"}, Options{})

	c, ok := row.CardFor("b")
	if !ok || c.PersonID != "b" {
		t.Errorf("CardFor(b) = %+v, %v; want card b", c, ok)
	}
	if _, ok := row.CardFor("missing"); ok {
		t.Error("CardFor(missing) = true, want false")
	}
}

func TestLayoutRowVerticalPlacement(t *testing.T) {
	row := LayoutRow(LandmarkChildren, []string{"a"}, Options{Top: 230})
	c := row.Cards[0]
	if c.Top != 230 || c.Bottom != 230+CardHeight {
		t.Errorf("card vertical span = [%v, %v], want [230, %v]", c.Top, c.Bottom, 230+CardHeight)
	}
}

func manyIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}
