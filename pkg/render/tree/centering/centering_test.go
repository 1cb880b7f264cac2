package centering

import (
	"testing"

	"github.com/kintreeapp/kintree/pkg/render/tree/layout"
)

// recorder captures issued scroll offsets.
type recorder struct {
	offsets []float64
}

func (r *recorder) ScrollTo(offset float64) { r.offsets = append(r.offsets, offset) }

func wideRow(ids ...string) layout.RowLayout {
	return layout.LayoutRow(layout.LandmarkCenter, ids, layout.Options{FrameWidth: 400})
}

func TestControllerCentersSelectedCard(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	row := wideRow("a", "b", "c", "d", "e", "f", "g", "h")

	c.Select("e")
	c.Apply(row, 400)

	if len(rec.offsets) != 1 {
		t.Fatalf("got %d scrolls, want exactly 1", len(rec.offsets))
	}

	card, _ := row.CardFor("e")
	want := CenterOffset(card, row, 400)
	if rec.offsets[0] != want {
		t.Errorf("scroll offset = %v, want %v", rec.offsets[0], want)
	}
	if c.State() != StateIdle {
		t.Errorf("state after Apply = %v, want idle", c.State())
	}
}

func TestControllerLastSelectionWins(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	row := wideRow("a", "b", "c", "d", "e", "f", "g", "h")

	// Rapid selection changes before Apply: only the newest is targeted.
	c.Select("b")
	c.Select("g")
	c.Apply(row, 400)

	if len(rec.offsets) != 1 {
		t.Fatalf("got %d scrolls, want 1 (earlier intents superseded, not queued)", len(rec.offsets))
	}
	card, _ := row.CardFor("g")
	if want := CenterOffset(card, row, 400); rec.offsets[0] != want {
		t.Errorf("scroll offset = %v, want %v (target g, not b)", rec.offsets[0], want)
	}
}

func TestControllerNilScrollerIsNoOp(t *testing.T) {
	c := New(nil)
	c.Select("a")
	// Must not panic and must return to idle.
	c.Apply(wideRow("a", "b"), 400)
	if c.State() != StateIdle {
		t.Errorf("state = %v, want idle", c.State())
	}
}

func TestControllerMissingCardIsNoOp(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	c.Select("ghost")
	c.Apply(wideRow("a", "b"), 400)
	if len(rec.offsets) != 0 {
		t.Errorf("got %d scrolls for a missing card, want 0", len(rec.offsets))
	}
}

func TestControllerIdleApplyDoesNothing(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	c.Apply(wideRow("a"), 400)
	if len(rec.offsets) != 0 {
		t.Errorf("got %d scrolls without a selection change, want 0", len(rec.offsets))
	}
}

func TestControllerClearSelection(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	c.Select("a")
	c.Select("")
	c.Apply(wideRow("a"), 400)
	if len(rec.offsets) != 0 {
		t.Errorf("cleared selection still scrolled %d times", len(rec.offsets))
	}
}

func TestCenterOffset(t *testing.T) {
	row := wideRow("a", "b", "c", "d", "e", "f", "g", "h")
	// Content: 8*120 + 7*24 = 1128.

	tests := []struct {
		name     string
		personID string
		viewport float64
		want     float64
	}{
		{
			name:     "first card clamps to zero",
			personID: "a",
			viewport: 400,
			want:     0,
		},
		{
			name:     "last card clamps to max",
			personID: "h",
			viewport: 400,
			want:     1128 - 400,
		},
		{
			name:     "middle card centered exactly",
			personID: "d",
			viewport: 400,
			// Card d: left = 3*144 = 432, center = 492; 492 - 200 = 292.
			want: 292,
		},
		{
			name:     "viewport wider than content",
			personID: "d",
			viewport: 2000,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, ok := row.CardFor(tt.personID)
			if !ok {
				t.Fatalf("card %s not found", tt.personID)
			}
			if got := CenterOffset(card, row, tt.viewport); got != tt.want {
				t.Errorf("CenterOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}
