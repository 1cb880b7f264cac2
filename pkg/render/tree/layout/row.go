package layout

// Landmark labels exposed on the row containers for assistive technology
// and for scroll targeting.
const (
	LandmarkParents  = "Parents row"
	LandmarkCenter   = "Center row with siblings and spouses"
	LandmarkChildren = "Children row"
)

// RowLayout is the computed geometry for one horizontal band.
// A zero-value RowLayout (no cards, no placeholder) represents an absent
// row: sinks render nothing for it, not an empty container.
type RowLayout struct {
	Landmark string
	Cards    []Card
	// ContentWidth is the total width occupied by cards and gaps.
	ContentWidth float64
	// FrameWidth is the viewport width the row was laid out against.
	FrameWidth float64
	// Placeholder is set when the row has no people but should still render
	// an affordance (own tree) or an inert marker (someone else's tree).
	Placeholder PlaceholderKind
	// Top is the y coordinate of the strip's upper edge.
	Top float64
}

// PlaceholderKind describes what an empty row renders instead of cards.
type PlaceholderKind string

// Placeholder kinds for empty rows.
const (
	// PlaceholderNone renders nothing at all; the row container is absent.
	PlaceholderNone PlaceholderKind = ""
	// PlaceholderAdd renders an interactive "add" affordance (own tree).
	PlaceholderAdd PlaceholderKind = "add"
	// PlaceholderInert renders a non-interactive empty marker (someone
	// else's tree).
	PlaceholderInert PlaceholderKind = "inert"
)

// Empty reports whether the row renders nothing: no cards and no
// placeholder. Absence must be observable, so sinks skip empty rows
// entirely.
func (r RowLayout) Empty() bool {
	return len(r.Cards) == 0 && r.Placeholder == PlaceholderNone
}

// Options configures row layout.
type Options struct {
	// FrameWidth is the viewport width; DefaultFrameWidth when zero.
	FrameWidth float64
	// Top is the y coordinate of the strip's upper edge.
	Top float64
	// Placeholder to apply when the people list is empty.
	Placeholder PlaceholderKind
}

// LayoutRow computes card geometry for the given ordered person ids.
//
// Cards are placed left-to-right in input order. Content narrower than the
// frame is centered within it (never left-pinned when it fits); wider
// content starts at zero and overflows to the right.
func LayoutRow(landmark string, personIDs []string, opts Options) RowLayout {
	frame := opts.FrameWidth
	if frame <= 0 {
		frame = DefaultFrameWidth
	}

	row := RowLayout{
		Landmark:   landmark,
		FrameWidth: frame,
		Top:        opts.Top,
	}

	if len(personIDs) == 0 {
		row.Placeholder = opts.Placeholder
		return row
	}

	n := float64(len(personIDs))
	row.ContentWidth = n*CardWidth + (n-1)*CardGap

	offset := 0.0
	if row.ContentWidth < frame {
		offset = (frame - row.ContentWidth) / 2
	}

	row.Cards = make([]Card, len(personIDs))
	for i, id := range personIDs {
		left := offset + float64(i)*(CardWidth+CardGap)
		row.Cards[i] = Card{
			PersonID: id,
			Left:     left,
			Right:    left + CardWidth,
			Top:      opts.Top,
			Bottom:   opts.Top + CardHeight,
		}
	}
	return row
}

// CardFor returns the card for the given person id, if present.
func (r RowLayout) CardFor(personID string) (Card, bool) {
	for _, c := range r.Cards {
		if c.PersonID == personID {
			return c, true
		}
	}
	return Card{}, false
}
