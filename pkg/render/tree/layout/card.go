// Package layout computes card positions for the three horizontal bands of
// the family tree visualization.
//
// Cards are laid out left-to-right in input order inside a fixed-height
// strip. When a strip's content is narrower than the frame it is centered
// within it; wider content starts at the left edge and overflows into the
// scrollable region handled by the sinks.
package layout

// Card dimensions and spacing, in user units.
const (
	CardWidth  = 120.0
	CardHeight = 150.0
	CardGap    = 24.0
	// RowGap is the vertical distance between two adjacent row strips,
	// where the connectors are drawn.
	RowGap = 80.0
	// DefaultFrameWidth is the viewport width used when the caller does not
	// supply one.
	DefaultFrameWidth = 800.0
)

// Card represents a single rectangular element in the tree layout.
// All coordinates are in user units (typically pixels in SVG).
type Card struct {
	PersonID    string
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal span of the card.
func (c Card) Width() float64 { return c.Right - c.Left }

// Height returns the vertical span of the card.
func (c Card) Height() float64 { return c.Bottom - c.Top }

// CenterX returns the horizontal center point of the card.
func (c Card) CenterX() float64 { return (c.Left + c.Right) / 2 }

// CenterY returns the vertical center point of the card.
func (c Card) CenterY() float64 { return (c.Top + c.Bottom) / 2 }

// TopAnchor is the point where connectors from the row above attach.
func (c Card) TopAnchor() (x, y float64) { return c.CenterX(), c.Top }

// BottomAnchor is the point where connectors to the row below attach.
func (c Card) BottomAnchor() (x, y float64) { return c.CenterX(), c.Bottom }
