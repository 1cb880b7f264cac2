// Package centering keeps the selected card horizontally centered within a
// row's scrollable viewport.
//
// A Controller is attached to one row instance. Whenever the selection
// changes it records a pending intent; Apply resolves the most recent intent
// against the row's current layout and fires the host's scroll primitive
// once, fire-and-forget. Hosts without a scroll primitive simply pass a nil
// Scroller and the controller degrades to a no-op.
package centering

import "github.com/kintreeapp/kintree/pkg/render/tree/layout"

// Scroller is the host environment's horizontal scroll primitive.
// Implementations are expected to scroll smoothly to the given offset;
// the controller does not track animation completion.
type Scroller interface {
	ScrollTo(offset float64)
}

// ScrollerFunc adapts a function to the Scroller interface.
type ScrollerFunc func(offset float64)

// ScrollTo calls f(offset).
func (f ScrollerFunc) ScrollTo(offset float64) { f(offset) }

// State of the controller between selection changes.
type State string

// Controller states.
const (
	// StateIdle means no scroll is pending.
	StateIdle State = "idle"
	// StatePending means the selection changed and a scroll has not yet
	// been issued.
	StatePending State = "pending"
)

// Controller centers the selected card within one row's viewport.
// The zero value is not usable; construct with New.
type Controller struct {
	scroller Scroller
	state    State
	targetID string
}

// New creates a controller for a row. A nil scroller is allowed: the
// controller then swallows scroll intents instead of erroring, matching
// hosts where the scroll primitive is unavailable.
func New(scroller Scroller) *Controller {
	return &Controller{scroller: scroller, state: StateIdle}
}

// State returns the controller's current state.
func (c *Controller) State() State { return c.state }

// Select records a selection change for personID. Repeated calls before
// Apply supersede each other: only the most recent id is targeted, earlier
// intents are dropped rather than queued. An empty id clears the pending
// intent.
func (c *Controller) Select(personID string) {
	if personID == "" {
		c.state = StateIdle
		c.targetID = ""
		return
	}
	c.state = StatePending
	c.targetID = personID
}

// Apply resolves the pending intent against the row's layout and issues a
// single scroll that horizontally centers the target card in a viewport of
// viewportWidth. It returns to idle whether or not a scroll was issued.
//
// No scroll is issued when there is no pending intent, the target card is
// not in the row, or the scroller is nil; none of these are errors.
func (c *Controller) Apply(row layout.RowLayout, viewportWidth float64) {
	if c.state != StatePending {
		return
	}
	targetID := c.targetID
	c.state = StateIdle
	c.targetID = ""

	card, ok := row.CardFor(targetID)
	if !ok || c.scroller == nil {
		return
	}

	c.scroller.ScrollTo(CenterOffset(card, row, viewportWidth))
}

// CenterOffset computes the scroll offset that places card's horizontal
// center at the middle of a viewport of viewportWidth, clamped to the row's
// scrollable range.
func CenterOffset(card layout.Card, row layout.RowLayout, viewportWidth float64) float64 {
	if viewportWidth <= 0 {
		viewportWidth = row.FrameWidth
	}
	offset := card.CenterX() - viewportWidth/2

	maxOffset := row.ContentWidth - viewportWidth
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
