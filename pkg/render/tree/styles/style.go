package styles

import (
	"bytes"

	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/render/tree/geometry"
)

// Style defines the visual appearance for tree rendering.
// Implementations control how cards, connectors, placeholders, and card
// text are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderCard writes the SVG for a single person card.
	RenderCard(buf *bytes.Buffer, c Card)
	// RenderConnector writes the SVG for a relationship connector line.
	RenderConnector(buf *bytes.Buffer, conn Connector)
	// RenderPlaceholder writes the SVG for an empty-row placeholder.
	RenderPlaceholder(buf *bytes.Buffer, p Placeholder)
	// RenderText writes the SVG for a card's name and label text.
	RenderText(buf *bytes.Buffer, c Card)
}

// Card contains all data needed to render a single person card.
type Card struct {
	PersonID   string          // Person identifier
	Name       string          // Display name
	Lifespan   string          // Birth/death subtitle ("" when unknown)
	Label      string          // Relationship label ("" for the selected card)
	ColorTag   family.ColorTag // Background classification ("" for selected)
	Selected   bool            // Selection ring styling
	Dimmed     bool            // Non-interactive loading overlay
	X, Y, W, H float64         // Position and dimensions
	CX, CY     float64         // Center coordinates (for text)
	Href       string          // Activation target ("" disables the link)
}

// Connector contains positioning data for rendering a relationship line.
type Connector struct {
	Type geometry.ConnectorType
	Path string // SVG path data
}

// Placeholder describes an empty-row marker.
type Placeholder struct {
	Landmark    string  // Row landmark label
	Interactive bool    // true renders an "add" affordance
	X, Y, W, H  float64 // Position and dimensions
	Href        string  // Add-affordance target (interactive only)
}

// Stroke styling per connector type, fixed by the visual design.
const (
	// SpouseStrokeWidth is the line width of the dashed spouse segment.
	SpouseStrokeWidth = 2.0
	// SpouseDashArray is the spouse segment's dash pattern.
	SpouseDashArray = "6,4"
	// SiblingStrokeWidth is the line width of the sibling inverted U.
	SiblingStrokeWidth = 1.0
	// SiblingDashArray is the sibling connector's dash pattern.
	SiblingDashArray = "3,3"
	// LineStrokeWidth is the width of parent-child and generation lines.
	LineStrokeWidth = 2.0
)

// ColorFor returns the card fill color for a color tag. The selected card
// ignores tags and uses the selection color.
func ColorFor(tag family.ColorTag) string {
	switch tag {
	case family.TagParent:
		return "#d8e8f5"
	case family.TagSibling:
		return "#e7f0d9"
	case family.TagSpouse:
		return "#f5e4d8"
	case family.TagChild:
		return "#ead9f0"
	case family.TagSelected:
		return "#fdf3c8"
	default:
		return "#f0f0f0"
	}
}
