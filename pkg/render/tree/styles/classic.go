package styles

import (
	"bytes"
	"fmt"

	"github.com/kintreeapp/kintree/pkg/render/tree/geometry"
)

// Classic is the default card style: rounded rectangles with flat
// relationship colors, a bold ring on the selected card, and grey dashed
// placeholders.
type Classic struct{}

// RenderDefs writes the drop shadow filter shared by all cards.
func (Classic) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="card-shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="1" stdDeviation="1.5" flood-opacity="0.25"/>
    </filter>
  </defs>
`)
}

// RenderCard draws the card rectangle. Selected cards get a heavier accent
// stroke; dimmed cards get a translucent overlay and lose their pointer
// affordance.
func (Classic) RenderCard(buf *bytes.Buffer, c Card) {
	fill := ColorFor(c.ColorTag)
	stroke := "#b0b0b0"
	strokeWidth := 1.0
	if c.Selected {
		fill = ColorFor("selected")
		stroke = "#c9a227"
		strokeWidth = 3.0
	}

	opacity := 1.0
	if c.Dimmed {
		opacity = 0.45
	}

	openCardLink(buf, c)
	fmt.Fprintf(buf,
		`  <rect class="card" id="card-%s" data-person-id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="%s" stroke="%s" stroke-width="%.1f" opacity="%.2f" filter="url(#card-shadow)"/>`+"\n",
		EscapeXML(c.PersonID), EscapeXML(c.PersonID), c.X, c.Y, c.W, c.H, fill, stroke, strokeWidth, opacity)
	closeCardLink(buf, c)
}

// RenderText draws the name, lifespan, and relationship label, omitting any
// line that has no content.
func (Classic) RenderText(buf *bytes.Buffer, c Card) {
	opacity := 1.0
	if c.Dimmed {
		opacity = 0.45
	}

	fmt.Fprintf(buf,
		`  <text class="card-name" x="%.1f" y="%.1f" text-anchor="middle" font-size="13" opacity="%.2f">%s</text>`+"\n",
		c.CX, c.Y+c.H*0.45, opacity, EscapeXML(TruncateName(c.Name, c.W)))

	if c.Lifespan != "" {
		fmt.Fprintf(buf,
			`  <text class="card-dates" x="%.1f" y="%.1f" text-anchor="middle" font-size="10" fill="#555" opacity="%.2f">%s</text>`+"\n",
			c.CX, c.Y+c.H*0.58, opacity, EscapeXML(c.Lifespan))
	}

	if c.Label != "" {
		fmt.Fprintf(buf,
			`  <text class="card-label" x="%.1f" y="%.1f" text-anchor="middle" font-size="10" fill="#333" opacity="%.2f">%s</text>`+"\n",
			c.CX, c.Y+c.H*0.82, opacity, EscapeXML(c.Label))
	}
}

// RenderConnector draws one relationship line with the stroke treatment
// fixed for its type: spouses dashed at width 2, siblings dashed 3,3 at
// width 1, parent-child and generation lines solid.
func (Classic) RenderConnector(buf *bytes.Buffer, conn Connector) {
	switch conn.Type {
	case geometry.Spouse:
		fmt.Fprintf(buf,
			`  <path class="connector connector-spouse" d="%s" fill="none" stroke="#9a6b4f" stroke-width="%g" stroke-dasharray="%s"/>`+"\n",
			conn.Path, SpouseStrokeWidth, SpouseDashArray)
	case geometry.Sibling:
		fmt.Fprintf(buf,
			`  <path class="connector connector-sibling" d="%s" fill="none" stroke="#7a8f5a" stroke-width="%g" stroke-dasharray="%s"/>`+"\n",
			conn.Path, SiblingStrokeWidth, SiblingDashArray)
	default:
		fmt.Fprintf(buf,
			`  <path class="connector connector-%s" d="%s" fill="none" stroke="#8a8a8a" stroke-width="%g"/>`+"\n",
			conn.Type, conn.Path, LineStrokeWidth)
	}
}

// RenderPlaceholder draws a dashed outline where a row has no people.
// Interactive placeholders render a plus glyph and link to the add flow;
// inert ones are plain markers with no activation target.
func (Classic) RenderPlaceholder(buf *bytes.Buffer, p Placeholder) {
	if p.Interactive && p.Href != "" {
		fmt.Fprintf(buf, `  <a href="%s">`+"\n", EscapeXML(p.Href))
	}
	fmt.Fprintf(buf,
		`  <rect class="placeholder" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="none" stroke="#c0c0c0" stroke-width="1" stroke-dasharray="5,5"/>`+"\n",
		p.X, p.Y, p.W, p.H)
	if p.Interactive {
		fmt.Fprintf(buf,
			`  <text class="placeholder-add" x="%.1f" y="%.1f" text-anchor="middle" font-size="24" fill="#c0c0c0">+</text>`+"\n",
			p.X+p.W/2, p.Y+p.H/2+8)
	}
	if p.Interactive && p.Href != "" {
		buf.WriteString("  </a>\n")
	}
}

func openCardLink(buf *bytes.Buffer, c Card) {
	if c.Href != "" && !c.Dimmed {
		fmt.Fprintf(buf, `  <a href="%s" aria-label="%s">`+"\n",
			EscapeXML(c.Href), EscapeXML(cardAccessibleName(c)))
	}
}

func closeCardLink(buf *bytes.Buffer, c Card) {
	if c.Href != "" && !c.Dimmed {
		buf.WriteString("  </a>\n")
	}
}

// cardAccessibleName builds the assistive-technology name for a card:
// display name plus relationship or selection status.
func cardAccessibleName(c Card) string {
	if c.Selected {
		return c.Name + ", selected"
	}
	if c.Label != "" {
		return c.Name + ", " + c.Label
	}
	return c.Name
}

// Ensure Classic implements Style.
var _ Style = Classic{}
