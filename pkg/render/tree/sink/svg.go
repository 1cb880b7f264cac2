package sink

import (
	"bytes"
	"fmt"

	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/render/tree"
	"github.com/kintreeapp/kintree/pkg/render/tree/centering"
	"github.com/kintreeapp/kintree/pkg/render/tree/classify"
	"github.com/kintreeapp/kintree/pkg/render/tree/geometry"
	"github.com/kintreeapp/kintree/pkg/render/tree/layout"
	"github.com/kintreeapp/kintree/pkg/render/tree/styles"
)

const cardActivationJS = `
    document.querySelectorAll('.card').forEach(el => {
      el.addEventListener('keydown', e => {
        if (e.key === 'Enter' || e.key === ' ') {
          const link = el.closest('a');
          if (link) { e.preventDefault(); link.click(); }
        }
      });
    });`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	hrefBase    string
	addHref     string
	dimmed      bool
	errorBanner string
	interactive bool
}

// WithStyle selects the visual style; Classic by default.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithHrefBase makes cards activation links to base + person id. An empty
// base leaves cards inert (pure visualization).
func WithHrefBase(base string) SVGOption { return func(r *svgRenderer) { r.hrefBase = base } }

// WithAddHref sets the target of the "add" placeholder affordance on an
// own tree's empty rows.
func WithAddHref(href string) SVGOption { return func(r *svgRenderer) { r.addHref = href } }

// WithDimmed renders the whole tree dimmed and non-interactive, used while
// a newer selection's data is loading.
func WithDimmed() SVGOption { return func(r *svgRenderer) { r.dimmed = true } }

// WithErrorBanner overlays a banner with the given message and a retry link.
func WithErrorBanner(msg string) SVGOption { return func(r *svgRenderer) { r.errorBanner = msg } }

// WithKeyboardActivation embeds the script that makes cards activable with
// Enter and Space.
func WithKeyboardActivation() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// RenderSVG renders the composed tree as a standalone SVG document.
func RenderSVG(t tree.Tree, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Classic{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		t.FrameWidth, tree.FrameHeight, t.FrameWidth, tree.FrameHeight)

	r.style.RenderDefs(&buf)

	centerOffset := centerRowOffset(t)
	r.renderConnectors(&buf, t, centerOffset)

	people := t.People()
	r.renderRow(&buf, t, t.Parents, family.RowParent, people, 0)
	r.renderRow(&buf, t, t.Center, family.RowCenter, people, centerOffset)
	r.renderRow(&buf, t, t.Children, family.RowChild, people, 0)

	if r.errorBanner != "" {
		renderErrorBanner(&buf, t, r.errorBanner)
	}
	if r.interactive && !r.dimmed {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", cardActivationJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderConnectors splits relationship lines by coordinate space. Spouse
// and sibling connectors live entirely in the center row, so they sit in a
// group carrying its scroll translation. Generation and parent-child
// connectors terminate on the parent and children rows, which never scroll;
// they render in frame coordinates with only their center-row endpoint
// shifted by the offset so both ends stay attached to their cards.
func (r *svgRenderer) renderConnectors(buf *bytes.Buffer, t tree.Tree, centerOffset float64) {
	buf.WriteString(`  <g class="connectors">` + "\n")
	for _, conn := range t.Connectors {
		var path string
		switch conn.Type {
		case geometry.Generation:
			to := conn.To
			to.X -= centerOffset
			path = geometry.ComputePath(conn.Type, conn.From, to)
		case geometry.ParentChild:
			from := conn.From
			from.X -= centerOffset
			path = geometry.ComputePath(conn.Type, from, conn.To)
		default:
			continue
		}
		r.style.RenderConnector(buf, styles.Connector{Type: conn.Type, Path: path})
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <g class="connectors" transform="translate(%.1f 0)">`+"\n", negate(centerOffset))
	for _, conn := range t.Connectors {
		if conn.Type != geometry.Spouse && conn.Type != geometry.Sibling {
			continue
		}
		r.style.RenderConnector(buf, styles.Connector{Type: conn.Type, Path: conn.Path})
	}
	buf.WriteString("  </g>\n")
}

// renderRow emits one row as a labeled region group. Rows that are Empty
// render nothing at all: no container element, observable absence.
func (r *svgRenderer) renderRow(buf *bytes.Buffer, t tree.Tree, row layout.RowLayout, rowKind family.Row, people map[string]family.Person, offset float64) {
	if row.Empty() {
		return
	}

	fmt.Fprintf(buf, `  <g class="row" role="region" aria-label="%s" transform="translate(%.1f 0)">`+"\n",
		styles.EscapeXML(row.Landmark), negate(offset))

	if len(row.Cards) == 0 {
		r.renderPlaceholder(buf, row)
		buf.WriteString("  </g>\n")
		return
	}

	for _, card := range row.Cards {
		person := people[card.PersonID]
		cls := classify.Classify(card.PersonID, t.SelectedID, rowKind, t.ColorCoding)

		view := styles.Card{
			PersonID: card.PersonID,
			Name:     person.DisplayName(),
			Lifespan: person.Lifespan(),
			Label:    cls.Label,
			ColorTag: cls.ColorTag,
			Selected: cls.Variant == classify.VariantSelected,
			Dimmed:   r.dimmed,
			X:        card.Left, Y: card.Top,
			W: card.Width(), H: card.Height(),
			CX: card.CenterX(), CY: card.CenterY(),
		}
		if r.hrefBase != "" && !view.Selected {
			view.Href = r.hrefBase + card.PersonID
		}

		r.style.RenderCard(buf, view)
		r.style.RenderText(buf, view)
	}

	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) renderPlaceholder(buf *bytes.Buffer, row layout.RowLayout) {
	p := styles.Placeholder{
		Landmark:    row.Landmark,
		Interactive: row.Placeholder == layout.PlaceholderAdd && !r.dimmed,
		X:           (row.FrameWidth - layout.CardWidth) / 2,
		Y:           row.Top,
		W:           layout.CardWidth,
		H:           layout.CardHeight,
	}
	if p.Interactive {
		p.Href = r.addHref
	}
	r.style.RenderPlaceholder(buf, p)
}

// negate returns -v, avoiding the "-0.0" formatting artifact.
func negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}

// centerRowOffset computes how far the center row must shift left so the
// selected card sits at the horizontal center of the frame. Parent and
// child rows never auto-scroll.
func centerRowOffset(t tree.Tree) float64 {
	var offset float64
	ctrl := centering.New(centering.ScrollerFunc(func(o float64) { offset = o }))
	ctrl.Select(t.SelectedID)
	ctrl.Apply(t.Center, t.FrameWidth)
	return offset
}

func renderErrorBanner(buf *bytes.Buffer, t tree.Tree, msg string) {
	const bannerH = 36.0
	fmt.Fprintf(buf,
		`  <g class="error-banner" role="alert">`+"\n"+
			`  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#fdecea" stroke="#d93025"/>`+"\n"+
			`  <text x="12" y="23" font-size="13" fill="#d93025">%s</text>`+"\n"+
			`  <text class="retry" x="%.1f" y="23" text-anchor="end" font-size="13" fill="#1a73e8" text-decoration="underline">Retry</text>`+"\n"+
			`  </g>`+"\n",
		t.FrameWidth, bannerH, styles.EscapeXML(msg), t.FrameWidth-12)
}
