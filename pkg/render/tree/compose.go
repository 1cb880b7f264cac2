package tree

import (
	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/render/tree/geometry"
	"github.com/kintreeapp/kintree/pkg/render/tree/layout"
)

// Row vertical placement. The three bands sit at fixed offsets; the gaps
// between them are where connectors are drawn.
const (
	parentsTop  = 0.0
	centerTop   = layout.CardHeight + layout.RowGap
	childrenTop = 2 * (layout.CardHeight + layout.RowGap)

	// FrameHeight is the total height of the three-band visualization.
	FrameHeight = 3*layout.CardHeight + 2*layout.RowGap
)

// Connector is one relationship line between two cards, with its endpoints
// and path resolved against the row layouts. Path is in unscrolled frame
// coordinates; sinks that scroll the center row recompute cross-row paths
// from the endpoints.
type Connector struct {
	Type   geometry.ConnectorType `json:"type"`
	FromID string                 `json:"from_id"`
	ToID   string                 `json:"to_id"`
	From   geometry.Position      `json:"from"`
	To     geometry.Position      `json:"to"`
	Path   string                 `json:"path"`
}

// Tree is the assembled three-row visualization for one relationship set.
type Tree struct {
	Set         family.RelationshipSet
	SelectedID  string
	OwnTree     bool
	FrameWidth  float64
	ColorCoding map[string]family.ColorTag

	Parents  layout.RowLayout
	Center   layout.RowLayout
	Children layout.RowLayout

	Connectors []Connector
}

// People returns the person value for an id appearing anywhere in the set.
func (t Tree) People() map[string]family.Person {
	people := make(map[string]family.Person)
	for _, group := range [][]family.Person{
		t.Set.Parents, t.Set.Siblings, t.Set.Spouses, t.Set.Children,
	} {
		for _, p := range group {
			people[p.ID] = p
		}
	}
	people[t.Set.Selected.ID] = t.Set.Selected
	return people
}

// Options configures tree composition.
type Options struct {
	// FrameWidth is the viewport width; layout.DefaultFrameWidth when zero.
	FrameWidth float64
	// OwnTree switches empty rows between an "add" affordance (true) and a
	// non-interactive placeholder (false).
	OwnTree bool
}

// Compose assembles the three-row visualization from one relationship set.
//
// The center row is siblings ++ selected ++ spouses; the color-coding map
// tags every sibling and spouse id and deliberately excludes the selected
// id so the classifier's selection check wins. Connectors are generated
// only toward rows that actually have cards.
func Compose(set family.RelationshipSet, opts Options) (Tree, error) {
	if err := set.Validate(); err != nil {
		return Tree{}, errors.Wrap(errors.ErrCodeInvalidRelationships, err, "composing tree")
	}

	frame := opts.FrameWidth
	if frame <= 0 {
		frame = layout.DefaultFrameWidth
	}

	placeholder := layout.PlaceholderInert
	if opts.OwnTree {
		placeholder = layout.PlaceholderAdd
	}

	t := Tree{
		Set:         set,
		SelectedID:  set.Selected.ID,
		OwnTree:     opts.OwnTree,
		FrameWidth:  frame,
		ColorCoding: set.ColorCoding(),
	}

	t.Parents = layout.LayoutRow(layout.LandmarkParents, ids(set.Parents), layout.Options{
		FrameWidth:  frame,
		Top:         parentsTop,
		Placeholder: placeholder,
	})
	t.Center = layout.LayoutRow(layout.LandmarkCenter, ids(set.CenterRow()), layout.Options{
		FrameWidth: frame,
		Top:        centerTop,
	})
	t.Children = layout.LayoutRow(layout.LandmarkChildren, ids(set.Children), layout.Options{
		FrameWidth:  frame,
		Top:         childrenTop,
		Placeholder: placeholder,
	})

	t.Connectors = buildConnectors(t)
	return t, nil
}

// buildConnectors resolves relationship lines against the row layouts:
// generation lines from each parent to the selected card, parent-child drop
// lines from the selected card to each child, dashed spouse segments, and
// sibling inverted-U connectors along the center row.
func buildConnectors(t Tree) []Connector {
	selected, ok := t.Center.CardFor(t.SelectedID)
	if !ok {
		return nil
	}
	selTopX, selTopY := selected.TopAnchor()
	selBottomX, selBottomY := selected.BottomAnchor()

	var conns []Connector

	for _, p := range t.Set.Parents {
		card, ok := t.Parents.CardFor(p.ID)
		if !ok {
			continue
		}
		x, y := card.BottomAnchor()
		conns = append(conns, connector(geometry.Generation, p.ID, t.SelectedID,
			geometry.Position{X: x, Y: y},
			geometry.Position{X: selTopX, Y: selTopY}))
	}

	for _, s := range t.Set.Siblings {
		card, ok := t.Center.CardFor(s.ID)
		if !ok {
			continue
		}
		x, y := card.TopAnchor()
		conns = append(conns, connector(geometry.Sibling, s.ID, t.SelectedID,
			geometry.Position{X: x, Y: y},
			geometry.Position{X: selTopX, Y: selTopY}))
	}

	for _, s := range t.Set.Spouses {
		card, ok := t.Center.CardFor(s.ID)
		if !ok {
			continue
		}
		conns = append(conns, connector(geometry.Spouse, t.SelectedID, s.ID,
			geometry.Position{X: selected.Right, Y: selected.CenterY()},
			geometry.Position{X: card.Left, Y: card.CenterY()}))
	}

	for _, c := range t.Set.Children {
		card, ok := t.Children.CardFor(c.ID)
		if !ok {
			continue
		}
		x, y := card.TopAnchor()
		conns = append(conns, connector(geometry.ParentChild, t.SelectedID, c.ID,
			geometry.Position{X: selBottomX, Y: selBottomY},
			geometry.Position{X: x, Y: y}))
	}

	return conns
}

func connector(typ geometry.ConnectorType, fromID, toID string, from, to geometry.Position) Connector {
	return Connector{
		Type:   typ,
		FromID: fromID,
		ToID:   toID,
		From:   from,
		To:     to,
		Path:   geometry.ComputePath(typ, from, to),
	}
}

func ids(people []family.Person) []string {
	if len(people) == 0 {
		return nil
	}
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}
