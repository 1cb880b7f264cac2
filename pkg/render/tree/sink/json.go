package sink

import (
	"encoding/json"

	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/render/tree"
	"github.com/kintreeapp/kintree/pkg/render/tree/classify"
	"github.com/kintreeapp/kintree/pkg/render/tree/layout"
)

// Document is the JSON serialization of a composed tree, for API responses
// and clients that draw the tree themselves.
type Document struct {
	SelectedID string           `json:"selected_id"`
	OwnTree    bool             `json:"own_tree"`
	FrameWidth float64          `json:"frame_width"`
	Rows       []RowDocument    `json:"rows"`
	Connectors []tree.Connector `json:"connectors,omitempty"`
}

// RowDocument is one rendered row. Rows that render nothing are omitted
// from the document entirely, mirroring the SVG sink's observable absence.
type RowDocument struct {
	Landmark    string         `json:"landmark"`
	Row         family.Row     `json:"row"`
	Placeholder string         `json:"placeholder,omitempty"`
	Cards       []CardDocument `json:"cards,omitempty"`
}

// CardDocument is one card with its resolved classification and geometry.
type CardDocument struct {
	PersonID string           `json:"person_id"`
	Name     string           `json:"name"`
	Lifespan string           `json:"lifespan,omitempty"`
	Variant  classify.Variant `json:"variant"`
	Label    string           `json:"label,omitempty"`
	ColorTag family.ColorTag  `json:"color_tag,omitempty"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	Width    float64          `json:"width"`
	Height   float64          `json:"height"`
}

// BuildDocument converts a composed tree to its serialization form.
func BuildDocument(t tree.Tree) Document {
	doc := Document{
		SelectedID: t.SelectedID,
		OwnTree:    t.OwnTree,
		FrameWidth: t.FrameWidth,
		Connectors: t.Connectors,
	}

	people := t.People()
	rows := []struct {
		row  layout.RowLayout
		kind family.Row
	}{
		{t.Parents, family.RowParent},
		{t.Center, family.RowCenter},
		{t.Children, family.RowChild},
	}

	for _, r := range rows {
		if r.row.Empty() {
			continue
		}
		rd := RowDocument{
			Landmark:    r.row.Landmark,
			Row:         r.kind,
			Placeholder: string(r.row.Placeholder),
		}
		for _, card := range r.row.Cards {
			person := people[card.PersonID]
			cls := classify.Classify(card.PersonID, t.SelectedID, r.kind, t.ColorCoding)
			rd.Cards = append(rd.Cards, CardDocument{
				PersonID: card.PersonID,
				Name:     person.DisplayName(),
				Lifespan: person.Lifespan(),
				Variant:  cls.Variant,
				Label:    cls.Label,
				ColorTag: cls.ColorTag,
				X:        card.Left,
				Y:        card.Top,
				Width:    card.Width(),
				Height:   card.Height(),
			})
		}
		doc.Rows = append(doc.Rows, rd)
	}

	return doc
}

// RenderJSON renders the composed tree as indented JSON bytes.
func RenderJSON(t tree.Tree) ([]byte, error) {
	return json.MarshalIndent(BuildDocument(t), "", "  ")
}
