// Package classify maps a person to its card display variant.
//
// Classification is a pure function of the person id, the currently selected
// id, the row the card sits in, and the center row's color-coding lookup.
// It is total: every person present in a row's people list gets a defined
// variant, label, and color tag.
package classify

import "github.com/kintreeapp/kintree/pkg/family"

// Variant identifies the visual treatment of a card.
type Variant string

// Card variants.
const (
	VariantSelected Variant = "selected"
	VariantParent   Variant = "parent"
	VariantChild    Variant = "child"
	VariantSibling  Variant = "sibling"
	VariantSpouse   Variant = "spouse"
)

// Relationship labels shown on cards and exposed to assistive technology.
const (
	LabelParent  = "Parent"
	LabelChild   = "Child"
	LabelSibling = "Sibling"
	LabelSpouse  = "Spouse"
)

// Classification is the display triple for one card.
// The selected card carries no relationship label and no color tag:
// selection overrides color coding.
type Classification struct {
	Variant  Variant
	Label    string
	ColorTag family.ColorTag
}

// Classify returns the display classification for personID rendered in row,
// given the current selection and the center row's color-coding lookup.
//
// Precedence: selection first, then row, then the center-row lookup. A
// center-row person absent from the lookup defaults to spouse so every
// non-selected card renders with some relationship identity. That default
// mirrors the shipped behavior and is deliberate.
func Classify(personID, selectedID string, row family.Row, colorCoding map[string]family.ColorTag) Classification {
	if personID == selectedID {
		return Classification{Variant: VariantSelected}
	}

	switch row {
	case family.RowParent:
		return Classification{Variant: VariantParent, Label: LabelParent, ColorTag: family.TagParent}
	case family.RowChild:
		return Classification{Variant: VariantChild, Label: LabelChild, ColorTag: family.TagChild}
	}

	if colorCoding[personID] == family.TagSibling {
		return Classification{Variant: VariantSibling, Label: LabelSibling, ColorTag: family.TagSibling}
	}
	return Classification{Variant: VariantSpouse, Label: LabelSpouse, ColorTag: family.TagSpouse}
}
