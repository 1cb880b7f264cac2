package family

import (
	"encoding/json"
	"fmt"
)

// Row identifies one of the three horizontal bands of the visualization.
type Row string

// Rows of the three-band layout.
const (
	RowParent Row = "parent"
	RowCenter Row = "center"
	RowChild  Row = "child"
)

// ColorTag is a relationship-derived visual classification, independent of
// the row a card sits in. It drives card background styling.
type ColorTag string

// Color tags for card styling.
const (
	TagParent   ColorTag = "parent"
	TagSibling  ColorTag = "sibling"
	TagSpouse   ColorTag = "spouse"
	TagChild    ColorTag = "child"
	TagSelected ColorTag = "selected"
)

// RelationshipSet describes one focal person's immediate relatives.
// The four slices are in display order (upstream insertion order); order
// carries no meaning beyond left-to-right placement. The Selected person
// never appears in any of the four slices.
//
// A set with all four slices empty is a valid "no relationships recorded"
// state, not an error.
type RelationshipSet struct {
	Selected Person   `json:"selected" bson:"selected"`
	Parents  []Person `json:"parents,omitempty" bson:"parents,omitempty"`
	Siblings []Person `json:"siblings,omitempty" bson:"siblings,omitempty"`
	Spouses  []Person `json:"spouses,omitempty" bson:"spouses,omitempty"`
	Children []Person `json:"children,omitempty" bson:"children,omitempty"`
}

// Validate checks structural invariants: the selected person must have an ID
// and must not be listed among its own relatives.
func (s RelationshipSet) Validate() error {
	if s.Selected.ID == "" {
		return fmt.Errorf("relationship set has no selected person")
	}
	for _, group := range []struct {
		name   string
		people []Person
	}{
		{"parents", s.Parents},
		{"siblings", s.Siblings},
		{"spouses", s.Spouses},
		{"children", s.Children},
	} {
		for _, p := range group.people {
			if p.ID == s.Selected.ID {
				return fmt.Errorf("selected person %s appears in %s", s.Selected.ID, group.name)
			}
		}
	}
	return nil
}

// Count returns the number of people in the set, selected person included.
func (s RelationshipSet) Count() int {
	return 1 + len(s.Parents) + len(s.Siblings) + len(s.Spouses) + len(s.Children)
}

// IsEmpty reports whether no relationships are recorded at all.
func (s RelationshipSet) IsEmpty() bool {
	return len(s.Parents) == 0 && len(s.Siblings) == 0 &&
		len(s.Spouses) == 0 && len(s.Children) == 0
}

// CenterRow returns the ordered people of the center band:
// siblings, then the selected person, then spouses.
func (s RelationshipSet) CenterRow() []Person {
	row := make([]Person, 0, len(s.Siblings)+1+len(s.Spouses))
	row = append(row, s.Siblings...)
	row = append(row, s.Selected)
	row = append(row, s.Spouses...)
	return row
}

// ColorCoding builds the sibling/spouse tag lookup for the center row.
// The selected person is deliberately absent so the classifier's selection
// check takes precedence over any tag.
func (s RelationshipSet) ColorCoding() map[string]ColorTag {
	coding := make(map[string]ColorTag, len(s.Siblings)+len(s.Spouses))
	for _, p := range s.Siblings {
		coding[p.ID] = TagSibling
	}
	for _, p := range s.Spouses {
		coding[p.ID] = TagSpouse
	}
	return coding
}

// UnmarshalSet deserializes JSON bytes into a RelationshipSet and validates it.
func UnmarshalSet(data []byte) (RelationshipSet, error) {
	var s RelationshipSet
	if err := json.Unmarshal(data, &s); err != nil {
		return RelationshipSet{}, err
	}
	if err := s.Validate(); err != nil {
		return RelationshipSet{}, err
	}
	return s, nil
}
