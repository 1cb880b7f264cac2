package classify

import (
	"testing"

	"github.com/kintreeapp/kintree/pkg/family"
)

func TestClassify(t *testing.T) {
	coding := map[string]family.ColorTag{
		"sib1": family.TagSibling,
		"spo1": family.TagSpouse,
	}

	tests := []struct {
		name       string
		personID   string
		selectedID string
		row        family.Row
		want       Classification
	}{
		{
			name:       "selected person",
			personID:   "me",
			selectedID: "me",
			row:        family.RowCenter,
			want:       Classification{Variant: VariantSelected},
		},
		{
			name:       "selected overrides color coding",
			personID:   "sib1",
			selectedID: "sib1",
			row:        family.RowCenter,
			want:       Classification{Variant: VariantSelected},
		},
		{
			name:       "parent row",
			personID:   "p1",
			selectedID: "me",
			row:        family.RowParent,
			want:       Classification{Variant: VariantParent, Label: LabelParent, ColorTag: family.TagParent},
		},
		{
			name:       "child row",
			personID:   "c1",
			selectedID: "me",
			row:        family.RowChild,
			want:       Classification{Variant: VariantChild, Label: LabelChild, ColorTag: family.TagChild},
		},
		{
			name:       "center row tagged sibling",
			personID:   "sib1",
			selectedID: "me",
			row:        family.RowCenter,
			want:       Classification{Variant: VariantSibling, Label: LabelSibling, ColorTag: family.TagSibling},
		},
		{
			name:       "center row tagged spouse",
			personID:   "spo1",
			selectedID: "me",
			row:        family.RowCenter,
			want:       Classification{Variant: VariantSpouse, Label: LabelSpouse, ColorTag: family.TagSpouse},
		},
		{
			name:       "center row untagged defaults to spouse",
			personID:   "mystery",
			selectedID: "me",
			row:        family.RowCenter,
			want:       Classification{Variant: VariantSpouse, Label: LabelSpouse, ColorTag: family.TagSpouse},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.personID, tt.selectedID, tt.row, coding)
			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyNilLookup(t *testing.T) {
	// A nil lookup must not panic and still yields the spouse default.
	got := Classify("x", "me", family.RowCenter, nil)
	if got.Variant != VariantSpouse {
		t.Errorf("Classify() with nil lookup = %+v, want spouse default", got)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every row × selection combination must yield a non-empty variant.
	rows := []family.Row{family.RowParent, family.RowCenter, family.RowChild}
	for _, row := range rows {
		for _, selected := range []string{"p", "other"} {
			if got := Classify("p", selected, row, nil); got.Variant == "" {
				t.Errorf("Classify(p, %s, %s) returned empty variant", selected, row)
			}
		}
	}
}
