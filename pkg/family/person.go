package family

import "strings"

// Gender values used for display purposes only.
const (
	GenderFemale  = "female"
	GenderMale    = "male"
	GenderUnknown = ""
)

// Person is an immutable snapshot of one individual as supplied by the
// upstream data layer. Optional fields (MiddleName, DeathDate, PhotoURL)
// may be empty; the engine omits them from display rather than erroring.
type Person struct {
	ID         string `json:"id" bson:"id"`
	GivenName  string `json:"given_name" bson:"given_name"`
	MiddleName string `json:"middle_name,omitempty" bson:"middle_name,omitempty"`
	FamilyName string `json:"family_name" bson:"family_name"`
	BirthDate  string `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	DeathDate  string `json:"death_date,omitempty" bson:"death_date,omitempty"`
	Gender     string `json:"gender,omitempty" bson:"gender,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
}

// DisplayName joins the non-empty name parts with single spaces.
// A person with no name parts at all displays as their ID so a card is
// never rendered blank.
func (p Person) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.GivenName, p.MiddleName, p.FamilyName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return p.ID
	}
	return strings.Join(parts, " ")
}

// Lifespan formats the birth and death years for card subtitles.
// Returns "1901 – 1975" when both are known, "b. 1901" for the living or
// death-unknown, and "" when nothing is known.
func (p Person) Lifespan() string {
	birth := yearOf(p.BirthDate)
	death := yearOf(p.DeathDate)
	switch {
	case birth != "" && death != "":
		return birth + " – " + death
	case birth != "":
		return "b. " + birth
	case death != "":
		return "d. " + death
	default:
		return ""
	}
}

// yearOf extracts the leading year from an ISO-8601 date string.
func yearOf(date string) string {
	if date == "" {
		return ""
	}
	if i := strings.IndexByte(date, '-'); i > 0 {
		return date[:i]
	}
	return date
}
