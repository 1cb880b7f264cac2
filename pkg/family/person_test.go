package family

import "testing"

func TestPersonDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{
			name:   "all parts",
			person: Person{ID: "p1", GivenName: "Ada", MiddleName: "Byron", FamilyName: "Lovelace"},
			want:   "Ada Byron Lovelace",
		},
		{
			name:   "no middle name",
			person: Person{ID: "p1", GivenName: "Ada", FamilyName: "Lovelace"},
			want:   "Ada Lovelace",
		},
		{
			name:   "given name only",
			person: Person{ID: "p1", GivenName: "Ada"},
			want:   "Ada",
		},
		{
			name:   "no names falls back to id",
			person: Person{ID: "p1"},
			want:   "p1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.person.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPersonLifespan(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{
			name:   "birth and death",
			person: Person{BirthDate: "1815-12-10", DeathDate: "1852-11-27"},
			want:   "1815 – 1852",
		},
		{
			name:   "birth only",
			person: Person{BirthDate: "1990-04-01"},
			want:   "b. 1990",
		},
		{
			name:   "death only",
			person: Person{DeathDate: "1852-11-27"},
			want:   "d. 1852",
		},
		{
			name:   "bare year",
			person: Person{BirthDate: "1815"},
			want:   "b. 1815",
		},
		{
			name:   "nothing known",
			person: Person{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.person.Lifespan(); got != tt.want {
				t.Errorf("Lifespan() = %q, want %q", got, tt.want)
			}
		})
	}
}
