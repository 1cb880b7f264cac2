package memory

import "github.com/kintreeapp/kintree/pkg/family"

// SeedDemo populates the store with a small three-generation family and
// returns the focal person. Used by `kintree serve --demo` and `kintree
// browse` when no data source is configured.
func SeedDemo(s *Store) family.Person {
	pierre := s.AddPerson(family.Person{GivenName: "Pierre", FamilyName: "Curie", BirthDate: "1859-05-15", DeathDate: "1906-04-19", Gender: family.GenderMale})
	wladyslaw := s.AddPerson(family.Person{GivenName: "Władysław", FamilyName: "Skłodowski", BirthDate: "1832-10-20", DeathDate: "1902-05-14", Gender: family.GenderMale})
	bronislawa := s.AddPerson(family.Person{GivenName: "Bronisława", FamilyName: "Boguska", BirthDate: "1836-01-01", DeathDate: "1878-05-09", Gender: family.GenderFemale})

	marie := s.AddPerson(family.Person{GivenName: "Marie", MiddleName: "Salomea", FamilyName: "Skłodowska-Curie", BirthDate: "1867-11-07", DeathDate: "1934-07-04", Gender: family.GenderFemale})
	bronya := s.AddPerson(family.Person{GivenName: "Bronisława", FamilyName: "Dłuska", BirthDate: "1865-03-28", DeathDate: "1939-04-15", Gender: family.GenderFemale})
	helena := s.AddPerson(family.Person{GivenName: "Helena", FamilyName: "Szalay", BirthDate: "1866-01-01", DeathDate: "1961-01-01", Gender: family.GenderFemale})

	irene := s.AddPerson(family.Person{GivenName: "Irène", FamilyName: "Joliot-Curie", BirthDate: "1897-09-12", DeathDate: "1956-03-17", Gender: family.GenderFemale})
	eve := s.AddPerson(family.Person{GivenName: "Ève", FamilyName: "Curie", BirthDate: "1904-12-06", DeathDate: "2007-10-22", Gender: family.GenderFemale})

	for _, child := range []string{marie.ID, bronya.ID, helena.ID} {
		s.LinkParent(wladyslaw.ID, child)
		s.LinkParent(bronislawa.ID, child)
	}
	s.LinkSpouses(marie.ID, pierre.ID)
	for _, child := range []string{irene.ID, eve.ID} {
		s.LinkParent(marie.ID, child)
		s.LinkParent(pierre.ID, child)
	}

	return marie
}
