package query

// PersonParams are the recognised filters of the people list.
type PersonParams struct {
	Search       string `json:"search"`
	Role         string `json:"role"`
	Interest     string `json:"interest"`
	Availability string `json:"availability"`
}

func (p PersonParams) Predicate() Predicate {
	return Predicate{}.
		And(p.Search, PersonName, PersonBio, PersonInterests, PersonAvailability, PersonRole).
		And(p.Role, PersonRole).
		And(p.Interest, PersonInterests).
		And(p.Availability, PersonAvailability)
}

// CommunityParams are the recognised filters of the communities list.
type CommunityParams struct {
	Search   string `json:"search"`
	Location string `json:"location"`
	Focus    string `json:"focus"`
}

func (p CommunityParams) Predicate() Predicate {
	return Predicate{}.
		And(p.Search, CommunityName, CommunityDescription, CommunityFocus).
		And(p.Location, CommunityLocation).
		And(p.Focus, CommunityFocus)
}

// SchoolParams are the recognised filters of the schools list.
type SchoolParams struct {
	Search string `json:"search"`
	City   string `json:"city"`
}

func (p SchoolParams) Predicate() Predicate {
	return Predicate{}.
		And(p.Search, SchoolName, SchoolPrograms).
		And(p.City, SchoolCity)
}

// PersonSuggest matches q against name, role and bio.
func PersonSuggest(q string) Predicate {
	return Predicate{}.And(q, PersonName, PersonRole, PersonBio)
}

// CommunitySuggest matches q against name, focus and location.
func CommunitySuggest(q string) Predicate {
	return Predicate{}.And(q, CommunityName, CommunityFocus, CommunityLocation)
}

// SchoolSuggest matches q against name, city and programs.
func SchoolSuggest(q string) Predicate {
	return Predicate{}.And(q, SchoolName, SchoolCity, SchoolPrograms)
}
