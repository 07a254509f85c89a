package query

// Person fields
var (
	PersonName         = Field{Name: "name", Column: "name"}
	PersonRole         = Field{Name: "role", Column: "role"}
	PersonBio          = Field{Name: "bio", Column: "bio"}
	PersonInterests    = Field{Name: "interests", Column: "interests", Serialized: true}
	PersonAvailability = Field{Name: "availability", Column: "availability"}
)

// Community fields
var (
	CommunityName        = Field{Name: "name", Column: "name"}
	CommunityDescription = Field{Name: "description", Column: "description"}
	CommunityFocus       = Field{Name: "focus", Column: "focus"}
	CommunityLocation    = Field{Name: "location", Column: "location"}
)

// School fields
var (
	SchoolName     = Field{Name: "name", Column: "name"}
	SchoolCity     = Field{Name: "city", Column: "city"}
	SchoolPrograms = Field{Name: "programs", Column: "programs", Serialized: true}
)
