package seed

import (
	"encoding/json"

	"github.com/dangerclosesec/hub/internal/model"
	"gorm.io/datatypes"
)

type personFixture struct {
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Interests    json.RawMessage `json:"interests"`
	Availability string          `json:"availability"`
	AvatarURL    string          `json:"avatar_url"`
	Bio          string          `json:"bio"`
	GithubURL    string          `json:"github_url"`
	TwitterURL   string          `json:"twitter_url"`
	LinkedinURL  string          `json:"linkedin_url"`
	WebsiteURL   string          `json:"website_url"`
}

func (f personFixture) record() model.Record {
	return &model.Person{
		Slugged:      model.Slugged{Name: f.Name},
		Role:         f.Role,
		Interests:    datatypes.JSON(f.Interests),
		Availability: f.Availability,
		AvatarURL:    f.AvatarURL,
		Bio:          f.Bio,
		GithubURL:    f.GithubURL,
		TwitterURL:   f.TwitterURL,
		LinkedinURL:  f.LinkedinURL,
		WebsiteURL:   f.WebsiteURL,
	}
}

type communityFixture struct {
	Name        string          `json:"name"`
	Focus       string          `json:"focus"`
	Location    string          `json:"location"`
	Contact     string          `json:"contact"`
	Links       json.RawMessage `json:"links"`
	LogoURL     string          `json:"logo_url"`
	Description string          `json:"description"`
	FoundedYear *int            `json:"founded_year"`
	MemberCount *int            `json:"member_count"`
}

func (f communityFixture) record() model.Record {
	return &model.Community{
		Slugged:     model.Slugged{Name: f.Name},
		Focus:       f.Focus,
		Location:    f.Location,
		Contact:     f.Contact,
		Links:       datatypes.JSON(f.Links),
		LogoURL:     f.LogoURL,
		Description: f.Description,
		FoundedYear: f.FoundedYear,
		MemberCount: f.MemberCount,
	}
}

type schoolFixture struct {
	Name     string          `json:"name"`
	City     string          `json:"city"`
	Programs json.RawMessage `json:"programs"`
	Contact  string          `json:"contact"`
}

func (f schoolFixture) record() model.Record {
	return &model.School{
		Slugged:  model.Slugged{Name: f.Name},
		City:     f.City,
		Programs: datatypes.JSON(f.Programs),
		Contact:  f.Contact,
	}
}

// decodeEntry turns one fixture object into a record of kind. The returned name is
// empty when the entry has none.
func decodeEntry(kind model.Kind, raw json.RawMessage) (string, model.Record, error) {
	switch kind {
	case model.KindPerson:
		var f personFixture
		if err := json.Unmarshal(raw, &f); err != nil {
			return "", nil, err
		}
		return f.Name, f.record(), nil
	case model.KindCommunity:
		var f communityFixture
		if err := json.Unmarshal(raw, &f); err != nil {
			return "", nil, err
		}
		return f.Name, f.record(), nil
	case model.KindSchool:
		var f schoolFixture
		if err := json.Unmarshal(raw, &f); err != nil {
			return "", nil, err
		}
		return f.Name, f.record(), nil
	}
	return "", nil, errUnknownKind(kind)
}
