package serializer

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/hub/internal/model"
)

type PersonView struct {
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	URL          string       `json:"url"`
	Role         string       `json:"role"`
	Interests    []string     `json:"interests"`
	Availability string       `json:"availability"`
	AvatarURL    string       `json:"avatar_url"`
	Bio          string       `json:"bio"`
	SocialLinks  []model.Link `json:"social_links"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type CommunityView struct {
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	URL          string            `json:"url"`
	Focus        string            `json:"focus"`
	Location     string            `json:"location"`
	Contact      string            `json:"contact"`
	Links        map[string]string `json:"links"`
	LinksDisplay []model.Link      `json:"links_display"`
	LinkItems    []model.Link      `json:"link_items"`
	LogoURL      string            `json:"logo_url"`
	Description  string            `json:"description"`
	FoundedYear  *int              `json:"founded_year"`
	MemberCount  *int              `json:"member_count"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type SchoolView struct {
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	URL             string    `json:"url"`
	City            string    `json:"city"`
	Programs        []string  `json:"programs"`
	ProgramsDisplay string    `json:"programs_display"`
	Contact         string    `json:"contact"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func personView(input any) (any, error) {
	p, err := deref[model.Person](input)
	if err != nil {
		return nil, err
	}
	return PersonView{
		Name:         p.Name,
		Slug:         p.Slug,
		URL:          p.URL(),
		Role:         p.Role,
		Interests:    p.InterestList(),
		Availability: p.Availability,
		AvatarURL:    p.AvatarURL,
		Bio:          p.Bio,
		SocialLinks:  nonNil(p.SocialLinks()),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

func communityView(input any) (any, error) {
	c, err := deref[model.Community](input)
	if err != nil {
		return nil, err
	}
	return CommunityView{
		Name:         c.Name,
		Slug:         c.Slug,
		URL:          c.URL(),
		Focus:        c.Focus,
		Location:     c.Location,
		Contact:      c.Contact,
		Links:        c.LinkMap(),
		LinksDisplay: nonNil(c.LinksDisplay()),
		LinkItems:    nonNil(c.LinkItems()),
		LogoURL:      c.LogoURL,
		Description:  c.Description,
		FoundedYear:  c.FoundedYear,
		MemberCount:  c.MemberCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}, nil
}

func schoolView(input any) (any, error) {
	s, err := deref[model.School](input)
	if err != nil {
		return nil, err
	}
	return SchoolView{
		Name:            s.Name,
		Slug:            s.Slug,
		URL:             s.URL(),
		City:            s.City,
		Programs:        s.ProgramList(),
		ProgramsDisplay: s.ProgramsDisplay(),
		Contact:         s.Contact,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}

func deref[T any](input any) (*T, error) {
	switch v := input.(type) {
	case *T:
		if v == nil {
			return nil, fmt.Errorf("nil %T", input)
		}
		return v, nil
	case T:
		return &v, nil
	}
	return nil, fmt.Errorf("unexpected model %T", input)
}

func nonNil(links []model.Link) []model.Link {
	if links == nil {
		return []model.Link{}
	}
	return links
}

func init() {
	Register(model.Person{}, SerializerFunc(personView))
	Register(model.Community{}, SerializerFunc(communityView))
	Register(model.School{}, SerializerFunc(schoolView))
}
