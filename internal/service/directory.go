package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"github.com/dangerclosesec/hub/internal/repository"
)

const (
	// minQueryLength is the shortest suggestion query that reaches the store.
	minQueryLength  = 2
	suggestionLimit = 5
	recentLimit     = 3
)

// DirectoryService serves the read side of the directory.
type DirectoryService struct {
	people      repository.PersonRepositoryIface
	communities repository.CommunityRepositoryIface
	schools     repository.SchoolRepositoryIface
}

func NewDirectoryService(
	people repository.PersonRepositoryIface,
	communities repository.CommunityRepositoryIface,
	schools repository.SchoolRepositoryIface,
) *DirectoryService {
	return &DirectoryService{
		people:      people,
		communities: communities,
		schools:     schools,
	}
}

// ListOutput is one page of records plus the facet values of the kind.
type ListOutput[T any] struct {
	Items  []T
	Page   Page
	Facets []string
}

type HomeOutput struct {
	PeopleCount       int64
	CommunityCount    int64
	SchoolCount       int64
	RecentPeople      []*model.Person
	RecentCommunities []*model.Community
}

// Home returns the counts of each kind and the newest people and communities.
func (s *DirectoryService) Home(ctx context.Context) (*HomeOutput, error) {
	var (
		out HomeOutput
		err error
	)
	if out.PeopleCount, err = s.people.Count(ctx, query.Predicate{}); err != nil {
		return nil, fmt.Errorf("counting people: %w", err)
	}
	if out.CommunityCount, err = s.communities.Count(ctx, query.Predicate{}); err != nil {
		return nil, fmt.Errorf("counting communities: %w", err)
	}
	if out.SchoolCount, err = s.schools.Count(ctx, query.Predicate{}); err != nil {
		return nil, fmt.Errorf("counting schools: %w", err)
	}
	if out.RecentPeople, err = s.people.Recent(ctx, recentLimit); err != nil {
		return nil, fmt.Errorf("listing recent people: %w", err)
	}
	if out.RecentCommunities, err = s.communities.Recent(ctx, recentLimit); err != nil {
		return nil, fmt.Errorf("listing recent communities: %w", err)
	}
	return &out, nil
}

func (s *DirectoryService) ListPeople(ctx context.Context, params query.PersonParams, rawPage string) (*ListOutput[*model.Person], error) {
	return list(ctx, params.Predicate(), rawPage, s.people.Count, s.people.List, s.people.Roles)
}

func (s *DirectoryService) ListCommunities(ctx context.Context, params query.CommunityParams, rawPage string) (*ListOutput[*model.Community], error) {
	return list(ctx, params.Predicate(), rawPage, s.communities.Count, s.communities.List, s.communities.Locations)
}

func (s *DirectoryService) ListSchools(ctx context.Context, params query.SchoolParams, rawPage string) (*ListOutput[*model.School], error) {
	return list(ctx, params.Predicate(), rawPage, s.schools.Count, s.schools.List, s.schools.Cities)
}

func list[T any](
	ctx context.Context,
	p query.Predicate,
	rawPage string,
	count func(context.Context, query.Predicate) (int64, error),
	fetch func(context.Context, query.Predicate, int, int) ([]T, error),
	facets func(context.Context) ([]string, error),
) (*ListOutput[T], error) {
	total, err := count(ctx, p)
	if err != nil {
		return nil, err
	}

	page := Paginate(total, rawPage)
	items, err := fetch(ctx, p, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}

	values, err := facets(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOutput[T]{Items: items, Page: page, Facets: values}, nil
}

// GetPerson returns the person with slug or a *domain.NotFoundError.
func (s *DirectoryService) GetPerson(ctx context.Context, slug string) (*model.Person, error) {
	return s.people.FindBySlug(ctx, slug)
}

func (s *DirectoryService) GetCommunity(ctx context.Context, slug string) (*model.Community, error) {
	return s.communities.FindBySlug(ctx, slug)
}

func (s *DirectoryService) GetSchool(ctx context.Context, slug string) (*model.School, error) {
	return s.schools.FindBySlug(ctx, slug)
}

type PersonSuggestion struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CommunitySuggestion struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	URL      string `json:"url"`
	LogoURL  string `json:"logo_url,omitempty"`
}

type SchoolSuggestion struct {
	Name string `json:"name"`
	City string `json:"city"`
	URL  string `json:"url"`
}

type SearchOutput struct {
	People      []PersonSuggestion    `json:"people"`
	Communities []CommunitySuggestion `json:"communities"`
	Schools     []SchoolSuggestion    `json:"schools"`
}

// Search returns up to five suggestions per kind for q. Queries shorter than two
// characters return empty lists without touching the store.
func (s *DirectoryService) Search(ctx context.Context, q string) (*SearchOutput, error) {
	out := &SearchOutput{
		People:      []PersonSuggestion{},
		Communities: []CommunitySuggestion{},
		Schools:     []SchoolSuggestion{},
	}

	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < minQueryLength {
		return out, nil
	}

	people, err := s.people.List(ctx, query.PersonSuggest(q), 0, suggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("searching people: %w", err)
	}
	for _, p := range people {
		out.People = append(out.People, PersonSuggestion{Name: p.Name, Role: p.Role, URL: p.URL(), AvatarURL: p.AvatarURL})
	}

	communities, err := s.communities.List(ctx, query.CommunitySuggest(q), 0, suggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("searching communities: %w", err)
	}
	for _, c := range communities {
		out.Communities = append(out.Communities, CommunitySuggestion{Name: c.Name, Location: c.Location, URL: c.URL(), LogoURL: c.LogoURL})
	}

	schools, err := s.schools.List(ctx, query.SchoolSuggest(q), 0, suggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("searching schools: %w", err)
	}
	for _, sc := range schools {
		out.Schools = append(out.Schools, SchoolSuggestion{Name: sc.Name, City: sc.City, URL: sc.URL()})
	}

	return out, nil
}
