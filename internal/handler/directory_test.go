package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/handler"
	"github.com/dangerclosesec/hub/internal/mocks"
	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"github.com/dangerclosesec/hub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	people      *mocks.MockPersonRepositoryIface
	communities *mocks.MockCommunityRepositoryIface
	schools     *mocks.MockSchoolRepositoryIface
	router      http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		people:      mocks.NewMockPersonRepositoryIface(ctrl),
		communities: mocks.NewMockCommunityRepositoryIface(ctrl),
		schools:     mocks.NewMockSchoolRepositoryIface(ctrl),
	}

	svc := service.NewDirectoryService(f.people, f.communities, f.schools)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	f.router = handler.NewRouter(logger, handler.RouterConfig{}, handler.NewDirectoryHandler(svc))
	return f
}

func (f *fixture) get(t *testing.T, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec, body := f.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestSearchAPI(t *testing.T) {
	t.Run("short query", func(t *testing.T) {
		f := newFixture(t)

		rec, body := f.get(t, "/api/search/?q=a")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, []any{}, body["people"])
		assert.Equal(t, []any{}, body["communities"])
		assert.Equal(t, []any{}, body["schools"])
	})

	t.Run("matching person", func(t *testing.T) {
		f := newFixture(t)

		f.people.EXPECT().List(gomock.Any(), query.PersonSuggest("john"), 0, 5).
			Return([]*model.Person{{Slugged: model.Slugged{Name: "John Doe", Slug: "john-doe"}, Role: "Developer"}}, nil)
		f.communities.EXPECT().List(gomock.Any(), gomock.Any(), 0, 5).Return(nil, nil)
		f.schools.EXPECT().List(gomock.Any(), gomock.Any(), 0, 5).Return(nil, nil)

		rec, body := f.get(t, "/api/search/?q=john")
		assert.Equal(t, http.StatusOK, rec.Code)

		people := body["people"].([]any)
		require.Len(t, people, 1)
		assert.Equal(t, map[string]any{"name": "John Doe", "role": "Developer", "url": "/people/john-doe/"}, people[0])
		assert.Equal(t, []any{}, body["communities"])
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		f := newFixture(t)

		f.people.EXPECT().List(gomock.Any(), gomock.Any(), 0, 5).Return(nil, errors.New("connection reset"))

		rec, body := f.get(t, "/api/search/?q=john")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["ok"])
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestListPeople(t *testing.T) {
	f := newFixture(t)

	params := query.PersonParams{Interest: "React", Role: "Developer"}
	f.people.EXPECT().Count(gomock.Any(), params.Predicate()).Return(int64(2), nil)
	f.people.EXPECT().List(gomock.Any(), params.Predicate(), 0, service.PageSize).Return([]*model.Person{
		{Slugged: model.Slugged{Name: "Jane Roe", Slug: "jane-roe"}, Role: "Developer", Interests: model.StringList("React")},
		{Slugged: model.Slugged{Name: "Sam Poe", Slug: "sam-poe"}, Role: "Developer", Interests: model.StringList("React", "Go")},
	}, nil)
	f.people.EXPECT().Roles(gomock.Any()).Return([]string{"Designer", "Developer"}, nil)

	rec, body := f.get(t, "/people/?interest=React&role=Developer&page=x")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, body["people"], 2)
	assert.Equal(t, []any{"Designer", "Developer"}, body["roles"])

	page := body["page"].(map[string]any)
	assert.EqualValues(t, 1, page["number"])
	assert.EqualValues(t, 2, page["total"])

	filters := body["filters"].(map[string]any)
	assert.Equal(t, "React", filters["interest"])
}

func TestListSchoolsEmpty(t *testing.T) {
	f := newFixture(t)

	f.schools.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.schools.EXPECT().List(gomock.Any(), gomock.Any(), 0, service.PageSize).Return(nil, nil)
	f.schools.EXPECT().Cities(gomock.Any()).Return(nil, nil)

	rec, body := f.get(t, "/schools/?city=Nowhere")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["schools"])
	assert.Equal(t, []any{}, body["cities"])
}

func TestDetail(t *testing.T) {
	t.Run("community", func(t *testing.T) {
		f := newFixture(t)

		f.communities.EXPECT().FindBySlug(gomock.Any(), "go-paris").Return(&model.Community{
			Slugged: model.Slugged{Name: "Go Paris", Slug: "go-paris"},
			Links:   model.StringMap(map[string]string{"website": "https://go.paris", "linkedin": "https://linkedin.com/go"}),
		}, nil)

		rec, body := f.get(t, "/communities/go-paris/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Go Paris", body["name"])
		assert.Len(t, body["link_items"], 1)
		assert.Len(t, body["links_display"], 2)
	})

	t.Run("missing person", func(t *testing.T) {
		f := newFixture(t)

		f.people.EXPECT().FindBySlug(gomock.Any(), "nobody").
			Return(nil, &domain.NotFoundError{Kind: "person", Slug: "nobody"})

		rec, body := f.get(t, "/people/nobody/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("unknown route", func(t *testing.T) {
		f := newFixture(t)

		rec, _ := f.get(t, "/planets/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHome(t *testing.T) {
	f := newFixture(t)

	f.people.EXPECT().Count(gomock.Any(), query.Predicate{}).Return(int64(3), nil)
	f.communities.EXPECT().Count(gomock.Any(), query.Predicate{}).Return(int64(1), nil)
	f.schools.EXPECT().Count(gomock.Any(), query.Predicate{}).Return(int64(0), nil)
	f.people.EXPECT().Recent(gomock.Any(), 3).Return([]*model.Person{{Slugged: model.Slugged{Name: "Ada", Slug: "ada"}}}, nil)
	f.communities.EXPECT().Recent(gomock.Any(), 3).Return(nil, nil)

	rec, body := f.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	counts := body["counts"].(map[string]any)
	assert.EqualValues(t, 3, counts["people"])
	assert.EqualValues(t, 0, counts["schools"])
	assert.Len(t, body["recent_people"], 1)
	assert.Equal(t, []any{}, body["recent_communities"])
}
