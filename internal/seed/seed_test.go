package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/hub/internal/config"
	"github.com/dangerclosesec/hub/internal/database"
	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"github.com/dangerclosesec/hub/internal/repository"
	"github.com/dangerclosesec/hub/internal/seed"
	"github.com/dangerclosesec/hub/internal/service"
	"github.com/dangerclosesec/hub/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	existing map[string]bool
	upserted []model.Record
	purged   []model.Kind
	failOn   string
}

func (s *fakeStore) Upsert(_ context.Context, rec model.Record) (bool, error) {
	name := rec.Base().Name
	if name == s.failOn {
		return false, &domain.InvalidNameError{Name: name}
	}
	s.upserted = append(s.upserted, rec)
	if s.existing[name] {
		return false, nil
	}
	if s.existing == nil {
		s.existing = map[string]bool{}
	}
	s.existing[name] = true
	return true, nil
}

func (s *fakeStore) Purge(_ context.Context, kind model.Kind) (int64, error) {
	s.purged = append(s.purged, kind)
	n := int64(len(s.existing))
	s.existing = nil
	return n, nil
}

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestLoadCountsCreatedUpdatedAndSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "people.json", `[
		{"name": "Ada Lovelace", "role": "Engineer", "interests": ["math"]},
		{"role": "Nameless"},
		{"name": "Grace Hopper"}
	]`)

	store := &fakeStore{existing: map[string]bool{"Grace Hopper": true}}
	loader := seed.NewLoader(store, dir, quietLogger())

	res, err := loader.Load(context.Background(), model.KindPerson, seed.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Failures)
	assert.Empty(t, store.purged)
	assert.Equal(t, "Seeding complete. Created 1 and updated 1 people entries.", res.String())

	p := store.upserted[0].(*model.Person)
	assert.Equal(t, "Engineer", p.Role)
	assert.Equal(t, []string{"math"}, p.InterestList())
}

func TestLoadRefreshPurgesFirst(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "schools.json", `[{"name": "Le Wagon", "city": "Paris", "programs": ["Web"]}]`)

	store := &fakeStore{existing: map[string]bool{"Le Wagon": true, "Old School": true}}
	loader := seed.NewLoader(store, dir, quietLogger())

	res, err := loader.Load(context.Background(), model.KindSchool, seed.Options{Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, []model.Kind{model.KindSchool}, store.purged)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Equal(t, 1, res.Created)
}

func TestLoadFixtureErrors(t *testing.T) {
	cases := map[string]string{
		"missing":   "",
		"object":    `{"name": "Not a list"}`,
		"empty":     "   ",
		"truncated": `[{"name": "Ada"`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if body != "" {
				writeFixture(t, dir, "communities.json", body)
			}

			store := &fakeStore{existing: map[string]bool{"Keep Me": true}}
			loader := seed.NewLoader(store, dir, quietLogger())

			_, err := loader.Load(context.Background(), model.KindCommunity, seed.Options{Refresh: true})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrFixture)

			var ferr *domain.FixtureLoadError
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, filepath.Join(dir, "communities.json"), ferr.Path)

			assert.Empty(t, store.purged, "nothing is deleted when the fixture is unusable")
			assert.Empty(t, store.upserted)
		})
	}
}

func TestLoadReportsEntryFailures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "communities.json", `[
		{"name": "!!!"},
		{"name": "Gophers", "founded_year": "old"},
		{"name": "Rustaceans", "founded_year": 2015}
	]`)

	store := &fakeStore{failOn: "!!!"}
	loader := seed.NewLoader(store, dir, quietLogger())

	res, err := loader.Load(context.Background(), model.KindCommunity, seed.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, "!!!", res.Failures[0].Name)
	assert.ErrorIs(t, res.Failures[0].Err, domain.ErrInvalidName)
	assert.Equal(t, 1, res.Failures[1].Index)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]model.Kind{
		"people":      model.KindPerson,
		"person":      model.KindPerson,
		"Communities": model.KindCommunity,
		"schools":     model.KindSchool,
	} {
		got, err := seed.ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := seed.ParseKind("planets")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadThroughEntityStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Database.Driver = database.DriverSQLite
	cfg.Database.Path = filepath.Join(dir, "hub.db")
	cfg.Database.LogLevel = "silent"

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	people := repository.NewPersonRepository(db)
	store := service.NewEntityStore(
		people,
		repository.NewCommunityRepository(db),
		repository.NewSchoolRepository(db),
		validation.New(),
	)
	loader := seed.NewLoader(store, dir, quietLogger())

	writeFixture(t, dir, "people.json", `[
		{"name": "John Doe", "role": "Developer", "interests": ["Go"]},
		{"name": "john doe", "role": "Designer"},
		{"name": "Bad Link", "github_url": "github.com/bad"},
		{"name": "Wrong Shape", "interests": "Go"}
	]`)

	res, err := loader.Load(ctx, model.KindPerson, seed.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Failures, 2)
	assert.ErrorIs(t, res.Failures[0].Err, domain.ErrValidation)
	assert.ErrorIs(t, res.Failures[1].Err, domain.ErrValidation)

	second, err := people.FindBySlug(ctx, "john-doe-2")
	require.NoError(t, err)
	assert.Equal(t, "john doe", second.Name)

	writeFixture(t, dir, "people.json", `[{"name": "John Doe", "role": "Lead"}]`)

	res, err = loader.Load(ctx, model.KindPerson, seed.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)

	first, err := people.FindBySlug(ctx, "john-doe")
	require.NoError(t, err)
	assert.Equal(t, "Lead", first.Role)

	res, err = loader.Load(ctx, model.KindPerson, seed.Options{Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Equal(t, 1, res.Created)

	n, err := people.Count(ctx, query.Predicate{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
