package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/repository"
	"github.com/dangerclosesec/hub/internal/validation"
)

// EntityStore is the write side of the directory. Every write is validated first; a
// validation, name or slug error means nothing was written.
type EntityStore struct {
	people      repository.PersonRepositoryIface
	communities repository.CommunityRepositoryIface
	schools     repository.SchoolRepositoryIface
	validator   *validation.Validator
}

func NewEntityStore(
	people repository.PersonRepositoryIface,
	communities repository.CommunityRepositoryIface,
	schools repository.SchoolRepositoryIface,
	validator *validation.Validator,
) *EntityStore {
	return &EntityStore{
		people:      people,
		communities: communities,
		schools:     schools,
		validator:   validator,
	}
}

// Save creates or updates rec.
func (s *EntityStore) Save(ctx context.Context, rec model.Record) error {
	if err := s.validator.Validate(rec); err != nil {
		return err
	}

	switch r := rec.(type) {
	case *model.Person:
		return s.people.Save(ctx, r)
	case *model.Community:
		return s.communities.Save(ctx, r)
	case *model.School:
		return s.schools.Save(ctx, r)
	}
	return fmt.Errorf("%w: unsupported record %T", domain.ErrInvalidInput, rec)
}

// Upsert writes rec over the record with the same name, creating it if there is none.
func (s *EntityStore) Upsert(ctx context.Context, rec model.Record) (bool, error) {
	if err := s.validator.Validate(rec); err != nil {
		return false, err
	}

	switch r := rec.(type) {
	case *model.Person:
		return s.people.UpsertByName(ctx, r)
	case *model.Community:
		return s.communities.UpsertByName(ctx, r)
	case *model.School:
		return s.schools.UpsertByName(ctx, r)
	}
	return false, fmt.Errorf("%w: unsupported record %T", domain.ErrInvalidInput, rec)
}

// Purge deletes every record of kind.
func (s *EntityStore) Purge(ctx context.Context, kind model.Kind) (int64, error) {
	switch kind {
	case model.KindPerson:
		return s.people.DeleteAll(ctx)
	case model.KindCommunity:
		return s.communities.DeleteAll(ctx)
	case model.KindSchool:
		return s.schools.DeleteAll(ctx)
	}
	return 0, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
}
