// internal/repository/person.go
package repository

import (
	"context"

	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"gorm.io/gorm"
)

type PersonRepositoryIface interface {
	Save(ctx context.Context, person *model.Person) error
	UpsertByName(ctx context.Context, person *model.Person) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.Person, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	List(ctx context.Context, p query.Predicate, offset, limit int) ([]*model.Person, error)
	Roles(ctx context.Context) ([]string, error)
	Recent(ctx context.Context, limit int) ([]*model.Person, error)
}

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Save creates or updates person, recomputing its slug.
func (r *PersonRepository) Save(ctx context.Context, person *model.Person) error {
	return saveRecord(ctx, r.db, person)
}

// UpsertByName saves person over the existing record with the same name, if any.
func (r *PersonRepository) UpsertByName(ctx context.Context, person *model.Person) (bool, error) {
	return upsertRecord(ctx, r.db, person)
}

func (r *PersonRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &model.Person{})
}

func (r *PersonRepository) FindBySlug(ctx context.Context, slug string) (*model.Person, error) {
	var person model.Person
	if err := findBySlug(ctx, r.db, &person, slug); err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	return countWhere(ctx, r.db, &model.Person{}, p)
}

// List returns people matching p ordered by name.
func (r *PersonRepository) List(ctx context.Context, p query.Predicate, offset, limit int) ([]*model.Person, error) {
	people := []*model.Person{}
	if err := listWhere(ctx, r.db, &people, p, offset, limit); err != nil {
		return nil, err
	}
	return people, nil
}

// Roles returns the distinct non-empty roles.
func (r *PersonRepository) Roles(ctx context.Context) ([]string, error) {
	return facetValues(ctx, r.db, &model.Person{}, "role")
}

func (r *PersonRepository) Recent(ctx context.Context, limit int) ([]*model.Person, error) {
	people := []*model.Person{}
	if err := recentFirst(ctx, r.db, &people, limit); err != nil {
		return nil, err
	}
	return people, nil
}
