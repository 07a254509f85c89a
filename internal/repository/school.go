// internal/repository/school.go
package repository

import (
	"context"

	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"gorm.io/gorm"
)

type SchoolRepositoryIface interface {
	Save(ctx context.Context, school *model.School) error
	UpsertByName(ctx context.Context, school *model.School) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.School, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	List(ctx context.Context, p query.Predicate, offset, limit int) ([]*model.School, error)
	Cities(ctx context.Context) ([]string, error)
	Recent(ctx context.Context, limit int) ([]*model.School, error)
}

type SchoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// Save creates or updates school, recomputing its slug.
func (r *SchoolRepository) Save(ctx context.Context, school *model.School) error {
	return saveRecord(ctx, r.db, school)
}

// UpsertByName saves school over the existing record with the same name, if any.
func (r *SchoolRepository) UpsertByName(ctx context.Context, school *model.School) (bool, error) {
	return upsertRecord(ctx, r.db, school)
}

func (r *SchoolRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &model.School{})
}

func (r *SchoolRepository) FindBySlug(ctx context.Context, slug string) (*model.School, error) {
	var school model.School
	if err := findBySlug(ctx, r.db, &school, slug); err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	return countWhere(ctx, r.db, &model.School{}, p)
}

// List returns schools matching p ordered by name.
func (r *SchoolRepository) List(ctx context.Context, p query.Predicate, offset, limit int) ([]*model.School, error) {
	schools := []*model.School{}
	if err := listWhere(ctx, r.db, &schools, p, offset, limit); err != nil {
		return nil, err
	}
	return schools, nil
}

// Cities returns the distinct non-empty cities.
func (r *SchoolRepository) Cities(ctx context.Context) ([]string, error) {
	return facetValues(ctx, r.db, &model.School{}, "city")
}

func (r *SchoolRepository) Recent(ctx context.Context, limit int) ([]*model.School, error) {
	schools := []*model.School{}
	if err := recentFirst(ctx, r.db, &schools, limit); err != nil {
		return nil, err
	}
	return schools, nil
}
