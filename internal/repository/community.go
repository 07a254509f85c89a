// internal/repository/community.go
package repository

import (
	"context"

	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"gorm.io/gorm"
)

type CommunityRepositoryIface interface {
	Save(ctx context.Context, community *model.Community) error
	UpsertByName(ctx context.Context, community *model.Community) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.Community, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	List(ctx context.Context, p query.Predicate, offset, limit int) ([]*model.Community, error)
	Locations(ctx context.Context) ([]string, error)
	Recent(ctx context.Context, limit int) ([]*model.Community, error)
}

type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// Save creates or updates community, recomputing its slug.
func (r *CommunityRepository) Save(ctx context.Context, community *model.Community) error {
	return saveRecord(ctx, r.db, community)
}

// UpsertByName saves community over the existing record with the same name, if any.
func (r *CommunityRepository) UpsertByName(ctx context.Context, community *model.Community) (bool, error) {
	return upsertRecord(ctx, r.db, community)
}

func (r *CommunityRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &model.Community{})
}

func (r *CommunityRepository) FindBySlug(ctx context.Context, slug string) (*model.Community, error) {
	var community model.Community
	if err := findBySlug(ctx, r.db, &community, slug); err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	return countWhere(ctx, r.db, &model.Community{}, p)
}

// List returns communities matching p ordered by name.
func (r *CommunityRepository) List(ctx context.Context, p query.Predicate, offset, limit int) ([]*model.Community, error) {
	communities := []*model.Community{}
	if err := listWhere(ctx, r.db, &communities, p, offset, limit); err != nil {
		return nil, err
	}
	return communities, nil
}

// Locations returns the distinct non-empty locations.
func (r *CommunityRepository) Locations(ctx context.Context) ([]string, error) {
	return facetValues(ctx, r.db, &model.Community{}, "location")
}

func (r *CommunityRepository) Recent(ctx context.Context, limit int) ([]*model.Community, error) {
	communities := []*model.Community{}
	if err := recentFirst(ctx, r.db, &communities, limit); err != nil {
		return nil, err
	}
	return communities, nil
}
