// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/query"
	"github.com/dangerclosesec/hub/internal/slug"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// uniqueViolation is the postgres SQLSTATE for a unique index violation.
	uniqueViolation = "23505"
	// sqliteConstraintUnique is SQLITE_CONSTRAINT_UNIQUE; the driver reports extended codes.
	sqliteConstraintUnique = 2067
)

// saveRecord assigns rec a slug and writes it. The duplicate-name check, slug collection
// and write share one transaction so that nothing is written when any step fails.
func saveRecord(ctx context.Context, db *gorm.DB, rec model.Record) error {
	kind := string(rec.Kind())
	b := rec.Base()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base, err := slug.Make(b.Name)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(rec).
			Where("name = ? AND id <> ?", b.Name, b.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking name: %w", err)
		}
		if count > 0 {
			return &domain.DuplicateNameError{Kind: kind, Name: b.Name}
		}

		var taken []string
		if err := tx.Model(rec).
			Where("(slug = ? OR slug LIKE ?) AND id <> ?", base, base+"-%", b.ID).
			Pluck("slug", &taken).Error; err != nil {
			return fmt.Errorf("collecting slugs: %w", err)
		}
		b.Slug = slug.Unique(base, taken)

		if b.ID != uuid.Nil {
			var stored model.Slugged
			err := tx.Model(rec).Select("created_at").Where("id = ?", b.ID).Take(&stored).Error
			switch {
			case err == nil:
				b.CreatedAt = stored.CreatedAt
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return fmt.Errorf("loading %s: %w", kind, err)
			}
		}

		if err := tx.Save(rec).Error; err != nil {
			return translateWriteError(kind, b.Name, err)
		}
		return nil
	})
	if err != nil {
		var nameErr *domain.InvalidNameError
		var dupErr *domain.DuplicateNameError
		if errors.As(err, &nameErr) || errors.As(err, &dupErr) || errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("saving %s: %w", kind, err)
	}
	return nil
}

// upsertRecord copies the identity of the record with the same name, if any, into rec and
// saves it. It reports whether a new row was created.
func upsertRecord(ctx context.Context, db *gorm.DB, rec model.Record) (bool, error) {
	b := rec.Base()
	var existing model.Slugged
	err := db.WithContext(ctx).
		Model(rec).
		Select("id").
		Where("name = ?", b.Name).
		Take(&existing).Error

	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		b.ID = uuid.Nil
		created = true
	case err != nil:
		return false, fmt.Errorf("finding %s by name: %w", rec.Kind(), err)
	default:
		b.ID = existing.ID
	}

	if err := saveRecord(ctx, db, rec); err != nil {
		return false, err
	}
	return created, nil
}

// deleteAll removes every row of model's table.
func deleteAll(ctx context.Context, db *gorm.DB, value interface{}) (int64, error) {
	result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(value)
	if result.Error != nil {
		return 0, fmt.Errorf("deleting all: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		slog.Warn("deleted records", "table", fmt.Sprintf("%T", value), "count", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// facetValues returns the distinct non-empty values of column, sorted.
func facetValues(ctx context.Context, db *gorm.DB, value interface{}, column string) ([]string, error) {
	values := []string{}
	if err := db.WithContext(ctx).
		Model(value).
		Where(column+" <> ?", "").
		Distinct().
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}}).
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("listing %s values: %w", column, err)
	}
	return values, nil
}

func countWhere(ctx context.Context, db *gorm.DB, value interface{}, p query.Predicate) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(value).Scopes(p.Scope).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting: %w", err)
	}
	return count, nil
}

// listWhere loads records matching p ordered by name. limit <= 0 means no limit.
func listWhere(ctx context.Context, db *gorm.DB, dest interface{}, p query.Predicate, offset, limit int) error {
	q := db.WithContext(ctx).Scopes(p.Scope).Order("name ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(dest).Error; err != nil {
		return fmt.Errorf("listing: %w", err)
	}
	return nil
}

func recentFirst(ctx context.Context, db *gorm.DB, dest interface{}, limit int) error {
	if err := db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(dest).Error; err != nil {
		return fmt.Errorf("listing recent: %w", err)
	}
	return nil
}

func findBySlug(ctx context.Context, db *gorm.DB, dest model.Record, slugValue string) error {
	err := db.WithContext(ctx).Where("slug = ?", slugValue).Take(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{Kind: string(dest.Kind()), Slug: slugValue}
		}
		return fmt.Errorf("finding %s: %w", dest.Kind(), err)
	}
	return nil
}

// translateWriteError maps unique-index violations raised by postgres or sqlite. The pre-write checks
// cover the common case; these only fire when two writers race.
func translateWriteError(kind, name string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "slug") {
			return fmt.Errorf("%w: slug for %s %q taken concurrently", domain.ErrConflict, kind, name)
		}
		return &domain.DuplicateNameError{Kind: kind, Name: name}
	}
	var liteErr *gosqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqliteConstraintUnique {
		if strings.Contains(liteErr.Error(), ".slug") {
			return fmt.Errorf("%w: slug for %s %q taken concurrently", domain.ErrConflict, kind, name)
		}
		return &domain.DuplicateNameError{Kind: kind, Name: name}
	}
	return fmt.Errorf("writing %s: %w", kind, err)
}
