package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/model"
)

// Store is the write side the loader needs.
type Store interface {
	Upsert(ctx context.Context, rec model.Record) (bool, error)
	Purge(ctx context.Context, kind model.Kind) (int64, error)
}

type Options struct {
	// Refresh deletes every record of the kind before loading.
	Refresh bool
}

// Failure is one fixture entry that could not be written.
type Failure struct {
	Index int
	Name  string
	Err   error
}

type Result struct {
	Kind     model.Kind
	Created  int
	Updated  int
	Skipped  int
	Deleted  int64
	Failures []Failure
}

func (r *Result) String() string {
	return fmt.Sprintf("Seeding complete. Created %d and updated %d %s entries.", r.Created, r.Updated, FixtureName(r.Kind))
}

type Loader struct {
	store   Store
	dataDir string
	logger  *slog.Logger
}

func NewLoader(store Store, dataDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{store: store, dataDir: dataDir, logger: logger}
}

// FixtureName is the file stem holding fixtures of kind.
func FixtureName(kind model.Kind) string {
	switch kind {
	case model.KindPerson:
		return "people"
	case model.KindCommunity:
		return "communities"
	case model.KindSchool:
		return "schools"
	}
	return string(kind)
}

// ParseKind accepts either the kind or its fixture name.
func ParseKind(s string) (model.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range model.Kinds {
		if s == string(k) || s == FixtureName(k) {
			return k, nil
		}
	}
	return "", errUnknownKind(model.Kind(s))
}

func errUnknownKind(kind model.Kind) error {
	return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
}

// Path is the fixture file for kind.
func (l *Loader) Path(kind model.Kind) string {
	return filepath.Join(l.dataDir, FixtureName(kind)+".json")
}

// Load upserts every fixture entry of kind by name. A missing or malformed file returns
// a *domain.FixtureLoadError before anything is written. Entries that fail are recorded
// in the result and the rest are still loaded.
func (l *Loader) Load(ctx context.Context, kind model.Kind, opts Options) (*Result, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	entries, err := l.read(kind)
	if err != nil {
		return nil, err
	}

	res := &Result{Kind: kind}
	log := l.logger.With("kind", string(kind))

	if opts.Refresh {
		deleted, err := l.store.Purge(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("purging %s: %w", FixtureName(kind), err)
		}
		res.Deleted = deleted
		log.Warn("deleted existing records", "count", deleted)
	}

	for i, raw := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		name, rec, err := decodeEntry(kind, raw)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Index: i, Err: err})
			log.Error("decoding fixture entry", "index", i, "error", err)
			continue
		}
		if strings.TrimSpace(name) == "" {
			res.Skipped++
			log.Warn("skipped entry without a name", "index", i)
			continue
		}

		created, err := l.store.Upsert(ctx, rec)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Index: i, Name: name, Err: err})
			log.Error("loading fixture entry", "index", i, "name", name, "error", err)
			continue
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	log.Info("seeding complete",
		"created", res.Created,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"failed", len(res.Failures),
	)
	return res, nil
}

func (l *Loader) read(kind model.Kind) ([]json.RawMessage, error) {
	path := l.Path(kind)

	data, err := os.ReadFile(path)
	if err != nil {
		reason := "unreadable"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "missing, add the file before seeding"
		}
		return nil, &domain.FixtureLoadError{Path: path, Reason: reason, Err: err}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &domain.FixtureLoadError{Path: path, Reason: "expected a list of records"}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &domain.FixtureLoadError{Path: path, Reason: "invalid JSON", Err: err}
	}
	return entries, nil
}
