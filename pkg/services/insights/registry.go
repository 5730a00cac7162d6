package insights

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb/records"
)

// Registry hands out controllers bound to a single profile. A profile is one
// accumulated message log (a user, or a user+partner combined export).
type Registry interface {
	GetController(ctx context.Context, profile string) (Controller, error)
}

type registry struct {
	db  *sql.DB
	now func() time.Time
}

func NewRegistry(db *sql.DB, nowFn func() time.Time) (Registry, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &registry{db: db, now: nowFn}, nil
}

func (r *registry) GetController(_ context.Context, profile string) (Controller, error) {
	store, err := records.NewProfileStore(r.db, profile)
	if err != nil {
		return nil, fmt.Errorf("create profile store: %w", err)
	}
	return NewController(store, r.now)
}
