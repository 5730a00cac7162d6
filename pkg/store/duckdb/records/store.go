package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/unsaid-tools/tone-atlas/pkg/models/store"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb"
)

// Store supports both ingestion (Add) and read (Get*) operations for analysis
// records in DuckDB. For read operations, bind the store to a specific profile
// via NewProfileStore; Add still accepts the profile parameter so importers
// can write several profiles through one handle.
type Store interface {
	Add(ctx context.Context, profile string, records []store.AnalysisRecord) error
	GetRecords(ctx context.Context) ([]store.AnalysisRecord, error)
	GetStats(ctx context.Context) (*store.RecordStats, error)
}

type recordStore struct {
	db      *sql.DB
	profile string // optional; required for read methods
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

// NewProfileStore returns a Store bound to a specific profile for read
// operations.
func NewProfileStore(db *sql.DB, profile string) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if profile == "" {
		return nil, fmt.Errorf("profile is required for read store")
	}
	return &recordStore{db: db, profile: profile}, nil
}

func (r *recordStore) Add(ctx context.Context, profile string, records []store.AnalysisRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO analysis_records (
			id, profile, recorded_at, tone_status, dominant_tone,
			emotional_tone, confidence, original_text, original_message, suggestions
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = r.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}

	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		suggestions, err := json.Marshal(record.Suggestions)
		if err != nil {
			return fmt.Errorf("marshal suggestions: %w", err)
		}

		var confidence sql.NullFloat64
		if record.Confidence != nil {
			confidence = sql.NullFloat64{Float64: *record.Confidence, Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			record.ID,
			profile,
			record.Timestamp,
			record.ToneStatus,
			record.DominantTone,
			record.EmotionalTone,
			confidence,
			record.OriginalText,
			record.OriginalMessage,
			suggestions,
		)

		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return nil
}

func (r *recordStore) ensureProfile() error {
	if r.profile == "" {
		return fmt.Errorf("read operation requires profile-bound store; use NewProfileStore")
	}
	return nil
}

// GetRecords returns the full snapshot for the bound profile. Time-window
// filtering happens in the engine, not in SQL: recorded_at is a raw string
// that may not even parse, and the engine owns the policy for that.
func (r *recordStore) GetRecords(ctx context.Context) ([]store.AnalysisRecord, error) {
	if err := r.ensureProfile(); err != nil {
		return nil, err
	}
	query := `
		SELECT id, recorded_at, tone_status, dominant_tone, emotional_tone,
		       confidence, original_text, original_message, suggestions
		FROM analysis_records
		WHERE profile = ?
		ORDER BY recorded_at
	`
	rows, err := r.db.QueryContext(ctx, query, r.profile)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()
	return scanRecordRows(rows)
}

func (r *recordStore) GetStats(ctx context.Context) (*store.RecordStats, error) {
	if err := r.ensureProfile(); err != nil {
		return nil, err
	}
	query := `
		SELECT COUNT(*) AS total_records,
		       MIN(TRY_CAST(recorded_at AS TIMESTAMP)) AS earliest_record
		FROM analysis_records
		WHERE profile = ?
	`
	var total int64
	var earliest sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, r.profile).Scan(&total, &earliest); err != nil {
		return nil, fmt.Errorf("get record stats: %w", err)
	}
	stats := &store.RecordStats{RecordsCount: total}
	if earliest.Valid {
		t := earliest.Time
		stats.FirstRecordTime = &t
	}
	return stats, nil
}

func scanRecordRows(rows *sql.Rows) ([]store.AnalysisRecord, error) {
	records := make([]store.AnalysisRecord, 0)
	for rows.Next() {
		var (
			id             string
			recordedAt     sql.NullString
			toneStatus     sql.NullString
			dominantTone   sql.NullString
			emotionalTone  sql.NullString
			confidence     sql.NullFloat64
			originalText   sql.NullString
			originalMsg    sql.NullString
			suggestionsRaw []byte
		)
		if err := rows.Scan(&id, &recordedAt, &toneStatus, &dominantTone, &emotionalTone,
			&confidence, &originalText, &originalMsg, &suggestionsRaw); err != nil {
			return nil, err
		}

		var suggestions []string
		if len(suggestionsRaw) > 0 {
			_ = json.Unmarshal(suggestionsRaw, &suggestions)
		}

		rec := store.AnalysisRecord{
			ID:              id,
			Timestamp:       recordedAt.String,
			ToneStatus:      toneStatus.String,
			DominantTone:    dominantTone.String,
			EmotionalTone:   emotionalTone.String,
			OriginalText:    originalText.String,
			OriginalMessage: originalMsg.String,
			Suggestions:     suggestions,
		}
		if confidence.Valid {
			c := confidence.Float64
			rec.Confidence = &c
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
