package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

// AnalysisRecordSchema keeps the raw timestamp as VARCHAR on purpose: the
// keyboard export occasionally ships missing or unparsable timestamps, and
// the ingestion boundary, not the store, decides what to do with them.
const AnalysisRecordSchema = `
	CREATE TABLE IF NOT EXISTS analysis_records (
		id VARCHAR NOT NULL,
		profile VARCHAR NOT NULL,
		recorded_at VARCHAR,
		tone_status VARCHAR,
		dominant_tone VARCHAR,
		emotional_tone VARCHAR,
		confidence DOUBLE,
		original_text VARCHAR,
		original_message VARCHAR,
		suggestions JSON,
		PRIMARY KEY (profile, id)
	);
`

var bootQueries = []string{
	AnalysisRecordSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
