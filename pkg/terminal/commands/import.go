package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/unsaid-tools/tone-atlas/pkg/models/store"
	"github.com/unsaid-tools/tone-atlas/pkg/services/config"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb/records"
)

// exportRecord mirrors the keyboard extension's JSON export format, synonyms
// included. Missing fields stay zero-valued and are resolved downstream at
// the ingestion boundary.
type exportRecord struct {
	ID              string   `json:"id"`
	Timestamp       string   `json:"timestamp"`
	ToneStatus      string   `json:"toneStatus"`
	DominantTone    string   `json:"dominantTone"`
	EmotionalTone   string   `json:"emotionalTone"`
	Confidence      *float64 `json:"confidence"`
	OriginalText    string   `json:"originalText"`
	OriginalMessage string   `json:"originalMessage"`
	Suggestions     []string `json:"suggestions"`
}

type ImportCmd struct {
	configPath string
	inputPath  string
}

func NewImportCmd() *cobra.Command {
	ic := &ImportCmd{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a JSON export of analysis records into the local record log",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.configPath, "config", "tone-atlas.yaml", "Path to the tone-atlas config file")
	cmd.Flags().StringVar(&ic.inputPath, "input", "", "Path to the JSON export file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	cfg, err := config.LoadConfig(ic.configPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(ic.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	var exported []exportRecord
	if err := json.Unmarshal(raw, &exported); err != nil {
		return fmt.Errorf("failed to parse export file: %w", err)
	}

	batch := make([]store.AnalysisRecord, 0, len(exported))
	for i, rec := range exported {
		id := rec.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", rec.Timestamp, i)
		}
		batch = append(batch, store.AnalysisRecord{
			ID:              id,
			Timestamp:       rec.Timestamp,
			ToneStatus:      rec.ToneStatus,
			DominantTone:    rec.DominantTone,
			EmotionalTone:   rec.EmotionalTone,
			Confidence:      rec.Confidence,
			OriginalText:    rec.OriginalText,
			OriginalMessage: rec.OriginalMessage,
			Suggestions:     rec.Suggestions,
		})
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.StorePath})
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer db.Close()

	recordStore, err := records.NewStore(db)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := recordStore.Add(duckdb.WithTransaction(ctx, tx), cfg.Profile, batch); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to store records: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into profile %q\n", len(batch), cfg.Profile)
	return nil
}
