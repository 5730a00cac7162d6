package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
	"github.com/unsaid-tools/tone-atlas/pkg/services/config"
	"github.com/unsaid-tools/tone-atlas/pkg/services/insights"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb/records"
	"github.com/unsaid-tools/tone-atlas/pkg/terminal/export"
)

type ReportCmd struct {
	configPath    string
	window        string
	relationship  string
	compatibility float64
	reporter      *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute and print an insights report from the local record log",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "tone-atlas.yaml", "Path to the tone-atlas config file")
	cmd.Flags().StringVar(&rc.window, "window", "", "Timeframe window (24h, 7d, 30d, 90d, all); defaults to the configured window")
	cmd.Flags().StringVar(&rc.relationship, "relationship", "", "Relationship type (couple, coparent); defaults to the configured type")
	cmd.Flags().Float64Var(&rc.compatibility, "compatibility", -1, "Partner compatibility score in [0,1], if linked")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	cfg, err := config.LoadConfig(rc.configPath)
	if err != nil {
		return err
	}

	window := domain.Window(cfg.DefaultWindow)
	if rc.window != "" {
		window = domain.Window(rc.window)
		if !window.Valid() {
			return fmt.Errorf("unsupported window %q; supported: 24h, 7d, 30d, 90d, all", rc.window)
		}
	}

	relationship := domain.RelationshipType(cfg.Relationship)
	if rc.relationship != "" {
		relationship = domain.RelationshipType(rc.relationship)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.StorePath})
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer db.Close()

	store, err := records.NewProfileStore(db, cfg.Profile)
	if err != nil {
		return err
	}
	ctrl, err := insights.NewController(store, nil)
	if err != nil {
		return err
	}

	opts := insights.ReportOptions{Window: window, Relationship: relationship}
	if rc.compatibility >= 0 {
		c := rc.compatibility
		opts.Compatibility = &c
	}

	report, err := ctrl.GetReport(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to compute report: %w", err)
	}

	return rc.reporter.Handle(report)
}
