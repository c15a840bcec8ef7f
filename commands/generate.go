package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/planningtools/planning-sheets/config"
	"github.com/planningtools/planning-sheets/gsheet"
	"github.com/planningtools/planning-sheets/planning"
)

var (
	dryRun   bool
	force    bool
	noFormat bool
	noLog    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Reads the source planning, selects the current week and writes it to the target spreadsheet",
	RunE:  generate,
}

func init() {
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Runs the pipeline without writing to the target spreadsheet")
	generateCmd.Flags().BoolVar(&force, "force", false, "Runs even if the source spreadsheet is unchanged since the last run")
	generateCmd.Flags().BoolVar(&noFormat, "no-format", false, "Disables worksheet formatting")
	generateCmd.Flags().BoolVar(&noLog, "no-log", false, "Disables the run log worksheet")

	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runDate, err := today()
	if err != nil {
		return planning.Configurationf("%v", err)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	client, err := gsheet.NewClient(ctx, cfg.Credentials, cfg.Tokens, log, cfg.Scopes()...)
	if err != nil {
		return err
	}

	// ... skip the run if the source spreadsheet is unchanged
	var revision *gsheet.Revision

	if cfg.Source.TrackRevisions {
		if revision, err = client.LatestRevision(ctx, cfg.Source.SpreadsheetID); err != nil {
			return err
		}

		last, err := gsheet.LoadRevision(configDir, cfg.Source.SpreadsheetID)
		if err != nil {
			return err
		}

		if !force && last != nil && last.ID == revision.ID {
			log.Info().Str("revision", revision.ID).Msg("source spreadsheet unchanged since last run - nothing to do")
			return nil
		}
	}

	generator := planning.Generator{
		Selector: cfg.Selector(),
		Overview: cfg.Overview.Settings(),
		Log:      log,
	}

	if len(cfg.Mapping.Rules) > 0 {
		if generator.Mapper, err = planning.NewMapper(cfg.Mapping.Rules); err != nil {
			return err
		}
	}

	source := client.Source(cfg.Source.SpreadsheetID, cfg.Source.Sheet, cfg.Source.Range)

	target := client.Target(cfg.Target.SpreadsheetID, cfg.Target.Sheet, cfg.Target.Cell)
	target.Recreate = cfg.Target.Recreate
	target.Format = cfg.Target.Format && !noFormat
	target.DryRun = dryRun

	result, err := generator.Run(ctx, runDate, source, target)
	if err != nil {
		return err
	}

	log.Info().
		Int("week", result.Week).
		Int("offset", result.Offset).
		Int("rows", result.Rows).
		Int("columns", result.Columns).
		Msg("week planning generated")

	if dryRun {
		return nil
	}

	if cfg.Log.Range != "" && !noLog {
		runlog := client.RunLog(cfg.Target.SpreadsheetID, cfg.Log.Range, cfg.Log.RetentionDays)

		entry := gsheet.Entry{
			Timestamp: time.Now(),
			RunID:     runID,
			Week:      result.Week,
			Rows:      result.Rows,
			Columns:   result.Columns,
		}

		if err := runlog.Append(ctx, entry); err != nil {
			return err
		}

		if err := runlog.Prune(ctx); err != nil {
			return err
		}
	}

	if revision != nil {
		if err := gsheet.StoreRevision(configDir, cfg.Source.SpreadsheetID, revision); err != nil {
			return err
		}
	}

	return nil
}
