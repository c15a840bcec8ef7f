package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/planningtools/planning-sheets/config"
	"github.com/planningtools/planning-sheets/export"
	"github.com/planningtools/planning-sheets/gsheet"
	"github.com/planningtools/planning-sheets/planning"
)

var file string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the current week's planning to a local TSV or Excel file instead of the target spreadsheet",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&file, "file", "f", "planning-"+time.Now().Format("2006-01-02T150405")+".tsv", "Output file. The extension selects the format (.tsv or .xlsx)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	client, err := gsheet.NewClient(ctx, cfg.Credentials, cfg.Tokens, log, gsheet.ScopeSheets)
	if err != nil {
		return err
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
	sink := fileWriter{path: file}

	result, err := generator.Run(ctx, runDate, source, &sink)
	if err != nil {
		return err
	}

	log.Info().Int("week", result.Week).Int("rows", result.Rows).Str("file", file).Msg("exported week planning")

	return nil
}

// fileWriter adapts the local file exporters to the pipeline's target writer.
type fileWriter struct {
	path string
}

func (w *fileWriter) Write(ctx context.Context, week int, grid planning.Grid) error {
	switch strings.ToLower(filepath.Ext(w.path)) {
	case ".xlsx":
		return export.ToXLSX(w.path, "Week "+strconv.Itoa(week), grid)

	case ".tsv", ".txt":
		f, err := os.Create(w.path)
		if err != nil {
			return err
		}

		defer f.Close()

		return export.ToTSV(f, grid)

	default:
		return fmt.Errorf("unsupported export format '%s' - expected .tsv or .xlsx", filepath.Ext(w.path))
	}
}
