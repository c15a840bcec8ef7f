package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const APP = "planning-sheets"

var (
	configDir string
	debug     bool
	date      string

	runID string
	log   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           APP,
	Short:         "Generates a week planning overview in a Google Sheets worksheet",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", defaultConfigDir(), "Directory containing config.yaml and credentials")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enables debugging information")
	rootCmd.PersistentFlags().StringVar(&date, "date", "", "Run date (YYYY-MM-DD). Defaults to today")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}

		runID = uuid.NewString()

		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Str("run", runID).
			Logger()
	}
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, APP)
	}

	return "."
}

// today resolves the run date, from the --date flag if set.
func today() (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date '%s' - expected YYYY-MM-DD", date)
	}

	return t, nil
}
