package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/planningtools/planning-sheets/gsheet"
	"github.com/planningtools/planning-sheets/planning"
)

// Config is the validated run configuration, loaded once at startup and
// immutable thereafter.
type Config struct {
	Source   Source   `json:"source"`
	Target   Target   `json:"target"`
	Week     Week     `json:"week"`
	Mapping  Mapping  `json:"mapping"`
	Overview Overview `json:"overview"`
	Log      RunLog   `json:"log"`

	// Credential material, resolved relative to the config directory.
	Credentials string `json:"credentials"`
	Tokens      string `json:"tokens"`
}

// Source identifies the worksheet range holding the full planning.
type Source struct {
	SpreadsheetID  string `json:"spreadsheet_id"`
	Sheet          string `json:"sheet"`
	Range          string `json:"range"`
	TrackRevisions bool   `json:"track_revisions"` // skip the run when the source is unchanged
}

// Target identifies where the generated week planning is written. Sheet may
// contain a '{week}' placeholder for the ISO week number.
type Target struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	Sheet         string `json:"sheet"`
	Cell          string `json:"cell"`
	Recreate      bool   `json:"recreate"`
	Format        bool   `json:"format"`
}

// Week configures how the current week's columns are located in the source
// sheet.
type Week struct {
	Mode          string `json:"mode"` // 'anchor' or 'lookup'
	AnchorDate    string `json:"anchor_date"`
	StrideColumns int    `json:"stride_columns"`
	Weeks         int    `json:"weeks"`
	LeadColumns   int    `json:"lead_columns"`
	LookupRow     int    `json:"lookup_row"`
}

// Mapping declares the optional cell value mapping rules.
type Mapping struct {
	Rules []planning.Rule `json:"rules"`
}

// Overview enables reshaping the week block into a person/project overview.
type Overview struct {
	Enabled       bool `json:"enabled"`
	WeekRow       int  `json:"week_row"`
	TypeColumn    int  `json:"type_column"`
	ProjectColumn int  `json:"project_column"`
	PersonColumn  int  `json:"person_column"`
}

// Settings returns the overview settings for the planning pipeline, or nil
// when disabled.
func (o Overview) Settings() *planning.Overview {
	if !o.Enabled {
		return nil
	}

	return &planning.Overview{
		WeekRow:       o.WeekRow,
		TypeColumn:    o.TypeColumn,
		ProjectColumn: o.ProjectColumn,
		PersonColumn:  o.PersonColumn,
	}
}

// RunLog configures the optional run log worksheet.
type RunLog struct {
	Range         string `json:"range"`
	RetentionDays int    `json:"retention_days"`
}

// Load reads and validates the configuration from 'config.yaml', 'config.yml'
// or 'config.json' in the given directory. Environment variables prefixed with
// PLANNING_ override file values, e.g. PLANNING_SOURCE__SPREADSHEET_ID.
func Load(dir string) (*Config, error) {
	path, parser, err := locate(dir)
	if err != nil {
		return nil, &planning.ConfigurationError{Err: err}
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, &planning.ConfigurationError{Err: err}
	}

	// ... the provider delimiter must match the koanf delimiter so that the
	// rewritten keys nest into the file-provided maps
	if err := k.Load(env.Provider("PLANNING_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "planning_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, &planning.ConfigurationError{Err: err}
	}

	cfg := Config{}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, &planning.ConfigurationError{Err: err}
	}

	cfg.SetDefaults()

	if !filepath.IsAbs(cfg.Credentials) {
		cfg.Credentials = filepath.Join(dir, cfg.Credentials)
	}

	if !filepath.IsAbs(cfg.Tokens) {
		cfg.Tokens = filepath.Join(dir, cfg.Tokens)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func locate(dir string) (string, koanf.Parser, error) {
	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.yaml", yaml.Parser()},
		{"config.yml", yaml.Parser()},
		{"config.json", json.Parser()},
	}

	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if _, err := os.Stat(path); err == nil {
			return path, c.parser, nil
		}
	}

	return "", nil, fmt.Errorf("no config.yaml, config.yml or config.json in '%s'", dir)
}

// SetDefaults applies defaults for optional fields.
func (c *Config) SetDefaults() {
	if c.Week.Mode == "" {
		c.Week.Mode = planning.ModeAnchor
	}

	if c.Week.StrideColumns == 0 {
		c.Week.StrideColumns = 1
	}

	if c.Target.Cell == "" {
		c.Target.Cell = "A1"
	}

	if c.Credentials == "" {
		c.Credentials = "credentials.json"
	}

	if c.Tokens == "" {
		c.Tokens = "tokens.json"
	}

	if c.Overview.Enabled {
		if c.Overview.WeekRow == 0 && c.Week.Mode == planning.ModeLookup {
			c.Overview.WeekRow = c.Week.LookupRow
		}

		if c.Overview.ProjectColumn == 0 {
			c.Overview.ProjectColumn = 1
		}

		if c.Overview.PersonColumn == 0 {
			c.Overview.PersonColumn = 2
		}
	}

	if c.Log.Range != "" && c.Log.RetentionDays == 0 {
		c.Log.RetentionDays = 30
	}
}

// Validate checks that all required fields are present and well formed.
func (c *Config) Validate() error {
	if c.Source.SpreadsheetID == "" {
		return planning.Configurationf("source.spreadsheet_id is required")
	}

	if c.Source.Sheet == "" {
		return planning.Configurationf("source.sheet is required")
	}

	if c.Source.Range == "" {
		return planning.Configurationf("source.range is required")
	}

	if c.Target.SpreadsheetID == "" {
		return planning.Configurationf("target.spreadsheet_id is required")
	}

	if c.Target.Sheet == "" {
		return planning.Configurationf("target.sheet is required")
	}

	if _, _, err := gsheet.ParseCell(c.Target.Cell); err != nil {
		return planning.Configurationf("invalid target.cell (%v)", err)
	}

	if c.Week.StrideColumns < 1 {
		return planning.Configurationf("week.stride_columns must be positive")
	}

	if c.Week.Weeks < 0 {
		return planning.Configurationf("week.weeks must not be negative")
	}

	switch c.Week.Mode {
	case planning.ModeAnchor:
		if c.Week.AnchorDate == "" {
			return planning.Configurationf("week.anchor_date is required in anchor mode")
		}

		if _, err := time.Parse("2006-01-02", c.Week.AnchorDate); err != nil {
			return planning.Configurationf("invalid week.anchor_date '%s' - expected YYYY-MM-DD", c.Week.AnchorDate)
		}

	case planning.ModeLookup:
		if c.Week.LookupRow < 0 {
			return planning.Configurationf("week.lookup_row must not be negative")
		}

	default:
		return planning.Configurationf("invalid week.mode '%s' - expected 'anchor' or 'lookup'", c.Week.Mode)
	}

	if _, err := planning.NewMapper(c.Mapping.Rules); err != nil {
		return err
	}

	return nil
}

// Selector returns the week selector for the validated configuration.
func (c *Config) Selector() planning.Selector {
	anchor, _ := time.Parse("2006-01-02", c.Week.AnchorDate)

	return planning.Selector{
		Mode:      c.Week.Mode,
		Anchor:    anchor,
		Stride:    c.Week.StrideColumns,
		Weeks:     c.Week.Weeks,
		Lead:      c.Week.LeadColumns,
		LookupRow: c.Week.LookupRow,
	}
}

// Scopes returns the OAuth2 scopes required by the configuration.
func (c *Config) Scopes() []string {
	scopes := []string{gsheet.ScopeSheets}

	if c.Source.TrackRevisions {
		scopes = append(scopes, gsheet.ScopeDriveMetadata)
	}

	return scopes
}
