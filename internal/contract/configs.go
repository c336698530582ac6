package contract

import (
	"fmt"
	"time"

	"github.com/fairlens/fairlens/schema"
)

// Default values for configuration.
const (
	DefaultPeriodMonths = 3
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 1
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateFormat is the day-granularity representation used in report headers.
var DateFormat = "2006-01-02"

// Config holds the runtime configuration for an analytics run.
// This struct remains the "final, validated" config.
type Config struct {
	CompanyID   string
	StartTime   time.Time
	EndTime     time.Time
	Now         time.Time // Evaluation instant, injectable for tests
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	// Employees overrides the store's active-employee count when positive.
	Employees int

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// Clone returns a copy of the config for per-request overrides. All fields
// are value types, so a shallow copy is a full copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	CompanyID  string `mapstructure:"company"`
	Start      string `mapstructure:"start"`
	End        string `mapstructure:"end"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Backend    string `mapstructure:"backend"`
	DBConnect  string `mapstructure:"db-connect"`
	Employees  int    `mapstructure:"employees"`
	Color      string `mapstructure:"color"`
}

// ProcessRawConfig validates the raw input and populates the final Config.
// The now parameter anchors relative time expressions and the default
// reporting period; commands pass time.Now(), tests pass a fixture.
func ProcessRawConfig(raw *ConfigRawInput, cfg *Config, now time.Time) error {
	if raw.CompanyID == "" {
		return fmt.Errorf("company id is required")
	}
	cfg.CompanyID = raw.CompanyID
	cfg.Now = now

	output := schema.OutputMode(raw.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", raw.Output)
	}
	cfg.Output = output
	cfg.OutputFile = raw.OutputFile

	backend := schema.DatabaseBackend(raw.Backend)
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid backend %q: must be sqlite, mysql or postgresql", raw.Backend)
	}
	cfg.Backend = backend
	cfg.DBConnect = raw.DBConnect

	if raw.Limit <= 0 || raw.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = raw.Limit

	if raw.Precision < 0 || raw.Precision > 10 {
		return fmt.Errorf("precision must be between 0 and 10")
	}
	cfg.Precision = raw.Precision

	if raw.Width < 0 {
		return fmt.Errorf("width cannot be negative")
	}
	cfg.Width = raw.Width

	if raw.Employees < 0 {
		return fmt.Errorf("employees cannot be negative")
	}
	cfg.Employees = raw.Employees

	start, end, err := resolveWindow(raw.Start, raw.End, now)
	if err != nil {
		return err
	}
	cfg.StartTime = start
	cfg.EndTime = end

	cfg.UseColors = parseBoolFlag(raw.Color, true)
	cfg.UseEmojis = true

	return nil
}

// resolveWindow parses the start/end expressions and applies the default
// trailing period when both are empty. End defaults to now when only start
// is given. Window ordering is not enforced here; the engine fails fast on
// a reversed window so the error surfaces in exactly one place.
func resolveWindow(startExpr, endExpr string, now time.Time) (time.Time, time.Time, error) {
	if startExpr == "" && endExpr == "" {
		return now.AddDate(0, -DefaultPeriodMonths, 0), now, nil
	}

	var start, end time.Time
	var err error

	if startExpr != "" {
		start, err = ParseWindowTime(startExpr, now)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start: %w", err)
		}
	}

	end = now
	if endExpr != "" {
		end, err = ParseWindowTime(endExpr, now)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end: %w", err)
		}
	}

	if startExpr == "" {
		start = end.AddDate(0, -DefaultPeriodMonths, 0)
	}
	return start, end, nil
}

// parseBoolFlag interprets yes/no style flag values with a fallback.
func parseBoolFlag(s string, fallback bool) bool {
	switch s {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
