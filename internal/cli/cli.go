package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// timeLayouts are tried in order when parsing --start and --end.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04Z", "2006-01-02T15", "2006-01-02"}

// ParseTime accepts RFC 3339, EIA hourly periods and plain dates, all UTC
// unless an offset is given.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q: use RFC 3339, 2006-01-02T15 or 2006-01-02", s)
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridcarbon", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridcarbon - hourly production emissions and consumption-based carbon
intensity for U.S. balancing authorities, from EIA-930 data.

Usage:
  gridcarbon [options] --start TIME --end TIME

The EIA API key is read from the EIA_API_KEY environment variable unless the
settings file names another one.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	cFlag := flagSet.String("c", "", "Path to an optional HCL settings file (shorthand).")
	startFlag := flagSet.String("start", "", "First hour to compute, inclusive.")
	endFlag := flagSet.String("end", "", "Last hour to compute, inclusive.")
	formatFlag := flagSet.String("format", "json", "Report format. Options: 'json' or 'yaml'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 0, "Concurrent retrievals and hour computations. 0 uses the settings file or 4.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *startFlag == "" && *endFlag == "" {
		slog.Debug("No time range provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	start, err := ParseTime(*startFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid start: " + err.Error()}
	}
	end, err := ParseTime(*endFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid end: " + err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	settingsPath := *configFlag
	if settingsPath == "" {
		settingsPath = *cFlag
	}

	config, err := app.NewConfig(app.Config{
		SettingsPath:    settingsPath,
		Start:           start,
		End:             end,
		Format:          strings.ToLower(*formatFlag),
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		Workers:         *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
