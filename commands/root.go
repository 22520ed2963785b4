package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-entparser/internal/analyzer"
	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/penwyp/go-entparser/internal/prefs"
	"github.com/penwyp/go-entparser/internal/presentation/formatter"
	"github.com/penwyp/go-entparser/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug     bool
	logFormat string

	// Directories and zone
	sourceDir  string
	archiveDir string
	timezone   string

	// Location table and preferences
	locationsFile string
	prefsPath     string

	// Output related
	jsonOutput bool

	rootCmd = &cobra.Command{
		Use:   "go-entparser [flags]",
		Short: "Extract location checks from chat logs",
		Long: `go-entparser scans a directory of daily chat logs, extracts "N/5" location
check reports, converts their times to UTC, merges repeated checks and writes a
dated report into the archive directory.

Flags override the saved preferences for this run only; use "save" to keep them.

Examples:
  go-entparser                                         # Parse with saved preferences
  go-entparser --source ~/logs --archive ~/reports     # Parse other directories
  go-entparser --timezone America/New_York             # Logs were recorded in New York time
  go-entparser --locations ./locations.toml            # Use a custom location table
  go-entparser --json                                  # Print a JSON run summary`,
		RunE:          runParse,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

const defaultLogFile = "~/.go-entparser/logs/app.log"

func init() {
	// Directories and zone
	rootCmd.PersistentFlags().StringVar(&sourceDir, "source", "",
		"Directory containing the chat log files (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&archiveDir, "archive", "",
		"Directory reports are written to (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Time zone the logs were recorded in (e.g., Local, UTC, Europe/London)")

	// Location table and preferences
	rootCmd.PersistentFlags().StringVar(&locationsFile, "locations", "",
		"TOML file replacing the built-in location table")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", prefs.DefaultPath(),
		"Preferences file path")

	// Output configuration
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Print the run summary as JSON")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(util.FormatText),
		"Log file format (text or json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	settings := loadSettings(cmd)
	cfg, err := prepareRun(settings)
	if err != nil {
		return err
	}

	result, err := analyzer.Parse(cfg)
	if errors.Is(err, model.ErrNoEventsFound) {
		fmt.Fprintln(cmd.OutOrStdout(), util.FormatWarning("No qualifying events found"))
	}
	if err != nil {
		return err
	}

	return formatter.New(jsonOutput).Format(cmd.OutOrStdout(), result)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func initLogging() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	format := util.LogFormat(strings.ToLower(strings.TrimSpace(logFormat)))
	if format != util.FormatText && format != util.FormatJSON {
		return fmt.Errorf("invalid log format '%s': must be either 'text' or 'json'", logFormat)
	}

	logFile, err := prefs.ExpandPath(defaultLogFile)
	if err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return util.InitLogger(util.LoggerConfig{
		Level:   logLevel,
		File:    logFile,
		Console: debug,
		Format:  format,
	})
}

// loadSettings applies the flags the user set on top of the saved preferences.
func loadSettings(cmd *cobra.Command) prefs.Prefs {
	p, err := prefs.Load(prefsPath)
	if err != nil {
		util.LogWarnf("Using default preferences: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		p.Source = sourceDir
	}
	if flags.Changed("archive") {
		p.Archive = archiveDir
	}
	if flags.Changed("timezone") {
		p.TimeZone = timezone
	}
	return p
}

// prepareRun resolves paths and creates the archive directory, plus the
// source directory when it is the default one.
func prepareRun(p prefs.Prefs) (model.RunConfig, error) {
	var cfg model.RunConfig
	var err error
	if cfg.SourceDir, err = prefs.ExpandPath(p.Source); err != nil {
		return cfg, fmt.Errorf("source directory: %w", err)
	}
	if cfg.ArchiveDir, err = prefs.ExpandPath(p.Archive); err != nil {
		return cfg, fmt.Errorf("archive directory: %w", err)
	}
	cfg.TimeZone = p.TimeZone
	if strings.TrimSpace(locationsFile) != "" {
		if cfg.LocationsFile, err = prefs.ExpandPath(locationsFile); err != nil {
			return cfg, fmt.Errorf("location table: %w", err)
		}
	}

	if defaultSource, err := prefs.ExpandPath(prefs.Defaults().Source); err == nil && cfg.SourceDir == defaultSource {
		if err := ensureDir(cfg.SourceDir); err != nil {
			return cfg, fmt.Errorf("failed to create source directory: %w", err)
		}
	}
	if err := ensureDir(cfg.ArchiveDir); err != nil {
		return cfg, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return cfg, nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
