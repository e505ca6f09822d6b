package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/deeday/internal/config"
	"github.com/theirongolddev/deeday/internal/logging"
	"github.com/theirongolddev/deeday/internal/model"
	"github.com/theirongolddev/deeday/internal/roster"
	"github.com/theirongolddev/deeday/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagBackend  string
	flagLogLevel string
	flagToday    string
)

var rootCmd = &cobra.Command{
	Use:          "deeday",
	Short:        "Never miss a family birthday",
	Long:         "Track your family's birthdays: who's next, how many days away, and how old they're turning.",
	RunE:         runTUI,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default from config, then $XDG_DATA_HOME/deeday)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Pretend today is this date (yyyy-mm-dd)")
}

// loadConfig returns the config with command-line overrides applied.
// A broken config file falls back to defaults so the roster stays reachable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagBackend != "" {
		cfg.General.Backend = flagBackend
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// todayFunc returns the clock used for birthday math.
func todayFunc() (func() model.Date, error) {
	if flagToday == "" {
		return model.Today, nil
	}
	d, err := model.ParseDate(flagToday)
	if err != nil {
		return nil, fmt.Errorf("--today: %w", err)
	}
	return func() model.Date { return d }, nil
}

// session is the shared state every command works against.
type session struct {
	cfg     config.Config
	backend store.Backend
	roster  *roster.Store
	today   func() model.Date
	logger  *slog.Logger
	closers []io.Closer
}

// openSession loads config, sets up logging and opens the roster.
// When logFile is true logs go to deeday.log in the data dir instead of stderr.
func openSession(logFile bool) (*session, error) {
	cfg := loadConfig()

	today, err := todayFunc()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, today: today}

	if logFile {
		logger, closer, err := logging.SetupFile(cfg.Log.Level, filepath.Join(cfg.DataDir(), "deeday.log"))
		if err != nil {
			return nil, err
		}
		s.logger = logger
		s.closers = append(s.closers, closer)
	} else {
		s.logger = logging.Setup(cfg.Log.Level, os.Stderr)
	}

	backend, err := store.Open(cfg.General.Backend, cfg.DataDir(), roster.DefaultKey)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("opening %s storage: %w", cfg.General.Backend, err)
	}
	s.backend = backend
	s.closers = append([]io.Closer{backend}, s.closers...)

	s.logger.Debug("session opened",
		"backend", cfg.General.Backend,
		"data_dir", cfg.DataDir())

	s.roster = roster.Open(backend, roster.WithLogger(s.logger))
	return s, nil
}

// Close releases the backend and log file.
func (s *session) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
