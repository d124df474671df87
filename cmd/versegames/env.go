package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// envPrefix prefixes the environment variables that provide flag defaults.
const envPrefix = "VERSEGAMES_"

// envName returns the variable for a flag: "log-level" -> VERSEGAMES_LOG_LEVEL.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv loads .env (if present) and sets every flag that was not given on
// the command line from its VERSEGAMES_* variable.
func applyEnv(flags *pflag.FlagSet) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	var firstErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil {
			return
		}
		val, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}
		if err := flags.Set(f.Name, val); err != nil {
			firstErr = fmt.Errorf("invalid %s: %w", envName(f.Name), err)
		}
	})
	return firstErr
}

// setupLogging configures the default charm logger. Interactive commands log
// to ~/.versegames/versegames.log so log lines never land on the TUI.
func setupLogging(command string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "versegames",
		Level:           level,
	})

	switch command {
	case "play", "menu":
		if f, fileErr := openLogFile(); fileErr == nil {
			logger.SetOutput(f)
		} else {
			logger.SetLevel(log.FatalLevel)
		}
	}

	log.SetDefault(logger)
	return nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".versegames")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "versegames.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
