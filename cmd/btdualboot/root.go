package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/btdualboot/internal/logger"
)

// Exit codes.
const (
	exitUpdated  = 0 // at least one device updated
	exitNoUpdate = 1 // nothing updated
	exitFatal    = 2
)

// errNothingUpdated makes a command exit with exitNoUpdate without printing
// an error.
var errNothingUpdated = errors.New("no device updated")

var (
	// Global flags
	verbose    bool
	quiet      bool
	configFile string
	logFormat  string
)

// cfg holds the merged flag, environment and config file settings. Set by
// PersistentPreRunE.
var cfg settings

var rootCmd = &cobra.Command{
	Use:   "btdualboot",
	Short: "Share Bluetooth pairings between Windows and Linux",
	Long: `btdualboot reads the Bluetooth pairing keys of a Windows installation
from its SYSTEM registry hive and writes them into the matching BlueZ device
records under /var/lib/bluetooth, so devices paired under Windows stay
paired under Linux.

Only devices that are already paired under Linux are updated.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/btdualboot/config.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "", "Log format: console or json")
}

// setup loads configuration and initializes logging for every command.
func setup(cmd *cobra.Command, args []string) error {
	v, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	bindFlags(v, cmd)

	s, err := readSettings(v)
	if err != nil {
		return err
	}
	switch {
	case verbose:
		s.LogLevel = "debug"
	case quiet:
		s.LogLevel = "error"
	}
	cfg = s

	return logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: logger.Format(cfg.LogFormat),
		Fields: []zap.Field{zap.String("run", uuid.NewString())},
	})
}

// execute runs the root command and maps its result to an exit code.
func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cobra hands the root context to a subcommand only while the
	// subcommand has none, so a second execute would inherit a stopped one.
	for _, c := range rootCmd.Commands() {
		c.SetContext(ctx)
	}
	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitUpdated
	case errors.Is(err, errNothingUpdated):
		return exitNoUpdate
	default:
		printError("%v\n", err)
		return exitFatal
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
