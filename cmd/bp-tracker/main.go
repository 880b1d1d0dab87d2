package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quentinrf/bp-tracker/internal/adapters/csvfile"
	"github.com/quentinrf/bp-tracker/internal/config"
	"github.com/quentinrf/bp-tracker/internal/domain"
	"github.com/quentinrf/bp-tracker/internal/tui"
)

var Version = "dev"

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bp-tracker [systolic diastolic bpm]",
		Short:   "Track blood pressure readings",
		Version: Version,
		Args:    cobra.RangeArgs(0, 3),
		Example: "  bp-tracker 120 80 72     # Log reading via command line\n" +
			"  bp-tracker               # Interactive mode\n" +
			"  bp-tracker list          # Show recorded readings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: runLog,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/bp-tracker/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(listCmd())
	cmd.AddCommand(statsCmd())
	cmd.AddCommand(chartCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(configCmd())

	return cmd
}

// runLog records a reading, either from the three positional arguments
// or interactively when none are given.
func runLog(cmd *cobra.Command, args []string) error {
	var reading *domain.Reading
	var err error

	switch len(args) {
	case 3:
		reading, err = domain.ParseReading(args[0], args[1], args[2])
		if err != nil {
			return err
		}
	case 0:
		reading, err = tui.Run()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("all three values required: systolic diastolic bpm")
	}

	repo, err := openRepo(cmd)
	if err != nil {
		return err
	}

	if err := repo.SaveReading(cmd.Context(), reading); err != nil {
		return err
	}

	log.Debug().
		Int("systolic", reading.Systolic).
		Int("diastolic", reading.Diastolic).
		Int("bpm", reading.BPM).
		Str("category", reading.Category.String()).
		Str("path", repo.Path()).
		Msg("reading saved")

	fmt.Printf("Reading saved: %d/%d mmHg, %d BPM - %s\n",
		reading.Systolic, reading.Diastolic, reading.BPM, reading.Category.DisplayName())
	return nil
}

// openRepo loads the config and opens the CSV store it points at.
func openRepo(cmd *cobra.Command) (*csvfile.ReadingRepository, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return csvfile.NewReadingRepository(cfg.CSVPath())
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// reportError maps an error to the stderr message and exit code the
// user sees.
func reportError(err error) int {
	var verr *domain.ValidationError
	var serr *domain.StorageError
	var cerr *config.ConfigError

	switch {
	case errors.Is(err, tui.ErrCancelled):
		fmt.Fprintln(os.Stderr, "Cancelled by user.")
		return 130
	case errors.As(err, &verr):
		fmt.Fprintf(os.Stderr, "Validation Error: %v\n", err)
	case errors.As(err, &serr):
		fmt.Fprintf(os.Stderr, "Storage Error: %v\n", err)
	case errors.As(err, &cerr):
		fmt.Fprintf(os.Stderr, "Configuration Error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}
