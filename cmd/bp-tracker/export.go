package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quentinrf/bp-tracker/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export readings and summary as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(cmd)
			if err != nil {
				return err
			}

			readings, err := repo.ListReadings(cmd.Context())
			if err != nil {
				return err
			}

			out, err := report.BuildXLSX(readings)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("out")
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}

			log.Debug().Str("path", path).Int("readings", len(readings)).Msg("export written")
			fmt.Printf("Export written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "bp-readings.xlsx", "Output file path")

	return cmd
}
