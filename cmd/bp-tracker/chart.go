package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quentinrf/bp-tracker/internal/report"
)

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a PDF trend chart of all readings",
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

			out, err := report.BuildTrendPDF(readings)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("out")
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}

			log.Debug().Str("path", path).Int("readings", len(readings)).Msg("chart written")
			fmt.Printf("Chart written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "bp-chart.pdf", "Output file path")

	return cmd
}
