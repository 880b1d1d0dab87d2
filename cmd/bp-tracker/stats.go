package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded readings",
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

			summary, err := domain.Summarize(readings)
			if errors.Is(err, domain.ErrNoReadings) {
				fmt.Println("No readings recorded yet.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%d readings from %s to %s\n\n",
				summary.Count,
				summary.First.Format("2006-01-02"),
				summary.Last.Format("2006-01-02"))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tMIN\tAVG\tMAX")
			fmt.Fprintf(w, "Systolic\t%d\t%.1f\t%d\n",
				summary.Systolic.Min, summary.Systolic.Avg, summary.Systolic.Max)
			fmt.Fprintf(w, "Diastolic\t%d\t%.1f\t%d\n",
				summary.Diastolic.Min, summary.Diastolic.Avg, summary.Diastolic.Max)
			fmt.Fprintf(w, "BPM\t%d\t%.1f\t%d\n",
				summary.BPM.Min, summary.BPM.Avg, summary.BPM.Max)
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			for _, cat := range domain.Categories() {
				if n := summary.ByCategory[cat]; n > 0 {
					fmt.Printf("%-22s %d\n", cat.DisplayName(), n)
				}
			}
			return nil
		},
	}
}
