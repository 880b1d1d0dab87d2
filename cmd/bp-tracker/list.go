package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show recorded readings, oldest first",
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
			if len(readings) == 0 {
				fmt.Println("No readings recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTIME\tSYS\tDIA\tBPM\tCATEGORY")
			for _, r := range readings {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
					r.Timestamp.Format("2006-01-02"),
					r.Timestamp.Format("15:04:05"),
					r.Systolic, r.Diastolic, r.BPM, r.Category)
			}
			return w.Flush()
		},
	}
}
