package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if show, _ := cmd.Flags().GetBool("show"); show {
				csvPath := cfg.CSVPath()
				_, statErr := os.Stat(csvPath)
				fmt.Println("Configuration:")
				fmt.Printf("  Config file: %s\n", cfg.Path())
				fmt.Printf("  CSV file: %s\n", csvPath)
				fmt.Printf("  CSV exists: %v\n", statErr == nil)
				return nil
			}

			if csvPath, _ := cmd.Flags().GetString("csv-path"); csvPath != "" {
				abs, err := filepath.Abs(csvPath)
				if err != nil {
					return err
				}
				if err := cfg.SetCSVPath(abs); err != nil {
					return err
				}
				fmt.Printf("CSV path updated to: %s\n", abs)
				return nil
			}

			if err := cfg.InitializeDefault(); err != nil {
				return err
			}
			fmt.Printf("Configuration initialized at: %s\n", cfg.Path())
			return nil
		},
	}

	cmd.Flags().Bool("show", false, "Show current configuration")
	cmd.Flags().String("csv-path", "", "Set CSV file path")

	return cmd
}
