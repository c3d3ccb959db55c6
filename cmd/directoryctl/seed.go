package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPost("/api/admin/seed", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(seedCmd)
}
