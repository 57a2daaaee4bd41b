package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the washlog storage",
	Long: `Init creates the config and data directories and seeds the store with
the default vehicle if no data exists yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		vehicles := s.Vehicles()
		fmt.Printf("Washlog initialized (%d vehicle(s))\n", len(vehicles))
		return nil
	},
}
