// Wash delete command removes one entry from a vehicle's history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var washDeleteCmd = &cobra.Command{
	Use:     "rm <entry-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a wash entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runWashDelete,
}

func runWashDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	vehicle, err := resolveVehicle(s)
	if err != nil {
		return err
	}

	// Missing entry ids are absorbed: delete is idempotent.
	if err := s.DeleteEntry(vehicle.VehicleID, args[0]); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	fmt.Printf("Deleted entry %s from %s\n", args[0], vehicle.Name)
	return nil
}
