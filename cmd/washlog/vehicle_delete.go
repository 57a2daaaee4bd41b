// Vehicle delete command removes a vehicle and its wash history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vehicleDeleteCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a vehicle and its wash history",
	Args:    cobra.ExactArgs(1),
	RunE:    runVehicleDelete,
}

func runVehicleDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// Match the app behavior of hiding delete when only one vehicle
	// exists. The store would reseed anyway; refusing here avoids the
	// surprise of a "deleted" vehicle being replaced by the default.
	if len(s.Vehicles()) == 1 {
		return fmt.Errorf("cannot delete the only vehicle")
	}

	id := args[0]
	if err := s.DeleteVehicle(id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}

	if active, ok := s.ActiveVehicle(); ok {
		if err := writeSelected(active.VehicleID); err != nil {
			return err
		}
	}

	fmt.Printf("Deleted vehicle %s\n", id)
	return nil
}
