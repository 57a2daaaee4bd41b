// Status command shows the wash status of the selected vehicle.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/internal/derive"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show days since the selected vehicle's last wash",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	vehicle, err := resolveVehicle(s)
	if err != nil {
		return err
	}

	days, ok := s.DaysSinceLastWash(vehicle.VehicleID)
	profile := derive.ResolveProfile(vehicle.Make)

	if flagJSON {
		out := map[string]any{
			"vehicleId": vehicle.VehicleID,
			"name":      vehicle.Name,
			"profile":   profile.Name,
		}
		if ok {
			out["daysSinceLastWash"] = days
		} else {
			out["daysSinceLastWash"] = nil
		}
		return printJSON(out)
	}

	fmt.Printf("%s (%s %s)\n", vehicle.Name, vehicle.Make, vehicle.Model)
	if !ok {
		fmt.Println("No wash entries yet.")
		return nil
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	fmt.Printf("%d %s since last wash\n", days, unit)
	return nil
}
