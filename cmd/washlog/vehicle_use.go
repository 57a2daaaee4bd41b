// Vehicle use command switches the selected vehicle.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

var vehicleUseCmd = &cobra.Command{
	Use:   "use <id-or-name>",
	Short: "Select the vehicle new washes are logged against",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleUse,
}

func runVehicleUse(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	target := args[0]
	for _, v := range s.Vehicles() {
		if v.VehicleID == target || strings.EqualFold(v.Name, target) {
			s.SetActiveVehicle(v.VehicleID)
			if err := writeSelected(v.VehicleID); err != nil {
				return err
			}
			fmt.Printf("Selected vehicle %s (%s)\n", v.Name, v.VehicleID)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", types.ErrVehicleNotFound, target)
}
