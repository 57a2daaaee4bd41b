// Vehicle add command registers a new vehicle and makes it active.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/internal/derive"
	"github.com/mesh-intelligence/washlog/pkg/types"
)

var (
	vehicleAddName  string
	vehicleAddMake  string
	vehicleAddModel string
	vehicleAddColor string
)

var vehicleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new vehicle",
	Long: `Add registers a new vehicle with the given name and make. The new
vehicle becomes the selected one.

Example:
  washlog vehicle add --name "Daily" --make Honda --model Civic
  washlog vehicle add --name "Weekender" --make Mazda --color "#F64E60"`,
	RunE: runVehicleAdd,
}

func init() {
	vehicleAddCmd.Flags().StringVar(&vehicleAddName, "name", "", "display name (required)")
	vehicleAddCmd.Flags().StringVar(&vehicleAddMake, "make", "", "manufacturer (required)")
	vehicleAddCmd.Flags().StringVar(&vehicleAddModel, "model", "", "model")
	vehicleAddCmd.Flags().StringVar(&vehicleAddColor, "color", "", "swatch color token (default: random)")
	_ = vehicleAddCmd.MarkFlagRequired("name")
	_ = vehicleAddCmd.MarkFlagRequired("make")
}

func runVehicleAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	color := vehicleAddColor
	if color == "" {
		color = derive.RandomColor()
	}

	vehicle, err := s.AddVehicle(types.VehicleDraft{
		Name:  vehicleAddName,
		Make:  vehicleAddMake,
		Model: vehicleAddModel,
		Color: color,
	})
	if err != nil {
		return fmt.Errorf("add vehicle: %w", err)
	}

	if err := writeSelected(vehicle.VehicleID); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(vehicle)
	}
	fmt.Printf("Added vehicle %s (%s)\n", vehicle.Name, vehicle.VehicleID)
	return nil
}
