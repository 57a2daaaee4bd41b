// Vehicle edit command updates an existing vehicle in place.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/internal/store"
	"github.com/mesh-intelligence/washlog/pkg/types"
)

var (
	vehicleEditName  string
	vehicleEditMake  string
	vehicleEditModel string
	vehicleEditColor string
)

var vehicleEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a vehicle",
	Long: `Edit replaces a vehicle's fields, keeping its id and position.
Flags left empty keep the current value.

Example:
  washlog vehicle edit 0198c2f0 --name "Commuter"`,
	Args: cobra.ExactArgs(1),
	RunE: runVehicleEdit,
}

func init() {
	vehicleEditCmd.Flags().StringVar(&vehicleEditName, "name", "", "display name")
	vehicleEditCmd.Flags().StringVar(&vehicleEditMake, "make", "", "manufacturer")
	vehicleEditCmd.Flags().StringVar(&vehicleEditModel, "model", "", "model")
	vehicleEditCmd.Flags().StringVar(&vehicleEditColor, "color", "", "swatch color token")
}

func runVehicleEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	id := args[0]
	draft, err := editDraft(s, id)
	if err != nil {
		return err
	}

	vehicle, err := s.UpdateVehicle(id, draft)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}

	if flagJSON {
		return printJSON(vehicle)
	}
	fmt.Printf("Updated vehicle %s (%s)\n", vehicle.Name, vehicle.VehicleID)
	return nil
}

// editDraft builds an update draft from the current vehicle fields,
// overridden by any flags the user set.
func editDraft(s *store.Store, id string) (types.VehicleDraft, error) {
	for _, v := range s.Vehicles() {
		if v.VehicleID != id {
			continue
		}
		draft := types.VehicleDraft{
			Name:  v.Name,
			Make:  v.Make,
			Model: v.Model,
			Color: v.Color,
		}
		if vehicleEditName != "" {
			draft.Name = vehicleEditName
		}
		if vehicleEditMake != "" {
			draft.Make = vehicleEditMake
		}
		if vehicleEditModel != "" {
			draft.Model = vehicleEditModel
		}
		if vehicleEditColor != "" {
			draft.Color = vehicleEditColor
		}
		return draft, nil
	}
	return types.VehicleDraft{}, fmt.Errorf("%w: %q", types.ErrVehicleNotFound, id)
}
