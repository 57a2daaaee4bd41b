// Vehicle list command prints all tracked vehicles.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vehicleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tracked vehicles",
	RunE:    runVehicleList,
}

func runVehicleList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	vehicles := s.Vehicles()
	if flagJSON {
		return printJSON(vehicles)
	}

	active, _ := s.ActiveVehicle()
	for _, v := range vehicles {
		marker := " "
		if v.VehicleID == active.VehicleID {
			marker = "*"
		}
		desc := v.Make
		if v.Model != "" {
			desc += " " + v.Model
		}
		fmt.Printf("%s %s  %s  (%s)\n", marker, v.VehicleID, v.Name, desc)
	}
	return nil
}
