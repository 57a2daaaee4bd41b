// Wash list command prints a vehicle's history, most recent first.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var washListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List wash entries for the selected vehicle",
	RunE:    runWashList,
}

func runWashList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	vehicle, err := resolveVehicle(s)
	if err != nil {
		return err
	}

	entries := s.Entries(vehicle.VehicleID)
	if flagJSON {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Printf("No wash history for %s.\n", vehicle.Name)
		return nil
	}

	for _, e := range entries {
		applied := treatmentOrder(e.Treatments)
		line := fmt.Sprintf("%s  %s  %-10s", e.EntryID, e.Date.Format("2006-01-02"), e.Type)
		if len(applied) > 0 {
			line += "  [" + strings.Join(applied, ", ") + "]"
		}
		if e.Notes != "" {
			line += "  " + e.Notes
		}
		fmt.Println(line)
	}
	return nil
}
