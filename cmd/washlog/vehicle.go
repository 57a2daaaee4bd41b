package main

import "github.com/spf13/cobra"

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Manage tracked vehicles",
}

func init() {
	vehicleCmd.AddCommand(vehicleAddCmd)
	vehicleCmd.AddCommand(vehicleEditCmd)
	vehicleCmd.AddCommand(vehicleDeleteCmd)
	vehicleCmd.AddCommand(vehicleListCmd)
	vehicleCmd.AddCommand(vehicleUseCmd)
}
