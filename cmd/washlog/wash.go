package main

import "github.com/spf13/cobra"

var washCmd = &cobra.Command{
	Use:   "wash",
	Short: "Record and inspect wash entries",
}

func init() {
	washCmd.AddCommand(washAddCmd)
	washCmd.AddCommand(washDeleteCmd)
	washCmd.AddCommand(washListCmd)
}
