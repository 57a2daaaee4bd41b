// Treatments command prints the fixed treatment catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

var treatmentsCmd = &cobra.Command{
	Use:   "treatments",
	Short: "List the treatment catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(types.TreatmentCatalog)
		}
		for _, name := range types.TreatmentCatalog {
			fmt.Println(name)
		}
		return nil
	},
}
