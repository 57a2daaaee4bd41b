// Wash add command records a wash entry against the selected vehicle.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/internal/imaging"
	"github.com/mesh-intelligence/washlog/internal/store"
	"github.com/mesh-intelligence/washlog/pkg/types"
)

var (
	washAddDate   string
	washAddType   string
	washAddNotes  string
	washAddBefore string
	washAddAfter  string
	washAddTreats []string
)

var washAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a wash entry",
	Long: `Add records a wash entry for the selected vehicle (or the one named
by --vehicle). The entry becomes the most recent in the vehicle's
history.

Example:
  washlog wash add --type Detail --notes "spring clean" --treat "Wax/Sealant"
  washlog wash add --date 2026-08-20 --before before.jpg --after after.jpg`,
	RunE: runWashAdd,
}

func init() {
	washAddCmd.Flags().StringVar(&washAddDate, "date", "", "wash date, YYYY-MM-DD (default: today)")
	washAddCmd.Flags().StringVar(&washAddType, "type", "", "wash type: Manual, Drive-thru, or Detail (default: Manual)")
	washAddCmd.Flags().StringVar(&washAddNotes, "notes", "", "free-text notes")
	washAddCmd.Flags().StringVar(&washAddBefore, "before", "", "path to a before photo")
	washAddCmd.Flags().StringVar(&washAddAfter, "after", "", "path to an after photo")
	washAddCmd.Flags().StringArrayVar(&washAddTreats, "treat", nil, "treatment applied (repeatable)")
}

func runWashAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	vehicle, err := resolveVehicle(s)
	if err != nil {
		return err
	}

	if err := buildDraft(s); err != nil {
		return err
	}

	entry, err := s.AddEntry(vehicle.VehicleID, s.Draft())
	if err != nil {
		return fmt.Errorf("add entry: %w", err)
	}

	if flagJSON {
		return printJSON(entry)
	}
	fmt.Printf("Recorded %s wash for %s on %s\n",
		entry.Type, vehicle.Name, entry.Date.Format("2006-01-02"))
	return nil
}

// buildDraft applies the command flags to the store's fresh entry
// draft. Image reads run concurrently and merge into their slot only,
// so they never clobber the other fields.
func buildDraft(s *store.Store) error {
	if washAddDate != "" {
		date, err := parseDateFlag(washAddDate)
		if err != nil {
			return err
		}
		s.SetDraftDate(date)
	}
	if washAddType != "" {
		if err := s.SetDraftType(washAddType); err != nil {
			return fmt.Errorf("invalid type %q: %w", washAddType, err)
		}
	}
	if washAddNotes != "" {
		s.SetDraftNotes(washAddNotes)
	}
	for _, name := range washAddTreats {
		if err := s.ToggleDraftTreatment(name); err != nil {
			return fmt.Errorf("invalid treatment %q: %w", name, err)
		}
	}

	var beforeCh, afterCh <-chan imaging.Result
	if washAddBefore != "" {
		beforeCh = imaging.Ingest(washAddBefore)
	}
	if washAddAfter != "" {
		afterCh = imaging.Ingest(washAddAfter)
	}
	if beforeCh != nil {
		res := <-beforeCh
		if res.Err != nil {
			return res.Err
		}
		s.AttachDraftImage(types.ImageBefore, res.DataURI)
	}
	if afterCh != nil {
		res := <-afterCh
		if res.Err != nil {
			return res.Err
		}
		s.AttachDraftImage(types.ImageAfter, res.DataURI)
	}
	return nil
}
