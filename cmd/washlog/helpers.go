// Shared helpers for washlog CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mesh-intelligence/washlog/internal/store"
	"github.com/mesh-intelligence/washlog/pkg/types"
)

// selectedFileName stores the CLI's sticky vehicle selection in the
// config directory. Selection is presentation state; the core's storage
// medium holds only the two entity blobs.
const selectedFileName = "selected"

// openStore resolves the data directory and backend, opens the store,
// restores the sticky selection, and reports load warnings on stderr.
// The caller must defer s.Close().
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}

	s, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	for _, warn := range s.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", warn)
	}

	if id := readSelected(); id != "" {
		s.SetActiveVehicle(id)
	}
	return s, nil
}

// resolveVehicle returns the vehicle to operate on: the --vehicle flag
// (matched by id, then by name, case-insensitively) when given,
// otherwise the active vehicle.
func resolveVehicle(s *store.Store) (types.Vehicle, error) {
	if flagVehicle == "" {
		active, ok := s.ActiveVehicle()
		if !ok {
			return types.Vehicle{}, types.ErrVehicleNotFound
		}
		return active, nil
	}

	for _, v := range s.Vehicles() {
		if v.VehicleID == flagVehicle || strings.EqualFold(v.Name, flagVehicle) {
			return v, nil
		}
	}
	return types.Vehicle{}, fmt.Errorf("%w: %q", types.ErrVehicleNotFound, flagVehicle)
}

// selectedFilePath returns the path of the sticky-selection file, or ""
// when the config dir cannot be resolved.
func selectedFilePath() string {
	configDir, err := resolveConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, selectedFileName)
}

// readSelected returns the persisted vehicle selection, or "" when none
// is recorded. A dangling id is harmless: the store heals it on read.
func readSelected() string {
	path := selectedFilePath()
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// writeSelected persists the vehicle selection for future invocations.
func writeSelected(id string) error {
	path := selectedFilePath()
	if path == "" {
		return fmt.Errorf("resolve config dir for selection")
	}
	return os.WriteFile(path, []byte(id+"\n"), 0o644)
}

// treatmentOrder returns the applied treatments in catalog order.
func treatmentOrder(treatments map[string]bool) []string {
	var applied []string
	for _, name := range types.TreatmentCatalog {
		if treatments[name] {
			applied = append(applied, name)
		}
	}
	return applied
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// parseDateFlag accepts YYYY-MM-DD or full RFC 3339 timestamps.
func parseDateFlag(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
