// JSON record structures and the encode/decode/normalize step for the
// persisted blobs. All "fill in missing optional field" logic lives
// here so the store can assume fully-normalized records once loaded.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

// vehicleJSON mirrors one element of the "cars" blob. Make and Model
// are pointers because legacy records predate the fields.
type vehicleJSON struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Make  *string `json:"make,omitempty"`
	Model *string `json:"model,omitempty"`
}

// entryJSON mirrors one element of a "washEntries" list. Date is stored
// as RFC 3339 text; Treatments may be absent on legacy records.
type entryJSON struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Notes          string          `json:"notes"`
	BeforeImageURL *string         `json:"beforeImageUrl,omitempty"`
	AfterImageURL  *string         `json:"afterImageUrl,omitempty"`
	Treatments     map[string]bool `json:"treatments,omitempty"`
}

// LoadResult is the decoded, fully normalized state of the medium.
// Warnings carry non-fatal decode problems (corrupt blobs replaced by
// seed state) that should be surfaced without failing startup.
type LoadResult struct {
	Vehicles []types.Vehicle
	Entries  map[string][]types.WashEntry
	Warnings []error
}

// Load reads and decodes both blobs. An absent blob yields the default
// seed state; a corrupt blob yields the seed state for that blob plus a
// warning wrapping types.ErrCorruptStore.
func Load(m Medium) (LoadResult, error) {
	result := LoadResult{
		Vehicles: []types.Vehicle{types.SeedVehicle()},
		Entries:  make(map[string][]types.WashEntry),
	}

	raw, ok, err := m.ReadBlob(types.BlobVehicles)
	if err != nil {
		return result, fmt.Errorf("load vehicles: %w", err)
	}
	if ok {
		vehicles, err := DecodeVehicles(raw)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Errorf("%w: %s blob: %s", types.ErrCorruptStore, types.BlobVehicles, err))
		} else {
			result.Vehicles = vehicles
		}
	}

	raw, ok, err = m.ReadBlob(types.BlobEntries)
	if err != nil {
		return result, fmt.Errorf("load entries: %w", err)
	}
	if ok {
		entries, err := DecodeEntries(raw)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Errorf("%w: %s blob: %s", types.ErrCorruptStore, types.BlobEntries, err))
		} else {
			result.Entries = entries
		}
	}

	return result, nil
}

// SaveVehicles serializes the full vehicle collection to the medium.
func SaveVehicles(m Medium, vehicles []types.Vehicle) error {
	raw, err := EncodeVehicles(vehicles)
	if err != nil {
		return err
	}
	return m.WriteBlob(types.BlobVehicles, raw)
}

// SaveEntries serializes the full entry index to the medium.
func SaveEntries(m Medium, entries map[string][]types.WashEntry) error {
	raw, err := EncodeEntries(entries)
	if err != nil {
		return err
	}
	return m.WriteBlob(types.BlobEntries, raw)
}

// DecodeVehicles parses the "cars" blob. An empty decoded collection is
// replaced by the seed vehicle so the store never starts without one.
// Missing make/model fields normalize to empty strings.
func DecodeVehicles(raw string) ([]types.Vehicle, error) {
	var records []vehicleJSON
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("parsing vehicles: %w", err)
	}
	if len(records) == 0 {
		return []types.Vehicle{types.SeedVehicle()}, nil
	}

	vehicles := make([]types.Vehicle, 0, len(records))
	for _, rec := range records {
		vehicles = append(vehicles, types.Vehicle{
			VehicleID: rec.ID,
			Name:      rec.Name,
			Color:     rec.Color,
			Make:      stringValue(rec.Make),
			Model:     stringValue(rec.Model),
		})
	}
	return vehicles, nil
}

// EncodeVehicles serializes the vehicle collection to the "cars" blob
// format.
func EncodeVehicles(vehicles []types.Vehicle) (string, error) {
	records := make([]vehicleJSON, 0, len(vehicles))
	for _, v := range vehicles {
		records = append(records, vehicleJSON{
			ID:    v.VehicleID,
			Name:  v.Name,
			Color: v.Color,
			Make:  &v.Make,
			Model: &v.Model,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encoding vehicles: %w", err)
	}
	return string(data), nil
}

// DecodeEntries parses the "washEntries" blob. Entry dates parse from
// RFC 3339 text; records with unparseable dates are skipped. Treatments
// default to the all-unapplied catalog mapping when absent, and keys
// outside the catalog are dropped.
func DecodeEntries(raw string) (map[string][]types.WashEntry, error) {
	var records map[string][]entryJSON
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}

	entries := make(map[string][]types.WashEntry, len(records))
	for vehicleID, recs := range records {
		list := make([]types.WashEntry, 0, len(recs))
		for _, rec := range recs {
			date, err := parseEntryDate(rec.Date)
			if err != nil {
				// Skip records whose date cannot be recovered.
				continue
			}
			list = append(list, types.WashEntry{
				EntryID:        rec.ID,
				Date:           date,
				Type:           rec.Type,
				Notes:          rec.Notes,
				BeforeImageURL: stringValue(rec.BeforeImageURL),
				AfterImageURL:  stringValue(rec.AfterImageURL),
				Treatments:     normalizeTreatments(rec.Treatments),
			})
		}
		entries[vehicleID] = list
	}
	return entries, nil
}

// EncodeEntries serializes the entry index to the "washEntries" blob
// format.
func EncodeEntries(entries map[string][]types.WashEntry) (string, error) {
	records := make(map[string][]entryJSON, len(entries))
	for vehicleID, list := range entries {
		recs := make([]entryJSON, 0, len(list))
		for _, e := range list {
			rec := entryJSON{
				ID:         e.EntryID,
				Date:       e.Date.Format(time.RFC3339),
				Type:       e.Type,
				Notes:      e.Notes,
				Treatments: e.Treatments,
			}
			if e.BeforeImageURL != "" {
				url := e.BeforeImageURL
				rec.BeforeImageURL = &url
			}
			if e.AfterImageURL != "" {
				url := e.AfterImageURL
				rec.AfterImageURL = &url
			}
			recs = append(recs, rec)
		}
		records[vehicleID] = recs
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encoding entries: %w", err)
	}
	return string(data), nil
}

// parseEntryDate parses the persisted timestamp. RFC 3339 is the write
// format; bare dates from hand-edited blobs are accepted on read.
func parseEntryDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// normalizeTreatments maps a possibly-absent treatments record onto the
// fixed catalog: every catalog key present, absent keys false, unknown
// keys dropped.
func normalizeTreatments(raw map[string]bool) map[string]bool {
	treatments := make(map[string]bool, len(types.TreatmentCatalog))
	for _, name := range types.TreatmentCatalog {
		treatments[name] = raw[name]
	}
	return treatments
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
