// Package store holds the authoritative in-memory collections of
// vehicles and wash entries, the mutation surface the presentation
// layer calls, and the in-progress entry draft. Every mutation is
// followed by a full persistence write of the affected blob.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/washlog/internal/derive"
	"github.com/mesh-intelligence/washlog/internal/storage"
	"github.com/mesh-intelligence/washlog/pkg/types"
)

// Store is the session-scoped entity store. It is safe for the single
// UI goroutine plus asynchronous image-ingestion completions.
type Store struct {
	mu       sync.RWMutex
	open     bool
	medium   storage.Medium
	vehicles []types.Vehicle
	entries  map[string][]types.WashEntry
	activeID string
	draft    types.EntryDraft
	warnings []error
}

// Open loads (or seeds) the store from the medium named by config.
// The first vehicle becomes active and a fresh entry draft is prepared.
func Open(config types.Config) (*Store, error) {
	medium, err := storage.OpenMedium(config)
	if err != nil {
		return nil, fmt.Errorf("open medium: %w", err)
	}

	result, err := storage.Load(medium)
	if err != nil {
		medium.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}

	return &Store{
		open:     true,
		medium:   medium,
		vehicles: result.Vehicles,
		entries:  result.Entries,
		activeID: result.Vehicles[0].VehicleID,
		draft:    derive.NewDraft(time.Now()),
		warnings: result.Warnings,
	}, nil
}

// Close releases the storage medium. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	return s.medium.Close()
}

// Warnings returns non-fatal problems encountered while loading, such
// as a corrupt blob replaced by seed state.
func (s *Store) Warnings() []error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]error(nil), s.warnings...)
}

// Vehicles returns a copy of the vehicle collection in display order.
func (s *Store) Vehicles() []types.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Vehicle(nil), s.vehicles...)
}

// ActiveVehicle returns the currently selected vehicle. The second
// return is false only if the store is closed.
func (s *Store) ActiveVehicle() (types.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return types.Vehicle{}, false
	}
	for _, v := range s.vehicles {
		if v.VehicleID == s.activeID {
			return v, true
		}
	}
	// Self-heal a dangling selection.
	return s.vehicles[0], true
}

// SetActiveVehicle sets the active vehicle id unconditionally. Dangling
// ids are healed on read and on vehicle deletion.
func (s *Store) SetActiveVehicle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = id
}

// Entries returns a copy of the entry list for a vehicle,
// most-recent-first.
func (s *Store) Entries(vehicleID string) []types.WashEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEntryList(s.entries[vehicleID])
}

// DaysSinceLastWash derives the wash status for a vehicle. The second
// return is false when the vehicle has never been washed.
func (s *Store) DaysSinceLastWash(vehicleID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.DaysSinceLastWash(time.Now(), s.entries[vehicleID])
}

// AddVehicle validates the draft, assigns a fresh id, appends the
// vehicle to the collection, makes it active, and persists.
func (s *Store) AddVehicle(draft types.VehicleDraft) (types.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.Vehicle{}, types.ErrStoreClosed
	}
	if err := draft.Validate(); err != nil {
		return types.Vehicle{}, err
	}

	color := draft.Color
	if color == "" {
		color = types.ColorSwatch[0]
	}
	vehicle := types.Vehicle{
		VehicleID: newID(),
		Name:      draft.Name,
		Color:     color,
		Make:      draft.Make,
		Model:     draft.Model,
	}

	s.vehicles = append(s.vehicles, vehicle)
	s.activeID = vehicle.VehicleID

	if err := s.saveVehicles(); err != nil {
		return vehicle, err
	}
	return vehicle, nil
}

// UpdateVehicle validates the draft and replaces the fields of the
// vehicle with the given id, preserving its id and position.
// Returns ErrVehicleNotFound if the id does not exist.
func (s *Store) UpdateVehicle(id string, draft types.VehicleDraft) (types.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.Vehicle{}, types.ErrStoreClosed
	}
	if err := draft.Validate(); err != nil {
		return types.Vehicle{}, err
	}

	for i, v := range s.vehicles {
		if v.VehicleID != id {
			continue
		}
		updated := types.Vehicle{
			VehicleID: id,
			Name:      draft.Name,
			Color:     draft.Color,
			Make:      draft.Make,
			Model:     draft.Model,
		}
		if updated.Color == "" {
			updated.Color = v.Color
		}
		s.vehicles[i] = updated

		if err := s.saveVehicles(); err != nil {
			return updated, err
		}
		return updated, nil
	}
	return types.Vehicle{}, types.ErrVehicleNotFound
}

// DeleteVehicle removes the vehicle and cascades deletion of its entry
// list. A dangling active selection moves to the first remaining
// vehicle; deleting the last vehicle reseeds the default vehicle and
// makes it active. A missing id is a benign no-op.
func (s *Store) DeleteVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	remaining := s.vehicles[:0:0]
	found := false
	for _, v := range s.vehicles {
		if v.VehicleID == id {
			found = true
			continue
		}
		remaining = append(remaining, v)
	}
	if !found {
		return nil
	}

	s.vehicles = remaining
	delete(s.entries, id)

	if len(s.vehicles) == 0 {
		seed := types.SeedVehicle()
		s.vehicles = []types.Vehicle{seed}
		s.activeID = seed.VehicleID
	} else if s.activeID == id {
		s.activeID = s.vehicles[0].VehicleID
	}

	if err := s.saveVehicles(); err != nil {
		return err
	}
	return s.saveEntries()
}

// AddEntry validates the draft, assigns a fresh id, and prepends the
// entry to the vehicle's list so it becomes the most recent. The store
// draft is reset on success. Returns ErrVehicleNotFound for unknown
// vehicle ids.
func (s *Store) AddEntry(vehicleID string, draft types.EntryDraft) (types.WashEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.WashEntry{}, types.ErrStoreClosed
	}
	if err := draft.Validate(); err != nil {
		return types.WashEntry{}, err
	}
	if !s.vehicleExists(vehicleID) {
		return types.WashEntry{}, types.ErrVehicleNotFound
	}

	entry := types.WashEntry{
		EntryID:        newID(),
		Date:           draft.Date,
		Type:           draft.Type,
		Notes:          draft.Notes,
		BeforeImageURL: draft.BeforeImageURL,
		AfterImageURL:  draft.AfterImageURL,
		Treatments:     copyTreatments(draft.Treatments),
	}

	s.entries[vehicleID] = append([]types.WashEntry{entry}, s.entries[vehicleID]...)
	s.draft = derive.NewDraft(time.Now())

	if err := s.saveEntries(); err != nil {
		return entry, err
	}
	return entry, nil
}

// DeleteEntry removes the matching entry from the vehicle's list. A
// missing vehicle or entry id is a benign no-op.
func (s *Store) DeleteEntry(vehicleID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	list, ok := s.entries[vehicleID]
	if !ok {
		return nil
	}
	filtered := list[:0:0]
	found := false
	for _, e := range list {
		if e.EntryID == entryID {
			found = true
			continue
		}
		filtered = append(filtered, e)
	}
	if !found {
		return nil
	}

	s.entries[vehicleID] = filtered
	return s.saveEntries()
}

// Draft returns a copy of the in-progress entry draft.
func (s *Store) Draft() types.EntryDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.draft
	d.Treatments = copyTreatments(s.draft.Treatments)
	return d
}

// SetDraftDate sets the draft date, leaving other fields untouched.
func (s *Store) SetDraftDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Date = date
}

// SetDraftType sets the draft wash type.
// Returns ErrWashTypeInvalid for unknown types.
func (s *Store) SetDraftType(washType string) error {
	if !types.ValidWashType(washType) {
		return types.ErrWashTypeInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Type = washType
	return nil
}

// SetDraftNotes sets the draft notes.
func (s *Store) SetDraftNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Notes = notes
}

// ToggleDraftTreatment flips the applied flag for a treatment on the
// draft. Returns ErrTreatmentUnknown for names outside the catalog.
func (s *Store) ToggleDraftTreatment(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.ToggleTreatment(name)
}

// AttachDraftImage merges an ingested image into the draft. Only the
// named slot is written, so a completion arriving after other draft
// edits does not clobber them.
func (s *Store) AttachDraftImage(slot types.ImageSlot, dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetImage(slot, dataURI)
}

// ResetDraft discards the in-progress draft, including any image that
// finished ingesting after the user abandoned it.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = derive.NewDraft(time.Now())
}

// vehicleExists reports whether id references a vehicle. The caller
// must hold s.mu.
func (s *Store) vehicleExists(id string) bool {
	for _, v := range s.vehicles {
		if v.VehicleID == id {
			return true
		}
	}
	return false
}

// saveVehicles persists the full vehicle collection. The in-memory
// state stays authoritative for the session even when the write fails;
// the error surfaces wrapped in ErrStorageUnavailable. The caller must
// hold s.mu.
func (s *Store) saveVehicles() error {
	if err := storage.SaveVehicles(s.medium, s.vehicles); err != nil {
		return fmt.Errorf("%w: %w", types.ErrStorageUnavailable, err)
	}
	return nil
}

// saveEntries persists the full entry index. Same contract as
// saveVehicles. The caller must hold s.mu.
func (s *Store) saveEntries() error {
	if err := storage.SaveEntries(s.medium, s.entries); err != nil {
		return fmt.Errorf("%w: %w", types.ErrStorageUnavailable, err)
	}
	return nil
}

// newID generates a UUID v7 for entity ids. Time-ordered ids keep
// rapid consecutive creations collision-free.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func copyTreatments(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyEntryList(src []types.WashEntry) []types.WashEntry {
	if src == nil {
		return nil
	}
	dst := make([]types.WashEntry, len(src))
	copy(dst, src)
	return dst
}
