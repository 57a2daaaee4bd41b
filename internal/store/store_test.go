package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func draftEntry(date time.Time, washType string) types.EntryDraft {
	return types.EntryDraft{Date: date, Type: washType}
}

func TestOpenSeedsDefaultVehicle(t *testing.T) {
	s := newTestStore(t)

	vehicles := s.Vehicles()
	require.Len(t, vehicles, 1)
	assert.Equal(t, types.SeedVehicle(), vehicles[0])

	active, ok := s.ActiveVehicle()
	require.True(t, ok)
	assert.Equal(t, vehicles[0].VehicleID, active.VehicleID)
	assert.Empty(t, s.Warnings())
}

func TestAddVehicleBecomesActive(t *testing.T) {
	s := newTestStore(t)

	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)
	assert.NotEmpty(t, v.VehicleID)
	assert.NotEmpty(t, v.Color) // default swatch color when none given

	active, ok := s.ActiveVehicle()
	require.True(t, ok)
	assert.Equal(t, v.VehicleID, active.VehicleID)
	assert.Len(t, s.Vehicles(), 2)
}

func TestAddVehicleValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddVehicle(types.VehicleDraft{Make: "Honda"})
	assert.ErrorIs(t, err, types.ErrNameRequired)

	_, err = s.AddVehicle(types.VehicleDraft{Name: "Daily"})
	assert.ErrorIs(t, err, types.ErrMakeRequired)

	// Rejected drafts leave the collection untouched.
	assert.Len(t, s.Vehicles(), 1)
}

func TestUpdateVehiclePreservesIDAndPosition(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda", Color: "#0BB783"})
	require.NoError(t, err)

	updated, err := s.UpdateVehicle(v.VehicleID, types.VehicleDraft{
		Name: "Commuter", Make: "Honda", Model: "Civic",
	})
	require.NoError(t, err)
	assert.Equal(t, v.VehicleID, updated.VehicleID)
	assert.Equal(t, "Commuter", updated.Name)
	// Color carries over when the draft leaves it empty.
	assert.Equal(t, "#0BB783", updated.Color)

	vehicles := s.Vehicles()
	require.Len(t, vehicles, 2)
	assert.Equal(t, v.VehicleID, vehicles[1].VehicleID)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateVehicle("missing", types.VehicleDraft{Name: "X", Make: "Y"})
	assert.ErrorIs(t, err, types.ErrVehicleNotFound)
}

func TestDeleteVehicleNeverEmptiesCollection(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	// Delete every vehicle, in any order; the collection never empties.
	seed := types.SeedVehicle()
	require.NoError(t, s.DeleteVehicle(seed.VehicleID))
	require.NoError(t, s.DeleteVehicle(v.VehicleID))

	vehicles := s.Vehicles()
	require.Len(t, vehicles, 1)
	assert.Equal(t, seed, vehicles[0])

	active, ok := s.ActiveVehicle()
	require.True(t, ok)
	assert.Equal(t, seed.VehicleID, active.VehicleID)
}

func TestDeleteVehicleReselectsFirstRemaining(t *testing.T) {
	s := newTestStore(t)
	v1, err := s.AddVehicle(types.VehicleDraft{Name: "First", Make: "Honda"})
	require.NoError(t, err)
	v2, err := s.AddVehicle(types.VehicleDraft{Name: "Second", Make: "Mazda"})
	require.NoError(t, err)

	s.SetActiveVehicle(v1.VehicleID)
	_, err = s.AddEntry(v1.VehicleID, draftEntry(time.Now(), types.WashTypeManual))
	require.NoError(t, err)

	require.NoError(t, s.DeleteVehicle(v1.VehicleID))

	// Active falls to the first remaining vehicle (the seed) and the
	// deleted vehicle's entries are gone from the index.
	active, ok := s.ActiveVehicle()
	require.True(t, ok)
	assert.Equal(t, types.SeedVehicle().VehicleID, active.VehicleID)
	assert.Empty(t, s.Entries(v1.VehicleID))
	assert.NotEqual(t, v2.VehicleID, active.VehicleID)
}

func TestDeleteVehicleKeepsUnrelatedSelection(t *testing.T) {
	s := newTestStore(t)
	v1, err := s.AddVehicle(types.VehicleDraft{Name: "First", Make: "Honda"})
	require.NoError(t, err)
	v2, err := s.AddVehicle(types.VehicleDraft{Name: "Second", Make: "Mazda"})
	require.NoError(t, err)

	s.SetActiveVehicle(v2.VehicleID)
	require.NoError(t, s.DeleteVehicle(v1.VehicleID))

	active, ok := s.ActiveVehicle()
	require.True(t, ok)
	assert.Equal(t, v2.VehicleID, active.VehicleID)
}

func TestDeleteVehicleMissingIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.DeleteVehicle("missing"))
	assert.Len(t, s.Vehicles(), 1)
}

func TestAddEntryPrependsAndIsolates(t *testing.T) {
	s := newTestStore(t)
	v1, err := s.AddVehicle(types.VehicleDraft{Name: "First", Make: "Honda"})
	require.NoError(t, err)
	v2, err := s.AddVehicle(types.VehicleDraft{Name: "Second", Make: "Mazda"})
	require.NoError(t, err)

	e1, err := s.AddEntry(v1.VehicleID, draftEntry(time.Now().AddDate(0, 0, -2), types.WashTypeManual))
	require.NoError(t, err)
	e2, err := s.AddEntry(v1.VehicleID, draftEntry(time.Now(), types.WashTypeDetail))
	require.NoError(t, err)

	list := s.Entries(v1.VehicleID)
	require.Len(t, list, 2)
	// Most recently inserted entry sits at the head.
	assert.Equal(t, e2.EntryID, list[0].EntryID)
	assert.Equal(t, e1.EntryID, list[1].EntryID)

	// Other vehicles' lists are untouched.
	assert.Empty(t, s.Entries(v2.VehicleID))
	assert.Empty(t, s.Entries(types.SeedVehicle().VehicleID))
}

func TestAddEntryValidation(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	_, err = s.AddEntry(v.VehicleID, types.EntryDraft{Type: types.WashTypeManual})
	assert.ErrorIs(t, err, types.ErrDateRequired)

	_, err = s.AddEntry(v.VehicleID, types.EntryDraft{Date: time.Now(), Type: "Touchless"})
	assert.ErrorIs(t, err, types.ErrWashTypeInvalid)

	_, err = s.AddEntry("missing", draftEntry(time.Now(), types.WashTypeManual))
	assert.ErrorIs(t, err, types.ErrVehicleNotFound)

	assert.Empty(t, s.Entries(v.VehicleID))
}

func TestAddEntryTreatments(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	draft := draftEntry(time.Now(), types.WashTypeDetail)
	draft.Treatments = map[string]bool{"Wax/Sealant": true}

	entry, err := s.AddEntry(v.VehicleID, draft)
	require.NoError(t, err)

	stored := s.Entries(v.VehicleID)[0]
	assert.Equal(t, entry.EntryID, stored.EntryID)
	assert.True(t, stored.TreatmentApplied("Wax/Sealant"))
	for _, name := range types.TreatmentCatalog {
		if name == "Wax/Sealant" {
			continue
		}
		assert.False(t, stored.TreatmentApplied(name), name)
	}
}

func TestDeleteEntryHeadMovesStatus(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	// E2 dated three days back, inserted first; E1 dated today ends up
	// at the head.
	e2, err := s.AddEntry(v.VehicleID, draftEntry(time.Now().AddDate(0, 0, -3), types.WashTypeManual))
	require.NoError(t, err)
	e1, err := s.AddEntry(v.VehicleID, draftEntry(time.Now(), types.WashTypeManual))
	require.NoError(t, err)

	days, ok := s.DaysSinceLastWash(v.VehicleID)
	require.True(t, ok)
	assert.Equal(t, 0, days)

	require.NoError(t, s.DeleteEntry(v.VehicleID, e1.EntryID))

	list := s.Entries(v.VehicleID)
	require.Len(t, list, 1)
	assert.Equal(t, e2.EntryID, list[0].EntryID)

	days, ok = s.DaysSinceLastWash(v.VehicleID)
	require.True(t, ok)
	assert.Equal(t, 3, days)
}

func TestDeleteEntryMissingIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(v.VehicleID, "missing"))
	require.NoError(t, s.DeleteEntry("missing-vehicle", "missing"))
}

func TestDaysSinceLastWashUnknownForNewVehicle(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	_, ok := s.DaysSinceLastWash(v.VehicleID)
	assert.False(t, ok)
}

func TestDraftLifecycle(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	require.NoError(t, s.SetDraftType(types.WashTypeDetail))
	s.SetDraftNotes("clay bar day")
	require.NoError(t, s.ToggleDraftTreatment("Clay Bar"))
	s.AttachDraftImage(types.ImageBefore, "data:image/png;base64,AAAA")

	d := s.Draft()
	assert.Equal(t, types.WashTypeDetail, d.Type)
	assert.Equal(t, "clay bar day", d.Notes)
	assert.True(t, d.Treatments["Clay Bar"])
	assert.Equal(t, "data:image/png;base64,AAAA", d.BeforeImageURL)

	_, err = s.AddEntry(v.VehicleID, d)
	require.NoError(t, err)

	// Successful AddEntry resets the store draft.
	reset := s.Draft()
	assert.Equal(t, types.WashTypeManual, reset.Type)
	assert.Empty(t, reset.Notes)
	assert.Empty(t, reset.BeforeImageURL)
	assert.False(t, reset.Treatments["Clay Bar"])
}

func TestDraftImageMergePreservesOtherFields(t *testing.T) {
	s := newTestStore(t)

	// Edits made while an image read is in flight survive its arrival.
	s.SetDraftNotes("typed during read")
	s.AttachDraftImage(types.ImageAfter, "data:image/jpeg;base64,BBBB")

	d := s.Draft()
	assert.Equal(t, "typed during read", d.Notes)
	assert.Equal(t, "data:image/jpeg;base64,BBBB", d.AfterImageURL)
	assert.Empty(t, d.BeforeImageURL)
}

func TestSetDraftTypeInvalid(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.SetDraftType("Touchless"), types.ErrWashTypeInvalid)
}

func TestResetDraftDiscardsLateImage(t *testing.T) {
	s := newTestStore(t)

	s.AttachDraftImage(types.ImageBefore, "data:image/png;base64,AAAA")
	s.ResetDraft()
	assert.Empty(t, s.Draft().BeforeImageURL)
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendFile, DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda", Model: "Civic"})
	require.NoError(t, err)
	entry, err := s.AddEntry(v.VehicleID, draftEntry(time.Now().AddDate(0, 0, -1), types.WashTypeDriveThru))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(cfg)
	require.NoError(t, err)
	defer s2.Close()

	vehicles := s2.Vehicles()
	require.Len(t, vehicles, 2)
	assert.Equal(t, v, vehicles[1])

	list := s2.Entries(v.VehicleID)
	require.Len(t, list, 1)
	assert.Equal(t, entry.EntryID, list[0].EntryID)
	assert.Equal(t, entry.Type, list[0].Type)

	// Selection is session state: a fresh session starts on the first
	// vehicle.
	active, ok := s2.ActiveVehicle()
	require.True(t, ok)
	assert.Equal(t, vehicles[0].VehicleID, active.VehicleID)
}

func TestSQLiteBackedStore(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(cfg)
	require.NoError(t, err)
	defer s2.Close()
	require.Len(t, s2.Vehicles(), 2)
	assert.Equal(t, v.VehicleID, s2.Vehicles()[1].VehicleID)
}

func TestCloseIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestFreshIDsUnderRapidCreation(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVehicle(types.VehicleDraft{Name: "Daily", Make: "Honda"})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		e, err := s.AddEntry(v.VehicleID, draftEntry(time.Now(), types.WashTypeManual))
		require.NoError(t, err)
		require.False(t, seen[e.EntryID], "duplicate entry id %s", e.EntryID)
		seen[e.EntryID] = true
	}
}
