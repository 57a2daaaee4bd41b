package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

func TestDaysSinceLastWashHeadBased(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// Entries inserted out of chronological order: the head (T-5) stays
	// authoritative, not the later T-1 entry.
	entries := []types.WashEntry{
		{EntryID: "e1", Date: now.AddDate(0, 0, -5), Type: types.WashTypeManual},
		{EntryID: "e2", Date: now.AddDate(0, 0, -1), Type: types.WashTypeManual},
	}

	days, ok := DaysSinceLastWash(now, entries)
	require.True(t, ok)
	assert.Equal(t, 5, days)
}

func TestDaysSinceLastWashNoEntries(t *testing.T) {
	_, ok := DaysSinceLastWash(time.Now(), nil)
	assert.False(t, ok)

	_, ok = DaysSinceLastWash(time.Now(), []types.WashEntry{})
	assert.False(t, ok)
}

func TestDaysSinceLastWashSameDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)
	entries := []types.WashEntry{
		{EntryID: "e1", Date: now.Add(-2 * time.Hour), Type: types.WashTypeManual},
	}

	days, ok := DaysSinceLastWash(now, entries)
	require.True(t, ok)
	assert.Equal(t, 0, days)
}

func TestDaysSinceLastWashCalendarBoundary(t *testing.T) {
	// Washed at 11pm, asked at 1am the next day: one calendar day, even
	// though only two hours elapsed.
	washed := time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC)
	entries := []types.WashEntry{{EntryID: "e1", Date: washed, Type: types.WashTypeManual}}

	days, ok := DaysSinceLastWash(now, entries)
	require.True(t, ok)
	assert.Equal(t, 1, days)
}

func TestNewDraft(t *testing.T) {
	now := time.Now()
	d := NewDraft(now)

	assert.Equal(t, now, d.Date)
	assert.Equal(t, types.WashTypeManual, d.Type)
	assert.Empty(t, d.Notes)
	assert.Empty(t, d.BeforeImageURL)
	assert.Empty(t, d.AfterImageURL)

	require.Len(t, d.Treatments, len(types.TreatmentCatalog))
	for _, name := range types.TreatmentCatalog {
		assert.False(t, d.Treatments[name], name)
	}
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		name     string
		make     string
		wantName string
	}{
		{"exact match", "Polestar", "Polestar"},
		{"case insensitive", "TESLA", "Tesla"},
		{"substring match", "Bayerische BMW AG", "BMW"},
		{"unmatched falls back", "Zastava", "Default"},
		{"empty falls back", "", "Default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveProfile(tt.make)
			assert.Equal(t, tt.wantName, got.Name)
			assert.NotEmpty(t, got.Accent)
			assert.NotEmpty(t, got.ImagePath)
		})
	}
}

func TestResolveProfileDeterministic(t *testing.T) {
	assert.Equal(t, ResolveProfile("Honda"), ResolveProfile("honda"))
}

func TestWashTypeAccent(t *testing.T) {
	assert.Equal(t, "#3699FF", WashTypeAccent(types.WashTypeManual))
	assert.Equal(t, "#0BB783", WashTypeAccent(types.WashTypeDriveThru))
	assert.Equal(t, "#8950FC", WashTypeAccent(types.WashTypeDetail))
	// Unknown types share the Manual accent.
	assert.Equal(t, "#3699FF", WashTypeAccent("Touchless"))
}

func TestRandomColorFromSwatch(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := RandomColor()
		assert.Contains(t, types.ColorSwatch, c)
	}
}
