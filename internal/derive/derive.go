// Package derive computes presentation-independent values from store
// state: days since last wash, default entry drafts, and deterministic
// presentation profiles keyed by vehicle make.
package derive

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

// DaysSinceLastWash returns the whole calendar days between now and the
// most recent entry's date. The head of the most-recent-first list is
// authoritative, not the maximum date in the list. The second return is
// false when the vehicle has no entries, so callers can distinguish
// "never washed" from "washed today".
func DaysSinceLastWash(now time.Time, entries []types.WashEntry) (int, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	head := entries[0].Date.In(now.Location())
	diff := startOfDay(now).Sub(startOfDay(head))
	// Round rather than truncate so a DST-shortened day still counts
	// as a full calendar day.
	return int(math.Round(diff.Hours() / 24)), true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NewDraft returns the zeroed draft for a new wash entry: the given
// time, Manual type, empty notes, no images, all treatments unapplied.
func NewDraft(now time.Time) types.EntryDraft {
	treatments := make(map[string]bool, len(types.TreatmentCatalog))
	for _, name := range types.TreatmentCatalog {
		treatments[name] = false
	}
	return types.EntryDraft{
		Date:       now,
		Type:       types.WashTypeManual,
		Notes:      "",
		Treatments: treatments,
	}
}

// RandomColor picks a swatch color for a new vehicle draft.
func RandomColor() string {
	return types.ColorSwatch[rand.Intn(len(types.ColorSwatch))]
}

// Profile is the presentation metadata derived from a vehicle make.
type Profile struct {
	Name      string // Matched make name, or "Default".
	Accent    string // Accent color token.
	ImagePath string // Illustration asset path.
}

// makeProfiles maps lowercase make substrings to profiles. Matching is
// case-insensitive substring, first match wins in this order.
var makeProfiles = []struct {
	substr  string
	profile Profile
}{
	{"polestar", Profile{Name: "Polestar", Accent: "#E4E6EF", ImagePath: "assets/polestar.png"}},
	{"tesla", Profile{Name: "Tesla", Accent: "#F64E60", ImagePath: "assets/tesla.png"}},
	{"bmw", Profile{Name: "BMW", Accent: "#3699FF", ImagePath: "assets/bmw.png"}},
	{"mercedes", Profile{Name: "Mercedes", Accent: "#181C32", ImagePath: "assets/mercedes.png"}},
	{"audi", Profile{Name: "Audi", Accent: "#8950FC", ImagePath: "assets/audi.png"}},
	{"honda", Profile{Name: "Honda", Accent: "#0BB783", ImagePath: "assets/honda.png"}},
	{"toyota", Profile{Name: "Toyota", Accent: "#FF6B00", ImagePath: "assets/toyota.png"}},
	{"volkswagen", Profile{Name: "Volkswagen", Accent: "#1BC5BD", ImagePath: "assets/volkswagen.png"}},
	{"ford", Profile{Name: "Ford", Accent: "#3699FF", ImagePath: "assets/ford.png"}},
	{"mazda", Profile{Name: "Mazda", Accent: "#F64E60", ImagePath: "assets/mazda.png"}},
}

// defaultProfile is returned for makes with no match.
var defaultProfile = Profile{
	Name:      "Default",
	Accent:    "#3699FF",
	ImagePath: "assets/default.png",
}

// ResolveProfile looks up the presentation profile for a vehicle make.
// Unmatched makes fall back to the default profile.
func ResolveProfile(make string) Profile {
	lower := strings.ToLower(make)
	if lower == "" {
		return defaultProfile
	}
	for _, mp := range makeProfiles {
		if strings.Contains(lower, mp.substr) {
			return mp.profile
		}
	}
	return defaultProfile
}

// washTypeAccents maps wash types to their accent color.
var washTypeAccents = map[string]string{
	types.WashTypeManual:    "#3699FF",
	types.WashTypeDriveThru: "#0BB783",
	types.WashTypeDetail:    "#8950FC",
}

// WashTypeAccent returns the accent color for a wash type. Unknown
// types get the Manual accent.
func WashTypeAccent(washType string) string {
	if accent, ok := washTypeAccents[washType]; ok {
		return accent
	}
	return washTypeAccents[types.WashTypeManual]
}
