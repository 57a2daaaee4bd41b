package types

import (
	"errors"
	"time"
)

// Wash types. A wash entry records exactly one of these.
const (
	WashTypeManual    = "Manual"
	WashTypeDriveThru = "Drive-thru"
	WashTypeDetail    = "Detail"
)

// validWashTypes is the set of recognized wash type values.
var validWashTypes = map[string]bool{
	WashTypeManual:    true,
	WashTypeDriveThru: true,
	WashTypeDetail:    true,
}

// ValidWashType reports whether t is a recognized wash type.
func ValidWashType(t string) bool {
	return validWashTypes[t]
}

// TreatmentCatalog is the fixed list of optional services applicable to
// a wash. Treatments absent from an entry's map count as not applied;
// keys outside the catalog are dropped on load.
var TreatmentCatalog = []string{
	"Wax/Sealant",
	"Tire Shine",
	"Interior Vacuum",
	"Clay Bar",
	"Glass Polish",
	"Trim Dressing",
}

// KnownTreatment reports whether name is part of the treatment catalog.
func KnownTreatment(name string) bool {
	for _, t := range TreatmentCatalog {
		if t == name {
			return true
		}
	}
	return false
}

// Entry validation errors.
var (
	ErrDateRequired     = errors.New("entry date must be set")
	ErrWashTypeInvalid  = errors.New("unknown wash type")
	ErrTreatmentUnknown = errors.New("treatment not in catalog")
)

// ImageSlot identifies one of the two optional photos on a wash entry.
type ImageSlot string

// Image slots.
const (
	ImageBefore ImageSlot = "before"
	ImageAfter  ImageSlot = "after"
)

// WashEntry is one recorded wash event. Entries are ordered by insertion
// at the head of their vehicle's list (most-recent-first); the list is
// never re-sorted by date.
type WashEntry struct {
	EntryID        string          // UUID v7, unique within the owning vehicle's list.
	Date           time.Time       // Persisted as RFC 3339 text.
	Type           string          // One of the WashType constants.
	Notes          string          // Free text, may be empty.
	BeforeImageURL string          // Optional data URI, empty when unset.
	AfterImageURL  string          // Optional data URI, empty when unset.
	Treatments     map[string]bool // Applied flags keyed by catalog name.
}

// TreatmentApplied reports whether the named treatment was applied.
// Absent keys count as not applied.
func (e *WashEntry) TreatmentApplied(name string) bool {
	return e.Treatments[name]
}

// EntryDraft carries the in-progress fields for a new wash entry.
type EntryDraft struct {
	Date           time.Time
	Type           string
	Notes          string
	BeforeImageURL string
	AfterImageURL  string
	Treatments     map[string]bool
}

// Validate checks that the draft can become a wash entry.
// Returns ErrDateRequired or ErrWashTypeInvalid on failure.
func (d EntryDraft) Validate() error {
	if d.Date.IsZero() {
		return ErrDateRequired
	}
	if !ValidWashType(d.Type) {
		return ErrWashTypeInvalid
	}
	return nil
}

// ToggleTreatment flips the applied flag for the named treatment.
// Returns ErrTreatmentUnknown if the name is not in the catalog.
func (d *EntryDraft) ToggleTreatment(name string) error {
	if !KnownTreatment(name) {
		return ErrTreatmentUnknown
	}
	if d.Treatments == nil {
		d.Treatments = make(map[string]bool, len(TreatmentCatalog))
	}
	d.Treatments[name] = !d.Treatments[name]
	return nil
}

// SetImage stores a data URI in the given slot. Unknown slots are ignored.
func (d *EntryDraft) SetImage(slot ImageSlot, dataURI string) {
	switch slot {
	case ImageBefore:
		d.BeforeImageURL = dataURI
	case ImageAfter:
		d.AfterImageURL = dataURI
	}
}
