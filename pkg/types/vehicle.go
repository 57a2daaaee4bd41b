package types

import "errors"

// ColorSwatch lists the color tokens offered when creating a vehicle.
// Legacy records may carry arbitrary color strings; those pass through
// unchanged on load.
var ColorSwatch = []string{
	"#3699FF", // blue
	"#F64E60", // red
	"#0BB783", // green
	"#8950FC", // purple
	"#FFA800", // yellow
	"#1BC5BD", // teal
	"#E4E6EF", // silver
	"#181C32", // black
	"#F3F6F9", // white
	"#FF6B00", // orange
}

// Vehicle validation errors.
var (
	ErrNameRequired    = errors.New("vehicle name must not be empty")
	ErrMakeRequired    = errors.New("vehicle make must not be empty")
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// Vehicle is a tracked car. Make and Model are always defined once a
// record has been loaded; legacy records that predate the fields decode
// to empty strings.
type Vehicle struct {
	VehicleID string // UUID v7, generated on creation. Seed vehicle uses "1".
	Name      string // Display label (required, non-empty).
	Color     string // Swatch token, or an arbitrary string from legacy data.
	Make      string // Manufacturer (required on save).
	Model     string // Free text, may be empty.
}

// VehicleDraft carries the user-editable fields for creating or updating
// a vehicle.
type VehicleDraft struct {
	Name  string
	Make  string
	Model string
	Color string
}

// Validate checks that the draft satisfies the save-time requirements.
// Returns ErrNameRequired or ErrMakeRequired on failure.
func (d VehicleDraft) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Make == "" {
		return ErrMakeRequired
	}
	return nil
}

// SeedVehicle returns the built-in default vehicle. It is substituted
// whenever the persisted collection is absent or empty, and re-created
// when the last remaining vehicle is deleted.
func SeedVehicle() Vehicle {
	return Vehicle{
		VehicleID: "1",
		Name:      "Polestar 2",
		Color:     "#E4E6EF",
		Make:      "Polestar",
		Model:     "2",
	}
}
