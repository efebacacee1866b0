package client

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

const minVehicleYear = 1900

// Vehicle is a car registered to a client. Every vehicle belongs to exactly
// one client.
type Vehicle struct {
	id       kernel.UUID
	clientID kernel.UUID
	plate    string
	model    string
	year     int

	isConstructed bool
}

// NewVehicle creates a vehicle with a fresh identifier, registered to the
// given client.
func NewVehicle(clientID kernel.UUID, plate, model string, year int) (*Vehicle, error) {
	v := &Vehicle{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		v.setClientID(clientID),
		v.setPlate(plate),
		v.setModel(model),
		v.setYear(year),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle recreates a vehicle from persistence with its original
// identifier.
func RestoreVehicle(id, clientID kernel.UUID, plate, model string, year int) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	v, err := NewVehicle(clientID, plate, model, year)
	if err != nil {
		return nil, err
	}
	v.id = id
	return v, nil
}

// Validate ensures the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// ClientID returns the identifier of the owning client.
func (v *Vehicle) ClientID() kernel.UUID {
	return v.clientID
}

// Plate returns the license plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Model returns the vehicle model.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

func (v *Vehicle) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	v.clientID = clientID
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minVehicleYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minVehicleYear, maxYear)
	}
	v.year = year
	return nil
}
