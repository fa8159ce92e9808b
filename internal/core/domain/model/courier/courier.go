package courier

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// courierRoles lists the user-role literals that mark a user as a courier.
// "kurjers" is the legacy literal still present in backend rows.
func courierRoles() map[string]struct{} {
	return map[string]struct{}{
		"courier": {},
		"kurjers": {},
	}
}

// IsCourierRole reports whether the user-role literal denotes a courier.
func IsCourierRole(role string) bool {
	_, ok := courierRoles()[role]
	return ok
}

// Vehicle is the capacity snapshot of the car a courier drives.
type Vehicle struct {
	id        kernel.ID
	number    string
	maxSize   float64
	maxWeight float64
}

// NewVehicle creates a vehicle snapshot with validated capacity limits.
func NewVehicle(id kernel.ID, number string, maxSize, maxWeight float64) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if maxSize <= 0 || maxWeight <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("vehicle capacity is invalid",
			fmt.Errorf("size %v / weight %v must be greater than 0", maxSize, maxWeight))
	}

	return &Vehicle{id: id, number: number, maxSize: maxSize, maxWeight: maxWeight}, nil
}

// ID returns the car's identifier.
func (v *Vehicle) ID() kernel.ID { return v.id }

// Number returns the car's registration number.
func (v *Vehicle) Number() string { return v.number }

// MaxSize returns the size capacity.
func (v *Vehicle) MaxSize() float64 { return v.maxSize }

// MaxWeight returns the weight capacity.
func (v *Vehicle) MaxWeight() float64 { return v.maxWeight }

// Courier is a read model of a user with the courier role.
type Courier struct {
	id           kernel.ID
	username     string
	vehicle      *Vehicle
	workAreaID   *kernel.ID
	workAreaName string

	isConstructed bool
}

// NewCourier creates a courier read model. Vehicle and work area are
// attached afterwards when the reference data is available.
func NewCourier(id kernel.ID, username string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	return &Courier{id: id, username: username, isConstructed: true}, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's identifier.
func (c *Courier) ID() kernel.ID { return c.id }

// Username returns the courier's username.
func (c *Courier) Username() string { return c.username }

// Vehicle returns the attached vehicle snapshot, or nil.
func (c *Courier) Vehicle() *Vehicle { return c.vehicle }

// WorkArea returns the assigned work area's ID, or nil.
func (c *Courier) WorkArea() *kernel.ID { return c.workAreaID }

// WorkAreaName returns the assigned work area's display name, empty when
// unassigned.
func (c *Courier) WorkAreaName() string { return c.workAreaName }

// AttachVehicle links the courier to the car they drive.
func (c *Courier) AttachVehicle(vehicle *Vehicle) error {
	if vehicle == nil {
		return errs.NewValueIsRequiredError("vehicle")
	}
	c.vehicle = vehicle
	return nil
}

// AssignWorkArea records the courier's work-area assignment.
func (c *Courier) AssignWorkArea(id kernel.ID, name string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workAreaID = &id
	c.workAreaName = name
	return nil
}
