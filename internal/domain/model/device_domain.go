package model

import (
	"fmt"
	"strconv"
	"time"
)

type DeviceDomainID int64

func ParseDeviceDomainID(s string) (DeviceDomainID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDeviceDomainID, s)
	}

	return DeviceDomainID(id), nil
}

func (id DeviceDomainID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id DeviceDomainID) IsZero() bool {
	return id == 0
}

type DeviceDomain struct {
	ID               DeviceDomainID
	Name             string
	Brand            string
	State            State
	CreationDateTime time.Time
}

// NewDeviceDomain stamps the creation time. The ID stays zero until the
// store assigns one. Timestamps are kept at microsecond precision, the
// finest the stores persist.
func NewDeviceDomain(name, brand string, state State) *DeviceDomain {
	return &DeviceDomain{
		Name:             name,
		Brand:            brand,
		State:            state,
		CreationDateTime: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (d *DeviceDomain) CanUpdateNameAndBrand() bool {
	return d.State != StateInUse
}

func (d *DeviceDomain) CanDelete() bool {
	return d.State != StateInUse
}

// Apply copies the supplied fields of input onto d. Nothing is changed when
// input is invalid or touches name or brand of an in-use record.
func (d *DeviceDomain) Apply(input UpdateDeviceDomainInput) error {
	state, err := input.Validate()
	if err != nil {
		return err
	}

	if !d.CanUpdateNameAndBrand() && input.ChangesNameOrBrand() {
		return ErrCannotUpdateInUseDeviceDomain
	}

	if name, ok := input.Name.Get(); ok {
		d.Name = name
	}

	if brand, ok := input.Brand.Get(); ok {
		d.Brand = brand
	}

	if newState, ok := state.Get(); ok {
		d.State = newState
	}

	return nil
}

// Clone returns a copy safe to mutate.
func (d *DeviceDomain) Clone() *DeviceDomain {
	c := *d

	return &c
}
