package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier represents a delivery courier in the system. It is an aggregate
// root that manages courier identity, transport type, served regions, and
// working hours.
//
// Key responsibilities:
//   - Managing courier identity and transport type
//   - Owning the served-region set and the working-hour windows
//   - Answering eligibility questions: region membership and time overlap
//
// Business rules:
//   - Courier must have a valid UUID and a known transport type
//   - The transport type determines the cargo capacity ceiling
//   - Regions and working hours may be empty; an empty set simply makes no
//     order eligible
//   - Working hours need not be disjoint or sorted, and their order is kept
//
// Capacity accounting lives in the domain services: the courier itself does
// not track its assigned orders, it only exposes the ceiling via Transport.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// transport determines capacity ceiling and earnings coefficient
	transport Transport
	// regions is the set of regions the courier serves
	regions []kernel.Region
	// workingHours are the courier's working-hour windows, in input order
	workingHours []kernel.TimeWindow
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a Courier with the specified attributes. This is the
// only way to create a valid Courier instance; repositories use it to restore
// persisted couriers as well, since the aggregate carries no derived state.
//
// All parameters are validated: the id must be a constructed UUID, the
// transport must be a known type, and every region and working-hour window
// must itself be valid. Region and working-hour collections may be empty.
func NewCourier(
	id kernel.UUID,
	transport Transport,
	regions []kernel.Region,
	workingHours []kernel.TimeWindow,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setTransport(transport),
		courier.setRegions(regions),
		courier.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed via NewCourier.
// The zero value of Courier is invalid and fails this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Transport returns the courier's transport type.
func (c *Courier) Transport() Transport {
	return c.transport
}

// Regions returns the regions the courier serves.
// The returned slice is a copy to prevent external modification.
func (c *Courier) Regions() []kernel.Region {
	out := make([]kernel.Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// WorkingHours returns the courier's working-hour windows in input order.
// The returned slice is a copy to prevent external modification.
func (c *Courier) WorkingHours() []kernel.TimeWindow {
	out := make([]kernel.TimeWindow, len(c.workingHours))
	copy(out, c.workingHours)
	return out
}

// ServesRegion reports whether the given region is in the courier's set.
func (c *Courier) ServesRegion(region kernel.Region) bool {
	return kernel.ContainsRegion(c.regions, region)
}

// WorksDuring reports whether at least one of the courier's working-hour
// windows overlaps at least one of the given delivery-hour windows. The check
// is an OR across all window pairs; touching endpoints do not count.
func (c *Courier) WorksDuring(deliveryHours []kernel.TimeWindow) bool {
	for _, working := range c.workingHours {
		for _, delivery := range deliveryHours {
			if working.Overlaps(delivery) {
				return true
			}
		}
	}
	return false
}

// ChangeTransport replaces the courier's transport type. Shrinking the
// capacity ceiling may leave the courier over capacity; the caller is
// expected to reconcile assigned orders afterwards.
func (c *Courier) ChangeTransport(transport Transport) error {
	return c.setTransport(transport)
}

// SetRegions replaces the courier's served-region set.
func (c *Courier) SetRegions(regions []kernel.Region) error {
	return c.setRegions(regions)
}

// SetWorkingHours replaces the courier's working-hour windows.
func (c *Courier) SetWorkingHours(workingHours []kernel.TimeWindow) error {
	return c.setWorkingHours(workingHours)
}

// setID sets the courier's unique identifier with validation.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setTransport sets the courier's transport type with validation.
func (c *Courier) setTransport(transport Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}

	c.transport = transport
	return nil
}

// setRegions sets the served-region set with per-element validation.
func (c *Courier) setRegions(regions []kernel.Region) error {
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	c.regions = make([]kernel.Region, len(regions))
	copy(c.regions, regions)
	return nil
}

// setWorkingHours sets the working-hour windows with per-element validation.
func (c *Courier) setWorkingHours(workingHours []kernel.TimeWindow) error {
	for _, w := range workingHours {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	c.workingHours = make([]kernel.TimeWindow, len(workingHours))
	copy(c.workingHours, workingHours)
	return nil
}
