package courier

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Transport is the transport type of a courier. It is a value object that
// determines both the cargo capacity ceiling and the earnings coefficient.
//
// Capacity ceilings and coefficients:
//
//	Foot: 10 kg, coefficient 2
//	Bike: 15 kg, coefficient 5
//	Car:  50 kg, coefficient 9
type Transport int

const (
	// Unknown represents an invalid or undefined transport type.
	// This value (0) helps catch uninitialized Transport values.
	Unknown Transport = iota

	// Foot is a courier on foot: 10 kg ceiling, earnings coefficient 2.
	Foot

	// Bike is a courier on a bicycle: 15 kg ceiling, earnings coefficient 5.
	Bike

	// Car is a courier with a car: 50 kg ceiling, earnings coefficient 9.
	Car
)

// transportSpec bundles the static attributes of a transport type.
type transportSpec struct {
	name               string
	capacityHundredths int64
	coefficient        int64
}

func getTransportSpecs() map[Transport]transportSpec {
	return map[Transport]transportSpec{
		Foot: {name: "foot", capacityHundredths: 1000, coefficient: 2},
		Bike: {name: "bike", capacityHundredths: 1500, coefficient: 5},
		Car:  {name: "car", capacityHundredths: 5000, coefficient: 9},
	}
}

// TransportFromString parses the canonical lower-case transport name used by
// external payloads: "foot", "bike", or "car".
func TransportFromString(s string) (Transport, error) {
	for transport, spec := range getTransportSpecs() {
		if spec.name == s {
			return transport, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"transport",
		fmt.Errorf("%q is not a known transport type", s),
	)
}

// Validate checks that the Transport value is one of the known types.
func (t Transport) Validate() error {
	if _, ok := getTransportSpecs()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transport",
			fmt.Errorf("%d is not a valid transport type", t),
		)
	}
	return nil
}

// Capacity returns the cargo weight ceiling of the transport type. The
// ceiling caps the total weight of simultaneously assigned orders, and also
// bounds the weight of any single eligible order.
func (t Transport) Capacity() kernel.Weight {
	spec, ok := getTransportSpecs()[t]
	if !ok {
		return kernel.Weight{}
	}

	// Known specs carry positive constants, so construction cannot fail.
	capacity, _ := kernel.NewWeight(spec.capacityHundredths)
	return capacity
}

// Coefficient returns the earnings multiplier of the transport type.
func (t Transport) Coefficient() int64 {
	spec, ok := getTransportSpecs()[t]
	if !ok {
		return 0
	}
	return spec.coefficient
}

// String returns the canonical lower-case name, or "unknown" for invalid
// values. It implements fmt.Stringer and round-trips TransportFromString.
func (t Transport) String() string {
	if spec, ok := getTransportSpecs()[t]; ok {
		return spec.name
	}
	return "unknown"
}
