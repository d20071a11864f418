package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Region is an opaque region identifier. Eligibility checks use exact set
// membership only; there is no geometry attached to a region.
type Region int64

// NewRegion validates and returns a region identifier. Identifiers are
// positive integers assigned by the upstream catalog.
func NewRegion(id int64) (Region, error) {
	region := Region(id)
	if err := region.Validate(); err != nil {
		return 0, err
	}
	return region, nil
}

// Validate returns an error for non-positive region identifiers.
func (r Region) Validate() error {
	if r <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"region",
			fmt.Errorf("%d is not a positive identifier", int64(r)),
		)
	}
	return nil
}

// Int64 returns the raw identifier for persistence and transport mapping.
func (r Region) Int64() int64 {
	return int64(r)
}

// ContainsRegion reports whether region is a member of regions.
func ContainsRegion(regions []Region, region Region) bool {
	for _, r := range regions {
		if r == region {
			return true
		}
	}
	return false
}
