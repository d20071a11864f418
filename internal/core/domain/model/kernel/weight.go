package kernel

import (
	"fmt"
	"math"
	"strconv"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// weightScale is the number of weight units per kilogram. Weights carry two
// decimal places, so one unit is a hundredth of a kilogram.
const weightScale = 100

// ErrWeightIsNotConstructed is returned when using a Weight that was not
// created via NewWeight or NewWeightFromFloat.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"Weight must be created via NewWeight or NewWeightFromFloat")

// Weight is a fixed-point cargo weight with two decimal places, stored as an
// integer count of hundredths of a kilogram. Fixed-point storage keeps
// summation and comparison exact; capacity accounting never accumulates
// floating-point drift.
//
// Weight is always positive. Range limits for order weights are enforced by
// the order aggregate, transport capacities by the courier aggregate.
type Weight struct {
	hundredths int64
	guard      guard.ConstructorGuard
}

// NewWeight creates a Weight from a count of hundredths of a kilogram.
func NewWeight(hundredths int64) (Weight, error) {
	if hundredths <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%d is not greater than 0", hundredths),
		)
	}

	return Weight{hundredths: hundredths, guard: guard.NewConstructorGuard()}, nil
}

// NewWeightFromFloat creates a Weight from a decimal kilogram value, rounding
// to the nearest hundredth. Used at the boundary where payloads carry weights
// as decimals.
func NewWeightFromFloat(kilograms float64) (Weight, error) {
	return NewWeight(int64(math.Round(kilograms * weightScale)))
}

// Validate returns ErrWeightIsNotConstructed for the zero value.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Hundredths returns the raw fixed-point value.
func (w Weight) Hundredths() int64 {
	return w.hundredths
}

// Float64 returns the weight in kilograms.
func (w Weight) Float64() float64 {
	return float64(w.hundredths) / weightScale
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{hundredths: w.hundredths + other.hundredths, guard: guard.NewConstructorGuard()}
}

// Cmp compares two weights: -1 if w is lighter, 0 if equal, 1 if heavier.
func (w Weight) Cmp(other Weight) int {
	switch {
	case w.hundredths < other.hundredths:
		return -1
	case w.hundredths > other.hundredths:
		return 1
	default:
		return 0
	}
}

// IsEqual reports whether two weights are the same.
func (w Weight) IsEqual(other Weight) bool {
	return w.hundredths == other.hundredths
}

// String formats the weight as the shortest decimal representation:
// "1", "0.01", "12.5".
func (w Weight) String() string {
	return strconv.FormatFloat(w.Float64(), 'f', -1, 64)
}

// WeightBalance is a signed weight amount, measured in hundredths of a
// kilogram. It represents remaining carrying capacity, which goes negative
// when a courier holds more assigned weight than its transport allows, for
// example after a transport downgrade.
type WeightBalance int64

// NewWeightBalance creates a balance equal to the given weight.
func NewWeightBalance(w Weight) WeightBalance {
	return WeightBalance(w.Hundredths())
}

// Sub returns the balance reduced by the given weight.
func (b WeightBalance) Sub(w Weight) WeightBalance {
	return b - WeightBalance(w.Hundredths())
}

// Add returns the balance increased by the given weight.
func (b WeightBalance) Add(w Weight) WeightBalance {
	return b + WeightBalance(w.Hundredths())
}

// IsNegative reports whether the balance denotes over-capacity.
func (b WeightBalance) IsNegative() bool {
	return b < 0
}

// CanFit reports whether the given weight fits into the balance.
func (b WeightBalance) CanFit(w Weight) bool {
	return WeightBalance(w.Hundredths()) <= b
}

// Float64 returns the balance in kilograms.
func (b WeightBalance) Float64() float64 {
	return float64(b) / weightScale
}

// String formats the balance as a signed decimal.
func (b WeightBalance) String() string {
	return strconv.FormatFloat(b.Float64(), 'f', -1, 64)
}
