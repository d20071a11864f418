package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves one courier together with its derived
// rating and earnings.
type GetCourierQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for the given courier.
func NewGetCourierQuery(courierID kernel.UUID) (GetCourierQuery, error) {
	query := GetCourierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the courier to read.
func (q GetCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.courierID = id
	return nil
}

// GetCourierQueryResponse is the courier read model. Rating is nil
// while the courier has no completed deliveries with a recorded
// duration; earnings count only fully delivered assignment batches.
type GetCourierQueryResponse struct {
	ID           kernel.UUID
	Transport    string
	Regions      []int64
	WorkingHours []string
	Rating       *float64
	Earnings     int64
}
