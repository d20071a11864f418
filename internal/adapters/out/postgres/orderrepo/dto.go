package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of the Order aggregate.
// Weight is stored in hundredths of a kilogram to keep arithmetic exact,
// and the delivery duration in whole seconds.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	Weight           int64      `gorm:"not null"`
	Region           int64      `gorm:"not null;index"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	AssignedAt       *time.Time `gorm:"index"`
	CompletedAt      *time.Time
	DeliveryDuration *int64

	DeliveryHours []DeliveryHoursDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the order DTO.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryHoursDTO is the database representation of a delivery window.
type DeliveryHoursDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`
}

// TableName returns the table name for the delivery hours DTO.
func (DeliveryHoursDTO) TableName() string {
	return "order_delivery_hours"
}

func fromDomain(anOrder *order.Order) OrderDTO {
	hours := make([]DeliveryHoursDTO, 0, len(anOrder.DeliveryHours()))
	for _, window := range anOrder.DeliveryHours() {
		hours = append(hours, DeliveryHoursDTO{
			OrderID:   anOrder.ID().Bytes(),
			StartTime: window.Start().String(),
			EndTime:   window.End().String(),
		})
	}

	var courierID *uuid.UUID
	if id := anOrder.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var duration *int64
	if d := anOrder.DeliveryDuration(); d != nil {
		seconds := int64(d.Seconds())
		duration = &seconds
	}

	return OrderDTO{
		ID:               anOrder.ID().Bytes(),
		CourierID:        courierID,
		Weight:           anOrder.Weight().Hundredths(),
		Region:           anOrder.Region().Int64(),
		Status:           anOrder.Status().String(),
		AssignedAt:       anOrder.AssignedAt(),
		CompletedAt:      anOrder.CompletedAt(),
		DeliveryDuration: duration,
		DeliveryHours:    hours,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	region, err := kernel.NewRegion(dto.Region)
	if err != nil {
		return nil, err
	}

	hours := make([]kernel.TimeWindow, 0, len(dto.DeliveryHours))
	for _, h := range dto.DeliveryHours {
		window, windowErr := windowFromDTO(h)
		if windowErr != nil {
			return nil, windowErr
		}
		hours = append(hours, window)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cid, cidErr := kernel.UUIDFromBytes(dto.CourierID[:])
		if cidErr != nil {
			return nil, cidErr
		}
		courierID = &cid
	}

	var duration *time.Duration
	if dto.DeliveryDuration != nil {
		d := time.Duration(*dto.DeliveryDuration) * time.Second
		duration = &d
	}

	return order.RestoreOrder(
		id,
		weight,
		region,
		hours,
		status,
		courierID,
		dto.AssignedAt,
		dto.CompletedAt,
		duration,
	)
}

func windowFromDTO(dto DeliveryHoursDTO) (kernel.TimeWindow, error) {
	start, err := kernel.ParseTimeOfDay(dto.StartTime)
	if err != nil {
		return kernel.TimeWindow{}, err
	}
	end, err := kernel.ParseTimeOfDay(dto.EndTime)
	if err != nil {
		return kernel.TimeWindow{}, err
	}
	return kernel.NewTimeWindow(start, end)
}
