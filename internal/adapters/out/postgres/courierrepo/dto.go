// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. Regions and working hours live in child tables owned by
// the courier and are cascade-deleted with it.
type CourierDTO struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Transport    string            `gorm:"type:varchar(16);not null"`
	Regions      []RegionDTO       `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
	WorkingHours []WorkingHoursDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// RegionDTO is one region served by a courier.
type RegionDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index"`
	Region    int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for courier regions.
func (RegionDTO) TableName() string {
	return "courier_regions"
}

// WorkingHoursDTO is one working window of a courier. Start and finish
// are stored in their canonical HH:MM form so a window re-serializes
// exactly as it was received.
type WorkingHoursDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`
}

// TableName specifies the database table name for courier working hours.
func (WorkingHoursDTO) TableName() string {
	return "courier_working_hours"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	courierID := aggregate.ID().Bytes()

	regions := make([]RegionDTO, 0, len(aggregate.Regions()))
	for _, region := range aggregate.Regions() {
		regions = append(regions, RegionDTO{
			CourierID: courierID,
			Region:    region.Int64(),
		})
	}

	workingHours := make([]WorkingHoursDTO, 0, len(aggregate.WorkingHours()))
	for _, window := range aggregate.WorkingHours() {
		workingHours = append(workingHours, WorkingHoursDTO{
			CourierID: courierID,
			StartTime: window.Start().String(),
			EndTime:   window.End().String(),
		})
	}

	return CourierDTO{
		ID:           courierID,
		Transport:    aggregate.Transport().String(),
		Regions:      regions,
		WorkingHours: workingHours,
	}
}

// toDomain converts a database DTO back to the courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transport, err := courier.TransportFromString(dto.Transport)
	if err != nil {
		return nil, err
	}

	regions := make([]kernel.Region, 0, len(dto.Regions))
	for _, regionDTO := range dto.Regions {
		region, regionErr := kernel.NewRegion(regionDTO.Region)
		if regionErr != nil {
			return nil, regionErr
		}
		regions = append(regions, region)
	}

	workingHours := make([]kernel.TimeWindow, 0, len(dto.WorkingHours))
	for _, hoursDTO := range dto.WorkingHours {
		window, windowErr := windowFromDTO(hoursDTO)
		if windowErr != nil {
			return nil, windowErr
		}
		workingHours = append(workingHours, window)
	}

	return courier.NewCourier(id, transport, regions, workingHours)
}

func windowFromDTO(dto WorkingHoursDTO) (kernel.TimeWindow, error) {
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
