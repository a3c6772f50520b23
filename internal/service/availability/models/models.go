package models

import (
	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

// AvailabilitySlotResponse один интервал недельного шаблона
type AvailabilitySlotResponse struct {
	DayOfWeek int              `json:"dayOfWeek"` // 1 = понедельник ... 7 = воскресенье
	StartTime types.TimeString `json:"startTime"` // "HH:MM"
	EndTime   types.TimeString `json:"endTime"`   // "HH:MM"
}

// AvailabilityModelResponse ответ с недельным расписанием врача
type AvailabilityModelResponse struct {
	PractitionerID int64                      `json:"practitionerId"`
	Timezone       string                     `json:"timezone"`
	Slots          []AvailabilitySlotResponse `json:"slots"`
}

// FromDomainAvailabilityModel конвертирует domain модель в DTO
func FromDomainAvailabilityModel(model *domain.AvailabilityModel) *AvailabilityModelResponse {
	if model == nil {
		return nil
	}

	slots := make([]AvailabilitySlotResponse, 0, len(model.Slots))
	for _, s := range model.Slots {
		slots = append(slots, AvailabilitySlotResponse{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	return &AvailabilityModelResponse{
		PractitionerID: model.UserID,
		Timezone:       model.Timezone,
		Slots:          slots,
	}
}
