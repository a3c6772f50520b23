package save_availability

import (
	saveAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/save_availability"
	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

// SaveAvailabilityRequest HTTP request model
type SaveAvailabilityRequest struct {
	Timezone string      `json:"timezone"` // IANA-зона; пустая = взять из профиля врача
	Slots    []SlotInput `json:"slots"`
}

// SlotInput один диапазон недельного шаблона
type SlotInput struct {
	DayOfWeek int    `json:"dayOfWeek"` // 1 = понедельник ... 7 = воскресенье
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// AvailabilityModelResponse HTTP response model
type AvailabilityModelResponse struct {
	PractitionerID int64          `json:"practitionerId"`
	Timezone       string         `json:"timezone"`
	Slots          []ResponseSlot `json:"slots"`
}

// ResponseSlot слот в ответе
type ResponseSlot struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *SaveAvailabilityRequest) ToUseCaseRequest(practitionerID int64) (*saveAvailability.Request, error) {
	slots := make([]saveAvailability.SlotInput, 0, len(r.Slots))
	for _, s := range r.Slots {
		start, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(s.EndTime)
		if err != nil {
			return nil, err
		}
		slots = append(slots, saveAvailability.SlotInput{
			DayOfWeek: s.DayOfWeek,
			StartTime: start,
			EndTime:   end,
		})
	}

	return &saveAvailability.Request{
		PractitionerID: practitionerID,
		Timezone:       r.Timezone,
		Slots:          slots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveAvailability.Response) *AvailabilityModelResponse {
	slots := make([]ResponseSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = ResponseSlot{
			ID:        s.ID,
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		}
	}

	return &AvailabilityModelResponse{
		PractitionerID: resp.PractitionerID,
		Timezone:       resp.Timezone,
		Slots:          slots,
	}
}
