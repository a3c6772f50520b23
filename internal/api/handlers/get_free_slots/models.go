package get_free_slots

import (
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	getFreeSlots "github.com/m04kA/PMC-SchedulingService/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	PractitionerID int64      `json:"practitionerId"`
	Date           string     `json:"date"`
	Timezone       string     `json:"timezone"`
	Slots          []FreeSlot `json:"slots"`
}

// FreeSlot свободный интервал в домашней зоне врача
type FreeSlot struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]FreeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = FreeSlot{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return &FreeSlotsResponse{
		PractitionerID: resp.PractitionerID,
		Date:           resp.Date.Format(domain.DateFormat),
		Timezone:       resp.Timezone,
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(practitionerID int64, dateStr string) (*getFreeSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getFreeSlots.Request{
		PractitionerID: practitionerID,
		Date:           date,
	}, nil
}
