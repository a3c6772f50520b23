package models

import (
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

// Request модели

// CreateBlockedSlotRequest запрос на создание блокировки времени
type CreateBlockedSlotRequest struct {
	UserID         int64     `json:"userId"`
	PractitionerID int64     `json:"practitionerId"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Reason         *string   `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateBlockedSlotRequest) ToDomain() *domain.BlockedSlot {
	return &domain.BlockedSlot{
		PractitionerID: r.PractitionerID,
		StartTime:      r.Start,
		EndTime:        r.End,
		Reason:         r.Reason,
	}
}

// GetBlockedSlotsRequest запрос на получение блокировок врача
type GetBlockedSlotsRequest struct {
	UserID         int64      `json:"userId"`
	PractitionerID int64      `json:"practitionerId"`
	From           *time.Time `json:"from,omitempty"` // Нижняя граница периода (опционально)
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID             int64     `json:"id"`
	PractitionerID int64     `json:"practitionerId"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(slot *domain.BlockedSlot) *BlockedSlotResponse {
	if slot == nil {
		return nil
	}
	return &BlockedSlotResponse{
		ID:             slot.ID,
		PractitionerID: slot.PractitionerID,
		Start:          slot.StartTime,
		End:            slot.EndTime,
		Reason:         slot.Reason,
		CreatedAt:      slot.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(slots []*domain.BlockedSlot) *BlockedSlotListResponse {
	result := make([]BlockedSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, *FromDomainBlockedSlot(slot))
	}
	return &BlockedSlotListResponse{BlockedSlots: result}
}
