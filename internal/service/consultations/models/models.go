package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid consultation status")
)

// Request модели

// CancelConsultationRequest запрос на отмену консультации
type CancelConsultationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetPractitionerConsultationsRequest запрос на получение консультаций врача
type GetPractitionerConsultationsRequest struct {
	UserID          int64      `json:"userId"`
	PractitionerID  int64      `json:"practitionerId"`
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и no-show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPractitionerConsultationsRequest) ToDomainFilter() (domain.PractitionerConsultationsFilter, error) {
	filter := domain.PractitionerConsultationsFilter{
		PractitionerID:  r.PractitionerID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainConsultationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ConsultationResponse ответ с данными консультации
type ConsultationResponse struct {
	ID             int64     `json:"id"`
	PractitionerID int64     `json:"practitionerId"`
	PatientID      int64     `json:"patientId"`
	OrganizationID int64     `json:"organizationId"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConsultationListResponse ответ со списком консультаций
type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
}

// Методы конвертации

// FromDomainConsultation конвертирует domain модель в DTO
func FromDomainConsultation(c *domain.Consultation) *ConsultationResponse {
	if c == nil {
		return nil
	}

	resp := &ConsultationResponse{
		ID:                 c.ID,
		PractitionerID:     c.PractitionerID,
		PatientID:          c.PatientID,
		OrganizationID:     c.OrganizationID,
		Start:              c.StartTime,
		End:                c.EndTime,
		Status:             string(c.Status),
		Notes:              c.Notes,
		CancellationReason: c.CancellationReason,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}

	if c.CancelledAt != nil {
		formatted := c.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &formatted
	}

	return resp
}

// FromDomainConsultationList конвертирует список domain моделей в DTO
func FromDomainConsultationList(consultations []*domain.Consultation) *ConsultationListResponse {
	result := make([]ConsultationResponse, 0, len(consultations))
	for _, c := range consultations {
		result = append(result, *FromDomainConsultation(c))
	}
	return &ConsultationListResponse{Consultations: result}
}

// ToDomainConsultationStatus конвертирует строку в domain статус
func ToDomainConsultationStatus(s string) (domain.ConsultationStatus, error) {
	switch domain.ConsultationStatus(s) {
	case domain.StatusScheduled,
		domain.StatusCompleted,
		domain.StatusCancelledByPatient,
		domain.StatusCancelledByPractitioner,
		domain.StatusNoShow:
		return domain.ConsultationStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}
