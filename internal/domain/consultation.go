package domain

import "time"

// ConsultationStatus represents the status of a consultation
type ConsultationStatus string

const (
	StatusScheduled               ConsultationStatus = "scheduled"
	StatusCompleted               ConsultationStatus = "completed"
	StatusCancelledByPatient      ConsultationStatus = "cancelled_by_patient"
	StatusCancelledByPractitioner ConsultationStatus = "cancelled_by_practitioner"
	StatusNoShow                  ConsultationStatus = "no_show"
)

// Consultation represents a booked appointment between a patient and a practitioner.
// StartTime and EndTime are concrete zone-aware instants.
type Consultation struct {
	ID             int64
	PractitionerID int64
	PatientID      int64
	OrganizationID int64
	StartTime      time.Time
	EndTime        time.Time
	Status         ConsultationStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the consultation still occupies its time slot
func (c *Consultation) IsActive() bool {
	return c.Status != StatusCancelledByPatient &&
		c.Status != StatusCancelledByPractitioner &&
		c.Status != StatusNoShow
}

// CanBeCancelled returns true if the consultation can be cancelled
func (c *Consultation) CanBeCancelled() bool {
	return c.Status == StatusScheduled
}

// IsCancelled returns true if the consultation has been cancelled
func (c *Consultation) IsCancelled() bool {
	return c.Status == StatusCancelledByPatient || c.Status == StatusCancelledByPractitioner
}

// Range returns the occupied interval as a half-open TimeRange
func (c *Consultation) Range() TimeRange {
	return TimeRange{Start: c.StartTime, End: c.EndTime}
}

// PractitionerConsultationsFilter фильтр для получения консультаций врача
type PractitionerConsultationsFilter struct {
	PractitionerID  int64               // Обязательный параметр
	From            *time.Time          // Начало периода (опционально)
	To              *time.Time          // Конец периода (опционально)
	Status          *ConsultationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool                // Включать ли отмененные и no-show
}
