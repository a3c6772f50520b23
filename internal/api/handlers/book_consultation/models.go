package book_consultation

import (
	"time"

	bookConsultation "github.com/m04kA/PMC-SchedulingService/internal/usecase/book_consultation"
)

// BookConsultationRequest HTTP request model
type BookConsultationRequest struct {
	PractitionerID int64   `json:"practitionerId"`
	Start          string  `json:"start"`        // RFC 3339 или наивное время
	End            string  `json:"end"`          // RFC 3339 или наивное время
	Timezone       string  `json:"tz,omitempty"` // зона для наивного времени, по умолчанию UTC
	Notes          *string `json:"notes,omitempty"`
}

// ConsultationResponse HTTP response model
type ConsultationResponse struct {
	ID             int64   `json:"id"`
	PractitionerID int64   `json:"practitionerId"`
	PatientID      int64   `json:"patientId"`
	OrganizationID int64   `json:"organizationId"`
	Start          string  `json:"start"` // RFC 3339
	End            string  `json:"end"`   // RFC 3339
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookConsultation.Response) *ConsultationResponse {
	return &ConsultationResponse{
		ID:             resp.ID,
		PractitionerID: resp.PractitionerID,
		PatientID:      resp.PatientID,
		OrganizationID: resp.OrganizationID,
		Start:          resp.Start.Format(time.RFC3339),
		End:            resp.End.Format(time.RFC3339),
		Status:         resp.Status,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
