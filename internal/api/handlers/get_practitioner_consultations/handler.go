package get_practitioner_consultations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	consultationService "github.com/m04kA/PMC-SchedulingService/internal/service/consultations"
	"github.com/m04kA/PMC-SchedulingService/internal/service/consultations/models"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgInvalidFrom           = "некорректный формат from, ожидается YYYY-MM-DD"
	msgInvalidTo             = "некорректный формат to, ожидается YYYY-MM-DD"
	msgInvalidStatus         = "некорректный статус консультации"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service ConsultationService
	logger  Logger
}

func NewHandler(service ConsultationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/practitioners/{practitionerId}/consultations
// Query params: from, to (YYYY-MM-DD), status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/consultations - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /practitioners/{id}/consultations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &models.GetPractitionerConsultationsRequest{
		UserID:         userID,
		PractitionerID: practitionerID,
	}

	// Парсим опциональные границы периода
	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /practitioners/{id}/consultations - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /practitioners/{id}/consultations - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		// Верхняя граница - конец дня (полуинтервал)
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err == nil {
			req.IncludeInactive = includeInactive
		}
	}

	result, err := h.service.GetPractitionerConsultations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, consultationService.ErrAccessDenied):
			h.logger.Warn("GET /practitioners/{id}/consultations - Access denied: practitioner_id=%d, user_id=%d",
				practitionerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, consultationService.ErrInvalidInput):
			h.logger.Warn("GET /practitioners/{id}/consultations - Invalid status filter: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /practitioners/{id}/consultations - Failed to get consultations: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /practitioners/{id}/consultations - Consultations retrieved: practitioner_id=%d, count=%d",
		practitionerID, len(result.Consultations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
