package get_consultation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	consultationService "github.com/m04kA/PMC-SchedulingService/internal/service/consultations"
)

const (
	msgInvalidConsultationID = "некорректный ID консультации"
	msgNotFound              = "консультация не найдена"
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

// Handle GET /api/v1/consultations/{consultationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем consultationId из URL
	vars := mux.Vars(r)
	consultationIDStr := vars["consultationId"]

	consultationID, err := strconv.ParseInt(consultationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /consultations/{id} - Invalid consultation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConsultationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /consultations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем консультацию (сервис сам проверит права доступа)
	consultation, err := h.service.GetByID(r.Context(), consultationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, consultationService.ErrConsultationNotFound):
			h.logger.Warn("GET /consultations/{id} - Consultation not found: consultation_id=%d", consultationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, consultationService.ErrAccessDenied):
			h.logger.Warn("GET /consultations/{id} - Access denied: consultation_id=%d, user_id=%d",
				consultationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /consultations/{id} - Failed to get consultation: consultation_id=%d, error=%v",
				consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultations/{id} - Consultation retrieved: consultation_id=%d, user_id=%d",
		consultationID, userID)
	handlers.RespondJSON(w, http.StatusOK, consultation)
}
