package cancel_consultation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	consultationService "github.com/m04kA/PMC-SchedulingService/internal/service/consultations"
	"github.com/m04kA/PMC-SchedulingService/internal/service/consultations/models"
)

const (
	msgInvalidConsultationID = "некорректный ID консультации"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgNotFound              = "консультация не найдена"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgCannotCancel          = "консультация не может быть отменена"
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

// CancelConsultationRequest HTTP request model
type CancelConsultationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Handle PATCH /api/v1/consultations/{consultationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем consultationId из URL
	vars := mux.Vars(r)
	consultationIDStr := vars["consultationId"]

	consultationID, err := strconv.ParseInt(consultationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /consultations/{id}/cancel - Invalid consultation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConsultationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /consultations/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело с причиной отмены опционально
	var req CancelConsultationRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /consultations/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	// Отменяем консультацию (сервис сам определит статус по роли)
	err = h.service.Cancel(r.Context(), consultationID, &models.CancelConsultationRequest{
		UserID:             userID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, consultationService.ErrConsultationNotFound):
			h.logger.Warn("PATCH /consultations/{id}/cancel - Consultation not found: consultation_id=%d", consultationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, consultationService.ErrAccessDenied):
			h.logger.Warn("PATCH /consultations/{id}/cancel - Access denied: consultation_id=%d, user_id=%d",
				consultationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, consultationService.ErrCannotCancel):
			h.logger.Warn("PATCH /consultations/{id}/cancel - Cannot cancel: consultation_id=%d", consultationID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /consultations/{id}/cancel - Failed to cancel consultation: consultation_id=%d, error=%v",
				consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /consultations/{id}/cancel - Consultation cancelled: consultation_id=%d, user_id=%d",
		consultationID, userID)
	w.WriteHeader(http.StatusNoContent)
}
