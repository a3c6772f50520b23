package create_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	blockedSlotService "github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots"
	"github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots/models"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTimezone       = "нераспознанный идентификатор таймзоны"
	msgInvalidStart          = "некорректный формат start, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgInvalidEnd            = "некорректный формат end, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgInvalidInterval       = "некорректный интервал блокировки"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateBlockedSlotRequest HTTP request model
type CreateBlockedSlotRequest struct {
	Start    string  `json:"start"`        // RFC 3339 или наивное время
	End      string  `json:"end"`          // RFC 3339 или наивное время
	Timezone string  `json:"tz,omitempty"` // зона для наивного времени, по умолчанию UTC
	Reason   *string `json:"reason,omitempty"`
}

// Handle POST /api/v1/practitioners/{practitionerId}/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /practitioners/{id}/blocked-slots - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /practitioners/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /practitioners/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Зона для интерпретации наивного времени
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := timezone.Resolve(tz)
	if err != nil {
		h.logger.Warn("POST /practitioners/{id}/blocked-slots - Invalid timezone %q: %v", tz, err)
		handlers.RespondBadRequest(w, msgInvalidTimezone)
		return
	}

	start, err := handlers.ParseInstant(req.Start, loc)
	if err != nil {
		h.logger.Warn("POST /practitioners/{id}/blocked-slots - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}
	end, err := handlers.ParseInstant(req.End, loc)
	if err != nil {
		h.logger.Warn("POST /practitioners/{id}/blocked-slots - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateBlockedSlotRequest{
		UserID:         userID,
		PractitionerID: practitionerID,
		Start:          start,
		End:            end,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, blockedSlotService.ErrAccessDenied):
			h.logger.Warn("POST /practitioners/{id}/blocked-slots - Access denied: practitioner_id=%d, user_id=%d",
				practitionerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockedSlotService.ErrInvalidInput):
			h.logger.Warn("POST /practitioners/{id}/blocked-slots - Invalid interval: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /practitioners/{id}/blocked-slots - Failed to create blocked slot: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /practitioners/{id}/blocked-slots - Blocked slot created: id=%d, practitioner_id=%d",
		result.ID, practitionerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
