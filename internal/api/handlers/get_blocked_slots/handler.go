package get_blocked_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	blockedSlotService "github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots"
	"github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots/models"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgInvalidFrom           = "некорректный формат from, ожидается RFC 3339"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
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

// Handle GET /api/v1/practitioners/{practitionerId}/blocked-slots
// Query params: from (optional, RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/blocked-slots - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /practitioners/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Опциональная нижняя граница периода
	var from *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /practitioners/{id}/blocked-slots - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		from = &parsed
	}

	result, err := h.service.GetByPractitioner(r.Context(), &models.GetBlockedSlotsRequest{
		UserID:         userID,
		PractitionerID: practitionerID,
		From:           from,
	})
	if err != nil {
		switch {
		case errors.Is(err, blockedSlotService.ErrAccessDenied):
			h.logger.Warn("GET /practitioners/{id}/blocked-slots - Access denied: practitioner_id=%d, user_id=%d",
				practitionerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /practitioners/{id}/blocked-slots - Failed to get blocked slots: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /practitioners/{id}/blocked-slots - Blocked slots retrieved: practitioner_id=%d, count=%d",
		practitionerID, len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
