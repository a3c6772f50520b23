package delete_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	blockedSlotService "github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots"
)

const (
	msgInvalidBlockedSlotID = "некорректный ID блокировки"
	msgNotFound             = "блокировка не найдена"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
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

// Handle DELETE /api/v1/blocked-slots/{blockedSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedSlotIDStr := vars["blockedSlotId"]

	blockedSlotID, err := strconv.ParseInt(blockedSlotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-slots/{id} - Invalid blocked slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blocked-slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), blockedSlotID, userID); err != nil {
		switch {
		case errors.Is(err, blockedSlotService.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /blocked-slots/{id} - Blocked slot not found: id=%d", blockedSlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blockedSlotService.ErrAccessDenied):
			h.logger.Warn("DELETE /blocked-slots/{id} - Access denied: id=%d, user_id=%d", blockedSlotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /blocked-slots/{id} - Failed to delete blocked slot: id=%d, error=%v",
				blockedSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-slots/{id} - Blocked slot deleted: id=%d, user_id=%d", blockedSlotID, userID)
	w.WriteHeader(http.StatusNoContent)
}
