package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	availabilityService "github.com/m04kA/PMC-SchedulingService/internal/service/availability"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgNotFound              = "расписание врача не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/practitioners/{practitionerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/availability - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	model, err := h.service.GetByPractitioner(r.Context(), practitionerID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrModelNotFound):
			h.logger.Info("GET /practitioners/{id}/availability - Model not found: practitioner_id=%d", practitionerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /practitioners/{id}/availability - Failed to get model: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /practitioners/{id}/availability - Model retrieved: practitioner_id=%d, slots_count=%d",
		practitionerID, len(model.Slots))
	handlers.RespondJSON(w, http.StatusOK, model)
}
