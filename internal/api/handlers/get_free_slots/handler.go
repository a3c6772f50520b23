package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/PMC-SchedulingService/internal/usecase/get_free_slots"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/practitioners/{practitionerId}/free-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем practitionerId из URL
	practitionerIDStr := vars["practitionerId"]
	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/free-slots - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /practitioners/{id}/free-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(practitionerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/free-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /practitioners/{id}/free-slots - Invalid input: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidPractitionerID)

		case errors.Is(err, getFreeSlots.ErrInvalidTimezone):
			h.logger.Error("GET /practitioners/{id}/free-slots - Stored timezone invalid: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("GET /practitioners/{id}/free-slots - Failed to get free slots: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /practitioners/{id}/free-slots - Free slots retrieved: practitioner_id=%d, date=%s, slots_count=%d",
		practitionerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
