package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/check_availability"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgMissingStart          = "параметр start обязателен"
	msgMissingEnd            = "параметр end обязателен"
	msgInvalidStart          = "некорректный формат start, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgInvalidEnd            = "некорректный формат end, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgInvalidTimezone       = "нераспознанный идентификатор таймзоны"
	msgInvalidInterval       = "некорректный интервал: конец должен быть позже начала"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AvailabilityCheckResponse HTTP response model
type AvailabilityCheckResponse struct {
	Available bool `json:"available"`
}

// Handle GET /api/v1/practitioners/{practitionerId}/availability/check
// Query params: start (required), end (required), tz (optional, IANA, default UTC)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем practitionerId из URL
	practitionerIDStr := vars["practitionerId"]
	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/availability/check - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	query := r.URL.Query()

	// Зона вызывающей стороны, в ней интерпретируется наивное время
	callerZone := query.Get("tz")
	if callerZone == "" {
		callerZone = "UTC"
	}
	loc, err := timezone.Resolve(callerZone)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/availability/check - Invalid timezone %q: %v", callerZone, err)
		handlers.RespondBadRequest(w, msgInvalidTimezone)
		return
	}

	startStr := query.Get("start")
	if startStr == "" {
		h.logger.Warn("GET /practitioners/{id}/availability/check - Missing start")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}
	start, err := handlers.ParseInstant(startStr, loc)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/availability/check - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	endStr := query.Get("end")
	if endStr == "" {
		h.logger.Warn("GET /practitioners/{id}/availability/check - Missing end")
		handlers.RespondBadRequest(w, msgMissingEnd)
		return
	}
	end, err := handlers.ParseInstant(endStr, loc)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/availability/check - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		PractitionerID: practitionerID,
		Start:          start,
		End:            end,
		CallerZone:     callerZone,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInterval):
			h.logger.Warn("GET /practitioners/{id}/availability/check - Invalid interval: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /practitioners/{id}/availability/check - Invalid input: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidPractitionerID)

		case errors.Is(err, checkAvailability.ErrInvalidTimezone):
			// Зона из сохраненной модели врача не распозналась - это проблема
			// конфигурации, а не запроса
			h.logger.Error("GET /practitioners/{id}/availability/check - Stored timezone invalid: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("GET /practitioners/{id}/availability/check - Failed to check availability: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /practitioners/{id}/availability/check - Availability checked: practitioner_id=%d, available=%t",
		practitionerID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityCheckResponse{Available: result.Available})
}
