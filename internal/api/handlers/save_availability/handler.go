package save_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	saveAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/save_availability"
)

const (
	msgInvalidPractitionerID = "некорректный ID врача"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgPractitionerNotFound  = "врач не найден"
	msgInvalidTimezone       = "нераспознанный идентификатор таймзоны"
	msgOverlappingSlots      = "диапазоны одного дня пересекаются"
	msgInvalidSlots          = "некорректные диапазоны расписания"
)

type Handler struct {
	useCase SaveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SaveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/practitioners/{practitionerId}/availability
// Замена расписания целиком. Врач может менять только своё расписание.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /practitioners/{id}/availability - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /practitioners/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Расписание может менять только сам врач
	if userID != practitionerID {
		h.logger.Warn("PUT /practitioners/{id}/availability - Access denied: practitioner_id=%d, user_id=%d",
			practitionerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req SaveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /practitioners/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(practitionerID)
	if err != nil {
		h.logger.Warn("PUT /practitioners/{id}/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveAvailability.ErrPractitionerNotFound):
			h.logger.Warn("PUT /practitioners/{id}/availability - Practitioner not found: practitioner_id=%d", practitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, saveAvailability.ErrInvalidTimezone):
			h.logger.Warn("PUT /practitioners/{id}/availability - Invalid timezone: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, saveAvailability.ErrOverlappingSlots):
			h.logger.Warn("PUT /practitioners/{id}/availability - Overlapping slots: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgOverlappingSlots)

		case errors.Is(err, saveAvailability.ErrInvalidInput):
			h.logger.Warn("PUT /practitioners/{id}/availability - Invalid input: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("PUT /practitioners/{id}/availability - Failed to save model: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /practitioners/{id}/availability - Model saved: practitioner_id=%d, slots_count=%d",
		practitionerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
