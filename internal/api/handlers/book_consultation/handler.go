package book_consultation

import (
	"errors"
	"net/http"

	"github.com/m04kA/PMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	bookConsultation "github.com/m04kA/PMC-SchedulingService/internal/usecase/book_consultation"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidTimezone      = "нераспознанный идентификатор таймзоны"
	msgInvalidStart         = "некорректный формат start, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgInvalidEnd           = "некорректный формат end, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgSlotNotAvailable     = "выбранный временной интервал недоступен"
	msgPractitionerNotFound = "врач не найден"
	msgPractitionerInactive = "врач не ведет прием"
	msgStartInPast          = "время начала консультации уже прошло"
	msgInvalidInterval      = "некорректный интервал: конец должен быть позже начала"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase BookConsultationUseCase
	logger  Logger
}

func NewHandler(useCase BookConsultationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Пациент - аутентифицированный пользователь
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /consultations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultations - Invalid request body: %v", err)
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
		h.logger.Warn("POST /consultations - Invalid timezone %q: %v", tz, err)
		handlers.RespondBadRequest(w, msgInvalidTimezone)
		return
	}

	start, err := handlers.ParseInstant(req.Start, loc)
	if err != nil {
		h.logger.Warn("POST /consultations - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}
	end, err := handlers.ParseInstant(req.End, loc)
	if err != nil {
		h.logger.Warn("POST /consultations - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &bookConsultation.Request{
		PractitionerID: req.PractitionerID,
		PatientID:      userID,
		Start:          start,
		End:            end,
		CallerZone:     tz,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookConsultation.ErrSlotNotAvailable):
			h.logger.Warn("POST /consultations - Slot not available: patient_id=%d, practitioner_id=%d",
				userID, req.PractitionerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookConsultation.ErrPractitionerNotFound):
			h.logger.Warn("POST /consultations - Practitioner not found: practitioner_id=%d", req.PractitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, bookConsultation.ErrPractitionerInactive):
			h.logger.Warn("POST /consultations - Practitioner inactive: practitioner_id=%d", req.PractitionerID)
			handlers.RespondBadRequest(w, msgPractitionerInactive)

		case errors.Is(err, bookConsultation.ErrStartInPast):
			h.logger.Warn("POST /consultations - Start in past: patient_id=%d, practitioner_id=%d",
				userID, req.PractitionerID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, bookConsultation.ErrInvalidInterval):
			h.logger.Warn("POST /consultations - Invalid interval: patient_id=%d, practitioner_id=%d",
				userID, req.PractitionerID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, bookConsultation.ErrInvalidTimezone):
			h.logger.Warn("POST /consultations - Invalid timezone: patient_id=%d, practitioner_id=%d",
				userID, req.PractitionerID)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, bookConsultation.ErrInvalidInput):
			h.logger.Warn("POST /consultations - Invalid input: patient_id=%d, practitioner_id=%d",
				userID, req.PractitionerID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /consultations - Failed to book consultation: patient_id=%d, practitioner_id=%d, error=%v",
				userID, req.PractitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultations - Consultation booked: consultation_id=%d, patient_id=%d, practitioner_id=%d",
		result.ID, userID, req.PractitionerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
