package save_availability

import (
	"time"

	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

// SlotInput один диапазон недельного шаблона
type SlotInput struct {
	DayOfWeek int              // 1-7, 1 = понедельник
	StartTime types.TimeString // "HH:MM"
	EndTime   types.TimeString // "HH:MM"
}

// Request модель запроса сохранения доступности.
// Save заменяет модель целиком: присланный набор слотов полностью
// вытесняет прежний (replace-all, без частичных патчей).
type Request struct {
	PractitionerID int64
	Timezone       string // IANA-зона; пустая = взять определенную зону из профиля врача
	Slots          []SlotInput
}

// ResponseSlot слот в ответе
type ResponseSlot struct {
	ID        int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response сохраненная модель доступности
type Response struct {
	ID             int64
	PractitionerID int64
	OrganizationID int64
	Timezone       string
	Slots          []ResponseSlot
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
