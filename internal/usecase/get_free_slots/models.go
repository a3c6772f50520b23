package get_free_slots

import "time"

// Request модель запроса свободных интервалов на день
type Request struct {
	PractitionerID int64     // ID врача
	Date           time.Time // Календарный день (интерпретируется в зоне врача)
}

// FreeSlot свободный для записи интервал
type FreeSlot struct {
	Start time.Time
	End   time.Time
}

// Response список свободных интервалов, отсортированных по началу
type Response struct {
	PractitionerID int64
	Date           time.Time
	Timezone       string // домашняя зона врача, в которой выражены интервалы
	Slots          []FreeSlot
}
