package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Day-of-week numbering: 1 = Monday ... 7 = Sunday (ISO 8601)
const (
	MinDayOfWeek = 1
	MaxDayOfWeek = 7
)

// InactiveStatuses список статусов консультаций, не участвующих в проверке
// конфликтов. Отмененные и пропущенные консультации слот не занимают.
var InactiveStatuses = []ConsultationStatus{
	StatusCancelledByPatient,
	StatusCancelledByPractitioner,
	StatusNoShow,
}

// ActiveStatuses список статусов консультаций, занимающих слот
var ActiveStatuses = []ConsultationStatus{
	StatusScheduled,
	StatusCompleted,
}
