package book_consultation

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда врач не найден в справочнике
	ErrPractitionerNotFound = errors.New("practitioner not found")

	// ErrPractitionerInactive возвращается при попытке записи к неактивному врачу
	ErrPractitionerInactive = errors.New("practitioner is not active")

	// ErrSlotNotAvailable возвращается, когда интервал занят или вне расписания
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrStartInPast возвращается при попытке записи на прошедшее время
	ErrStartInPast = errors.New("consultation start is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("interval end must be after start")

	// ErrInvalidTimezone возвращается при нераспознанной зоне
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
