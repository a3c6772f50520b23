package save_availability

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда врач не найден в справочнике
	ErrPractitionerNotFound = errors.New("practitioner not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimezone возвращается при нераспознанной зоне
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// ErrOverlappingSlots возвращается, когда диапазоны одного дня пересекаются.
	// Движок проверки конфликтов считает диапазоны дня непересекающимися,
	// поэтому пересечения отсекаются здесь, на стороне редактора.
	ErrOverlappingSlots = errors.New("availability slots within a day overlap")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
