package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("interval end must be after start")

	// ErrInvalidTimezone возвращается при нераспознанной зоне - это фатальная
	// ошибка конфигурации, она никогда не превращается в ответ
	// "доступен"/"недоступен" по умолчанию
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
