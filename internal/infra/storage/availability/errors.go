package availability

import "errors"

var (
	// ErrModelNotFound возвращается, когда у врача нет модели доступности.
	// Для движка проверки конфликтов это не ошибка, а валидное состояние
	// "полностью недоступен" - обработка на стороне usecase.
	ErrModelNotFound = errors.New("availability.repository: availability model not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
