package availability

import "errors"

var (
	// ErrModelNotFound возвращается, когда у врача нет сохранённого расписания
	ErrModelNotFound = errors.New("availability model not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
