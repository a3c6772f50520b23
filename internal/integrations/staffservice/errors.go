package staffservice

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда врач не найден в справочнике
	ErrPractitionerNotFound = errors.New("staffservice: practitioner not found")

	// ErrInvalidResponse возвращается при некорректном ответе StaffService
	ErrInvalidResponse = errors.New("staffservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice: internal error")
)
