package check_availability

import "time"

// Request модель запроса проверки доступности врача
type Request struct {
	PractitionerID int64     // ID врача
	Start          time.Time // Начало интервала-кандидата
	End            time.Time // Конец интервала-кандидата
	CallerZone     string    // IANA-зона вызывающей стороны
}

// Response результат проверки доступности
type Response struct {
	Available bool // Свободен ли интервал целиком
}
