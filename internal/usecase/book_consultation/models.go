package book_consultation

import "time"

// Request модель запроса на запись к врачу
type Request struct {
	PractitionerID int64     // ID врача
	PatientID      int64     // ID пациента
	Start          time.Time // Начало консультации
	End            time.Time // Конец консультации
	CallerZone     string    // IANA-зона вызывающей стороны
	Notes          *string   // Заметки пациента (опционально)
}

// Response созданная консультация
type Response struct {
	ID             int64
	PractitionerID int64
	PatientID      int64
	OrganizationID int64
	Start          time.Time
	End            time.Time
	Status         string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
