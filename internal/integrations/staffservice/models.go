package staffservice

// Practitioner профиль врача из справочника сотрудников.
// Сервис идентификации и оргструктуры внешний - здесь только те поля,
// которые нужны планированию.
type Practitioner struct {
	ID               int64  `json:"id"`
	OrganizationID   int64  `json:"organizationId"`
	FullName         string `json:"fullName"`
	Specialty        string `json:"specialty"`
	DetectedTimezone string `json:"detectedTimezone"` // зона из профиля/браузера, IANA
	IsActive         bool   `json:"isActive"`
}
