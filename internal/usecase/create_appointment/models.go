package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	OrganizationID int64 // Организация вызывающего (скоуп доступа)
	AgendaID       int64 // ID агенды

	StartTime time.Time // Начало записи (абсолютный момент)
	EndTime   time.Time // Конец записи (абсолютный момент)

	// Идентифицирующие клиента поля: клиент находится или создается
	// через ClientService
	ClientPhone string  // Номер WhatsApp
	ClientName  *string // Имя для создания нового клиента (опционально)

	Title       *string // Заголовок записи (опционально)
	Description *string // Описание (опционально)
	Location    *string // Место встречи (опционально)
	Notes       *string // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64
	AgendaID       *int64
	OrganizationID int64
	ClientID       int64

	StartTime time.Time
	EndTime   time.Time
	Status    string

	Title       string
	Description *string
	Location    *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
