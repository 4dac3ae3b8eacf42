package clientservice

// ClientRecord модель клиента (контакта WhatsApp) из ClientService
type ClientRecord struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"` // Номер WhatsApp в формате E.164
	Email          string `json:"email,omitempty"`
}

// createClientRequest тело запроса на создание клиента
type createClientRequest struct {
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
}

// ErrorResponse модель ошибки от ClientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
