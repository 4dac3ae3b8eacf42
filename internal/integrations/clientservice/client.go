package clientservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ClientService (CRM-контакты дашборда)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ClientService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetByPhone получает клиента организации по номеру WhatsApp
func (c *Client) GetByPhone(ctx context.Context, organizationID int64, phone string) (*ClientRecord, error) {
	reqURL := fmt.Sprintf("%s/internal/organizations/%d/clients?phone=%s",
		c.baseURL, organizationID, url.QueryEscape(phone))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid phone format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrClientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var record ClientRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &record, nil
}

// Create создает нового клиента организации
func (c *Client) Create(ctx context.Context, organizationID int64, name, phone string) (*ClientRecord, error) {
	reqURL := fmt.Sprintf("%s/internal/organizations/%d/clients", c.baseURL, organizationID)

	payload, err := json.Marshal(createClientRequest{
		OrganizationID: organizationID,
		Name:           name,
		Phone:          phone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var record ClientRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &record, nil
}

// ResolveByPhone находит клиента по телефону, при отсутствии - создает.
// Используется публичным путём бронирования: входящая заявка несет только
// идентифицирующие клиента поля, а не его ID.
func (c *Client) ResolveByPhone(ctx context.Context, organizationID int64, name, phone string) (*ClientRecord, error) {
	c.log.Info("Resolving client by phone for organization_id=%d", organizationID)

	record, err := c.GetByPhone(ctx, organizationID, phone)
	if err == nil {
		return record, nil
	}
	if err != ErrClientNotFound {
		c.log.Error("ClientService lookup failed for organization_id=%d: %v", organizationID, err)
		return nil, err
	}

	c.log.Info("Client not found, creating new client for organization_id=%d", organizationID)
	return c.Create(ctx, organizationID, name, phone)
}
