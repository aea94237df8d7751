package staffservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StaffService.
// Исключения сотрудников целиком принадлежат StaffService: этот сервис
// только читает коллекцию и запускает переходы approve/deny.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListByBusiness получает все исключения сотрудников бизнеса.
// Коллекция возвращается как есть: без пагинации, фильтрации и кэширования.
func (c *Client) ListByBusiness(ctx context.Context, businessID int64) ([]domain.StaffException, error) {
	url := fmt.Sprintf("%s/internal/businesses/%d/staff-exceptions", c.baseURL, businessID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var list StaffExceptionList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if list.Exceptions == nil {
		list.Exceptions = []domain.StaffException{}
	}

	return list.Exceptions, nil
}

// Approve переводит исключение в статус approved.
// StaffService проставляет reviewed_at и reviewed_by_name.
func (c *Client) Approve(ctx context.Context, exceptionID int64, review *ReviewRequest) (*domain.StaffException, error) {
	return c.postReview(ctx, exceptionID, "approve", review)
}

// Deny переводит исключение в статус denied
func (c *Client) Deny(ctx context.Context, exceptionID int64, review *ReviewRequest) (*domain.StaffException, error) {
	return c.postReview(ctx, exceptionID, "deny", review)
}

func (c *Client) postReview(ctx context.Context, exceptionID int64, action string, review *ReviewRequest) (*domain.StaffException, error) {
	url := fmt.Sprintf("%s/internal/staff-exceptions/%d/%s", c.baseURL, exceptionID, action)

	payload, err := json.Marshal(review)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrExceptionNotFound
	case http.StatusConflict:
		return nil, ErrAlreadyReviewed
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var exception domain.StaffException
	if err := json.NewDecoder(resp.Body).Decode(&exception); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("StaffException %s: id=%d, status=%s", action, exception.ID, exception.Status)
	return &exception, nil
}
