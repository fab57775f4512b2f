package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotifyService
// Отправка подтверждений (push, email) живёт в NotifyService,
// здесь только уведомление о событии
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyBookingConfirmed уведомляет о созданном бронировании
// Fire-and-forget: ошибка доставки логируется и не влияет на результат
// бронирования - подтверждение уже зафиксировано в БД
func (c *Client) NotifyBookingConfirmed(ctx context.Context, event *BookingConfirmedEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/booking-confirmed", c.baseURL)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	c.log.Info("NotifyBookingConfirmed: event sent for appointment id=%d", event.AppointmentID)
	return nil
}
