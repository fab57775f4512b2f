package parserservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ParserService
// ParserService переводит свободный текст клиента в структурированный запрос
// бронирования. Конкретная языковая модель за ним скрыта и нас не касается.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ParserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Parse разбирает свободный текст в структурированный запрос бронирования
// referenceDate передаётся как контекст "сегодня" для относительных дат
// ("завтра", "в пятницу"). Если намерение извлечь не удалось, возвращает ErrNoIntent.
func (c *Client) Parse(ctx context.Context, text string, referenceDate time.Time) (*ParsedBooking, error) {
	url := fmt.Sprintf("%s/internal/parse/booking", c.baseURL)

	payload, err := json.Marshal(ParseRequest{
		Text:          text,
		ReferenceDate: referenceDate.Format(domain.DateFormat),
	})
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
	case http.StatusNoContent, http.StatusUnprocessableEntity:
		// Парсер не смог извлечь намерение бронирования
		return nil, ErrNoIntent
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var parsed ParsedBooking
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if parsed.ResourceID == 0 || parsed.Date == "" || parsed.StartTime == "" {
		c.log.Warn("Parse: incomplete parse result for text length=%d", len(text))
		return nil, ErrNoIntent
	}

	return &parsed, nil
}
