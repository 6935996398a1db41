package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SubmitPath путь приема заявок на стороне клиники
const SubmitPath = "/submit-appointment"

// RequestIDHeader заголовок со ссылкой на заявку
const RequestIDHeader = "X-Request-ID"

// maxAckBytes ограничение на размер читаемого подтверждения
const maxAckBytes = 64 << 10

// Client клиент транспорта отправки заявок на прием
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitAppointment отправляет плоскую запись формы.
// Ошибка сети или таймаут возвращают ErrRequestFailed, ответ не 2xx возвращает ErrRejected вместе с Ack.
func (c *Client) SubmitAppointment(ctx context.Context, fields map[string]string, reference string) (*Ack, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if reference != "" {
		req.Header.Set(RequestIDHeader, reference)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	ack := &Ack{
		StatusCode: resp.StatusCode,
		Reference:  reference,
		Payload:    decodeAck(resp.Body),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("SubmitAppointment: reference=%s rejected with status %d", reference, resp.StatusCode)
		return ack, fmt.Errorf("%w: unexpected status code %d", ErrRejected, resp.StatusCode)
	}

	c.log.Info("SubmitAppointment: reference=%s accepted, ack=%v", reference, ack.Payload)
	return ack, nil
}

// decodeAck читает подтверждение; нечитаемое тело дает пустой payload
func decodeAck(r io.Reader) map[string]interface{} {
	payload := map[string]interface{}{}
	data, err := io.ReadAll(io.LimitReader(r, maxAckBytes))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return payload
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]interface{}{}
	}
	return payload
}
