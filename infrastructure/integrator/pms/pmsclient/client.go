package pmsclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	retry "github.com/avast/retry-go/v4"
	jsoniter "github.com/json-iterator/go"
	pmsdomain "github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/domain"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTimeout       = 5 * time.Second
	defaultRetryAttempts = 3
	defaultRetryDelay    = 100 * time.Millisecond
)

type Client interface {
	GetMetrics(ctx context.Context, propertyID, date string) (pmsdomain.Metrics, error)
	GetBookingsToDate(ctx context.Context, propertyID, targetDate, asOf string) (pmsdomain.BookingsToDate, error)
	GetHistoricalPace(ctx context.Context, propertyID, targetDate string, daysOut int) (pmsdomain.HistoricalPace, error)
	GetRoomTypes(ctx context.Context, propertyID string) ([]pmsdomain.RoomType, error)
	GetHistoricalNoShows(ctx context.Context, propertyID, roomTypeID, date string) (pmsdomain.HistoricalRate, error)
	GetHistoricalCancellations(ctx context.Context, propertyID, roomTypeID, date string) (pmsdomain.HistoricalRate, error)
	PostAction(ctx context.Context, propertyID string, action pmsdomain.ActionRequest) (pmsdomain.ActionResponse, error)
}

type PMSClient struct {
	httpClient    *http.Client
	config        config.PMS
	retryAttempts uint
	retryDelay    time.Duration
}

// StatusError é devolvido quando o PMS responde com status diferente de 2xx
type StatusError struct {
	StatusCode int
	Status     string
	Response   pmsdomain.ErrorResponse
}

func (e *StatusError) Error() string {
	if e.Response.Error.Message != "" {
		return fmt.Sprintf("requisição falhou com status: %s (%s)", e.Status, e.Response.Error.Message)
	}
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func NewClient(cfg config.PMS) *PMSClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	attempts := cfg.RetryAttempts
	if attempts == 0 {
		attempts = defaultRetryAttempts
	}

	return &PMSClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:        cfg,
		retryAttempts: attempts,
		retryDelay:    defaultRetryDelay,
	}
}

var _ Client = (*PMSClient)(nil)

func (c *PMSClient) endpoint(query url.Values, segments ...string) (string, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	for _, segment := range segments {
		endpoint.Path = path.Join(endpoint.Path, url.PathEscape(segment))
	}

	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

// getJSON executa um GET com novas tentativas para erros de rede, 429 e 5xx
func (c *PMSClient) getJSON(ctx context.Context, out any, query url.Values, segments ...string) error {
	endpoint, err := c.endpoint(query, segments...)
	if err != nil {
		return err
	}

	return retry.Do(
		func() error {
			err := c.do(ctx, http.MethodGet, endpoint, nil, out)

			var statusErr *StatusError
			if errors.As(err, &statusErr) && !pmsdomain.IsRetryable(statusErr.StatusCode) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Attempts(c.retryAttempts),
		retry.LastErrorOnly(true),
		retry.Delay(c.retryDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.ForContext(ctx).WithFields(log.Fields{
				"attempt": n + 1,
				"error":   err.Error(),
			}).Warn("Nova tentativa de requisição ao PMS")
		}),
	)
}

func (c *PMSClient) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		_ = json.NewDecoder(resp.Body).Decode(&statusErr.Response)
		return statusErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
