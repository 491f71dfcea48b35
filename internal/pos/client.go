package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
)

// ======================================================
// CLIENT
// ======================================================

// Client fala com o POS externo por HTTP com retry, backoff e cache.
// Todo estado mutável (cache + requisições em voo) é da instância,
// nunca do processo.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *zap.Logger

	maxAttempts int
	timeout     time.Duration

	flight singleflight.Group
	cache  *responseCache

	// injetáveis em teste
	jitter func() float64
	sleep  func(ctx context.Context, d time.Duration) error
	now    func() time.Time
}

func NewClient(
	baseURL string,
	token string,
	timeout time.Duration,
	maxAttempts int,
	log *zap.Logger,
) *Client {

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 4
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		token:       token,
		httpc:       &http.Client{Timeout: timeout},
		log:         log,
		maxAttempts: maxAttempts,
		timeout:     timeout,
		cache:       newResponseCache(DefaultCacheTTL),
		jitter:      rand.Float64,
		sleep:       sleepCtx,
		now:         time.Now,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ======================================================
// OPERATIONS
// ======================================================

func (c *Client) ListServices(ctx context.Context, bypassCache bool) ([]Service, error) {
	data, status, err := c.do(ctx, http.MethodGet, "/v1/services", nil, bypassCache, "")
	if err != nil {
		return nil, httperr.ExternalServiceError{Op: "list_services", Err: err}
	}
	if status != http.StatusOK {
		return nil, httperr.ExternalServiceError{
			Op:  "list_services",
			Err: fmt.Errorf("unexpected status %d", status),
		}
	}

	var out struct {
		Services []Service `json:"services"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, httperr.ExternalServiceError{Op: "list_services", Err: err}
	}
	return out.Services, nil
}

type createOrderRequest struct {
	StaffID    uint   `json:"staff_id"`
	TotalCents int64  `json:"total_cents"`
	Note       string `json:"note"`
}

func (c *Client) CreateOrder(
	ctx context.Context,
	staffID uint,
	totalCents int64,
	note string,
) (string, error) {

	body, err := json.Marshal(createOrderRequest{
		StaffID:    staffID,
		TotalCents: totalCents,
		Note:       note,
	})
	if err != nil {
		return "", httperr.ExternalServiceError{Op: "create_order", Err: err}
	}

	// mesma chave de idempotência em todos os retries desta criação
	idemKey := uuid.NewString()

	data, status, err := c.do(ctx, http.MethodPost, "/v1/orders", body, true, idemKey)
	if err != nil {
		return "", httperr.ExternalServiceError{Op: "create_order", Err: err}
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return "", httperr.ExternalServiceError{
			Op:  "create_order",
			Err: fmt.Errorf("unexpected status %d", status),
		}
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return "", httperr.ExternalServiceError{Op: "create_order", Err: err}
	}
	if order.ID == "" {
		return "", httperr.ExternalServiceError{
			Op:  "create_order",
			Err: fmt.Errorf("response missing order id"),
		}
	}
	return order.ID, nil
}

func (c *Client) AddLineItem(ctx context.Context, orderID string, serviceID string) error {
	body, err := json.Marshal(map[string]string{"service_id": serviceID})
	if err != nil {
		return httperr.ExternalServiceError{Op: "add_line_item", Err: err}
	}

	path := "/v1/orders/" + orderID + "/line-items"
	_, status, err := c.do(ctx, http.MethodPost, path, body, true, "")
	if err != nil {
		return httperr.ExternalServiceError{Op: "add_line_item", Err: err}
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return httperr.ExternalServiceError{
			Op:  "add_line_item",
			Err: fmt.Errorf("unexpected status %d", status),
		}
	}
	return nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	_, status, err := c.do(ctx, http.MethodDelete, "/v1/orders/"+orderID, nil, true, "")
	if err != nil {
		return httperr.ExternalServiceError{Op: "delete_order", Err: err}
	}

	// ordem já inexistente = sucesso (idempotente para o chamador)
	switch status {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	}
	return httperr.ExternalServiceError{
		Op:  "delete_order",
		Err: fmt.Errorf("unexpected status %d", status),
	}
}

// ======================================================
// TRANSPORT (retry + cache + dedup)
// ======================================================

type rawResponse struct {
	data   []byte
	status int
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body []byte,
	bypassCache bool,
	idemKey string,
) ([]byte, int, error) {

	key := cacheKey(method, path, body)
	isRead := method == http.MethodGet

	if isRead && !bypassCache {
		if data, ok := c.cache.get(key, c.now()); ok {
			return data, http.StatusOK, nil
		}
	}

	// requisições idênticas em voo colapsam numa só chamada
	v, err, _ := c.flight.Do(key, func() (any, error) {
		res, err := c.doWithRetry(ctx, method, path, body, idemKey)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		return nil, 0, err
	}

	res := v.(rawResponse)

	if isRead && res.status == http.StatusOK {
		c.cache.set(key, res.data, c.now())
	}
	if !isRead && res.status < 400 {
		// escrita bem-sucedida invalida as leituras do mesmo recurso
		c.cache.invalidate(resourcePrefix(path))
	}

	return res.data, res.status, nil
}

// resourcePrefix reduz "/v1/orders/123/line-items" a "/v1/orders"
func resourcePrefix(path string) string {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[0] + "/" + parts[1]
	}
	return path
}

func (c *Client) doWithRetry(
	ctx context.Context,
	method string,
	path string,
	body []byte,
	idemKey string,
) (rawResponse, error) {

	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		res, retryAfter, err := c.once(ctx, method, path, body, idemKey)

		switch {
		case err == nil && res.status != http.StatusTooManyRequests && res.status < 500:
			return res, nil

		case err != nil:
			lastErr = err

		case res.status == http.StatusTooManyRequests:
			lastErr = httperr.RateLimitedError{RetryAfter: retryAfter}

		default: // 5xx
			lastErr = fmt.Errorf("server error %d", res.status)
		}

		if attempt+1 >= c.maxAttempts {
			break
		}

		wait := Backoff(attempt, c.jitter())
		if retryAfter > wait {
			// o servidor manda: respeitamos o maior dos dois
			wait = retryAfter
		}

		c.log.Warn("pos retry",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(lastErr),
		)

		if err := c.sleep(ctx, wait); err != nil {
			return rawResponse{}, err
		}
	}

	return rawResponse{}, lastErr
}

func (c *Client) once(
	ctx context.Context,
	method string,
	path string,
	body []byte,
	idemKey string,
) (rawResponse, time.Duration, error) {

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return rawResponse{}, 0, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if idemKey != "" {
		req.Header.Set("Idempotency-Key", idemKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return rawResponse{}, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawResponse{}, 0, err
	}

	var retryAfter time.Duration
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			retryAfter = time.Duration(secs) * time.Second
		}
	}

	return rawResponse{data: data, status: resp.StatusCode}, retryAfter, nil
}

// Compile-time check
var _ Gateway = (*Client)(nil)
