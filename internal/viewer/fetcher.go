package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/DraymeM/tiomi/internal/dto"
)

// StatusError is a non-2xx HTTP response from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// isRetryable reports whether a failed attempt is worth repeating. Client
// errors and cancellations are final; everything else (5xx, transport
// failures) gets another shot within the budget.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return true
}

// isOffline classifies a failure as missing connectivity rather than a
// server-side problem.
func isOffline(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.ENETDOWN) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// HTTPFetcher talks to the tétel API over HTTP.
type HTTPFetcher struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher for the given API base URL. token may be
// empty for anonymous reads.
func NewHTTPFetcher(baseURL, token string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// apiEnvelope mirrors the server's uniform response shape.
type apiEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (f *HTTPFetcher) do(ctx context.Context, method, path string) (*apiEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &StatusError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
	return &envelope, nil
}

// FetchTetelDetails retrieves one tétel's full detail payload.
func (f *HTTPFetcher) FetchTetelDetails(ctx context.Context, id int64) (*dto.TetelDetailsResponse, error) {
	envelope, err := f.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/tetelek/%d", id))
	if err != nil {
		return nil, err
	}

	var details dto.TetelDetailsResponse
	if err := json.Unmarshal(envelope.Data, &details); err != nil {
		return nil, fmt.Errorf("decoding tétel details: %w", err)
	}
	return &details, nil
}

// DeleteTetel removes one tétel. The server enforces the superuser check.
func (f *HTTPFetcher) DeleteTetel(ctx context.Context, id int64) error {
	_, err := f.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/tetelek/%d", id))
	return err
}
