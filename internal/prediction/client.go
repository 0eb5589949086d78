package prediction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultURL is the local prediction endpoint
const DefaultURL = "http://127.0.0.1:5000/predict"

// DefaultTimeout bounds one prediction exchange
const DefaultTimeout = 30 * time.Second

// DefaultRejectionMessage is used when the service declines without an error string
const DefaultRejectionMessage = "Prediction failed!"

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

// ErrUnreachable covers transport failures and responses that cannot be used.
// Callers fall back to the demo premium when they see it.
var ErrUnreachable = errors.New("prediction service unreachable")

// RejectedError is returned when the service answered but declined to predict
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("prediction rejected (HTTP %d): %s", e.StatusCode, e.Message)
}

// response carries both outcomes of the service. Fields stay raw so a
// non-numeric premium or non-string error can be told apart from a missing one.
type response struct {
	PredictedPremium json.RawMessage `json:"predicted_premium"`
	Error            json.RawMessage `json:"error"`
}

// Client posts applicant data to the prediction service
type Client struct {
	url        string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient returns a client for the given endpoint. An empty url uses DefaultURL.
func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client posts to
func (c *Client) URL() string {
	return c.url
}

// RequestQuote sends one prediction request. It never retries. The result is a
// service-provided quote, a *RejectedError, or an error wrapping ErrUnreachable.
func (c *Client) RequestQuote(ctx context.Context, profile domain.ApplicantProfile, bmi *domain.BMIResult) (domain.PremiumQuote, error) {
	body, err := json.Marshal(NewRequest(profile, bmi))
	if err != nil {
		return domain.PremiumQuote{}, fmt.Errorf("encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.PremiumQuote{}, fmt.Errorf("%w: build request: %v", ErrUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.PremiumQuote{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.PremiumQuote{}, fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}

	var decoded response
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return domain.PremiumQuote{}, fmt.Errorf("%w: decode response (HTTP %d): %v", ErrUnreachable, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.PremiumQuote{}, &RejectedError{
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(decoded.Error),
		}
	}

	amount, err := parsePremium(decoded.PredictedPremium)
	if err != nil {
		return domain.PremiumQuote{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return domain.NewServiceQuote(amount), nil
}

func rejectionMessage(raw json.RawMessage) string {
	var msg string
	if len(raw) == 0 || json.Unmarshal(raw, &msg) != nil || msg == "" {
		return DefaultRejectionMessage
	}
	return msg
}

func parsePremium(raw json.RawMessage) (decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, errors.New("response has no predicted_premium")
	}
	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil || trimmed[0] == '"' {
		return decimal.Zero, fmt.Errorf("predicted_premium is not a number: %s", trimmed)
	}
	amount, err := decimal.NewFromString(number.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("predicted_premium is not a number: %s", trimmed)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("predicted_premium is negative: %s", amount)
	}
	return amount, nil
}
