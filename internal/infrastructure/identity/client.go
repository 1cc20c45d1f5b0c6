package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/pkg/metrics"
)

const (
	loginPath      = "/api/auth/login"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 64 << 10
)

// Config captures how to reach the Identity API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the Identity API over HTTP. It satisfies ports.IdentityService
// and maps every failure onto the domain error taxonomy:
//   - transport errors and timeouts → domain.ErrServiceUnavailable
//   - any non-2xx status → domain.ErrInvalidCredentials
//   - an empty or undecodable body → domain.ErrUnexpectedResponse
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	start := time.Now()
	res, err := c.login(ctx, username, password)
	metrics.IdentityCallDuration.WithLabelValues(outcome(err)).Observe(time.Since(start).Seconds())
	return res, err
}

func (c *Client) login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w: %v", loginPath, domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, domain.ErrInvalidCredentials
	}

	var result domain.LoginResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode login response: %w: %v", domain.ErrUnexpectedResponse, err)
	}
	if !result.Complete() {
		return nil, domain.ErrUnexpectedResponse
	}
	return &result, nil
}

// Ping checks that the Identity API answers on its root route.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity api returned %d", resp.StatusCode)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrServiceUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, domain.ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, domain.ErrUnexpectedResponse):
		return metrics.OutcomeUnexpected
	default:
		return metrics.OutcomeError
	}
}
