package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hotel-admin/domain"
	"hotel-admin/errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBypassHeaderName  = "ngrok-skip-browser-warning"
	DefaultBypassHeaderValue = "true"
	DefaultTimeout           = 15 * time.Second
	RequestIDHeader          = "X-Request-ID"
)

const (
	pathVerifyOTP    = "/api/auth/verify-otp"
	pathLogin        = "/api/admin/login"
	pathSignup       = "/api/admin/signup"
	pathReservations = "/api/reservations/"
	pathRooms        = "/api/rooms/"
	pathLanguages    = "/api/languages/"
)

type Options struct {
	BaseURL           string
	BypassHeaderName  string
	BypassHeaderValue string
	Timeout           time.Duration
	// DebugBodies makes the logging transport dump request and response bodies.
	DebugBodies bool
	// Transport overrides the underlying round tripper, mostly for tests.
	Transport http.RoundTripper
}

// Client is the HTTP transport to the hotel backend.
type Client struct {
	baseURL     string
	bypassName  string
	bypassValue string
	http        *http.Client
	log         *slog.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(log *slog.Logger, opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base url %q", errors.ErrInvalidInput, opts.BaseURL)
	}
	if opts.BypassHeaderName == "" {
		opts.BypassHeaderName = DefaultBypassHeaderName
		opts.BypassHeaderValue = DefaultBypassHeaderValue
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:     base.String(),
		bypassName:  opts.BypassHeaderName,
		bypassValue: opts.BypassHeaderValue,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: NewLoggingTransport(opts.Transport, log, opts.DebugBodies),
		},
		log: log,
	}, nil
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) AssignGuest(ctx context.Context, cmd domain.AssignGuestCommand) (domain.APIResponse, error) {
	return c.call(ctx, http.MethodPost, pathReservations, cmd)
}

func (c *Client) ConfigureRoom(ctx context.Context, cmd domain.ConfigureRoomCommand) (domain.APIResponse, error) {
	return c.call(ctx, http.MethodPut, pathRooms+url.PathEscape(cmd.Room), cmd)
}

func (c *Client) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (domain.APIResponse, error) {
	return c.call(ctx, http.MethodPost, pathVerifyOTP, req)
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResult, error) {
	return c.authenticate(ctx, pathLogin, req)
}

func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResult, error) {
	return c.authenticate(ctx, pathSignup, req)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (domain.AuthResult, error) {
	resp, err := c.call(ctx, http.MethodPost, path, body)
	if err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Token: extractToken(resp), Message: resp.Text()}, nil
}

// ListLanguages accepts both ["English", ...] and [{"code": "en", "name": "English"}, ...] as data.
func (c *Client) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	resp, err := c.call(ctx, http.MethodGet, pathLanguages, nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(resp.Data, &names); err == nil {
		languages := make([]domain.Language, 0, len(names))
		for _, name := range names {
			languages = append(languages, domain.Language{Name: name})
		}
		return languages, nil
	}

	var languages []domain.Language
	if err := json.Unmarshal(resp.Data, &languages); err != nil {
		return nil, fmt.Errorf("%w: languages: %v", errors.ErrUnparseableResponse, err)
	}
	return languages, nil
}

// Probe sends a bodiless request and only records how the backend answered.
func (c *Client) Probe(ctx context.Context, method, path string) domain.ProbeResult {
	result := domain.ProbeResult{Method: method, Path: path}
	start := time.Now()

	req, err := c.newRequest(ctx, method, path, nil)
	if err != nil {
		result.Err = err
		return result
	}
	resp, err := c.http.Do(req)
	result.Latency = time.Since(start)
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", errors.ErrTransport, err)
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	result.Status = resp.StatusCode
	return result
}

func (c *Client) call(ctx context.Context, method, path string, body any) (domain.APIResponse, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return domain.APIResponse{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.APIResponse{}, fmt.Errorf("%w: %w", errors.ErrTransport, ctxErr)
		}
		return domain.APIResponse{}, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.APIResponse{}, fmt.Errorf("%w: reading body: %v", errors.ErrTransport, err)
	}

	envelope, decodeErr := decodeEnvelope(raw)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelope, newAPIError(resp.StatusCode, envelope)
	}
	if decodeErr != nil {
		return domain.APIResponse{}, fmt.Errorf("%w: %v", errors.ErrUnparseableResponse, decodeErr)
	}
	if envelope.Rejected() {
		return envelope, newAPIError(resp.StatusCode, envelope)
	}
	return envelope, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(c.bypassName, c.bypassValue)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// decodeEnvelope tolerates an empty body, which some endpoints answer with on success.
func decodeEnvelope(raw []byte) (domain.APIResponse, error) {
	var envelope domain.APIResponse
	if len(bytes.TrimSpace(raw)) == 0 {
		return envelope, nil
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return domain.APIResponse{}, err
	}
	return envelope, nil
}

func extractToken(resp domain.APIResponse) string {
	if resp.Token != "" {
		return resp.Token
	}
	var data struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if len(resp.Data) == 0 || json.Unmarshal(resp.Data, &data) != nil {
		return ""
	}
	if data.Token != "" {
		return data.Token
	}
	return data.AccessToken
}

func newAPIError(status int, envelope domain.APIResponse) *errors.APIError {
	message := envelope.Text()
	if message == "" {
		message = http.StatusText(status)
	}
	return &errors.APIError{Status: status, Message: message}
}
