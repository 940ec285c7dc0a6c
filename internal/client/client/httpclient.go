package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/common"
	"github.com/dmitrijs2005/facultyip/internal/logging"
)

const defaultTimeout = 30 * time.Second

// HTTPClient talks to the backend over JSON/HTTP. Credentials are attached
// by the transport chain, never by the methods below.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
	logger    logging.Logger
}

type Option func(*options)

// WithTimeout bounds every request. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithTransport replaces the innermost transport (tests, proxies).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds a client for the backend rooted at baseURL (the /api prefix
// is added here). tokens is consulted on every request.
func New(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("token source is required")
	}

	o := options{timeout: defaultTimeout, logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/") + common.APIPrefix,
		httpClient: &http.Client{
			Timeout:   o.timeout,
			Transport: chain(o.transport, tokens, o.logger),
		},
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListPatents(ctx context.Context) ([]models.Patent, error) {
	var patents []models.Patent
	if err := c.do(ctx, http.MethodGet, "/faculty/patents", nil, &patents); err != nil {
		return nil, err
	}
	return patents, nil
}

func (c *HTTPClient) CreatePatent(ctx context.Context, in models.PatentInput) (*models.Patent, error) {
	var p models.Patent
	if err := c.do(ctx, http.MethodPost, "/faculty/patents", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateScholar(ctx context.Context, scholarURL string) (*models.ScholarProfile, error) {
	var resp models.ScholarUpdateResponse
	req := models.ScholarUpdateRequest{GoogleScholarURL: scholarURL}
	if err := c.do(ctx, http.MethodPut, "/faculty/scholar", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) ListFaculty(ctx context.Context) ([]models.Identity, error) {
	var faculty []models.Identity
	if err := c.do(ctx, http.MethodGet, "/admin/faculty", nil, &faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (c *HTTPClient) ListFacultyPatents(ctx context.Context, facultyID string) ([]models.Patent, error) {
	var patents []models.Patent
	path := "/admin/faculty/" + url.PathEscape(facultyID) + "/patents"
	if err := c.do(ctx, http.MethodGet, path, nil, &patents); err != nil {
		return nil, err
	}
	return patents, nil
}

// ExportFaculty returns the export payload untouched; its shape belongs to
// the backend.
func (c *HTTPClient) ExportFaculty(ctx context.Context, facultyID string) (json.RawMessage, error) {
	var payload json.RawMessage
	path := "/admin/faculty/" + url.PathEscape(facultyID) + "/export"
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError separates caller cancellation from an unreachable
// backend.
func (c *HTTPClient) handleRequestError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("request aborted: %w", ctxErr)
	}
	return fmt.Errorf("%w: cannot connect to backend at %s: %v", ErrUnavailable, c.baseURL, err)
}
