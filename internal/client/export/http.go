package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HTTPSink uploads exports with a PUT to baseURL/<name>. It suits
// WebDAV shares and upload endpoints that accept raw bodies.
type HTTPSink struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSink validates baseURL. A nil client means http.DefaultClient.
func NewHTTPSink(baseURL string, client *http.Client) (*HTTPSink, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid export url %q", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSink{baseURL: strings.TrimRight(baseURL, "/"), client: client}, nil
}

func (s *HTTPSink) Write(ctx context.Context, name string, data []byte) (string, error) {
	target := s.baseURL + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("upload failed: %s; body: %s", resp.Status, strings.TrimSpace(string(b)))
	}
	return target, nil
}
