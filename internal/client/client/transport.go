package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/facultyip/internal/common"
	"github.com/dmitrijs2005/facultyip/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the current bearer credential. An empty token means
// the caller is anonymous.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// roundTripperFunc adapts a function to http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// AuthTransport attaches the bearer credential to every outgoing request.
// The token is read right before dispatch, so a login or logout that
// happened since the client was built is always honored.
func AuthTransport(next http.RoundTripper, tokens TokenSource) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		token, err := tokens.Token(req.Context())
		if err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}

		r := req.Clone(req.Context())
		r.Header.Del(common.AuthorizationHeaderName)
		if token != "" {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
		}
		return next.RoundTrip(r)
	})
}

// RequestIDTransport tags requests that carry no X-Request-ID yet.
func RequestIDTransport(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(common.RequestIDHeaderName) != "" {
			return next.RoundTrip(req)
		}
		r := req.Clone(req.Context())
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		return next.RoundTrip(r)
	})
}

// LoggingTransport logs one line per request. The Authorization header is
// never logged.
func LoggingTransport(next http.RoundTripper, log logging.Logger) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)

		args := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get(common.RequestIDHeaderName),
			"duration", time.Since(start),
		}
		if err != nil {
			log.Warn(req.Context(), "backend request failed", append(args, "error", err)...)
			return nil, err
		}
		log.Debug(req.Context(), "backend request", append(args, "status", resp.StatusCode)...)
		return resp, nil
	})
}

// chain builds request-id -> logging -> auth -> base. Order matters: the
// request id must exist before logging reads it.
func chain(base http.RoundTripper, tokens TokenSource, log logging.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return RequestIDTransport(LoggingTransport(AuthTransport(base, tokens), log))
}
